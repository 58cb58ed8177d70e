// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"pydist-cli/internal/config"
	"pydist-cli/internal/issue"
)

// renderIssue prints the glamour-rendered troubleshooting entry for the
// given id to stderr. Rendering failures fall back to the raw markdown
// so the help text is never lost.
func renderIssue(id issue.Id) {
	i := issue.Lookup(id)
	if i == nil {
		return
	}

	out, err := i.Render(glamourStyle())
	if err != nil {
		out = string(i.MarkdownMsg())
	}
	fmt.Fprintln(os.Stderr, out)
}

// glamourStyle maps the configured color scheme to a glamour style name.
func glamourStyle() string {
	if loadedConfig == nil {
		return "dark"
	}
	switch loadedConfig.UI.ColorScheme {
	case config.ColorSchemeLight:
		return "light"
	default:
		return "dark"
	}
}
