// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"pydist-cli/pkg/sdist"

	"github.com/spf13/cobra"
)

// filesCmd shows the resolved staging manifest without building
var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Show the files a build would stage",
	Long: `Resolve the extension filter, auxiliary allowlist and excludes from
distfile.cue against the current tree and print the resulting manifest
without staging or archiving anything.`,
	RunE: runFiles,
}

func runFiles(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	df, err := loadProject(root)
	if err != nil {
		return err
	}

	manifest, err := sdist.Collect(root, sdist.CollectOptions{
		Extensions: df.Extensions,
		Aux:        df.Aux,
		Exclude:    df.Exclude,
	})
	if err != nil {
		return err
	}

	fmt.Println(sectionTitleStyle.Render("Staging Manifest"))
	fmt.Printf("%s Product: %s\n", infoIcon, CmdStyle.Render(df.Product))

	if len(manifest.Entries) == 0 {
		fmt.Printf("%s No files matched\n", warningIcon)
		fmt.Println()
		fmt.Printf("%s Matching is controlled by 'extensions', 'aux' and 'exclude' in %s\n",
			infoIcon, CmdStyle.Render("distfile.cue"))
		return nil
	}

	fmt.Printf("%s Found %d file(s), %s total\n", infoIcon, len(manifest.Entries), formatFileSize(manifest.TotalSize()))
	fmt.Println()

	for _, entry := range manifest.Entries {
		marker := " "
		if entry.Aux {
			marker = SubtitleStyle.Render("aux")
		}
		fmt.Printf("   %s %s %s\n", PathStyle.Render(entry.RelPath), VerboseStyle.Render(formatFileSize(entry.Size)), marker)
	}

	return nil
}
