// SPDX-License-Identifier: MPL-2.0

package distfile

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// FileName is the standard name of the project descriptor.
const FileName = "distfile.cue"

// Defaults applied when the distfile leaves the corresponding field
// unset. The extension list covers source, spec and config files; the
// aux list is the fixed allowlist of files staged regardless of
// extension.
var (
	DefaultExtensions = []string{".py", ".spec", ".cfg"}
	DefaultAux        = []string{"LICENSE", "README", "makefile"}
)

// packageNameRegex validates the importable package name, including
// dotted submodule paths (e.g. "txsuds" or "txsuds.transport").
var packageNameRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)*$`)

type (
	// Distfile is the decoded project descriptor.
	Distfile struct {
		// Package is the importable Python package name (required).
		Package string `json:"package"`
		// Product is the distribution name; defaults to Package.
		Product string `json:"product,omitempty"`
		// Version pins the distribution version. When empty the
		// version is resolved from the package itself.
		Version string `json:"version,omitempty"`
		// Extensions selects files by suffix; entries start with a dot.
		Extensions []string `json:"extensions,omitempty"`
		// Aux is the fixed allowlist of files staged by exact base name.
		Aux []string `json:"aux,omitempty"`
		// Exclude holds path.Match globs applied to slash-separated
		// relative paths; matches are never staged.
		Exclude []string `json:"exclude,omitempty"`
		// Hooks are optional shell snippets run around the build.
		Hooks *Hooks `json:"hooks,omitempty"`

		// FilePath is the path this distfile was loaded from.
		// Not part of the CUE document.
		FilePath string `json:"-"`
	}

	// Hooks holds shell snippets executed by the embedded interpreter.
	Hooks struct {
		// PreBuild runs after collection, before archiving.
		PreBuild string `json:"pre_build,omitempty"`
		// PostBuild runs after the archive has been written.
		PostBuild string `json:"post_build,omitempty"`
	}
)

// ValidatePackageName checks that name is a valid importable package
// name. Returns nil if valid.
func ValidatePackageName(name string) error {
	if name == "" {
		return fmt.Errorf("package name cannot be empty")
	}
	if !packageNameRegex.MatchString(name) {
		return fmt.Errorf("package name %q is invalid: must be an importable Python name (e.g. 'txsuds', 'my_pkg.sub')", name)
	}
	return nil
}

// validate checks constraints the CUE schema cannot express and applies
// field defaults.
func (d *Distfile) validate() error {
	if err := ValidatePackageName(d.Package); err != nil {
		return err
	}

	if d.Product == "" {
		d.Product = d.Package
	}

	if d.Extensions == nil {
		d.Extensions = append([]string(nil), DefaultExtensions...)
	}
	for _, ext := range d.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("extension %q is invalid: must start with a dot followed by at least one character", ext)
		}
	}

	if d.Aux == nil {
		d.Aux = append([]string(nil), DefaultAux...)
	}
	for _, name := range d.Aux {
		if name == "" || strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("aux entry %q is invalid: must be a bare file name", name)
		}
	}

	for _, pattern := range d.Exclude {
		if _, err := path.Match(pattern, ""); err != nil {
			return fmt.Errorf("exclude pattern %q is invalid: %v", pattern, err)
		}
	}

	return nil
}

// HasHooks reports whether any hook snippet is configured.
func (d *Distfile) HasHooks() bool {
	return d.Hooks != nil && (d.Hooks.PreBuild != "" || d.Hooks.PostBuild != "")
}
