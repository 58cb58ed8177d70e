// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pydist-cli/pkg/distfile"

	"github.com/spf13/cobra"
)

var (
	initForce bool

	// initCmd creates a new distfile
	initCmd = &cobra.Command{
		Use:   "init [package]",
		Short: "Create a distfile.cue in the current directory",
		Long: `Create a distfile.cue describing the package in the current directory.

The package argument is the importable Python package name; when
omitted it is inferred from the directory name. Every other field is
written with its default so the file documents what can be tuned.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing distfile")
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	pkg := ""
	if len(args) > 0 {
		pkg = args[0]
	} else {
		pkg = inferPackageName(filepath.Base(cwd))
	}
	if err := distfile.ValidatePackageName(pkg); err != nil {
		return err
	}

	path := filepath.Join(cwd, distfile.FileName)
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("file %q already exists. Use --force to overwrite", distfile.FileName)
	}

	content := generateDistfile(pkg)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	fmt.Printf("%s Created %s\n", successIcon, PathStyle.Render(path))
	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Println("  1. Adjust extensions/aux in the distfile if the defaults don't fit")
	fmt.Println("  2. Run 'pydist files' to check what would be staged")
	fmt.Println("  3. Run 'pydist build' to produce the archive")

	return nil
}

// inferPackageName derives a plausible package name from a directory
// name: lowercased, dashes mapped to underscores.
func inferPackageName(dir string) string {
	return strings.ToLower(strings.ReplaceAll(dir, "-", "_"))
}

func generateDistfile(pkg string) string {
	return fmt.Sprintf(`// Distfile - source distribution descriptor for %s

package: %q

// Distribution name; defaults to the package name.
// product: %q

// Pin the version to skip resolution via the interpreter:
// version: "1.0.0"

// Files are selected by suffix anywhere in the tree, plus the aux
// allowlist matched by exact name at the root.
extensions: [%s]
aux: [%s]

// Glob patterns excluded from staging:
// exclude: ["*_test.py"]

// Optional shell snippets run by the embedded interpreter with
// PRODUCT, VERSION and STAGING_DIR exported:
// hooks: {
//     pre_build: "echo staging $PRODUCT-$VERSION"
// }
`, pkg, pkg, pkg, quoteList(distfile.DefaultExtensions), quoteList(distfile.DefaultAux))
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return strings.Join(quoted, ", ")
}
