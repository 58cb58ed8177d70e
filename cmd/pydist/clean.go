// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"pydist-cli/pkg/sdist"

	"github.com/spf13/cobra"
)

var (
	cleanDist bool

	// cleanCmd removes build output directories
	cleanCmd = &cobra.Command{
		Use:   "clean",
		Short: "Remove the build/ staging directory",
		Long: `Remove the build/ staging directory from the current tree.

With --dist, the dist/ output directory and its archives are removed
as well.`,
		RunE: runClean,
	}
)

func init() {
	cleanCmd.Flags().BoolVar(&cleanDist, "dist", false, "also remove the dist/ output directory")
}

func runClean(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	targets := []string{filepath.Join(cwd, sdist.BuildDirName)}
	if cleanDist {
		targets = append(targets, filepath.Join(cwd, sdist.DistDirName))
	}

	for _, target := range targets {
		if _, err := os.Stat(target); os.IsNotExist(err) {
			logger.Debug("nothing to remove", "path", target)
			continue
		}
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("failed to remove %s: %w", target, err)
		}
		fmt.Printf("%s Removed %s\n", successIcon, PathStyle.Render(target))
	}

	return nil
}
