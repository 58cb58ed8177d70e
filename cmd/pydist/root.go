// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for pydist.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"pydist-cli/internal/config"
	"pydist-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// loadedConfig is the resolved global configuration, populated by
	// initRootConfig before any RunE handler executes.
	loadedConfig *config.Config

	// logger is the shared diagnostic logger. Debug level is enabled
	// under --verbose.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "pydist",
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "pydist",
		Short: "Build source distribution tarballs for Python packages",
		Long: TitleStyle.Render("pydist") + SubtitleStyle.Render(" - source distribution builder for Python packages") + `

pydist derives the package version by importing the module, stages
matching source files plus a fixed auxiliary allowlist into a
version-named directory, and archives the result as
dist/<product>-<version>.tar.gz.

Projects are described by a 'distfile.cue' at the root of the
working tree.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'pydist init <package>' in your package's working tree
  2. Adjust distfile.cue if the defaults don't fit
  3. Run 'pydist build'

` + SubtitleStyle.Render("Examples:") + `
  pydist build              Build dist/<product>-<version>.tar.gz
  pydist build acme         Same, with the 'acme-' distributor prefix
  pydist files              Show what a build would stage
  pydist clean --dist       Remove build/ and dist/
  pydist config show        Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pydist/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads the config file and applies global settings.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		// Surface config loading errors but keep going on defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	loadedConfig = cfg

	if cfg.UI.Verbose {
		verbose = true
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay renders an error for terminal output, using
// the actionable formatting when available.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
