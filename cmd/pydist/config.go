// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"pydist-cli/internal/config"

	"github.com/spf13/cobra"
)

// configCmd groups configuration inspection subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect pydist configuration",
}

// configShowCmd prints the resolved configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	RunE:  runConfigShow,
}

// configPathCmd prints where configuration is read from
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration file location",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, path, err := config.LoadWithPath()
	if err != nil {
		return err
	}

	fmt.Println(sectionTitleStyle.Render("Configuration"))
	if path != "" {
		fmt.Printf("%s Source: %s\n", infoIcon, PathStyle.Render(path))
	} else {
		fmt.Printf("%s Source: %s\n", infoIcon, SubtitleStyle.Render("built-in defaults"))
	}
	fmt.Println()
	fmt.Printf("   interpreter:     %s\n", CmdStyle.Render(cfg.Interpreter))
	fmt.Printf("   dist_dir:        %s\n", CmdStyle.Render(cfg.DistDir))
	fmt.Printf("   ui.color_scheme: %s\n", CmdStyle.Render(string(cfg.UI.ColorScheme)))
	fmt.Printf("   ui.verbose:      %v\n", cfg.UI.Verbose)

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	_, path, err := config.LoadWithPath()
	if err != nil {
		return err
	}

	if path != "" {
		fmt.Println(path)
		return nil
	}

	// No file in use; print where one would be picked up.
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	defaultPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
	fmt.Printf("%s (not present, using defaults)\n", defaultPath)
	return nil
}
