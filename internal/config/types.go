// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidInterpreter is returned when the interpreter value is whitespace-only.
	ErrInvalidInterpreter = errors.New("invalid interpreter")
)

type (
	// ColorScheme selects the terminal color scheme for styled output.
	ColorScheme string

	// UIConfig holds presentation settings.
	UIConfig struct {
		// ColorScheme selects the terminal color scheme.
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		// Verbose enables verbose output without the --verbose flag.
		Verbose bool `mapstructure:"verbose"`
	}

	// Config is the resolved global configuration.
	Config struct {
		// Interpreter is the Python executable used for version probes.
		Interpreter string `mapstructure:"interpreter"`
		// DistDir is the default output directory for archives,
		// relative to the working tree unless absolute.
		DistDir string `mapstructure:"dist_dir"`
		// UI holds presentation settings.
		UI UIConfig `mapstructure:"ui"`
	}
)

// Validate checks the color scheme value.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return fmt.Errorf("%w: %q (expected auto, dark or light)", ErrInvalidColorScheme, string(c))
	}
}

// Validate checks constraints the CUE schema cannot express.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Interpreter) == "" {
		return fmt.Errorf("%w: must not be blank", ErrInvalidInterpreter)
	}
	return c.UI.ColorScheme.Validate()
}

// DefaultConfig returns the built-in defaults used when no config file
// is present.
func DefaultConfig() *Config {
	return &Config{
		Interpreter: "python3",
		DistDir:     "dist",
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
