// SPDX-License-Identifier: MPL-2.0

// Package config loads the global pydist configuration.
//
// Configuration lives in config.cue under the platform config
// directory (~/.config/pydist on Linux), with a config.cue in the
// current directory as a local override location. The file is
// validated against an embedded CUE schema and merged into Viper on
// top of the built-in defaults, so a missing file simply yields the
// defaults.
package config
