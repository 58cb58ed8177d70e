// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride allows tests to override the config directory.
// Necessary because os.UserHomeDir() doesn't reliably respect the HOME
// environment variable on all platforms (e.g. macOS in CI).
var configDirOverride string

// configFilePathOverride is the --config flag value; when set it is
// used exclusively and the platform config directory is not consulted.
var configFilePathOverride string

// Reset clears overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
	configFilePathOverride = ""
}

// SetConfigDirOverride sets a custom config directory path. Primarily
// intended for tests.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride sets an explicit config file path, wired
// from the --config flag.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}
