// SPDX-License-Identifier: MPL-2.0

package pyversion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// initAssignPattern matches a simple top-level string assignment like
//
//	__version__ = "1.2.3"
//
// with either quote style. Computed or tuple versions are left to the
// interpreter strategy.
const initAssignPattern = `(?m)^\s*%s\s*=\s*["']([^"']+)["']`

// FromInitFile statically scans the package's __init__.py for a string
// assignment to the given attribute. pkg may be a dotted module path;
// it is mapped onto the directory layout under root.
func FromInitFile(root, pkg, attribute string) (string, error) {
	pkgDir := filepath.Join(root, filepath.FromSlash(strings.ReplaceAll(pkg, ".", "/")))
	initPath := filepath.Join(pkgDir, "__init__.py")

	data, err := os.ReadFile(initPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", initPath, err)
	}

	re, err := regexp.Compile(fmt.Sprintf(initAssignPattern, regexp.QuoteMeta(attribute)))
	if err != nil {
		return "", fmt.Errorf("invalid version attribute %q: %w", attribute, err)
	}

	m := re.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("no %s assignment found in %s", attribute, initPath)
	}

	version := string(m[1])
	if err := Validate(version); err != nil {
		return "", err
	}
	return version, nil
}

// pyProject mirrors the subset of pyproject.toml that can carry a
// version: PEP 621 [project] and the poetry tool table.
type pyProject struct {
	Project struct {
		Version string `toml:"version"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Version string `toml:"version"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// FromPyProject reads the version recorded in root/pyproject.toml,
// preferring [project] over [tool.poetry].
func FromPyProject(root string) (string, error) {
	path := filepath.Join(root, "pyproject.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc pyProject
	if err := toml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", path, err)
	}

	version := doc.Project.Version
	if version == "" {
		version = doc.Tool.Poetry.Version
	}
	if version == "" {
		return "", fmt.Errorf("no version recorded in %s", path)
	}

	if err := Validate(version); err != nil {
		return "", err
	}
	return version, nil
}
