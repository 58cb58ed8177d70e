// SPDX-License-Identifier: MPL-2.0

package pyversion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode"
)

const (
	// DefaultInterpreter is the Python executable consulted when the
	// resolver is not configured with an explicit one.
	DefaultInterpreter = "python3"

	// DefaultAttribute is the module attribute holding the version.
	DefaultAttribute = "__version__"
)

// Source identifies which strategy produced a resolved version.
type Source string

const (
	// SourcePinned means the version was pinned in the distfile.
	SourcePinned Source = "pinned"
	// SourceInterpreter means the package was imported and its version
	// attribute printed by the interpreter.
	SourceInterpreter Source = "interpreter"
	// SourceInitFile means the version was scanned statically from the
	// package's __init__.py.
	SourceInitFile Source = "init-file"
	// SourcePyProject means the version came from pyproject.toml.
	SourcePyProject Source = "pyproject"
)

var (
	// ErrInterpreterNotFound is returned when the configured Python
	// executable is not on PATH.
	ErrInterpreterNotFound = errors.New("python interpreter not found")

	// ErrVersionNotFound is returned when every strategy has been
	// exhausted without producing a version string.
	ErrVersionNotFound = errors.New("version not found")
)

// Resolution is the outcome of a successful resolve.
type Resolution struct {
	// Version is the validated version string.
	Version string
	// Source names the strategy that produced it.
	Source Source
}

// Resolver resolves package versions. The zero value uses the default
// interpreter and attribute.
type Resolver struct {
	// Interpreter is the Python executable (default "python3").
	Interpreter string
	// Attribute is the module attribute to read (default "__version__").
	Attribute string
}

func (r *Resolver) interpreter() string {
	if r.Interpreter == "" {
		return DefaultInterpreter
	}
	return r.Interpreter
}

func (r *Resolver) attribute() string {
	if r.Attribute == "" {
		return DefaultAttribute
	}
	return r.Attribute
}

// Resolve derives the version of the package rooted at root. The
// strategies are tried in order: interpreter import, static __init__.py
// scan, pyproject.toml. The first success wins; failures of individual
// strategies only surface when all of them come up empty.
func (r *Resolver) Resolve(ctx context.Context, root, pkg string) (*Resolution, error) {
	var attempts []string

	version, err := r.FromInterpreter(ctx, root, pkg)
	if err == nil {
		return &Resolution{Version: version, Source: SourceInterpreter}, nil
	}
	attempts = append(attempts, fmt.Sprintf("interpreter: %v", err))

	version, err = FromInitFile(root, pkg, r.attribute())
	if err == nil {
		return &Resolution{Version: version, Source: SourceInitFile}, nil
	}
	attempts = append(attempts, fmt.Sprintf("init-file: %v", err))

	version, err = FromPyProject(root)
	if err == nil {
		return &Resolution{Version: version, Source: SourcePyProject}, nil
	}
	attempts = append(attempts, fmt.Sprintf("pyproject: %v", err))

	return nil, fmt.Errorf("%w for package %q (%s)", ErrVersionNotFound, pkg, strings.Join(attempts, "; "))
}

// FromInterpreter imports the package with the interpreter and prints
// its version attribute, matching the original dynamic-import behavior.
func (r *Resolver) FromInterpreter(ctx context.Context, root, pkg string) (string, error) {
	attr := r.attribute()
	probe := fmt.Sprintf("import %s; print(%s.%s)", pkg, pkg, attr)

	cmd := exec.CommandContext(ctx, r.interpreter(), "-c", probe)
	cmd.Dir = root

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrInterpreterNotFound, r.interpreter())
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("import of %q failed: %s", pkg, lastLine(msg))
	}

	version := strings.TrimSpace(stdout.String())
	if err := Validate(version); err != nil {
		return "", err
	}
	return version, nil
}

// Validate checks that a version string is non-empty and safe to embed
// in a file system path.
func Validate(version string) error {
	if version == "" {
		return fmt.Errorf("version string is empty")
	}
	if version == "." || version == ".." {
		return fmt.Errorf("version string %q is not a valid path element", version)
	}
	for _, c := range version {
		if c == '/' || c == '\\' || unicode.IsSpace(c) || unicode.IsControl(c) {
			return fmt.Errorf("version string %q contains characters unsafe for file paths", version)
		}
	}
	return nil
}

// lastLine returns the final non-empty line of s. Python tracebacks put
// the actual error last.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return s
}
