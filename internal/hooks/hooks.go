// SPDX-License-Identifier: MPL-2.0

// Package hooks runs distfile hook snippets through the embedded POSIX
// shell interpreter, so hooks behave the same on every platform and
// need no system shell.
package hooks

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Runner executes hook snippets in a working directory with extra
// environment variables on top of the process environment.
type Runner struct {
	// Dir is the working directory for hook execution.
	Dir string
	// Env holds extra KEY=VALUE pairs exported to the snippet
	// (PRODUCT, VERSION, STAGING_DIR and friends).
	Env map[string]string
	// Stdout and Stderr receive the hook's output. Nil writers
	// discard.
	Stdout io.Writer
	Stderr io.Writer
}

// Validate parses the snippet without executing it, surfacing syntax
// errors early.
func Validate(script string) error {
	if strings.TrimSpace(script) == "" {
		return fmt.Errorf("hook script is empty")
	}
	if _, err := syntax.NewParser().Parse(strings.NewReader(script), "hook"); err != nil {
		return fmt.Errorf("hook syntax error: %w", err)
	}
	return nil
}

// Run parses and executes the snippet. A non-zero exit status is
// returned as an error.
func (r *Runner) Run(ctx context.Context, name, script string) error {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), name)
	if err != nil {
		return fmt.Errorf("failed to parse %s hook: %w", name, err)
	}

	stdout := r.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = io.Discard
	}

	env := os.Environ()
	for k, v := range r.Env {
		env = append(env, k+"="+v)
	}

	runner, err := interp.New(
		interp.Dir(r.Dir),
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(nil, stdout, stderr),
	)
	if err != nil {
		return fmt.Errorf("failed to create hook interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		return fmt.Errorf("%s hook failed: %w", name, err)
	}
	return nil
}
