// SPDX-License-Identifier: MPL-2.0

package hooks

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		wantErr bool
	}{
		{name: "simple command", script: "echo hello"},
		{name: "pipeline", script: "printf '%s' a | tr a b"},
		{name: "multi line", script: "echo one\necho two"},
		{name: "empty", script: "", wantErr: true},
		{name: "whitespace only", script: "  \n\t", wantErr: true},
		{name: "unterminated quote", script: "echo 'oops", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.script)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.script, err, tt.wantErr)
			}
		})
	}
}

func TestRunnerRun(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{
		Dir:    t.TempDir(),
		Stdout: &out,
	}

	if err := r.Run(context.Background(), "pre_build", "echo hello"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "hello" {
		t.Errorf("output = %q, want hello", got)
	}
}

func TestRunnerEnv(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{
		Dir: t.TempDir(),
		Env: map[string]string{
			"PRODUCT": "txsuds",
			"VERSION": "1.2.3",
		},
		Stdout: &out,
	}

	if err := r.Run(context.Background(), "pre_build", "echo $PRODUCT-$VERSION"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "txsuds-1.2.3" {
		t.Errorf("output = %q, want txsuds-1.2.3", got)
	}
}

func TestRunnerWorkingDirectory(t *testing.T) {
	dir := t.TempDir()

	r := &Runner{Dir: dir}
	if err := r.Run(context.Background(), "pre_build", "echo data > marker.txt"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "marker.txt")); err != nil {
		t.Errorf("hook should run in the configured directory: %v", err)
	}
}

func TestRunnerFailure(t *testing.T) {
	r := &Runner{Dir: t.TempDir()}

	err := r.Run(context.Background(), "post_build", "exit 3")
	if err == nil {
		t.Fatal("Run() should surface a non-zero exit")
	}
	if !strings.Contains(err.Error(), "post_build") {
		t.Errorf("error %q should name the hook", err)
	}
}

func TestRunnerParseError(t *testing.T) {
	r := &Runner{Dir: t.TempDir()}

	if err := r.Run(context.Background(), "pre_build", "echo 'oops"); err == nil {
		t.Fatal("Run() should fail on a syntax error")
	}
}
