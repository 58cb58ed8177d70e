// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pydist-cli/pkg/distfile"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 bytes"},
		{512, "512 bytes"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
		{5 * 1048576, "5.00 MB"},
		{2 * 1073741824, "2.00 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatFileSize(tt.size); got != tt.want {
				t.Errorf("formatFileSize(%d) = %q, want %q", tt.size, got, tt.want)
			}
		})
	}
}

func TestInferPackageName(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{"txsuds", "txsuds"},
		{"TxSuds", "txsuds"},
		{"my-package", "my_package"},
		{"My-Cool-Lib", "my_cool_lib"},
	}

	for _, tt := range tests {
		if got := inferPackageName(tt.dir); got != tt.want {
			t.Errorf("inferPackageName(%q) = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestQuoteList(t *testing.T) {
	got := quoteList([]string{".py", ".cfg"})
	if got != `".py", ".cfg"` {
		t.Errorf("quoteList() = %s", got)
	}
	if got := quoteList(nil); got != "" {
		t.Errorf("quoteList(nil) = %q, want empty", got)
	}
}

// setupBuildTree chdirs into a fresh tree holding the given distfile
// and one matching source file, ready for runBuild.
func setupBuildTree(t *testing.T, distfileContent string) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.WriteFile(filepath.Join(dir, distfile.FileName), []byte(distfileContent), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "txsuds.py"), []byte("__version__ = \"0.0.1\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	buildCmd.SetContext(context.Background())
	return dir
}

func TestBuildPostHookSeesStagingDir(t *testing.T) {
	setupBuildTree(t, "package: \"txsuds\"\n"+
		"version: \"0.0.1\"\n"+
		"hooks: post_build: \"echo $STAGING_DIR > staged_dir.txt\"\n")

	if err := runBuild(buildCmd, nil); err != nil {
		t.Fatalf("runBuild() error = %v", err)
	}

	data, err := os.ReadFile("staged_dir.txt")
	if err != nil {
		t.Fatalf("post hook did not run: %v", err)
	}
	got := strings.TrimSpace(string(data))
	if got == "" {
		t.Fatal("STAGING_DIR expanded empty in a post-only hook")
	}
	if want := filepath.Join("build", "txsuds-0.0.1"); !strings.HasSuffix(got, want) {
		t.Errorf("STAGING_DIR = %q, want suffix %q", got, want)
	}
}

func TestBuildVerboseEmptyMatch(t *testing.T) {
	dir := setupBuildTree(t, "package: \"txsuds\"\n"+
		"version: \"0.0.1\"\n"+
		"extensions: [\".zzz\"]\n"+
		"aux: []\n")

	verbose = true
	defer func() { verbose = false }()

	if err := runBuild(buildCmd, nil); err != nil {
		t.Fatalf("runBuild() error = %v", err)
	}

	// Zero matches is not an error; the archive still lands in dist/.
	archive := filepath.Join(dir, "dist", "txsuds-0.0.1.tar.gz")
	if _, err := os.Stat(archive); err != nil {
		t.Errorf("archive missing for empty match set: %v", err)
	}
}

func TestGenerateDistfileParses(t *testing.T) {
	content := generateDistfile("txsuds")

	df, err := distfile.ParseBytes([]byte(content), distfile.FileName)
	if err != nil {
		t.Fatalf("generated distfile should parse: %v", err)
	}
	if df.Package != "txsuds" {
		t.Errorf("Package = %q, want txsuds", df.Package)
	}
	if df.Product != "txsuds" {
		t.Errorf("Product = %q, want txsuds", df.Product)
	}
	wantExt := strings.Join(distfile.DefaultExtensions, ",")
	if got := strings.Join(df.Extensions, ","); got != wantExt {
		t.Errorf("Extensions = %q, want defaults %q", got, wantExt)
	}
	wantAux := strings.Join(distfile.DefaultAux, ",")
	if got := strings.Join(df.Aux, ","); got != wantAux {
		t.Errorf("Aux = %q, want defaults %q", got, wantAux)
	}
}
