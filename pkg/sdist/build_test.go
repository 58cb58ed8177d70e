// SPDX-License-Identifier: MPL-2.0

package sdist

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// archiveFiles lists the regular-file entries of a tar.gz archive.
func archiveFiles(t *testing.T, path string) []string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}
	defer gz.Close()

	var files []string
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		if hdr.Typeflag == tar.TypeReg {
			files = append(files, hdr.Name)
		}
	}
	sort.Strings(files)
	return files
}

func buildOptions(root string) BuildOptions {
	return BuildOptions{
		Root:    root,
		Product: "txsuds",
		Version: "1.2.3",
		Collect: CollectOptions{
			Extensions: []string{".py", ".spec", ".cfg"},
			Aux:        []string{"LICENSE", "README", "makefile"},
		},
	}
}

func TestBuild(t *testing.T) {
	root := writeTree(t, []string{
		"LICENSE",
		"README",
		"setup.py",
		"txsuds/__init__.py",
		"txsuds/transport/options.py",
		"notes.txt",
	})

	result, err := buildOptions(root).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	wantArchive := filepath.Join(root, "dist", "txsuds-1.2.3.tar.gz")
	if result.ArchivePath != wantArchive {
		t.Errorf("ArchivePath = %q, want %q", result.ArchivePath, wantArchive)
	}
	if result.FileCount != 5 {
		t.Errorf("FileCount = %d, want 5", result.FileCount)
	}
	if result.ArchiveSize <= 0 {
		t.Errorf("ArchiveSize = %d, want > 0", result.ArchiveSize)
	}

	want := []string{
		"txsuds-1.2.3/LICENSE",
		"txsuds-1.2.3/README",
		"txsuds-1.2.3/setup.py",
		"txsuds-1.2.3/txsuds/__init__.py",
		"txsuds-1.2.3/txsuds/transport/options.py",
	}
	got := archiveFiles(t, result.ArchivePath)
	if len(got) != len(want) {
		t.Fatalf("archive files = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("archive file[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Default behavior cleans the staging area.
	if _, err := os.Stat(filepath.Join(root, BuildDirName)); !os.IsNotExist(err) {
		t.Errorf("build directory should be removed after archiving")
	}
}

func TestBuildWithPrefix(t *testing.T) {
	root := writeTree(t, []string{"a.py"})

	opts := buildOptions(root)
	opts.Prefix = "acme"

	result, err := opts.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := filepath.Base(result.ArchivePath); got != "acme-txsuds-1.2.3.tar.gz" {
		t.Errorf("archive name = %q, want acme-txsuds-1.2.3.tar.gz", got)
	}

	// The prefix names the archive only; the top-level dir stays
	// version-qualified without it.
	files := archiveFiles(t, result.ArchivePath)
	if len(files) != 1 || files[0] != "txsuds-1.2.3/a.py" {
		t.Errorf("archive files = %v, want [txsuds-1.2.3/a.py]", files)
	}
}

func TestBuildEmptyManifestStillArchives(t *testing.T) {
	root := writeTree(t, []string{"data.bin"})

	result, err := buildOptions(root).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if result.FileCount != 0 {
		t.Errorf("FileCount = %d, want 0", result.FileCount)
	}
	if _, err := os.Stat(result.ArchivePath); err != nil {
		t.Errorf("empty archive should still be written: %v", err)
	}
	if files := archiveFiles(t, result.ArchivePath); len(files) != 0 {
		t.Errorf("empty build should contain no regular files, got %v", files)
	}
}

func TestBuildKeepBuild(t *testing.T) {
	root := writeTree(t, []string{"a.py"})

	opts := buildOptions(root)
	opts.KeepBuild = true

	result, err := opts.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	wantStaging := filepath.Join(root, BuildDirName, "txsuds-1.2.3")
	if result.StagingDir != wantStaging {
		t.Errorf("StagingDir = %q, want %q", result.StagingDir, wantStaging)
	}
	if _, err := os.Stat(filepath.Join(wantStaging, "a.py")); err != nil {
		t.Errorf("staged file missing: %v", err)
	}
}

func TestBuildRemovesStaleBuildDir(t *testing.T) {
	root := writeTree(t, []string{
		"a.py",
		"build/txsuds-0.9/stale.py",
	})

	opts := buildOptions(root)
	opts.KeepBuild = true

	result, err := opts.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// The stale staging tree must be gone, and nothing from it may
	// leak into the archive.
	if _, err := os.Stat(filepath.Join(root, "build", "txsuds-0.9")); !os.IsNotExist(err) {
		t.Errorf("stale build directory should have been removed")
	}
	files := archiveFiles(t, result.ArchivePath)
	if len(files) != 1 || files[0] != "txsuds-1.2.3/a.py" {
		t.Errorf("archive files = %v, want [txsuds-1.2.3/a.py]", files)
	}
}

func TestBuildRerunContentIdentical(t *testing.T) {
	root := writeTree(t, []string{"a.py", "LICENSE"})

	first, err := buildOptions(root).Build()
	if err != nil {
		t.Fatalf("first Build() error = %v", err)
	}
	firstFiles := archiveFiles(t, first.ArchivePath)

	second, err := buildOptions(root).Build()
	if err != nil {
		t.Fatalf("second Build() error = %v", err)
	}
	secondFiles := archiveFiles(t, second.ArchivePath)

	if len(firstFiles) != len(secondFiles) {
		t.Fatalf("rerun changed contents: %v vs %v", firstFiles, secondFiles)
	}
	for i := range firstFiles {
		if firstFiles[i] != secondFiles[i] {
			t.Errorf("rerun file[%d] = %q, want %q", i, secondFiles[i], firstFiles[i])
		}
	}
}

func TestBuildHooks(t *testing.T) {
	root := writeTree(t, []string{"a.py"})

	var preDir, postArchive string

	opts := buildOptions(root)
	opts.PreArchive = func(stagingDir string) error {
		preDir = stagingDir
		return nil
	}
	opts.PostArchive = func(archivePath string) error {
		postArchive = archivePath
		return nil
	}

	result, err := opts.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if preDir == "" || filepath.Base(preDir) != "txsuds-1.2.3" {
		t.Errorf("PreArchive staging dir = %q", preDir)
	}
	if postArchive != result.ArchivePath {
		t.Errorf("PostArchive path = %q, want %q", postArchive, result.ArchivePath)
	}
}

func TestBuildPreArchiveFailureAborts(t *testing.T) {
	root := writeTree(t, []string{"a.py"})

	opts := buildOptions(root)
	opts.PreArchive = func(string) error {
		return os.ErrPermission
	}

	if _, err := opts.Build(); err == nil {
		t.Fatal("Build() should fail when the pre-archive hook fails")
	}

	// No archive may be left behind.
	if _, err := os.Stat(filepath.Join(root, "dist", "txsuds-1.2.3.tar.gz")); !os.IsNotExist(err) {
		t.Errorf("failed build should not leave an archive")
	}
}

func TestBuildValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BuildOptions)
	}{
		{name: "empty product", mutate: func(o *BuildOptions) { o.Product = "" }},
		{name: "empty version", mutate: func(o *BuildOptions) { o.Version = "" }},
		{name: "bad prefix", mutate: func(o *BuildOptions) { o.Prefix = "a/b" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeTree(t, []string{"a.py"})
			opts := buildOptions(root)
			tt.mutate(&opts)

			if _, err := opts.Build(); err == nil {
				t.Error("Build() should fail")
			}
		})
	}
}
