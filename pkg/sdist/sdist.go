// SPDX-License-Identifier: MPL-2.0

// Package sdist builds source distribution tarballs.
//
// A build is a linear pipeline: collect candidate files from the
// working tree, stage them into a version-named directory under
// build/, then archive the staged tree to dist/<name>-<version>.tar.gz
// with the version-named directory as the single top-level entry.
//
// The pipeline assumes exclusive use of the working tree: any
// pre-existing build/ directory is removed before staging, so a
// staging collision is silently overwritten.
package sdist

import (
	"fmt"
	"unicode"
)

const (
	// BuildDirName is the staging area removed and recreated per build.
	BuildDirName = "build"
	// DistDirName is where finished archives land.
	DistDirName = "dist"
	// ArchiveSuffix is the archive file suffix.
	ArchiveSuffix = ".tar.gz"
)

type (
	// FileEntry is one collected file, identified by its slash-separated
	// path relative to the tree root.
	FileEntry struct {
		// RelPath is the slash-separated path relative to the root.
		RelPath string
		// Aux is true when the file matched the auxiliary allowlist
		// rather than an extension.
		Aux bool
		// Size is the file size in bytes at collection time.
		Size int64
	}

	// Manifest is the ordered set of files a build would stage.
	Manifest struct {
		// Root is the absolute tree root the entries are relative to.
		Root string
		// Entries is sorted by RelPath.
		Entries []FileEntry
	}

	// Result describes a finished build.
	Result struct {
		// ArchivePath is the absolute path of the written archive.
		ArchivePath string
		// StagingDir is the absolute path of the staging directory.
		// Empty when the staging area was cleaned up after archiving.
		StagingDir string
		// FileCount is the number of regular files archived.
		FileCount int
		// ArchiveSize is the size of the archive in bytes.
		ArchiveSize int64
	}
)

// TotalSize returns the summed size of all manifest entries.
func (m *Manifest) TotalSize() int64 {
	var total int64
	for _, e := range m.Entries {
		total += e.Size
	}
	return total
}

// DirName returns the version-qualified directory name used both for
// staging and as the archive's top-level directory.
func DirName(product, version string) string {
	return product + "-" + version
}

// ArchiveName returns the archive file name, prepending the distributor
// prefix when one is given.
func ArchiveName(prefix, product, version string) string {
	name := DirName(product, version)
	if prefix != "" {
		name = prefix + "-" + name
	}
	return name + ArchiveSuffix
}

// ValidatePrefix checks a distributor prefix for file system safety,
// applying the same character rules as version strings. An empty prefix
// is valid and means no prefix.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return nil
	}
	if prefix == "." || prefix == ".." {
		return fmt.Errorf("distributor prefix %q is not a valid path element", prefix)
	}
	for _, c := range prefix {
		if c == '/' || c == '\\' || unicode.IsSpace(c) || unicode.IsControl(c) {
			return fmt.Errorf("distributor prefix %q is invalid: must be a bare name without separators, whitespace or control characters", prefix)
		}
	}
	return nil
}
