// SPDX-License-Identifier: MPL-2.0

package sdist

import (
	"fmt"
	"os"
	"path/filepath"
)

// BuildOptions describe one build invocation.
type BuildOptions struct {
	// Root is the working tree containing the package.
	Root string
	// Product is the distribution name.
	Product string
	// Version is the resolved, validated version string.
	Version string
	// Prefix is the optional distributor prefix for the archive name.
	Prefix string

	// Collect tunes file selection.
	Collect CollectOptions

	// DistDir overrides the output directory (default <root>/dist).
	DistDir string
	// KeepBuild leaves the staging directory in place after archiving.
	KeepBuild bool

	// PreArchive, when set, runs after staging and before archiving,
	// receiving the staging directory. A returned error aborts the
	// build and leaves no archive behind.
	PreArchive func(stagingDir string) error
	// PostArchive, when set, runs after the archive has been written,
	// receiving the archive path.
	PostArchive func(archivePath string) error
}

// Build runs the whole pipeline: remove any previous build/ directory,
// collect, stage into build/<product>-<version>/, archive into the dist
// directory. An empty manifest is not an error and still produces an
// archive holding just the top-level directory.
func (opts BuildOptions) Build() (*Result, error) {
	if opts.Product == "" {
		return nil, fmt.Errorf("product name cannot be empty")
	}
	if opts.Version == "" {
		return nil, fmt.Errorf("version cannot be empty")
	}
	if err := ValidatePrefix(opts.Prefix); err != nil {
		return nil, err
	}

	absRoot, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root: %w", err)
	}

	manifest, err := Collect(absRoot, opts.Collect)
	if err != nil {
		return nil, err
	}

	// A stale build/ from a previous run is removed wholesale; the
	// pipeline assumes single-invocation use of the tree.
	buildDir := filepath.Join(absRoot, BuildDirName)
	if err := os.RemoveAll(buildDir); err != nil {
		return nil, fmt.Errorf("failed to remove previous build directory: %w", err)
	}

	stagingDir := filepath.Join(buildDir, DirName(opts.Product, opts.Version))
	if err := Stage(manifest, stagingDir); err != nil {
		return nil, err
	}

	if opts.PreArchive != nil {
		if err := opts.PreArchive(stagingDir); err != nil {
			return nil, fmt.Errorf("pre-build hook failed: %w", err)
		}
	}

	distDir := opts.DistDir
	if distDir == "" {
		distDir = filepath.Join(absRoot, DistDirName)
	}
	outPath := filepath.Join(distDir, ArchiveName(opts.Prefix, opts.Product, opts.Version))

	archivePath, err := Archive(stagingDir, outPath)
	if err != nil {
		return nil, err
	}

	if opts.PostArchive != nil {
		if err := opts.PostArchive(archivePath); err != nil {
			return nil, fmt.Errorf("post-build hook failed: %w", err)
		}
	}

	result := &Result{
		ArchivePath: archivePath,
		StagingDir:  stagingDir,
		FileCount:   len(manifest.Entries),
	}

	if info, err := os.Stat(archivePath); err == nil {
		result.ArchiveSize = info.Size()
	}

	if !opts.KeepBuild {
		if err := os.RemoveAll(buildDir); err != nil {
			return nil, fmt.Errorf("failed to clean build directory: %w", err)
		}
		result.StagingDir = ""
	}

	return result, nil
}
