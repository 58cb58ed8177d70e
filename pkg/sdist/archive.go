// SPDX-License-Identifier: MPL-2.0

package sdist

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Archive writes a gzip-compressed tar of stagingDir to outPath. Every
// entry in the archive lives under the staging directory's base name,
// so extracting yields a single top-level <name>-<version>/ directory.
// Returns the absolute path of the written archive.
func Archive(stagingDir, outPath string) (string, error) {
	absStaging, err := filepath.Abs(stagingDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve staging directory: %w", err)
	}

	absOut, err := filepath.Abs(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(absOut), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	out, err := os.Create(absOut)
	if err != nil {
		return "", fmt.Errorf("failed to create archive file: %w", err)
	}

	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	topDir := filepath.Base(absStaging)

	walkErr := filepath.WalkDir(absStaging, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(absStaging, p)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}

		// Tar paths use forward slashes and are rooted at the
		// version-qualified directory.
		name := topDir
		if rel != "." {
			name = topDir + "/" + filepath.ToSlash(rel)
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", p, err)
		}

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return fmt.Errorf("failed to build header for %s: %w", name, err)
		}
		header.Name = name
		if d.IsDir() {
			header.Name += "/"
		}

		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("failed to write header for %s: %w", name, err)
		}
		if d.IsDir() {
			return nil
		}

		f, err := os.Open(p)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", p, err)
		}
		defer f.Close()

		if _, err := io.Copy(tw, f); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		return nil
	})

	if walkErr != nil {
		tw.Close()
		gz.Close()
		out.Close()
		os.Remove(absOut)
		return "", fmt.Errorf("failed to archive staging directory: %w", walkErr)
	}

	if err := tw.Close(); err != nil {
		gz.Close()
		out.Close()
		os.Remove(absOut)
		return "", fmt.Errorf("failed to finalize tar stream: %w", err)
	}
	if err := gz.Close(); err != nil {
		out.Close()
		os.Remove(absOut)
		return "", fmt.Errorf("failed to finalize gzip stream: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(absOut)
		return "", fmt.Errorf("failed to close archive file: %w", err)
	}

	return absOut, nil
}
