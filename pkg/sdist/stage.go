// SPDX-License-Identifier: MPL-2.0

package sdist

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Stage copies the manifest entries into stagingDir, preserving
// relative paths and file modes. The directory is created if missing;
// existing contents are overwritten silently.
func Stage(m *Manifest, stagingDir string) error {
	absStaging, err := filepath.Abs(stagingDir)
	if err != nil {
		return fmt.Errorf("failed to resolve staging directory: %w", err)
	}

	if err := os.MkdirAll(absStaging, 0o755); err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}

	for _, entry := range m.Entries {
		src := filepath.Join(m.Root, filepath.FromSlash(entry.RelPath))
		dst := filepath.Join(absStaging, filepath.FromSlash(entry.RelPath))

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", entry.RelPath, err)
		}
		if err := copyFile(src, dst); err != nil {
			return fmt.Errorf("failed to stage %s: %w", entry.RelPath, err)
		}
	}

	return nil
}

// copyFile copies src to dst, carrying over the source file mode.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
