// SPDX-License-Identifier: MPL-2.0

package sdist

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// CollectOptions tune which files a collection pass selects.
type CollectOptions struct {
	// Extensions selects files by suffix anywhere in the tree.
	Extensions []string
	// Aux selects files by exact base name at the tree root only.
	Aux []string
	// Exclude holds path.Match globs applied to slash-separated
	// relative paths; matches are dropped even if selected above.
	Exclude []string
}

// Collect walks the tree rooted at root and returns the manifest of
// files a build would stage. The build and dist directories are never
// descended into, so a previous build cannot leak into the next one,
// and hidden entries (leading dot) are skipped whether file or
// directory.
func Collect(root string, opts CollectOptions) (*Manifest, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", absRoot)
	}

	m := &Manifest{Root: absRoot}

	err = filepath.WalkDir(absRoot, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if p == absRoot {
			return nil
		}

		name := d.Name()

		if d.IsDir() {
			// Never recurse into build output, dist output or hidden
			// directories (.git and friends).
			if name == BuildDirName || name == DistDirName || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		// Dot-files are skipped like hidden directories, so .hidden.py
		// never satisfies the extension filter.
		if strings.HasPrefix(name, ".") {
			return nil
		}

		rel, err := filepath.Rel(absRoot, p)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}
		rel = filepath.ToSlash(rel)

		aux := isAux(rel, name, opts.Aux)
		if !aux && !matchesExtension(name, opts.Extensions) {
			return nil
		}
		if excluded(rel, opts.Exclude) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", p, err)
		}

		m.Entries = append(m.Entries, FileEntry{
			RelPath: rel,
			Aux:     aux,
			Size:    fi.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", absRoot, err)
	}

	sort.Slice(m.Entries, func(i, j int) bool {
		return m.Entries[i].RelPath < m.Entries[j].RelPath
	})

	return m, nil
}

// isAux reports whether the entry matches the auxiliary allowlist.
// Aux files are matched at the tree root only.
func isAux(rel, name string, aux []string) bool {
	if strings.Contains(rel, "/") {
		return false
	}
	for _, a := range aux {
		if name == a {
			return true
		}
	}
	return false
}

func matchesExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func excluded(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := path.Match(pattern, rel); err == nil && ok {
			return true
		}
		// Also try matching against the base name so "*.pyc" style
		// patterns apply at any depth.
		if ok, err := path.Match(pattern, path.Base(rel)); err == nil && ok {
			return true
		}
	}
	return false
}
