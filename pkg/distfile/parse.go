// SPDX-License-Identifier: MPL-2.0

package distfile

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"pydist-cli/pkg/cueutil"
)

//go:embed distfile_schema.cue
var distfileSchema string

// Parse reads and parses a distfile from the given path.
func Parse(path string) (*Distfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read distfile at %s: %w", path, err)
	}
	return ParseBytes(data, path)
}

// ParseBytes parses distfile content from bytes. Uses
// cueutil.ParseAndDecodeString for the schema-unify-decode flow.
func ParseBytes(data []byte, path string) (*Distfile, error) {
	d, err := cueutil.ParseAndDecodeString[Distfile](
		distfileSchema,
		data,
		"#Distfile",
		cueutil.WithFilename(path),
	)
	if err != nil {
		return nil, err
	}

	d.FilePath = path

	if err := d.validate(); err != nil {
		return nil, cueutil.FormatError(err, path)
	}

	return d, nil
}

// Find locates the distfile for the given directory. Only the directory
// itself is consulted; pydist does not walk upward, the build is always
// rooted where the distfile lives.
func Find(dir string) (string, error) {
	p := filepath.Join(dir, FileName)
	info, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no %s found in %s", FileName, dir)
		}
		return "", fmt.Errorf("failed to stat %s: %w", p, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s must be a file, not a directory", p)
	}
	return p, nil
}
