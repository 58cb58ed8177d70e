// SPDX-License-Identifier: MPL-2.0

package sdist

import "testing"

func TestDirName(t *testing.T) {
	if got := DirName("txsuds", "1.2.3"); got != "txsuds-1.2.3" {
		t.Errorf("DirName() = %q, want %q", got, "txsuds-1.2.3")
	}
}

func TestArchiveName(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		product string
		version string
		want    string
	}{
		{
			name:    "no prefix",
			product: "txsuds",
			version: "1.2.3",
			want:    "txsuds-1.2.3.tar.gz",
		},
		{
			name:    "distributor prefix",
			prefix:  "acme",
			product: "txsuds",
			version: "1.2.3",
			want:    "acme-txsuds-1.2.3.tar.gz",
		},
		{
			name:    "dev version",
			product: "mypkg",
			version: "0.1.dev0",
			want:    "mypkg-0.1.dev0.tar.gz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ArchiveName(tt.prefix, tt.product, tt.version); got != tt.want {
				t.Errorf("ArchiveName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidatePrefix(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		wantErr bool
	}{
		{name: "empty is valid", prefix: ""},
		{name: "plain name", prefix: "acme"},
		{name: "name with dots", prefix: "com.acme"},
		{name: "forward slash", prefix: "a/b", wantErr: true},
		{name: "backslash", prefix: `a\b`, wantErr: true},
		{name: "surrounding whitespace", prefix: " acme", wantErr: true},
		{name: "interior space", prefix: "a b", wantErr: true},
		{name: "interior tab", prefix: "a\tb", wantErr: true},
		{name: "control character", prefix: "a\x00b", wantErr: true},
		{name: "dot dot", prefix: "..", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrefix(tt.prefix)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePrefix(%q) error = %v, wantErr %v", tt.prefix, err, tt.wantErr)
			}
		})
	}
}

func TestManifestTotalSize(t *testing.T) {
	m := &Manifest{
		Entries: []FileEntry{
			{RelPath: "a.py", Size: 10},
			{RelPath: "b.py", Size: 32},
		},
	}
	if got := m.TotalSize(); got != 42 {
		t.Errorf("TotalSize() = %d, want 42", got)
	}
}
