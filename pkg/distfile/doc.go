// SPDX-License-Identifier: MPL-2.0

// Package distfile loads and validates the per-project distribution
// descriptor.
//
// A distfile is a CUE document named "distfile.cue" at the root of a
// Python package's working tree. It names the importable package,
// optionally overrides the product name and version, and tunes which
// files are staged into the source distribution:
//
//	package: "txsuds"
//	product: "txsuds"
//	extensions: [".py", ".spec", ".cfg"]
//	aux: ["LICENSE", "README", "makefile"]
//	hooks: {
//		pre_build: "echo building $PRODUCT-$VERSION"
//	}
//
// Every field except "package" has a default, so the minimal distfile
// is a single line.
package distfile
