// SPDX-License-Identifier: MPL-2.0

// Package pyversion resolves the version string of a Python package in
// a working tree.
//
// The canonical strategy is the one the original packaging flow used:
// import the package with the interpreter and print its __version__
// attribute. Two fallbacks cover trees where no interpreter is
// available: a static scan of the package's __init__.py, and the
// version recorded in pyproject.toml.
package pyversion
