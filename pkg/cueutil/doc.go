// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared helpers for parsing and validating
// CUE documents against embedded schemas.
//
// Both the global pydist configuration (config.cue) and the per-project
// distfile (distfile.cue) follow the same three-step flow: compile the
// embedded schema, compile the user document, then unify, validate and
// decode into a Go struct. This package centralizes that flow along
// with user-facing error formatting.
package cueutil
