// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error context and a rendered
// troubleshooting catalog.
//
// ActionableError carries what operation failed, which resource was
// involved and suggestions for fixing it; the ErrorContext builder
// constructs these fluently. The catalog side maps well-known failure
// modes (missing interpreter, unresolvable version, missing distfile)
// to markdown help texts rendered with glamour.
package issue
