// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines the package-level sentinel errors and the FormatError
// carrier used by the text decoder. All entry points return these sentinels
// (possibly wrapped) and tests check them via errors.Is / errors.As.
// No public operation panics on user-triggered error conditions; panics are
// reserved for nonsensical Option values (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Operations wrap sentinels as fmt.Errorf("Op: %w", ErrX); callers still
// match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> dimension mismatch. Decoding reports the first bad line.

var (
	// ErrFormat is returned when a textual encoding cannot be decoded:
	// missing header line, header without '=', non-integer dimension, or an
	// entry line that is not a well-formed "(int, int, int)" triple.
	ErrFormat = errors.New("matrix: malformed encoding")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g., Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Sparse (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOutOfRange indicates an index outside the declared shape. It is only
	// produced by opt-in checks (WithStrictBounds, ValidateInBounds, ToDense);
	// At and Set never bounds-check.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadShape is returned when a shape cannot be materialized,
	// e.g., negative dimensions in ToDense or ragged rows in FromDense.
	ErrBadShape = errors.New("matrix: invalid shape")
)

// FormatError reports where decoding failed. Line is 1-based; Text is the
// offending line as read (without the trailing newline). Err is the
// underlying cause and always wraps ErrFormat or ErrOutOfRange.
type FormatError struct {
	Line int    // 1-based line number in the source
	Text string // raw line text
	Err  error  // cause
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// formatErrorf builds a *FormatError whose cause wraps ErrFormat with detail.
func formatErrorf(line int, text, format string, args ...any) error {
	return &FormatError{
		Line: line,
		Text: text,
		Err:  fmt.Errorf("%w: "+format, append([]any{ErrFormat}, args...)...),
	}
}

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
