// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape and presence checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//
// Determinism & Performance:
//  - Shape checks are O(1) and allocate nothing on success.
//  - ValidateInBounds is O(nnz).
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Sparse) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateSameShape(a, b *Sparse) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows().
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Sparse) error {
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b *Sparse) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateBinaryMul – Composite: NotNil(a) → NotNil(b) → MulCompatible.
func ValidateBinaryMul(a, b *Sparse) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinaryMul", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinaryMul", err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return validatorErrorf("ValidateBinaryMul", err)
	}

	return nil
}

// ValidateShape rejects negative dimensions with ErrBadShape.
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}

	return nil
}

// CellCount returns rows*cols, the number of cells a dense view of the
// shape holds.
// Errors: ErrBadShape on negative dimensions or when the product overflows int.
// Complexity: O(1).
func CellCount(rows, cols int) (int, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return 0, validatorErrorf("CellCount", err)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return 0, fmt.Errorf("CellCount: %dx%d overflows int: %w", rows, cols, ErrBadShape)
	}

	return rows * cols, nil
}

// inBounds reports whether (row, col) lies inside a rows×cols shape.
func inBounds(row, col, rows, cols int) bool {
	return row >= 0 && row < rows && col >= 0 && col < cols
}

// ValidateInBounds checks that every stored entry lies inside the declared
// shape. This is the explicit, opt-in counterpart of the permissive At/Set.
// Errors: ErrNilMatrix, ErrOutOfRange (naming the first offending entry).
// Complexity: O(nnz).
func ValidateInBounds(m *Sparse) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateInBounds", err)
	}
	var bad *Entry
	m.Range(func(e Entry) bool {
		if !inBounds(e.Row, e.Col, m.rows, m.cols) {
			bad = &e
			return false
		}
		return true
	})
	if bad != nil {
		return fmt.Errorf("ValidateInBounds: entry %s outside %s: %w", bad, m.Shape(), ErrOutOfRange)
	}

	return nil
}
