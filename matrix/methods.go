// SPDX-License-Identifier: MIT
// Package matrix provides element-wise addition, subtraction and matrix
// multiplication on Sparse matrices. All functions validate shapes before
// doing any work, never mutate their operands and return a fresh result.
package matrix

// Operation name constants for unified error wrapping and log records.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// Add returns a new matrix holding the element-wise sum a + b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Execute): write a's entries combined with b, then b-only entries.
// Only the union of stored positions is touched; sums that cancel to zero
// are not stored. Values are int64 and wrap on overflow; a sum that wraps to
// zero is not stored either.
// Complexity: O(nnz(a) + nnz(b)).
func Add(a, b *Sparse, opts ...Option) (*Sparse, error) {
	return addSub(opAdd, a, b, 1, opts)
}

// Sub returns a new matrix holding the element-wise difference a - b.
// Entries present only in b are written negated.
// Complexity: O(nnz(a) + nnz(b)).
func Sub(a, b *Sparse, opts ...Option) (*Sparse, error) {
	return addSub(opSub, a, b, -1, opts)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Positions stored in b are skipped in the second pass when a holds them,
// so a cancellation in the first pass is never overwritten by b's raw value.
func addSub(op string, a, b *Sparse, sign int64, opts []Option) (*Sparse, error) {
	o := gatherOptions(opts...)
	// Stage 1: validate presence before announcing shapes.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	o.announce(op, a, b)
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}

	// Stage 2: union of stored positions.
	res := New(a.rows, a.cols)
	a.Range(func(e Entry) bool {
		res.Set(e.Row, e.Col, e.Value+sign*b.At(e.Row, e.Col))
		return true
	})
	b.Range(func(e Entry) bool {
		if !a.Has(e.Row, e.Col) {
			res.Set(e.Row, e.Col, sign*e.Value)
		}
		return true
	})

	return res, nil
}

// Mul returns the matrix product a × b with shape a.Rows()×b.Cols().
// Stage 1 (Validate): nil-checks and a.Cols() == b.Rows().
// Stage 2 (Execute): for each stored (r, k, v1) of a, scan row k of b
// column by column and accumulate v1*v2 into result[r, c].
// Products and partial sums wrap on int64 overflow, as in Add.
// Complexity: O(nnz(a) · b.Cols()); no index of b's rows is built.
func Mul(a, b *Sparse, opts ...Option) (*Sparse, error) {
	o := gatherOptions(opts...)
	// Stage 1: Validate inputs
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	o.announce(opMul, a, b)
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 2: accumulate through At/Set so partial sums that cancel vanish.
	res := New(a.rows, b.cols)
	a.Range(func(e Entry) bool {
		for c := 0; c < b.cols; c++ {
			v2 := b.At(e.Col, c)
			if v2 == 0 {
				continue
			}
			res.Set(e.Row, c, res.At(e.Row, c)+e.Value*v2)
		}
		return true
	})

	return res, nil
}

// Add is the method form of the package-level Add: m + other.
func (m *Sparse) Add(other *Sparse, opts ...Option) (*Sparse, error) {
	return Add(m, other, opts...)
}

// Sub is the method form of the package-level Sub: m - other.
func (m *Sparse) Sub(other *Sparse, opts ...Option) (*Sparse, error) {
	return Sub(m, other, opts...)
}

// Mul is the method form of the package-level Mul: m × other.
func (m *Sparse) Mul(other *Sparse, opts ...Option) (*Sparse, error) {
	return Mul(m, other, opts...)
}
