// Package matrix offers a sparse integer matrix and its text encoding.
//
// The matrix package provides:
//
//   - Sparse, storing only non-zero cells keyed by (row, col), with O(1)
//     At/Set and reproducible insertion-ordered iteration.
//   - Add, Sub and Mul, which validate shapes up front, never mutate their
//     operands and touch only stored positions.
//   - Decode/Read/LoadFile and Encode/WriteTo/SaveFile for the
//     "rows=/cols=/(r, c, v)" text format.
//   - ToDense/FromDense for display and small reference computations.
//
// Reads and writes are deliberately permissive: At and Set accept any
// index. Use WithStrictBounds when decoding, or ValidateInBounds, to
// enforce the declared shape.
//
// Example:
//
//	a, _ := matrix.Decode("rows=2\ncols=2\n(0, 0, 1)\n(1, 1, 2)\n")
//	b, _ := matrix.Decode("rows=2\ncols=2\n(0, 0, 3)\n(0, 1, 5)\n")
//	sum, err := a.Add(b, matrix.WithLogger(slog.Default()))
//	if err != nil {
//		// errors.Is(err, matrix.ErrDimensionMismatch)
//	}
//	fmt.Print(sum.Encode())
package matrix
