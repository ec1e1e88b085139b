// Package sparsemat is a small toolkit for sparse integer matrices.
//
// What is in here?
//
//	matrix/          — Sparse type, Add/Sub/Mul, text codec, dense conversions
//	internal/config/ — SPARSECALC_* environment configuration
//	internal/cli/    — cobra command tree for the sparsecalc binary
//	cmd/sparsecalc/  — entry point
//
// File format:
//
//	rows=3
//	cols=3
//	(0, 0, 1)
//	(2, 1, -4)
//
// Only non-zero cells are listed. Blank lines are ignored.
//
// Quick example:
//
//	a, _ := matrix.LoadFile("a.txt")
//	b, _ := matrix.LoadFile("b.txt")
//	prod, err := a.Mul(b)
//	if errors.Is(err, matrix.ErrDimensionMismatch) {
//		// a.Cols() != b.Rows()
//	}
//	_ = prod.SaveFile("prod.txt")
package sparsemat
