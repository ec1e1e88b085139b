// Package matrix: conversions between Sparse and plain row-major [][]int64.
// Dense views are for display and small reference computations; they cost
// O(rows*cols) memory regardless of nnz.
package matrix

const (
	opToDense   = "ToDense"
	opFromDense = "FromDense"
)

// ToDense materializes m as rows×cols slices.
// Stage 1 (Validate): non-nil, shape with a cell count that fits in int,
// every entry in bounds.
// Stage 2 (Execute): allocate one flat buffer and scatter the entries.
// Errors: ErrNilMatrix, ErrBadShape, ErrOutOfRange.
// Complexity: O(rows*cols + nnz).
func ToDense(m *Sparse) ([][]int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToDense, err)
	}
	cells, err := CellCount(m.rows, m.cols)
	if err != nil {
		return nil, matrixErrorf(opToDense, err)
	}
	if err := ValidateInBounds(m); err != nil {
		return nil, matrixErrorf(opToDense, err)
	}

	// Single backing allocation, sliced per row.
	flat := make([]int64, cells)
	out := make([][]int64, m.rows)
	for i := range out {
		out[i] = flat[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]
	}
	m.Range(func(e Entry) bool {
		out[e.Row][e.Col] = e.Value
		return true
	})

	return out, nil
}

// FromDense builds a Sparse from row-major data, storing only non-zeros in
// row-then-column order. All rows must have equal length; an empty input
// yields a 0×0 matrix.
// Errors: ErrBadShape on ragged rows.
// Complexity: O(rows*cols).
func FromDense(data [][]int64) (*Sparse, error) {
	rows, cols := len(data), 0
	if rows > 0 {
		cols = len(data[0])
	}
	m := New(rows, cols)
	for i, row := range data {
		if len(row) != cols {
			return nil, matrixErrorf(opFromDense, ErrBadShape)
		}
		for j, v := range row {
			m.Set(i, j, v)
		}
	}

	return m, nil
}
