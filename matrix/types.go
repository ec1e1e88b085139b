// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the sparse store, the arithmetic
// kernels and the codec.
package matrix

import "fmt"

// pairKey is a (row, col) position used as the element-store key.
// Using a comparable struct of ints keeps the key compact and hash-friendly.
// Complexity: O(1) to build and hash.
type pairKey struct {
	row int // row index
	col int // column index
}

// Entry is one stored non-zero cell: the (row, column, value) triple of the
// textual encoding.
type Entry struct {
	Row   int
	Col   int
	Value int64
}

// String renders the entry exactly as it appears in the encoding.
func (e Entry) String() string {
	return fmt.Sprintf("(%d, %d, %d)", e.Row, e.Col, e.Value)
}

// Shape is a rows×cols pair, mainly for diagnostics and CLI reports.
type Shape struct {
	Rows int `json:"rows" yaml:"rows"`
	Cols int `json:"cols" yaml:"cols"`
}

// String renders the shape as "RxC".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}
