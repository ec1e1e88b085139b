// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for the sparse store and kernels.
//   • Provide dense reference kernels so sparse results can be cross-checked.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsemat/matrix"
)

// MustDecode decodes text or fails the test.
func MustDecode(t *testing.T, text string) *matrix.Sparse {
	t.Helper()
	m, err := matrix.Decode(text)
	if err != nil {
		t.Fatalf("Decode(%q): %v", text, err)
	}

	return m
}

// FromEntries builds an r×c matrix from the given entries, in order.
func FromEntries(r, c int, entries ...matrix.Entry) *matrix.Sparse {
	m := matrix.New(r, c)
	for _, e := range entries {
		m.Set(e.Row, e.Col, e.Value)
	}

	return m
}

// E is a short constructor for entries in table-driven tests.
func E(row, col int, v int64) matrix.Entry {
	return matrix.Entry{Row: row, Col: col, Value: v}
}

// EntrySet flattens m into a position → value map (order-free comparison).
func EntrySet(m *matrix.Sparse) map[[2]int]int64 {
	out := make(map[[2]int]int64, m.NNZ())
	m.Range(func(e matrix.Entry) bool {
		out[[2]int{e.Row, e.Col}] = e.Value
		return true
	})

	return out
}

// MustDense converts m to dense rows or fails the test.
func MustDense(t *testing.T, m *matrix.Sparse) [][]int64 {
	t.Helper()
	d, err := matrix.ToDense(m)
	if err != nil {
		t.Fatalf("ToDense: %v", err)
	}

	return d
}

// RandomSparse fills an r×c matrix with roughly density*r*c non-zeros drawn
// from [-5, 5]. Deterministic for a given rng.
func RandomSparse(rng *rand.Rand, r, c int, density float64) *matrix.Sparse {
	m := matrix.New(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Float64() < density {
				m.Set(i, j, int64(rng.Intn(11)-5))
			}
		}
	}

	return m
}

// denseAddSub is the O(r*c) reference for a + sign*b.
func denseAddSub(a, b [][]int64, sign int64) [][]int64 {
	out := make([][]int64, len(a))
	for i := range a {
		out[i] = make([]int64, len(a[i]))
		for j := range a[i] {
			out[i][j] = a[i][j] + sign*b[i][j]
		}
	}

	return out
}

// denseMul is the O(r*n*c) reference product.
func denseMul(a, b [][]int64, cols int) [][]int64 {
	out := make([][]int64, len(a))
	for i := range a {
		out[i] = make([]int64, cols)
		for k := range a[i] {
			for j := 0; j < cols; j++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}

// AssertNoZeros fails if any stored entry holds 0.
func AssertNoZeros(t *testing.T, m *matrix.Sparse) {
	t.Helper()
	m.Range(func(e matrix.Entry) bool {
		if e.Value == 0 {
			t.Fatalf("stored zero at (%d,%d)", e.Row, e.Col)
		}
		return true
	})
}
