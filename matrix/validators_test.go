// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/sparsemat/matrix"
)

func TestValidators_Shapes(t *testing.T) {
	t.Parallel()
	a := matrix.New(2, 3)
	b := matrix.New(3, 2)

	if err := matrix.ValidateSameShape(a, a); err != nil {
		t.Fatalf("same shape: %v", err)
	}
	if err := matrix.ValidateSameShape(a, b); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		t.Fatalf("mul compatible: %v", err)
	}
	if err := matrix.ValidateMulCompatible(a, a); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
}

func TestValidators_CompositeOrder(t *testing.T) {
	t.Parallel()
	a := matrix.New(2, 3)

	// nil wins over shape mismatch.
	if err := matrix.ValidateBinarySameShape(nil, a); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("want ErrNilMatrix, got %v", err)
	}
	if err := matrix.ValidateBinaryMul(a, nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("want ErrNilMatrix, got %v", err)
	}
	if err := matrix.ValidateBinaryMul(a, a); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
}

func TestValidateShape(t *testing.T) {
	t.Parallel()
	if err := matrix.ValidateShape(0, 0); err != nil {
		t.Fatalf("0x0: %v", err)
	}
	if err := matrix.ValidateShape(1, -1); !errors.Is(err, matrix.ErrBadShape) {
		t.Fatalf("want ErrBadShape, got %v", err)
	}
}

func TestCellCount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		rows, cols int
		want       int
		wantErr    bool
	}{
		{"empty", 0, 0, 0, false},
		{"zero cols with huge rows", math.MaxInt, 0, 0, false},
		{"regular", 3, 4, 12, false},
		{"max fits", math.MaxInt, 1, math.MaxInt, false},
		{"negative", -1, 2, 0, true},
		{"wraps to zero", 4, 1 << 62, 0, true},
		{"just over", math.MaxInt/2 + 1, 2, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.CellCount(tc.rows, tc.cols)
			if tc.wantErr {
				if !errors.Is(err, matrix.ErrBadShape) {
					t.Fatalf("want ErrBadShape, got %v", err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("CellCount(%d, %d) = %d, %v; want %d", tc.rows, tc.cols, got, err, tc.want)
			}
		})
	}
}

func TestValidateInBounds(t *testing.T) {
	t.Parallel()
	m := FromEntries(2, 2, E(0, 0, 1), E(1, 1, 1))
	if err := matrix.ValidateInBounds(m); err != nil {
		t.Fatalf("in bounds: %v", err)
	}
	m.Set(0, 2, 5)
	if err := matrix.ValidateInBounds(m); !errors.Is(err, matrix.ErrOutOfRange) {
		t.Fatalf("want ErrOutOfRange, got %v", err)
	}
	if err := matrix.ValidateInBounds(nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("want ErrNilMatrix, got %v", err)
	}
}
