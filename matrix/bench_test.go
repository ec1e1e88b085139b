// Package matrix_test provides benchmarks for sparse operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsemat/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{128, 512}

// benchDensity is the fraction of non-zero cells.
const benchDensity = 0.01

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Sparse
	sinkS string
)

func benchBinary(b *testing.B, op func(a, b *matrix.Sparse, opts ...matrix.Option) (*matrix.Sparse, error)) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1337))
			A := RandomSparse(rng, n, n, benchDensity)
			B := RandomSparse(rng, n, n, benchDensity)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := op(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) { benchBinary(b, matrix.Add) }

func BenchmarkSub(b *testing.B) { benchBinary(b, matrix.Sub) }

func BenchmarkMul(b *testing.B) { benchBinary(b, matrix.Mul) }

func BenchmarkEncodeDecode(b *testing.B) {
	b.ReportAllocs()
	rng := rand.New(rand.NewSource(4242))
	m := RandomSparse(rng, 512, 512, benchDensity)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkS = m.Encode()
		back, err := matrix.Decode(sinkS)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = back
	}
}

func BenchmarkSetChurn(b *testing.B) {
	b.ReportAllocs()
	m := matrix.New(1024, 1024)
	for i := 0; i < b.N; i++ {
		r, c := i%1024, (i*31)%1024
		m.Set(r, c, int64(i%2)) // alternates insert and delete
	}
	sinkM = m
}
