// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for the sparse kernels.
//   - Keep a plain [][]float64 reference so every kernel can be cross-checked
//     without going through the code under test.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsmat/matrix"
)

// MustSparse allocates an r×c *Sparse or fails the test.
func MustSparse(tb testing.TB, r, c int, opts ...matrix.Option) *matrix.Sparse {
	tb.Helper()
	m, err := matrix.NewSparse(r, c, opts...)
	require.NoError(tb, err)

	return m
}

// MustSet writes m[i,j] = v or fails the test.
func MustSet(tb testing.TB, m matrix.Matrix, i, j int, v float64) {
	tb.Helper()
	require.NoError(tb, m.Set(i, j, v), "Set(%d,%d,%g)", i, j, v)
}

// MustAt reads m[i,j] or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err, "At(%d,%d)", i, j)

	return v
}

// FromRows builds a Sparse from a rectangular literal; zeros are not stored.
func FromRows(tb testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Sparse {
	tb.Helper()
	require.NotEmpty(tb, rows)
	m := MustSparse(tb, len(rows), len(rows[0]), opts...)
	for i, row := range rows {
		require.Len(tb, row, len(rows[0]), "ragged literal at row %d", i)
		for j, v := range row {
			MustSet(tb, m, i, j, v)
		}
	}

	return m
}

// RandomRows returns an r×c literal where each cell is nonzero with
// probability density. Values are small integers so sums and products
// stay exact in float64. Deterministic for a given seed.
func RandomRows(r, c int, density float64, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			if rng.Float64() < density {
				out[i][j] = float64(rng.Intn(19) - 9) // [-9, 9], zero possible
			}
		}
	}

	return out
}

// Rows reads the full logical contents of m (zeros included) through At.
func Rows(tb testing.TB, m matrix.Matrix) [][]float64 {
	tb.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(tb, m, i, j)
		}
	}

	return out
}

// countNonZero counts the nonzero cells of a literal.
func countNonZero(rows [][]float64) int {
	n := 0
	for _, row := range rows {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}

	return n
}

// refAdd returns a + sign*b on literals.
func refAdd(a, b [][]float64, sign float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		out[i] = make([]float64, len(a[i]))
		for j := range a[i] {
			out[i][j] = a[i][j] + sign*b[i][j]
		}
	}

	return out
}

// refMul returns a × b on literals with the naive triple loop.
func refMul(a, b [][]float64) [][]float64 {
	n, inner, m := len(a), len(b), len(b[0])
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, m)
		for j := 0; j < m; j++ {
			sum := 0.0
			for k := 0; k < inner; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// refT returns the transpose of a literal.
func refT(a [][]float64) [][]float64 {
	out := make([][]float64, len(a[0]))
	for j := range out {
		out[j] = make([]float64, len(a))
		for i := range a {
			out[j][i] = a[i][j]
		}
	}

	return out
}

// requireSorted asserts that entries are strictly increasing in row-major order.
func requireSorted(tb testing.TB, es []matrix.Entry) {
	tb.Helper()
	for k := 1; k < len(es); k++ {
		p, c := es[k-1], es[k]
		require.True(tb, p.Row < c.Row || (p.Row == c.Row && p.Col < c.Col),
			"entries out of order at %d: %+v then %+v", k, p, c)
	}
}
