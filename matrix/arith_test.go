// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the sparse arithmetic kernels.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lsmat/matrix"
)

// Concrete scenario: A = [[0,2],[1,0]], B = [[1,1],[1,1]].
func TestArith_Scenario2x2(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]float64{{0, 2}, {1, 0}})
	b := FromRows(t, [][]float64{{1, 1}, {1, 1}})

	sum, err := matrix.Sum(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 3}, {2, 1}}, Rows(t, sum))

	prod, err := matrix.Product(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 2}, {1, 1}}, Rows(t, prod))

	diff, err := matrix.Diff(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-1, 1}, {0, -1}}, Rows(t, diff))
	require.Equal(t, 3, diff.NNZ(), "cancelled entry must not be stored")
}

// TestArith_DenseCrossCheck compares every kernel against the naive literal
// reference on random inputs, including fully empty rows and columns.
func TestArith_DenseCrossCheck(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		n, k, m int
		density float64
	}{
		{1, 1, 1, 1},
		{3, 4, 5, 0.3},
		{6, 6, 6, 0.15},
		{8, 3, 7, 0.6},
		{5, 9, 2, 0.05},
		{4, 4, 4, 0},
	} {
		t.Run(fmt.Sprintf("%dx%dx%d@%.2f", tc.n, tc.k, tc.m, tc.density), func(t *testing.T) {
			seed := int64(tc.n*100 + tc.k*10 + tc.m)
			la := RandomRows(tc.n, tc.k, tc.density, seed)
			lb := RandomRows(tc.n, tc.k, tc.density, seed+1)
			lc := RandomRows(tc.k, tc.m, tc.density, seed+2)
			la[0] = make([]float64, tc.k) // force an empty row in a
			a, b, c := FromRows(t, la), FromRows(t, lb), FromRows(t, lc)

			out := MustSparse(t, tc.n, tc.k)
			require.NoError(t, matrix.Add(a, b, out))
			require.Equal(t, refAdd(la, lb, 1), Rows(t, out))
			require.Equal(t, countNonZero(refAdd(la, lb, 1)), out.NNZ())

			require.NoError(t, matrix.Sub(a, b, out))
			require.Equal(t, refAdd(la, lb, -1), Rows(t, out))

			prod := MustSparse(t, tc.n, tc.m)
			require.NoError(t, matrix.Mul(a, c, prod))
			require.Equal(t, refMul(la, lc), Rows(t, prod))
			require.Equal(t, countNonZero(refMul(la, lc)), prod.NNZ())
			requireSorted(t, prod.Entries())
		})
	}
}

func TestArith_TransposedOperands(t *testing.T) {
	t.Parallel()

	la := RandomRows(5, 3, 0.5, 11)
	lb := RandomRows(3, 5, 0.5, 12)
	a, b := FromRows(t, la), FromRows(t, lb)

	t.Run("add view to matrix", func(t *testing.T) {
		out := MustSparse(t, 5, 3)
		require.NoError(t, matrix.Add(a, matrix.Transpose(b), out))
		require.Equal(t, refAdd(la, refT(lb), 1), Rows(t, out))
	})

	t.Run("a times a transposed", func(t *testing.T) {
		out := MustSparse(t, 5, 5)
		require.NoError(t, matrix.Mul(a, matrix.Transpose(a), out))
		require.Equal(t, refMul(la, refT(la)), Rows(t, out))
	})

	t.Run("both transposed", func(t *testing.T) {
		out := MustSparse(t, 5, 5)
		require.NoError(t, matrix.Mul(matrix.Transpose(b), matrix.Transpose(a), out))
		require.Equal(t, refMul(refT(lb), refT(la)), Rows(t, out))
	})
}

func TestArith_ShapeMismatch(t *testing.T) {
	t.Parallel()

	type shape struct{ r, c int }
	for _, tc := range []struct {
		name       string
		a, b, out  shape
		kernel     func(a, b matrix.Operand, out *matrix.Sparse) error
		wantStatus matrix.Status
	}{
		{"add ok", shape{2, 3}, shape{2, 3}, shape{2, 3}, matrix.Add, matrix.StatusOK},
		{"add rows", shape{2, 3}, shape{3, 3}, shape{2, 3}, matrix.Add, matrix.StatusShapeMismatch},
		{"add cols", shape{2, 3}, shape{2, 4}, shape{2, 3}, matrix.Add, matrix.StatusShapeMismatch},
		{"add out", shape{2, 3}, shape{2, 3}, shape{3, 2}, matrix.Add, matrix.StatusShapeMismatch},
		{"sub out", shape{2, 3}, shape{2, 3}, shape{2, 4}, matrix.Sub, matrix.StatusShapeMismatch},
		{"mul ok", shape{2, 3}, shape{3, 4}, shape{2, 4}, matrix.Mul, matrix.StatusOK},
		{"mul inner", shape{2, 3}, shape{2, 3}, shape{2, 3}, matrix.Mul, matrix.StatusShapeMismatch},
		{"mul out rows", shape{2, 3}, shape{3, 4}, shape{3, 4}, matrix.Mul, matrix.StatusShapeMismatch},
		{"mul out cols", shape{2, 3}, shape{3, 4}, shape{2, 3}, matrix.Mul, matrix.StatusShapeMismatch},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := MustSparse(t, tc.a.r, tc.a.c)
			b := MustSparse(t, tc.b.r, tc.b.c)
			out := MustSparse(t, tc.out.r, tc.out.c)
			MustSet(t, out, 0, 0, 42)

			err := tc.kernel(a, b, out)
			require.Equal(t, tc.wantStatus, matrix.StatusOf(err), "err=%v", err)
			if tc.wantStatus == matrix.StatusShapeMismatch {
				require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
				require.Equal(t, 42.0, MustAt(t, out, 0, 0), "out must be untouched on mismatch")
			} else {
				require.Zero(t, out.NNZ(), "out is zeroed before the sweep")
			}
		})
	}
}

func TestArith_GeneralErrors(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := FromRows(t, [][]float64{{1, 0}, {0, 1}})

	t.Run("aliased output", func(t *testing.T) {
		before := Rows(t, a)
		for _, k := range []func(a, b matrix.Operand, out *matrix.Sparse) error{matrix.Add, matrix.Sub, matrix.Mul} {
			err := k(a, b, a)
			require.ErrorIs(t, err, matrix.ErrAliasedOutput)
			err = k(b, matrix.Transpose(a), a)
			require.ErrorIs(t, err, matrix.ErrAliasedOutput)
			require.Equal(t, matrix.StatusGeneral, matrix.StatusOf(err))
		}
		require.Equal(t, before, Rows(t, a))
	})

	t.Run("nil operands", func(t *testing.T) {
		out := MustSparse(t, 2, 2)
		require.ErrorIs(t, matrix.Add(nil, b, out), matrix.ErrNilMatrix)
		require.ErrorIs(t, matrix.Mul(a, (*matrix.Sparse)(nil), out), matrix.ErrNilMatrix)
		require.ErrorIs(t, matrix.Sub(a, b, nil), matrix.ErrNilMatrix)
	})

	t.Run("stale view operand", func(t *testing.T) {
		src := FromRows(t, [][]float64{{1, 0}, {0, 1}})
		v := matrix.Transpose(src)
		MustSet(t, src, 0, 0, 2)
		out := MustSparse(t, 2, 2)
		MustSet(t, out, 1, 1, 9)
		require.ErrorIs(t, matrix.Add(a, v, out), matrix.ErrStaleView)
		require.Equal(t, 9.0, MustAt(t, out, 1, 1))
	})

	t.Run("destroyed output", func(t *testing.T) {
		out := MustSparse(t, 2, 2)
		out.Destroy()
		require.ErrorIs(t, matrix.Add(a, b, out), matrix.ErrDestroyed)
	})
}

func TestArith_OutputReuse(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]float64{{1, 0}, {0, 0}})
	b := FromRows(t, [][]float64{{0, 0}, {0, 1}})
	out := FromRows(t, [][]float64{{7, 7}, {7, 7}})
	require.NoError(t, matrix.Add(a, b, out))
	require.Equal(t, [][]float64{{1, 0}, {0, 1}}, Rows(t, out))
	require.Equal(t, 2, out.NNZ())
}

func TestArith_SelfOperands(t *testing.T) {
	t.Parallel()

	la := [][]float64{{1, 2}, {0, 3}}
	a := FromRows(t, la)
	out := MustSparse(t, 2, 2)
	require.NoError(t, matrix.Mul(a, a, out))
	require.Equal(t, refMul(la, la), Rows(t, out))

	require.NoError(t, matrix.Sub(a, a, out))
	require.Zero(t, out.NNZ())
}

func TestArith_DebugLogging(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	a := FromRows(t, [][]float64{{1, 0}, {0, 2}})
	out := MustSparse(t, 2, 2, matrix.WithLogger(logger))
	require.NoError(t, matrix.Mul(a, a, out))

	entries := logs.FilterMessage("sparse kernel done").All()
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1].ContextMap()
	require.Equal(t, "Mul", last["op"])
	require.EqualValues(t, 2, last["nnz_out"])
}

func TestArith_MulEmptyRowsAndCancellation(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	a := FromRows(t, [][]float64{{1, 1}, {0, 0}, {2, 0}})
	b := FromRows(t, [][]float64{{1, 3}, {-1, 0}})
	out := MustSparse(t, 3, 2, matrix.WithLogger(zap.New(core)))
	require.NoError(t, matrix.Mul(a, b, out))

	// Row 0: 1·1 + 1·(-1) cancels to 0.0 and is not stored.
	require.Equal(t, [][]float64{{0, 3}, {0, 0}, {2, 6}}, Rows(t, out))
	require.Equal(t, 3, out.NNZ())

	entries := logs.FilterMessage("sparse kernel done").All()
	require.Len(t, entries, 1)
	require.EqualValues(t, 1, entries[0].ContextMap()["skipped_rows"])

	c := FromRows(t, [][]float64{{1, -1}})
	d := FromRows(t, [][]float64{{1}, {1}})
	prod, err := matrix.Product(c, d)
	require.NoError(t, err)
	require.Zero(t, prod.NNZ())
}
