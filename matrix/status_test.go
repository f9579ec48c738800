// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsmat/matrix"
)

func TestStatusOf(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		err  error
		want matrix.Status
	}{
		{nil, matrix.StatusOK},
		{matrix.ErrDimensionMismatch, matrix.StatusShapeMismatch},
		{errors.Wrap(matrix.ErrDimensionMismatch, "Mul"), matrix.StatusShapeMismatch},
		{matrix.ErrOutOfRange, matrix.StatusInvalidIndex},
		{matrix.ErrNilMatrix, matrix.StatusGeneral},
		{matrix.ErrAliasedOutput, matrix.StatusGeneral},
		{matrix.ErrStaleView, matrix.StatusGeneral},
		{matrix.ErrDestroyed, matrix.StatusGeneral},
		{errors.New("boom"), matrix.StatusGeneral},
	} {
		require.Equal(t, tc.want, matrix.StatusOf(tc.err), "%v", tc.err)
	}
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ok", matrix.StatusOK.String())
	require.Equal(t, "shape mismatch", matrix.StatusShapeMismatch.String())
	require.Equal(t, "invalid index", matrix.StatusInvalidIndex.String())
	require.Equal(t, "general error", matrix.StatusGeneral.String())
}

func TestValidators(t *testing.T) {
	t.Parallel()

	a := MustSparse(t, 2, 3)
	b := MustSparse(t, 3, 2)

	require.NoError(t, matrix.ValidateNotNil(a))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateSameShape(a, matrix.Transpose(b)))
	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateMulOutput(a, b, MustSparse(t, 2, 2)))
	require.ErrorIs(t, matrix.ValidateMulOutput(a, b, a), matrix.ErrDimensionMismatch)
}
