// SPDX-License-Identifier: MIT
package shell

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsmat/matrix"
)

func TestParseAssignment(t *testing.T) {
	t.Parallel()

	ok := []struct {
		in   string
		dest string
		want expr
	}{
		{"C=A+B", "C", expr{lhs: "A", rhs: "B", op: opAdd}},
		{"C=A-B", "C", expr{lhs: "A", rhs: "B", op: opSub}},
		{"X1=M2*M3", "X1", expr{lhs: "M2", rhs: "M3", op: opMul}},
		{"AT=A.T", "AT", expr{lhs: "A", op: opTranspose}},
	}
	for _, tc := range ok {
		dest, e, err := parseAssignment(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.dest, dest, tc.in)
		require.Equal(t, tc.want, e, tc.in)
	}

	bad := []struct {
		in, msg string
	}{
		{"C", "Missing arguments"},
		{"=A+B", "Missing arguments"},
		{"C=", "Missing arguments"},
		{"C=.T", "Invalid syntax; missing unary operand"},
		{"C=AB", "Invalid syntax; missing operator"},
		{"C=+B", "Invalid syntax; missing 1st binary operand"},
		{"C=A*", "Invalid syntax; missing 2nd binary operand"},
		{"C=A+B+D", "Invalid syntax; one operator per expression"},
	}
	for _, tc := range bad {
		_, _, err := parseAssignment(tc.in)
		require.Error(t, err, tc.in)
		require.Equal(t, tc.msg, err.Error(), tc.in)
	}
}

func TestExprApply(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewSparse(2, 3)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 2, 4))
	b, err := matrix.NewSparse(2, 3)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 2, 1))

	sum, err := expr{op: opAdd}.apply(a, b)
	require.NoError(t, err)
	v, _ := sum.At(0, 2)
	require.Equal(t, 5.0, v)

	diff, err := expr{op: opSub}.apply(a, b)
	require.NoError(t, err)
	v, _ = diff.At(0, 2)
	require.Equal(t, 3.0, v)

	at, err := expr{op: opTranspose}.apply(a, nil)
	require.NoError(t, err)
	require.Equal(t, 3, at.Rows())
	v, _ = at.At(2, 0)
	require.Equal(t, 4.0, v)

	_, err = expr{op: opMul}.apply(a, b)
	require.Equal(t, matrix.StatusShapeMismatch, matrix.StatusOf(err))
}

func TestMessageAndFatal(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Missing arguments; type help to learn more", message(errMissingArgs()))

	err := fatalf(errors.New("boom"), "General arithmetic error")
	require.True(t, errors.Is(err, ErrFatal))
	require.Equal(t, "General arithmetic error: boom", message(err))

	require.True(t, errors.Is(fatalf(nil, "x %d", 1), ErrFatal))
	require.False(t, errors.Is(userErrorf("x"), ErrFatal))
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := newRegistry(2, 3)
	m1, err := matrix.NewSparse(1, 1)
	require.NoError(t, err)
	m2, err := matrix.NewSparse(1, 1)
	require.NoError(t, err)

	require.NoError(t, r.add("A", m1))
	require.Error(t, r.add("A", m2))
	require.Error(t, r.add("ABCD", m2))
	require.Error(t, r.add("a", m2))
	require.Error(t, r.add("", m2))
	require.NoError(t, r.add("B", m2))
	require.Equal(t, 2, r.len())
	require.Error(t, r.validate("C"))

	require.NoError(t, r.remove("A"))
	require.ErrorIs(t, m1.Zero(), matrix.ErrDestroyed)
	require.Error(t, r.remove("A"))
	require.Equal(t, []string{"B"}, r.names)

	require.Equal(t, 1, r.destroyAll())
	require.Zero(t, r.len())
	_, err = r.get("B")
	require.Error(t, err)
}
