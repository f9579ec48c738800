// SPDX-License-Identifier: MIT
// Package matrix - sparse arithmetic kernels.
//
// Purpose:
//   - Add, Sub and Mul over Operands (a *Sparse or a *View over one), writing
//     into a caller-provided output matrix.
//   - Exploit sparsity: every kernel walks axis lists, never the full r×c grid
//     of stored values.
//
// Contract shared by all kernels:
//   - Validation happens BEFORE out is touched. On a validation error out
//     keeps its previous contents.
//   - out must be a live *Sparse distinct from the sources of a and b, because
//     it is zeroed before the sweep starts.
//   - Exact-zero results are never stored (out.Set drops them).
//
// Determinism:
//   - Fixed loop order: rows ascending, keys ascending within a line.

package matrix

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Operation name constants for unified error wrapping and log messages.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// Sign constants for the shared add/sub kernel.
const (
	signAdd = 1.0
	signSub = -1.0
)

// matrixErrorf wraps err with an operation tag; the sentinel stays reachable
// through errors.Is. Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// Add computes out = a + b.
// MAIN DESCRIPTION:
//   - Element-wise sum of two same-shape operands.
//
// Errors:
//   - ErrNilMatrix, ErrDestroyed, ErrStaleView (unusable operand or out).
//   - ErrAliasedOutput (out is the source of a or b).
//   - ErrDimensionMismatch (a, b, out shapes differ).
//
// Complexity:
//   - Time O(r + nnz(a) + nnz(b)), Space O(nnz(out)).
func Add(a, b Operand, out *Sparse) error {
	return addSub(a, b, out, signAdd, opAdd)
}

// Sub computes out = a - b. Same contract as Add.
func Sub(a, b Operand, out *Sparse) error {
	return addSub(a, b, out, signSub, opSub)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: resolve both operands; validate out (alive, not aliased).
//   - Stage 2: validate shapes a == b == out.
//   - Stage 3: zero out, then per logical row merge the two sorted lines by
//     column, summing on equal keys and copying (signed) otherwise.
//
// Behavior highlights:
//   - Emission is in ascending (row, col) order, so every out.Set is an O(1)
//     tail append on both axes.
func addSub(a, b Operand, out *Sparse, sign float64, opTag string) error {
	// Stage 1: operands and output.
	sa, pa, err := resolveOperand(a)
	if err != nil {
		return matrixErrorf(opTag, err)
	}
	sb, pb, err := resolveOperand(b)
	if err != nil {
		return matrixErrorf(opTag, err)
	}
	if err = validateOutput(out, sa, sb); err != nil {
		return matrixErrorf(opTag, err)
	}

	// Stage 2: shapes.
	if err = ValidateSameShape(a, b); err != nil {
		return matrixErrorf(opTag, err)
	}
	if err = ValidateSameShape(a, out); err != nil {
		return matrixErrorf(opTag, err)
	}

	// Stage 3: sweep.
	if err = out.Zero(); err != nil {
		return matrixErrorf(opTag, err)
	}
	rows := a.Rows()
	for i := 0; i < rows; i++ {
		ca := line(sa, pa, Row, i)
		cb := line(sb, pb, Row, i)
		for ca.ok() || cb.ok() {
			var (
				j int
				v float64
			)
			switch {
			case !cb.ok() || (ca.ok() && ca.key() < cb.key()):
				j, v = ca.key(), ca.value()
				ca.advance()
			case !ca.ok() || cb.key() < ca.key():
				j, v = cb.key(), sign*cb.value()
				cb.advance()
			default: // equal keys
				j, v = ca.key(), ca.value()+sign*cb.value()
				ca.advance()
				cb.advance()
			}
			if err = out.Set(i, j, v); err != nil {
				return matrixErrorf(opTag, err)
			}
		}
	}
	out.opts.logger.Debug("sparse kernel done",
		zap.String("op", opTag),
		zap.Int("rows", rows),
		zap.Int("cols", a.Cols()),
		zap.Int("nnz_a", sa.NNZ()),
		zap.Int("nnz_b", sb.NNZ()),
		zap.Int("nnz_out", out.NNZ()))

	return nil
}

// Mul computes the matrix product out = a × b.
// MAIN DESCRIPTION:
//   - out[i][j] = Σ_k a[i][k]·b[k][j], evaluated as a sorted merge of row i of
//     a with column j of b on the contraction index k.
//
// Implementation:
//   - Stage 1: resolve operands; validate out (alive, not aliased).
//   - Stage 2: a.Cols == b.Rows and out is (a.Rows × b.Cols).
//   - Stage 3: zero out; for each row i of a with at least one entry, for
//     every column j of b, merge and write the sum when it is nonzero.
//
// Behavior highlights:
//   - Empty rows of a are skipped. Columns of b are all visited, empty ones
//     cost one head lookup each.
//   - A sum that cancels to exactly 0.0 is not stored.
//
// Errors:
//   - ErrNilMatrix, ErrDestroyed, ErrStaleView, ErrAliasedOutput, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(Σ_{nonempty rows i of a} Σ_j (len(row_i(a)) + len(col_j(b)))).
func Mul(a, b Operand, out *Sparse) error {
	// Stage 1: operands and output.
	sa, pa, err := resolveOperand(a)
	if err != nil {
		return matrixErrorf(opMul, err)
	}
	sb, pb, err := resolveOperand(b)
	if err != nil {
		return matrixErrorf(opMul, err)
	}
	if err = validateOutput(out, sa, sb); err != nil {
		return matrixErrorf(opMul, err)
	}

	// Stage 2: shapes.
	if err = ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opMul, err)
	}
	if err = ValidateMulOutput(a, b, out); err != nil {
		return matrixErrorf(opMul, err)
	}

	// Stage 3: sweep.
	if err = out.Zero(); err != nil {
		return matrixErrorf(opMul, err)
	}
	rows, cols := a.Rows(), b.Cols()
	skipped := 0
	for i := 0; i < rows; i++ {
		ra := line(sa, pa, Row, i)
		if !ra.ok() {
			skipped++
			continue
		}
		for j := 0; j < cols; j++ {
			if sum := dot(ra, line(sb, pb, Col, j)); sum != 0 {
				if err = out.Set(i, j, sum); err != nil {
					return matrixErrorf(opMul, err)
				}
			}
		}
	}
	out.opts.logger.Debug("sparse kernel done",
		zap.String("op", opMul),
		zap.Int("rows", rows),
		zap.Int("inner", a.Cols()),
		zap.Int("cols", cols),
		zap.Int("skipped_rows", skipped),
		zap.Int("nnz_out", out.NNZ()))

	return nil
}

// dot merges two sorted lines on their keys and sums the matching products.
func dot(x, y cursor) float64 {
	sum := 0.0
	for x.ok() && y.ok() {
		switch kx, ky := x.key(), y.key(); {
		case kx < ky:
			x.advance()
		case ky < kx:
			y.advance()
		default:
			sum += x.value() * y.value()
			x.advance()
			y.advance()
		}
	}

	return sum
}
