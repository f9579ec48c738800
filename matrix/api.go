// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for the common "allocate a result, then run
//     the kernel" flow.
//   - Avoid any logic duplication: each facade delegates to the canonical kernel.
//
// Policy:
//   - Results inherit the numeric policy and logger of the first operand's source.
//   - On kernel failure the freshly allocated result is destroyed and nil is returned.
//
// AI-Hints:
//   - Use Add/Sub/Mul directly when you already own a reusable output buffer.
//   - T(m) realizes the transpose; keep Transpose(m) when a read-only view suffices.

package matrix

// kernel is the shared signature of Add, Sub and Mul.
type kernel func(a, b Operand, out *Sparse) error

// shapeFn computes the result shape of a binary kernel.
type shapeFn func(a, b Operand) (rows, cols int)

func elementwiseShape(a, _ Operand) (int, int) { return a.Rows(), a.Cols() }

func productShape(a, b Operand) (int, int) { return a.Rows(), b.Cols() }

// binary resolves both operands, allocates the result and runs k.
func binary(tag string, a, b Operand, shape shapeFn, k kernel) (*Sparse, error) {
	sa, _, err := resolveOperand(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if _, _, err = resolveOperand(b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	rows, cols := shape(a, b)
	out, err := NewSparse(rows, cols, sa.opts.inherit()...)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err = k(a, b, out); err != nil {
		out.Destroy()

		return nil, err
	}

	return out, nil
}

// ---------- Constructors & Utilities ----------

// NewIdentity returns the n×n identity as a Sparse (n stored entries).
// Complexity: O(n).
func NewIdentity(n int, opts ...Option) (*Sparse, error) {
	m, err := NewSparse(n, n, append([]Option{WithInitialCapacity(max(n, 0))}, opts...)...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = m.Set(i, i, 1); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ZerosLike returns an empty Sparse with the logical shape of op.
// Complexity: O(r + c).
func ZerosLike(op Operand) (*Sparse, error) {
	src, _, err := resolveOperand(op)
	if err != nil {
		return nil, err
	}

	return NewSparse(op.Rows(), op.Cols(), src.opts.inherit()...)
}

// ToDense expands op into a Dense of its logical shape. O(r*c).
func ToDense(op Operand) (*Dense, error) {
	src, perm, err := resolveOperand(op)
	if err != nil {
		return nil, err
	}
	d, err := NewDense(op.Rows(), op.Cols(), src.opts.inherit()...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < d.r; i++ {
		for c := line(src, perm, Row, i); c.ok(); c.advance() {
			d.data[i*d.c+c.key()] = c.value()
		}
	}

	return d, nil
}

// FromDense stores the nonzero elements of d in a new Sparse.
// Complexity: O(r*c) scan, O(nnz) inserts (all tail appends).
func FromDense(d *Dense, opts ...Option) (*Sparse, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	m, err := NewSparse(d.r, d.c, opts...)
	if err != nil {
		return nil, err
	}
	d.Do(func(i, j int, v float64) bool {
		err = m.Set(i, j, v)

		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// Sum allocates and returns a + b.
func Sum(a, b Operand) (*Sparse, error) { return binary(opAdd, a, b, elementwiseShape, Add) }

// Diff allocates and returns a − b.
func Diff(a, b Operand) (*Sparse, error) { return binary(opSub, a, b, elementwiseShape, Sub) }

// Product allocates and returns a × b.
//
// AI-Hints: pass Transpose(b) instead of T(b) to multiply by bᵀ without a copy.
func Product(a, b Operand) (*Sparse, error) { return binary(opMul, a, b, productShape, Mul) }

// T returns mᵀ as a new, independent Sparse.
// Complexity: O(r + c + nnz).
func T(m *Sparse) (*Sparse, error) { return Realize(Transpose(m)) }
