// SPDX-License-Identifier: MIT

// Package matrix - coordinate-permuted views.
//
// Purpose:
//   - Express transpose without moving data: a View is (permutation, *Sparse).
//   - Detect use after the source changed: a View remembers the source
//     generation it was taken at and refuses access once they differ.
//
// Permutation convention:
//   - perm[logical] = physical axis. Identity is {Row, Col}; transpose is {Col, Row}.
//   - Logical (i, j) maps to physical coordinates p with p[perm[Row]] = i, p[perm[Col]] = j.
//
// Complexity quicksheet:
//   - NewView/Transpose/T: O(1); At/Set: as Sparse; Realize: O(r + c + nnz).

package matrix

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

var identityPerm = [axisCount]Axis{Row, Col}

// Operand is anything the arithmetic kernels can read through axis lists:
// a *Sparse or a *View over one. The method set is closed to this package.
type Operand interface {
	Rows() int
	Cols() int
	At(i, j int) (float64, error)

	// resolve returns the physical source, the logical->physical permutation,
	// or the reason the operand is unusable (nil, destroyed, stale).
	resolve() (*Sparse, [axisCount]Axis, error)
}

// View is a non-owning, coordinate-permuted reference to a Sparse.
// It is invalidated by any mutation of the source that it did not perform
// itself, and by Destroy.
type View struct {
	src  *Sparse
	perm [axisCount]Axis
	gen  uint64 // source generation this view is valid for
}

var (
	_ Matrix  = (*View)(nil)
	_ Operand = (*View)(nil)
)

// NewView returns an identity view over m.
func NewView(m *Sparse) *View {
	return &View{src: m, perm: identityPerm, gen: m.Generation()}
}

// Transpose returns a view of mᵀ. O(1), no data movement.
func Transpose(m *Sparse) *View { return NewView(m).T() }

// T returns a view composing v with a transpose (swaps the permutation).
// The new view shares v's source and generation tag.
func (v *View) T() *View {
	if v == nil {
		return nil
	}

	return &View{
		src:  v.src,
		perm: [axisCount]Axis{v.perm[Col], v.perm[Row]},
		gen:  v.gen,
	}
}

// Transposed reports whether logical rows map to physical columns.
func (v *View) Transposed() bool { return v != nil && v.perm[Row] == Col }

// Source returns the underlying matrix.
func (v *View) Source() *Sparse {
	if v == nil {
		return nil
	}

	return v.src
}

// Rows returns the logical row count.
func (v *View) Rows() int {
	if v == nil || v.src == nil {
		return 0
	}

	return v.src.shape[v.perm[Row]]
}

// Cols returns the logical column count.
func (v *View) Cols() int {
	if v == nil || v.src == nil {
		return 0
	}

	return v.src.shape[v.perm[Col]]
}

// Valid reports nil when the view may be used, else the sentinel explaining why not.
func (v *View) Valid() error {
	if v == nil || v.src == nil {
		return ErrNilMatrix
	}
	if err := v.src.alive(); err != nil {
		return err
	}
	if v.gen != v.src.gen {
		return ErrStaleView
	}

	return nil
}

// physical maps logical (i, j) to source coordinates.
func (v *View) physical(i, j int) (int, int) {
	var p [axisCount]int
	p[v.perm[Row]] = i
	p[v.perm[Col]] = j

	return p[Row], p[Col]
}

// At reads logical element (i, j).
// Errors: ErrNilMatrix, ErrDestroyed, ErrStaleView, ErrOutOfRange.
func (v *View) At(i, j int) (float64, error) {
	if err := v.Valid(); err != nil {
		return 0, errors.Wrapf(err, "View.At(%d,%d)", i, j)
	}
	pi, pj := v.physical(i, j)

	return v.src.At(pi, pj)
}

// Set writes logical element (i, j) through to the source. The view stays
// valid after its own write; other views over the same source go stale.
func (v *View) Set(i, j int, val float64) error {
	if err := v.Valid(); err != nil {
		return errors.Wrapf(err, "View.Set(%d,%d)", i, j)
	}
	pi, pj := v.physical(i, j)
	if err := v.src.Set(pi, pj, val); err != nil {
		return err
	}
	v.gen = v.src.gen

	return nil
}

// resolve implements Operand.
func (v *View) resolve() (*Sparse, [axisCount]Axis, error) {
	if err := v.Valid(); err != nil {
		return nil, identityPerm, err
	}

	return v.src, v.perm, nil
}

// line returns a cursor over logical line k along logical axis `axis` of the
// operand (src, perm). Cursor keys are indices along the other logical axis.
func line(src *Sparse, perm [axisCount]Axis, axis Axis, k int) cursor {
	pa := perm[axis]

	return cursor{ar: &src.cells, axis: pa, h: src.heads[pa][k].first}
}

// Realize materializes v into a new, independent Sparse of v's logical shape.
// MAIN DESCRIPTION:
//   - Copy every stored entry to its logical coordinates in a fresh matrix.
//
// Implementation:
//   - Stage 1: validate the view (nil/destroyed/stale).
//   - Stage 2: allocate the result with the source options and nnz capacity.
//   - Stage 3: for each logical row i, walk the physical line that backs it
//     and append (i, key, value). Keys arrive in ascending order and rows in
//     ascending order, so every insertion hits the O(1) tail path on both axes.
//
// Behavior highlights:
//   - Only stored entries are visited: O(r + c + nnz), never O(r*c).
//   - Zeros are never materialized.
//
// Errors:
//   - ErrNilMatrix, ErrDestroyed, ErrStaleView.
func Realize(v *View) (*Sparse, error) {
	src, perm, err := v.resolve()
	if err != nil {
		return nil, errors.Wrap(err, "Realize")
	}
	opts := append(src.opts.inherit(), WithInitialCapacity(src.NNZ()))
	out, err := NewSparse(v.Rows(), v.Cols(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "Realize")
	}

	rows := out.shape[Row]
	for i := 0; i < rows; i++ {
		for c := line(src, perm, Row, i); c.ok(); c.advance() {
			if err = out.Set(i, c.key(), c.value()); err != nil {
				return nil, errors.Wrap(err, "Realize")
			}
		}
	}
	src.opts.logger.Debug("view realized",
		zap.Bool("transposed", v.Transposed()),
		zap.Int("rows", out.shape[Row]),
		zap.Int("cols", out.shape[Col]),
		zap.Int("nnz", out.NNZ()))

	return out, nil
}
