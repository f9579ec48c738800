// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (dual-axis sorted lists) & safe accessors.
//
// Purpose:
//   - Store only nonzero entries while keeping random-access At/Set.
//   - Keep every cell linked into exactly one row list AND one column list;
//     the two lists are two views of the same cells, never separate copies.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//
// Invariants:
//   - For a given (i, j) at most one cell exists.
//   - A cell is in heads[Row][i] iff it is in heads[Col][j].
//   - Row lists are strictly increasing by column; column lists by row.
//   - No live cell stores exactly 0.0; Set(i, j, 0) deletes.
//
// Bounds policy:
//   - Exclusive on both axes: 0 <= i < Rows() and 0 <= j < Cols().
//     Anything else (including i == Rows()) is ErrOutOfRange for At AND Set.
//
// Complexity quicksheet:
//   - NewSparse: O(r+c); At/Set: O(row length); Zero: O(r+c); NNZ: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxZero  = "Zero"  // method tag used in error wrappers
	ctxClone = "Clone" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// sparseErrorf wraps err with the Sparse method tag and call-site coordinates.
// The sentinel is preserved for errors.Is.
func sparseErrorf(method string, row, col int, err error) error {
	return errors.Wrapf(err, "Sparse.%s(%d,%d)", method, row, col)
}

// Sparse is a two-dimensional float64 matrix that stores nonzero entries only.
//   - shape holds (rows, cols); both are > 0 until Destroy.
//   - heads[Row] has one head per row, heads[Col] one per column.
//   - cells is the arena owning every live cell.
//   - gen is bumped on every mutation; Views compare it to detect staleness.
type Sparse struct {
	shape     [axisCount]int    // (rows, cols)
	heads     [axisCount][]head // per-axis list anchors
	cells     arena             // exclusive owner of all cells
	gen       uint64            // mutation counter
	destroyed bool              // set by Destroy
	opts      Options           // effective options captured at construction
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Sparse)(nil)
	_ Operand      = (*Sparse)(nil)
	_ fmt.Stringer = (*Sparse)(nil)
)

// NewSparse creates an empty rows×cols sparse matrix.
// MAIN DESCRIPTION:
//   - Allocate both head tables (all lines empty) and an empty cell arena.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options (logger, numeric policy, capacity).
//   - Stage 3: allocate heads[Row] (rows) and heads[Col] (cols).
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r+c), Space O(r+c) plus reserved capacity.
//
// Notes:
//   - Allocation failure is fatal (Go runtime), there is no recoverable path.
func NewSparse(rows, cols int, opts ...Option) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "NewSparse(%d,%d)", rows, cols)
	}
	o := gatherOptions(opts...)

	return &Sparse{
		shape: [axisCount]int{rows, cols},
		heads: [axisCount][]head{newHeads(rows), newHeads(cols)},
		cells: newArena(o.capacity),
		opts:  o,
	}, nil
}

// Rows returns the row count (0 for nil or destroyed matrices).
func (m *Sparse) Rows() int {
	if m == nil {
		return 0
	}

	return m.shape[Row]
}

// Cols returns the column count (0 for nil or destroyed matrices).
func (m *Sparse) Cols() int {
	if m == nil {
		return 0
	}

	return m.shape[Col]
}

// Shape packs Rows() and Cols() into a single call.
func (m *Sparse) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// NNZ returns the number of stored (nonzero) entries. O(1).
func (m *Sparse) NNZ() int {
	if m == nil || m.destroyed {
		return 0
	}

	return m.cells.live()
}

// Generation returns the mutation counter. Any Set that changes the
// contents, Zero and Destroy increase it.
func (m *Sparse) Generation() uint64 {
	if m == nil {
		return 0
	}

	return m.gen
}

// alive reports ErrNilMatrix/ErrDestroyed for unusable receivers.
func (m *Sparse) alive() error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.destroyed {
		return ErrDestroyed
	}

	return nil
}

// checkIndex applies the exclusive bounds policy.
func (m *Sparse) checkIndex(i, j int) error {
	if i < 0 || i >= m.shape[Row] || j < 0 || j >= m.shape[Col] {
		return ErrOutOfRange
	}

	return nil
}

// At returns the value at (i, j): the stored value, or 0.0 when absent.
// Scans row i for column j.
//
// Errors:
//   - ErrNilMatrix / ErrDestroyed for unusable receivers.
//   - ErrOutOfRange when (i, j) is outside the declared shape.
//
// Complexity:
//   - Time O(length of row i), Space O(1).
func (m *Sparse) At(i, j int) (float64, error) {
	if err := m.alive(); err != nil {
		return 0, sparseErrorf(ctxAt, i, j, err)
	}
	if err := m.checkIndex(i, j); err != nil {
		return 0, sparseErrorf(ctxAt, i, j, err)
	}
	h := m.cells.cellAt(m.heads[Row][i], j, Row)
	if h == nilHandle {
		return 0, nil
	}

	return m.cells.at(h).v, nil
}

// Set stores v at (i, j).
// MAIN DESCRIPTION:
//   - v == 0 deletes the entry (no-op when absent).
//   - v != 0 inserts a new cell or updates the existing one in place.
//
// Implementation:
//   - Stage 1: validate receiver, bounds, optional finite-value policy.
//   - Stage 2 (delete): locate in row i; unlink from row i AND column j; release.
//   - Stage 3 (upsert): allocate a candidate; insert into row i. On duplicate,
//     update the existing cell and release the candidate WITHOUT touching
//     column j (the existing cell is already linked there). Otherwise link the
//     candidate into column j.
//
// Errors:
//   - ErrOutOfRange (no side effect), ErrNaNInf (policy on), ErrNilMatrix, ErrDestroyed.
//
// Complexity:
//   - Time O(len(row i) + len(col j)), O(1) for in-order appends.
func (m *Sparse) Set(i, j int, v float64) error {
	if err := m.alive(); err != nil {
		return sparseErrorf(ctxSet, i, j, err)
	}
	if err := m.checkIndex(i, j); err != nil {
		return sparseErrorf(ctxSet, i, j, err)
	}
	if m.opts.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return sparseErrorf(ctxSet, i, j, ErrNaNInf)
	}

	if v == 0 {
		m.deleteAt(i, j)

		return nil
	}

	return m.upsert(i, j, v)
}

// deleteAt removes the cell at (i, j) from both lists, if present.
func (m *Sparse) deleteAt(i, j int) {
	h := m.cells.cellAt(m.heads[Row][i], j, Row)
	if h == nilHandle {
		return // nothing stored: no-op, no generation bump
	}
	m.cells.remove(&m.heads[Row][i], h, Row)
	m.cells.remove(&m.heads[Col][j], h, Col)
	m.cells.release(h)
	m.gen++
}

// upsert inserts a fresh cell or updates the existing one at (i, j).
func (m *Sparse) upsert(i, j int, v float64) error {
	h := m.cells.alloc(i, j, v)

	dup, err := m.cells.insert(&m.heads[Row][i], h, Row)
	if errors.Is(err, errDuplicate) {
		m.cells.at(dup).v = v
		m.cells.release(h) // candidate was never linked
		m.gen++

		return nil
	}

	// Row uniqueness already established; a duplicate here means the two lists diverged.
	if _, err = m.cells.insert(&m.heads[Col][j], h, Col); err != nil {
		m.cells.remove(&m.heads[Row][i], h, Row)
		m.cells.release(h)

		return errors.NewAssertionErrorWithWrappedErrf(err, "Sparse.Set(%d,%d): column list out of sync with row list", i, j)
	}
	m.gen++

	return nil
}

// Zero drops every stored entry; the shape is unchanged.
// MAIN DESCRIPTION:
//   - Empty all row and column lists and the arena in one pass.
//
// Complexity:
//   - Time O(r+c) (head reset) + O(1) arena truncation; never O(r*c).
func (m *Sparse) Zero() error {
	if err := m.alive(); err != nil {
		return errors.Wrapf(err, "Sparse.%s", ctxZero)
	}
	dropped := m.cells.live()
	m.cells.reset()
	for a := Row; a < axisCount; a++ {
		for k := range m.heads[a] {
			m.heads[a][k] = emptyHead
		}
	}
	m.gen++
	m.opts.logger.Debug("sparse zeroed",
		zap.Int("rows", m.shape[Row]),
		zap.Int("cols", m.shape[Col]),
		zap.Int("dropped", dropped))

	return nil
}

// Destroy releases every cell and both head tables. Afterwards the matrix
// reports shape (0,0) and every operation returns ErrDestroyed. Idempotent.
func (m *Sparse) Destroy() {
	if m == nil || m.destroyed {
		return
	}
	m.opts.logger.Debug("sparse destroyed",
		zap.Int("rows", m.shape[Row]),
		zap.Int("cols", m.shape[Col]),
		zap.Int("nnz", m.cells.live()))
	m.cells = arena{}
	m.heads = [axisCount][]head{}
	m.shape = [axisCount]int{}
	m.destroyed = true
	m.gen++
}

// Clone returns an independent deep copy with the same options.
// Handles stay valid because the arena layout is copied verbatim.
// Complexity: O(cap + r + c).
func (m *Sparse) Clone() (*Sparse, error) {
	if err := m.alive(); err != nil {
		return nil, errors.Wrapf(err, "Sparse.%s", ctxClone)
	}
	cp := &Sparse{
		shape: m.shape,
		cells: arena{
			cells: append([]cell(nil), m.cells.cells...),
			free:  append([]handle(nil), m.cells.free...),
		},
		opts: m.opts,
	}
	for a := Row; a < axisCount; a++ {
		cp.heads[a] = append([]head(nil), m.heads[a]...)
	}

	return cp, nil
}

// Do visits every stored entry in row-major order (ascending column within a
// row) and calls f(i, j, v). Stops early when f returns false.
// The matrix must not be mutated from inside f.
// Complexity: O(r + nnz).
func (m *Sparse) Do(f func(i, j int, v float64) bool) {
	if m.alive() != nil {
		return
	}
	for i := range m.heads[Row] {
		c := cursor{ar: &m.cells, axis: Row, h: m.heads[Row][i].first}
		for ; c.ok(); c.advance() {
			if !f(i, c.key(), c.value()) {
				return
			}
		}
	}
}

// String renders the full logical matrix (zeros included) for diagnostics.
// Not for hot paths: O(r*c) output.
func (m *Sparse) String() string {
	if m.alive() != nil {
		return "<nil>"
	}
	var b strings.Builder
	cols := m.shape[Col]
	for i := range m.heads[Row] {
		b.WriteString(_fmtRowOpen)
		c := cursor{ar: &m.cells, axis: Row, h: m.heads[Row][i].first}
		for j := 0; j < cols; j++ {
			v := 0.0
			if c.ok() && c.key() == j {
				v = c.value()
				c.advance()
			}
			b.WriteString(fmt.Sprintf("%g", v))
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// resolve implements Operand: a Sparse is its own source with the identity permutation.
func (m *Sparse) resolve() (*Sparse, [axisCount]Axis, error) {
	if err := m.alive(); err != nil {
		return nil, identityPerm, err
	}

	return m, identityPerm, nil
}
