// SPDX-License-Identifier: MIT

package matrix

import "iter"

// NonZero returns a lazy sequence of the stored entries in row-major order,
// ascending column within each row. Every call yields a fresh, finite
// sequence; ranging over it twice walks the lists twice. The matrix must not
// be mutated while a range loop over the sequence is running.
//
// Example:
//
//	for e := range m.NonZero() {
//		fmt.Printf("(%d,%d): %g\n", e.Row, e.Col, e.Value)
//	}
//
// Complexity: O(r + nnz) per full walk.
func (m *Sparse) NonZero() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		m.Do(func(i, j int, v float64) bool {
			return yield(Entry{Row: i, Col: j, Value: v})
		})
	}
}

// Entries collects NonZero into a slice. Handy for tests and debug dumps.
func (m *Sparse) Entries() []Entry {
	out := make([]Entry, 0, m.NNZ())
	for e := range m.NonZero() {
		out = append(out, e)
	}

	return out
}

// Line returns the stored entries of one row (axis == Row) or one column
// (axis == Col) in ascending order along the other axis.
// Errors: ErrOutOfRange for k outside [0, dim), ErrNilMatrix/ErrDestroyed.
func (m *Sparse) Line(axis Axis, k int) ([]Entry, error) {
	if err := m.alive(); err != nil {
		return nil, err
	}
	if axis >= axisCount || k < 0 || k >= m.shape[axis] {
		return nil, ErrOutOfRange
	}
	var out []Entry
	for c := (cursor{ar: &m.cells, axis: axis, h: m.heads[axis][k].first}); c.ok(); c.advance() {
		cl := m.cells.at(c.h)
		out = append(out, Entry{Row: cl.idx[Row], Col: cl.idx[Col], Value: cl.v})
	}

	return out, nil
}
