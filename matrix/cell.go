// SPDX-License-Identifier: MIT

// Package matrix - cell arena.
//
// Purpose:
//   - Store every live cell of a Sparse in one contiguous slice addressed by
//     stable handles instead of per-cell heap objects.
//   - Thread each cell into two sorted lists (its row and its column) through
//     handle links, so both lists always describe the SAME set of cells.
//   - Recycle released slots through a free list; drop the whole arena in O(1)
//     on Zero/Destroy.
//
// Layout:
//   - cell.idx[Row], cell.idx[Col] are the coordinates.
//   - cell.link[Row] threads the row list (cells sharing idx[Row], ordered by idx[Col]).
//   - cell.link[Col] threads the column list (cells sharing idx[Col], ordered by idx[Row]).
//
// Complexity quicksheet:
//   - alloc/release: O(1) amortized; reset: O(1) (slice truncation).

package matrix

// handle addresses a slot in the arena. nilHandle terminates every list.
type handle int32

const nilHandle handle = -1

// link holds the neighbours of a cell inside one axis list.
type link struct {
	prev handle // previous cell in the list, or nilHandle
	next handle // next cell in the list, or nilHandle
}

// cell is one stored nonzero value. The zero value is never a live cell:
// live cells always carry v != 0.
type cell struct {
	idx  [axisCount]int  // coordinates (row, col)
	link [axisCount]link // per-axis neighbours
	v    float64         // stored value, never exactly 0.0 while live
}

// arena owns the cell slots of one Sparse.
type arena struct {
	cells []cell   // slot storage; handles index into it
	free  []handle // released slots available for reuse (LIFO)
}

// newArena reserves capacity for n cells.
func newArena(n int) arena {
	return arena{cells: make([]cell, 0, n)}
}

// alloc returns a handle to an unlinked cell holding (i, j, v).
// Released slots are reused before the slice grows.
func (a *arena) alloc(i, j int, v float64) handle {
	c := cell{
		idx:  [axisCount]int{i, j},
		link: [axisCount]link{{nilHandle, nilHandle}, {nilHandle, nilHandle}},
		v:    v,
	}
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		a.cells[h] = c

		return h
	}
	a.cells = append(a.cells, c)

	return handle(len(a.cells) - 1)
}

// release returns slot h to the free list. The caller must have unlinked it
// from both axis lists first.
func (a *arena) release(h handle) {
	a.cells[h] = cell{idx: [axisCount]int{-1, -1}}
	a.free = append(a.free, h)
}

// reset drops every cell at once. Capacity is retained for refills.
func (a *arena) reset() {
	a.cells = a.cells[:0]
	a.free = a.free[:0]
}

// live reports the number of cells currently in use.
func (a *arena) live() int { return len(a.cells) - len(a.free) }

// at returns a pointer to the slot for h. Bounds-checked by the runtime.
func (a *arena) at(h handle) *cell { return &a.cells[h] }

// key returns the ordering index of h inside a list anchored on axis:
// row lists are ordered by column index and vice versa.
func (a *arena) key(h handle, axis Axis) int { return a.cells[h].idx[axis.other()] }
