// SPDX-License-Identifier: MIT

// Package matrix - sorted axis lists.
//
// A head anchors one line of the matrix: heads[Row][i] is row i, heads[Col][j]
// is column j. Every list is strictly increasing by the index along the OTHER
// axis. Throughout this file the `axis` parameter names the head table the
// list belongs to (Row for row lists, Col for column lists).
//
// Lookup and insertion cost O(position in list). This is cheap while lines
// are short (high sparsity) and degrades toward O(n) on dense lines. Appends
// past the current tail are O(1), which keeps ordered bulk fills (Realize and
// the arithmetic kernels) linear in nnz.

package matrix

// head anchors one axis list.
type head struct {
	first handle // smallest key, or nilHandle when empty
	last  handle // largest key, or nilHandle when empty
}

// emptyHead is the zero state of every line.
var emptyHead = head{first: nilHandle, last: nilHandle}

// newHeads allocates n empty heads.
func newHeads(n int) []head {
	hs := make([]head, n)
	for i := range hs {
		hs[i] = emptyHead
	}

	return hs
}

// insert links h into the list anchored at hd, keeping keys strictly increasing.
// MAIN DESCRIPTION:
//   - Find the position of h's key along `axis` and splice it in.
//
// Implementation:
//   - Stage 1: empty list -> h becomes first and last.
//   - Stage 2: key past the tail -> O(1) append.
//   - Stage 3: otherwise walk from first; splice before the first larger key.
//
// Returns:
//   - (nilHandle, nil) after linking.
//   - (existing, errDuplicate) when a cell with the same key is present;
//     nothing is mutated in that case so the caller can merge.
//
// Complexity:
//   - Time O(1) for appends, O(len) otherwise. Space O(1).
func (a *arena) insert(hd *head, h handle, axis Axis) (handle, error) {
	k := a.key(h, axis)
	c := a.at(h)

	// Stage 1: empty list.
	if hd.first == nilHandle {
		c.link[axis] = link{prev: nilHandle, next: nilHandle}
		hd.first, hd.last = h, h

		return nilHandle, nil
	}

	// Stage 2: tail fast path.
	tailKey := a.key(hd.last, axis)
	if k == tailKey {
		return hd.last, errDuplicate
	}
	if k > tailKey {
		c.link[axis] = link{prev: hd.last, next: nilHandle}
		a.at(hd.last).link[axis].next = h
		hd.last = h

		return nilHandle, nil
	}

	// Stage 3: k < tailKey, so a larger key exists and the walk terminates inside the list.
	for p := hd.first; p != nilHandle; p = a.at(p).link[axis].next {
		pk := a.key(p, axis)
		if pk == k {
			return p, errDuplicate
		}
		if pk > k {
			prev := a.at(p).link[axis].prev
			c.link[axis] = link{prev: prev, next: p}
			a.at(p).link[axis].prev = h
			if prev == nilHandle {
				hd.first = h
			} else {
				a.at(prev).link[axis].next = h
			}

			return nilHandle, nil
		}
	}

	// Unreachable while the list is sorted; keep the list well-formed regardless.
	c.link[axis] = link{prev: hd.last, next: nilHandle}
	a.at(hd.last).link[axis].next = h
	hd.last = h

	return nilHandle, nil
}

// remove unlinks h from the list anchored at hd, fixing neighbours and the
// head's first/last handles. h itself is left with nil links.
// Complexity: O(1).
func (a *arena) remove(hd *head, h handle, axis Axis) {
	c := a.at(h)
	prev, next := c.link[axis].prev, c.link[axis].next

	if prev == nilHandle {
		hd.first = next
	} else {
		a.at(prev).link[axis].next = next
	}
	if next == nilHandle {
		hd.last = prev
	} else {
		a.at(next).link[axis].prev = prev
	}
	c.link[axis] = link{prev: nilHandle, next: nilHandle}
}

// cellAt returns the cell whose key along `axis` equals index, or nilHandle.
// The scan stops at the first larger key.
// Complexity: O(position of index in the list).
func (a *arena) cellAt(hd head, index int, axis Axis) handle {
	if hd.last == nilHandle || a.key(hd.last, axis) < index {
		return nilHandle // empty, or index past the tail
	}
	for p := hd.first; p != nilHandle; p = a.at(p).link[axis].next {
		switch pk := a.key(p, axis); {
		case pk == index:
			return p
		case pk > index:
			return nilHandle
		}
	}

	return nilHandle
}

// cursor walks one axis list in key order. Used by merges and iteration.
type cursor struct {
	ar   *arena
	axis Axis
	h    handle
}

// ok reports whether the cursor points at a cell.
func (c cursor) ok() bool { return c.h != nilHandle }

// key returns the ordering index of the current cell.
func (c cursor) key() int { return c.ar.key(c.h, c.axis) }

// value returns the stored value of the current cell.
func (c cursor) value() float64 { return c.ar.cells[c.h].v }

// advance moves to the next cell of the list.
func (c *cursor) advance() { c.h = c.ar.cells[c.h].link[c.axis].next }
