// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the sparse engine, views and the
// dense reference implementation.
package matrix

// Axis names one of the two matrix dimensions.
type Axis uint8

const (
	// Row is the first axis (index i).
	Row Axis = iota
	// Col is the second axis (index j).
	Col
	axisCount
)

// other returns the axis orthogonal to a.
func (a Axis) other() Axis { return 1 - a }

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case Row:
		return "row"
	case Col:
		return "col"
	default:
		return "axis?"
	}
}

// Entry is a single stored (nonzero) value with its coordinates.
type Entry struct {
	Row   int     // row index
	Col   int     // column index
	Value float64 // never exactly 0.0
}

// Matrix represents a two-dimensional mutable array of float64 values.
// Both *Sparse and *Dense implement it; *View implements it for the
// logical (permuted) coordinates.
//
// Complexity notes: Rows/Cols are O(1). At/Set are O(1) on *Dense and
// O(line length) on *Sparse.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error
}
