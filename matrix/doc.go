// Package matrix implements a sparse two-dimensional float64 matrix and the
// arithmetic built on it.
//
// The matrix package provides:
//
//   - Sparse, which stores nonzero entries only. Every stored cell sits in
//     its row list and its column list at the same time, and both lists stay
//     sorted, so a row and a column can each be walked in index order.
//   - View and Transpose for O(1) transposition without moving data. Realize
//     turns a View back into an independent Sparse in O(nnz).
//   - Add, Sub and Mul, which run merge sweeps over pairs of lines and take
//     either a *Sparse or a *View as operands.
//   - Dense, a plain row-major reference type, plus ToDense/FromDense.
//
// Indices are zero-based and exclusive on both axes: At and Set return
// ErrOutOfRange for i == Rows() or j == Cols(). Setting a value to 0 deletes
// the cell, so NNZ always counts exactly the nonzero entries.
//
// Sparse is not safe for concurrent use. A View records the generation of
// its source and reports ErrStaleView once the source has been changed by
// anyone else.
//
// See the examples in this package for usage patterns.
package matrix
