// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "github.com/cockroachdb/errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with errors.Wrapf at the
// detection site (see matrixErrorf/sparseErrorf); callers still match the
// sentinel with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> destroyed/stale -> aliasing -> dimension mismatch -> index.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside [0, dim).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix or view (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrAliasedOutput signals that the output of an arithmetic kernel shares
	// storage with one of its operands; out is zeroed first, so this is refused.
	ErrAliasedOutput = errors.New("matrix: output aliases an operand")

	// ErrStaleView signals that the source of a View was mutated after the
	// View was taken (generation mismatch).
	ErrStaleView = errors.New("matrix: view is stale")

	// ErrDestroyed signals use of a Sparse after Destroy.
	ErrDestroyed = errors.New("matrix: matrix destroyed")

	// ErrNaNInf signals a NaN or ±Inf value was rejected by the optional
	// finite-value policy (see WithValidateNaNInf). Off by default.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// errDuplicate is the axis-list "already present" signal. It never leaves
// this package: Sparse.Set consumes it and updates the existing cell.
var errDuplicate = errors.New("matrix: duplicate key")
