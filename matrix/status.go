// SPDX-License-Identifier: MIT

package matrix

import "github.com/cockroachdb/errors"

// Status is the coarse outcome taxonomy of the arithmetic kernels.
// Callers that only need to branch on "bad shapes" versus "something is
// broken" use StatusOf instead of matching every sentinel.
type Status uint8

const (
	// StatusOK means the operation succeeded.
	StatusOK Status = iota
	// StatusShapeMismatch means the operand or output shapes are incompatible.
	StatusShapeMismatch
	// StatusInvalidIndex means an index was outside the declared shape.
	StatusInvalidIndex
	// StatusGeneral covers every other failure (nil, destroyed, stale, aliased, NaN policy).
	StatusGeneral
)

// String returns the stable lowercase name of s.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusShapeMismatch:
		return "shape mismatch"
	case StatusInvalidIndex:
		return "invalid index"
	default:
		return "general error"
	}
}

// StatusOf classifies err. nil maps to StatusOK.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrDimensionMismatch):
		return StatusShapeMismatch
	case errors.Is(err, ErrOutOfRange):
		return StatusInvalidIndex
	default:
		return StatusGeneral
	}
}
