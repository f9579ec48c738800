// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/aliasing checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import "github.com/cockroachdb/errors"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// shaped is the minimal surface the shape validators need.
type shaped interface {
	Rows() int
	Cols() int
}

// ValidateNotNil ensures the Matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure). Complexity: O(1).
func ValidateSameShape(a, b shaped) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows (inner dimensions agree).
// Complexity: O(1).
func ValidateMulCompatible(a, b shaped) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulOutput ensures out has shape (a.Rows × b.Cols).
// Complexity: O(1).
func ValidateMulOutput(a, b, out shaped) error {
	if out.Rows() != a.Rows() || out.Cols() != b.Cols() {
		return validatorErrorf("ValidateMulOutput", ErrDimensionMismatch)
	}

	return nil
}

// resolveOperand turns an Operand into its physical source and permutation.
// Handles the untyped-nil interface that resolve() cannot see.
func resolveOperand(op Operand) (*Sparse, [axisCount]Axis, error) {
	if op == nil {
		return nil, identityPerm, validatorErrorf("resolveOperand", ErrNilMatrix)
	}
	src, perm, err := op.resolve()
	if err != nil {
		return nil, identityPerm, validatorErrorf("resolveOperand", err)
	}

	return src, perm, nil
}

// validateOutput ensures out is usable and shares storage with neither operand source.
func validateOutput(out *Sparse, sources ...*Sparse) error {
	if err := out.alive(); err != nil {
		return validatorErrorf("validateOutput", err)
	}
	for _, s := range sources {
		if s == out {
			return validatorErrorf("validateOutput", ErrAliasedOutput)
		}
	}

	return nil
}
