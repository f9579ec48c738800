// SPDX-License-Identifier: MIT

package shell

import (
	"strings"

	"github.com/katalvlaran/lsmat/matrix"
)

// operator is the single operator of an eval expression.
type operator rune

const (
	opAdd       operator = '+'
	opSub       operator = '-'
	opMul       operator = '*'
	opTranspose operator = 'T'
)

// transposeSuffix marks the unary form "A.T".
const transposeSuffix = ".T"

// expr is a parsed eval right-hand side: "lhs op rhs" or "lhs.T".
type expr struct {
	lhs, rhs string
	op       operator
}

// parseAssignment splits "DEST=EXPR" and parses EXPR. Whitespace has already
// been removed by the caller joining the shell tokens.
func parseAssignment(line string) (string, expr, error) {
	dest, rhs, ok := strings.Cut(line, "=")
	if !ok || dest == "" || rhs == "" {
		return "", expr{}, errMissingArgs()
	}
	e, err := parseExpr(rhs)
	if err != nil {
		return "", expr{}, err
	}

	return dest, e, nil
}

// parseExpr recognises A.T, A+B, A-B and A*B.
func parseExpr(s string) (expr, error) {
	if strings.HasSuffix(s, transposeSuffix) {
		lhs := strings.TrimSuffix(s, transposeSuffix)
		if lhs == "" {
			return expr{}, userErrorf("Invalid syntax; missing unary operand")
		}

		return expr{lhs: lhs, op: opTranspose}, nil
	}

	at := strings.IndexAny(s, "+-*")
	if at < 0 {
		return expr{}, userErrorf("Invalid syntax; missing operator")
	}
	lhs, rhs := s[:at], s[at+1:]
	if lhs == "" {
		return expr{}, userErrorf("Invalid syntax; missing 1st binary operand")
	}
	if rhs == "" {
		return expr{}, userErrorf("Invalid syntax; missing 2nd binary operand")
	}
	if strings.ContainsAny(rhs, "+-*=") {
		return expr{}, userErrorf("Invalid syntax; one operator per expression")
	}

	return expr{lhs: lhs, rhs: rhs, op: operator(s[at])}, nil
}

// apply evaluates e on resolved operands into a fresh matrix. b is ignored
// for the transpose.
func (e expr) apply(a, b *matrix.Sparse) (*matrix.Sparse, error) {
	switch e.op {
	case opAdd:
		return matrix.Sum(a, b)
	case opSub:
		return matrix.Diff(a, b)
	case opMul:
		return matrix.Product(a, b)
	default:
		return matrix.T(a)
	}
}
