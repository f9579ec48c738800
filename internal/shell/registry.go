// SPDX-License-Identifier: MIT

package shell

import (
	"strings"

	"github.com/katalvlaran/lsmat/matrix"
)

// identChars is the accepted identifier alphabet.
const identChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// registry maps identifiers to matrices in definition order.
type registry struct {
	names  []string
	mats   map[string]*matrix.Sparse
	limit  int // maximum number of live matrices
	maxLen int // maximum identifier length
}

func newRegistry(limit, maxLen int) *registry {
	return &registry{
		mats:   make(map[string]*matrix.Sparse),
		limit:  limit,
		maxLen: maxLen,
	}
}

// validate checks that name can be defined: well-formed and not yet taken.
func (r *registry) validate(name string) error {
	if _, ok := r.mats[name]; ok {
		return userErrorf("Identifier already defined: '%s'", name)
	}
	if len(name) > r.maxLen {
		return userErrorf("Identifier too long (%d max)", r.maxLen)
	}
	if name == "" || strings.Trim(name, identChars) != "" {
		return userErrorf("Invalid identifier; allowed chars: '%s'", identChars)
	}
	if len(r.names) >= r.limit {
		return userErrorf("Too many matrices (%d max)", r.limit)
	}

	return nil
}

// add stores m under name. Callers validate first.
func (r *registry) add(name string, m *matrix.Sparse) error {
	if err := r.validate(name); err != nil {
		return err
	}
	r.names = append(r.names, name)
	r.mats[name] = m

	return nil
}

// get returns the matrix bound to name.
func (r *registry) get(name string) (*matrix.Sparse, error) {
	m, ok := r.mats[name]
	if !ok {
		return nil, userErrorf("Undefined identifier '%s'", name)
	}

	return m, nil
}

// remove destroys and forgets the matrix bound to name.
func (r *registry) remove(name string) error {
	m, err := r.get(name)
	if err != nil {
		return err
	}
	m.Destroy()
	delete(r.mats, name)
	for k, n := range r.names {
		if n == name {
			r.names = append(r.names[:k], r.names[k+1:]...)
			break
		}
	}

	return nil
}

// destroyAll releases every matrix and returns how many there were.
func (r *registry) destroyAll() int {
	n := len(r.names)
	for _, name := range r.names {
		r.mats[name].Destroy()
	}
	r.names = nil
	clear(r.mats)

	return n
}

// len reports the number of defined matrices.
func (r *registry) len() int { return len(r.names) }

