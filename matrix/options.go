// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Sparse construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Numeric policy: NaN and ±Inf propagate as ordinary float64 values
//     unless WithValidateNaNInf is given. This differs from a finite-only
//     dense pipeline on purpose: sparse arithmetic must match IEEE-754.
//   - Options are captured at construction; matrices produced by Realize,
//     Clone and the arithmetic facades inherit the options of their source.
package matrix

import "go.uber.org/zap"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = false

	// DefaultInitialCapacity is the number of cell slots reserved up front.
	DefaultInitialCapacity = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityInvalid = "matrix: WithInitialCapacity: capacity must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool        // DefaultValidateNaNInf
	capacity       int         // DefaultInitialCapacity
	logger         *zap.Logger // never nil after gatherOptions
}

// WithValidateNaNInf makes Set reject NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf restores the default IEEE-754 pass-through policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithInitialCapacity reserves room for n cells in the arena.
// Panics when n < 0 (programmer error).
//
// AI-Hints:
//   - Use the expected nnz when filling a matrix in bulk to avoid regrowth.
func WithInitialCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

// WithLogger attaches a zap logger used for Debug-level lifecycle and kernel
// events. A nil logger is treated as zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins; the logger is normalized to a no-op when unset.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		capacity:       DefaultInitialCapacity,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return o
}

// inherit returns setters reproducing o, used when a kernel allocates a new
// Sparse on behalf of an existing one.
func (o Options) inherit() []Option {
	return []Option{
		func(dst *Options) {
			dst.validateNaNInf = o.validateNaNInf
			dst.logger = o.logger
		},
	}
}
