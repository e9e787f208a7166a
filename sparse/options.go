// SPDX-License-Identifier: MIT

// Package sparse: functional configuration of a Matrix.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package sparse

import "go.uber.org/zap"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMergePolicy sums colliding cells on Merge.
	DefaultMergePolicy = MergeAdd

	// DefaultValidateNaNInf rejects ±Inf ratings on Set and merges.
	// Only meaningful for float instantiations of Matrix.
	DefaultValidateNaNInf = true
)

const (
	panicMergePolicyInvalid = "sparse: WithMergePolicy: unknown merge policy"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	mergePolicy    MergePolicy // DefaultMergePolicy
	validateNaNInf bool        // DefaultValidateNaNInf
	logger         *zap.Logger // zap.NewNop() unless WithLogger
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		mergePolicy:    DefaultMergePolicy,
		validateNaNInf: DefaultValidateNaNInf,
		logger:         zap.NewNop(),
	}
}

// WithMergePolicy selects how Merge and MergeEntries resolve colliding cells.
// Panics on an undeclared policy value.
func WithMergePolicy(p MergePolicy) Option {
	if !p.valid() {
		panic(panicMergePolicyInvalid)
	}
	return func(o *Options) { o.mergePolicy = p }
}

// WithValidateNaNInf toggles rejection of ±Inf ratings with ErrNaNInf.
// With validation disabled, +Inf is stored like any positive value and -Inf
// falls through to ErrNegativeValue. NaN is rejected in either mode.
func WithValidateNaNInf(enabled bool) Option {
	return func(o *Options) { o.validateNaNInf = enabled }
}

// WithLogger attaches a structured logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// gatherOptions applies opts over the defaults; nil entries are ignored.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
