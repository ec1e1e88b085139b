// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for arithmetic and decoding.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"context"
	"log/slog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrictBounds toggles decode-time index validation.
	// false ⇒ entries outside the declared shape are accepted as-is.
	DefaultStrictBounds = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLoggerNil = "matrix: WithLogger: logger must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	logger       *slog.Logger // diagnostic hook for arithmetic; nil ⇒ silent
	strictBounds bool         // DefaultStrictBounds
}

// WithLogger installs a structured logger that receives one record per
// arithmetic call naming the operation and both operand shapes.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithStrictBounds makes decoding reject negative dimensions and entries
// outside [0,rows)×[0,cols) with ErrOutOfRange. By default decoding trusts
// its input.
func WithStrictBounds() Option {
	return func(o *Options) { o.strictBounds = true }
}

// gatherOptions applies opts over the defaults. nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{strictBounds: DefaultStrictBounds}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// announce emits the diagnostic record for a binary operation.
func (o Options) announce(op string, a, b *Sparse) {
	if o.logger == nil {
		return
	}
	o.logger.LogAttrs(context.Background(), slog.LevelInfo, "combining matrices",
		slog.String("op", op),
		slog.String("lhs", a.Shape().String()),
		slog.String("rhs", b.Shape().String()),
	)
}
