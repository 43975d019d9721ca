// Package isomorph defines sentinel errors and options for the isomorphism
// and minor oracles over simple core.Graphs.
package isomorph

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("isomorph: graph is nil")

	// ErrNotSimple indicates an input graph has a loop or a parallel edge.
	ErrNotSimple = errors.New("isomorph: graph must be simple")

	// ErrStateLimit indicates the minor search visited more states than allowed.
	ErrStateLimit = errors.New("isomorph: search state limit exceeded")
)

// DefaultMaxStates bounds the number of contracted graphs the minor search explores.
const DefaultMaxStates = 1 << 18

// Option configures optional behavior of Isomorphism and Minor.
type Option func(*Options)

// Options holds search parameters.
type Options struct {
	// Ctx allows cancellation; checked once per explored state. Defaults to context.Background().
	Ctx context.Context

	// MaxStates caps the number of graphs the minor search may expand (≤0 means DefaultMaxStates).
	MaxStates int
}

// DefaultOptions returns Options with a background context and DefaultMaxStates.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxStates: DefaultMaxStates}
}

// WithContext sets a cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxStates overrides the minor search budget.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxStates = n
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
