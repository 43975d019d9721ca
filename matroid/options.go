// SPDX-License-Identifier: MIT

package matroid

import (
	"io"
	"log/slog"
)

// Option configures New.
type Option func(*options)

type options struct {
	groundset    []string
	hasGroundset bool
	logger       *slog.Logger
	fallback     Fallback
}

// WithGroundset labels g.Edges() (sorted by edge ID) with labels, position by
// position. Labels that are empty, repeated or of the wrong count are
// replaced by generated labels "0".."n-1".
func WithGroundset(labels []string) Option {
	return func(o *options) {
		o.groundset = append([]string(nil), labels...)
		o.hasGroundset = true
	}
}

// WithLogger routes debug records about merges, edits and isomorphism
// dispatch to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFallback replaces the search used when the 3-connected shortcut does not apply.
// A nil Fallback is ignored.
func WithFallback(f Fallback) Option {
	return func(o *options) {
		if f != nil {
			o.fallback = f
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		fallback: ExhaustiveSearch{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
