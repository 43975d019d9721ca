// SPDX-License-Identifier: MIT
// Package: graphmat/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn        = DefaultIDFn        ("0","1","2",...)
//   • labelFn     = DefaultIDFn        (edge labels "0","1",... in emission order)
//   • rng         = nil                (pure/deterministic unless seeded)
//   • left/right  = "L" / "R"
//
// Notes:
//   • Set WithSeed for reproducible RandomSparse fixtures.
//   • The label counter is a pointer: it is shared by all constructors of one BuildGraph call.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/graphmat/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors; only the label counter is shared.
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// Edge label strategy: emission index -> label.
	labelFn IDFn
	// next is the emission index of the next edge.
	next *int
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Bipartite ID prefixes (left/right). Empty → defaults resolved below.
	leftPrefix  string
	rightPrefix string
}

// Deterministic defaults (named, no magic literals).
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		labelFn:     DefaultIDFn,
		next:        new(int),
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// addEdge emits one labelled edge u-v and advances the shared label counter.
// method tags the error context.
func (cfg builderConfig) addEdge(g *core.Graph, method, u, v string) error {
	label := cfg.labelFn(*cfg.next)
	if err := g.AddEdgeWithID(label, u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s: %s-%s): %w", method, label, u, v, err)
	}
	*cfg.next++

	return nil
}
