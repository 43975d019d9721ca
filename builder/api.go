// SPDX-License-Identifier: MIT
// Package: graphmat/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go; Family() maps workload names onto them.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state).
//   - Edge labels come from one counter shared by every constructor of a single build,
//     so composed fixtures never collide and labels follow emission order.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical labelled graphs.
//
// Notes:
//   - Compose multiple constructors in BuildGraph to assemble complex fixtures deterministically.
//   - Use WithSeed(...) to freeze RandomSparse.
//   - WithIDScheme(...) renames vertices; WithLabelScheme(...) renames edges.
//   - BuildMultigraph is the entry point for fixtures that will become graphic matroids.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphmat/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add edges only through cfg.addEdge so labels stay sequential.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		// Reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// BuildMultigraph is BuildGraph on a graph that permits loops and parallel edges.
func BuildMultigraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	return BuildGraph([]core.GraphOption{core.WithLoops(), core.WithMultiEdges()}, bopts, cons...)
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
//   Complete(n)              K_n, n ≥ 1
//   Cycle(n)                 C_n, n ≥ 3
//   Path(n)                  P_n, n ≥ 2
//   Star(n)                  hub "Center" + n-1 leaves, n ≥ 2
//   Wheel(n)                 C_{n-1} + hub "Center", n ≥ 4
//   Diamond()                K4 minus one edge
//   Theta(a, b, c)           two poles joined by three internally disjoint paths
//   Bouquet(n)               n loops on one vertex (needs WithLoops)
//   Bundle(n)                n parallel edges between two vertices (needs WithMultiEdges)
//   CompleteBipartite(m, n)  K_{m,n}
//   Grid(rows, cols)         rows×cols lattice
//   PlatonicSolid(name, hub) the five Platonic skeletons, optionally with a hub
//   RandomSparse(n, p)       Erdős–Rényi G(n,p), needs WithSeed/WithRand for 0<p<1
