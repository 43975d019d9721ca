// SPDX-License-Identifier: MIT
// Package: graphmat/builder
//
// impl_random_sparse.go: Erdős–Rényi G(n, p) constructor.
//
// Contract:
//   • n ≥ 1, p ∈ [0,1].
//   • 0<p<1 requires cfg.rng (WithSeed/WithRand), else ErrNeedRandSource.
//   • p==0 emits no edges; p==1 emits K_n without touching the RNG.
//   • Pairs are visited in (i<j) lexicographic order; one Float64 draw per pair.
//
// Determinism:
//   • Same seed and n ⇒ identical labelled graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphmat/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}
		if p == MinProbability {
			return nil
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < MaxProbability && cfg.rng.Float64() >= p {
					continue
				}
				if err = cfg.addEdge(g, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
