// SPDX-License-Identifier: MIT
// Package: graphmat/builder
//
// impl_bipartite.go: implementation of CompleteBipartite(m, n) constructor.
//
// Contract:
//   • m, n ≥ 1 (else ErrTooFewVertices).
//   • Left IDs are leftPrefix+idFn(i), right IDs are rightPrefix+idFn(j).
//   • Emits every left-right pair in (i, j) lexicographic order.
//
// Complexity:
//   • Time: O(m·n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphmat/core"
)

const methodCompleteBipartite = "CompleteBipartite"

// CompleteBipartite returns a Constructor that builds K_{m,n}.
// K_{3,3} is the canonical non-planar minor pattern.
func CompleteBipartite(m, n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCompleteBipartite, "m", m, MinPartitionSize); err != nil {
			return err
		}
		if err := validateMin(methodCompleteBipartite, "n", n, MinPartitionSize); err != nil {
			return err
		}

		left := make([]string, m)
		for i := range left {
			left[i] = cfg.leftPrefix + cfg.idFn(i)
			if err := g.AddVertex(left[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, left[i], err)
			}
		}
		right := make([]string, n)
		for j := range right {
			right[j] = cfg.rightPrefix + cfg.idFn(j)
			if err := g.AddVertex(right[j]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, right[j], err)
			}
		}

		for _, u := range left {
			for _, v := range right {
				if err := cfg.addEdge(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
