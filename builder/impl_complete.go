// SPDX-License-Identifier: MIT
// Package: graphmat/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits each unordered pair once, i<j, in lexicographic (i,j) order.
//   • Edge labels follow emission order through cfg.addEdge.
//
// Complexity:
//   • Time: O(n²) edges.
//   • Space: O(n) for the ID slice.

package builder

import "github.com/katalvlaran/graphmat/core"

const methodComplete = "Complete"

// Complete returns a Constructor that builds the complete graph K_n.
// The graphic matroid of K_n is M(K_n) with rank n-1.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		ids, err := addVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = cfg.addEdge(g, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
