// SPDX-License-Identifier: MIT
// Package: graphmat/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i: (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.

package builder

import "github.com/katalvlaran/graphmat/core"

const methodCycle = "Cycle"

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// Its edge set is a single circuit of the graphic matroid.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		ids, err := addVertices(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		// i==n-1 closes the ring back to 0.
		for i := 0; i < n; i++ {
			if err = cfg.addEdge(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
