// SPDX-License-Identifier: MIT
// Package: graphmat/builder
//
// impl_bundle.go: Bundle(n) and Bouquet(n): the degenerate multigraph fixtures.
//
// Contract:
//   • Bundle needs a graph WithMultiEdges when n ≥ 2; Bouquet needs WithLoops.
//     Core policy errors are surfaced unchanged (wrapped with the method tag).
//
// Notes:
//   • Bundle(n) is the graphic matroid U_{1,n}: every pair is a circuit.
//   • Bouquet(n) is a matroid of n loops: rank 0, nothing independent but ∅.

package builder

import "github.com/katalvlaran/graphmat/core"

const (
	methodBundle  = "Bundle"
	methodBouquet = "Bouquet"
)

// Bundle returns a Constructor for n parallel edges between cfg.idFn(0) and cfg.idFn(1).
func Bundle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodBundle, "n", n, MinBundleEdges); err != nil {
			return err
		}
		ids, err := addVertices(g, cfg, methodBundle, 2)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = cfg.addEdge(g, methodBundle, ids[0], ids[1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Bouquet returns a Constructor for n loops on the single vertex cfg.idFn(0).
func Bouquet(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodBouquet, "n", n, MinBouquetLoops); err != nil {
			return err
		}
		ids, err := addVertices(g, cfg, methodBouquet, 1)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = cfg.addEdge(g, methodBouquet, ids[0], ids[0]); err != nil {
				return err
			}
		}

		return nil
	}
}
