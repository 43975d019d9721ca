// SPDX-License-Identifier: MIT
// Package: graphmat/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices): one hub plus n-1 leaves.
//   • Hub is CenterVertexID; leaves are cfg.idFn(0..n-2).
//   • Emits spokes Center: leaf in ascending leaf index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphmat/core"
)

const methodStar = "Star"

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}
		leaves, err := addVertices(g, cfg, methodStar, n-1)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err = cfg.addEdge(g, methodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
