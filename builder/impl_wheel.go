// SPDX-License-Identifier: MIT
// Package: graphmat/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices): rim C_{n-1} plus hub CenterVertexID.
//   • Emission order: rim edges first (as Cycle), then spokes in ascending rim index.
//
// Notes:
//   • W_n is 3-connected for n ≥ 4, which makes it the smallest useful
//     fixture for Whitney-style uniqueness checks.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphmat/core"
)

const methodWheel = "Wheel"

// Wheel returns a Constructor that builds the wheel W_n on n vertices.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		rim := n - 1
		ids, err := addVertices(g, cfg, methodWheel, rim)
		if err != nil {
			return err
		}
		for i := 0; i < rim; i++ {
			if err = cfg.addEdge(g, methodWheel, ids[i], ids[(i+1)%rim]); err != nil {
				return err
			}
		}
		if err = g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, CenterVertexID, err)
		}
		for _, id := range ids {
			if err = cfg.addEdge(g, methodWheel, CenterVertexID, id); err != nil {
				return err
			}
		}

		return nil
	}
}
