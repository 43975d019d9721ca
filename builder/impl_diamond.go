// SPDX-License-Identifier: MIT
// Package: graphmat/builder
//
// impl_diamond.go: Diamond() and Theta(a, b, c) constructors.
//
// Theta contract:
//   • a, b, c ≥ 1 edges per path; at most one path may have length 1
//     on a simple graph (else core reports ErrMultiEdgeNotAllowed).
//   • Poles are cfg.idFn(0) and cfg.idFn(1); internal vertices follow in path order.
//   • Emission order: path a, then b, then c, each walked from pole 0 to pole 1.

package builder

import "github.com/katalvlaran/graphmat/core"

const (
	methodDiamond = "Diamond"
	methodTheta   = "Theta"
)

// diamondChords is K4 minus the 1-3 edge, with the 0-2 diagonal last.
var diamondChords = []chord{
	{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0}, {U: 0, V: 2},
}

// Diamond returns a Constructor for K4 minus one edge: two triangles sharing an edge.
// It has 4 vertices, 5 edges and rank 3.
func Diamond() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids, err := addVertices(g, cfg, methodDiamond, 4)
		if err != nil {
			return err
		}

		return addChords(g, cfg, methodDiamond, ids, diamondChords)
	}
}

// Theta returns a Constructor for three internally disjoint paths of lengths
// a, b and c between two poles.
func Theta(a, b, c int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		lengths := [...]int{a, b, c}
		for _, l := range lengths {
			if err := validateMin(methodTheta, "length", l, MinThetaPath); err != nil {
				return err
			}
		}
		poles, err := addVertices(g, cfg, methodTheta, 2)
		if err != nil {
			return err
		}

		idx := len(poles)
		for _, l := range lengths {
			prev := poles[0]
			for k := 1; k < l; k++ {
				next := cfg.idFn(idx)
				idx++
				if err = cfg.addEdge(g, methodTheta, prev, next); err != nil {
					return err
				}
				prev = next
			}
			if err = cfg.addEdge(g, methodTheta, prev, poles[1]); err != nil {
				return err
			}
		}

		return nil
	}
}
