// SPDX-License-Identifier: MIT
// Package: graphmat/builder
//
// impl_path.go: implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits n-1 edges i: i+1 in ascending i.

package builder

import "github.com/katalvlaran/graphmat/core"

const methodPath = "Path"

// Path returns a Constructor that builds the path P_n on n vertices.
// Every edge of a path is a coloop.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		ids, err := addVertices(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = cfg.addEdge(g, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
