// SPDX-License-Identifier: MIT
// Package: graphmat/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex (r,c) gets ID cfg.idFn(r*cols + c).
//   • Emission order: for each cell in row-major order, the right edge then the down edge.
//
// Complexity:
//   • Time: O(rows·cols).

package builder

import "github.com/katalvlaran/graphmat/core"

const methodGrid = "Grid"

// Grid returns a Constructor that builds the rows×cols lattice graph.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		ids, err := addVertices(g, cfg, methodGrid, rows*cols)
		if err != nil {
			return err
		}

		var r, c, idx int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				idx = r*cols + c
				if c+1 < cols {
					if err = cfg.addEdge(g, methodGrid, ids[idx], ids[idx+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = cfg.addEdge(g, methodGrid, ids[idx], ids[idx+cols]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
