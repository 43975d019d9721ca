// SPDX-License-Identifier: MIT
// Package: graphmat/builder
//
// impl_platonic.go: PlatonicSolid(name, withCenter).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphmat/core"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor for the skeleton of a Platonic solid.
// Shell vertices are cfg.idFn(0..V-1). With withCenter a hub CenterVertexID is
// added and joined to every shell vertex after the shell edges.
// An unknown name yields ErrOptionViolation.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n, chords, ok := platonicSkeleton(name)
		if !ok {
			return fmt.Errorf("%s: unknown solid %d: %w", methodPlatonicSolid, int(name), ErrOptionViolation)
		}

		ids, err := addVertices(g, cfg, methodPlatonicSolid, n)
		if err != nil {
			return err
		}
		if err = addChords(g, cfg, methodPlatonicSolid, ids, chords); err != nil {
			return err
		}
		if !withCenter {
			return nil
		}

		if err = g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodPlatonicSolid, CenterVertexID, err)
		}
		for _, id := range ids {
			if err = cfg.addEdge(g, methodPlatonicSolid, CenterVertexID, id); err != nil {
				return err
			}
		}

		return nil
	}
}
