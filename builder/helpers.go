// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
package builder

import (
	"fmt"

	"github.com/katalvlaran/graphmat/core"
)

// addVertices inserts cfg.idFn(0..n-1) and returns the IDs in index order.
// Complexity: O(n).
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addChords emits ids[c.U]-ids[c.V] for each chord in order.
func addChords(g *core.Graph, cfg builderConfig, method string, ids []string, chords []chord) error {
	for _, c := range chords {
		if err := cfg.addEdge(g, method, ids[c.U], ids[c.V]); err != nil {
			return err
		}
	}

	return nil
}

// chord is an unordered connection between two zero-based vertex indices.
type chord struct {
	U int
	V int
}
