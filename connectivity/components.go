// SPDX-License-Identifier: MIT

package connectivity

import (
	"sort"

	"github.com/katalvlaran/graphmat/core"
)

// Components returns the vertex sets of g's connected components.
// Components are ordered by their smallest vertex ID and each is sorted.
// An empty graph has no components.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := newWalker(g)
	var out [][]string
	for _, v := range g.Vertices() {
		if w.visited[v] {
			continue
		}
		comp := w.reach(v)
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out, nil
}

// ComponentCount returns the number of connected components of g.
// Isolated vertices count as components; a nil graph counts as zero.
func ComponentCount(g *core.Graph) int {
	if g == nil {
		return 0
	}

	return newWalker(g).countComponents()
}

// ComponentCountWithout returns the component count of g with the listed
// edges ignored. Unknown IDs are ignored too. g is not modified.
func ComponentCountWithout(g *core.Graph, edgeIDs []string) int {
	if g == nil {
		return 0
	}
	w := newWalker(g)
	w.skipEdges = make(map[string]bool, len(edgeIDs))
	for _, id := range edgeIDs {
		w.skipEdges[id] = true
	}

	return w.countComponents()
}

// IsConnected reports whether g has exactly one component.
// The empty graph is not connected.
func IsConnected(g *core.Graph) bool {
	return ComponentCount(g) == 1
}
