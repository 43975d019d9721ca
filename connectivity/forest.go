// SPDX-License-Identifier: MIT

package connectivity

import (
	"github.com/katalvlaran/graphmat/core"
	"github.com/katalvlaran/graphmat/unionfind"
)

// IsForest reports whether g contains no cycle: no loop, no parallel pair and
// |E| = |V| − components. The empty graph is a forest.
func IsForest(g *core.Graph) bool {
	if g == nil {
		return true
	}
	d := unionfind.New(g.Vertices())
	for _, e := range g.Edges() {
		if !d.Union(e.From, e.To) {
			return false // loop or closes a cycle
		}
	}

	return true
}

// IsCycle reports whether the edges of g form exactly one cycle through every
// vertex: g is connected, every vertex has degree two and |E| = |V| ≥ 1.
// A single loop and a parallel pair are cycles.
func IsCycle(g *core.Graph) bool {
	if g == nil {
		return false
	}
	vs := g.Vertices()
	if len(vs) == 0 || g.EdgeCount() != len(vs) {
		return false
	}
	for _, v := range vs {
		if d, err := g.Degree(v); err != nil || d != 2 {
			return false
		}
	}

	return IsConnected(g)
}

// IsCutEdge reports whether removing edge id increases the component count.
// Loops are never cut edges.
func IsCutEdge(g *core.Graph, id string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	e, err := g.GetEdge(id)
	if err != nil {
		return false, err
	}
	if e.IsLoop() {
		return false, nil
	}
	w := newWalker(g)
	w.skipEdges = map[string]bool{id: true}
	w.reach(e.From)

	return !w.visited[e.To], nil
}

// SpanningForest returns a maximal acyclic edge set of g: edges are scanned in
// Edge.ID order and kept whenever they join two different components.
//
// Complexity: O(E log E + α(V)·E).
func SpanningForest(g *core.Graph) []core.Edge {
	if g == nil {
		return nil
	}
	d := unionfind.New(g.Vertices())
	var forest []core.Edge
	for _, e := range g.Edges() {
		if d.Union(e.From, e.To) {
			forest = append(forest, e)
		}
	}

	return forest
}
