// File: view.go
// Role: Non-mutating graph views (fresh graphs derived from a source).
// Determinism:
//   - Preserves vertex and edge IDs. SimpleView keeps the lowest edge ID of every parallel class.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.
// Notes:
//   - Views do NOT mutate the input Graph.
//   - EdgeSubgraph keeps only the listed edges and their endpoints (no isolated vertices).
//   - InducedSubgraph keeps only vertices in 'keep' and edges with both endpoints kept.

package core

import "sort"

// EdgeSubgraph returns the graph spanned by the edges in ids: those edges plus
// exactly the vertices they touch. Unknown IDs yield ErrEdgeNotFound.
// The result inherits g's policy flags.
//
// Complexity: O(k) for k IDs. Concurrency: read lock only on source.
func EdgeSubgraph(g *Graph, ids []string) (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.emptyWithFlags()
	out.nextEdgeID = g.nextEdgeID
	for _, id := range ids {
		e, ok := g.edges[id]
		if !ok {
			return nil, ErrEdgeNotFound
		}
		if _, dup := out.edges[id]; dup {
			continue
		}
		out.linkCopy(*e)
	}

	return out, nil
}

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	// Build problem-specific slices of the graph without side effects on 'g'.
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.emptyWithFlags()
	out.nextEdgeID = g.nextEdgeID
	for id := range g.vertices {
		if keep[id] {
			out.addVertexLocked(id)
		}
	}
	for _, e := range g.edges {
		if keep[e.From] && keep[e.To] {
			out.linkCopy(*e)
		}
	}

	return out
}

// SimpleView returns the underlying simple graph of g: loops are dropped and
// every class of parallel edges collapses to its lowest edge ID. All vertices
// are kept. The result disallows loops and multi-edges.
//
// Complexity: O(E log E).
func SimpleView(g *Graph) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	for id := range g.vertices {
		out.addVertexLocked(id)
	}
	ids := make([]string, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		e := g.edges[id]
		if e.IsLoop() || len(out.adjacencyList[e.From][e.To]) > 0 {
			continue
		}
		out.linkCopy(*e)
	}

	return out
}

// Equal reports whether a and b have the same vertex set and the same labelled
// edges, each joining the same unordered pair of endpoints.
//
// Complexity: O(V + E).
func Equal(a, b *Graph) bool {
	if a == b {
		return true
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(a.vertices) != len(b.vertices) || len(a.edges) != len(b.edges) {
		return false
	}
	for v := range a.vertices {
		if _, ok := b.vertices[v]; !ok {
			return false
		}
	}
	for id, ea := range a.edges {
		eb, ok := b.edges[id]
		if !ok {
			return false
		}
		same := ea.From == eb.From && ea.To == eb.To
		swapped := ea.From == eb.To && ea.To == eb.From
		if !same && !swapped {
			return false
		}
	}

	return true
}
