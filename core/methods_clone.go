// SPDX-License-Identifier: MIT
// Package: graphmat/core
//
// methods_clone.go: copies and reset. Every matroid operation derives its
// result from a Clone, so a copy keeps edge labels and the generated-label
// counter; the source is only read.

package core

// CloneEmpty copies the policy flags and vertices of g but no edges.
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneEmptyLocked()
}

// Clone returns an independent deep copy of g with the same edge labels.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.cloneEmptyLocked()
	for _, e := range g.edges {
		out.linkCopy(*e)
	}

	return out
}

// Clear drops every vertex and edge and restarts generated labels at "e1".
// Loop and multi-edge policies are kept.
func (g *Graph) Clear() {
	fresh := g.emptyWithFlags()
	g.mu.Lock()
	g.vertices, g.edges, g.adjacencyList = fresh.vertices, fresh.edges, fresh.adjacencyList
	g.nextEdgeID = 0
	g.mu.Unlock()
}

func (g *Graph) cloneEmptyLocked() *Graph {
	out := g.emptyWithFlags()
	out.nextEdgeID = g.nextEdgeID
	for id := range g.vertices {
		out.addVertexLocked(id)
	}

	return out
}

// emptyWithFlags returns a vertexless graph with g's policy flags. The flags
// never change after construction, so no lock is needed.
func (g *Graph) emptyWithFlags() *Graph {
	var opts []GraphOption
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return NewGraph(opts...)
}

// linkCopy stores a copy of e, bypassing policy checks. The receiver must be
// unshared (freshly built) and e's ID unused in it.
func (g *Graph) linkCopy(e Edge) {
	g.addVertexLocked(e.From)
	g.addVertexLocked(e.To)
	ne := &Edge{ID: e.ID, From: e.From, To: e.To}
	g.edges[ne.ID] = ne
	ensureAdjacency(g, ne.From, ne.To)
	g.adjacencyList[ne.From][ne.To][ne.ID] = struct{}{}
	if ne.From != ne.To {
		ensureAdjacency(g, ne.To, ne.From)
		g.adjacencyList[ne.To][ne.From][ne.ID] = struct{}{}
	}
}
