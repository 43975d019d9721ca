// File: methods_merge.go
// Role: Structural rewrites that keep edge IDs stable: vertex merge, edge
//       contraction and vertex splitting.
// Determinism:
//   - ContractEdge keeps Edge.From of the contracted edge as the surviving vertex.
//   - Rewritten edges keep their IDs; only endpoints change.
// Concurrency:
//   - Every rewrite runs under a single write lock.
// Notes:
//   - Contracting a loop deletes it.
//   - Edges parallel to a contracted edge become loops, so contraction on a graph
//     without WithLoops can fail with ErrLoopNotAllowed.

package core

import "sort"

// MergeVertices identifies every vertex in others with keep. Edges touching a
// merged vertex are re-attached to keep; edges joining two merged vertices turn
// into loops at keep. Merged vertices disappear. Listing keep in others is a no-op.
//
// Errors:
//   - ErrEmptyVertexID / ErrVertexNotFound for unknown vertices.
//   - ErrLoopNotAllowed / ErrMultiEdgeNotAllowed if the result breaks the graph policy.
//
// Complexity: O(E).
func (g *Graph) MergeVertices(keep string, others ...string) error {
	if keep == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.mergeLocked(keep, others)
}

// ContractEdge removes edge id and merges its endpoints into e.From.
// A loop is simply removed.
//
// Complexity: O(E).
func (g *Graph) ContractEdge(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.contractLocked(id)
}

// ContractEdges contracts every listed edge in order. All IDs are validated
// before the graph changes; an edge turned into a loop by an earlier
// contraction is deleted instead.
//
// Complexity: O(k·E).
func (g *Graph) ContractEdges(ids []string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, id := range ids {
		if _, ok := g.edges[id]; !ok {
			return ErrEdgeNotFound
		}
	}
	for _, id := range ids {
		if _, ok := g.edges[id]; !ok {
			continue // listed twice
		}
		if err := g.contractLocked(id); err != nil {
			return err
		}
	}

	return nil
}

// SplitVertex creates vertex v and moves the listed edges from u to v.
// A loop at u that is moved becomes a loop at v. No edge joining u and v is added.
//
// Errors:
//   - ErrVertexNotFound if u is missing; ErrVertexExists if v is present.
//   - ErrEdgeNotFound for unknown edges; ErrEdgeNotIncident if an edge misses u.
//
// Complexity: O(k) for k moved edges.
func (g *Graph) SplitVertex(u, v string, edgeIDs []string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[u]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[v]; ok {
		return ErrVertexExists
	}
	moved := make([]*Edge, 0, len(edgeIDs))
	for _, id := range edgeIDs {
		e, ok := g.edges[id]
		if !ok {
			return ErrEdgeNotFound
		}
		if !e.Touches(u) {
			return ErrEdgeNotIncident
		}
		moved = append(moved, e)
	}

	g.addVertexLocked(v)
	for _, e := range moved {
		if _, still := g.edges[e.ID]; !still {
			continue // listed twice
		}
		g.removeEdgeLocked(e)
		from, to := e.From, e.To
		if from == u {
			from = v
		}
		if to == u {
			to = v
		}
		g.linkCopy(Edge{ID: e.ID, From: from, To: to})
	}

	return nil
}

func (g *Graph) contractLocked(id string) error {
	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	if e.IsLoop() {
		g.removeEdgeLocked(e)
		return nil
	}
	// e is restored if the merge is rejected.
	g.removeEdgeLocked(e)
	if err := g.mergeLocked(e.From, []string{e.To}); err != nil {
		g.linkCopy(*e)
		return err
	}

	return nil
}

func (g *Graph) mergeLocked(keep string, others []string) error {
	if _, ok := g.vertices[keep]; !ok {
		return ErrVertexNotFound
	}
	gone := make(map[string]struct{}, len(others))
	for _, o := range others {
		if o == "" {
			return ErrEmptyVertexID
		}
		if _, ok := g.vertices[o]; !ok {
			return ErrVertexNotFound
		}
		if o != keep {
			gone[o] = struct{}{}
		}
	}
	if len(gone) == 0 {
		return nil
	}
	remap := func(x string) string {
		if _, ok := gone[x]; ok {
			return keep
		}
		return x
	}

	// Stage 1: compute rewritten edges and check policy before mutating.
	var affected []Edge
	for o := range gone {
		for _, bucket := range g.adjacencyList[o] {
			for eid := range bucket {
				affected = append(affected, *g.edges[eid])
			}
		}
	}
	sort.Slice(affected, func(i, j int) bool { return affected[i].ID < affected[j].ID })
	affected = dedupeEdges(affected)
	for _, e := range affected {
		if remap(e.From) == remap(e.To) && !g.allowLoops {
			return ErrLoopNotAllowed
		}
	}
	if !g.allowMulti && g.mergeCreatesParallel(remap) {
		return ErrMultiEdgeNotAllowed
	}

	// Stage 2: apply.
	for i := range affected {
		g.removeEdgeLocked(g.edges[affected[i].ID])
	}
	for o := range gone {
		delete(g.vertices, o)
		delete(g.adjacencyList, o)
	}
	for _, e := range affected {
		g.linkCopy(Edge{ID: e.ID, From: remap(e.From), To: remap(e.To)})
	}

	return nil
}

// mergeCreatesParallel reports whether remapping endpoints yields two edges on one pair.
func (g *Graph) mergeCreatesParallel(remap func(string) string) bool {
	seen := make(map[[2]string]struct{}, len(g.edges))
	for _, e := range g.edges {
		a, b := remap(e.From), remap(e.To)
		if a > b {
			a, b = b, a
		}
		key := [2]string{a, b}
		if _, dup := seen[key]; dup {
			return true
		}
		seen[key] = struct{}{}
	}

	return false
}

// dedupeEdges drops consecutive duplicates from an ID-sorted slice.
func dedupeEdges(in []Edge) []Edge {
	out := in[:0]
	for _, e := range in {
		if len(out) > 0 && out[len(out)-1].ID == e.ID {
			continue
		}
		out = append(out, e)
	}

	return out
}
