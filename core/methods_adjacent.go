// SPDX-License-Identifier: MIT
// Package: graphmat/core
//
// methods_adjacent.go: incidence queries and the adjacency bookkeeping shared
// by every mutating method. A loop sits in the adjacencyList[v][v] bucket and
// is reported once per query.

package core

import "sort"

// Neighbors returns copies of the edges incident to id, sorted by Edge.ID.
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.knownLocked(id) {
		return nil, ErrVertexNotFound
	}

	return g.incidentLocked([]string{id}), nil
}

// NeighborIDs returns the distinct vertices adjacent to id in ascending
// order. A vertex carrying a loop is its own neighbour.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.knownLocked(id) {
		return nil, ErrVertexNotFound
	}

	ids := make([]string, 0, len(g.adjacencyList[id]))
	for to, bucket := range g.adjacencyList[id] {
		if len(bucket) > 0 {
			ids = append(ids, to)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// IncidentEdges returns every edge touching at least one vertex of vs, each
// once, sorted by Edge.ID. Unknown vertices are ignored.
func (g *Graph) IncidentEdges(vs []string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.incidentLocked(vs)
}

func (g *Graph) incidentLocked(vs []string) []Edge {
	seen := make(map[string]bool)
	var out []Edge
	for _, v := range vs {
		for _, bucket := range g.adjacencyList[v] {
			for eid := range bucket {
				if e := g.edges[eid]; !seen[eid] && !e.IsNil() {
					seen[eid] = true
					out = append(out, *e)
				}
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// ensureAdjacency makes adjacencyList[from][to] non-nil.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency deletes e from both directions and drops empty buckets.
func removeAdjacency(g *Graph, e *Edge) {
	unlink := func(a, b string) {
		if m := g.adjacencyList[a][b]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[a], b)
			}
		}
	}
	unlink(e.From, e.To)
	if e.From != e.To {
		unlink(e.To, e.From)
	}
}
