// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdgeWithID/RemoveEdge/HasEdge/GetEdge/
//       Edges/EdgeIDs/EdgesBetween/Loops/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and skips IDs already claimed explicitly.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
// Notes:
//   - Edge IDs are labels: AddEdgeWithID lets callers pick them, AddEdge generates "e1","e2",...
//   - Returned *Edge values are copies; mutating them never touches the graph.

package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for generated edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge between from and to with a generated ID and returns that ID.
//
// Errors:
//   - If Looped()==false and from==to, this returns ErrLoopNotAllowed.
//   - If Multigraph()==false and {from,to} already has an edge, this returns ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	eid := g.nextEdgeIDLocked()
	if err := g.addEdgeLocked(eid, from, to); err != nil {
		return "", err
	}

	return eid, nil
}

// AddEdgeWithID creates a new edge with the caller-supplied ID.
//
// Steps:
//  1. Validate IDs (ErrEmptyEdgeID, ErrEmptyVertexID).
//  2. Reject an ID already present (ErrDuplicateEdgeID).
//  3. Enforce loop and multi-edge policies.
//  4. Ensure endpoints exist, store the edge and link adjacency (mirrored unless loop).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdgeWithID(id, from, to string) error {
	if id == "" {
		return ErrEmptyEdgeID
	}
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addEdgeLocked(id, from, to)
}

// RemoveEdge deletes one edge by ID.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(id string) error {
	// Removing an absent edge returns ErrEdgeNotFound (no silent ignore).
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	g.removeEdgeLocked(e)

	return nil
}

// RemoveEdges deletes every listed edge. It stops at the first missing ID and
// returns ErrEdgeNotFound; edges removed before that point stay removed.
// Complexity: O(k) for k IDs.
func (g *Graph) RemoveEdges(ids []string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, id := range ids {
		e, ok := g.edges[id]
		if !ok {
			return ErrEdgeNotFound
		}
		g.removeEdgeLocked(e)
	}

	return nil
}

// HasEdge reports whether at least one edge joins from and to (in either order).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// HasEdgeID reports whether an edge with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasEdgeID(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[id]

	return ok
}

// GetEdge returns a copy of the edge with the given ID, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) GetEdge(id string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// Edges returns copies of all edges sorted by Edge.ID asc.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	// Deterministic ordering by Edge.ID asc; rely on it for golden tests.
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeIDs returns all edge IDs sorted ascending.
// Complexity: O(E log E).
func (g *Graph) EdgeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// EdgesBetween returns the edges joining u and v, sorted by ID.
// For u == v it returns the loops at u.
// Complexity: O(k log k) for k parallel edges.
func (g *Graph) EdgesBetween(u, v string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket := g.adjacencyList[u][v]
	out := make([]Edge, 0, len(bucket))
	for id := range bucket {
		out = append(out, *g.edges[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Loops returns every self-loop sorted by ID.
// Complexity: O(E log E).
func (g *Graph) Loops() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []Edge
	for _, e := range g.edges {
		if e.IsLoop() {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// addEdgeLocked validates policies and stores one edge. Caller holds the write lock.
func (g *Graph) addEdgeLocked(id, from, to string) error {
	if _, dup := g.edges[id]; dup {
		return ErrDuplicateEdgeID
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if !g.allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return ErrMultiEdgeNotAllowed
	}
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	e := &Edge{ID: id, From: from, To: to}
	g.edges[id] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][id] = struct{}{}
	if from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][id] = struct{}{}
	}

	return nil
}

// removeEdgeLocked unlinks e from the catalog and adjacency. Caller holds the write lock.
func (g *Graph) removeEdgeLocked(e *Edge) {
	delete(g.edges, e.ID)
	removeAdjacency(g, e)
}

// nextEdgeIDLocked returns a new unique textual edge ID ("e" + decimal).
// IDs already claimed through AddEdgeWithID are skipped.
func (g *Graph) nextEdgeIDLocked() string {
	for {
		g.nextEdgeID++
		buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
		buf = append(buf, edgeIDPrefix)
		buf = strconv.AppendUint(buf, g.nextEdgeID, 10)
		id := string(buf)
		if _, taken := g.edges[id]; !taken {
			return id
		}
	}
}
