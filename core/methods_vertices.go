// SPDX-License-Identifier: MIT
// Package: graphmat/core
//
// methods_vertices.go: vertex lifecycle, degree and fresh vertex names.
//
// Vertex IDs double as the vertex labels of a graphic matroid model, so the
// only enumeration surface (Vertices) is sorted and FreshVertexID is
// deterministic: the same graph always yields the same new name.

package core

import (
	"sort"
	"strconv"
)

// AddVertex registers id. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	g.addVertexLocked(id)
	g.mu.Unlock()

	return nil
}

// HasVertex reports whether id is a vertex. The empty ID never is.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.knownLocked(id)
}

// RemoveVertex deletes id together with every edge touching it, loops included.
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.knownLocked(id) {
		return ErrVertexNotFound
	}

	for _, e := range g.edges {
		if e.Touches(id) {
			g.removeEdgeLocked(e)
		}
	}
	delete(g.vertices, id)
	delete(g.adjacencyList, id)

	return nil
}

// Vertices lists vertex IDs in ascending order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree counts edge ends at id: one per ordinary edge, two per loop.
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.knownLocked(id) {
		return 0, ErrVertexNotFound
	}

	deg := 0
	for to, bucket := range g.adjacencyList[id] {
		ends := 1
		if to == id {
			ends = 2
		}
		deg += ends * len(bucket)
	}

	return deg, nil
}

// FreshVertexID returns the smallest non-negative decimal not yet used as a
// vertex ID. The graph is not modified.
func (g *Graph) FreshVertexID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.freshVertexLocked()
}

func (g *Graph) freshVertexLocked() string {
	i := 0
	for g.knownLocked(strconv.Itoa(i)) {
		i++
	}

	return strconv.Itoa(i)
}

func (g *Graph) knownLocked(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

// addVertexLocked requires the write lock.
func (g *Graph) addVertexLocked(id string) {
	if g.knownLocked(id) {
		return
	}
	g.vertices[id] = struct{}{}
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}
