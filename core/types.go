// SPDX-License-Identifier: MIT
//
// File: types.go
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph / NewMultigraph constructors.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrEmptyEdgeID         - edge ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrDuplicateEdgeID     - an edge with the same ID already exists.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrEdgeNotIncident     - edge does not touch the vertex being split.
//	ErrVertexExists        - split target vertex is already present.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrEmptyEdgeID indicates that the provided edge ID is empty.
	ErrEmptyEdgeID = errors.New("core: edge ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdgeID indicates an explicit edge ID collides with an existing edge.
	ErrDuplicateEdgeID = errors.New("core: duplicate edge ID")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrEdgeNotIncident indicates an edge handed to SplitVertex does not touch the split vertex.
	ErrEdgeNotIncident = errors.New("core: edge not incident to vertex")

	// ErrVertexExists indicates SplitVertex was asked to create a vertex that already exists.
	ErrVertexExists = errors.New("core: vertex already exists")
)

// Edge represents an undirected connection between two vertices.
//
// ID uniquely identifies the edge within its Graph and doubles as the edge
// label: graphic matroids use it as the ground-set element.
// From/To are stored in insertion order; orientation carries no meaning.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint.
	From string

	// To is the second endpoint.
	To string
}

// IsNil reports whether the receiver should be treated as nil when stored inside interfaces.
func (e *Edge) IsNil() bool { return e == nil }

// IsLoop reports whether both endpoints coincide.
func (e *Edge) IsLoop() bool { return e.From == e.To }

// Other returns the endpoint opposite to v. For a loop it returns v.
// The result is undefined when v is not an endpoint of e.
func (e *Edge) Other(v string) string {
	if e.From == v {
		return e.To
	}

	return e.From
}

// Touches reports whether v is an endpoint of e.
func (e *Edge) Touches(v string) bool { return e.From == v || e.To == v }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory undirected graph data structure.
//
// It supports parallel edges (multi-edges) and self-loops behind policy flags.
// mu protects every catalog; nextEdgeID feeds auto-generated edge IDs.
type Graph struct {
	mu sync.RWMutex // guards vertices, edges and adjacency

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64              // auto edge ID generator
	vertices   map[string]struct{} // vertex ID set
	edges      map[string]*Edge    // edge ID → Edge

	// adjacencyList[u][v][edgeID] = struct{}{}; undirected edges are mirrored,
	// loops are stored once under adjacencyList[v][v].
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default the graph allows neither loops nor multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]struct{}),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewMultigraph creates an empty Graph that permits both loops and parallel
// edges, the configuration every graphic matroid is built on.
// Complexity: O(1)
func NewMultigraph() *Graph {
	return NewGraph(WithLoops(), WithMultiEdges())
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted by policy.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}
