// Package core provides a thread-safe in-memory undirected Graph whose edges
// carry unique string labels, with a minimal, composable API surface.
//
// The Graph G = (V,E) is built for matroid work, so it supports:
//
//   - Parallel edges / multigraphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Caller-chosen edge labels (AddEdgeWithID) or generated ones ("e1", "e2", …)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Label-preserving rewrites: MergeVertices, ContractEdge(s), SplitVertex
//
// NewMultigraph() enables both loops and parallel edges; graphic matroids always
// sit on such a graph because contraction creates both.
//
// Determinism:
//
//	Vertices(), Edges(), EdgeIDs(), Neighbors(), NeighborIDs() all return sorted results.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error            // O(1)
//	HasVertex(id string) bool             // O(1)
//	RemoveVertex(id string) error         // O(E)
//	FreshVertexID() string                // smallest unused "0","1",…
//
//	// Edge lifecycle
//	AddEdge(from, to string) (string, error)   // O(1), generated ID
//	AddEdgeWithID(id, from, to string) error   // O(1)
//	RemoveEdge(id string) error                // O(1)
//	RemoveEdges(ids []string) error            // O(k)
//
//	// Query
//	GetEdge(id string) (Edge, error)
//	Edges() []Edge / EdgeIDs() []string / EdgesBetween(u, v) / Loops()
//	Neighbors(id string) ([]Edge, error)       // loops appear once
//	NeighborIDs(id string) ([]string, error)   // unique, sorted
//	Degree(id string) (int, error)             // a loop counts twice
//
//	// Rewrites
//	MergeVertices(keep string, others ...string) error
//	ContractEdge(id string) error
//	SplitVertex(u, v string, edgeIDs []string) error
//
//	// Cloning & views
//	Clone() / CloneEmpty() / Clear()
//	EdgeSubgraph(g, ids) / InducedSubgraph(g, keep) / SimpleView(g) / Equal(a, b)
//
// Errors are sentinels compared with errors.Is; see types.go.
package core
