// Package connectivity answers connectivity questions about an undirected
// core.Graph: component partition and count, forest and single-cycle tests,
// cut edges, spanning forests and 3-vertex-connectivity.
//
// Every routine treats the graph as undirected multigraph data: loops are
// cycles of length one and parallel edges are cycles of length two.
//
// Determinism:
//   - Components() lists components by their smallest vertex ID; each
//     component's vertices are sorted.
//   - SpanningForest() scans edges in Edge.ID order (Kruskal with unit weights).
//   - Reach() explores each vertex's edges in Edge.ID order.
//
// Complexity:
//   - Reach/Components/ComponentCount/IsForest/IsCycle/IsCutEdge: O(V + E).
//   - SpanningForest: O(E log E + α(V)·E).
//   - IsTriconnected: O(V²·(V + E)).
package connectivity
