// Package graphmat is a graphic matroid engine over labelled multigraphs.
//
// The ground set of a graphic matroid M(G) is the edge set of a graph G; a
// set of edges is independent when it contains no cycle. graphmat keeps G as
// a connected multigraph with loops and parallel edges and answers matroid
// questions with graph algorithms:
//
//	rank        |V(X)| − components(X), via union-find
//	circuits    cycles; cocircuits are minimal edge cuts
//	minors      deletion and contraction of edges
//	extensions  new edges; coextensions split vertices
//	isomorphism graph isomorphism for 3-connected graphs (Whitney)
//
// Packages:
//
//	core/         labelled multigraph with loops, merges, splits and contractions
//	unionfind/    disjoint sets keyed by vertex ID
//	connectivity/ components, forests, cycles, cut edges, 3-connectivity
//	isomorph/     simple-graph isomorphism and minor search
//	builder/      graph families (complete, cycle, wheel, theta, bouquet, ...)
//	matroid/      the graphic matroid model and all its operations
//	metrics/      Prometheus collectors for operation accounting
//	config/       YAML workload files
//	cmd/graphmat  command-line front end
//
// Quick example, the triangle:
//
//	    a
//	  0/ \2
//	  b───c
//	    1
//
// has rank 2 and a single circuit {0, 1, 2}; contracting 0 leaves the
// parallel pair {1, 2}.
//
//	go get github.com/katalvlaran/graphmat
package graphmat
