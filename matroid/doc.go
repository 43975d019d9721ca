// Package matroid implements graphic matroids M(G) over core multigraphs.
//
// The ground set is the set of edge labels of a connected multigraph with
// loops and parallel edges. A set of elements is independent iff its edges
// form a forest; circuits are cycles; rank is |V(X)| − components(X).
//
// A *Matroid is immutable. Structural edits (Minor, Extension, Coextension,
// Twist, OneSum) clone the graph, edit the clone and return a new model:
//
//	m, _ := matroid.New(g)
//	n, _ := m.Extension("a", "b", "x") // m is unchanged
//
// Method families:
//
//	Rank engine        Rank, Corank, FullRank, Connectivity
//	Independence       IsIndependent, IsCircuit, Circuit, Closure, IsClosed, MaxIndependent
//	Duals              IsCoindependent, Cocircuit, IsCocircuit, Coclosure, MaxCoindependent
//	Structural edits   Minor, Delete, Contract, Extension(s), Coextension(s), Twist, OneSum
//	Isomorphism        IsThreeConnected, IsIsomorphic, Isomorphism, HasMinor
//
// Every subset argument is validated against the ground set; failures wrap
// ErrNotASubset (and ErrInvalidInput). Minor trusts its preconditions
// (independent contractions, coindependent deletions, disjoint sets).
//
// Isomorphism and minor queries take the graph shortcut when the other model
// is 3-connected (Whitney's theorem); otherwise a Fallback searches at the
// matroid level. ExhaustiveSearch, the default, is bounded by MaxElements.
package matroid
