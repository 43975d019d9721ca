// SPDX-License-Identifier: MIT
// Package: graphmat/matroid
//
// independence.go: forest/cycle views of a subset: independence, circuits,
// closure and maximal independent subsets.
//
// Every method validates X ⊆ E first (ErrNotASubset). Results are returned
// as ascending label slices; duplicate input labels are folded.

package matroid

import (
	"fmt"

	"github.com/katalvlaran/graphmat/connectivity"
	"github.com/katalvlaran/graphmat/core"
	"github.com/katalvlaran/graphmat/unionfind"
)

// IsIndependent reports whether X's edges form a forest (no cycle, no loop).
func (m *Matroid) IsIndependent(X []string) (bool, error) {
	sub, err := m.subgraph("IsIndependent", X)
	if err != nil {
		return false, err
	}

	return connectivity.IsForest(sub), nil
}

// IsCircuit reports whether X's edges form exactly one cycle.
// A loop and a parallel pair are circuits; ∅ is not.
func (m *Matroid) IsCircuit(X []string) (bool, error) {
	sub, err := m.subgraph("IsCircuit", X)
	if err != nil {
		return false, err
	}

	return connectivity.IsCycle(sub), nil
}

// Circuit returns a circuit contained in X, or ErrNoCircuit if X is independent.
//
// Edges are removed one at a time in label order; an edge whose removal leaves
// a forest is restored and kept. The kept edges always form one cycle: each
// of them lies on every cycle of the final subgraph. With several cycles in X
// which one is returned depends on label order.
func (m *Matroid) Circuit(X []string) ([]string, error) {
	sub, err := m.subgraph("Circuit", X)
	if err != nil {
		return nil, err
	}
	if connectivity.IsForest(sub) {
		return nil, fmt.Errorf("matroid: Circuit: %w", ErrNoCircuit)
	}

	var out []string
	for _, e := range sub.Edges() {
		if err = sub.RemoveEdge(e.ID); err != nil {
			return nil, fmt.Errorf("matroid: Circuit: %w", err)
		}
		if connectivity.IsForest(sub) {
			if err = sub.AddEdgeWithID(e.ID, e.From, e.To); err != nil {
				return nil, fmt.Errorf("matroid: Circuit: %w", err)
			}
			out = append(out, e.ID)
		}
	}

	return out, nil
}

// Closure returns cl(X): X, every loop, and every other edge whose endpoints
// are already joined by X's edges.
func (m *Matroid) Closure(X []string) ([]string, error) {
	if err := m.check(X); err != nil {
		return nil, fmt.Errorf("matroid: Closure: %w", err)
	}
	d := m.forestOf(X)

	out := toSet(X)
	for _, y := range m.complement(X) {
		e := m.edges[y]
		if e.IsLoop() || (d.Has(e.From) && d.Has(e.To) && d.Same(e.From, e.To)) {
			out[y] = struct{}{}
		}
	}

	return setToSorted(out), nil
}

// IsClosed reports whether cl(X) = X: X holds every loop and no edge outside
// X joins two vertices already connected by X.
func (m *Matroid) IsClosed(X []string) (bool, error) {
	if err := m.check(X); err != nil {
		return false, fmt.Errorf("matroid: IsClosed: %w", err)
	}
	in := toSet(X)
	for _, l := range m.Loops() {
		if _, ok := in[l]; !ok {
			return false, nil
		}
	}

	d := m.forestOf(X)
	for _, y := range m.complement(X) {
		e := m.edges[y]
		if d.Has(e.From) && d.Has(e.To) && d.Same(e.From, e.To) {
			return false, nil
		}
	}

	return true, nil
}

// MaxIndependent returns a basis of X: X itself when independent, otherwise a
// spanning forest of X's subgraph built by dropping every edge that is not
// currently a bridge, in label order.
func (m *Matroid) MaxIndependent(X []string) ([]string, error) {
	sub, err := m.subgraph("MaxIndependent", X)
	if err != nil {
		return nil, err
	}
	if connectivity.IsForest(sub) {
		return sub.EdgeIDs(), nil
	}

	var out []string
	for _, id := range sub.EdgeIDs() {
		cut, err := connectivity.IsCutEdge(sub, id)
		if err != nil {
			return nil, fmt.Errorf("matroid: MaxIndependent: %w", err)
		}
		if cut {
			out = append(out, id)
			continue
		}
		if err = sub.RemoveEdge(id); err != nil {
			return nil, fmt.Errorf("matroid: MaxIndependent: %w", err)
		}
	}

	return out, nil
}

// subgraph validates X and returns a private copy of X's edge subgraph.
func (m *Matroid) subgraph(op string, X []string) (*core.Graph, error) {
	sub, err := m.SubgraphFromSet(X)
	if err != nil {
		return nil, fmt.Errorf("matroid: %s: %w", op, err)
	}

	return sub, nil
}

// forestOf unions the endpoints of X's edges. X must be validated.
func (m *Matroid) forestOf(X []string) *unionfind.DisjointSet {
	d := unionfind.New(nil)
	for _, x := range X {
		e := m.edges[x]
		d.Union(e.From, e.To)
	}

	return d
}
