// SPDX-License-Identifier: MIT
// Package: graphmat/matroid
//
// structural.go: edits that build a new model from a private clone of the
// graph: minors, single-element extensions and coextensions, Whitney twists
// and one-sums.
//
// Determinism:
//   • Fresh vertices come from core.Graph.FreshVertexID, fresh labels from FreshLabel.
//   • The receiver is never modified; every success returns a new *Matroid.

package matroid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphmat/core"
)

// Minor returns M / contractions ∖ deletions. Deletions are applied first so
// contraction merges cannot move a deletion target.
//
// The caller guarantees contractions is independent, deletions is
// coindependent and the two are disjoint; only subset membership is checked.
// Elements listed in both sets are deleted.
func (m *Matroid) Minor(contractions, deletions []string) (*Matroid, error) {
	if err := m.check(contractions); err != nil {
		return nil, fmt.Errorf("matroid: Minor: %w", err)
	}
	if err := m.check(deletions); err != nil {
		return nil, fmt.Errorf("matroid: Minor: %w", err)
	}

	g := m.g.Clone()
	if err := g.RemoveEdges(sortedUnique(deletions)); err != nil {
		return nil, fmt.Errorf("matroid: Minor: %w", err)
	}
	dropped := toSet(deletions)
	keep := make([]string, 0, len(contractions))
	for _, x := range sortedUnique(contractions) {
		if _, ok := dropped[x]; !ok {
			keep = append(keep, x)
		}
	}
	if err := g.ContractEdges(keep); err != nil {
		return nil, fmt.Errorf("matroid: Minor: %w", err)
	}

	return m.derive("Minor", g)
}

// Delete returns M ∖ X.
func (m *Matroid) Delete(X []string) (*Matroid, error) { return m.Minor(nil, X) }

// Contract returns M / X.
func (m *Matroid) Contract(X []string) (*Matroid, error) { return m.Minor(X, nil) }

// Extension adds one edge labelled label between vertices u and v. v == ""
// or v == u adds a loop. label == "" picks FreshLabel.
//
// Both endpoints must be vertices (ErrVerticesNotInGraph), so the new
// element is never a coloop. The empty model accepts a loop on a new vertex u.
func (m *Matroid) Extension(u, v, label string) (*Matroid, error) {
	label, err := m.newElement(label)
	if err != nil {
		return nil, fmt.Errorf("matroid: Extension: %w", err)
	}
	if v == "" {
		v = u
	}
	g := m.g.Clone()
	if !g.HasVertex(u) || !g.HasVertex(v) {
		if g.VertexCount() > 0 || u != v || u == "" {
			return nil, fmt.Errorf("matroid: Extension: %s-%s: %w", u, v, ErrVerticesNotInGraph)
		}
	}
	if err = g.AddEdgeWithID(label, u, v); err != nil {
		return nil, fmt.Errorf("matroid: Extension: %w", err)
	}

	return m.derive("Extension", g)
}

// Coextension splits vertex u: a new vertex v' takes over the edges of X
// (loops at u become loops at v') and a new edge u–v' labelled label joins
// the halves. label == "" picks FreshLabel.
//
// If u is not a vertex, the result instead gains a pendant edge from an
// existing vertex to u, which is a coloop; X is ignored.
func (m *Matroid) Coextension(u string, X []string, label string) (*Matroid, error) {
	label, err := m.newElement(label)
	if err != nil {
		return nil, fmt.Errorf("matroid: Coextension: %w", err)
	}
	if err = m.check(X); err != nil {
		return nil, fmt.Errorf("matroid: Coextension: %w", err)
	}
	if u == "" {
		return nil, fmt.Errorf("matroid: Coextension: empty vertex: %w", ErrVerticesNotInGraph)
	}

	g := m.g.Clone()
	if !g.HasVertex(u) {
		base := m.baseVertex(g, u)
		if err = g.AddEdgeWithID(label, base, u); err != nil {
			return nil, fmt.Errorf("matroid: Coextension: %w", err)
		}
		return m.derive("Coextension", g)
	}

	v := g.FreshVertexID()
	if err = g.SplitVertex(u, v, X); err != nil {
		if errors.Is(err, core.ErrEdgeNotIncident) {
			return nil, fmt.Errorf("matroid: Coextension: %s: %w", u, ErrEdgesNotIncident)
		}
		return nil, fmt.Errorf("matroid: Coextension: %w", err)
	}
	if err = g.AddEdgeWithID(label, u, v); err != nil {
		return nil, fmt.Errorf("matroid: Coextension: %w", err)
	}

	return m.derive("Coextension", g)
}

// baseVertex returns the first vertex of g. On an empty g it returns a fresh
// ID distinct from avoid, adding avoid first when it is non-empty.
func (m *Matroid) baseVertex(g *core.Graph, avoid string) string {
	if vs := g.Vertices(); len(vs) > 0 {
		return vs[0]
	}
	if avoid != "" {
		_ = g.AddVertex(avoid)
	}

	return g.FreshVertexID()
}

// Twist performs a Whitney 2-switch on X. X must display an exact
// 2-separation (λ(X) = 1, else ErrExpectedTwoSeparation) whose sides meet in
// exactly two vertices a, b (else ErrTooManySharedVertices); every X edge at
// a or b has that endpoint swapped. The rank function is unchanged.
func (m *Matroid) Twist(X []string) (*Matroid, error) {
	if err := m.check(X); err != nil {
		return nil, fmt.Errorf("matroid: Twist: %w", err)
	}
	X = sortedUnique(X)
	if lambda := m.connectivity(X); lambda != 1 {
		return nil, fmt.Errorf("matroid: Twist: connectivity %d: %w", lambda, ErrExpectedTwoSeparation)
	}
	shared := m.shared(X)
	if len(shared) != 2 {
		return nil, fmt.Errorf("matroid: Twist: %d shared vertices: %w", len(shared), ErrTooManySharedVertices)
	}
	a, b := shared[0], shared[1]
	swap := func(x string) string {
		switch x {
		case a:
			return b
		case b:
			return a
		}
		return x
	}

	g := m.g.Clone()
	for _, x := range X {
		e := m.edges[x]
		if !e.Touches(a) && !e.Touches(b) {
			continue
		}
		if err := g.RemoveEdge(x); err != nil {
			return nil, fmt.Errorf("matroid: Twist: %w", err)
		}
		if err := g.AddEdgeWithID(x, swap(e.From), swap(e.To)); err != nil {
			return nil, fmt.Errorf("matroid: Twist: %w", err)
		}
	}

	return m.derive("Twist", g)
}

// OneSum re-glues the block X at a different vertex. X must display a
// 1-separation (λ(X) = 0) whose sides share one vertex a; u must be spanned by
// X and v by E∖X. X's edges at a move to a fresh vertex, which is then
// identified with v when u == a; otherwise u is identified with v.
func (m *Matroid) OneSum(X []string, u, v string) (*Matroid, error) {
	if err := m.check(X); err != nil {
		return nil, fmt.Errorf("matroid: OneSum: %w", err)
	}
	X = sortedUnique(X)
	if lambda := m.connectivity(X); lambda != 0 {
		return nil, fmt.Errorf("matroid: OneSum: connectivity %d: %w", lambda, ErrExpectedOneSeparation)
	}
	if !m.g.HasVertex(u) || !m.g.HasVertex(v) {
		return nil, fmt.Errorf("matroid: OneSum: %s, %s: %w", u, v, ErrVerticesMustExist)
	}
	if _, ok := m.span(X)[u]; !ok {
		return nil, fmt.Errorf("matroid: OneSum: %s: %w", u, ErrFirstVertexNotSpanned)
	}
	if _, ok := m.span(m.complement(X))[v]; !ok {
		return nil, fmt.Errorf("matroid: OneSum: %s: %w", v, ErrSecondVertexNotSpanned)
	}
	shared := m.shared(X)
	if len(shared) != 1 {
		return nil, fmt.Errorf("matroid: OneSum: %d shared vertices: %w", len(shared), ErrTooManySharedVertices)
	}
	a := shared[0]

	var moved []string
	for _, x := range X {
		if e := m.edges[x]; e.Touches(a) {
			moved = append(moved, x)
		}
	}
	g := m.g.Clone()
	b := g.FreshVertexID()
	if err := g.SplitVertex(a, b, moved); err != nil {
		return nil, fmt.Errorf("matroid: OneSum: %w", err)
	}
	other := u
	if u == a {
		other = b
	}
	if err := g.MergeVertices(v, other); err != nil {
		return nil, fmt.Errorf("matroid: OneSum: %w", err)
	}

	return m.derive("OneSum", g)
}

// shared returns the sorted vertices spanned by both X and E∖X.
func (m *Matroid) shared(X []string) []string {
	left := m.span(X)
	both := make(map[string]struct{})
	for v := range m.span(m.complement(X)) {
		if _, ok := left[v]; ok {
			both[v] = struct{}{}
		}
	}

	return setToSorted(both)
}
