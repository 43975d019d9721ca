// SPDX-License-Identifier: MIT

package isomorph

import (
	"sort"
	"strings"

	"github.com/katalvlaran/graphmat/core"
)

// simpleGraph is a compact adjacency-set copy of a simple core.Graph used by
// the searches; contraction works on it without touching core.Graph locks.
type simpleGraph struct {
	adj map[string]map[string]bool
}

// fromCore snapshots g, rejecting loops and parallel edges.
func fromCore(g *core.Graph) (*simpleGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	s := &simpleGraph{adj: make(map[string]map[string]bool, g.VertexCount())}
	for _, v := range g.Vertices() {
		s.adj[v] = make(map[string]bool)
	}
	for _, e := range g.Edges() {
		if e.IsLoop() || s.adj[e.From][e.To] {
			return nil, ErrNotSimple
		}
		s.adj[e.From][e.To] = true
		s.adj[e.To][e.From] = true
	}

	return s, nil
}

func (s *simpleGraph) order() int { return len(s.adj) }

func (s *simpleGraph) size() int {
	m := 0
	for _, nbrs := range s.adj {
		m += len(nbrs)
	}

	return m / 2
}

func (s *simpleGraph) vertices() []string {
	vs := make([]string, 0, len(s.adj))
	for v := range s.adj {
		vs = append(vs, v)
	}
	sort.Strings(vs)

	return vs
}

func (s *simpleGraph) clone() *simpleGraph {
	c := &simpleGraph{adj: make(map[string]map[string]bool, len(s.adj))}
	for v, nbrs := range s.adj {
		m := make(map[string]bool, len(nbrs))
		for u := range nbrs {
			m[u] = true
		}
		c.adj[v] = m
	}

	return c
}

// deleteVertex drops v and its incident edges.
func (s *simpleGraph) deleteVertex(v string) {
	for u := range s.adj[v] {
		delete(s.adj[u], v)
	}
	delete(s.adj, v)
}

// contract merges v into u, dropping the loop and any parallel copies.
func (s *simpleGraph) contract(u, v string) {
	for w := range s.adj[v] {
		if w == u {
			continue
		}
		s.adj[u][w] = true
		s.adj[w][u] = true
	}
	s.deleteVertex(v)
}

// key is a label-aware fingerprint: identical keys mean identical graphs.
func (s *simpleGraph) key() string {
	var b strings.Builder
	for _, v := range s.vertices() {
		b.WriteString(v)
		b.WriteByte(':')
		nbrs := make([]string, 0, len(s.adj[v]))
		for u := range s.adj[v] {
			nbrs = append(nbrs, u)
		}
		sort.Strings(nbrs)
		b.WriteString(strings.Join(nbrs, ","))
		b.WriteByte(';')
	}

	return b.String()
}
