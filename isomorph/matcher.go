// SPDX-License-Identifier: MIT

package isomorph

import "sort"

// matcher searches for an injective vertex map pattern → target that carries
// every pattern edge onto a target edge. With exact set, degrees must agree
// and non-edges must map to non-edges, which makes the map an isomorphism.
type matcher struct {
	pattern, target *simpleGraph
	exact           bool

	order   []string          // pattern vertices in search order
	mapping map[string]string // pattern → target
	used    map[string]bool   // target vertices already taken
	tverts  []string
}

func newMatcher(pattern, target *simpleGraph, exact bool) *matcher {
	return &matcher{
		pattern: pattern,
		target:  target,
		exact:   exact,
		order:   searchOrder(pattern),
		mapping: make(map[string]string, pattern.order()),
		used:    make(map[string]bool, target.order()),
		tverts:  target.vertices(),
	}
}

// searchOrder lists vertices so that each one (after the first of its
// component) is adjacent to an earlier one, highest degree first.
// Early adjacency constraints prune the search quickly.
func searchOrder(s *simpleGraph) []string {
	vs := s.vertices()
	sort.SliceStable(vs, func(i, j int) bool { return len(s.adj[vs[i]]) > len(s.adj[vs[j]]) })

	placed := make(map[string]bool, len(vs))
	out := make([]string, 0, len(vs))
	for len(out) < len(vs) {
		best, bestScore := "", -1
		for _, v := range vs {
			if placed[v] {
				continue
			}
			score := 0
			for u := range s.adj[v] {
				if placed[u] {
					score++
				}
			}
			if score > bestScore {
				best, bestScore = v, score
			}
		}
		placed[best] = true
		out = append(out, best)
	}

	return out
}

func (m *matcher) run() (map[string]string, bool) {
	if !m.extend(0) {
		return nil, false
	}
	out := make(map[string]string, len(m.mapping))
	for k, v := range m.mapping {
		out[k] = v
	}

	return out, true
}

func (m *matcher) extend(i int) bool {
	if i == len(m.order) {
		return true
	}
	p := m.order[i]
	for _, t := range m.tverts {
		if m.used[t] || !m.feasible(p, t) {
			continue
		}
		m.mapping[p] = t
		m.used[t] = true
		if m.extend(i + 1) {
			return true
		}
		delete(m.mapping, p)
		m.used[t] = false
	}

	return false
}

func (m *matcher) feasible(p, t string) bool {
	pd, td := len(m.pattern.adj[p]), len(m.target.adj[t])
	if td < pd || (m.exact && td != pd) {
		return false
	}
	for q, tq := range m.mapping {
		pe := m.pattern.adj[p][q]
		te := m.target.adj[t][tq]
		if pe && !te {
			return false
		}
		if m.exact && te && !pe {
			return false
		}
	}

	return true
}
