// SPDX-License-Identifier: MIT

package isomorph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphmat/core"
)

// Minor decides whether simple graph h is a minor of simple graph g.
// On success it returns branch sets: for each vertex x of h, the sorted
// vertices of g that contract onto x. Branch sets are disjoint and connected
// in g, and every edge of h is realised by at least one g edge between the
// corresponding branch sets.
//
// Search:
//   - While g has more vertices than h, branch on deleting a vertex or
//     contracting an edge (parallel copies collapse, loops vanish).
//   - With equal orders, look for an edge-preserving bijection h → g.
//   - Explored graphs are memoised by fingerprint; the budget is Options.MaxStates.
//
// Errors: ErrGraphNil, ErrNotSimple, ErrStateLimit, or the context error.
func Minor(g, h *core.Graph, opts ...Option) (map[string][]string, bool, error) {
	o := buildOptions(opts)
	sg, err := fromCore(g)
	if err != nil {
		return nil, false, fmt.Errorf("isomorph: Minor: %w", err)
	}
	sh, err := fromCore(h)
	if err != nil {
		return nil, false, fmt.Errorf("isomorph: Minor: %w", err)
	}

	branches := make(map[string][]string, sg.order())
	for _, v := range sg.vertices() {
		branches[v] = []string{v}
	}
	s := &minorSearch{
		pattern: sh,
		opts:    o,
		seen:    make(map[string]bool),
	}
	found, err := s.search(sg, branches)
	if err != nil {
		return nil, false, fmt.Errorf("isomorph: Minor: %w", err)
	}
	if !found {
		return nil, false, nil
	}

	return s.result, true, nil
}

// minorSearch carries the shared state of one Minor call.
type minorSearch struct {
	pattern *simpleGraph
	opts    Options
	seen    map[string]bool
	result  map[string][]string
}

func (s *minorSearch) search(cur *simpleGraph, branches map[string][]string) (bool, error) {
	if cur.order() < s.pattern.order() || cur.size() < s.pattern.size() {
		return false, nil
	}
	key := cur.key()
	if s.seen[key] {
		return false, nil
	}
	if len(s.seen) >= s.opts.MaxStates {
		return false, ErrStateLimit
	}
	if err := s.opts.Ctx.Err(); err != nil {
		return false, err
	}
	s.seen[key] = true

	if cur.order() == s.pattern.order() {
		mapping, ok := newMatcher(s.pattern, cur, false).run()
		if !ok {
			return false, nil
		}
		s.result = make(map[string][]string, len(mapping))
		for x, v := range mapping {
			set := append([]string(nil), branches[v]...)
			sort.Strings(set)
			s.result[x] = set
		}
		return true, nil
	}

	vs := cur.vertices()
	// Deleting a vertex first keeps branch sets small.
	for _, v := range vs {
		next := cur.clone()
		next.deleteVertex(v)
		nb := copyBranches(branches)
		delete(nb, v)
		if ok, err := s.search(next, nb); ok || err != nil {
			return ok, err
		}
	}
	for _, u := range vs {
		nbrs := make([]string, 0, len(cur.adj[u]))
		for w := range cur.adj[u] {
			if w > u {
				nbrs = append(nbrs, w)
			}
		}
		sort.Strings(nbrs)
		for _, w := range nbrs {
			next := cur.clone()
			next.contract(u, w)
			nb := copyBranches(branches)
			nb[u] = append(append([]string(nil), nb[u]...), nb[w]...)
			delete(nb, w)
			if ok, err := s.search(next, nb); ok || err != nil {
				return ok, err
			}
		}
	}

	return false, nil
}

func copyBranches(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}
