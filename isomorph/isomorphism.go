// SPDX-License-Identifier: MIT

package isomorph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphmat/core"
)

// Isomorphism decides whether simple graphs g and h are isomorphic and, if so,
// returns a vertex bijection g → h preserving adjacency in both directions.
//
// Steps:
//  1. Snapshot both graphs; loops or parallel edges yield ErrNotSimple.
//  2. Compare orders, sizes and degree sequences.
//  3. Backtrack over h's vertices for each g vertex (in connectivity-first
//     order), keeping only degree-equal, adjacency-consistent candidates.
//
// Complexity: exponential in the worst case; invariant pruning keeps typical
// matroid-sized inputs fast.
func Isomorphism(g, h *core.Graph, opts ...Option) (map[string]string, bool, error) {
	o := buildOptions(opts)
	sg, err := fromCore(g)
	if err != nil {
		return nil, false, fmt.Errorf("isomorph: Isomorphism: %w", err)
	}
	sh, err := fromCore(h)
	if err != nil {
		return nil, false, fmt.Errorf("isomorph: Isomorphism: %w", err)
	}
	if err = o.Ctx.Err(); err != nil {
		return nil, false, err
	}
	if sg.order() != sh.order() || sg.size() != sh.size() || !sameDegrees(sg, sh) {
		return nil, false, nil
	}
	mapping, ok := newMatcher(sg, sh, true).run()

	return mapping, ok, nil
}

func sameDegrees(a, b *simpleGraph) bool {
	da, db := degreeSeq(a), degreeSeq(b)
	for i := range da {
		if da[i] != db[i] {
			return false
		}
	}

	return true
}

func degreeSeq(s *simpleGraph) []int {
	out := make([]int, 0, len(s.adj))
	for _, nbrs := range s.adj {
		out = append(out, len(nbrs))
	}
	sort.Ints(out)

	return out
}
