// SPDX-License-Identifier: MIT

package matroid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmat/builder"
	"github.com/katalvlaran/graphmat/core"
	"github.com/katalvlaran/graphmat/matroid"
)

// labelledEdge is one (label, from, to) triple of a hand-written fixture.
type labelledEdge struct{ id, from, to string }

// newModel builds a model from labelled edges on a multigraph.
func newModel(t *testing.T, edges ...labelledEdge) *matroid.Matroid {
	t.Helper()

	g := core.NewMultigraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdgeWithID(e.id, e.from, e.to), "AddEdgeWithID(%s)", e.id)
	}
	m, err := matroid.New(g)
	require.NoError(t, err)

	return m
}

// triangle is elements {0:(a,b), 1:(b,c), 2:(a,c)}.
func triangle(t *testing.T) *matroid.Matroid {
	t.Helper()
	return newModel(t,
		labelledEdge{"0", "a", "b"},
		labelledEdge{"1", "b", "c"},
		labelledEdge{"2", "a", "c"},
	)
}

// diamond is two triangles {0,1,2} and {2,3,4} sharing element 2 = (1,2).
func diamond(t *testing.T) *matroid.Matroid {
	t.Helper()
	return newModel(t,
		labelledEdge{"0", "0", "1"},
		labelledEdge{"1", "0", "2"},
		labelledEdge{"2", "1", "2"},
		labelledEdge{"3", "1", "3"},
		labelledEdge{"4", "2", "3"},
	)
}

// fromBuilder builds a model from builder constructors with default labels "0","1",...
func fromBuilder(t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor) *matroid.Matroid {
	t.Helper()

	g, err := builder.BuildMultigraph(bopts, cons...)
	require.NoError(t, err)
	m, err := matroid.New(g)
	require.NoError(t, err)

	return m
}

// subsets returns every subset of xs (2^len(xs) of them).
func subsets(xs []string) [][]string {
	out := make([][]string, 0, 1<<len(xs))
	for mask := 0; mask < 1<<len(xs); mask++ {
		var s []string
		for i, x := range xs {
			if mask&(1<<i) != 0 {
				s = append(s, x)
			}
		}
		out = append(out, s)
	}

	return out
}

// requireSameRanks asserts r_a(Y) = r_b(Y) for every Y ⊆ E(a). Both models share the ground set.
func requireSameRanks(t *testing.T, a, b *matroid.Matroid) {
	t.Helper()

	require.Equal(t, a.Groundset(), b.Groundset())
	for _, y := range subsets(a.Groundset()) {
		ra, err := a.Rank(y)
		require.NoError(t, err)
		rb, err := b.Rank(y)
		require.NoError(t, err)
		require.Equal(t, ra, rb, "rank of %v", y)
	}
}

// fromBuilderComplete is K_n with labels "0".."C(n,2)-1" in (i<j) order.
func fromBuilderComplete(t *testing.T, n int) *matroid.Matroid {
	t.Helper()
	return fromBuilder(t, nil, builder.Complete(n))
}
