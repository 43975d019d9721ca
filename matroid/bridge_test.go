// SPDX-License-Identifier: MIT

package matroid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmat/builder"
	"github.com/katalvlaran/graphmat/core"
	"github.com/katalvlaran/graphmat/matroid"
)

// requireRankPreserving asserts r_m(Y) = r_n(φ(Y)) for every Y ⊆ E(m).
func requireRankPreserving(t *testing.T, m, n *matroid.Matroid, phi map[string]string) {
	t.Helper()

	require.Len(t, phi, m.Size())
	img := make(map[string]bool, len(phi))
	for x, y := range phi {
		require.True(t, m.Has(x), "domain %s", x)
		require.True(t, n.Has(y), "image %s", y)
		img[y] = true
	}
	require.Len(t, img, n.Size(), "bijection")

	for _, y := range subsets(m.Groundset()) {
		mapped := make([]string, len(y))
		for i, x := range y {
			mapped[i] = phi[x]
		}
		rm, err := m.Rank(y)
		require.NoError(t, err)
		rn, err := n.Rank(mapped)
		require.NoError(t, err)
		require.Equal(t, rm, rn, "rank of %v", y)
	}
}

// lettered is K4 on vertices w..z with letter labels.
func lettered(t *testing.T) *matroid.Matroid {
	t.Helper()
	return newModel(t,
		labelledEdge{"a", "w", "x"},
		labelledEdge{"b", "x", "y"},
		labelledEdge{"c", "y", "z"},
		labelledEdge{"d", "z", "w"},
		labelledEdge{"e", "w", "y"},
		labelledEdge{"f", "x", "z"},
	)
}

func TestIsThreeConnected(t *testing.T) {
	assert.True(t, fromBuilderComplete(t, 4).IsThreeConnected())
	assert.True(t, fromBuilderComplete(t, 5).IsThreeConnected())
	assert.True(t, fromBuilder(t, nil, builder.Wheel(5)).IsThreeConnected())

	assert.False(t, triangle(t).IsThreeConnected(), "too few vertices")
	assert.False(t, diamond(t).IsThreeConnected(), "{1,2} separates")

	k4 := fromBuilderComplete(t, 4)
	par, err := k4.Extension("0", "1", "p")
	require.NoError(t, err)
	assert.False(t, par.IsThreeConnected(), "parallel pair")
	loop, err := k4.Extension("0", "", "l")
	require.NoError(t, err)
	assert.False(t, loop.IsThreeConnected(), "loop")
}

func TestIsThreeConnected_Platonic(t *testing.T) {
	for _, name := range []string{
		builder.FamilyTetrahedron, builder.FamilyCube, builder.FamilyOctahedron,
		builder.FamilyDodecahedron, builder.FamilyIcosahedron,
	} {
		ctor, err := builder.Family(name, 0)
		require.NoError(t, err)
		m := fromBuilder(t, nil, ctor)
		assert.True(t, m.IsThreeConnected(), name)
		assert.Equal(t, len(m.Vertices())-1, m.FullRank(), name)
	}
}

func TestIsomorphism_ThreeConnected(t *testing.T) {
	k4 := fromBuilderComplete(t, 4)
	other := lettered(t)

	phi, ok, err := k4.Isomorphism(other)
	require.NoError(t, err)
	require.True(t, ok)
	requireRankPreserving(t, k4, other, phi)

	ok, err = k4.IsIsomorphic(fromBuilder(t, nil, builder.Wheel(5)))
	require.NoError(t, err)
	assert.False(t, ok, "size differs")

	_, _, err = k4.Isomorphism(nil)
	assert.ErrorIs(t, err, matroid.ErrNilGraph)
}

// TestIsomorphism_TargetDecides verifies a non-3-connected source facing a
// 3-connected target is rejected by the graph oracle without error.
func TestIsomorphism_TargetDecides(t *testing.T) {
	k4 := fromBuilderComplete(t, 4)
	for name, src := range map[string]*matroid.Matroid{
		"parallel pair": newModel(t,
			labelledEdge{"0", "a", "b"}, labelledEdge{"1", "b", "c"},
			labelledEdge{"2", "c", "d"}, labelledEdge{"3", "d", "a"},
			labelledEdge{"4", "a", "c"}, labelledEdge{"5", "a", "b"}),
		"loop": newModel(t,
			labelledEdge{"0", "a", "b"}, labelledEdge{"1", "b", "c"},
			labelledEdge{"2", "c", "d"}, labelledEdge{"3", "d", "a"},
			labelledEdge{"4", "a", "c"}, labelledEdge{"5", "a", "a"}),
	} {
		require.False(t, src.IsThreeConnected(), name)
		phi, ok, err := src.Isomorphism(k4)
		require.NoError(t, err, name)
		assert.False(t, ok, name)
		assert.Nil(t, phi, name)
	}
}

func TestIsomorphism_Fallback(t *testing.T) {
	m := triangle(t)
	renamed := newModel(t,
		labelledEdge{"x", "p", "q"},
		labelledEdge{"y", "q", "r"},
		labelledEdge{"z", "r", "p"},
	)

	phi, ok, err := m.Isomorphism(renamed)
	require.NoError(t, err)
	require.True(t, ok)
	requireRankPreserving(t, m, renamed, phi)

	path := newModel(t,
		labelledEdge{"x", "p", "q"},
		labelledEdge{"y", "q", "r"},
		labelledEdge{"z", "r", "s"},
	)
	ok, err = m.IsIsomorphic(path)
	require.NoError(t, err)
	assert.False(t, ok)

	// The diamond and a 4-cycle with a parallel pair differ although sizes and ranks match.
	d := diamond(t)
	c4p := newModel(t,
		labelledEdge{"0", "0", "1"},
		labelledEdge{"1", "1", "2"},
		labelledEdge{"2", "2", "3"},
		labelledEdge{"3", "3", "0"},
		labelledEdge{"4", "3", "0"},
	)
	ok, err = d.IsIsomorphic(c4p)
	require.NoError(t, err)
	assert.False(t, ok)

	// A Whitney twist changes the graph but not the matroid.
	twisted, err := d.Twist([]string{"0", "1"})
	require.NoError(t, err)
	ok, err = d.IsIsomorphic(twisted)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsomorphism_SearchTooLarge(t *testing.T) {
	g := core.NewMultigraph()
	require.NoError(t, g.AddEdgeWithID("0", "a", "b"))
	require.NoError(t, g.AddEdgeWithID("1", "b", "c"))
	require.NoError(t, g.AddEdgeWithID("2", "a", "c"))
	m, err := matroid.New(g, matroid.WithFallback(matroid.ExhaustiveSearch{MaxElements: 2}))
	require.NoError(t, err)

	_, _, err = m.Isomorphism(triangle(t))
	assert.ErrorIs(t, err, matroid.ErrSearchTooLarge)

	// Derived models keep the configured fallback.
	ext, err := m.Extension("a", "b", "x")
	require.NoError(t, err)
	_, err = ext.IsIsomorphic(ext)
	assert.ErrorIs(t, err, matroid.ErrSearchTooLarge)
}

func TestHasMinor_ThreeConnected(t *testing.T) {
	k5 := fromBuilderComplete(t, 5)
	k4 := lettered(t)

	cert, ok, err := k5.HasMinor(k4)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, cert)

	minor, err := k5.Minor(cert.Contractions, cert.Deletions)
	require.NoError(t, err)
	requireRankPreserving(t, minor, k4, cert.Map)

	_, ok, err = k4.HasMinor(k5)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = k5.HasMinor(nil)
	assert.ErrorIs(t, err, matroid.ErrNilGraph)
}

func TestHasMinor_Fallback(t *testing.T) {
	k4 := fromBuilderComplete(t, 4)
	c4 := fromBuilder(t, nil, builder.Cycle(4))

	cert, ok, err := k4.HasMinor(c4)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, cert.Contractions)
	assert.Len(t, cert.Deletions, 2)

	minor, err := k4.Minor(cert.Contractions, cert.Deletions)
	require.NoError(t, err)
	requireRankPreserving(t, minor, c4, cert.Map)

	// A bouquet of two loops is not a minor of a tree.
	tree := fromBuilder(t, nil, builder.Path(4))
	_, ok, err = tree.HasMinor(fromBuilder(t, nil, builder.Bouquet(2)))
	require.NoError(t, err)
	assert.False(t, ok)
}
