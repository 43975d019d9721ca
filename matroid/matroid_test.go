// SPDX-License-Identifier: MIT

package matroid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmat/core"
	"github.com/katalvlaran/graphmat/matroid"
)

func TestNew_NilGraph(t *testing.T) {
	_, err := matroid.New(nil)
	assert.ErrorIs(t, err, matroid.ErrNilGraph)
}

// TestNew_ForcesConnectivity verifies components are glued and recorded in VertexMap.
func TestNew_ForcesConnectivity(t *testing.T) {
	g := core.NewMultigraph()
	require.NoError(t, g.AddEdgeWithID("x", "a", "b"))
	require.NoError(t, g.AddEdgeWithID("y", "c", "d"))
	require.NoError(t, g.AddVertex("z"))

	m, err := matroid.New(g)
	require.NoError(t, err)

	vm := m.VertexMap()
	assert.Len(t, vm, 5)
	assert.Equal(t, "a", vm["a"])
	assert.Equal(t, "b", vm["c"], "second component glued to the first")
	assert.Equal(t, "d", vm["z"], "isolated vertex glued to the component before it")
	assert.Equal(t, []string{"a", "b", "d"}, m.Vertices())
	assert.Equal(t, 2, m.FullRank())

	r, err := m.Rank([]string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, 2, r, "gluing preserves the rank function")
	assert.Empty(t, m.Loops())

	// The input graph is untouched.
	assert.Equal(t, 5, g.VertexCount())
}

// TestNew_Groundset verifies supplied labels are used only when they are usable.
func TestNew_Groundset(t *testing.T) {
	g := core.NewMultigraph()
	require.NoError(t, g.AddEdgeWithID("e1", "a", "b"))
	require.NoError(t, g.AddEdgeWithID("e2", "b", "c"))

	m, err := matroid.New(g, matroid.WithGroundset([]string{"p", "q"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"p", "q"}, m.Groundset())
	edges, err := m.GroundsetToEdges([]string{"q"})
	require.NoError(t, err)
	assert.True(t, edges[0].Touches("b") && edges[0].Touches("c"), "q labels e2")

	for name, labels := range map[string][]string{
		"duplicate": {"p", "p"},
		"empty":     {"p", ""},
		"count":     {"p"},
	} {
		m, err = matroid.New(g, matroid.WithGroundset(labels))
		require.NoError(t, err, name)
		assert.Equal(t, []string{"0", "1"}, m.Groundset(), name)
	}

	m, err = matroid.New(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "e2"}, m.Groundset(), "edge IDs are the default labels")
}

// TestGroundsetToEdges verifies subset validation and the error taxonomy.
func TestGroundsetToEdges(t *testing.T) {
	m := triangle(t)

	_, err := m.GroundsetToEdges([]string{"0", "nope"})
	assert.ErrorIs(t, err, matroid.ErrNotASubset)
	assert.ErrorIs(t, err, matroid.ErrInvalidInput)

	sub, err := m.SubgraphFromSet([]string{"0"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, sub.Vertices())

	_, err = m.SubgraphFromSet([]string{"nope"})
	assert.ErrorIs(t, err, matroid.ErrNotASubset)
}

// TestModel_Accessors verifies defensive copies and trivia.
func TestModel_Accessors(t *testing.T) {
	m := triangle(t)

	g := m.Graph()
	require.NoError(t, g.RemoveEdge("0"))
	assert.Equal(t, 3, m.Size(), "Graph returns a copy")

	gs := m.Groundset()
	gs[0] = "mutated"
	assert.Equal(t, []string{"0", "1", "2"}, m.Groundset())

	vm := m.VertexMap()
	vm["a"] = "mutated"
	assert.Equal(t, "a", m.VertexMap()["a"])

	assert.True(t, m.IsValid())
	assert.Equal(t, "Graphic matroid of rank 2 on 3 elements", m.String())
	assert.True(t, m.Has("1"))
	assert.False(t, m.Has("9"))
}

// TestEqualAndHash verifies Equal ⇒ equal Hash, and that Hash ignores vertex names.
func TestEqualAndHash(t *testing.T) {
	m := triangle(t)
	n := triangle(t)
	assert.True(t, m.Equal(m))
	assert.True(t, m.Equal(n))
	assert.Equal(t, m.Hash(), n.Hash())

	renamed := newModel(t,
		labelledEdge{"0", "x", "y"},
		labelledEdge{"1", "y", "z"},
		labelledEdge{"2", "x", "z"},
	)
	assert.False(t, m.Equal(renamed), "different vertex names")
	assert.Equal(t, m.Hash(), renamed.Hash(), "stars do not see vertex names")

	other := newModel(t,
		labelledEdge{"0", "a", "b"},
		labelledEdge{"1", "b", "c"},
		labelledEdge{"2", "c", "d"},
	)
	assert.False(t, m.Equal(other))
	assert.NotEqual(t, m.Hash(), other.Hash())
	assert.False(t, m.Equal(nil))
}

// TestRank_Triangle pins the triangle values.
func TestRank_Triangle(t *testing.T) {
	m := triangle(t)

	cases := []struct {
		X    []string
		want int
	}{
		{nil, 0},
		{[]string{"0"}, 1},
		{[]string{"0", "1"}, 2},
		{[]string{"0", "1", "2"}, 2},
	}
	for _, tc := range cases {
		r, err := m.Rank(tc.X)
		require.NoError(t, err)
		assert.Equal(t, tc.want, r, "Rank(%v)", tc.X)
	}
	assert.Equal(t, 2, m.FullRank())

	_, err := m.Rank([]string{"9"})
	assert.ErrorIs(t, err, matroid.ErrNotASubset)
}

// TestCorankAndConnectivity verifies the dual rank and λ on small fixtures.
func TestCorankAndConnectivity(t *testing.T) {
	m := triangle(t)

	c, err := m.Corank([]string{"0"})
	require.NoError(t, err)
	assert.Equal(t, 1, c)
	c, err = m.Corank(m.Groundset())
	require.NoError(t, err)
	assert.Equal(t, 1, c, "|E| − r(E)")

	lambda, err := m.Connectivity([]string{"0"})
	require.NoError(t, err)
	assert.Equal(t, 1, lambda)
	lambda, err = m.Connectivity(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, lambda)

	_, err = m.Corank([]string{"9"})
	assert.ErrorIs(t, err, matroid.ErrNotASubset)
	_, err = m.Connectivity([]string{"9"})
	assert.ErrorIs(t, err, matroid.ErrNotASubset)
}

// TestLoopsAndColoops verifies loops and bridges are reported.
func TestLoopsAndColoops(t *testing.T) {
	m := newModel(t,
		labelledEdge{"0", "a", "b"},
		labelledEdge{"1", "b", "c"},
		labelledEdge{"2", "a", "c"},
		labelledEdge{"3", "c", "d"},
		labelledEdge{"L", "a", "a"},
	)
	assert.Equal(t, []string{"L"}, m.Loops())
	assert.Equal(t, []string{"3"}, m.Coloops())
}

// TestK5Minors pins the rank and size of K5 minors.
func TestK5Minors(t *testing.T) {
	m := fromBuilderComplete(t, 5)
	require.Equal(t, 10, m.Size())
	require.Equal(t, 4, m.FullRank())

	del, err := m.Minor(nil, []string{"0", "1", "2"})
	require.NoError(t, err)
	assert.Equal(t, 7, del.Size())
	assert.Equal(t, 4, del.FullRank())

	con, err := m.Minor([]string{"0", "1", "2"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, con.Size())
	assert.Equal(t, 1, con.FullRank())

	alias, err := m.Contract([]string{"0", "1", "2"})
	require.NoError(t, err)
	assert.True(t, con.Equal(alias))
	alias, err = m.Delete([]string{"0", "1", "2"})
	require.NoError(t, err)
	assert.True(t, del.Equal(alias))

	assert.Equal(t, 10, m.Size(), "receiver unchanged")

	_, err = m.Minor([]string{"x"}, nil)
	assert.ErrorIs(t, err, matroid.ErrNotASubset)
	_, err = m.Minor(nil, []string{"x"})
	assert.ErrorIs(t, err, matroid.ErrNotASubset)
}

// TestMinor_Overlap verifies an element in both sets is deleted, without failing.
func TestMinor_Overlap(t *testing.T) {
	m := triangle(t)
	n, err := m.Minor([]string{"0"}, []string{"0"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, n.Groundset())
	assert.Equal(t, 2, n.FullRank())
}

func TestFreshLabel(t *testing.T) {
	assert.Equal(t, "0", matroid.FreshLabel(nil))
	assert.Equal(t, "1", matroid.FreshLabel([]string{"0", "2", "a"}))
	assert.Equal(t, "3", matroid.FreshLabel([]string{"2", "1", "0"}))
}
