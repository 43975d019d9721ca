// SPDX-License-Identifier: MIT

package matroid_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmat/core"
	"github.com/katalvlaran/graphmat/matroid"
)

func collect(t *testing.T, seq iter.Seq[*matroid.Matroid]) []*matroid.Matroid {
	t.Helper()
	var out []*matroid.Matroid
	for m := range seq {
		out = append(out, m)
	}

	return out
}

// bowtie is triangles a-b-c and a-d-e sharing vertex a.
func bowtie(t *testing.T) *matroid.Matroid {
	t.Helper()
	return newModel(t,
		labelledEdge{"ab", "a", "b"},
		labelledEdge{"bc", "b", "c"},
		labelledEdge{"ca", "c", "a"},
		labelledEdge{"ad", "a", "d"},
		labelledEdge{"de", "d", "e"},
		labelledEdge{"ea", "e", "a"},
	)
}

func TestMinor(t *testing.T) {
	m := diamond(t)

	del, err := m.Delete([]string{"2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "3", "4"}, del.Groundset())
	assert.Equal(t, 3, del.FullRank())
	ok, err := del.IsCircuit(del.Groundset())
	require.NoError(t, err)
	assert.True(t, ok, "diamond minus the chord is a 4-cycle")

	con, err := m.Contract([]string{"2"})
	require.NoError(t, err)
	assert.Equal(t, 2, con.FullRank())
	ok, err = con.IsCircuit([]string{"0", "1"})
	require.NoError(t, err)
	assert.True(t, ok, "contracting the chord makes parallel pairs")

	_, err = m.Minor([]string{"9"}, nil)
	assert.ErrorIs(t, err, matroid.ErrNotASubset)
	_, err = m.Minor(nil, []string{"9"})
	assert.ErrorIs(t, err, matroid.ErrNotASubset)

	// Receiver untouched.
	assert.Equal(t, 5, m.Size())
}

func TestExtension(t *testing.T) {
	m := triangle(t)

	ext, err := m.Extension("a", "b", "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "x"}, ext.Groundset())
	assert.Equal(t, m.FullRank(), ext.FullRank())
	assert.NotContains(t, ext.Coloops(), "x")
	ok, err := ext.IsCircuit([]string{"0", "x"})
	require.NoError(t, err)
	assert.True(t, ok, "x is parallel to 0")

	loop, err := m.Extension("c", "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, loop.Loops(), "fresh label, v defaults to u")

	back, err := ext.Delete([]string{"x"})
	require.NoError(t, err)
	assert.True(t, back.Equal(m), "deleting the new element restores the model")

	_, err = m.Extension("a", "b", "0")
	assert.ErrorIs(t, err, matroid.ErrDuplicateElement)
	assert.ErrorIs(t, err, matroid.ErrInvalidInput)
	_, err = m.Extension("a", "z", "x")
	assert.ErrorIs(t, err, matroid.ErrVerticesNotInGraph)

	empty, err := matroid.New(core.NewMultigraph())
	require.NoError(t, err)
	l, err := empty.Extension("v", "", "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, l.Loops())
}

func TestExtensions(t *testing.T) {
	m := triangle(t)

	seq, err := m.Extensions("x", nil)
	require.NoError(t, err)
	models := collect(t, seq)
	require.Len(t, models, 4, "one loop and three pairs")
	assert.Equal(t, []string{"x"}, models[0].Loops())
	for _, ext := range models {
		assert.True(t, ext.Has("x"))
		assert.NotContains(t, ext.Coloops(), "x")
		assert.Equal(t, 2, ext.FullRank())
	}
	assert.Empty(t, collect(t, seq), "sequences are single-use")

	seq, err = m.Extensions("x", []string{"a", "b"})
	require.NoError(t, err)
	assert.Len(t, collect(t, seq), 2)

	seq, err = m.Extensions("x", []string{"a", "a"})
	require.NoError(t, err)
	assert.Len(t, collect(t, seq), 1, "repeated candidates count once")
	seq, err = m.Extensions("x", []string{"b", "a", "b"})
	require.NoError(t, err)
	assert.Len(t, collect(t, seq), 2, "loop at b and the pair a-b")

	seq, err = m.Extensions("", nil)
	require.NoError(t, err)
	for ext := range seq {
		assert.True(t, ext.Has("3"))
		break
	}

	_, err = m.Extensions("0", nil)
	assert.ErrorIs(t, err, matroid.ErrDuplicateElement)
	_, err = m.Extensions("x", []string{"z"})
	assert.ErrorIs(t, err, matroid.ErrVerticesNotInGraph)

	empty, err := matroid.New(core.NewMultigraph())
	require.NoError(t, err)
	seq, err = empty.Extensions("x", nil)
	require.NoError(t, err)
	models = collect(t, seq)
	require.Len(t, models, 1)
	assert.Equal(t, []string{"x"}, models[0].Loops())
}

func TestCoextension(t *testing.T) {
	m := triangle(t)

	co, err := m.Coextension("a", []string{"0"}, "x")
	require.NoError(t, err)
	assert.Equal(t, 3, co.FullRank())
	ok, err := co.IsCircuit(co.Groundset())
	require.NoError(t, err)
	assert.True(t, ok, "splitting a triangle vertex gives a 4-cycle")

	pend, err := m.Coextension("z", []string{"1"}, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, pend.Coloops(), "unknown vertex gets a pendant edge")

	_, err = m.Coextension("a", []string{"1"}, "x")
	assert.ErrorIs(t, err, matroid.ErrEdgesNotIncident)
	_, err = m.Coextension("a", []string{"9"}, "x")
	assert.ErrorIs(t, err, matroid.ErrNotASubset)
	_, err = m.Coextension("", nil, "x")
	assert.ErrorIs(t, err, matroid.ErrVerticesNotInGraph)
	_, err = m.Coextension("a", nil, "2")
	assert.ErrorIs(t, err, matroid.ErrDuplicateElement)
}

func TestCoextensions(t *testing.T) {
	seq, err := triangle(t).Coextensions(nil, "x")
	require.NoError(t, err)
	assert.Len(t, collect(t, seq), 4, "one coloop and three subdivisions")

	seq, err = triangle(t).Coextensions([]string{"a", "a"}, "x")
	require.NoError(t, err)
	assert.Len(t, collect(t, seq), 3, "one coloop and the two edges at a")

	k5 := fromBuilderComplete(t, 5)
	seq, err = k5.Coextensions([]string{"0"}, "x")
	require.NoError(t, err)
	models := collect(t, seq)
	require.Len(t, models, 8, "coloop, four subdivisions, three splits")
	assert.Equal(t, []string{"x"}, models[0].Coloops())
	for _, co := range models {
		assert.Equal(t, 11, co.Size())
		assert.Equal(t, 5, co.FullRank())
	}
	for _, co := range models[5:] {
		assert.Empty(t, co.Coloops(), "splits keep 2-edge-connectivity")
	}

	// Stopping early is allowed.
	seq, err = k5.Coextensions(nil, "x")
	require.NoError(t, err)
	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)

	_, err = k5.Coextensions([]string{"z"}, "x")
	assert.ErrorIs(t, err, matroid.ErrVerticesNotInGraph)
}

func TestCoextensions_LoopSubdivision(t *testing.T) {
	m := newModel(t, labelledEdge{"L", "a", "a"})
	seq, err := m.Coextensions(nil, "x")
	require.NoError(t, err)
	models := collect(t, seq)
	require.Len(t, models, 2)

	ok, err := models[1].IsCircuit([]string{"L", "x"})
	require.NoError(t, err)
	assert.True(t, ok, "a subdivided loop is a parallel pair")
}

func TestTwist(t *testing.T) {
	m := newModel(t,
		labelledEdge{"ap", "a", "p"},
		labelledEdge{"pr", "p", "r"},
		labelledEdge{"rb", "r", "b"},
		labelledEdge{"ab", "a", "b"},
		labelledEdge{"aq", "a", "q"},
		labelledEdge{"qb", "q", "b"},
		labelledEdge{"bs", "b", "s"},
	)
	X := []string{"ap", "pr", "rb", "ab"}

	tw, err := m.Twist(X)
	require.NoError(t, err)
	assert.False(t, tw.Equal(m))
	requireSameRanks(t, m, tw)

	edges, err := tw.GroundsetToEdges([]string{"ap"})
	require.NoError(t, err)
	assert.True(t, edges[0].Touches("b") && edges[0].Touches("p"))

	_, err = m.Twist(nil)
	assert.ErrorIs(t, err, matroid.ErrExpectedTwoSeparation)
	assert.ErrorIs(t, err, matroid.ErrStructuralPrecondition)

	c6 := newModel(t,
		labelledEdge{"01", "0", "1"},
		labelledEdge{"12", "1", "2"},
		labelledEdge{"23", "2", "3"},
		labelledEdge{"34", "3", "4"},
		labelledEdge{"45", "4", "5"},
		labelledEdge{"50", "5", "0"},
	)
	_, err = c6.Twist([]string{"01", "23"})
	assert.ErrorIs(t, err, matroid.ErrTooManySharedVertices)
}

func TestOneSum(t *testing.T) {
	m := bowtie(t)
	X := []string{"ab", "bc", "ca"}

	s, err := m.OneSum(X, "b", "d")
	require.NoError(t, err)
	assert.Equal(t, m.Groundset(), s.Groundset())
	assert.Equal(t, m.FullRank(), s.FullRank())
	requireSameRanks(t, m, s)
	edges, err := s.GroundsetToEdges([]string{"bc"})
	require.NoError(t, err)
	assert.True(t, edges[0].Touches("d"), "b identified with d")

	s, err = m.OneSum(X, "a", "d")
	require.NoError(t, err)
	requireSameRanks(t, m, s)
	assert.False(t, s.Equal(m))

	for name, tc := range map[string]struct {
		X    []string
		u, v string
		want error
	}{
		"not a 1-separation": {[]string{"ab"}, "a", "d", matroid.ErrExpectedOneSeparation},
		"missing vertex":     {X, "z", "d", matroid.ErrVerticesMustExist},
		"u outside X":        {X, "d", "e", matroid.ErrFirstVertexNotSpanned},
		"v outside rest":     {X, "b", "c", matroid.ErrSecondVertexNotSpanned},
		"unknown element":    {[]string{"9"}, "a", "d", matroid.ErrNotASubset},
	} {
		_, err := m.OneSum(tc.X, tc.u, tc.v)
		assert.ErrorIs(t, err, tc.want, name)
	}

	path := newModel(t,
		labelledEdge{"pa", "p", "a"},
		labelledEdge{"ab", "a", "b"},
		labelledEdge{"bq", "b", "q"},
	)
	_, err = path.OneSum([]string{"pa", "bq"}, "p", "a")
	assert.ErrorIs(t, err, matroid.ErrTooManySharedVertices)
}
