// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph construction options and Edge helpers.

package core_test

import (
	"testing"

	"github.com/katalvlaran/graphmat/core"
)

// TestGraph_Options VERIFIES that policy flags follow the constructor options.
func TestGraph_Options(t *testing.T) {
	g := core.NewGraph()
	MustFalse(t, g.Looped(), "NewGraph().Looped")
	MustFalse(t, g.Multigraph(), "NewGraph().Multigraph")

	g = core.NewGraph(core.WithLoops())
	MustTrue(t, g.Looped(), "WithLoops().Looped")
	MustFalse(t, g.Multigraph(), "WithLoops().Multigraph")

	g = core.NewMultigraph()
	MustTrue(t, g.Looped(), "NewMultigraph().Looped")
	MustTrue(t, g.Multigraph(), "NewMultigraph().Multigraph")
}

// TestEdge_Helpers VERIFIES IsLoop/Other/Touches on plain and loop edges.
func TestEdge_Helpers(t *testing.T) {
	e := &core.Edge{ID: EdgeAB, From: VertexA, To: VertexB}
	MustFalse(t, e.IsLoop(), "ab.IsLoop")
	MustEqualString(t, e.Other(VertexA), VertexB, "ab.Other(A)")
	MustEqualString(t, e.Other(VertexB), VertexA, "ab.Other(B)")
	MustTrue(t, e.Touches(VertexB), "ab.Touches(B)")
	MustFalse(t, e.Touches(VertexC), "ab.Touches(C)")

	loop := &core.Edge{ID: EdgeAA, From: VertexA, To: VertexA}
	MustTrue(t, loop.IsLoop(), "aa.IsLoop")
	MustEqualString(t, loop.Other(VertexA), VertexA, "aa.Other(A)")

	var nilEdge *core.Edge
	MustTrue(t, nilEdge.IsNil(), "nil.IsNil")
}

// TestGraph_GeneratedEdgeIDs VERIFIES that AddEdge skips IDs claimed explicitly.
//
// Implementation:
//   - Stage 1: Claim "e1" through AddEdgeWithID.
//   - Stage 2: AddEdge must hand out "e2", not "e1".
func TestGraph_GeneratedEdgeIDs(t *testing.T) {
	g := core.NewMultigraph()
	MustNoError(t, g.AddEdgeWithID("e1", VertexA, VertexB), "AddEdgeWithID(e1)")

	id, err := g.AddEdge(VertexB, VertexC)
	MustNoError(t, err, "AddEdge(B,C)")
	MustEqualString(t, id, "e2", "generated ID")

	id, err = g.AddEdge(VertexC, VertexA)
	MustNoError(t, err, "AddEdge(C,A)")
	MustEqualString(t, id, "e3", "generated ID")
}

// TestGraph_FreshVertexID VERIFIES the smallest unused decimal ID is returned.
func TestGraph_FreshVertexID(t *testing.T) {
	g := core.NewMultigraph()
	MustEqualString(t, g.FreshVertexID(), "0", "empty graph")

	MustNoError(t, g.AddVertex("0"), "AddVertex(0)")
	MustNoError(t, g.AddVertex("2"), "AddVertex(2)")
	MustEqualString(t, g.FreshVertexID(), "1", "gap at 1")

	MustNoError(t, g.AddVertex("1"), "AddVertex(1)")
	MustEqualString(t, g.FreshVertexID(), "3", "after 0,1,2")
	MustEqualInt(t, g.VertexCount(), 3, "FreshVertexID must not mutate")
}
