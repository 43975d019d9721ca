// SPDX-License-Identifier: MIT
// Package core_test verifies label-preserving rewrites: merge, contraction, split.

package core_test

import (
	"testing"

	"github.com/katalvlaran/graphmat/core"
)

// TestGraph_ContractEdge VERIFIES contraction keeps labels and turns parallels into loops.
//
// Implementation:
//   - Stage 1: Triangle plus a parallel edge p1 on A-B.
//   - Stage 2: Contract ab; p1 must become a loop at A; B disappears.
//   - Stage 3: Contracting the loop p1 deletes it.
func TestGraph_ContractEdge(t *testing.T) {
	g := NewTriangle(t)
	MustNoError(t, g.AddEdgeWithID(EdgeP1, VertexA, VertexB), "AddEdgeWithID(p1)")

	MustNoError(t, g.ContractEdge(EdgeAB), "ContractEdge(ab)")
	MustFalse(t, g.HasVertex(VertexB), "B merged away")
	MustFalse(t, g.HasEdgeID(EdgeAB), "ab gone")
	p1, err := g.GetEdge(EdgeP1)
	MustNoError(t, err, "GetEdge(p1)")
	MustTrue(t, p1.IsLoop(), "p1 became a loop")

	bc, err := g.GetEdge(EdgeBC)
	MustNoError(t, err, "GetEdge(bc)")
	MustTrue(t, bc.Touches(VertexA) && bc.Touches(VertexC), "bc now joins A and C")

	MustNoError(t, g.ContractEdge(EdgeP1), "ContractEdge(p1 loop)")
	MustFalse(t, g.HasEdgeID(EdgeP1), "loop contraction deletes")
	MustErrorIs(t, g.ContractEdge("missing"), core.ErrEdgeNotFound, "ContractEdge(missing)")
}

// TestGraph_ContractEdges VERIFIES batch contraction validates first and handles induced loops.
func TestGraph_ContractEdges(t *testing.T) {
	g := NewTriangle(t)
	MustErrorIs(t, g.ContractEdges([]string{EdgeAB, "missing"}), core.ErrEdgeNotFound, "ContractEdges(missing)")
	MustEqualInt(t, g.EdgeCount(), 3, "no change on validation failure")

	// After ab and bc, ca is a loop and is deleted.
	MustNoError(t, g.ContractEdges([]string{EdgeAB, EdgeBC, EdgeCA}), "ContractEdges(all)")
	MustEqualInt(t, g.VertexCount(), 1, "single vertex left")
	MustEqualInt(t, g.EdgeCount(), 0, "no edges left")
}

// TestGraph_ContractEdgePolicy VERIFIES contraction respects loop policy and restores on failure.
func TestGraph_ContractEdgePolicy(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	MustNoError(t, g.AddEdgeWithID(EdgeP1, VertexA, VertexB), "AddEdgeWithID(p1)")
	MustNoError(t, g.AddEdgeWithID(EdgeP2, VertexA, VertexB), "AddEdgeWithID(p2)")

	MustErrorIs(t, g.ContractEdge(EdgeP1), core.ErrLoopNotAllowed, "ContractEdge(p1)")
	MustTrue(t, g.HasEdgeID(EdgeP1), "p1 restored")
	MustTrue(t, g.HasVertex(VertexB), "B untouched")
}

// TestGraph_MergeVertices VERIFIES merge semantics and sentinels.
func TestGraph_MergeVertices(t *testing.T) {
	g := NewTriangle(t)
	MustNoError(t, g.AddEdgeWithID(EdgeCD, VertexC, VertexD), "AddEdgeWithID(cd)")

	MustErrorIs(t, g.MergeVertices(VertexA, VertexX), core.ErrVertexNotFound, "MergeVertices(A,X)")
	MustNoError(t, g.MergeVertices(VertexA, VertexA), "MergeVertices(A,A) no-op")

	MustNoError(t, g.MergeVertices(VertexD, VertexA), "MergeVertices(D,A)")
	MustFalse(t, g.HasVertex(VertexA), "A merged away")
	ab, err := g.GetEdge(EdgeAB)
	MustNoError(t, err, "GetEdge(ab)")
	MustTrue(t, ab.Touches(VertexD) && ab.Touches(VertexB), "ab now joins D and B")
	MustEqualInt(t, g.EdgeCount(), 4, "no edge lost")
}

// TestGraph_SplitVertex VERIFIES edges move to the new vertex and loops stay loops.
func TestGraph_SplitVertex(t *testing.T) {
	g := NewTriangle(t)
	MustNoError(t, g.AddEdgeWithID(EdgeAA, VertexA, VertexA), "AddEdgeWithID(aa)")

	MustErrorIs(t, g.SplitVertex(VertexX, VertexY, nil), core.ErrVertexNotFound, "SplitVertex(X)")
	MustErrorIs(t, g.SplitVertex(VertexA, VertexB, nil), core.ErrVertexExists, "SplitVertex(A,B)")
	MustErrorIs(t, g.SplitVertex(VertexA, VertexY, []string{EdgeBC}), core.ErrEdgeNotIncident, "SplitVertex(bc)")
	MustErrorIs(t, g.SplitVertex(VertexA, VertexY, []string{"missing"}), core.ErrEdgeNotFound, "SplitVertex(missing)")
	MustFalse(t, g.HasVertex(VertexY), "failed split leaves no vertex")

	MustNoError(t, g.SplitVertex(VertexA, VertexY, []string{EdgeAB, EdgeAA}), "SplitVertex(A,Y)")
	ab, err := g.GetEdge(EdgeAB)
	MustNoError(t, err, "GetEdge(ab)")
	MustTrue(t, ab.Touches(VertexY) && ab.Touches(VertexB), "ab moved to Y")
	aa, err := g.GetEdge(EdgeAA)
	MustNoError(t, err, "GetEdge(aa)")
	MustTrue(t, aa.IsLoop() && aa.Touches(VertexY), "aa is a loop at Y")
	ca, err := g.GetEdge(EdgeCA)
	MustNoError(t, err, "GetEdge(ca)")
	MustTrue(t, ca.Touches(VertexA), "ca stays at A")
}
