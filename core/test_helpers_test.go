// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for graphmat/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/katalvlaran/graphmat/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
	VertexY = "Y"

	VertexBase = "Base"
)

// Common edge labels used across core tests.
const (
	EdgeAB = "ab"
	EdgeBC = "bc"
	EdgeCA = "ca"
	EdgeCD = "cd"
	EdgeAA = "aa"
	EdgeP1 = "p1"
	EdgeP2 = "p2"
)

// Common concurrency sizes used across core tests (avoid magic numbers in test bodies).
const (
	NConcurrentAdds   = 200
	NConcurrentRounds = 100

	NLoops   = 50
	NReaders = 50
	NCloners = 20
)

// NewTriangle RETURNS the labelled triangle A-B-C with edges ab, bc, ca on a multigraph.
//
// Determinism:
//   - Deterministic; labels are fixed.
//
// Notes:
//   - Most rewrite tests start from this fixture and add one pendant edge cd.
func NewTriangle(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewMultigraph()
	MustNoError(t, g.AddEdgeWithID(EdgeAB, VertexA, VertexB), "AddEdgeWithID(ab)")
	MustNoError(t, g.AddEdgeWithID(EdgeBC, VertexB, VertexC), "AddEdgeWithID(bc)")
	MustNoError(t, g.AddEdgeWithID(EdgeCA, VertexC, VertexA), "AddEdgeWithID(ca)")

	return g
}

// MustNoError FAILS the test if err != nil.
//
// Notes:
//   - Keep op stable and descriptive; avoid long formatted strings.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
//
// Notes:
//   - Use only for sentinel-style contracts (core.Err*).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		return
	}

	t.Fatalf("%s: want true; got false", op)
}

// MustFalse FAILS the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()

	if !cond {
		return
	}

	t.Fatalf("%s: want false; got true", op)
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %d; want %d", op, got, want)
}

// MustEqualString FAILS the test if got != want.
func MustEqualString(t *testing.T, got, want string, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %q; want %q", op, got, want)
}

// MustSortedStrings FAILS the test if ids is not sorted ascending.
//
// Notes:
//   - Use it as an ordering anchor for every deterministic enumeration API.
func MustSortedStrings(t *testing.T, ids []string, op string) {
	t.Helper()

	if sort.StringsAreSorted(ids) {
		return
	}

	t.Fatalf("%s: not sorted: %v", op, ids)
}

// MustSameStringSet FAILS the test if a and b differ as multisets.
func MustSameStringSet(t *testing.T, a, b []string, op string) {
	t.Helper()

	x := append([]string(nil), a...)
	y := append([]string(nil), b...)
	sort.Strings(x)
	sort.Strings(y)
	if len(x) != len(y) {
		t.Fatalf("%s: size mismatch: %v vs %v", op, x, y)
	}
	for i := range x {
		if x[i] != y[i] {
			t.Fatalf("%s: set mismatch: %v vs %v", op, x, y)
		}
	}
}

// ExtractEdgeIDs RETURNS the IDs of edges in input order.
func ExtractEdgeIDs(edges []core.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.ID
	}

	return out
}

// MustNoErrorsFromChan drains errCh and FAILS on the first non-nil error.
//
// Notes:
//   - In concurrent tests, send only unexpected errors to errCh to keep failures signal-rich.
func MustNoErrorsFromChan(t *testing.T, errCh <-chan error, op string) {
	t.Helper()

	for err := range errCh {
		if err == nil {
			continue
		}
		t.Fatalf("%s: unexpected concurrent error: %v", op, err)
	}
}
