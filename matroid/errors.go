// SPDX-License-Identifier: MIT
// Package: graphmat/matroid
//
// errors.go: sentinel errors, grouped under two category sentinels.
//
// Error policy:
//   • Specific sentinels wrap their category, so both
//     errors.Is(err, ErrNotASubset) and errors.Is(err, ErrInvalidInput) hold.
//   • Call sites attach the operation tag: "matroid: Rank: %w".

package matroid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput groups caller mistakes about elements, labels and vertices.
	ErrInvalidInput = errors.New("matroid: invalid input")

	// ErrStructuralPrecondition groups separation and vertex requirements of structural edits.
	ErrStructuralPrecondition = errors.New("matroid: structural precondition failed")
)

var (
	// ErrNotASubset indicates an element outside the ground set.
	ErrNotASubset = fmt.Errorf("%w: input must be a subset of the ground set", ErrInvalidInput)

	// ErrDuplicateElement indicates an extension label already in the ground set.
	ErrDuplicateElement = fmt.Errorf("%w: element already in ground set", ErrInvalidInput)

	// ErrVerticesNotInGraph indicates candidate or endpoint vertices missing from the graph.
	ErrVerticesNotInGraph = fmt.Errorf("%w: vertices are not all in the graph", ErrInvalidInput)

	// ErrEdgesNotIncident indicates a coextension moving an edge that does not touch the split vertex.
	ErrEdgesNotIncident = fmt.Errorf("%w: edges must be incident to the split vertex", ErrInvalidInput)
)

var (
	// ErrExpectedTwoSeparation indicates Twist on a set whose connectivity is not exactly 1.
	ErrExpectedTwoSeparation = fmt.Errorf("%w: input must display a 2-separation that is not a 1-separation", ErrStructuralPrecondition)

	// ErrExpectedOneSeparation indicates OneSum on a set whose connectivity is not 0.
	ErrExpectedOneSeparation = fmt.Errorf("%w: input must display a 1-separation", ErrStructuralPrecondition)

	// ErrTooManySharedVertices indicates the two sides of a separation meet in the wrong number of vertices.
	ErrTooManySharedVertices = fmt.Errorf("%w: wrong number of vertices in the intersection", ErrStructuralPrecondition)

	// ErrVerticesMustExist indicates OneSum endpoints absent from the graph.
	ErrVerticesMustExist = fmt.Errorf("%w: the vertices must already be in the graph", ErrStructuralPrecondition)

	// ErrFirstVertexNotSpanned indicates OneSum's u is not spanned by X.
	ErrFirstVertexNotSpanned = fmt.Errorf("%w: first vertex must be spanned by the input", ErrStructuralPrecondition)

	// ErrSecondVertexNotSpanned indicates OneSum's v is not spanned by the complement of X.
	ErrSecondVertexNotSpanned = fmt.Errorf("%w: second vertex must be spanned by the rest of the graph", ErrStructuralPrecondition)
)

var (
	// ErrNoCircuit indicates Circuit was asked for on an independent set.
	ErrNoCircuit = errors.New("matroid: no circuit in independent set")

	// ErrNoCocircuit indicates Cocircuit was asked for on a coindependent set.
	ErrNoCocircuit = errors.New("matroid: no cocircuit in coindependent set")

	// ErrCertificateViolation indicates the graph oracle returned a vertex
	// certificate that does not translate to an element bijection.
	ErrCertificateViolation = errors.New("matroid: graph certificate does not map edges to edges")

	// ErrSearchTooLarge indicates the exhaustive fallback refused an input above its element limit.
	ErrSearchTooLarge = errors.New("matroid: exhaustive search input too large")

	// ErrNilGraph indicates New was called with a nil graph.
	ErrNilGraph = errors.New("matroid: graph is nil")
)
