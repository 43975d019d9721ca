// SPDX-License-Identifier: MIT
// Package: graphmat/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` and the method tag.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, path length)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error such as a nil constructor
// or a missing canonical dataset.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an invalid enumerated parameter (e.g. unknown Platonic solid).
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrUnknownFamily indicates Family() was given a name it does not know.
var ErrUnknownFamily = errors.New("builder: unknown graph family")
