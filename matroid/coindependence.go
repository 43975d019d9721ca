// SPDX-License-Identifier: MIT
// Package: graphmat/matroid
//
// coindependence.go: dual queries. Each one deletes edges from the whole
// graph and watches the global component count; the model graph itself is
// never touched (deletions are skip sets handed to the component walker).

package matroid

import (
	"fmt"

	"github.com/katalvlaran/graphmat/connectivity"
)

// IsCoindependent reports whether deleting X keeps the graph's component count,
// i.e. E∖X still spans.
func (m *Matroid) IsCoindependent(X []string) (bool, error) {
	if err := m.check(X); err != nil {
		return false, fmt.Errorf("matroid: IsCoindependent: %w", err)
	}

	return m.components(X) == m.components(nil), nil
}

// Cocircuit returns a cocircuit (minimal edge cut) contained in X, or
// ErrNoCocircuit if X is coindependent.
//
// X's edges are deleted in label order until the count first rises; of that
// deleted prefix, an edge belongs to the cocircuit iff restoring it alone
// brings the count back.
func (m *Matroid) Cocircuit(X []string) ([]string, error) {
	if err := m.check(X); err != nil {
		return nil, fmt.Errorf("matroid: Cocircuit: %w", err)
	}
	base := m.components(nil)
	X = sortedUnique(X)
	if m.components(X) == base {
		return nil, fmt.Errorf("matroid: Cocircuit: %w", ErrNoCocircuit)
	}

	var prefix []string
	for _, x := range X {
		prefix = append(prefix, x)
		if m.components(prefix) > base {
			break
		}
	}

	var out []string
	for i, x := range prefix {
		rest := make([]string, 0, len(prefix)-1)
		rest = append(rest, prefix[:i]...)
		rest = append(rest, prefix[i+1:]...)
		if m.components(rest) == base {
			out = append(out, x)
		}
	}

	return out, nil
}

// IsCocircuit reports whether X is a minimal edge cut: deleting X adds exactly
// one component and restoring any single edge of X undoes it.
func (m *Matroid) IsCocircuit(X []string) (bool, error) {
	if err := m.check(X); err != nil {
		return false, fmt.Errorf("matroid: IsCocircuit: %w", err)
	}
	base := m.components(nil)
	X = sortedUnique(X)
	if m.components(X) != base+1 {
		return false, nil
	}
	for i := range X {
		rest := make([]string, 0, len(X)-1)
		rest = append(rest, X[:i]...)
		rest = append(rest, X[i+1:]...)
		if m.components(rest) != base {
			return false, nil
		}
	}

	return true, nil
}

// Coclosure returns cl*(X): X plus every other edge whose deletion, after X
// is deleted, raises the component count.
func (m *Matroid) Coclosure(X []string) ([]string, error) {
	if err := m.check(X); err != nil {
		return nil, fmt.Errorf("matroid: Coclosure: %w", err)
	}
	X = sortedUnique(X)
	c := m.components(X)

	out := toSet(X)
	probe := append(append([]string(nil), X...), "")
	for _, y := range m.complement(X) {
		probe[len(probe)-1] = y
		if m.components(probe) > c {
			out[y] = struct{}{}
		}
	}

	return setToSorted(out), nil
}

// MaxCoindependent returns a maximal coindependent subset of X: X's edges are
// deleted in label order, skipping any whose deletion would disconnect the graph.
func (m *Matroid) MaxCoindependent(X []string) ([]string, error) {
	if err := m.check(X); err != nil {
		return nil, fmt.Errorf("matroid: MaxCoindependent: %w", err)
	}
	base := m.components(nil)

	var deleted []string
	for _, x := range sortedUnique(X) {
		deleted = append(deleted, x)
		if m.components(deleted) > base {
			deleted = deleted[:len(deleted)-1]
		}
	}

	return deleted, nil
}

// components counts the components of the model graph with without deleted.
func (m *Matroid) components(without []string) int {
	return connectivity.ComponentCountWithout(m.g, without)
}
