// SPDX-License-Identifier: MIT

package matroid

import (
	"fmt"

	"github.com/katalvlaran/graphmat/connectivity"
	"github.com/katalvlaran/graphmat/unionfind"
)

// Rank returns r(X) = |V(X)| − c(X): the spanned vertex count minus the
// components of X's edge subgraph.
func (m *Matroid) Rank(X []string) (int, error) {
	if err := m.check(X); err != nil {
		return 0, fmt.Errorf("matroid: Rank: %w", err)
	}

	return m.rank(X), nil
}

func (m *Matroid) rank(X []string) int {
	d := unionfind.New(nil)
	for _, x := range X {
		e := m.edges[x]
		d.Add(e.From)
		d.Add(e.To)
		d.Union(e.From, e.To)
	}

	return d.Len() - d.Count()
}

// Corank returns r*(X) = |X| − (c(G∖X) − 1), the rank of X in the dual matroid.
func (m *Matroid) Corank(X []string) (int, error) {
	if err := m.check(X); err != nil {
		return 0, fmt.Errorf("matroid: Corank: %w", err)
	}
	X = sortedUnique(X)

	return len(X) - (connectivity.ComponentCountWithout(m.g, X) - 1), nil
}

// FullRank returns r(E) = |V| − 1 (0 for the empty model).
func (m *Matroid) FullRank() int {
	if n := m.g.VertexCount(); n > 0 {
		return n - 1
	}

	return 0
}

// Connectivity returns λ(X) = r(X) + r(E∖X) − r(E).
// λ(X) = 0 marks a 1-separation, λ(X) = 1 a 2-separation.
func (m *Matroid) Connectivity(X []string) (int, error) {
	if err := m.check(X); err != nil {
		return 0, fmt.Errorf("matroid: Connectivity: %w", err)
	}

	return m.connectivity(X), nil
}

func (m *Matroid) connectivity(X []string) int {
	return m.rank(X) + m.rank(m.complement(X)) - m.FullRank()
}
