// SPDX-License-Identifier: MIT
// Package: graphmat/matroid
//
// fallback.go: matroid-level isomorphism and minor search for models the
// 3-connected graph shortcut cannot handle.

package matroid

import "fmt"

// Fallback answers isomorphism and minor queries directly on matroids.
type Fallback interface {
	Isomorphism(m, n *Matroid) (map[string]string, bool, error)
	HasMinor(m, n *Matroid) (*MinorCertificate, bool, error)
}

// DefaultMaxElements bounds ExhaustiveSearch: rank tables hold 2^n entries.
const DefaultMaxElements = 12

// maxElements is the hard ceiling for MaxElements.
const maxElements = 24

// ExhaustiveSearch compares full rank tables. An element bijection is an
// isomorphism iff every subset keeps its rank; the search extends a partial
// bijection one element at a time and checks every subset it completes.
// Inputs above MaxElements fail with ErrSearchTooLarge.
type ExhaustiveSearch struct {
	// MaxElements caps the ground-set size; ≤0 means DefaultMaxElements,
	// values above 24 are clamped.
	MaxElements int
}

func (s ExhaustiveSearch) limit() int {
	if s.MaxElements > maxElements {
		return maxElements
	}
	if s.MaxElements > 0 {
		return s.MaxElements
	}

	return DefaultMaxElements
}

// Isomorphism implements Fallback.
func (s ExhaustiveSearch) Isomorphism(m, n *Matroid) (map[string]string, bool, error) {
	if m == nil || n == nil {
		return nil, false, ErrNilGraph
	}
	if m.Size() != n.Size() || m.FullRank() != n.FullRank() {
		return nil, false, nil
	}
	if m.Size() > s.limit() {
		return nil, false, fmt.Errorf("matroid: ExhaustiveSearch: %d elements > %d: %w", m.Size(), s.limit(), ErrSearchTooLarge)
	}

	k := m.Size()
	rm, rn := rankTable(m), rankTable(n)
	phi := make([]int, k)
	img := make([]uint32, 1<<k)
	var used uint32

	var assign func(i int) bool
	assign = func(i int) bool {
		if i == k {
			return true
		}
		bit := uint32(1) << i
		for f := 0; f < k; f++ {
			fbit := uint32(1) << f
			if used&fbit != 0 || rm[bit] != rn[fbit] {
				continue
			}
			ok := true
			for t := uint32(0); t < bit; t++ {
				img[t|bit] = img[t] | fbit
				if rm[t|bit] != rn[img[t|bit]] {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			phi[i] = f
			used |= fbit
			if assign(i + 1) {
				return true
			}
			used &^= fbit
		}
		return false
	}
	if !assign(0) {
		return nil, false, nil
	}

	out := make(map[string]string, k)
	for i, x := range m.groundset {
		out[x] = n.groundset[phi[i]]
	}

	return out, true, nil
}

// HasMinor implements Fallback by trying every independent contraction set of
// the right rank and every deletion set of the right size.
func (s ExhaustiveSearch) HasMinor(m, n *Matroid) (*MinorCertificate, bool, error) {
	if m == nil || n == nil {
		return nil, false, ErrNilGraph
	}
	c := m.FullRank() - n.FullRank()
	d := m.Size() - n.Size() - c
	if c < 0 || d < 0 {
		return nil, false, nil
	}
	if m.Size() > s.limit() {
		return nil, false, fmt.Errorf("matroid: ExhaustiveSearch: %d elements > %d: %w", m.Size(), s.limit(), ErrSearchTooLarge)
	}

	var (
		cert *MinorCertificate
		err  error
	)
	combinations(m.groundset, c, func(C []string) bool {
		if m.rank(C) != len(C) {
			return true
		}
		rest := m.complement(C)
		combinations(rest, d, func(D []string) bool {
			var minor *Matroid
			if minor, err = m.Minor(C, D); err != nil {
				return false
			}
			if minor.FullRank() != n.FullRank() {
				return true
			}
			var emap map[string]string
			var ok bool
			if emap, ok, err = s.Isomorphism(minor, n); err != nil || !ok {
				return err == nil
			}
			cert = &MinorCertificate{Contractions: C, Deletions: D, Map: emap}
			return false
		})
		return cert == nil && err == nil
	})
	if err != nil {
		return nil, false, err
	}

	return cert, cert != nil, nil
}

// rankTable returns r(T) for every subset T of the ground set, indexed by
// bitmask over ascending elements.
func rankTable(m *Matroid) []int {
	k := m.Size()
	out := make([]int, 1<<k)
	subset := make([]string, 0, k)
	for mask := 1; mask < 1<<k; mask++ {
		subset = subset[:0]
		for i := 0; i < k; i++ {
			if mask&(1<<i) != 0 {
				subset = append(subset, m.groundset[i])
			}
		}
		out[mask] = m.rank(subset)
	}

	return out
}
