// SPDX-License-Identifier: MIT
// Package: graphmat/builder
//
// variants_platonic.go: skeletons of the five Platonic solids.
//
// The skeletons are generated from ring and pole patterns rather than stored
// as literal tables. Every chord list is sorted by (U, V) with U < V so the
// emitted edge labels are stable across runs. All five graphs are
// 3-connected, which makes them natural fixtures for Whitney's theorem.

package builder

import "sort"

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

var platonicNames = [...]string{
	Tetrahedron:  "tetrahedron",
	Cube:         "cube",
	Octahedron:   "octahedron",
	Dodecahedron: "dodecahedron",
	Icosahedron:  "icosahedron",
}

func (p PlatonicName) String() string {
	if p < 0 || int(p) >= len(platonicNames) {
		return "unknown"
	}

	return platonicNames[p]
}

// platonicSkeleton returns the vertex count and sorted chords of solid p.
func platonicSkeleton(p PlatonicName) (int, []chord, bool) {
	var (
		n  int
		cs []chord
	)
	switch p {
	case Tetrahedron:
		n = 4
		cs = allPairs(n, func(int, int) bool { return true })
	case Octahedron:
		// K6 without the three antipodal pairs {0,1}, {2,3}, {4,5}.
		n = 6
		cs = allPairs(n, func(i, j int) bool { return i^1 != j })
	case Cube:
		// Q3: corners are 3-bit words; neighbours differ in one bit.
		n = 8
		cs = allPairs(n, func(i, j int) bool { x := i ^ j; return x&(x-1) == 0 })
	case Dodecahedron:
		// Top pentagon 0..4, bottom pentagon 5..9, middle 10-cycle 10..19.
		// Top spokes land on even middle vertices, bottom spokes on odd ones.
		n = 20
		cs = append(cs, ring(0, 5)...)
		cs = append(cs, ring(5, 5)...)
		cs = append(cs, ring(10, 10)...)
		for i := 0; i < 5; i++ {
			cs = append(cs, chord{U: i, V: 10 + 2*i}, chord{U: 5 + i, V: 11 + 2*i})
		}
	case Icosahedron:
		// Poles 0 and 11 over pentagons 1..5 and 6..10; top vertex i meets
		// bottom vertices i and i+1 (mod 5).
		n = 12
		cs = append(cs, ring(1, 5)...)
		cs = append(cs, ring(6, 5)...)
		for i := 0; i < 5; i++ {
			cs = append(cs,
				chord{U: 0, V: 1 + i},
				chord{U: 6 + i, V: 11},
				chord{U: 1 + i, V: 6 + i},
				chord{U: 1 + i, V: 6 + (i+1)%5},
			)
		}
	default:
		return 0, nil, false
	}
	sortChords(cs)

	return n, cs, true
}

// allPairs lists every i < j < n accepted by keep, already sorted.
func allPairs(n int, keep func(i, j int) bool) []chord {
	var cs []chord
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if keep(i, j) {
				cs = append(cs, chord{U: i, V: j})
			}
		}
	}

	return cs
}

// ring closes the cycle first, first+1, ..., first+k-1, first.
func ring(first, k int) []chord {
	cs := make([]chord, 0, k)
	for i := 0; i < k; i++ {
		u, v := first+i, first+(i+1)%k
		if u > v {
			u, v = v, u
		}
		cs = append(cs, chord{U: u, V: v})
	}

	return cs
}

func sortChords(cs []chord) {
	sort.Slice(cs, func(a, b int) bool {
		if cs[a].U != cs[b].U {
			return cs[a].U < cs[b].U
		}
		return cs[a].V < cs[b].V
	})
}
