// SPDX-License-Identifier: MIT
// Package: graphmat/builder
//
// families.go: name → Constructor dispatch for configuration files and the CLI.

package builder

import (
	"fmt"
	"sort"
	"strings"
)

const methodFamily = "Family"

var families = map[string]func(n int) Constructor{
	FamilyComplete: Complete,
	FamilyCycle:    Cycle,
	FamilyPath:     Path,
	FamilyStar:     Star,
	FamilyWheel:    Wheel,
	FamilyDiamond:  func(int) Constructor { return Diamond() },
	FamilyTheta:    func(n int) Constructor { return Theta(n, n, n) },
	FamilyBouquet:  Bouquet,
	FamilyBundle:   Bundle,

	FamilyGrid:      func(n int) Constructor { return Grid(n, n) },
	FamilyBipartite: func(n int) Constructor { return CompleteBipartite(n, n) },
	FamilyRandom:    func(n int) Constructor { return RandomSparse(n, randomFamilyDensity) },

	FamilyTetrahedron:  solid(Tetrahedron),
	FamilyCube:         solid(Cube),
	FamilyOctahedron:   solid(Octahedron),
	FamilyDodecahedron: solid(Dodecahedron),
	FamilyIcosahedron:  solid(Icosahedron),
}

func solid(p PlatonicName) func(int) Constructor {
	return func(int) Constructor { return PlatonicSolid(p, false) }
}

// Family resolves a family name (case-insensitive) to its Constructor with size n.
// For "theta", n is the length of each of the three paths; "diamond" and the
// Platonic skeletons ignore n.
func Family(name string, n int) (Constructor, error) {
	mk, ok := families[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%s: %q (known: %s): %w", methodFamily, name, strings.Join(FamilyNames(), ", "), ErrUnknownFamily)
	}

	return mk(n), nil
}

// FamilyNames returns the sorted list of names Family accepts.
func FamilyNames() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

var schemes = map[string]IDFn{
	SchemeDecimal: DefaultIDFn,
	SchemeSymbol:  SymbolIDFn,
	SchemeLetters: LetterLabelFn,
	SchemeExcel:   ExcelColumnIDFn,
	SchemeHex:     HexIDFn,
}

// Scheme resolves a naming scheme by name, for use with WithIDScheme or
// WithLabelScheme. The empty name is SchemeDecimal.
func Scheme(name string) (IDFn, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = SchemeDecimal
	}
	fn, ok := schemes[key]
	if !ok {
		return nil, fmt.Errorf("Scheme: %q: %w", name, ErrOptionViolation)
	}

	return fn, nil
}
