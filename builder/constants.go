// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

// CenterVertexID is the identifier for the hub vertex in Star, Wheel and
// stellated Platonic solids.
const CenterVertexID = "Center"

// Minimum sizes shared by constructors and Family().
const (
	MinCompleteNodes = 1
	MinCycleNodes    = 3
	MinPathNodes     = 2
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinGridDim       = 1
	MinPartitionSize = 1
	MinThetaPath     = 1
	MinBundleEdges   = 1
	MinBouquetLoops  = 1
)

// Probability bounds for RandomSparse (inclusive).
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// Family names understood by Family().
const (
	FamilyComplete = "complete"
	FamilyCycle    = "cycle"
	FamilyPath     = "path"
	FamilyStar     = "star"
	FamilyWheel    = "wheel"
	FamilyDiamond  = "diamond"
	FamilyTheta    = "theta"
	FamilyBouquet  = "bouquet"
	FamilyBundle   = "bundle"

	FamilyGrid      = "grid"      // n×n lattice
	FamilyBipartite = "bipartite" // K_{n,n}
	FamilyRandom    = "random"    // G(n, 1/2); needs WithSeed or WithRand

	// Platonic skeletons ignore n.
	FamilyTetrahedron  = "tetrahedron"
	FamilyCube         = "cube"
	FamilyOctahedron   = "octahedron"
	FamilyDodecahedron = "dodecahedron"
	FamilyIcosahedron  = "icosahedron"
)

// Naming schemes understood by Scheme().
const (
	SchemeDecimal = "decimal"
	SchemeSymbol  = "symbol"
	SchemeLetters = "letters"
	SchemeExcel   = "excel"
	SchemeHex     = "hex"
)

// randomFamilyDensity is the edge probability of the "random" family.
const randomFamilyDensity = 0.5
