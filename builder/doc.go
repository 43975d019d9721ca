// Package builder provides deterministic, labelled graph fixtures for graphic matroids.
//
// Every constructor is a Constructor closure applied by BuildGraph (or
// BuildMultigraph) to a fresh *core.Graph. Edge labels come from a single
// counter per build, so composed constructors never collide:
//
//	g, err := builder.BuildMultigraph(nil, builder.Cycle(3), builder.Path(2))
//	// edges "0","1","2" form the triangle; "3" is the path edge.
//
// Vertex naming is pluggable via WithIDScheme (SymbolIDFn, ExcelColumnIDFn,
// HexIDFn, ...); edge naming via WithLabelScheme.
//
// Families:
//
//	Complete(n)  Cycle(n)  Path(n)  Star(n)  Wheel(n)
//	Diamond()    Theta(a, b, c)     Bundle(n)  Bouquet(n)
//	CompleteBipartite(m, n)  Grid(rows, cols)  PlatonicSolid(name, hub)
//	RandomSparse(n, p)       // needs WithSeed for 0<p<1
//
// Family(name, n) resolves configuration names such as "wheel" or "theta".
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrOptionViolation, ErrUnknownFamily, ErrConstructFailed);
// policy errors from core pass through wrapped.
package builder
