// SPDX-License-Identifier: MIT
// Package: graphmat/matroid
//
// matroid.go: the graph model: a connected labelled multigraph whose edge
// IDs are the ground-set elements.
//
// Invariants:
//   • Every edge ID of m.g is an element and every element is an edge ID.
//   • m.g is connected (or empty); rank(E) = |V| − 1.
//   • m.g is private: nothing returned by a method aliases it, and no method mutates it.

package matroid

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/graphmat/connectivity"
	"github.com/katalvlaran/graphmat/core"
)

// Matroid is the graphic matroid M(G) of a connected multigraph with loops.
// A *Matroid is immutable and safe for concurrent readers.
type Matroid struct {
	g         *core.Graph
	edges     map[string]core.Edge
	groundset []string
	vertexMap map[string]string
	opts      options
}

// New builds the graphic matroid of g. g is copied, never retained.
//
// Labels come from WithGroundset when it is valid, otherwise from g's own
// edge IDs. Disconnected input is made connected by identifying one vertex of
// each extra component with a vertex already kept; VertexMap records where
// every input vertex ended up.
func New(g *core.Graph, opts ...Option) (*Matroid, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)

	src := g.Edges()
	labels := make([]string, len(src))
	for i, e := range src {
		labels[i] = e.ID
	}
	if o.hasGroundset {
		if validLabels(o.groundset, len(src)) {
			labels = o.groundset
		} else {
			o.logger.Debug("matroid: groundset rejected, generating labels",
				slog.Int("supplied", len(o.groundset)), slog.Int("edges", len(src)))
			for i := range labels {
				labels[i] = strconv.Itoa(i)
			}
		}
	}

	vmap, err := connect(g)
	if err != nil {
		return nil, fmt.Errorf("matroid: New: %w", err)
	}

	out := core.NewMultigraph()
	for v, rep := range vmap {
		if v == rep {
			if err = out.AddVertex(v); err != nil {
				return nil, fmt.Errorf("matroid: New: %w", err)
			}
		} else {
			o.logger.Debug("matroid: merged component", slog.String("vertex", v), slog.String("into", rep))
		}
	}
	for i, e := range src {
		if err = out.AddEdgeWithID(labels[i], vmap[e.From], vmap[e.To]); err != nil {
			return nil, fmt.Errorf("matroid: New: %w", err)
		}
	}

	return wrap(out, vmap, o), nil
}

// wrap indexes a connected multigraph that the caller hands over.
func wrap(g *core.Graph, vmap map[string]string, o options) *Matroid {
	m := &Matroid{
		g:         g,
		edges:     make(map[string]core.Edge, g.EdgeCount()),
		vertexMap: vmap,
		opts:      o,
	}
	for _, e := range g.Edges() {
		m.edges[e.ID] = e
		m.groundset = append(m.groundset, e.ID)
	}

	return m
}

// validLabels reports whether labels is a usable groundset for n edges.
func validLabels(labels []string, n int) bool {
	if len(labels) != n {
		return false
	}
	seen := make(map[string]struct{}, n)
	for _, l := range labels {
		if l == "" {
			return false
		}
		if _, dup := seen[l]; dup {
			return false
		}
		seen[l] = struct{}{}
	}

	return true
}

// connect maps every vertex of g to its representative in the connected model.
// The last component is repeatedly glued to the last vertex of the one before it;
// chains are then resolved so every value is a surviving vertex.
func connect(g *core.Graph) (map[string]string, error) {
	comps, err := connectivity.Components(g)
	if err != nil {
		return nil, err
	}
	vmap := make(map[string]string, g.VertexCount())
	for _, v := range g.Vertices() {
		vmap[v] = v
	}
	for len(comps) > 1 {
		last := comps[len(comps)-1]
		comps = comps[:len(comps)-1]
		prev := comps[len(comps)-1]
		vmap[last[0]] = prev[len(prev)-1]
		comps[len(comps)-1] = append(prev, last...)
	}
	for v := range vmap {
		rep := vmap[v]
		for vmap[rep] != rep {
			rep = vmap[rep]
		}
		vmap[v] = rep
	}

	return vmap, nil
}

// derive wraps a freshly edited private graph, keeping this model's options.
func (m *Matroid) derive(op string, g *core.Graph) (*Matroid, error) {
	opts := []Option{WithLogger(m.opts.logger), WithFallback(m.opts.fallback)}
	out, err := New(g, opts...)
	if err != nil {
		return nil, fmt.Errorf("matroid: %s: %w", op, err)
	}
	m.opts.logger.Debug("matroid: derived model", slog.String("op", op),
		slog.Int("elements", out.Size()), slog.Int("rank", out.FullRank()))

	return out, nil
}

// Groundset returns the elements in ascending order.
func (m *Matroid) Groundset() []string {
	return append([]string(nil), m.groundset...)
}

// Size returns |E|.
func (m *Matroid) Size() int { return len(m.groundset) }

// Has reports whether x is an element.
func (m *Matroid) Has(x string) bool {
	_, ok := m.edges[x]
	return ok
}

// Graph returns a private copy of the underlying multigraph.
func (m *Matroid) Graph() *core.Graph { return m.g.Clone() }

// VertexMap returns a copy of the input-vertex → model-vertex map built by New.
func (m *Matroid) VertexMap() map[string]string {
	out := make(map[string]string, len(m.vertexMap))
	for k, v := range m.vertexMap {
		out[k] = v
	}

	return out
}

// Vertices returns the model's vertices in ascending order.
func (m *Matroid) Vertices() []string { return m.g.Vertices() }

// IsValid reports whether the matroid axioms hold. Graphic matroids satisfy
// them by construction.
func (m *Matroid) IsValid() bool { return true }

// String summarises the model, e.g. "Graphic matroid of rank 4 on 10 elements".
func (m *Matroid) String() string {
	return fmt.Sprintf("Graphic matroid of rank %d on %d elements", m.FullRank(), m.Size())
}

// GroundsetToEdges returns the edges carrying the elements of X, in X's order.
func (m *Matroid) GroundsetToEdges(X []string) ([]core.Edge, error) {
	out := make([]core.Edge, len(X))
	for i, x := range X {
		e, ok := m.edges[x]
		if !ok {
			return nil, fmt.Errorf("%q: %w", x, ErrNotASubset)
		}
		out[i] = e
	}

	return out, nil
}

// SubgraphFromSet returns the sub-multigraph spanned by X's edges alone.
// It may be disconnected and contains only the endpoints of X.
func (m *Matroid) SubgraphFromSet(X []string) (*core.Graph, error) {
	if err := m.check(X); err != nil {
		return nil, err
	}

	return core.EdgeSubgraph(m.g, X)
}

// Loops returns the labels of loop edges, ascending.
func (m *Matroid) Loops() []string {
	var out []string
	for _, e := range m.g.Loops() {
		out = append(out, e.ID)
	}

	return out
}

// Coloops returns the labels of bridges, ascending. A coloop lies in every basis.
func (m *Matroid) Coloops() []string {
	var out []string
	for _, x := range m.groundset {
		if cut, err := connectivity.IsCutEdge(m.g, x); err == nil && cut {
			out = append(out, x)
		}
	}

	return out
}

// Equal reports whether both models carry identical labelled graphs.
// Isomorphic models with different vertex names are not Equal.
func (m *Matroid) Equal(other *Matroid) bool {
	if m == nil || other == nil {
		return m == other
	}

	return core.Equal(m.g, other.g)
}

// Hash digests the set of vertex stars (labels incident to each vertex).
// It ignores vertex names, so Equal models hash equal; collisions between
// unequal models are allowed.
func (m *Matroid) Hash() uint64 {
	stars := make([]string, 0, m.g.VertexCount())
	seen := make(map[string]struct{})
	for _, v := range m.g.Vertices() {
		nbs, _ := m.g.Neighbors(v)
		labels := make([]string, len(nbs))
		for i, e := range nbs {
			labels[i] = e.ID
		}
		sort.Strings(labels)
		star := strings.Join(labels, "\x1f")
		if _, dup := seen[star]; dup {
			continue
		}
		seen[star] = struct{}{}
		stars = append(stars, star)
	}
	sort.Strings(stars)

	d := xxhash.New()
	for _, s := range stars {
		_, _ = d.WriteString(s)
		_, _ = d.WriteString("\x1e")
	}

	return d.Sum64()
}

// check validates that X ⊆ E.
func (m *Matroid) check(X []string) error {
	for _, x := range X {
		if _, ok := m.edges[x]; !ok {
			return fmt.Errorf("%q: %w", x, ErrNotASubset)
		}
	}

	return nil
}

// complement returns E \ X in ascending order. X must be validated.
func (m *Matroid) complement(X []string) []string {
	in := toSet(X)
	out := make([]string, 0, len(m.groundset))
	for _, x := range m.groundset {
		if _, ok := in[x]; !ok {
			out = append(out, x)
		}
	}

	return out
}

// span returns the set of endpoints of X's edges. X must be validated.
func (m *Matroid) span(X []string) map[string]struct{} {
	out := make(map[string]struct{}, 2*len(X))
	for _, x := range X {
		e := m.edges[x]
		out[e.From] = struct{}{}
		out[e.To] = struct{}{}
	}

	return out
}
