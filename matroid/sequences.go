// SPDX-License-Identifier: MIT
// Package: graphmat/matroid
//
// sequences.go: lazy enumerations of single-element extensions and coextensions.
//
// Each sequence is single-use: ranging over it a second time yields nothing.
// Models are built only as the consumer pulls them, so stopping early is cheap.

package matroid

import (
	"fmt"
	"iter"
	"log/slog"
	"sync/atomic"

	"github.com/katalvlaran/graphmat/core"
)

// Extensions enumerates the graphic extensions of M by label: one loop at the
// first candidate vertex, then one edge for every unordered pair of candidates.
// vertices == nil means every vertex. With no candidates it yields a single
// model with an isolated loop. No coloop extension is ever produced.
func (m *Matroid) Extensions(label string, vertices []string) (iter.Seq[*Matroid], error) {
	label, err := m.newElement(label)
	if err != nil {
		return nil, fmt.Errorf("matroid: Extensions: %w", err)
	}
	vs, err := m.candidates(vertices)
	if err != nil {
		return nil, fmt.Errorf("matroid: Extensions: %w", err)
	}

	return m.once("Extensions", func(yield func(*Matroid) bool) error {
		if len(vs) == 0 {
			g := m.g.Clone()
			base := m.baseVertex(g, "")
			if err := g.AddEdgeWithID(label, base, base); err != nil {
				return err
			}
			out, err := m.derive("Extensions", g)
			if err != nil {
				return err
			}
			yield(out)
			return nil
		}

		out, err := m.Extension(vs[0], vs[0], label)
		if err != nil || !yield(out) {
			return err
		}
		for i := range vs {
			for j := i + 1; j < len(vs); j++ {
				if out, err = m.Extension(vs[i], vs[j], label); err != nil || !yield(out) {
					return err
				}
			}
		}
		return nil
	}), nil
}

// Coextensions enumerates the graphic coextensions of M by label:
//
//  1. one coloop: a pendant edge at the first candidate;
//  2. one series extension per edge incident to a candidate (the edge is
//     subdivided and label becomes its second half);
//  3. for each candidate of degree > 2, every split of its incident labels
//     into two parts of size ≥ 2, each unordered split once.
//
// vertices == nil means every vertex. With no candidates it yields a single
// model with a coloop between two fresh vertices.
func (m *Matroid) Coextensions(vertices []string, label string) (iter.Seq[*Matroid], error) {
	label, err := m.newElement(label)
	if err != nil {
		return nil, fmt.Errorf("matroid: Coextensions: %w", err)
	}
	vs, err := m.candidates(vertices)
	if err != nil {
		return nil, fmt.Errorf("matroid: Coextensions: %w", err)
	}

	return m.once("Coextensions", func(yield func(*Matroid) bool) error {
		// 1. coloop
		g := m.g.Clone()
		base := g.FreshVertexID()
		if len(vs) > 0 {
			base = vs[0]
		} else if err := g.AddVertex(base); err != nil {
			return err
		}
		if err := g.AddEdgeWithID(label, base, g.FreshVertexID()); err != nil {
			return err
		}
		out, err := m.derive("Coextensions", g)
		if err != nil || !yield(out) || len(vs) == 0 {
			return err
		}

		// 2. series extensions
		for _, e := range m.g.IncidentEdges(vs) {
			if out, err = m.subdivide(e, label); err != nil || !yield(out) {
				return err
			}
		}

		// 3. vertex splits
		for _, u := range vs {
			if d, _ := m.g.Degree(u); d <= 2 {
				continue
			}
			var splitErr error
			ok := true
			if err = m.splits(u, func(part []string) bool {
				var next *Matroid
				if next, splitErr = m.Coextension(u, part, label); splitErr != nil {
					return false
				}
				ok = yield(next)
				return ok
			}); err != nil {
				return err
			}
			if splitErr != nil || !ok {
				return splitErr
			}
		}
		return nil
	}), nil
}

// subdivide replaces e = x–y by x–w (keeping e's label) and w–y labelled label.
func (m *Matroid) subdivide(e core.Edge, label string) (*Matroid, error) {
	g := m.g.Clone()
	w := g.FreshVertexID()
	if err := g.RemoveEdge(e.ID); err != nil {
		return nil, err
	}
	if err := g.AddEdgeWithID(e.ID, e.From, w); err != nil {
		return nil, err
	}
	if err := g.AddEdgeWithID(label, w, e.To); err != nil {
		return nil, err
	}

	return m.derive("Coextensions", g)
}

// splits calls visit with one side of every unordered split of u's incident
// labels into parts of size ≥ 2. When a part is exactly half, the last label
// is pinned to it so complementary halves appear once. visit returns false to stop.
func (m *Matroid) splits(u string, visit func(part []string) bool) error {
	nbs, err := m.g.Neighbors(u)
	if err != nil {
		return err
	}
	labels := make([]string, len(nbs))
	for i, e := range nbs {
		labels[i] = e.ID
	}
	n := len(labels)

	for size := 2; 2*size <= n; size++ {
		if 2*size == n {
			pinned := labels[n-1]
			if !combinations(labels[:n-1], size-1, func(c []string) bool {
				return visit(append(c, pinned))
			}) {
				return nil
			}
			continue
		}
		if !combinations(labels, size, visit) {
			return nil
		}
	}

	return nil
}

// combinations calls visit with every k-subset of items in lexicographic
// index order. The slice passed to visit is fresh. Returns false if visit stopped.
func combinations(items []string, k int, visit func([]string) bool) bool {
	if k < 0 || k > len(items) {
		return true
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		c := make([]string, k, k+1)
		for i, j := range idx {
			c[i] = items[j]
		}
		if !visit(c) {
			return false
		}
		i := k - 1
		for i >= 0 && idx[i] == len(items)-k+i {
			i--
		}
		if i < 0 {
			return true
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// candidates resolves the vertex list of an enumeration. Repeats are
// dropped; the first occurrence keeps its position.
func (m *Matroid) candidates(vertices []string) ([]string, error) {
	if vertices == nil {
		return m.g.Vertices(), nil
	}
	seen := make(map[string]bool, len(vertices))
	out := make([]string, 0, len(vertices))
	for _, v := range vertices {
		if !m.g.HasVertex(v) {
			return nil, fmt.Errorf("%q: %w", v, ErrVerticesNotInGraph)
		}
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}

	return out, nil
}

// once turns body into a single-use sequence. Errors inside body end the
// sequence and are logged; inputs were validated up front, so they signal a bug.
func (m *Matroid) once(op string, body func(yield func(*Matroid) bool) error) iter.Seq[*Matroid] {
	var used atomic.Bool

	return func(yield func(*Matroid) bool) {
		if used.Swap(true) {
			return
		}
		if err := body(yield); err != nil {
			m.opts.logger.Error("matroid: sequence aborted", slog.String("op", op), slog.Any("err", err))
		}
	}
}
