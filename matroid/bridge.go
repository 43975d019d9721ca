// SPDX-License-Identifier: MIT
// Package: graphmat/matroid
//
// bridge.go: isomorphism and minor queries.
//
// Whitney: for 3-connected graphs, graph isomorphism and matroid isomorphism
// coincide. When the other model reports IsThreeConnected, the query is
// answered by the isomorph package on the simple graphs and its vertex
// certificate is translated into an element certificate. Otherwise the
// configured Fallback answers.

package matroid

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/katalvlaran/graphmat/connectivity"
	"github.com/katalvlaran/graphmat/core"
	"github.com/katalvlaran/graphmat/isomorph"
	"github.com/katalvlaran/graphmat/unionfind"
)

// MinorCertificate witnesses N as a minor of M: M / Contractions ∖ Deletions
// is isomorphic to N through Map (minor element → element of N).
type MinorCertificate struct {
	Contractions []string
	Deletions    []string
	Map          map[string]string
}

// IsThreeConnected reports whether the graph is simple, has at least four
// vertices and stays connected after removing any two vertices.
func (m *Matroid) IsThreeConnected() bool {
	if len(m.g.Loops()) > 0 || m.g.VertexCount() < 4 {
		return false
	}
	if core.SimpleView(m.g).EdgeCount() != m.g.EdgeCount() {
		return false
	}

	return connectivity.IsTriconnected(m.g)
}

// IsIsomorphic reports whether M and other are isomorphic matroids.
func (m *Matroid) IsIsomorphic(other *Matroid) (bool, error) {
	_, ok, err := m.Isomorphism(other)

	return ok, err
}

// Isomorphism returns an element bijection E(M) → E(other) preserving the
// rank function, if one exists.
//
// Dispatch follows other alone: when other is 3-connected the graph oracle
// decides, otherwise the Fallback does. A loop, parallel pair or 2-separation
// in M then fails the size or graph isomorphism check, as the matroids differ.
func (m *Matroid) Isomorphism(other *Matroid) (map[string]string, bool, error) {
	if other == nil {
		return nil, false, fmt.Errorf("matroid: Isomorphism: %w", ErrNilGraph)
	}
	if !other.IsThreeConnected() {
		m.opts.logger.Debug("matroid: isomorphism via fallback", slog.Int("elements", m.Size()))
		return m.opts.fallback.Isomorphism(m, other)
	}
	m.opts.logger.Debug("matroid: isomorphism via graph oracle", slog.Int("elements", m.Size()))
	if m.Size() != other.Size() {
		return nil, false, nil
	}

	vmap, ok, err := isomorph.Isomorphism(core.SimpleView(m.g), core.SimpleView(other.g))
	if err != nil {
		return nil, false, fmt.Errorf("matroid: Isomorphism: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	emap, err := m.translate(vmap, other)
	if err != nil {
		return nil, false, fmt.Errorf("matroid: Isomorphism: %w", err)
	}

	return emap, true, nil
}

// translate turns a vertex bijection into an element bijection. Every edge
// must land on exactly one edge between the images of its endpoints, and no
// target edge may be hit twice.
func (m *Matroid) translate(vmap map[string]string, other *Matroid) (map[string]string, error) {
	out := make(map[string]string, m.Size())
	hit := make(map[string]struct{}, m.Size())
	for _, x := range m.groundset {
		e := m.edges[x]
		fu, okU := vmap[e.From]
		fv, okV := vmap[e.To]
		if !okU || !okV {
			return nil, fmt.Errorf("%s: endpoint unmapped: %w", x, ErrCertificateViolation)
		}
		between := other.g.EdgesBetween(fu, fv)
		if len(between) != 1 {
			return nil, fmt.Errorf("%s: %d edges between %s and %s: %w", x, len(between), fu, fv, ErrCertificateViolation)
		}
		y := between[0].ID
		if _, dup := hit[y]; dup {
			return nil, fmt.Errorf("%s: target %s hit twice: %w", x, y, ErrCertificateViolation)
		}
		hit[y] = struct{}{}
		out[x] = y
	}

	return out, nil
}

// HasMinor reports whether other is isomorphic to a minor of M and returns a
// certificate when it is. As with Isomorphism, only other decides between
// the graph oracle and the Fallback.
func (m *Matroid) HasMinor(other *Matroid) (*MinorCertificate, bool, error) {
	if other == nil {
		return nil, false, fmt.Errorf("matroid: HasMinor: %w", ErrNilGraph)
	}
	if !other.IsThreeConnected() {
		m.opts.logger.Debug("matroid: minor via fallback", slog.Int("elements", m.Size()))
		return m.opts.fallback.HasMinor(m, other)
	}
	m.opts.logger.Debug("matroid: minor via graph oracle", slog.Int("elements", m.Size()))

	branches, ok, err := isomorph.Minor(core.SimpleView(m.g), core.SimpleView(other.g))
	if err != nil {
		return nil, false, fmt.Errorf("matroid: HasMinor: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	cert, err := m.minorFromBranches(branches, other)
	if err != nil {
		return nil, false, fmt.Errorf("matroid: HasMinor: %w", err)
	}

	return cert, true, nil
}

// minorFromBranches contracts a spanning tree of every branch set, keeps one
// edge per pattern edge between branch sets and deletes everything else, then
// checks the result against other.
func (m *Matroid) minorFromBranches(branches map[string][]string, other *Matroid) (*MinorCertificate, error) {
	owner := make(map[string]string)
	for h, set := range branches {
		for _, v := range set {
			owner[v] = h
		}
	}

	cert := &MinorCertificate{}
	trees := unionfind.New(nil)
	used := make(map[[2]string]bool)
	for _, x := range m.groundset {
		e := m.edges[x]
		hu, okU := owner[e.From]
		hv, okV := owner[e.To]
		switch {
		case !okU || !okV:
			cert.Deletions = append(cert.Deletions, x)
		case hu == hv:
			if trees.Union(e.From, e.To) {
				cert.Contractions = append(cert.Contractions, x)
			} else {
				cert.Deletions = append(cert.Deletions, x)
			}
		default:
			pair := [2]string{hu, hv}
			sort.Strings(pair[:])
			if used[pair] || !other.g.HasEdge(hu, hv) {
				cert.Deletions = append(cert.Deletions, x)
				continue
			}
			used[pair] = true
		}
	}

	minor, err := m.Minor(cert.Contractions, cert.Deletions)
	if err != nil {
		return nil, err
	}
	emap, ok, err := minor.Isomorphism(other)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("branch sets do not yield the pattern: %w", ErrCertificateViolation)
	}
	cert.Map = emap

	return cert, nil
}
