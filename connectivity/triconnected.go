// SPDX-License-Identifier: MIT

package connectivity

import "github.com/katalvlaran/graphmat/core"

// IsTriconnected reports whether g is 3-vertex-connected: it has at least
// four vertices and stays connected after removing any one or two vertices.
// Loops and parallel edges do not affect the answer; callers that need a
// simple graph must check that separately.
//
// Complexity: O(V²·(V + E)).
func IsTriconnected(g *core.Graph) bool {
	if g == nil {
		return false
	}
	vs := g.Vertices()
	if len(vs) < minTriconnectedOrder || !IsConnected(g) {
		return false
	}
	for i := range vs {
		for j := i; j < len(vs); j++ {
			if !connectedWithout(g, vs, vs[i], vs[j]) {
				return false
			}
		}
	}

	return true
}

// connectedWithout reports whether g minus vertices a and b (a may equal b) is connected.
func connectedWithout(g *core.Graph, vs []string, a, b string) bool {
	w := newWalker(g)
	w.skipVerts = map[string]bool{a: true, b: true}
	remaining := len(vs) - len(w.skipVerts)
	for _, v := range vs {
		if !w.skipVerts[v] {
			return len(w.reach(v)) == remaining
		}
	}

	return true
}
