// SPDX-License-Identifier: MIT

package connectivity

import "github.com/katalvlaran/graphmat/core"

// queueItem pairs a vertex ID with its BFS depth, its parent and the edge it
// was reached through.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
	via    string // edge ID; empty for root
}

// ReachResult is the breadth-first tree grown from one start vertex.
type ReachResult struct {
	// Order lists reached vertices in visit sequence, start first.
	Order []string
	// Depth is the number of edges from the start to each reached vertex.
	Depth map[string]int
	// Parent maps each reached non-start vertex to its BFS predecessor.
	Parent map[string]string
	// Via maps each reached non-start vertex to the edge ID used to reach it.
	Via map[string]string
}

// walker encapsulates mutable BFS state. Skipped vertices and edges are
// treated as absent.
type walker struct {
	graph     *core.Graph
	skipVerts map[string]bool
	skipEdges map[string]bool
	queue     []queueItem
	visited   map[string]bool
	res       *ReachResult
}

func newWalker(g *core.Graph) *walker {
	n := g.VertexCount()
	return &walker{
		graph:   g,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &ReachResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
			Via:    make(map[string]string, n),
		},
	}
}

// Reach runs breadth-first search on g from start. Edges are explored in
// Edge.ID order, so the tree is deterministic. Loops never extend the tree.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input.
func Reach(g *core.Graph, start string) (*ReachResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}
	w := newWalker(g)
	w.reach(start)

	return w.res, nil
}

// reach visits every vertex reachable from start and returns them in visit
// order. Results accumulate in w.res across calls.
func (w *walker) reach(start string) []string {
	from := len(w.res.Order)
	w.enqueue(queueItem{id: start})
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		// Neighbors cannot fail here: the id came from the graph itself.
		edges, _ := w.graph.Neighbors(item.id)
		for _, e := range edges {
			if w.skipEdges[e.ID] {
				continue
			}
			nbr := e.Other(item.id)
			if w.skipVerts[nbr] || w.visited[nbr] {
				continue
			}
			w.enqueue(queueItem{id: nbr, depth: item.depth + 1, parent: item.id, via: e.ID})
		}
	}

	return w.res.Order[from:]
}

func (w *walker) enqueue(item queueItem) {
	w.visited[item.id] = true
	w.res.Depth[item.id] = item.depth
	if item.parent != "" {
		w.res.Parent[item.id] = item.parent
		w.res.Via[item.id] = item.via
	}
	w.queue = append(w.queue, item)
}

// countComponents returns the number of components once skipped items are removed.
func (w *walker) countComponents() int {
	count := 0
	for _, v := range w.graph.Vertices() {
		if w.skipVerts[v] || w.visited[v] {
			continue
		}
		w.reach(v)
		count++
	}

	return count
}
