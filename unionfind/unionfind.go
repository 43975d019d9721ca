// SPDX-License-Identifier: MIT
//
// Package unionfind provides a disjoint-set forest over string IDs with path
// compression and union by rank.
//
// The structure started life as the find/union closures inside a Kruskal MST
// routine; it is a standalone type so that rank, closure and spanning-forest
// code can share one implementation.
//
// Complexity:
//   - Find/Union: amortized O(α(n)).
//   - Memory: O(n).
package unionfind

// DisjointSet partitions a set of string IDs into disjoint classes.
// The zero value is not usable; build one with New.
// Not safe for concurrent use.
type DisjointSet struct {
	parent map[string]string
	rank   map[string]int
	count  int
}

// New returns a DisjointSet holding every id in ids as a singleton.
// Duplicate IDs are ignored.
func New(ids []string) *DisjointSet {
	d := &DisjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		d.Add(id)
	}

	return d
}

// Add inserts id as a new singleton. It reports false if id was already present.
func (d *DisjointSet) Add(id string) bool {
	if _, ok := d.parent[id]; ok {
		return false
	}
	d.parent[id] = id
	d.rank[id] = 0
	d.count++

	return true
}

// Has reports whether id belongs to the structure.
func (d *DisjointSet) Has(id string) bool {
	_, ok := d.parent[id]

	return ok
}

// Find returns the representative of id's class. Unknown IDs are added first.
func (d *DisjointSet) Find(id string) string {
	if _, ok := d.parent[id]; !ok {
		d.Add(id)
		return id
	}
	// Iterative find with path halving to avoid deep recursion.
	for d.parent[id] != id {
		d.parent[id] = d.parent[d.parent[id]]
		id = d.parent[id]
	}

	return id
}

// Union merges the classes of a and b. It reports whether they were distinct.
func (d *DisjointSet) Union(a, b string) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
	d.count--

	return true
}

// Same reports whether a and b share a class.
func (d *DisjointSet) Same(a, b string) bool { return d.Find(a) == d.Find(b) }

// Count returns the number of disjoint classes.
func (d *DisjointSet) Count() int { return d.count }

// Len returns the number of IDs held.
func (d *DisjointSet) Len() int { return len(d.parent) }
