package worldgen

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Adjacency maps each region id to the set of region ids that touch it
// orthogonally. Every id present in the grid has an entry, possibly empty.
type Adjacency map[int]mapset.Set[int]

// BuildAdjacency scans every cell of g and records the ids of its
// orthogonal neighbors against the cell's own id. Because every border is
// seen from both sides, the result is symmetric.
func BuildAdjacency(g *Grid) Adjacency {
	adj := make(Adjacency)
	g.Each(func(c Coordinate, id int) {
		set, ok := adj[id]
		if !ok {
			set = mapset.New[int]()
			adj[id] = set
		}
		for _, n := range g.Neighbors(c) {
			if other := g.At(n); other != id {
				set.Put(other)
			}
		}
	})
	return adj
}

// Neighbors returns the ids adjacent to id in ascending order
func (a Adjacency) Neighbors(id int) []int {
	set, ok := a[id]
	if !ok {
		return nil
	}
	ids := make([]int, 0, set.Size())
	set.Each(func(other int) {
		ids = append(ids, other)
	})
	sort.Ints(ids)
	return ids
}

// Borders reports whether regions from and to touch
func (a Adjacency) Borders(from, to int) bool {
	set, ok := a[from]
	return ok && set.Has(to)
}

// IDs returns every region id in ascending order
func (a Adjacency) IDs() []int {
	ids := make([]int, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
