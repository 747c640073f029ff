package worldgen

import "sort"

// CellCounts returns the number of cells each region id covers
func CellCounts(g *Grid) map[int]int {
	counts := make(map[int]int)
	g.Each(func(_ Coordinate, id int) {
		counts[id]++
	})
	return counts
}

// RankBySize returns the region ids of g from largest to smallest region.
// Equal sizes are ordered by ascending id.
func RankBySize(g *Grid) []int {
	counts := CellCounts(g)
	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}
