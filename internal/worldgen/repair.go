package worldgen

import "math/rand"

// RepairLoneCells returns a copy of g in which every lone cell (no
// orthogonal neighbor with the same id) has taken the id of a random
// neighbor. Neighbor ids are drawn from the list of neighbor cells, so an id
// held by two neighbors is twice as likely.
//
// The pass runs once in row-major order and edits the copy in place. Only
// lone cells change, so a cell sharing its id with a neighbor keeps that
// neighbor, and a repaired cell pairs with the neighbor it copied. One pass
// therefore leaves no lone cells on any grid with two or more cells. A
// region whose only cell is repaired disappears from the map.
func RepairLoneCells(rng *rand.Rand, g *Grid) *Grid {
	out := g.Clone()
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			c := Coordinate{x, y}
			if !out.IsAlone(c) {
				continue
			}
			neighbors := out.Neighbors(c)
			if len(neighbors) == 0 {
				continue // 1x1 grid
			}
			out.Set(c, out.At(neighbors[rng.Intn(len(neighbors))]))
		}
	}
	return out
}

// LoneCells lists the cells of g that share their id with no neighbor
func LoneCells(g *Grid) []Coordinate {
	var lone []Coordinate
	g.Each(func(c Coordinate, _ int) {
		if len(g.Neighbors(c)) > 0 && g.IsAlone(c) {
			lone = append(lone, c)
		}
	})
	return lone
}
