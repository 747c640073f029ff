package worldgen

import (
	"fmt"
	"math/rand"
)

// Partition assigns every cell of a width x height grid to its nearest seed
// point. Seed i (0-based) gets region id i+1. Cells equidistant from several
// seeds pick one of them uniformly at random.
func Partition(rng *rand.Rand, width, height int, seeds []Coordinate) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("%w: no seed points", ErrBadSeedPoints)
	}

	for i, s := range seeds {
		if !g.InBounds(s) {
			return nil, fmt.Errorf("%w: %s is outside the grid", ErrBadSeedPoints, s)
		}
		if g.At(s) != 0 {
			return nil, fmt.Errorf("%w: %s appears twice", ErrBadSeedPoints, s)
		}
		g.Set(s, i+1)
	}

	tied := make([]int, 0, len(seeds))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Coordinate{x, y}
			if g.At(c) != 0 {
				continue // seed point
			}

			// Squared integer distances compare exactly, so ties are real ties
			best := -1
			tied = tied[:0]
			for i, s := range seeds {
				d := squaredDistance(c, s)
				switch {
				case best < 0 || d < best:
					best = d
					tied = append(tied[:0], i)
				case d == best:
					tied = append(tied, i)
				}
			}

			pick := tied[0]
			if len(tied) > 1 {
				pick = tied[rng.Intn(len(tied))]
			}
			g.Set(c, pick+1)
		}
	}
	return g, nil
}

func squaredDistance(a, b Coordinate) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
