package worldgen

import (
	"fmt"
	"math/rand"
)

// RandomPoints draws count distinct cells uniformly at random from a
// width x height grid. The returned order is the draw order, which is what
// Partition uses to number regions.
func RandomPoints(rng *rand.Rand, width, height, count int) ([]Coordinate, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	total := width * height
	if count > total {
		return nil, fmt.Errorf("%w: %d points on %d cells", ErrTooManyPoints, count, total)
	}
	if count < 0 {
		count = 0
	}

	// Partial Fisher-Yates over cell indexes
	indexes := make([]int, total)
	for i := range indexes {
		indexes[i] = i
	}
	points := make([]Coordinate, 0, count)
	for i := 0; i < count; i++ {
		j := i + rng.Intn(total-i)
		indexes[i], indexes[j] = indexes[j], indexes[i]
		points = append(points, Coordinate{X: indexes[i] % width, Y: indexes[i] / width})
	}
	return points, nil
}
