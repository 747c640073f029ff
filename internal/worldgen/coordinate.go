package worldgen

import "fmt"

// Coordinate is a cell position on an island grid. X grows to the right and
// Y grows downward, so Y == 0 is the top row.
type Coordinate struct {
	X, Y int
}

// String returns the "x,y" form of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Step returns the coordinate one cell away in the given direction.
// The result may be out of bounds; callers check with Grid.InBounds.
func (c Coordinate) Step(dir Direction) Coordinate {
	switch dir {
	case North:
		return Coordinate{c.X, c.Y - 1}
	case South:
		return Coordinate{c.X, c.Y + 1}
	case East:
		return Coordinate{c.X + 1, c.Y}
	case West:
		return Coordinate{c.X - 1, c.Y}
	}
	return c
}

// Direction represents a cardinal direction in the grid
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// String returns the string representation of a Direction
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// AllDirections returns all four cardinal directions
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}
