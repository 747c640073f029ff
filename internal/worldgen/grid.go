// Package worldgen builds the numeric region map of an island: seed point
// selection, Voronoi partitioning, lone cell repair, region adjacency and
// size ranking.
package worldgen

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("worldgen: invalid grid dimensions")
	ErrTooManyPoints     = errors.New("worldgen: more seed points requested than grid cells")
	ErrBadSeedPoints     = errors.New("worldgen: seed points must be distinct, in bounds and non-empty")
)

// Grid holds one region id per cell. Id 0 means "unassigned"; every cell of
// a partitioned grid carries an id >= 1.
type Grid struct {
	Width, Height int
	cells         []int
}

// NewGrid creates a zero-filled grid of the given size.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]int, width*height),
	}, nil
}

// GridFromRows builds a grid from rows of ids, rows[y][x]. Mostly useful for
// tests and tools that want to describe a map literally.
func GridFromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty rows", ErrInvalidDimensions)
	}
	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != g.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, y, len(row), g.Width)
		}
		copy(g.cells[y*g.Width:], row)
	}
	return g, nil
}

// InBounds reports whether c lies inside the grid
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// At returns the id stored at c. c must be in bounds.
func (g *Grid) At(c Coordinate) int {
	return g.cells[g.index(c)]
}

// Set stores id at c. c must be in bounds.
func (g *Grid) Set(c Coordinate, id int) {
	g.cells[g.index(c)] = id
}

func (g *Grid) index(c Coordinate) int {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("worldgen: coordinate %s outside %dx%d grid", c, g.Width, g.Height))
	}
	return c.Y*g.Width + c.X
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// Rows returns a copy of the grid as rows[y][x]
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.Height)
	for y := range rows {
		rows[y] = make([]int, g.Width)
		copy(rows[y], g.cells[y*g.Width:(y+1)*g.Width])
	}
	return rows
}

// Neighbors returns the in-bounds orthogonal neighbors of c, in
// North, East, South, West order.
func (g *Grid) Neighbors(c Coordinate) []Coordinate {
	neighbors := make([]Coordinate, 0, 4)
	for _, dir := range AllDirections() {
		n := c.Step(dir)
		if g.InBounds(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Each calls fn for every cell in row-major order, top row first.
func (g *Grid) Each(fn func(c Coordinate, id int)) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			fn(Coordinate{x, y}, g.cells[y*g.Width+x])
		}
	}
}

// IsAlone reports whether no orthogonal neighbor of c shares its id
func (g *Grid) IsAlone(c Coordinate) bool {
	id := g.At(c)
	for _, n := range g.Neighbors(c) {
		if g.At(n) == id {
			return false
		}
	}
	return true
}
