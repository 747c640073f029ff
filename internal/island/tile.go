package island

import (
	"github.com/labenh526/Island/internal/region"
	"github.com/labenh526/Island/internal/worldgen"
)

// Tile is one cell of an island. Tiles are owned by their island and only
// handed out as pointers into it.
type Tile struct {
	island   *Island
	coord    worldgen.Coordinate
	regionID int
	treasure bool
}

// Island returns the island the tile belongs to
func (t *Tile) Island() *Island { return t.island }

// Coordinates returns the tile position
func (t *Tile) Coordinates() worldgen.Coordinate { return t.coord }

// RegionID returns the numeric id of the tile's region
func (t *Tile) RegionID() int { return t.regionID }

// Region returns the region the tile belongs to
func (t *Tile) Region() region.Region {
	return t.island.regions[t.regionID]
}

// HasTreasure reports whether the island's treasure is on this tile
func (t *Tile) HasTreasure() bool { return t.treasure }

// Neighbor returns the adjacent tile in dir, or nil at the island edge
func (t *Tile) Neighbor(dir worldgen.Direction) *Tile {
	return t.island.tileAt(t.coord.Step(dir))
}

// Above returns the tile one row up, or nil on the top row
func (t *Tile) Above() *Tile { return t.Neighbor(worldgen.North) }

// Below returns the tile one row down, or nil on the bottom row
func (t *Tile) Below() *Tile { return t.Neighbor(worldgen.South) }

// Left returns the tile one column left, or nil on the first column
func (t *Tile) Left() *Tile { return t.Neighbor(worldgen.West) }

// Right returns the tile one column right, or nil on the last column
func (t *Tile) Right() *Tile { return t.Neighbor(worldgen.East) }

// Outline returns the tile sides that need a region border drawn
func (t *Tile) Outline() []worldgen.Direction {
	return t.island.Outline(t.coord)
}
