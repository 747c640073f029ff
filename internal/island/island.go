package island

import (
	"errors"
	"fmt"
	"sort"

	"github.com/labenh526/Island/internal/region"
	"github.com/labenh526/Island/internal/worldgen"
)

var ErrOutOfBounds = errors.New("island: coordinate out of bounds")

// Island is a fully generated map: a grid of tiles, each belonging to one
// named region. Apart from the treasure location it never changes after
// generation.
type Island struct {
	width, height int
	seed          int64
	level         int
	attempts      int

	ids       *worldgen.Grid
	adjacency worldgen.Adjacency
	regions   map[int]region.Region
	tiles     []Tile // row-major

	treasure    worldgen.Coordinate
	hasTreasure bool
}

func newIsland(ids *worldgen.Grid, adj worldgen.Adjacency, regions map[int]region.Region) *Island {
	is := &Island{
		width:     ids.Width,
		height:    ids.Height,
		ids:       ids,
		adjacency: adj,
		regions:   regions,
		tiles:     make([]Tile, 0, ids.Width*ids.Height),
	}
	ids.Each(func(c worldgen.Coordinate, id int) {
		is.tiles = append(is.tiles, Tile{island: is, coord: c, regionID: id})
	})
	return is
}

// Width returns the number of columns
func (is *Island) Width() int { return is.width }

// Height returns the number of rows
func (is *Island) Height() int { return is.height }

// Seed returns the seed that reproduces this island
func (is *Island) Seed() int64 { return is.seed }

// Level returns the level the island was generated for
func (is *Island) Level() int { return is.level }

// Attempts returns how many drafts it took to generate the island
func (is *Island) Attempts() int { return is.attempts }

// InBounds reports whether c is a tile of the island
func (is *Island) InBounds(c worldgen.Coordinate) bool {
	return is.ids.InBounds(c)
}

// TileAt returns the tile at c. It panics if c is out of bounds.
func (is *Island) TileAt(c worldgen.Coordinate) *Tile {
	if !is.InBounds(c) {
		panic(fmt.Sprintf("island: TileAt(%s) outside %dx%d island", c, is.width, is.height))
	}
	return &is.tiles[c.Y*is.width+c.X]
}

// tileAt is TileAt returning nil instead of panicking
func (is *Island) tileAt(c worldgen.Coordinate) *Tile {
	if !is.InBounds(c) {
		return nil
	}
	return &is.tiles[c.Y*is.width+c.X]
}

// Tiles returns every tile in row-major order, top row first
func (is *Island) Tiles() []*Tile {
	out := make([]*Tile, len(is.tiles))
	for i := range is.tiles {
		out[i] = &is.tiles[i]
	}
	return out
}

// Rows returns the region of every tile, row-major with the top row first
func (is *Island) Rows() [][]region.Region {
	rows := make([][]region.Region, is.height)
	for y := range rows {
		rows[y] = make([]region.Region, is.width)
		for x := range rows[y] {
			rows[y][x] = is.regions[is.tiles[y*is.width+x].regionID]
		}
	}
	return rows
}

// RegionIDs returns the region ids in ascending order
func (is *Island) RegionIDs() []int {
	ids := make([]int, 0, len(is.regions))
	for id := range is.regions {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Regions returns every region ordered by region id
func (is *Island) Regions() []region.Region {
	ids := is.RegionIDs()
	out := make([]region.Region, len(ids))
	for i, id := range ids {
		out[i] = is.regions[id]
	}
	return out
}

// Region returns the region with the given id
func (is *Island) Region(id int) (region.Region, bool) {
	r, ok := is.regions[id]
	return r, ok
}

// RegionAt returns the region covering c. It panics if c is out of bounds.
func (is *Island) RegionAt(c worldgen.Coordinate) region.Region {
	return is.TileAt(c).Region()
}

// TilesOf returns the tiles of r in row-major order
func (is *Island) TilesOf(r region.Region) []*Tile {
	var out []*Tile
	for i := range is.tiles {
		if is.regions[is.tiles[i].regionID] == r {
			out = append(out, &is.tiles[i])
		}
	}
	return out
}

// CellCounts returns the number of tiles per region id
func (is *Island) CellCounts() map[int]int {
	return worldgen.CellCounts(is.ids)
}

// Adjacency returns the region adjacency the terrains were assigned against
func (is *Island) Adjacency() worldgen.Adjacency {
	return is.adjacency
}

// IDGrid returns a copy of the region id grid
func (is *Island) IDGrid() *worldgen.Grid {
	return is.ids.Clone()
}

// StartingTile returns the tile a player enters on: the middle of the
// bottom row
func (is *Island) StartingTile() *Tile {
	return is.TileAt(worldgen.Coordinate{X: (is.width - 1) / 2, Y: is.height - 1})
}

// Outline returns the sides of the tile at c that lie on the island edge or
// border another region, in North, East, South, West order.
func (is *Island) Outline(c worldgen.Coordinate) []worldgen.Direction {
	id := is.ids.At(c)
	var sides []worldgen.Direction
	for _, dir := range worldgen.AllDirections() {
		n := c.Step(dir)
		if !is.ids.InBounds(n) || is.ids.At(n) != id {
			sides = append(sides, dir)
		}
	}
	return sides
}

// ChangeTreasureLocation moves the island's single treasure to c. Moving it
// onto its current tile is a no-op.
func (is *Island) ChangeTreasureLocation(c worldgen.Coordinate) error {
	if !is.InBounds(c) {
		return fmt.Errorf("%w: %s on %dx%d island", ErrOutOfBounds, c, is.width, is.height)
	}
	if is.hasTreasure {
		is.TileAt(is.treasure).treasure = false
	}
	is.TileAt(c).treasure = true
	is.treasure = c
	is.hasTreasure = true
	return nil
}

// TreasureLocation returns where the treasure is. ok is false until the
// treasure is first placed.
func (is *Island) TreasureLocation() (c worldgen.Coordinate, ok bool) {
	return is.treasure, is.hasTreasure
}
