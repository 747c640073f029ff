package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/labenh526/Island/internal/island"
	"github.com/labenh526/Island/internal/terrain"
	"github.com/labenh526/Island/internal/worldgen"
	"gopkg.in/yaml.v3"
)

type renderOptions struct {
	legend bool
	color  bool
}

var terrainGlyphs = map[terrain.Terrain]rune{
	terrain.Woods:  'T',
	terrain.Desert: '.',
	terrain.Plains: '"',
	terrain.Tundra: '*',
	terrain.Swamp:  '~',
	terrain.Jungle: '&',
}

// ANSI foreground colours per terrain
var terrainColors = map[terrain.Terrain]string{
	terrain.Woods:  "\x1b[32m",
	terrain.Desert: "\x1b[33m",
	terrain.Plains: "\x1b[92m",
	terrain.Tundra: "\x1b[97m",
	terrain.Swamp:  "\x1b[36m",
	terrain.Jungle: "\x1b[35m",
}

const (
	ansiReset     = "\x1b[0m"
	startGlyph    = '@'
	treasureGlyph = '$'
)

// renderText draws the island with one glyph per tile. Region borders are
// drawn between tiles: '|' between columns and '-' between rows.
func renderText(w io.Writer, is *island.Island, opts renderOptions) {
	fmt.Fprintf(w, "Island (Seed: %d, Level: %d, %dx%d, %d regions, %d attempts)\n",
		is.Seed(), is.Level(), is.Width(), is.Height(), len(is.Regions()), is.Attempts())
	fmt.Fprintln(w, strings.Repeat("=", 2*is.Width()+1))

	start := is.StartingTile().Coordinates()

	// Top edge
	var line strings.Builder
	line.WriteByte('+')
	for x := 0; x < is.Width(); x++ {
		line.WriteString("-+")
	}
	fmt.Fprintln(w, line.String())

	for y := 0; y < is.Height(); y++ {
		var cells, below strings.Builder
		cells.WriteByte('|')
		below.WriteByte('+')
		for x := 0; x < is.Width(); x++ {
			c := worldgen.Coordinate{X: x, Y: y}
			tile := is.TileAt(c)
			cells.WriteString(glyph(tile, c == start, opts.color))

			east, south := false, false
			for _, side := range tile.Outline() {
				switch side {
				case worldgen.East:
					east = true
				case worldgen.South:
					south = true
				}
			}
			cells.WriteByte(pick(east, '|', ' '))
			below.WriteByte(pick(south, '-', ' '))
			below.WriteByte('+')
		}
		fmt.Fprintln(w, cells.String())
		fmt.Fprintln(w, below.String())
	}

	if opts.legend {
		renderLegend(w, is)
	}
}

func glyph(tile *island.Tile, start, color bool) string {
	t := tile.Region().Terrain
	g := terrainGlyphs[t]
	switch {
	case tile.HasTreasure():
		g = treasureGlyph
	case start:
		g = startGlyph
	}
	if !color {
		return string(g)
	}
	return terrainColors[t] + string(g) + ansiReset
}

func pick(cond bool, yes, no byte) byte {
	if cond {
		return yes
	}
	return no
}

func renderLegend(w io.Writer, is *island.Island) {
	counts := is.CellCounts()

	fmt.Fprintln(w, "\nRegions:")
	for _, id := range is.RegionIDs() {
		r, _ := is.Region(id)
		fmt.Fprintf(w, "  [%c] %2d %-22s %3d tiles  borders %v\n",
			terrainGlyphs[r.Terrain], id, r.DisplayText(), counts[id], is.Adjacency().Neighbors(id))
	}

	fmt.Fprintln(w, "\nLegend:")
	for _, t := range terrain.All() {
		fmt.Fprintf(w, "  %c %-7s (from level %d)\n", terrainGlyphs[t], t, t.StartingLevel())
	}
	fmt.Fprintf(w, "  %c starting tile\n", startGlyph)
}

type islandExport struct {
	Seed     int64          `yaml:"seed"`
	Level    int            `yaml:"level"`
	Width    int            `yaml:"width"`
	Height   int            `yaml:"height"`
	Attempts int            `yaml:"attempts"`
	Start    []int          `yaml:"start,flow"`
	Regions  []regionExport `yaml:"regions"`
	Grid     [][]int        `yaml:"grid,flow"`
}

type regionExport struct {
	ID         int    `yaml:"id"`
	Name       string `yaml:"name"`
	Terrain    string `yaml:"terrain"`
	Background string `yaml:"background"`
	Tiles      int    `yaml:"tiles"`
	Borders    []int  `yaml:"borders,flow"`
}

func exportIsland(is *island.Island) islandExport {
	start := is.StartingTile().Coordinates()
	out := islandExport{
		Seed:     is.Seed(),
		Level:    is.Level(),
		Width:    is.Width(),
		Height:   is.Height(),
		Attempts: is.Attempts(),
		Start:    []int{start.X, start.Y},
		Grid:     is.IDGrid().Rows(),
	}

	counts := is.CellCounts()
	for _, id := range is.RegionIDs() {
		r, _ := is.Region(id)
		out.Regions = append(out.Regions, regionExport{
			ID:         id,
			Name:       r.Name,
			Terrain:    r.Terrain.String(),
			Background: r.Terrain.Background(),
			Tiles:      counts[id],
			Borders:    is.Adjacency().Neighbors(id),
		})
	}
	return out
}

func writeYAML(w io.Writer, is *island.Island) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(exportIsland(is)); err != nil {
		return err
	}
	return enc.Close()
}
