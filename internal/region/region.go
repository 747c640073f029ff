// Package region pairs Voronoi region ids with a terrain and a generated
// name, keeping bordering regions on different terrains.
package region

import (
	"github.com/labenh526/Island/internal/terrain"
)

// Region is the immutable named terrain area covering one or more tiles.
// Two regions are equal when both name and terrain match.
type Region struct {
	Name    string
	Terrain terrain.Terrain
}

// DisplayText returns the name followed by the terrain, e.g. "Ashmere Woods"
func (r Region) DisplayText() string {
	return r.Name + " " + r.Terrain.String()
}

func (r Region) String() string {
	return r.DisplayText()
}

// IsZero reports whether r is the empty region
func (r Region) IsZero() bool {
	return r == Region{}
}
