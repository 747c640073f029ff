// Package terrain defines the fixed set of region terrains and the
// level-dependent weighted draw used to pick one.
package terrain

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

var ErrInfeasibleAssignment = errors.New("terrain: no legal terrain available")

// Terrain is one of the six region terrains. The zero value is invalid.
type Terrain int

const (
	Woods Terrain = iota + 1
	Desert
	Plains
	Tundra
	Swamp
	Jungle
)

type attributes struct {
	name          string
	startingLevel int    // level from which the terrain is drawn at full weight
	background    string // art key used by renderers
}

var table = map[Terrain]attributes{
	Woods:  {"Woods", 1, "WoodsBackground"},
	Desert: {"Desert", 4, "DesertBackground"},
	Plains: {"Plains", 1, "PlainsBackground"},
	Tundra: {"Tundra", 24, "TundraBackground"},
	Swamp:  {"Swamp", 14, "SwampBackground"},
	Jungle: {"Jungle", 34, "JungleBackground"},
}

// All returns every terrain in declaration order
func All() []Terrain {
	return []Terrain{Woods, Desert, Plains, Tundra, Swamp, Jungle}
}

// Valid reports whether t is one of the declared terrains
func (t Terrain) Valid() bool {
	_, ok := table[t]
	return ok
}

// String returns the display name of the terrain
func (t Terrain) String() string {
	if a, ok := table[t]; ok {
		return a.name
	}
	return "Unknown"
}

// StartingLevel returns the level at which t reaches full draw weight
func (t Terrain) StartingLevel() int {
	return table[t].startingLevel
}

// Background returns the renderer's background art key for t
func (t Terrain) Background() string {
	return table[t].background
}

// Parse returns the terrain whose display name is name
func Parse(name string) (Terrain, error) {
	for _, t := range All() {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("terrain: unknown terrain %q", name)
}

// Weight returns the relative draw weight of t at the given level: 0 below
// half the starting level, then a linear ramp that reaches 1 at the
// starting level.
func Weight(t Terrain, level int) float64 {
	start := float64(t.StartingLevel())
	lv := float64(level)
	switch {
	case lv < 0.5*start:
		return 0
	case lv < start:
		return 1.8*lv/start - 0.8
	default:
		return 1
	}
}

// Choose draws a terrain for the given level from all terrains not in
// illegal, with probability proportional to Weight. It returns
// ErrInfeasibleAssignment when every remaining terrain has zero weight.
func Choose(rng *rand.Rand, level int, illegal mapset.Set[Terrain]) (Terrain, error) {
	candidates := make([]Terrain, 0, len(table))
	weights := make([]float64, 0, len(table))
	total := 0.0
	for _, t := range All() {
		if illegal.Has(t) {
			continue
		}
		w := Weight(t, level)
		if w <= 0 {
			continue
		}
		candidates = append(candidates, t)
		weights = append(weights, w)
		total += w
	}
	if total <= 0 {
		return 0, fmt.Errorf("%w at level %d (%d excluded)", ErrInfeasibleAssignment, level, illegal.Size())
	}

	// Cumulative probability walk
	p := rng.Float64()
	cumulative := 0.0
	for i, t := range candidates {
		cumulative += weights[i] / total
		if p < cumulative {
			return t, nil
		}
	}
	return candidates[len(candidates)-1], nil
}
