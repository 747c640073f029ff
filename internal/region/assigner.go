package region

import (
	"errors"
	"fmt"
	"math/rand"
	"unicode"
	"unicode/utf8"

	"github.com/labenh526/Island/internal/terrain"
	"github.com/labenh526/Island/internal/worldgen"
	"github.com/zyedidia/generic/mapset"
)

var ErrNamesExhausted = errors.New("region: could not draw an unused name")

// DefaultMaxNameAttempts bounds name draws per region when the assigner
// does not set its own limit.
const DefaultMaxNameAttempts = 500

// NameSource produces raw name fragments. *markov.Chain satisfies it.
type NameSource interface {
	NextValue() string
}

// NameChecker vets a title-cased name. *namefilter.NameFilter satisfies it.
type NameChecker interface {
	Allow(name string) bool
}

// Assigner turns ranked region ids into named, terrain-typed regions
type Assigner struct {
	Names           NameSource
	Filter          NameChecker // optional
	MaxNameAttempts int         // <= 0 means DefaultMaxNameAttempts
}

// AssignTerrains walks order (largest region first) and draws a terrain
// for each id that no already-assigned neighbor uses. Neighbors later in
// the order impose no constraint yet. It fails with
// terrain.ErrInfeasibleAssignment as soon as an id has no legal terrain.
func AssignTerrains(rng *rand.Rand, level int, order []int, adj worldgen.Adjacency) (map[int]terrain.Terrain, error) {
	assigned := make(map[int]terrain.Terrain, len(order))
	for _, id := range order {
		illegal := mapset.New[terrain.Terrain]()
		for _, n := range adj.Neighbors(id) {
			if t, ok := assigned[n]; ok {
				illegal.Put(t)
			}
		}
		t, err := terrain.Choose(rng, level, illegal)
		if err != nil {
			return nil, fmt.Errorf("region %d: %w", id, err)
		}
		assigned[id] = t
	}
	return assigned, nil
}

// Assign draws terrains as AssignTerrains does and names each region in
// the same order. Every returned region has a distinct display text.
func (a *Assigner) Assign(rng *rand.Rand, level int, order []int, adj worldgen.Adjacency) (map[int]Region, error) {
	terrains, err := AssignTerrains(rng, level, order, adj)
	if err != nil {
		return nil, err
	}

	regions := make(map[int]Region, len(order))
	used := mapset.New[string]()
	for _, id := range order {
		r, err := a.name(terrains[id], used)
		if err != nil {
			return nil, fmt.Errorf("region %d: %w", id, err)
		}
		used.Put(r.DisplayText())
		regions[id] = r
	}
	return regions, nil
}

func (a *Assigner) name(t terrain.Terrain, used mapset.Set[string]) (Region, error) {
	limit := a.MaxNameAttempts
	if limit <= 0 {
		limit = DefaultMaxNameAttempts
	}
	for i := 0; i < limit; i++ {
		r := Region{Name: titleCase(a.Names.NextValue()), Terrain: t}
		if r.Name == "" || used.Has(r.DisplayText()) {
			continue
		}
		if a.Filter != nil && !a.Filter.Allow(r.Name) {
			continue
		}
		return r, nil
	}
	return Region{}, fmt.Errorf("%w after %d draws (%s)", ErrNamesExhausted, limit, t)
}

func titleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
