// Package island assembles complete islands: it drafts a region map,
// assigns terrains and names, and retries whole drafts until one satisfies
// every constraint or the attempt budget runs out.
package island

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/labenh526/Island/internal/database"
	"github.com/labenh526/Island/internal/logger"
	"github.com/labenh526/Island/internal/markov"
	"github.com/labenh526/Island/internal/region"
	"github.com/labenh526/Island/internal/terrain"
	"github.com/labenh526/Island/internal/worldgen"
)

var (
	ErrGenerationExhausted = errors.New("island: generation attempts exhausted")
	ErrRegionLost          = errors.New("island: lone cell repair removed a region")
)

const (
	DefaultMaxAttempts = 1000
	maxSide            = 20
)

// Recorder receives a summary of every generation run. *database.Database
// satisfies it.
type Recorder interface {
	RecordRun(run database.Run) (int64, error)
}

// Config controls a Generator.
type Config struct {
	MaxAttempts     int   // <= 0 means DefaultMaxAttempts
	MaxNameAttempts int   // <= 0 means region.DefaultMaxNameAttempts
	Seed            int64 // 0 seeds from the clock

	Filter   region.NameChecker // optional
	Recorder Recorder           // optional
}

// Generator produces islands from a trained name chain.
type Generator struct {
	names           *markov.Chain
	filter          region.NameChecker
	recorder        Recorder
	rng             *rand.Rand
	maxAttempts     int
	maxNameAttempts int
}

// NewGenerator creates a generator drawing names from names.
func NewGenerator(names *markov.Chain, cfg Config) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{
		names:           names,
		filter:          cfg.Filter,
		recorder:        cfg.Recorder,
		rng:             rand.New(rand.NewSource(seed)),
		maxAttempts:     maxAttempts,
		maxNameAttempts: cfg.MaxNameAttempts,
	}
}

// DimensionsForLevel returns the side length and region count used for a
// level: the side grows by one every five levels from 5, capped at 20, with
// one region per twenty tiles rounded up.
func DimensionsForLevel(level int) (side, regions int) {
	side = int(math.Ceil(float64(level)/5)) + 4
	if side > maxSide {
		side = maxSide
	}
	if side < 1 {
		side = 1
	}
	regions = int(math.Ceil(float64(side*side) / 20))
	return side, regions
}

// NewIslandForLevel generates a square island sized for level.
func (g *Generator) NewIslandForLevel(level int) (*Island, error) {
	side, regions := DimensionsForLevel(level)
	return g.NewIsland(side, side, regions, level)
}

// NewIsland generates an island with a fresh seed from the generator's
// random source.
func (g *Generator) NewIsland(width, height, regionCount, level int) (*Island, error) {
	return g.GenerateWithSeed(g.rng.Int63(), width, height, regionCount, level)
}

// GenerateWithSeed generates the island identified by seed. The same seed,
// dimensions, level and corpus always give the same island.
func (g *Generator) GenerateWithSeed(seed int64, width, height, regionCount, level int) (*Island, error) {
	if err := validate(width, height, regionCount); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	assigner := &region.Assigner{
		Names:           g.names.WithRand(rng),
		Filter:          g.filter,
		MaxNameAttempts: g.maxNameAttempts,
	}
	run := database.Run{
		Seed:        seed,
		Width:       width,
		Height:      height,
		RegionCount: regionCount,
		Level:       level,
	}

	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		is, err := draft(rng, assigner, width, height, regionCount, level)
		if err != nil {
			if !retryable(err) {
				return nil, err
			}
			logger.Debug("island draft rejected", "seed", seed, "attempt", attempt, "reason", err)
			lastErr = err
			continue
		}

		is.seed = seed
		is.level = level
		is.attempts = attempt
		logger.Info("island generated", "seed", seed, "width", width, "height", height,
			"regions", regionCount, "level", level, "attempts", attempt)

		run.Attempts = attempt
		run.Succeeded = true
		run.Regions = runRegions(is)
		g.record(run)
		return is, nil
	}

	logger.Warning("island generation exhausted", "seed", seed, "width", width, "height", height,
		"regions", regionCount, "level", level, "attempts", g.maxAttempts, "last_error", lastErr)
	run.Attempts = g.maxAttempts
	run.Failure = lastErr.Error()
	g.record(run)
	return nil, fmt.Errorf("%w after %d attempts: %w", ErrGenerationExhausted, g.maxAttempts, lastErr)
}

func validate(width, height, regionCount int) error {
	if width < 1 || height < 1 || width*height < 2 {
		return fmt.Errorf("%w: %dx%d island", worldgen.ErrInvalidDimensions, width, height)
	}
	if regionCount < 1 || regionCount > width*height {
		return fmt.Errorf("%w: %d regions on a %dx%d island", worldgen.ErrInvalidDimensions, regionCount, width, height)
	}
	return nil
}

func retryable(err error) bool {
	return errors.Is(err, terrain.ErrInfeasibleAssignment) ||
		errors.Is(err, region.ErrNamesExhausted) ||
		errors.Is(err, ErrRegionLost)
}

// draft runs the whole pipeline once. Any error discards the draft.
func draft(rng *rand.Rand, assigner *region.Assigner, width, height, regionCount, level int) (*Island, error) {
	points, err := worldgen.RandomPoints(rng, width, height, regionCount)
	if err != nil {
		return nil, err
	}
	ids, err := worldgen.Partition(rng, width, height, points)
	if err != nil {
		return nil, err
	}
	ids = worldgen.RepairLoneCells(rng, ids)

	if got := len(worldgen.CellCounts(ids)); got != regionCount {
		return nil, fmt.Errorf("%w: %d of %d regions left", ErrRegionLost, got, regionCount)
	}

	adj := worldgen.BuildAdjacency(ids)
	regions, err := assigner.Assign(rng, level, worldgen.RankBySize(ids), adj)
	if err != nil {
		return nil, err
	}
	return newIsland(ids, adj, regions), nil
}

func runRegions(is *Island) []database.RunRegion {
	counts := is.CellCounts()
	out := make([]database.RunRegion, 0, len(counts))
	for _, id := range is.RegionIDs() {
		r := is.regions[id]
		out = append(out, database.RunRegion{
			RegionID: id,
			Name:     r.Name,
			Terrain:  r.Terrain.String(),
			Cells:    counts[id],
		})
	}
	return out
}

func (g *Generator) record(run database.Run) {
	if g.recorder == nil {
		return
	}
	if _, err := g.recorder.RecordRun(run); err != nil {
		logger.Error("failed to record generation run", "seed", run.Seed, "error", err)
	}
}
