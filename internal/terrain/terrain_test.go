package terrain

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/zyedidia/generic/mapset"
)

func TestTerrainAttributes(t *testing.T) {
	tests := []struct {
		terrain    Terrain
		name       string
		start      int
		background string
	}{
		{Woods, "Woods", 1, "WoodsBackground"},
		{Desert, "Desert", 4, "DesertBackground"},
		{Plains, "Plains", 1, "PlainsBackground"},
		{Tundra, "Tundra", 24, "TundraBackground"},
		{Swamp, "Swamp", 14, "SwampBackground"},
		{Jungle, "Jungle", 34, "JungleBackground"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.terrain.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.terrain.StartingLevel(); got != tt.start {
				t.Errorf("StartingLevel() = %d, want %d", got, tt.start)
			}
			if got := tt.terrain.Background(); got != tt.background {
				t.Errorf("Background() = %q, want %q", got, tt.background)
			}
			parsed, err := Parse(tt.name)
			if err != nil || parsed != tt.terrain {
				t.Errorf("Parse(%q) = %v, %v", tt.name, parsed, err)
			}
		})
	}

	var zero Terrain
	if zero.Valid() {
		t.Error("zero Terrain should be invalid")
	}
	if _, err := Parse("Volcano"); err == nil {
		t.Error("Parse(\"Volcano\") should fail")
	}
}

func TestWeight(t *testing.T) {
	tests := []struct {
		terrain Terrain
		level   int
		want    float64
	}{
		{Woods, 1, 1},
		{Woods, 50, 1},
		{Desert, 1, 0},
		{Desert, 2, 0.1},
		{Desert, 3, 0.55},
		{Desert, 4, 1},
		{Swamp, 6, 0},
		{Swamp, 7, 0.1},
		{Tundra, 12, 0.1},
		{Jungle, 16, 0},
		{Jungle, 34, 1},
	}

	for _, tt := range tests {
		if got := Weight(tt.terrain, tt.level); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Weight(%s, %d) = %v, want %v", tt.terrain, tt.level, got, tt.want)
		}
	}
}

func TestChooseAtLevelOne(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	counts := make(map[Terrain]int)

	for i := 0; i < 1000; i++ {
		got, err := Choose(rng, 1, mapset.New[Terrain]())
		if err != nil {
			t.Fatalf("Choose() failed: %v", err)
		}
		counts[got]++
	}

	for terrain, n := range counts {
		if terrain != Woods && terrain != Plains {
			t.Errorf("level 1 drew %s %d times", terrain, n)
		}
	}
	// Equal weights, so both should be common
	if counts[Woods] < 400 || counts[Plains] < 400 {
		t.Errorf("unbalanced draws at level 1: %v", counts)
	}
}

func TestChooseNeverPicksIllegal(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	illegal := mapset.Of(Woods, Desert, Jungle)

	for i := 0; i < 500; i++ {
		got, err := Choose(rng, 40, illegal)
		if err != nil {
			t.Fatalf("Choose() failed: %v", err)
		}
		if illegal.Has(got) {
			t.Fatalf("Choose() returned illegal terrain %s", got)
		}
	}
}

func TestChooseInfeasible(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	tests := []struct {
		name    string
		level   int
		illegal mapset.Set[Terrain]
	}{
		{"woods and plains taken at level 1", 1, mapset.Of(Woods, Plains)},
		{"everything taken", 50, mapset.Of(All()...)},
		{"level zero", 0, mapset.New[Terrain]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Choose(rng, tt.level, tt.illegal); !errors.Is(err, ErrInfeasibleAssignment) {
				t.Errorf("Choose() error = %v, want ErrInfeasibleAssignment", err)
			}
		})
	}
}

func TestChooseFollowsWeights(t *testing.T) {
	// At level 3 only Woods (1), Plains (1) and Desert (0.55) are drawable
	rng := rand.New(rand.NewSource(4))
	counts := make(map[Terrain]int)
	const draws = 20000

	for i := 0; i < draws; i++ {
		got, err := Choose(rng, 3, mapset.New[Terrain]())
		if err != nil {
			t.Fatalf("Choose() failed: %v", err)
		}
		counts[got]++
	}

	want := 0.55 / 2.55
	got := float64(counts[Desert]) / draws
	if math.Abs(got-want) > 0.02 {
		t.Errorf("Desert frequency = %.3f, want about %.3f", got, want)
	}
}
