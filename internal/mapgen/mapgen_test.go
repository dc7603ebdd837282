package mapgen

import (
	"strings"
	"testing"

	"tacmap/internal/core"
	"tacmap/internal/stage/hydrology"
)

func TestValidateRejectsBadSettings(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*GenerationSettings)
		want   string
	}{
		{"zero width", func(s *GenerationSettings) { s.Width = 0 }, "dimensions must be positive"},
		{"negative height", func(s *GenerationSettings) { s.Height = -3 }, "dimensions must be positive"},
		{"oversized", func(s *GenerationSettings) { s.Width = 300 }, "exceed"},
		{"ruggedness low", func(s *GenerationSettings) { s.Ruggedness = 0.4 }, "ruggedness"},
		{"water high", func(s *GenerationSettings) { s.WaterAbundance = 2.5 }, "water abundance"},
		{"vegetation negative", func(s *GenerationSettings) { s.VegetationMultiplier = -0.1 }, "vegetation multiplier"},
		{"bad biome", func(s *GenerationSettings) { s.Biome = "tundra" }, "unknown biome"},
		{"bad hydrology", func(s *GenerationSettings) { s.Hydrology = "ocean" }, "unknown hydrology"},
		{"bad season", func(s *GenerationSettings) { s.Season = "monsoon" }, "unknown season"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := DefaultSettings()
			c.mutate(&s)
			err := s.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Fatalf("error %q does not mention %q", err, c.want)
			}
		})
	}
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
}

func TestGenerateRejectsInvalidWithoutPartialOutput(t *testing.T) {
	s := DefaultSettings()
	s.Width = 0
	result, err := Generate(s)
	if err == nil {
		t.Fatal("expected error")
	}
	if result != nil {
		t.Fatal("invalid settings produced partial output")
	}
}

func TestFromMapOverrides(t *testing.T) {
	s := FromMap(map[string]string{
		"w":          "30",
		"h":          "20",
		"seed":       "42",
		"biome":      "forest",
		"hydrology":  "river",
		"ruggedness": "1.5",
		"vegetation": "not-a-number",
	})
	if s.Width != 30 || s.Height != 20 || s.Seed != 42 {
		t.Fatalf("dimensions/seed not applied: %+v", s)
	}
	if s.Biome != "forest" || s.Hydrology != "river" {
		t.Fatalf("context overrides not applied: %+v", s)
	}
	if s.Ruggedness != 1.5 {
		t.Fatalf("ruggedness = %g, want 1.5", s.Ruggedness)
	}
	if s.VegetationMultiplier != 1.0 {
		t.Fatalf("bad value should fall through to default, got %g", s.VegetationMultiplier)
	}
	if got := FromMap(nil); got != DefaultSettings() {
		t.Fatal("nil map should yield defaults")
	}
}

func TestContextOverrides(t *testing.T) {
	s := DefaultSettings()
	s.Biome = "forest"
	s.Hydrology = "wetland"
	s.Development = "settled"
	ctx := s.Context()
	if ctx.Biome != core.BiomeForest {
		t.Fatalf("biome = %v", ctx.Biome)
	}
	if ctx.Elevation != core.ElevationHilly {
		t.Fatalf("forest default elevation = %v, want hilly", ctx.Elevation)
	}
	if ctx.Hydrology != core.HydrologyWetland || ctx.Development != core.DevelopmentSettled {
		t.Fatalf("overrides not applied: %+v", ctx)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	s := DefaultSettings()
	s.Width, s.Height = 25, 25
	s.Seed = 9001
	s.Biome = "forest"

	a, err := Generate(s)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(s)
	if err != nil {
		t.Fatal(err)
	}

	if a.Stats != b.Stats {
		t.Fatalf("stats differ:\n%+v\n%+v", a.Stats, b.Stats)
	}
	for i, e := range a.Layers.Topography.Elevation.Cells() {
		if e != b.Layers.Topography.Elevation.Cells()[i] {
			t.Fatalf("elevation cell %d differs", i)
		}
	}
	for i, td := range a.Layers.Hydrology.Tiles.Cells() {
		if td != b.Layers.Hydrology.Tiles.Cells()[i] {
			t.Fatalf("hydrology cell %d differs", i)
		}
	}
	for i, td := range a.Layers.Features.Tiles.Cells() {
		if td != b.Layers.Features.Tiles.Cells()[i] {
			t.Fatalf("features cell %d differs", i)
		}
	}
}

func TestAridScenario(t *testing.T) {
	s := DefaultSettings()
	s.Width, s.Height = 10, 10
	s.Seed = 12345
	s.Hydrology = "arid"

	result, err := Generate(s)
	if err != nil {
		t.Fatal(err)
	}
	if result.Seed != 12345 {
		t.Fatalf("normalized seed = %d, want 12345", result.Seed)
	}
	if got := result.Layers.Hydrology.Threshold; got != 25 {
		t.Fatalf("arid stream threshold = %g, want 25", got)
	}
	if result.Stats.Pools != 0 {
		t.Fatalf("arid regime formed %d pools", result.Stats.Pools)
	}
	if result.Stats.StreamTiles != 0 {
		t.Fatalf("arid regime formed %d stream tiles", result.Stats.StreamTiles)
	}
	if result.Stats.Springs != 0 {
		t.Fatalf("arid regime formed %d springs", result.Stats.Springs)
	}
	// Flow accumulation can still step moisture up along trunk paths, so
	// only tiles without significant accumulation are held to dry or below.
	for i, td := range result.Layers.Hydrology.Tiles.Cells() {
		if td.Accumulation <= 10 && td.WaterDepth == 0 && td.Moisture > hydrology.MoistureDry {
			t.Fatalf("tile %d moisture = %v with accumulation %g", i, td.Moisture, td.Accumulation)
		}
		if td.Moisture == hydrology.MoistureSaturated && td.WaterDepth == 0 {
			t.Fatal("saturated tile without standing water")
		}
	}
}

func TestWetlandScenario(t *testing.T) {
	s := DefaultSettings()
	s.Width, s.Height = 10, 10
	s.Seed = 12345
	s.Hydrology = "wetland"

	result, err := Generate(s)
	if err != nil {
		t.Fatal(err)
	}
	if got := result.Layers.Hydrology.Threshold; got != 3 {
		t.Fatalf("wetland stream threshold = %g, want 3", got)
	}
	moist := 0
	wetDepth := 0
	for _, td := range result.Layers.Hydrology.Tiles.Cells() {
		if td.Moisture >= hydrology.MoistureMoist {
			moist++
		}
		if td.WaterDepth > 0 {
			wetDepth++
		}
	}
	total := result.Width * result.Height
	if moist*2 < total {
		t.Fatalf("only %d of %d tiles at least moist", moist, total)
	}
	if wetDepth == 0 {
		t.Fatal("wetland regime produced no standing water")
	}
}

func TestSizeWarnings(t *testing.T) {
	if w := sizeWarnings(50, 50); len(w) != 0 {
		t.Fatalf("unexpected warnings for 50x50: %v", w)
	}
	w := sizeWarnings(150, 150)
	if len(w) != 1 || !strings.Contains(w[0], "very large") {
		t.Fatalf("150x150 warnings = %v", w)
	}
	w = sizeWarnings(100, 20)
	if len(w) != 1 || !strings.Contains(w[0], "aspect ratio") {
		t.Fatalf("100x20 warnings = %v", w)
	}
}

func TestParameterSnapshot(t *testing.T) {
	s := DefaultSettings()
	s.Width, s.Height = 10, 10
	result, err := Generate(s)
	if err != nil {
		t.Fatal(err)
	}
	snap := result.Parameters()
	if len(snap.Groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(snap.Groups))
	}
	keys := map[string]bool{}
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			keys[p.Key] = true
		}
	}
	for _, want := range []string{"w", "h", "seed", "biome", "hydrology", "ruggedness", "water", "vegetation"} {
		if !keys[want] {
			t.Fatalf("snapshot missing key %q", want)
		}
	}
}
