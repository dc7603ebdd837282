package mapgen

import (
	"flag"
	"fmt"
	"strconv"

	"tacmap/internal/core"
	"tacmap/pkg/noise"
)

// Size limits and tunable ranges validated before a run starts.
const (
	MaxDimension = 200

	minRuggedness = 0.5
	maxRuggedness = 2.0
	minWater      = 0.5
	maxWater      = 2.0
	minVegetation = 0.0
	maxVegetation = 2.0
)

// GenerationSettings is the full input to one generation run.
type GenerationSettings struct {
	Width    int
	Height   int
	CellSize float64 // feet per tile edge

	// Seed drives all randomness. SeedText, when non-empty, is hashed
	// into the effective seed and takes precedence over Seed.
	Seed     int64
	SeedText string

	// Context overrides. Biome selects the default context; the rest
	// replace individual fields when non-empty.
	Biome       string
	Elevation   string
	Hydrology   string
	Development string
	Season      string

	Ruggedness           float64 // [0.5, 2.0]
	WaterAbundance       float64 // [0.5, 2.0]
	VegetationMultiplier float64 // [0.0, 2.0]

	RequireWater    bool
	RequireLandmark bool
}

// DefaultSettings returns the standard generation configuration.
func DefaultSettings() GenerationSettings {
	return GenerationSettings{
		Width:                50,
		Height:               50,
		CellSize:             5,
		Seed:                 1337,
		Biome:                string(core.BiomePlains),
		Ruggedness:           1.0,
		WaterAbundance:       1.0,
		VegetationMultiplier: 1.0,
	}
}

// Bind registers every setting on a flag set for CLI use.
func (s *GenerationSettings) Bind(fs *flag.FlagSet) {
	fs.IntVar(&s.Width, "w", s.Width, "map width in tiles")
	fs.IntVar(&s.Height, "h", s.Height, "map height in tiles")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "generation seed")
	fs.StringVar(&s.SeedText, "seed-text", s.SeedText, "string seed (hashed, overrides -seed)")
	fs.StringVar(&s.Biome, "biome", s.Biome, "biome (mountain|desert|forest|plains|coastal|swamp|underground)")
	fs.StringVar(&s.Elevation, "elevation", s.Elevation, "elevation regime override (flat|rolling|hilly|mountainous)")
	fs.StringVar(&s.Hydrology, "hydrology", s.Hydrology, "hydrology regime override (arid|seasonal|stream|river|wetland)")
	fs.StringVar(&s.Development, "development", s.Development, "development level override (wild|rural|settled)")
	fs.StringVar(&s.Season, "season", s.Season, "season override (spring|summer|autumn|winter)")
	fs.Float64Var(&s.Ruggedness, "ruggedness", s.Ruggedness, "terrain ruggedness, 0.5 to 2.0")
	fs.Float64Var(&s.WaterAbundance, "water", s.WaterAbundance, "water abundance, 0.5 to 2.0")
	fs.Float64Var(&s.VegetationMultiplier, "vegetation", s.VegetationMultiplier, "vegetation density, 0.0 to 2.0")
	fs.BoolVar(&s.RequireWater, "require-water", s.RequireWater, "guarantee a fresh water feature")
	fs.BoolVar(&s.RequireLandmark, "require-landmark", s.RequireLandmark, "guarantee a landmark feature")
}

// FromMap populates settings from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values fall through to the defaults.
func FromMap(cfg map[string]string) GenerationSettings {
	s := DefaultSettings()
	if cfg == nil {
		return s
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			s.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			s.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			s.Seed = parsed
		}
	}
	if v, ok := cfg["seed_text"]; ok {
		s.SeedText = v
	}
	if v, ok := cfg["biome"]; ok {
		s.Biome = v
	}
	if v, ok := cfg["elevation"]; ok {
		s.Elevation = v
	}
	if v, ok := cfg["hydrology"]; ok {
		s.Hydrology = v
	}
	if v, ok := cfg["development"]; ok {
		s.Development = v
	}
	if v, ok := cfg["season"]; ok {
		s.Season = v
	}
	if v, ok := cfg["ruggedness"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			s.Ruggedness = parsed
		}
	}
	if v, ok := cfg["water"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			s.WaterAbundance = parsed
		}
	}
	if v, ok := cfg["vegetation"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			s.VegetationMultiplier = parsed
		}
	}
	return s
}

// Validate checks every settings range before any stage runs. A failed
// validation aborts the whole run with no partial output.
func (s GenerationSettings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("dimensions must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.Width > MaxDimension || s.Height > MaxDimension {
		return fmt.Errorf("dimensions exceed %dx%d limit, got %dx%d", MaxDimension, MaxDimension, s.Width, s.Height)
	}
	if s.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %g", s.CellSize)
	}
	if s.Ruggedness < minRuggedness || s.Ruggedness > maxRuggedness {
		return fmt.Errorf("ruggedness %g outside [%g, %g]", s.Ruggedness, minRuggedness, maxRuggedness)
	}
	if s.WaterAbundance < minWater || s.WaterAbundance > maxWater {
		return fmt.Errorf("water abundance %g outside [%g, %g]", s.WaterAbundance, minWater, maxWater)
	}
	if s.VegetationMultiplier < minVegetation || s.VegetationMultiplier > maxVegetation {
		return fmt.Errorf("vegetation multiplier %g outside [%g, %g]", s.VegetationMultiplier, minVegetation, maxVegetation)
	}
	if !core.ValidBiome(core.Biome(s.Biome)) {
		return fmt.Errorf("unknown biome %q", s.Biome)
	}
	if s.Elevation != "" && !core.ValidElevation(core.ElevationRegime(s.Elevation)) {
		return fmt.Errorf("unknown elevation regime %q", s.Elevation)
	}
	if s.Hydrology != "" && !core.ValidHydrology(core.HydrologyRegime(s.Hydrology)) {
		return fmt.Errorf("unknown hydrology regime %q", s.Hydrology)
	}
	if s.Development != "" && !core.ValidDevelopment(core.DevelopmentLevel(s.Development)) {
		return fmt.Errorf("unknown development level %q", s.Development)
	}
	if s.Season != "" && !core.ValidSeason(core.Season(s.Season)) {
		return fmt.Errorf("unknown season %q", s.Season)
	}
	return nil
}

// Context resolves the tactical map context: biome defaults first, then the
// explicit overrides.
func (s GenerationSettings) Context() core.TacticalMapContext {
	ctx := core.DefaultContext(core.Biome(s.Biome))
	if s.Elevation != "" {
		ctx.Elevation = core.ElevationRegime(s.Elevation)
	}
	if s.Hydrology != "" {
		ctx.Hydrology = core.HydrologyRegime(s.Hydrology)
	}
	if s.Development != "" {
		ctx.Development = core.DevelopmentLevel(s.Development)
	}
	if s.Season != "" {
		ctx.Season = core.Season(s.Season)
	}
	ctx.RequireWater = s.RequireWater
	ctx.RequireLandmark = s.RequireLandmark
	return ctx
}

// EffectiveSeed normalizes the seed input: string seeds hash, integer seeds
// pass through.
func (s GenerationSettings) EffectiveSeed() noise.Seed {
	if s.SeedText != "" {
		return noise.FromString(s.SeedText)
	}
	return noise.New(s.Seed)
}
