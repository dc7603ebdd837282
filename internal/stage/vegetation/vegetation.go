// Package vegetation places individual plants across the map, classifies each
// tile's vegetation, and extracts contiguous forest patches and clearings.
package vegetation

import (
	"tacmap/internal/core"
	"tacmap/internal/stage/geology"
	"tacmap/internal/stage/hydrology"
	"tacmap/internal/stage/topography"
	"tacmap/pkg/noise"
)

// Species enumerates the plant species catalogue. The ordinal order is part
// of the determinism contract: dominant-species ties resolve to the lowest
// ordinal.
type Species uint8

const (
	SpeciesOak Species = iota
	SpeciesMaple
	SpeciesBirch
	SpeciesPine
	SpeciesWillow
	SpeciesHazel
	SpeciesJuniper
	SpeciesFern

	SpeciesNone Species = 0xff
)

func (s Species) String() string {
	names := [...]string{"oak", "maple", "birch", "pine", "willow", "hazel", "juniper", "fern"}
	if int(s) >= len(names) {
		return "none"
	}
	return names[s]
}

// PlantKind groups species into placement tiers.
type PlantKind uint8

const (
	KindTree PlantKind = iota
	KindShrub
	KindGroundcover
)

// Plant is one placed individual.
type Plant struct {
	Species Species
	Kind    PlantKind
	Height  float64 // feet
}

// Config holds vegetation tunables from the generation settings.
type Config struct {
	// Multiplier scales plant density, range [0, 2].
	Multiplier float64
}

// DefaultConfig returns the standard vegetation tuning.
func DefaultConfig() Config {
	return Config{Multiplier: 1.0}
}

var treeChanceByBiome = map[core.Biome]float64{
	core.BiomeForest:      0.45,
	core.BiomeSwamp:       0.30,
	core.BiomeMountain:    0.15,
	core.BiomeCoastal:     0.10,
	core.BiomePlains:      0.08,
	core.BiomeDesert:      0.02,
	core.BiomeUnderground: 0,
}

var shrubChanceByBiome = map[core.Biome]float64{
	core.BiomeForest:      0.20,
	core.BiomeSwamp:       0.25,
	core.BiomeMountain:    0.15,
	core.BiomeCoastal:     0.15,
	core.BiomePlains:      0.15,
	core.BiomeDesert:      0.06,
	core.BiomeUnderground: 0.02,
}

var groundcoverChanceByBiome = map[core.Biome]float64{
	core.BiomeForest:      0.35,
	core.BiomeSwamp:       0.40,
	core.BiomeMountain:    0.10,
	core.BiomeCoastal:     0.15,
	core.BiomePlains:      0.20,
	core.BiomeDesert:      0.02,
	core.BiomeUnderground: 0.05,
}

var treeSpeciesByBiome = map[core.Biome][]Species{
	core.BiomeForest:   {SpeciesOak, SpeciesMaple, SpeciesBirch, SpeciesPine},
	core.BiomeSwamp:    {SpeciesWillow, SpeciesBirch},
	core.BiomeMountain: {SpeciesPine, SpeciesBirch},
	core.BiomeCoastal:  {SpeciesPine, SpeciesOak, SpeciesWillow},
	core.BiomePlains:   {SpeciesOak, SpeciesMaple},
	core.BiomeDesert:   {SpeciesJuniper},
}

// Height ranges in feet per tree species.
var heightRanges = map[Species][2]float64{
	SpeciesOak:     {30, 60},
	SpeciesMaple:   {30, 55},
	SpeciesBirch:   {25, 50},
	SpeciesPine:    {40, 80},
	SpeciesWillow:  {20, 45},
	SpeciesHazel:   {6, 15},
	SpeciesJuniper: {4, 12},
	SpeciesFern:    {1, 3},
}

var moistureFactors = [...]float64{0.2, 0.5, 1.0, 1.2, 1.3, 0.6}

var seasonGroundFactor = map[core.Season]float64{
	core.SeasonSpring: 1.0,
	core.SeasonSummer: 1.0,
	core.SeasonAutumn: 0.8,
	core.SeasonWinter: 0.5,
}

// Layer is the vegetation stage output.
type Layer struct {
	Tiles     *core.Grid[TileData]
	Patches   []ForestPatch
	Clearings []Clearing
}

// Generate runs the vegetation stage over the earlier layers.
func Generate(ctx core.TacticalMapContext, seed noise.Seed, geo *geology.Layer, topo *topography.Layer, hydro *hydrology.Layer, cfg Config) *Layer {
	w, h := topo.Elevation.W, topo.Elevation.H
	plants := placePlants(ctx, seed, geo, topo, hydro, cfg, w, h)
	tiles := assembleTiles(plants, hydro, w, h)
	patches := extractForestPatches(tiles)
	clearings := findClearings(tiles, hydro)
	return &Layer{Tiles: tiles, Patches: patches, Clearings: clearings}
}

// placePlants walks the grid in row-major order placing trees, shrubs, and
// groundcover. The walk order is fixed so the shared LCG stream reproduces
// exactly for a given seed.
func placePlants(ctx core.TacticalMapContext, seed noise.Seed, geo *geology.Layer, topo *topography.Layer, hydro *hydrology.Layer, cfg Config, w, h int) *core.Grid[[]Plant] {
	treeField := noise.NewField(seed, noise.StreamTrees)
	shrubField := noise.NewField(seed, noise.StreamShrubs)
	groundField := noise.NewField(seed, noise.StreamGroundcov)
	seq := noise.NewSequence(seed, noise.StreamTrees)
	groundSeq := noise.NewSequence(seed, noise.StreamGroundcov)

	mult := cfg.Multiplier
	if mult < 0 {
		mult = 0
	}

	trees := treeSpeciesByBiome[ctx.Biome]
	grid := core.NewGrid[[]Plant](w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ht := hydro.Tiles.At(x, y)
			tt := topo.Tiles.At(x, y)
			gt := geo.Tiles.At(x, y)

			var placed []Plant
			if ht.WaterDepth < 2 && len(trees) > 0 {
				chance := treeChanceByBiome[ctx.Biome] * moistureFactors[ht.Moisture] * mult
				if tt.Slope > 30 {
					chance *= 0.5
				}
				if gt.SoilDepth < 0.5 {
					chance *= 0.3
				}
				if treeField.At(float64(x), float64(y)) < chance {
					count := 1 + seq.Intn(3)
					for i := 0; i < count; i++ {
						sp := pickSpecies(trees, ht.Moisture, seq)
						r := heightRanges[sp]
						placed = append(placed, Plant{
							Species: sp,
							Kind:    KindTree,
							Height:  seq.Range(r[0], r[1]),
						})
					}
				}

				shrubChance := shrubChanceByBiome[ctx.Biome] * moistureFactors[ht.Moisture] * mult
				if shrubField.At(float64(x), float64(y)) < shrubChance {
					sp := SpeciesHazel
					if ctx.Biome == core.BiomeDesert || ctx.Biome == core.BiomeMountain {
						sp = SpeciesJuniper
					}
					r := heightRanges[sp]
					placed = append(placed, Plant{Species: sp, Kind: KindShrub, Height: seq.Range(r[0], r[1])})
				}
			}
			if ht.WaterDepth < 2 {
				chance := groundcoverChanceByBiome[ctx.Biome] * moistureFactors[ht.Moisture] *
					seasonGroundFactor[ctx.Season] * mult
				if groundField.At(float64(x), float64(y)) < chance {
					r := heightRanges[SpeciesFern]
					placed = append(placed, Plant{
						Species: SpeciesFern,
						Kind:    KindGroundcover,
						Height:  groundSeq.Range(r[0], r[1]),
					})
				}
			}
			grid.Set(x, y, placed)
		}
	}
	return grid
}

// pickSpecies chooses a tree species from the biome list, biasing wet ground
// toward willow when the biome carries it.
func pickSpecies(candidates []Species, m hydrology.Moisture, seq *noise.Sequence) Species {
	if m >= hydrology.MoistureWet {
		for _, sp := range candidates {
			if sp == SpeciesWillow && seq.Float64() < 0.5 {
				return SpeciesWillow
			}
		}
	}
	return candidates[seq.Intn(len(candidates))]
}
