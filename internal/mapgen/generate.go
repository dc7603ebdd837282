// Package mapgen runs the full generation pipeline: geology, topography,
// hydrology, vegetation, structures, features, in that fixed order, threading
// one seed and one resolved context through every stage.
package mapgen

import (
	"fmt"
	"time"

	"tacmap/internal/core"
	"tacmap/internal/stage/features"
	"tacmap/internal/stage/geology"
	"tacmap/internal/stage/hydrology"
	"tacmap/internal/stage/structures"
	"tacmap/internal/stage/topography"
	"tacmap/internal/stage/vegetation"
)

// Layers bundles the per-stage outputs of one run.
type Layers struct {
	Geology    *geology.Layer
	Topography *topography.Layer
	Hydrology  *hydrology.Layer
	Vegetation *vegetation.Layer
	Structures *structures.Layer
	Features   *features.Layer
}

// Stats summarizes one generated map.
type Stats struct {
	StreamTiles   int
	StreamPercent float64
	Springs       int
	Pools         int

	ForestPercent float64
	ForestPatches int
	Clearings     int

	Buildings int
	RoadTiles int

	Hazards   int
	Resources int
	Landmarks int

	MinElevation float64
	MaxElevation float64
	MeanSlope    float64
}

// MapResult is the complete output of one generation run.
type MapResult struct {
	Width  int
	Height int
	Seed   int64

	Context  core.TacticalMapContext
	Settings GenerationSettings

	Layers   Layers
	Stats    Stats
	Warnings []string

	GenerationTime time.Duration
}

// Generate validates the settings once, then executes the pipeline. A
// validation failure produces no partial output; warnings never abort.
func Generate(settings GenerationSettings) (*MapResult, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	start := time.Now()
	ctx := settings.Context()
	seed := settings.EffectiveSeed()
	w, h := settings.Width, settings.Height

	warnings := sizeWarnings(w, h)

	geo := geology.Generate(ctx, seed, w, h)

	elev := topography.SynthesizeElevation(ctx, seed, geo, w, h, settings.Ruggedness)
	topo := topography.Calculate(elev)

	hydroCfg := hydrology.DefaultConfig()
	// Abundant water lowers the stream threshold, scarce water raises it.
	hydroCfg.ThresholdMultiplier = 1 / settings.WaterAbundance
	hydro := hydrology.Generate(ctx, seed, geo, topo, hydroCfg)

	vegCfg := vegetation.Config{Multiplier: settings.VegetationMultiplier}
	veg := vegetation.Generate(ctx, seed, geo, topo, hydro, vegCfg)

	structs := structures.Generate(ctx, seed, geo, topo, hydro, veg, w, h)
	feats := features.Generate(ctx, seed, geo, topo, hydro, veg, w, h)

	layers := Layers{
		Geology:    geo,
		Topography: topo,
		Hydrology:  hydro,
		Vegetation: veg,
		Structures: structs,
		Features:   feats,
	}
	stats := computeStats(layers, w, h)
	warnings = append(warnings, hydrologyWarnings(ctx, stats)...)

	return &MapResult{
		Width:          w,
		Height:         h,
		Seed:           seed.Value,
		Context:        ctx,
		Settings:       settings,
		Layers:         layers,
		Stats:          stats,
		Warnings:       warnings,
		GenerationTime: time.Since(start),
	}, nil
}

func sizeWarnings(w, h int) []string {
	var warnings []string
	if w*h > 10000 {
		warnings = append(warnings, fmt.Sprintf("very large generation area: %d tiles", w*h))
	}
	if w > 4*h || h > 4*w {
		warnings = append(warnings, fmt.Sprintf("extreme aspect ratio: %dx%d", w, h))
	}
	return warnings
}

func hydrologyWarnings(ctx core.TacticalMapContext, stats Stats) []string {
	if ctx.Hydrology != core.HydrologyRiver {
		return nil
	}
	if stats.StreamPercent < 1 || stats.StreamPercent > 40 {
		return []string{fmt.Sprintf("river regime produced %.1f%% stream tiles, expected 1%% to 40%%", stats.StreamPercent)}
	}
	return nil
}

func computeStats(layers Layers, w, h int) Stats {
	total := float64(w * h)
	stats := Stats{
		MinElevation:  layers.Topography.MinElevation,
		MaxElevation:  layers.Topography.MaxElevation,
		MeanSlope:     layers.Topography.MeanSlope,
		Springs:       len(layers.Hydrology.Springs),
		ForestPatches: len(layers.Vegetation.Patches),
		Clearings:     len(layers.Vegetation.Clearings),
		Buildings:     len(layers.Structures.Buildings),
		RoadTiles:     layers.Structures.Roads.TotalLength,
		Hazards:       len(layers.Features.Hazards),
		Resources:     len(layers.Features.Resources),
		Landmarks:     len(layers.Features.Landmarks),
	}

	forest := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ht := layers.Hydrology.Tiles.At(x, y)
			if ht.Stream {
				stats.StreamTiles++
			}
			if ht.Pool {
				stats.Pools++
			}
			vt := layers.Vegetation.Tiles.At(x, y).Type
			if vt == vegetation.VegDenseTrees || vt == vegetation.VegSparseTrees {
				forest++
			}
		}
	}
	stats.StreamPercent = float64(stats.StreamTiles) / total * 100
	stats.ForestPercent = float64(forest) / total * 100
	return stats
}
