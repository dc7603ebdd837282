// Package geology builds the bedrock and soil layer: formation selection per
// biome, a noise-thresholded bedrock pattern, weathering features, soil depth,
// and formation transition zones. Everything downstream (elevation bias,
// permeability, mineral features) reads from this layer.
package geology

import (
	"math"

	"tacmap/internal/core"
	"tacmap/pkg/noise"
)

// Soil depth adjustments per weathering feature, in feet. Dome and tower
// outcrops expose bare rock and pin the depth instead of adjusting it.
const (
	grusDepthBonus     = 3
	talusDepthBonus    = 2
	sinkholeDepthBonus = 5
	outcropDepth       = 0.5

	secondaryChance  = 0.3
	featureThreshold = 0.8
)

// TileData is the per-tile geology record.
type TileData struct {
	Formation          *Formation
	SoilDepth          float64 // feet
	Permeability       PermeabilityClass
	WeatheringFeatures []WeatheringFeature
	FractureIntensity  float64
}

// Layer is the geology stage output. Later stages receive it read-only.
type Layer struct {
	Primary   *Formation
	Secondary *Formation // nil when the run uses a single formation

	Bedrock     *core.Grid[*Formation]
	Tiles       *core.Grid[TileData]
	Transitions []core.Point
}

// Generate runs the geology stage for the given context and seed.
func Generate(ctx core.TacticalMapContext, seed noise.Seed, w, h int) *Layer {
	primary, secondary := selectFormations(ctx, seed)
	bedrock := generateBedrockPattern(w, h, primary, secondary, seed)

	weatherField := noise.NewField(seed, noise.StreamWeathering)
	soilField := noise.NewField(seed, noise.StreamSoil)

	tiles := core.NewGrid[TileData](w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f := bedrock.At(x, y)
			features := weatherTile(f, weatherField, x, y)
			tiles.Set(x, y, TileData{
				Formation:          f,
				SoilDepth:          soilDepth(f, features, soilField, x, y),
				Permeability:       f.Permeability,
				WeatheringFeatures: features,
				FractureIntensity:  f.FractureIntensity(),
			})
		}
	}

	return &Layer{
		Primary:     primary,
		Secondary:   secondary,
		Bedrock:     bedrock,
		Tiles:       tiles,
		Transitions: findTransitionZones(bedrock),
	}
}

// selectFormations picks the primary formation by LCG index and, with fixed
// probability, a distinct secondary as the next catalogue neighbor.
func selectFormations(ctx core.TacticalMapContext, seed noise.Seed) (*Formation, *Formation) {
	candidates := Candidates(ctx.Biome)
	seq := noise.NewSequence(seed, noise.StreamBedrock)
	primaryIdx := seq.Intn(len(candidates))
	primary := candidates[primaryIdx]

	var secondary *Formation
	if len(candidates) > 1 && seq.Float64() < secondaryChance {
		secondary = candidates[(primaryIdx+1)%len(candidates)]
	}
	return primary, secondary
}

// generateBedrockPattern splits the grid between the two formations using
// noise against a bedding-dependent threshold. With no secondary formation
// the grid is uniform.
func generateBedrockPattern(w, h int, primary, secondary *Formation, seed noise.Seed) *core.Grid[*Formation] {
	grid := core.NewGrid[*Formation](w, h)
	if secondary == nil {
		grid.Fill(primary)
		return grid
	}

	field := noise.NewField(seed, noise.StreamBedrock)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			threshold := beddingThreshold(primary.Bedding, x, y)
			if field.At(float64(x), float64(y)) > threshold {
				grid.Set(x, y, primary)
			} else {
				grid.Set(x, y, secondary)
			}
		}
	}
	return grid
}

func beddingThreshold(bedding BeddingPattern, x, y int) float64 {
	switch bedding {
	case BeddingVertical:
		return math.Sin(float64(x)*0.1) * 0.3
	case BeddingFolded:
		return math.Sin(float64(x)*0.1) * math.Cos(float64(y)*0.1) * 0.3
	default:
		return 0
	}
}

// weatherTile gates each feature in the formation's weathering profile with
// its own noise sample. Profile entries sample at offset coordinates so the
// features stay decorrelated within the shared weathering stream.
func weatherTile(f *Formation, field noise.Field, x, y int) []WeatheringFeature {
	var features []WeatheringFeature
	for i, feat := range f.Weathering {
		sample := field.At(float64(x+i*97), float64(y+i*53))
		if sample > featureThreshold {
			features = append(features, feat)
		}
	}
	return features
}

// soilDepth derives soil depth from rock hardness, a noise jitter, and the
// weathering features present on the tile. Depth never goes below zero, and
// bare outcrops force a fixed thin cover.
func soilDepth(f *Formation, features []WeatheringFeature, field noise.Field, x, y int) float64 {
	depth := (10-f.Hardness)*0.8 + field.At(float64(x), float64(y))*2

	outcrop := false
	for _, feat := range features {
		switch feat {
		case FeatureGrus:
			depth += grusDepthBonus
		case FeatureTalus:
			depth += talusDepthBonus
		case FeatureSinkhole:
			depth += sinkholeDepthBonus
		case FeatureDome, FeatureTower:
			outcrop = true
		}
	}
	if outcrop {
		return outcropDepth
	}
	if depth < 0 {
		depth = 0
	}
	return depth
}

// findTransitionZones scans the interior for 4-neighbor formation mismatches.
// The border ring is excluded.
func findTransitionZones(bedrock *core.Grid[*Formation]) []core.Point {
	var zones []core.Point
	for y := 1; y < bedrock.H-1; y++ {
		for x := 1; x < bedrock.W-1; x++ {
			f := bedrock.At(x, y)
			if bedrock.At(x, y-1) != f || bedrock.At(x, y+1) != f ||
				bedrock.At(x-1, y) != f || bedrock.At(x+1, y) != f {
				zones = append(zones, core.Point{X: x, Y: y})
			}
		}
	}
	return zones
}
