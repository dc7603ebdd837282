package topography

import (
	"tacmap/internal/core"
	"tacmap/internal/stage/geology"
	"tacmap/pkg/noise"
)

// Relief ranges in feet per elevation regime, before the ruggedness
// multiplier is applied.
var reliefByRegime = map[core.ElevationRegime]struct {
	base   float64
	relief float64
}{
	core.ElevationFlat:        {base: 100, relief: 30},
	core.ElevationRolling:     {base: 150, relief: 80},
	core.ElevationHilly:       {base: 250, relief: 200},
	core.ElevationMountainous: {base: 400, relief: 500},
}

const (
	elevationOctaves     = 4
	elevationPersistence = 0.5
	elevationScale       = 0.1

	hardnessBias  = 2   // feet of extra relief per point of rock hardness
	soilDepthBias = 0.5 // feet per foot of soil cover
)

// SynthesizeElevation builds the elevation grid from fractal noise shaped by
// the elevation regime, the ruggedness multiplier, and the geology layer:
// harder bedrock stands proud, deeper soil mounds slightly.
func SynthesizeElevation(ctx core.TacticalMapContext, seed noise.Seed, geo *geology.Layer, w, h int, ruggedness float64) *core.Grid[float64] {
	regime, ok := reliefByRegime[ctx.Elevation]
	if !ok {
		regime = reliefByRegime[core.ElevationRolling]
	}
	if ruggedness <= 0 {
		ruggedness = 1
	}

	field := noise.NewField(seed, noise.StreamElevation)
	grid := core.NewGrid[float64](w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := field.Fractal(float64(x)*elevationScale, float64(y)*elevationScale, elevationOctaves, elevationPersistence)
			e := regime.base + n*regime.relief*ruggedness

			g := geo.Tiles.At(x, y)
			e += g.Formation.Hardness * hardnessBias
			e += g.SoilDepth * soilDepthBias

			grid.Set(x, y, e)
		}
	}
	return grid
}
