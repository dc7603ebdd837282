// Package hydrology routes water across the finished topography: D8 flow
// directions, flow accumulation, stream channels with Strahler order, water
// depth with pool detection, moisture classification, and the derived stream
// segments and springs.
package hydrology

import (
	"tacmap/internal/core"
	"tacmap/internal/stage/geology"
	"tacmap/internal/stage/topography"
	"tacmap/pkg/noise"
)

// Config holds the hydrology tunables that come from generation settings.
type Config struct {
	// ThresholdMultiplier scales the regime's base stream threshold.
	ThresholdMultiplier float64
	// PoolThreshold is the pool-noise cutoff for standing water in
	// depressions.
	PoolThreshold float64
}

// DefaultConfig returns the standard hydrology tuning.
func DefaultConfig() Config {
	return Config{ThresholdMultiplier: 1.0, PoolThreshold: 0.7}
}

// Water depth multipliers per hydrology regime.
var depthMultipliers = map[core.HydrologyRegime]float64{
	core.HydrologyRiver:    2,
	core.HydrologyStream:   1.5,
	core.HydrologySeasonal: 0.5,
}

// TileData is the per-tile hydrology record.
type TileData struct {
	Accumulation float64
	Direction    core.Direction
	WaterDepth   float64 // feet
	Moisture     Moisture
	StreamOrder  int // 0 = not a stream

	Spring bool
	Stream bool
	Pool   bool
}

// Layer is the hydrology stage output.
type Layer struct {
	Tiles          *core.Grid[TileData]
	FlowDirections *core.Grid[core.Direction]
	Accumulation   *core.Grid[float64]

	Segments  []StreamSegment
	Springs   []core.Point
	Threshold float64
}

// Generate runs the hydrology stage over the finished topography and geology
// layers.
func Generate(ctx core.TacticalMapContext, seed noise.Seed, geo *geology.Layer, topo *topography.Layer, cfg Config) *Layer {
	w, h := topo.Elevation.W, topo.Elevation.H

	dirs := flowDirections(topo.Elevation)
	acc := flowAccumulation(topo.Elevation, dirs)

	threshold := streamThreshold(ctx, cfg.ThresholdMultiplier)
	stream := core.NewGrid[bool](w, h)
	for i, a := range acc.Cells() {
		stream.Cells()[i] = a >= threshold
	}

	orders := strahlerOrders(dirs, stream)
	springs := findSprings(dirs, stream)
	segments := extractSegments(dirs, stream, orders, springs)

	springSet := make(map[core.Point]bool, len(springs))
	for _, s := range springs {
		springSet[s] = true
	}

	depthField := noise.NewField(seed, noise.StreamWaterDepth)
	poolField := noise.NewField(seed, noise.StreamPool)
	elevRange := topo.MaxElevation - topo.MinElevation

	tiles := core.NewGrid[TileData](w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			td := TileData{
				Accumulation: acc.At(x, y),
				Direction:    dirs.At(x, y),
				StreamOrder:  orders.At(x, y),
				Stream:       stream.At(x, y),
				Spring:       springSet[core.Point{X: x, Y: y}],
			}
			tt := topo.Tiles.At(x, y)

			if td.Stream {
				td.WaterDepth = streamDepth(ctx, td.StreamOrder, tt.Valley, depthField, x, y)
			} else if ctx.Hydrology != core.HydrologyArid {
				depth, pooled := poolDepth(tt, topo.MinElevation, elevRange, poolField, cfg.PoolThreshold, x, y)
				if pooled {
					td.WaterDepth = depth
					td.Pool = true
				}
			}

			td.Moisture = classifyMoisture(ctx.Hydrology, td.WaterDepth, td.Accumulation, geo.Tiles.At(x, y).Permeability)
			tiles.Set(x, y, td)
		}
	}

	return &Layer{
		Tiles:          tiles,
		FlowDirections: dirs,
		Accumulation:   acc,
		Segments:       segments,
		Springs:        springs,
		Threshold:      threshold,
	}
}

// streamDepth sizes the channel from its Strahler order and the regime, with
// a ±20% noise jitter and a valley bonus.
func streamDepth(ctx core.TacticalMapContext, order int, valley bool, field noise.Field, x, y int) float64 {
	mult, ok := depthMultipliers[ctx.Hydrology]
	if !ok {
		mult = 1
	}
	depth := float64(order) * 0.5 * mult
	depth *= 0.8 + 0.4*field.At(float64(x), float64(y))
	if valley {
		depth *= 1.5
	}
	return depth
}

// poolDepth detects standing water in depressions: valleys, or low flat
// ground in the bottom 30% of the elevation range. The pool-noise sample
// doubles as the fill amount.
func poolDepth(tt topography.TileData, minElevation, elevRange float64, field noise.Field, threshold float64, x, y int) (float64, bool) {
	low := tt.Elevation < minElevation+0.3*elevRange && tt.Slope < 5
	if !tt.Valley && !low {
		return 0, false
	}
	chance := field.At(float64(x), float64(y))
	if chance <= threshold {
		return 0, false
	}
	return 1 + chance*2, true
}
