// Package topography derives the elevation field and per-tile terrain shape:
// slope, aspect, relative elevation, and the ridge/valley/drainage
// classification every later stage keys off.
package topography

import (
	"math"

	"tacmap/internal/core"
)

// Aspect is the 8-way downslope compass direction, or flat.
type Aspect uint8

const (
	AspectEast Aspect = iota
	AspectSoutheast
	AspectSouth
	AspectSouthwest
	AspectWest
	AspectNorthwest
	AspectNorth
	AspectNortheast
	AspectFlat
)

func (a Aspect) String() string {
	names := [...]string{"E", "SE", "S", "SW", "W", "NW", "N", "NE", "flat"}
	if int(a) >= len(names) {
		return "unknown"
	}
	return names[a]
}

// TileData is the per-tile topography record.
type TileData struct {
	Elevation float64 // feet
	Slope     float64 // degrees, [0, 90]
	Aspect    Aspect
	Relative  float64 // relative elevation, [-1, 1]

	Ridge    bool
	Valley   bool
	Drainage bool
}

// Layer is the topography stage output. The elevation grid is immutable once
// this stage returns.
type Layer struct {
	Elevation *core.Grid[float64]
	Tiles     *core.Grid[TileData]

	MinElevation float64
	MaxElevation float64
	MeanSlope    float64
}

// Calculate derives the full topography layer from a finished elevation grid.
func Calculate(elevation *core.Grid[float64]) *Layer {
	w, h := elevation.W, elevation.H
	tiles := core.NewGrid[TileData](w, h)

	minE, maxE := elevation.At(0, 0), elevation.At(0, 0)
	for _, e := range elevation.Cells() {
		if e < minE {
			minE = e
		}
		if e > maxE {
			maxE = e
		}
	}
	mid := (minE + maxE) / 2
	halfRange := (maxE - minE) / 2

	slopeSum := 0.0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := gradient(elevation, x, y)
			slope := math.Atan(math.Hypot(dx, dy)) * 180 / math.Pi
			if slope > 90 {
				slope = 90
			}
			slopeSum += slope

			rel := 0.0
			if halfRange > 0 {
				rel = (elevation.At(x, y) - mid) / halfRange
			}
			if rel < -1 {
				rel = -1
			}
			if rel > 1 {
				rel = 1
			}

			tiles.Set(x, y, TileData{
				Elevation: elevation.At(x, y),
				Slope:     slope,
				Aspect:    aspectOf(dx, dy),
				Relative:  rel,
			})
		}
	}

	// The ridge/valley pass annotates the freshly built grid in place; it is
	// the only mutation this layer sees after construction.
	annotateRidgesAndValleys(elevation, tiles)

	return &Layer{
		Elevation:    elevation,
		Tiles:        tiles,
		MinElevation: minE,
		MaxElevation: maxE,
		MeanSlope:    slopeSum / float64(w*h),
	}
}

// gradient uses central differences over a 10-foot cell span. Boundary tiles
// clamp the missing neighbor to the tile's own value; there is no wraparound.
func gradient(elevation *core.Grid[float64], x, y int) (float64, float64) {
	self := elevation.At(x, y)
	east, west, south, north := self, self, self, self
	if x+1 < elevation.W {
		east = elevation.At(x+1, y)
	}
	if x-1 >= 0 {
		west = elevation.At(x-1, y)
	}
	if y+1 < elevation.H {
		south = elevation.At(x, y+1)
	}
	if y-1 >= 0 {
		north = elevation.At(x, y-1)
	}
	return (east - west) / 10, (south - north) / 10
}

// aspectOf maps the gradient to one of 8 compass sectors, each 45 degrees
// wide and centered on its cardinal or diagonal. A zero gradient is flat.
func aspectOf(dx, dy float64) Aspect {
	if dx == 0 && dy == 0 {
		return AspectFlat
	}
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	for deg < 0 {
		deg += 360
	}
	sector := int(math.Mod(deg+22.5, 360) / 45)
	return Aspect(sector % 8)
}

// annotateRidgesAndValleys classifies interior tiles by the 8-neighbor
// majority rule: at least 6 lower neighbors makes a ridge, at least 6 higher
// makes a valley (and implies drainage). Steep low tiles drain regardless.
func annotateRidgesAndValleys(elevation *core.Grid[float64], tiles *core.Grid[TileData]) {
	for y := 1; y < elevation.H-1; y++ {
		for x := 1; x < elevation.W-1; x++ {
			self := elevation.At(x, y)
			lower, higher := 0, 0
			for _, off := range core.DirOffsets {
				n := elevation.At(x+off.X, y+off.Y)
				if n < self {
					lower++
				} else if n > self {
					higher++
				}
			}

			td := tiles.At(x, y)
			if lower >= 6 {
				td.Ridge = true
			} else if higher >= 6 {
				td.Valley = true
				td.Drainage = true
			}
			if td.Slope > 30 && td.Relative < -0.3 {
				td.Drainage = true
			}
			tiles.Set(x, y, td)
		}
	}
}
