package structures

import (
	"tacmap/internal/core"
	"tacmap/internal/stage/hydrology"
	"tacmap/internal/stage/topography"
	"tacmap/internal/stage/vegetation"
	"tacmap/pkg/noise"
)

// traceRoads connects consecutive buildings with stepwise paths, marking road
// tiles and collecting the network topology. A tile already claimed by an
// earlier segment becomes an intersection.
func traceRoads(seed noise.Seed, topo *topography.Layer, hydro *hydrology.Layer, veg *vegetation.Layer, tiles *core.Grid[TileData], buildings []core.Point) RoadNetwork {
	var network RoadNetwork
	if len(buildings) < 2 {
		return network
	}

	seq := noise.NewSequence(seed, noise.StreamRoads)
	intersections := map[core.Point]bool{}

	for i := 0; i+1 < len(buildings); i++ {
		segment := tracePath(buildings[i], buildings[i+1], topo, hydro, veg, seq)
		if len(segment) == 0 {
			continue
		}
		for _, p := range segment {
			td := tiles.At(p.X, p.Y)
			if !td.Road {
				td.Road = true
				tiles.Set(p.X, p.Y, td)
				network.TotalLength++
			} else if !td.Present {
				intersections[p] = true
			}
		}
		network.Segments = append(network.Segments, segment)
	}

	for y := 0; y < tiles.H; y++ {
		for x := 0; x < tiles.W; x++ {
			if intersections[core.Point{X: x, Y: y}] {
				network.Intersections = append(network.Intersections, core.Point{X: x, Y: y})
			}
		}
	}
	return network
}

// tracePath walks from a toward b one tile at a time, preferring the axis
// with the larger remaining distance and deflecting along the other axis when
// the preferred step is blocked. The walk gives up rather than loop forever
// when both axes are blocked.
func tracePath(a, b core.Point, topo *topography.Layer, hydro *hydrology.Layer, veg *vegetation.Layer, seq *noise.Sequence) []core.Point {
	passable := func(x, y int) bool {
		return topo.Tiles.InBounds(x, y) &&
			veg.Tiles.At(x, y).Passable &&
			hydro.Tiles.At(x, y).WaterDepth < 1 &&
			topo.Tiles.At(x, y).Slope < 25
	}

	path := []core.Point{a}
	x, y := a.X, a.Y
	limit := (topo.Tiles.W + topo.Tiles.H) * 4
	for steps := 0; steps < limit && (x != b.X || y != b.Y); steps++ {
		dx, dy := sign(b.X-x), sign(b.Y-y)

		// Prefer the longer axis; jitter keeps long straight runs from
		// looking surveyed.
		stepX := abs(b.X-x) > abs(b.Y-y)
		if abs(b.X-x) == abs(b.Y-y) {
			stepX = seq.Intn(2) == 0
		}

		nx, ny := x, y
		if stepX && dx != 0 {
			nx += dx
		} else if dy != 0 {
			ny += dy
		} else {
			nx += dx
		}

		if !passable(nx, ny) {
			// Deflect along the other axis.
			nx, ny = x, y
			if stepX && dy != 0 {
				ny += dy
			} else if dx != 0 {
				nx += dx
			}
			if (nx == x && ny == y) || !passable(nx, ny) {
				return path
			}
		}
		x, y = nx, ny
		path = append(path, core.Point{X: x, Y: y})
	}
	if x != b.X || y != b.Y {
		return path
	}
	return path
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
