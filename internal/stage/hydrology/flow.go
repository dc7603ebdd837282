package hydrology

import (
	"sort"

	"tacmap/internal/core"
)

// flowDirections assigns each tile its D8 flow direction: the steepest
// descent among the 8 neighbors, clockwise from north. Ties take the first
// direction in clockwise order. Tiles with no lower neighbor are sinks.
func flowDirections(elevation *core.Grid[float64]) *core.Grid[core.Direction] {
	dirs := core.NewGrid[core.Direction](elevation.W, elevation.H)
	dirs.Fill(core.NoDirection)

	for y := 0; y < elevation.H; y++ {
		for x := 0; x < elevation.W; x++ {
			self := elevation.At(x, y)
			best := core.NoDirection
			bestDrop := 0.0
			for d, off := range core.DirOffsets {
				nx, ny := x+off.X, y+off.Y
				if !elevation.InBounds(nx, ny) {
					continue
				}
				drop := self - elevation.At(nx, ny)
				if drop > bestDrop {
					bestDrop = drop
					best = core.Direction(d)
				}
			}
			dirs.Set(x, y, best)
		}
	}
	return dirs
}

// flowAccumulation sums drainage along the flow directions. Tiles are
// processed in descending elevation order, which respects the drainage DAG
// because flow always runs strictly downhill. Every tile contributes itself,
// so accumulation is at least 1 everywhere.
func flowAccumulation(elevation *core.Grid[float64], dirs *core.Grid[core.Direction]) *core.Grid[float64] {
	w, h := elevation.W, elevation.H
	acc := core.NewGrid[float64](w, h)
	acc.Fill(1)

	order := make([]int, w*h)
	for i := range order {
		order[i] = i
	}
	cells := elevation.Cells()
	sort.Slice(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if cells[ia] != cells[ib] {
			return cells[ia] > cells[ib]
		}
		return ia < ib
	})

	accCells := acc.Cells()
	dirCells := dirs.Cells()
	for _, idx := range order {
		d := dirCells[idx]
		if d == core.NoDirection {
			continue
		}
		off := core.DirOffsets[d]
		x := idx % w
		y := idx / w
		accCells[(y+off.Y)*w+(x+off.X)] += accCells[idx]
	}
	return acc
}

// upstreamOf reports which of the 8 neighbors drain into (x, y).
func upstreamOf(dirs *core.Grid[core.Direction], x, y int) []core.Point {
	var ups []core.Point
	for d, off := range core.DirOffsets {
		nx, ny := x+off.X, y+off.Y
		if !dirs.InBounds(nx, ny) {
			continue
		}
		if dirs.At(nx, ny) == core.Direction(d).Opposite() {
			ups = append(ups, core.Point{X: nx, Y: ny})
		}
	}
	return ups
}
