package hydrology

import "tacmap/internal/core"

// Base accumulation thresholds per hydrology regime. A tile becomes a stream
// channel when its accumulation reaches the threshold.
var baseThresholds = map[core.HydrologyRegime]float64{
	core.HydrologyArid:     25,
	core.HydrologySeasonal: 15,
	core.HydrologyStream:   8,
	core.HydrologyRiver:    5,
	core.HydrologyWetland:  3,
}

const defaultThreshold = 10

// streamThreshold resolves the effective accumulation threshold for the run.
func streamThreshold(ctx core.TacticalMapContext, multiplier float64) float64 {
	base, ok := baseThresholds[ctx.Hydrology]
	if !ok {
		base = defaultThreshold
	}
	if multiplier <= 0 {
		multiplier = 1
	}
	return base * multiplier
}

// strahlerOrders computes Strahler stream order by fixed-point iteration.
// Every stream tile starts at order 1; a tile is promoted to max+1 only when
// at least two upstream tributaries share the maximal tributary order.
// Orders are bounded and monotonically non-decreasing, so the loop
// terminates; the pass count is bounded by the longest flow path.
func strahlerOrders(dirs *core.Grid[core.Direction], stream *core.Grid[bool]) *core.Grid[int] {
	w, h := dirs.W, dirs.H
	orders := core.NewGrid[int](w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if stream.At(x, y) {
				orders.Set(x, y, 1)
			}
		}
	}

	for changed := true; changed; {
		changed = false
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if !stream.At(x, y) {
					continue
				}
				maxOrder, maxCount := 0, 0
				for _, up := range upstreamOf(dirs, x, y) {
					if !stream.At(up.X, up.Y) {
						continue
					}
					o := orders.At(up.X, up.Y)
					if o > maxOrder {
						maxOrder = o
						maxCount = 1
					} else if o == maxOrder {
						maxCount++
					}
				}
				if maxOrder == 0 {
					continue
				}
				next := maxOrder
				if maxCount >= 2 {
					next = maxOrder + 1
				}
				if next > orders.At(x, y) {
					orders.Set(x, y, next)
					changed = true
				}
			}
		}
	}
	return orders
}

// findSprings returns channel heads: stream tiles with no upstream stream
// neighbor, scanned in row-major order.
func findSprings(dirs *core.Grid[core.Direction], stream *core.Grid[bool]) []core.Point {
	var springs []core.Point
	for y := 0; y < stream.H; y++ {
		for x := 0; x < stream.W; x++ {
			if !stream.At(x, y) {
				continue
			}
			head := true
			for _, up := range upstreamOf(dirs, x, y) {
				if stream.At(up.X, up.Y) {
					head = false
					break
				}
			}
			if head {
				springs = append(springs, core.Point{X: x, Y: y})
			}
		}
	}
	return springs
}

// StreamSegment is one traced channel polyline.
type StreamSegment struct {
	Points []core.Point
	Order  int     // Strahler order at the segment head
	Width  float64 // feet
}

// extractSegments vectorizes the stream grid by tracing downstream from each
// channel head. A trace stops when it leaves the stream network or reaches a
// tile another trace already claimed; the shared junction tile closes the
// segment so polylines stay connected.
func extractSegments(dirs *core.Grid[core.Direction], stream *core.Grid[bool], orders *core.Grid[int], springs []core.Point) []StreamSegment {
	visited := core.NewGrid[bool](stream.W, stream.H)
	var segments []StreamSegment

	for _, head := range springs {
		if visited.At(head.X, head.Y) {
			continue
		}
		seg := StreamSegment{
			Order: orders.At(head.X, head.Y),
			Width: float64(orders.At(head.X, head.Y)) * 1.5,
		}
		x, y := head.X, head.Y
		for {
			if visited.At(x, y) {
				// Junction with an already traced channel.
				seg.Points = append(seg.Points, core.Point{X: x, Y: y})
				break
			}
			visited.Set(x, y, true)
			seg.Points = append(seg.Points, core.Point{X: x, Y: y})

			d := dirs.At(x, y)
			if d == core.NoDirection {
				break
			}
			off := core.DirOffsets[d]
			nx, ny := x+off.X, y+off.Y
			if !stream.InBounds(nx, ny) || !stream.At(nx, ny) {
				break
			}
			x, y = nx, ny
		}
		segments = append(segments, seg)
	}
	return segments
}
