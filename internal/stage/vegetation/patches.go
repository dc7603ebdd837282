package vegetation

import (
	"tacmap/internal/core"
	"tacmap/internal/stage/hydrology"
)

// ForestType classifies a patch by its species composition.
type ForestType uint8

const (
	ForestMixed ForestType = iota
	ForestDeciduous
	ForestConiferous
)

func (f ForestType) String() string {
	names := [...]string{"mixed", "deciduous", "coniferous"}
	if int(f) >= len(names) {
		return "unknown"
	}
	return names[f]
}

// ForestPatch is one contiguous stand of trees.
type ForestPatch struct {
	Tiles      []core.Point
	Type       ForestType
	AvgDensity float64
}

// Clearing is an open pocket surrounded mostly by forest.
type Clearing struct {
	Tiles  []core.Point
	Center core.Point
}

const minPatchTiles = 3

const (
	maxClearingTiles       = 25
	clearingForestFraction = 0.6
)

func isForest(t VegType) bool {
	return t == VegDenseTrees || t == VegSparseTrees
}

// extractForestPatches flood-fills 8-connected tree tiles into patches,
// discarding stands under the minimum size. The fill uses an explicit stack
// so large maps cannot overflow the call stack. Conifer counting uses pine
// as the proxy; a 2:1 majority decides the patch type.
func extractForestPatches(tiles *core.Grid[TileData]) []ForestPatch {
	w, h := tiles.W, tiles.H
	visited := core.NewGrid[bool](w, h)
	var patches []ForestPatch

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if visited.At(x, y) || !isForest(tiles.At(x, y).Type) {
				continue
			}

			var member []core.Point
			conifer, deciduous := 0, 0
			densitySum := 0.0

			stack := []core.Point{{X: x, Y: y}}
			visited.Set(x, y, true)
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				member = append(member, p)

				td := tiles.At(p.X, p.Y)
				densitySum += td.CanopyDensity
				for _, plant := range td.Plants {
					if plant.Kind != KindTree {
						continue
					}
					if plant.Species == SpeciesPine {
						conifer++
					} else {
						deciduous++
					}
				}

				for _, off := range core.DirOffsets {
					nx, ny := p.X+off.X, p.Y+off.Y
					if !tiles.InBounds(nx, ny) || visited.At(nx, ny) {
						continue
					}
					if !isForest(tiles.At(nx, ny).Type) {
						continue
					}
					visited.Set(nx, ny, true)
					stack = append(stack, core.Point{X: nx, Y: ny})
				}
			}

			if len(member) < minPatchTiles {
				continue
			}
			patches = append(patches, ForestPatch{
				Tiles:      member,
				Type:       patchType(conifer, deciduous),
				AvgDensity: densitySum / float64(len(member)),
			})
		}
	}
	return patches
}

func patchType(conifer, deciduous int) ForestType {
	switch {
	case conifer > 2*deciduous:
		return ForestConiferous
	case deciduous > 2*conifer:
		return ForestDeciduous
	default:
		return ForestMixed
	}
}

// findClearings flood-fills 4-connected open ground and keeps small pockets
// whose border is mostly forest.
func findClearings(tiles *core.Grid[TileData], hydro *hydrology.Layer) []Clearing {
	w, h := tiles.W, tiles.H
	visited := core.NewGrid[bool](w, h)
	offsets := [4]core.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	var clearings []Clearing

	open := func(x, y int) bool {
		t := tiles.At(x, y).Type
		return (t == VegBare || t == VegGrassland || t == VegShrubland) &&
			hydro.Tiles.At(x, y).WaterDepth < 0.5
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if visited.At(x, y) || !open(x, y) {
				continue
			}

			var member []core.Point
			borderForest, borderTotal := 0, 0
			sumX, sumY := 0, 0

			stack := []core.Point{{X: x, Y: y}}
			visited.Set(x, y, true)
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				member = append(member, p)
				sumX += p.X
				sumY += p.Y

				for _, off := range offsets {
					nx, ny := p.X+off.X, p.Y+off.Y
					if !tiles.InBounds(nx, ny) {
						continue
					}
					if open(nx, ny) {
						if !visited.At(nx, ny) {
							visited.Set(nx, ny, true)
							stack = append(stack, core.Point{X: nx, Y: ny})
						}
						continue
					}
					borderTotal++
					if isForest(tiles.At(nx, ny).Type) {
						borderForest++
					}
				}
			}

			if len(member) > maxClearingTiles || borderTotal == 0 {
				continue
			}
			if float64(borderForest)/float64(borderTotal) < clearingForestFraction {
				continue
			}
			clearings = append(clearings, Clearing{
				Tiles:  member,
				Center: core.Point{X: sumX / len(member), Y: sumY / len(member)},
			})
		}
	}
	return clearings
}
