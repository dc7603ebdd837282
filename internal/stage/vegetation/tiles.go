package vegetation

import (
	"tacmap/internal/core"
	"tacmap/internal/stage/hydrology"
)

// VegType classifies each tile's overall vegetation.
type VegType uint8

const (
	VegBare VegType = iota
	VegGrassland
	VegShrubland
	VegSparseTrees
	VegDenseTrees
	VegMarsh
)

func (v VegType) String() string {
	names := [...]string{"bare", "grassland", "shrubland", "sparse-trees", "dense-trees", "marsh"}
	if int(v) >= len(names) {
		return "unknown"
	}
	return names[v]
}

// TileData is the per-tile vegetation record.
type TileData struct {
	CanopyHeight  float64 // feet, tallest tree on the tile
	CanopyDensity float64 // [0, 1]
	Type          VegType
	Dominant      Species // SpeciesNone when the tile has no plants
	Plants        []Plant
	GroundCover   float64 // [0, 1]

	Passable    bool
	Concealment bool
	Cover       bool
}

// assembleTiles folds the placed plants and the hydrology layer into the
// final per-tile vegetation records.
func assembleTiles(plants *core.Grid[[]Plant], hydro *hydrology.Layer, w, h int) *core.Grid[TileData] {
	tiles := core.NewGrid[TileData](w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tiles.Set(x, y, makeTile(plants.At(x, y), hydro.Tiles.At(x, y)))
		}
	}
	return tiles
}

func makeTile(plants []Plant, ht hydrology.TileData) TileData {
	td := TileData{Plants: plants, Dominant: dominantSpecies(plants)}

	treeCount, shrubCount := 0, 0
	for _, p := range plants {
		switch p.Kind {
		case KindTree:
			treeCount++
			if p.Height > td.CanopyHeight {
				td.CanopyHeight = p.Height
			}
		case KindShrub:
			shrubCount++
		}
	}

	td.CanopyDensity = float64(treeCount)*0.35 + float64(shrubCount)*0.15
	if td.CanopyDensity > 1 {
		td.CanopyDensity = 1
	}
	td.GroundCover = groundCoverFor(ht.Moisture, treeCount)

	switch {
	case treeCount >= 2 || (treeCount >= 1 && td.CanopyDensity > 0.6):
		td.Type = VegDenseTrees
	case treeCount >= 1:
		td.Type = VegSparseTrees
	case shrubCount >= 1:
		td.Type = VegShrubland
	case ht.Moisture >= hydrology.MoistureWet && ht.WaterDepth < 2 && td.GroundCover > 0.3:
		td.Type = VegMarsh
	case td.GroundCover > 0.4:
		td.Type = VegGrassland
	default:
		td.Type = VegBare
	}

	td.Passable = td.Type != VegDenseTrees && ht.WaterDepth < 2
	td.Concealment = td.CanopyDensity > 0.3 || td.Type == VegShrubland
	td.Cover = td.Type == VegDenseTrees || (td.Type == VegSparseTrees && td.CanopyHeight > 15)
	return td
}

// groundCoverFor estimates the herbaceous cover fraction from moisture, with
// canopy shading reducing it.
func groundCoverFor(m hydrology.Moisture, treeCount int) float64 {
	cover := moistureFactors[m] * 0.5
	if treeCount > 1 {
		cover *= 0.6
	}
	if cover > 1 {
		cover = 1
	}
	return cover
}

// dominantSpecies is the plurality vote over the tile's plants. Ties resolve
// to the lowest species ordinal so the result never depends on plant slice
// order.
func dominantSpecies(plants []Plant) Species {
	if len(plants) == 0 {
		return SpeciesNone
	}
	var counts [8]int
	for _, p := range plants {
		if int(p.Species) < len(counts) {
			counts[p.Species]++
		}
	}
	best := SpeciesNone
	bestCount := 0
	for sp, n := range counts {
		if n > bestCount {
			bestCount = n
			best = Species(sp)
		}
	}
	return best
}
