// Package structures places buildings and roads on passable terrain and
// assembles the road network topology.
package structures

import (
	"tacmap/internal/core"
	"tacmap/internal/stage/geology"
	"tacmap/internal/stage/hydrology"
	"tacmap/internal/stage/topography"
	"tacmap/internal/stage/vegetation"
	"tacmap/pkg/noise"
)

// StructureType enumerates the placeable buildings.
type StructureType uint8

const (
	StructureNone StructureType = iota
	StructureHouse
	StructureBarn
	StructureWatchtower
	StructureRuin
)

func (s StructureType) String() string {
	names := [...]string{"none", "house", "barn", "watchtower", "ruin"}
	if int(s) >= len(names) {
		return "unknown"
	}
	return names[s]
}

// Material is what a structure is built from, chosen from local geology.
type Material uint8

const (
	MaterialWood Material = iota
	MaterialStone
)

func (m Material) String() string {
	if m == MaterialStone {
		return "stone"
	}
	return "wood"
}

// TileData is the per-tile structure record.
type TileData struct {
	Present  bool
	Type     StructureType
	Material Material
	Height   float64 // feet
	Road     bool
}

// RoadNetwork is the traced road topology.
type RoadNetwork struct {
	Segments      [][]core.Point
	Intersections []core.Point
	TotalLength   int // tiles of road
}

// Layer is the structures stage output.
type Layer struct {
	Tiles     *core.Grid[TileData]
	Buildings []core.Point
	Roads     RoadNetwork
}

// Budgets per development level: how many buildings per 100 tiles, and how
// strict the placement noise gate is.
var developmentBudgets = map[core.DevelopmentLevel]struct {
	perHundredTiles float64
	gate            float64
}{
	core.DevelopmentWild:    {perHundredTiles: 0.2, gate: 0.93},
	core.DevelopmentRural:   {perHundredTiles: 1.0, gate: 0.85},
	core.DevelopmentSettled: {perHundredTiles: 3.0, gate: 0.75},
}

var structureHeights = map[StructureType]float64{
	StructureHouse:      12,
	StructureBarn:       18,
	StructureWatchtower: 30,
	StructureRuin:       6,
}

// Generate runs the structures stage over the earlier layers.
func Generate(ctx core.TacticalMapContext, seed noise.Seed, geo *geology.Layer, topo *topography.Layer, hydro *hydrology.Layer, veg *vegetation.Layer, w, h int) *Layer {
	tiles := core.NewGrid[TileData](w, h)
	buildings := placeBuildings(ctx, seed, geo, topo, hydro, veg, tiles)
	roads := traceRoads(seed, topo, hydro, veg, tiles, buildings)
	return &Layer{Tiles: tiles, Buildings: buildings, Roads: roads}
}

// placeBuildings walks the grid gating candidate tiles with structure noise
// until the development budget is spent. Buildable ground is passable, gently
// sloped, and dry.
func placeBuildings(ctx core.TacticalMapContext, seed noise.Seed, geo *geology.Layer, topo *topography.Layer, hydro *hydrology.Layer, veg *vegetation.Layer, tiles *core.Grid[TileData]) []core.Point {
	budget, ok := developmentBudgets[ctx.Development]
	if !ok {
		budget = developmentBudgets[core.DevelopmentWild]
	}
	limit := int(budget.perHundredTiles * float64(tiles.W*tiles.H) / 100)
	if limit <= 0 {
		return nil
	}

	field := noise.NewField(seed, noise.StreamStructures)
	seq := noise.NewSequence(seed, noise.StreamStructures)

	var placed []core.Point
	for y := 0; y < tiles.H && len(placed) < limit; y++ {
		for x := 0; x < tiles.W && len(placed) < limit; x++ {
			if !buildable(x, y, topo, hydro, veg) {
				continue
			}
			if field.At(float64(x), float64(y)) <= budget.gate {
				continue
			}
			st := pickStructure(ctx, seq)
			tiles.Set(x, y, TileData{
				Present:  true,
				Type:     st,
				Material: materialFor(geo.Tiles.At(x, y).Formation, seq),
				Height:   structureHeights[st],
			})
			placed = append(placed, core.Point{X: x, Y: y})
		}
	}
	return placed
}

func buildable(x, y int, topo *topography.Layer, hydro *hydrology.Layer, veg *vegetation.Layer) bool {
	return veg.Tiles.At(x, y).Passable &&
		topo.Tiles.At(x, y).Slope < 15 &&
		hydro.Tiles.At(x, y).WaterDepth < 0.5
}

func pickStructure(ctx core.TacticalMapContext, seq *noise.Sequence) StructureType {
	if ctx.Development == core.DevelopmentWild {
		// Wilderness structures are leftovers, not homes.
		if seq.Float64() < 0.7 {
			return StructureRuin
		}
		return StructureWatchtower
	}
	switch seq.Intn(4) {
	case 0:
		return StructureBarn
	case 1:
		return StructureWatchtower
	default:
		return StructureHouse
	}
}

// materialFor picks stone where the bedrock quarries well, wood elsewhere.
func materialFor(f *geology.Formation, seq *noise.Sequence) Material {
	switch f.Rock {
	case geology.RockGranite, geology.RockLimestone, geology.RockSandstone, geology.RockMarble:
		if seq.Float64() < 0.7 {
			return MaterialStone
		}
	}
	return MaterialWood
}
