// Package features scatters hazards, resources, and landmarks over the
// finished layers. The final grid is written in strict priority order:
// hazards first, resources only onto empty tiles, landmarks always last and
// always winning.
package features

import (
	"tacmap/internal/core"
	"tacmap/internal/stage/geology"
	"tacmap/internal/stage/hydrology"
	"tacmap/internal/stage/topography"
	"tacmap/internal/stage/vegetation"
	"tacmap/pkg/noise"
)

// Kind is the feature priority class.
type Kind uint8

const (
	KindNone Kind = iota
	KindHazard
	KindResource
	KindLandmark
)

// FeatureType enumerates the placeable features.
type FeatureType uint8

const (
	FeatureNone FeatureType = iota
	HazardRockfall
	HazardQuagmire
	ResourceHerbs
	ResourceFreshWater
	ResourceMinerals
	LandmarkAncientTree
	LandmarkStandingStone
)

func (f FeatureType) String() string {
	names := [...]string{
		"none", "rockfall", "quagmire",
		"medicinal-herbs", "fresh-water", "minerals",
		"ancient-tree", "standing-stone",
	}
	if int(f) >= len(names) {
		return "unknown"
	}
	return names[f]
}

// KindOf returns the priority class of a feature type.
func KindOf(f FeatureType) Kind {
	switch f {
	case HazardRockfall, HazardQuagmire:
		return KindHazard
	case ResourceHerbs, ResourceFreshWater, ResourceMinerals:
		return KindResource
	case LandmarkAncientTree, LandmarkStandingStone:
		return KindLandmark
	}
	return KindNone
}

// Feature is one placed map feature.
type Feature struct {
	Pos  core.Point
	Type FeatureType
}

// TileData is the per-tile feature record; at most one feature per tile.
type TileData struct {
	Type FeatureType
	Kind Kind
}

// Layer is the features stage output.
type Layer struct {
	Tiles     *core.Grid[TileData]
	Hazards   []Feature
	Resources []Feature
	Landmarks []Feature
}

// Noise gates per placement rule.
const (
	rockfallGate = 0.75
	quagmireGate = 0.8
	herbsGate    = 0.8
	springGate   = 0.5
	mineralsGate = 0.9
	ancientGate  = 0.95
	standingGate = 0.96
)

// Generate runs the features stage, then assembles the tile grid in priority
// order. Landmark placement must always win; this write order is a hard
// contract.
func Generate(ctx core.TacticalMapContext, seed noise.Seed, geo *geology.Layer, topo *topography.Layer, hydro *hydrology.Layer, veg *vegetation.Layer, w, h int) *Layer {
	hazards := placeHazards(seed, geo, topo, hydro, w, h)
	resources := placeResources(ctx, seed, geo, hydro, veg)
	landmarks := placeLandmarks(ctx, seed, topo, veg, w, h)

	tiles := assembleTiles(hazards, resources, landmarks, w, h)
	return &Layer{Tiles: tiles, Hazards: hazards, Resources: resources, Landmarks: landmarks}
}

// assembleTiles builds the per-tile grid in priority order: hazards claim
// empty tiles, resources claim tiles still empty after hazards, landmarks
// overwrite whatever is there.
func assembleTiles(hazards, resources, landmarks []Feature, w, h int) *core.Grid[TileData] {
	tiles := core.NewGrid[TileData](w, h)
	write := func(f Feature, overwrite bool) {
		if !overwrite && tiles.At(f.Pos.X, f.Pos.Y).Type != FeatureNone {
			return
		}
		tiles.Set(f.Pos.X, f.Pos.Y, TileData{Type: f.Type, Kind: KindOf(f.Type)})
	}
	for _, f := range hazards {
		write(f, false)
	}
	for _, f := range resources {
		write(f, false)
	}
	for _, f := range landmarks {
		write(f, true)
	}
	return tiles
}

// placeHazards gates rockfall on steep fractured ground and quagmire on
// saturated still ground.
func placeHazards(seed noise.Seed, geo *geology.Layer, topo *topography.Layer, hydro *hydrology.Layer, w, h int) []Feature {
	field := noise.NewField(seed, noise.StreamHazards)
	var hazards []Feature
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := field.At(float64(x), float64(y))
			tt := topo.Tiles.At(x, y)
			gt := geo.Tiles.At(x, y)
			ht := hydro.Tiles.At(x, y)
			switch {
			case tt.Slope > 35 && gt.FractureIntensity > 0.15 && n > rockfallGate:
				hazards = append(hazards, Feature{Pos: core.Point{X: x, Y: y}, Type: HazardRockfall})
			case ht.Moisture == hydrology.MoistureSaturated && !ht.Stream && n > quagmireGate:
				hazards = append(hazards, Feature{Pos: core.Point{X: x, Y: y}, Type: HazardQuagmire})
			}
		}
	}
	return hazards
}

// placeResources keys each resource off a layer predicate: herbs grow only
// in clearings, fresh water surfaces at springs, minerals show on exposed
// hard rock.
func placeResources(ctx core.TacticalMapContext, seed noise.Seed, geo *geology.Layer, hydro *hydrology.Layer, veg *vegetation.Layer) []Feature {
	field := noise.NewField(seed, noise.StreamResources)
	var resources []Feature

	for _, clearing := range veg.Clearings {
		for _, p := range clearing.Tiles {
			if field.At(float64(p.X), float64(p.Y)) > herbsGate {
				resources = append(resources, Feature{Pos: p, Type: ResourceHerbs})
			}
		}
	}

	waterPlaced := false
	for _, p := range hydro.Springs {
		if field.At(float64(p.X), float64(p.Y)) > springGate {
			resources = append(resources, Feature{Pos: p, Type: ResourceFreshWater})
			waterPlaced = true
		}
	}
	// A run flagged as requiring water keeps its best spring even when the
	// noise gate rejects every candidate.
	if ctx.RequireWater && !waterPlaced && len(hydro.Springs) > 0 {
		resources = append(resources, Feature{Pos: hydro.Springs[0], Type: ResourceFreshWater})
	}

	for y := 0; y < geo.Tiles.H; y++ {
		for x := 0; x < geo.Tiles.W; x++ {
			gt := geo.Tiles.At(x, y)
			if gt.SoilDepth < 1 && gt.Formation.Hardness > 6 &&
				field.At(float64(x), float64(y)) > mineralsGate {
				resources = append(resources, Feature{Pos: core.Point{X: x, Y: y}, Type: ResourceMinerals})
			}
		}
	}
	return resources
}

// placeLandmarks gates the rarest features: an ancient tree deep in a dense
// patch, a standing stone on a ridge.
func placeLandmarks(ctx core.TacticalMapContext, seed noise.Seed, topo *topography.Layer, veg *vegetation.Layer, w, h int) []Feature {
	field := noise.NewField(seed, noise.StreamLandmarks)
	var landmarks []Feature

	for _, patch := range veg.Patches {
		for _, p := range patch.Tiles {
			if veg.Tiles.At(p.X, p.Y).CanopyDensity > 0.7 &&
				field.At(float64(p.X), float64(p.Y)) > ancientGate {
				landmarks = append(landmarks, Feature{Pos: p, Type: LandmarkAncientTree})
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if topo.Tiles.At(x, y).Ridge && field.At(float64(x), float64(y)) > standingGate {
				landmarks = append(landmarks, Feature{Pos: core.Point{X: x, Y: y}, Type: LandmarkStandingStone})
			}
		}
	}

	// A run flagged as requiring a landmark places a standing stone on the
	// first ridge (or the map center on ridgeless terrain) when the gates
	// produced none.
	if ctx.RequireLandmark && len(landmarks) == 0 {
		pos := core.Point{X: w / 2, Y: h / 2}
	search:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if topo.Tiles.At(x, y).Ridge {
					pos = core.Point{X: x, Y: y}
					break search
				}
			}
		}
		landmarks = append(landmarks, Feature{Pos: pos, Type: LandmarkStandingStone})
	}
	return landmarks
}
