package features

import (
	"testing"

	"tacmap/internal/core"
	"tacmap/internal/stage/geology"
	"tacmap/internal/stage/hydrology"
	"tacmap/internal/stage/topography"
	"tacmap/internal/stage/vegetation"
	"tacmap/pkg/noise"
)

type fixture struct {
	ctx   core.TacticalMapContext
	geo   *geology.Layer
	topo  *topography.Layer
	hydro *hydrology.Layer
	veg   *vegetation.Layer
}

func buildFixture(t *testing.T, biome core.Biome, seed int64, w, h int) fixture {
	t.Helper()
	ctx := core.DefaultContext(biome)
	s := noise.New(seed)
	geo := geology.Generate(ctx, s, w, h)
	elev := topography.SynthesizeElevation(ctx, s, geo, w, h, 1.0)
	topo := topography.Calculate(elev)
	hydro := hydrology.Generate(ctx, s, geo, topo, hydrology.DefaultConfig())
	veg := vegetation.Generate(ctx, s, geo, topo, hydro, vegetation.DefaultConfig())
	return fixture{ctx: ctx, geo: geo, topo: topo, hydro: hydro, veg: veg}
}

func TestLandmarkOverwritesResource(t *testing.T) {
	at := core.Point{X: 2, Y: 2}
	resources := []Feature{{Pos: at, Type: ResourceMinerals}}
	landmarks := []Feature{{Pos: at, Type: LandmarkStandingStone}}
	tiles := assembleTiles(nil, resources, landmarks, 5, 5)

	td := tiles.At(2, 2)
	if td.Type != LandmarkStandingStone {
		t.Fatalf("tile type = %v, want %v", td.Type, LandmarkStandingStone)
	}
	if td.Kind != KindLandmark {
		t.Fatalf("tile kind = %v, want %v", td.Kind, KindLandmark)
	}
}

func TestResourceSkipsOccupiedTile(t *testing.T) {
	at := core.Point{X: 1, Y: 3}
	hazards := []Feature{{Pos: at, Type: HazardRockfall}}
	resources := []Feature{{Pos: at, Type: ResourceHerbs}}
	tiles := assembleTiles(hazards, resources, nil, 5, 5)

	if got := tiles.At(1, 3).Type; got != HazardRockfall {
		t.Fatalf("tile type = %v, want %v", got, HazardRockfall)
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		f    FeatureType
		want Kind
	}{
		{FeatureNone, KindNone},
		{HazardRockfall, KindHazard},
		{HazardQuagmire, KindHazard},
		{ResourceHerbs, KindResource},
		{ResourceFreshWater, KindResource},
		{ResourceMinerals, KindResource},
		{LandmarkAncientTree, KindLandmark},
		{LandmarkStandingStone, KindLandmark},
	}
	for _, c := range cases {
		if got := KindOf(c.f); got != c.want {
			t.Errorf("KindOf(%v) = %v, want %v", c.f, got, c.want)
		}
	}
}

func TestHazardsOnValidTerrain(t *testing.T) {
	f := buildFixture(t, core.BiomeMountain, 4242, 30, 30)
	layer := Generate(f.ctx, noise.New(4242), f.geo, f.topo, f.hydro, f.veg, 30, 30)

	for _, hz := range layer.Hazards {
		switch hz.Type {
		case HazardRockfall:
			tt := f.topo.Tiles.At(hz.Pos.X, hz.Pos.Y)
			gt := f.geo.Tiles.At(hz.Pos.X, hz.Pos.Y)
			if tt.Slope <= 35 || gt.FractureIntensity <= 0.15 {
				t.Fatalf("rockfall at (%d,%d) on stable ground", hz.Pos.X, hz.Pos.Y)
			}
		case HazardQuagmire:
			ht := f.hydro.Tiles.At(hz.Pos.X, hz.Pos.Y)
			if ht.Moisture != hydrology.MoistureSaturated || ht.Stream {
				t.Fatalf("quagmire at (%d,%d) on firm ground", hz.Pos.X, hz.Pos.Y)
			}
		default:
			t.Fatalf("unexpected hazard type %v", hz.Type)
		}
	}
}

func TestRequireLandmarkForcesPlacement(t *testing.T) {
	elev := core.NewGrid[float64](10, 10)
	elev.Fill(100)
	topo := topography.Calculate(elev)
	veg := &vegetation.Layer{Tiles: core.NewGrid[vegetation.TileData](10, 10)}

	ctx := core.DefaultContext(core.BiomePlains)
	ctx.RequireLandmark = true
	landmarks := placeLandmarks(ctx, noise.New(7), topo, veg, 10, 10)
	if len(landmarks) != 1 {
		t.Fatalf("landmarks = %d, want 1 forced placement", len(landmarks))
	}
	want := core.Point{X: 5, Y: 5}
	if landmarks[0].Pos != want || landmarks[0].Type != LandmarkStandingStone {
		t.Fatalf("forced landmark = %+v, want standing stone at %v", landmarks[0], want)
	}
}

func TestRequireWaterKeepsSpring(t *testing.T) {
	f := buildFixture(t, core.BiomeForest, 313, 25, 25)
	if len(f.hydro.Springs) == 0 {
		t.Skip("fixture produced no springs")
	}
	f.ctx.RequireWater = true
	layer := Generate(f.ctx, noise.New(313), f.geo, f.topo, f.hydro, f.veg, 25, 25)
	found := false
	for _, r := range layer.Resources {
		if r.Type == ResourceFreshWater {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("required water but no fresh water resource placed")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	f := buildFixture(t, core.BiomeForest, 777, 25, 25)
	a := Generate(f.ctx, noise.New(777), f.geo, f.topo, f.hydro, f.veg, 25, 25)
	b := Generate(f.ctx, noise.New(777), f.geo, f.topo, f.hydro, f.veg, 25, 25)

	if len(a.Hazards) != len(b.Hazards) || len(a.Resources) != len(b.Resources) ||
		len(a.Landmarks) != len(b.Landmarks) {
		t.Fatal("feature counts differ between identical runs")
	}
	for i := range a.Tiles.Cells() {
		if a.Tiles.Cells()[i] != b.Tiles.Cells()[i] {
			t.Fatalf("tile %d differs between identical runs", i)
		}
	}
}
