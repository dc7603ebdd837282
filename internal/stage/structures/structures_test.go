package structures

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

func buildFixture(t *testing.T, dev core.DevelopmentLevel, seed int64, w, h int) fixture {
	t.Helper()
	ctx := core.DefaultContext(core.BiomePlains)
	ctx.Development = dev
	s := noise.New(seed)
	geo := geology.Generate(ctx, s, w, h)
	elev := topography.SynthesizeElevation(ctx, s, geo, w, h, 1.0)
	topo := topography.Calculate(elev)
	hydro := hydrology.Generate(ctx, s, geo, topo, hydrology.DefaultConfig())
	veg := vegetation.Generate(ctx, s, geo, topo, hydro, vegetation.DefaultConfig())
	return fixture{ctx: ctx, geo: geo, topo: topo, hydro: hydro, veg: veg}
}

func TestBuildingsRespectTerrain(t *testing.T) {
	f := buildFixture(t, core.DevelopmentSettled, 12345, 30, 30)
	layer := Generate(f.ctx, noise.New(12345), f.geo, f.topo, f.hydro, f.veg, 30, 30)
	if len(layer.Buildings) == 0 {
		t.Fatal("settled development placed no buildings")
	}
	for _, p := range layer.Buildings {
		if !f.veg.Tiles.At(p.X, p.Y).Passable {
			t.Fatalf("building at (%d,%d) on impassable tile", p.X, p.Y)
		}
		if f.topo.Tiles.At(p.X, p.Y).Slope >= 15 {
			t.Fatalf("building at (%d,%d) on steep slope", p.X, p.Y)
		}
		if f.hydro.Tiles.At(p.X, p.Y).WaterDepth >= 0.5 {
			t.Fatalf("building at (%d,%d) in water", p.X, p.Y)
		}
		td := layer.Tiles.At(p.X, p.Y)
		if !td.Present || td.Type == StructureNone || td.Height <= 0 {
			t.Fatalf("building at (%d,%d) has incomplete tile data", p.X, p.Y)
		}
	}
}

func TestDevelopmentBudgetOrdering(t *testing.T) {
	wild := buildFixture(t, core.DevelopmentWild, 99, 40, 40)
	settled := buildFixture(t, core.DevelopmentSettled, 99, 40, 40)
	wildLayer := Generate(wild.ctx, noise.New(99), wild.geo, wild.topo, wild.hydro, wild.veg, 40, 40)
	settledLayer := Generate(settled.ctx, noise.New(99), settled.geo, settled.topo, settled.hydro, settled.veg, 40, 40)
	if len(settledLayer.Buildings) <= len(wildLayer.Buildings) {
		t.Fatalf("settled (%d buildings) should out-build wild (%d)",
			len(settledLayer.Buildings), len(wildLayer.Buildings))
	}
}

func TestRoadNetworkConsistency(t *testing.T) {
	f := buildFixture(t, core.DevelopmentSettled, 7, 30, 30)
	layer := Generate(f.ctx, noise.New(7), f.geo, f.topo, f.hydro, f.veg, 30, 30)

	roadTiles := 0
	for _, td := range layer.Tiles.Cells() {
		if td.Road {
			roadTiles++
		}
	}
	if roadTiles != layer.Roads.TotalLength {
		t.Fatalf("road tile count %d disagrees with TotalLength %d", roadTiles, layer.Roads.TotalLength)
	}
	for _, seg := range layer.Roads.Segments {
		for i := 1; i < len(seg); i++ {
			dx := abs(seg[i].X - seg[i-1].X)
			dy := abs(seg[i].Y - seg[i-1].Y)
			if dx > 1 || dy > 1 || dx+dy == 0 {
				t.Fatalf("segment step from %v to %v is not a single tile", seg[i-1], seg[i])
			}
		}
	}
	for _, p := range layer.Roads.Intersections {
		if !layer.Tiles.At(p.X, p.Y).Road {
			t.Fatalf("intersection %v is not on a road tile", p)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	f := buildFixture(t, core.DevelopmentRural, 555, 25, 25)
	a := Generate(f.ctx, noise.New(555), f.geo, f.topo, f.hydro, f.veg, 25, 25)
	b := Generate(f.ctx, noise.New(555), f.geo, f.topo, f.hydro, f.veg, 25, 25)
	for i, ta := range a.Tiles.Cells() {
		if ta != b.Tiles.Cells()[i] {
			t.Fatalf("structure tile %d differs between identical runs", i)
		}
	}
	if a.Roads.TotalLength != b.Roads.TotalLength {
		t.Fatal("road networks differ between identical runs")
	}
}

func TestMaterialFollowsGeology(t *testing.T) {
	seq := noise.NewSequence(noise.New(1), noise.StreamStructures)
	sawStone := false
	for i := 0; i < 50; i++ {
		for _, f := range geology.Candidates(core.BiomeMountain) {
			if materialFor(f, seq) == MaterialStone {
				sawStone = true
			}
		}
	}
	if !sawStone {
		t.Fatal("quarryable bedrock never produced stone buildings")
	}
}
