package geology

import (
	"slices"
	"testing"

	"tacmap/internal/core"
	"tacmap/pkg/noise"
)

func TestSelectFormationsDeterministic(t *testing.T) {
	ctx := core.DefaultContext(core.BiomeMountain)
	seed := noise.New(12345)
	p1, s1 := selectFormations(ctx, seed)
	p2, s2 := selectFormations(ctx, seed)
	if p1 != p2 || s1 != s2 {
		t.Fatal("formation selection not deterministic")
	}
	if p1 == nil {
		t.Fatal("primary formation must be set")
	}
	if s1 == p1 {
		t.Fatal("secondary must differ from primary when present")
	}
}

func TestSelectFormationsSecondaryDistinct(t *testing.T) {
	ctx := core.DefaultContext(core.BiomeForest)
	for s := int64(1); s <= 200; s++ {
		p, sec := selectFormations(ctx, noise.New(s))
		if sec != nil && sec == p {
			t.Fatalf("seed %d chose identical primary and secondary", s)
		}
	}
}

func TestBedrockPatternUniformWithoutSecondary(t *testing.T) {
	primary := graniteBatholith
	grid := generateBedrockPattern(12, 9, primary, nil, noise.New(7))
	for _, f := range grid.Cells() {
		if f != primary {
			t.Fatal("uniform fill expected when no secondary formation")
		}
	}
}

func TestBedrockPatternUsesBothFormations(t *testing.T) {
	// Vertical bedding pushes the threshold above zero in bands, so some
	// tiles fall to the secondary formation.
	grid := generateBedrockPattern(64, 64, shaleBasin, graniteBatholith, noise.New(7))
	sawPrimary, sawSecondary := false, false
	for _, f := range grid.Cells() {
		switch f {
		case shaleBasin:
			sawPrimary = true
		case graniteBatholith:
			sawSecondary = true
		}
	}
	if !sawPrimary || !sawSecondary {
		t.Fatal("pattern should mix primary and secondary formations")
	}
}

func TestBedrockPatternMassivePrimaryUniform(t *testing.T) {
	// Massive bedding keeps the threshold at zero, so the noise field
	// never selects the secondary formation.
	grid := generateBedrockPattern(32, 32, graniteBatholith, shaleBasin, noise.New(7))
	for _, f := range grid.Cells() {
		if f != graniteBatholith {
			t.Fatal("massive primary should fill the whole grid")
		}
	}
}

func TestSoilDepthNeverNegative(t *testing.T) {
	field := noise.NewField(noise.New(3), noise.StreamSoil)
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			for _, f := range Candidates(core.BiomeMountain) {
				d := soilDepth(f, f.Weathering, field, x, y)
				if d < 0 {
					t.Fatalf("soil depth negative for %s at (%d,%d)", f.Name, x, y)
				}
			}
		}
	}
}

func TestSoilDepthOutcropFixed(t *testing.T) {
	field := noise.NewField(noise.New(3), noise.StreamSoil)
	d := soilDepth(graniteBatholith, []WeatheringFeature{FeatureGrus, FeatureDome}, field, 4, 4)
	if d != outcropDepth {
		t.Fatalf("dome outcrop should pin depth to %v, got %v", outcropDepth, d)
	}
}

func TestTransitionZonesInteriorOnly(t *testing.T) {
	grid := core.NewGrid[*Formation](6, 6)
	grid.Fill(graniteBatholith)
	// Single intrusion in the interior.
	grid.Set(3, 3, shaleBasin)
	zones := findTransitionZones(grid)
	for _, p := range zones {
		if p.X == 0 || p.Y == 0 || p.X == grid.W-1 || p.Y == grid.H-1 {
			t.Fatalf("border tile (%d,%d) reported as transition", p.X, p.Y)
		}
	}
	want := []core.Point{{X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 4}}
	if !slices.Equal(zones, want) {
		t.Fatalf("transition zones = %v, want %v", zones, want)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	ctx := core.DefaultContext(core.BiomeForest)
	a := Generate(ctx, noise.New(555), 20, 15)
	b := Generate(ctx, noise.New(555), 20, 15)
	if !slices.Equal(a.Bedrock.Cells(), b.Bedrock.Cells()) {
		t.Fatal("bedrock grids differ between identical runs")
	}
	for i, ta := range a.Tiles.Cells() {
		tb := b.Tiles.Cells()[i]
		if ta.SoilDepth != tb.SoilDepth || ta.Formation != tb.Formation ||
			ta.Permeability != tb.Permeability || ta.FractureIntensity != tb.FractureIntensity {
			t.Fatalf("tile %d differs between identical runs", i)
		}
	}
	if !slices.Equal(a.Transitions, b.Transitions) {
		t.Fatal("transition zones differ between identical runs")
	}
}

func TestFractureIntensity(t *testing.T) {
	if got := shaleBasin.FractureIntensity(); got != 0.5 {
		t.Fatalf("joint spacing 1 should give intensity 0.5, got %v", got)
	}
}
