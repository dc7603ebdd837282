//go:build ebiten

package app

import (
	"time"

	"tacmap/internal/mapgen"
	"tacmap/internal/render"
	"tacmap/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a generated map to the ebiten.Game interface. Regeneration
// happens synchronously inside Update; maps at the size limit still build in
// a few frames' worth of time.
type Game struct {
	settings mapgen.GenerationSettings
	result   *mapgen.MapResult
	layer    render.Layer

	tileImg *ebiten.Image
	pixels  []byte
	overlay *ui.Overlay

	scale int
}

// New generates the initial map and constructs the viewer around it.
func New(settings mapgen.GenerationSettings, scale int) (*Game, error) {
	result, err := mapgen.Generate(settings)
	if err != nil {
		return nil, err
	}
	g := &Game{
		settings: settings,
		result:   result,
		layer:    render.LayerComposite,
		scale:    scale,
	}
	g.overlay = ui.NewOverlay(g)
	g.refresh()
	return g, nil
}

// Result exposes the current map to the HUD overlay.
func (g *Game) Result() *mapgen.MapResult { return g.result }

// Layer exposes the active render layer to the HUD overlay.
func (g *Game) Layer() render.Layer { return g.layer }

// Regenerate rebuilds the map with the provided seed. Settings validated at
// startup stay valid, so the error path is unreachable here.
func (g *Game) Regenerate(seed int64) {
	g.settings.Seed = seed
	g.settings.SeedText = ""
	result, err := mapgen.Generate(g.settings)
	if err != nil {
		return
	}
	g.result = result
	g.refresh()
}

func (g *Game) refresh() {
	w, h := g.result.Width, g.result.Height
	if g.tileImg == nil || g.tileImg.Bounds().Dx() != w || g.tileImg.Bounds().Dy() != h {
		g.tileImg = ebiten.NewImage(w, h)
		g.pixels = make([]byte, w*h*4)
	}
	render.FillRGBA(g.pixels, g.result, g.layer)
	g.tileImg.WritePixels(g.pixels)
}

var layerKeys = map[ebiten.Key]render.Layer{
	ebiten.KeyDigit1: render.LayerGeology,
	ebiten.KeyDigit2: render.LayerTopography,
	ebiten.KeyDigit3: render.LayerHydrology,
	ebiten.KeyDigit4: render.LayerVegetation,
	ebiten.KeyDigit5: render.LayerStructures,
	ebiten.KeyDigit6: render.LayerFeatures,
	ebiten.KeyDigit7: render.LayerComposite,
}

// Update handles key input: digits select a layer, Tab cycles, R regenerates
// with the same seed, S reseeds from the clock, Q or Escape quits.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, layer := range layerKeys {
		if inpututil.IsKeyJustPressed(key) && g.layer != layer {
			g.layer = layer
			g.refresh()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.layer = g.layer.Next()
		g.refresh()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Regenerate(g.result.Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Regenerate(time.Now().UnixNano())
	}
	if g.overlay != nil {
		g.overlay.Update()
	}
	return nil
}

// Draw blits the rendered layer scaled up, then the HUD overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.tileImg, op)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.result.Width * g.scale, g.result.Height * g.scale
}
