//go:build ebiten

package ui

import (
	"fmt"
	"strings"
	"time"

	"tacmap/internal/mapgen"
	"tacmap/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type mapProvider interface {
	Result() *mapgen.MapResult
	Layer() render.Layer
}

// Overlay draws the layer name, map statistics, and the parameter panel on
// top of the rendered map. H toggles the panel, I toggles the stats block.
type Overlay struct {
	provider mapProvider

	showParams bool
	showStats  bool
}

// NewOverlay constructs an overlay bound to the viewer.
func NewOverlay(provider mapProvider) *Overlay {
	return &Overlay{provider: provider, showStats: true}
}

// Update handles the overlay's own key toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showParams = !o.showParams
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.showStats = !o.showStats
	}
}

// Draw renders the overlay text onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	result := o.provider.Result()
	if result == nil {
		return
	}

	header := fmt.Sprintf("[%s] seed %d  %dx%d  %s",
		o.provider.Layer(), result.Seed, result.Width, result.Height,
		result.GenerationTime.Round(time.Millisecond))
	ebitenutil.DebugPrintAt(screen, header, 4, 4)

	y := 20
	if o.showStats {
		s := result.Stats
		lines := []string{
			fmt.Sprintf("elev %.0f..%.0f ft  slope %.1f", s.MinElevation, s.MaxElevation, s.MeanSlope),
			fmt.Sprintf("streams %.1f%%  springs %d  pools %d", s.StreamPercent, s.Springs, s.Pools),
			fmt.Sprintf("forest %.1f%%  patches %d  clearings %d", s.ForestPercent, s.ForestPatches, s.Clearings),
			fmt.Sprintf("buildings %d  road tiles %d", s.Buildings, s.RoadTiles),
			fmt.Sprintf("hazards %d  resources %d  landmarks %d", s.Hazards, s.Resources, s.Landmarks),
		}
		for _, w := range result.Warnings {
			lines = append(lines, "! "+w)
		}
		ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 4, y)
		y += 16*len(lines) + 8
	}

	if o.showParams {
		var b strings.Builder
		for _, group := range result.Parameters().Groups {
			fmt.Fprintf(&b, "%s\n", group.Name)
			for _, p := range group.Params {
				fmt.Fprintf(&b, "  %s = %s\n", p.Label, p.Value)
			}
		}
		ebitenutil.DebugPrintAt(screen, b.String(), 4, y)
	}
}
