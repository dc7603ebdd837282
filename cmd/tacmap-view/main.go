//go:build ebiten

// Command tacmap-view opens the interactive map viewer. Digits 1..7 select a
// layer, Tab cycles, R regenerates with the same seed, S reseeds from the
// clock, H and I toggle the HUD panels, Q or Escape quits.
package main

import (
	"errors"
	"flag"
	"log"

	"tacmap/internal/app"
	"tacmap/internal/mapgen"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	settings := mapgen.DefaultSettings()
	settings.Bind(flag.CommandLine)
	scale := flag.Int("scale", 8, "pixels per tile")
	flag.Parse()

	game, err := app.New(settings, *scale)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("tacmap — " + settings.Biome)
	ebiten.SetWindowSize(settings.Width*(*scale), settings.Height*(*scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
