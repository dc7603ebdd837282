// Command tacmap generates one battlemap headless, prints its statistics and
// warnings, and optionally exports each layer as a PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"tacmap/internal/mapgen"
	"tacmap/internal/render"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	settings := mapgen.DefaultSettings()
	settings.Bind(flag.CommandLine)
	out := flag.String("out", "", "path prefix for PNG export (one file per layer)")
	var overrides kvList
	flag.Var(&overrides, "set", "settings override in key=value form (repeatable)")
	flag.Parse()

	if len(overrides) > 0 {
		settings = applyOverrides(settings, overrides)
	}

	result, err := mapgen.Generate(settings)
	if err != nil {
		log.Fatal(err)
	}

	printSummary(result)

	if *out != "" {
		for layer := render.LayerGeology; layer < render.LayerCount; layer++ {
			path := fmt.Sprintf("%s_%s.png", *out, layer)
			if err := render.WritePNG(path, render.Image(result, layer)); err != nil {
				log.Fatalf("write %s: %v", path, err)
			}
			fmt.Println("wrote", path)
		}
	}
}

// applyOverrides folds -set pairs through the string-map settings parser,
// seeding the map from the flag-bound values so the overrides win.
func applyOverrides(base mapgen.GenerationSettings, overrides kvList) mapgen.GenerationSettings {
	m := map[string]string{
		"w":           strconv.Itoa(base.Width),
		"h":           strconv.Itoa(base.Height),
		"seed":        strconv.FormatInt(base.Seed, 10),
		"seed_text":   base.SeedText,
		"biome":       base.Biome,
		"elevation":   base.Elevation,
		"hydrology":   base.Hydrology,
		"development": base.Development,
		"season":      base.Season,
		"ruggedness":  strconv.FormatFloat(base.Ruggedness, 'f', -1, 64),
		"water":       strconv.FormatFloat(base.WaterAbundance, 'f', -1, 64),
		"vegetation":  strconv.FormatFloat(base.VegetationMultiplier, 'f', -1, 64),
	}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("bad -set value %q, want key=value", kv)
		}
		m[parts[0]] = parts[1]
	}
	s := mapgen.FromMap(m)
	s.CellSize = base.CellSize
	s.RequireWater = base.RequireWater
	s.RequireLandmark = base.RequireLandmark
	return s
}

func printSummary(result *mapgen.MapResult) {
	fmt.Printf("tacmap %dx%d  seed %d  (%s)\n",
		result.Width, result.Height, result.Seed, result.GenerationTime.Round(time.Millisecond))
	fmt.Printf("context: %s / %s / %s / %s / %s\n",
		result.Context.Biome, result.Context.Elevation, result.Context.Hydrology,
		result.Context.Development, result.Context.Season)

	s := result.Stats
	fmt.Printf("elevation %.0f..%.0f ft, mean slope %.1f deg\n", s.MinElevation, s.MaxElevation, s.MeanSlope)
	fmt.Printf("streams   %d tiles (%.1f%%), %d springs, %d pools, %d segments\n",
		s.StreamTiles, s.StreamPercent, s.Springs, s.Pools, len(result.Layers.Hydrology.Segments))
	fmt.Printf("forest    %.1f%% cover, %d patches, %d clearings\n", s.ForestPercent, s.ForestPatches, s.Clearings)
	fmt.Printf("built     %d buildings, %d road tiles, %d intersections\n",
		s.Buildings, s.RoadTiles, len(result.Layers.Structures.Roads.Intersections))
	fmt.Printf("features  %d hazards, %d resources, %d landmarks\n", s.Hazards, s.Resources, s.Landmarks)

	for _, w := range result.Warnings {
		fmt.Println("warning:", w)
	}
}
