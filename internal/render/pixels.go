package render

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"tacmap/internal/mapgen"
	"tacmap/internal/stage/structures"
	"tacmap/internal/stage/vegetation"
)

// FillRGBA writes one layer of the result into buf as RGBA pixels, row-major,
// 4 bytes per tile. The buffer must hold width*height*4 bytes.
func FillRGBA(buf []byte, result *mapgen.MapResult, layer Layer) {
	w, h := result.Width, result.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := tileColor(result, layer, x, y)
			base := (y*w + x) * 4
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
		}
	}
}

// Image renders one layer of the result into a freshly allocated image.
func Image(result *mapgen.MapResult, layer Layer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, result.Width, result.Height))
	FillRGBA(img.Pix, result, layer)
	return img
}

// WritePNG encodes the image to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func tileColor(result *mapgen.MapResult, layer Layer, x, y int) color.NRGBA {
	switch layer {
	case LayerGeology:
		return geologyColor(result, x, y)
	case LayerTopography:
		return topographyColor(result, x, y)
	case LayerHydrology:
		return hydrologyColor(result, x, y)
	case LayerVegetation:
		return vegetationColor(result, x, y)
	case LayerStructures:
		return structuresColor(result, x, y)
	case LayerFeatures:
		return featuresColor(result, x, y)
	default:
		return compositeColor(result, x, y)
	}
}

func geologyColor(result *mapgen.MapResult, x, y int) color.NRGBA {
	td := result.Layers.Geology.Tiles.At(x, y)
	c := rockColors[td.Formation.Rock]
	// Deep soil mutes the bedrock color.
	return shade(c, 1-td.SoilDepth/40)
}

func topographyColor(result *mapgen.MapResult, x, y int) color.NRGBA {
	topo := result.Layers.Topography
	td := topo.Tiles.At(x, y)
	span := topo.MaxElevation - topo.MinElevation
	t := 0.5
	if span > 0 {
		t = (td.Elevation - topo.MinElevation) / span
	}
	v := uint8(40 + t*200)
	c := color.NRGBA{R: v, G: v, B: v, A: 255}
	switch {
	case td.Ridge:
		c = blend(c, ridgeTint, 0.4)
	case td.Valley:
		c = blend(c, valleyTint, 0.4)
	}
	return c
}

func hydrologyColor(result *mapgen.MapResult, x, y int) color.NRGBA {
	td := result.Layers.Hydrology.Tiles.At(x, y)
	if td.Stream || td.Pool {
		depth := td.WaterDepth / 6
		if depth > 1 {
			depth = 1
		}
		return shade(waterColor, 1-depth*0.6)
	}
	return moistureColors[td.Moisture]
}

func vegetationColor(result *mapgen.MapResult, x, y int) color.NRGBA {
	td := result.Layers.Vegetation.Tiles.At(x, y)
	c := vegColors[td.Type]
	return shade(c, 1-td.CanopyDensity*0.3)
}

func structuresColor(result *mapgen.MapResult, x, y int) color.NRGBA {
	td := result.Layers.Structures.Tiles.At(x, y)
	if td.Present {
		if td.Material == structures.MaterialStone {
			return buildingStone
		}
		return buildingWood
	}
	if td.Road {
		return roadColor
	}
	// Dimmed elevation backdrop so placements stay readable.
	return shade(topographyColor(result, x, y), 0.5)
}

func featuresColor(result *mapgen.MapResult, x, y int) color.NRGBA {
	td := result.Layers.Features.Tiles.At(x, y)
	if c, ok := featureColors[td.Type]; ok {
		return c
	}
	return shade(topographyColor(result, x, y), 0.4)
}

func compositeColor(result *mapgen.MapResult, x, y int) color.NRGBA {
	ht := result.Layers.Hydrology.Tiles.At(x, y)
	if ht.Stream || ht.Pool {
		return hydrologyColor(result, x, y)
	}
	st := result.Layers.Structures.Tiles.At(x, y)
	if st.Present || st.Road {
		return structuresColor(result, x, y)
	}
	ft := result.Layers.Features.Tiles.At(x, y)
	if c, ok := featureColors[ft.Type]; ok {
		return c
	}
	vt := result.Layers.Vegetation.Tiles.At(x, y)
	if vt.Type != vegetation.VegBare {
		return vegetationColor(result, x, y)
	}
	return topographyColor(result, x, y)
}
