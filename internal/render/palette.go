package render

import (
	"image/color"

	"tacmap/internal/stage/features"
	"tacmap/internal/stage/geology"
	"tacmap/internal/stage/hydrology"
	"tacmap/internal/stage/vegetation"
)

var rockColors = map[geology.RockType]color.NRGBA{
	geology.RockGranite:   {R: 190, G: 170, B: 160, A: 255},
	geology.RockGneiss:    {R: 160, G: 150, B: 155, A: 255},
	geology.RockBasalt:    {R: 75, G: 75, B: 80, A: 255},
	geology.RockLimestone: {R: 215, G: 205, B: 180, A: 255},
	geology.RockSandstone: {R: 210, G: 170, B: 120, A: 255},
	geology.RockShale:     {R: 120, G: 115, B: 105, A: 255},
	geology.RockMarble:    {R: 230, G: 225, B: 220, A: 255},
}

var moistureColors = [...]color.NRGBA{
	hydrology.MoistureArid:      {R: 222, G: 203, B: 160, A: 255},
	hydrology.MoistureDry:       {R: 205, G: 195, B: 150, A: 255},
	hydrology.MoistureModerate:  {R: 170, G: 185, B: 140, A: 255},
	hydrology.MoistureMoist:     {R: 135, G: 175, B: 150, A: 255},
	hydrology.MoistureWet:       {R: 100, G: 160, B: 175, A: 255},
	hydrology.MoistureSaturated: {R: 70, G: 130, B: 190, A: 255},
}

var vegColors = [...]color.NRGBA{
	vegetation.VegBare:        {R: 150, G: 135, B: 110, A: 255},
	vegetation.VegGrassland:   {R: 130, G: 180, B: 90, A: 255},
	vegetation.VegShrubland:   {R: 100, G: 150, B: 75, A: 255},
	vegetation.VegSparseTrees: {R: 70, G: 130, B: 65, A: 255},
	vegetation.VegDenseTrees:  {R: 35, G: 95, B: 50, A: 255},
	vegetation.VegMarsh:       {R: 90, G: 140, B: 120, A: 255},
}

var featureColors = map[features.FeatureType]color.NRGBA{
	features.HazardRockfall:        {R: 200, G: 60, B: 40, A: 255},
	features.HazardQuagmire:        {R: 150, G: 90, B: 160, A: 255},
	features.ResourceHerbs:         {R: 110, G: 200, B: 110, A: 255},
	features.ResourceFreshWater:    {R: 80, G: 170, B: 230, A: 255},
	features.ResourceMinerals:      {R: 220, G: 190, B: 60, A: 255},
	features.LandmarkAncientTree:   {R: 40, G: 220, B: 120, A: 255},
	features.LandmarkStandingStone: {R: 235, G: 235, B: 235, A: 255},
}

var (
	waterColor    = color.NRGBA{R: 45, G: 110, B: 200, A: 255}
	roadColor     = color.NRGBA{R: 165, G: 145, B: 110, A: 255}
	buildingWood  = color.NRGBA{R: 140, G: 95, B: 55, A: 255}
	buildingStone = color.NRGBA{R: 175, G: 175, B: 175, A: 255}
	ridgeTint     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	valleyTint    = color.NRGBA{R: 40, G: 60, B: 120, A: 255}
)

func blend(base, overlay color.NRGBA, weight float64) color.NRGBA {
	if weight <= 0 {
		return base
	}
	if weight >= 1 {
		return overlay
	}
	inv := 1 - weight
	return color.NRGBA{
		R: uint8(float64(base.R)*inv + float64(overlay.R)*weight),
		G: uint8(float64(base.G)*inv + float64(overlay.G)*weight),
		B: uint8(float64(base.B)*inv + float64(overlay.B)*weight),
		A: 255,
	}
}

// shade scales a color toward black, t in [0,1] with 1 leaving it unchanged.
func shade(c color.NRGBA, t float64) color.NRGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.NRGBA{
		R: uint8(float64(c.R) * t),
		G: uint8(float64(c.G) * t),
		B: uint8(float64(c.B) * t),
		A: 255,
	}
}
