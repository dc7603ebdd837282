package mapgen

import (
	"strconv"

	"tacmap/internal/core"
)

// Parameters exposes the settings behind a generated map as a grouped
// snapshot for display in the viewer HUD and CLI output.
func (r *MapResult) Parameters() core.ParameterSnapshot {
	s := r.Settings
	groups := []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				intParam("w", "Width", r.Width),
				intParam("h", "Height", r.Height),
				floatParam("cell_size", "Cell size (ft)", s.CellSize),
				int64Param("seed", "Seed", r.Seed),
			},
		},
		{
			Name: "Context",
			Params: []core.Parameter{
				stringParam("biome", "Biome", string(r.Context.Biome)),
				stringParam("elevation", "Elevation regime", string(r.Context.Elevation)),
				stringParam("hydrology", "Hydrology regime", string(r.Context.Hydrology)),
				stringParam("development", "Development level", string(r.Context.Development)),
				stringParam("season", "Season", string(r.Context.Season)),
			},
		},
		{
			Name: "Tuning",
			Params: []core.Parameter{
				floatParam("ruggedness", "Terrain ruggedness", s.Ruggedness),
				floatParam("water", "Water abundance", s.WaterAbundance),
				floatParam("vegetation", "Vegetation multiplier", s.VegetationMultiplier),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
