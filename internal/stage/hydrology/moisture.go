package hydrology

import (
	"tacmap/internal/core"
	"tacmap/internal/stage/geology"
)

// Moisture is the 6-level ordered moisture classification.
type Moisture uint8

const (
	MoistureArid Moisture = iota
	MoistureDry
	MoistureModerate
	MoistureMoist
	MoistureWet
	MoistureSaturated
)

func (m Moisture) String() string {
	names := [...]string{"arid", "dry", "moderate", "moist", "wet", "saturated"}
	if int(m) >= len(names) {
		return "unknown"
	}
	return names[m]
}

// classifyMoisture derives the tile's moisture level from the hydrology
// regime, standing water, flow accumulation, and the bedrock permeability.
// The permeability adjustment shifts at most one level and the result always
// clamps to the enum range.
func classifyMoisture(regime core.HydrologyRegime, waterDepth, accumulation float64, permeability geology.PermeabilityClass) Moisture {
	level := MoistureModerate
	switch regime {
	case core.HydrologyArid:
		level = MoistureArid
	case core.HydrologyWetland:
		level = MoistureWet
	}

	switch {
	case waterDepth > 0:
		level = MoistureSaturated
	case accumulation > 20:
		if level < MoistureWet {
			level = MoistureWet
		}
	case accumulation > 10:
		if level < MoistureMoist {
			level = MoistureMoist
		}
	}

	adjusted := int(level)
	switch permeability {
	case geology.PermeabilityImpermeable:
		adjusted++
	case geology.PermeabilityHigh:
		adjusted--
	}
	if adjusted < int(MoistureArid) {
		adjusted = int(MoistureArid)
	}
	if adjusted > int(MoistureSaturated) {
		adjusted = int(MoistureSaturated)
	}
	return Moisture(adjusted)
}
