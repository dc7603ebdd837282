package geology

import "tacmap/internal/core"

// RockType enumerates the bedrock lithologies in the catalogue.
type RockType uint8

const (
	RockGranite RockType = iota
	RockGneiss
	RockBasalt
	RockLimestone
	RockSandstone
	RockShale
	RockMarble
)

func (r RockType) String() string {
	names := [...]string{"granite", "gneiss", "basalt", "limestone", "sandstone", "shale", "marble"}
	if int(r) >= len(names) {
		return "unknown"
	}
	return names[r]
}

// BeddingPattern describes how a formation's layers are arranged, which in
// turn shapes the bedrock pattern threshold.
type BeddingPattern uint8

const (
	BeddingMassive BeddingPattern = iota
	BeddingHorizontal
	BeddingVertical
	BeddingFolded
)

// PermeabilityClass orders formations by how readily water passes through.
type PermeabilityClass uint8

const (
	PermeabilityImpermeable PermeabilityClass = iota
	PermeabilityLow
	PermeabilityModerate
	PermeabilityHigh
)

// WeatheringFeature enumerates surface features produced by weathering.
type WeatheringFeature uint8

const (
	FeatureGrus WeatheringFeature = iota
	FeatureTalus
	FeatureDome
	FeatureTower
	FeatureSinkhole
	FeatureKarren
)

func (f WeatheringFeature) String() string {
	names := [...]string{"grus", "talus", "dome", "tower", "sinkhole", "karren"}
	if int(f) >= len(names) {
		return "unknown"
	}
	return names[f]
}

// Formation is an immutable catalogue entry. Formations are selected, never
// constructed, so all fields describe fixed reference data.
type Formation struct {
	Name     string
	Rock     RockType
	Minerals []string

	Bedding          BeddingPattern
	JointSpacing     float64 // feet between joints
	JointOrientation float64 // degrees from north

	Hardness          float64 // 0-10
	Permeability      PermeabilityClass
	ChemicalStability float64 // 0-1

	Weathering []WeatheringFeature
}

// The closed formation catalogue. Candidate lists per biome reference these
// entries; nothing outside this file creates a Formation.
var (
	graniteBatholith = &Formation{
		Name:              "granite batholith",
		Rock:              RockGranite,
		Minerals:          []string{"quartz", "feldspar", "mica"},
		Bedding:           BeddingMassive,
		JointSpacing:      8,
		JointOrientation:  45,
		Hardness:          7,
		Permeability:      PermeabilityLow,
		ChemicalStability: 0.9,
		Weathering:        []WeatheringFeature{FeatureGrus, FeatureDome, FeatureTalus},
	}
	gneissComplex = &Formation{
		Name:              "gneiss complex",
		Rock:              RockGneiss,
		Minerals:          []string{"quartz", "feldspar", "hornblende"},
		Bedding:           BeddingFolded,
		JointSpacing:      5,
		JointOrientation:  120,
		Hardness:          7.5,
		Permeability:      PermeabilityLow,
		ChemicalStability: 0.85,
		Weathering:        []WeatheringFeature{FeatureTalus, FeatureTower},
	}
	basaltFlow = &Formation{
		Name:              "basalt flow",
		Rock:              RockBasalt,
		Minerals:          []string{"plagioclase", "pyroxene", "olivine"},
		Bedding:           BeddingHorizontal,
		JointSpacing:      3,
		JointOrientation:  90,
		Hardness:          6,
		Permeability:      PermeabilityModerate,
		ChemicalStability: 0.6,
		Weathering:        []WeatheringFeature{FeatureTalus, FeatureTower},
	}
	limestoneKarst = &Formation{
		Name:              "limestone karst",
		Rock:              RockLimestone,
		Minerals:          []string{"calcite", "aragonite"},
		Bedding:           BeddingHorizontal,
		JointSpacing:      4,
		JointOrientation:  0,
		Hardness:          3,
		Permeability:      PermeabilityHigh,
		ChemicalStability: 0.3,
		Weathering:        []WeatheringFeature{FeatureSinkhole, FeatureKarren, FeatureTower},
	}
	sandstoneBeds = &Formation{
		Name:              "sandstone beds",
		Rock:              RockSandstone,
		Minerals:          []string{"quartz", "hematite"},
		Bedding:           BeddingHorizontal,
		JointSpacing:      6,
		JointOrientation:  30,
		Hardness:          4,
		Permeability:      PermeabilityHigh,
		ChemicalStability: 0.5,
		Weathering:        []WeatheringFeature{FeatureDome, FeatureTalus},
	}
	shaleBasin = &Formation{
		Name:              "shale basin",
		Rock:              RockShale,
		Minerals:          []string{"clay", "quartz", "pyrite"},
		Bedding:           BeddingVertical,
		JointSpacing:      1,
		JointOrientation:  160,
		Hardness:          2,
		Permeability:      PermeabilityImpermeable,
		ChemicalStability: 0.4,
		Weathering:        []WeatheringFeature{FeatureTalus},
	}
	marbleBelt = &Formation{
		Name:              "marble belt",
		Rock:              RockMarble,
		Minerals:          []string{"calcite", "dolomite"},
		Bedding:           BeddingFolded,
		JointSpacing:      5,
		JointOrientation:  70,
		Hardness:          3.5,
		Permeability:      PermeabilityModerate,
		ChemicalStability: 0.35,
		Weathering:        []WeatheringFeature{FeatureKarren, FeatureSinkhole},
	}
)

var formationsByBiome = map[core.Biome][]*Formation{
	core.BiomeMountain:    {graniteBatholith, gneissComplex, basaltFlow},
	core.BiomeDesert:      {sandstoneBeds, limestoneKarst, basaltFlow},
	core.BiomeForest:      {shaleBasin, limestoneKarst, graniteBatholith},
	core.BiomePlains:      {limestoneKarst, sandstoneBeds, shaleBasin},
	core.BiomeCoastal:     {sandstoneBeds, limestoneKarst},
	core.BiomeSwamp:       {shaleBasin, limestoneKarst},
	core.BiomeUnderground: {limestoneKarst, graniteBatholith, marbleBelt},
}

// Candidates returns the fixed formation list for a biome. Unknown biomes
// fall back to the plains table.
func Candidates(biome core.Biome) []*Formation {
	if list, ok := formationsByBiome[biome]; ok {
		return list
	}
	return formationsByBiome[core.BiomePlains]
}

// FractureIntensity derives fracture density from joint spacing.
func (f *Formation) FractureIntensity() float64 {
	return 1 / (f.JointSpacing + 1)
}
