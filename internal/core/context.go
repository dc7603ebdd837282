package core

// Biome is the coarse terrain classification that selects generator tables.
type Biome string

const (
	BiomeMountain    Biome = "mountain"
	BiomeDesert      Biome = "desert"
	BiomeForest      Biome = "forest"
	BiomePlains      Biome = "plains"
	BiomeCoastal     Biome = "coastal"
	BiomeSwamp       Biome = "swamp"
	BiomeUnderground Biome = "underground"
)

// ElevationRegime controls how much relief the elevation field carries.
type ElevationRegime string

const (
	ElevationFlat        ElevationRegime = "flat"
	ElevationRolling     ElevationRegime = "rolling"
	ElevationHilly       ElevationRegime = "hilly"
	ElevationMountainous ElevationRegime = "mountainous"
)

// HydrologyRegime controls stream density and moisture baselines.
type HydrologyRegime string

const (
	HydrologyArid     HydrologyRegime = "arid"
	HydrologySeasonal HydrologyRegime = "seasonal"
	HydrologyStream   HydrologyRegime = "stream"
	HydrologyRiver    HydrologyRegime = "river"
	HydrologyWetland  HydrologyRegime = "wetland"
)

// DevelopmentLevel controls how much built infrastructure appears.
type DevelopmentLevel string

const (
	DevelopmentWild    DevelopmentLevel = "wild"
	DevelopmentRural   DevelopmentLevel = "rural"
	DevelopmentSettled DevelopmentLevel = "settled"
)

// Season shades vegetation parameters.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// TacticalMapContext is the resolved parameter set for one generation run.
// It is immutable once the run starts.
type TacticalMapContext struct {
	Biome       Biome
	Elevation   ElevationRegime
	Hydrology   HydrologyRegime
	Development DevelopmentLevel
	Season      Season

	RequireWater    bool
	RequireLandmark bool
}

// DefaultContext returns the context implied by a biome alone; settings
// overrides replace individual fields afterwards.
func DefaultContext(biome Biome) TacticalMapContext {
	ctx := TacticalMapContext{
		Biome:       biome,
		Elevation:   ElevationRolling,
		Hydrology:   HydrologyStream,
		Development: DevelopmentWild,
		Season:      SeasonSummer,
	}
	switch biome {
	case BiomeMountain:
		ctx.Elevation = ElevationMountainous
		ctx.Hydrology = HydrologySeasonal
	case BiomeDesert:
		ctx.Elevation = ElevationRolling
		ctx.Hydrology = HydrologyArid
	case BiomeForest:
		ctx.Elevation = ElevationHilly
	case BiomePlains:
		ctx.Elevation = ElevationFlat
		ctx.Development = DevelopmentRural
	case BiomeCoastal:
		ctx.Elevation = ElevationFlat
		ctx.Hydrology = HydrologyRiver
	case BiomeSwamp:
		ctx.Elevation = ElevationFlat
		ctx.Hydrology = HydrologyWetland
	case BiomeUnderground:
		ctx.Elevation = ElevationHilly
		ctx.Hydrology = HydrologySeasonal
	}
	return ctx
}

// ValidBiome reports whether the name matches a known biome.
func ValidBiome(b Biome) bool {
	switch b {
	case BiomeMountain, BiomeDesert, BiomeForest, BiomePlains, BiomeCoastal, BiomeSwamp, BiomeUnderground:
		return true
	}
	return false
}

// ValidHydrology reports whether the name matches a known hydrology regime.
func ValidHydrology(h HydrologyRegime) bool {
	switch h {
	case HydrologyArid, HydrologySeasonal, HydrologyStream, HydrologyRiver, HydrologyWetland:
		return true
	}
	return false
}

// ValidElevation reports whether the name matches a known elevation regime.
func ValidElevation(e ElevationRegime) bool {
	switch e {
	case ElevationFlat, ElevationRolling, ElevationHilly, ElevationMountainous:
		return true
	}
	return false
}

// ValidDevelopment reports whether the name matches a known development level.
func ValidDevelopment(d DevelopmentLevel) bool {
	switch d {
	case DevelopmentWild, DevelopmentRural, DevelopmentSettled:
		return true
	}
	return false
}

// ValidSeason reports whether the name matches a known season.
func ValidSeason(s Season) bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter:
		return true
	}
	return false
}
