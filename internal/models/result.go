package models

// Severity is an ordered categorical label derived solely from impact
// energy in megatons TNT.
type Severity string

const (
	SeverityMinor        Severity = "minor"
	SeveritySignificant  Severity = "significant"
	SeverityCatastrophic Severity = "catastrophic"
	SeverityExtinction   Severity = "extinction-level"
	SeverityPlanetKiller Severity = "planet-killer"
)

// Hemisphere labels the region blanketed by the dust cloud.
type Hemisphere string

const (
	HemisphereRegional Hemisphere = "regional"
	HemisphereNorthern Hemisphere = "northern"
	HemisphereSouthern Hemisphere = "southern"
	HemisphereGlobal   Hemisphere = "global"
)

// Crater holds the excavation dimensions. Depth is always DiameterKm/5;
// volume uses a cone approximation.
type Crater struct {
	DiameterKm float64
	DepthKm    float64
	VolumeKm3  float64
}

// Thermal holds heat-related effects of the impact flash.
type Thermal struct {
	EnergyJ          float64 // 40% of kinetic energy
	TemperatureK     float64
	FireballRadiusKm float64
}

// DestructionZones are concentric blast radii in km. For any positive
// energy: light >= moderate >= severe >= total >= 0.
type DestructionZones struct {
	TotalDestructionKm float64
	SevereDamageKm     float64
	ModerateDamageKm   float64
	LightDamageKm      float64
}

// DustEffects models ejecta lofted by the impact and its climate
// consequences.
type DustEffects struct {
	EjectedMassKg      float64
	StratosphereMassKg float64
	CoverageKm2        float64
	AffectedHemisphere Hemisphere
	ImpactWinterYears  float64
	TemperatureDropC   float64
}

// Assessment is the overall classification of the event.
type Assessment struct {
	Severity            Severity
	IsExtinctionEvent   bool
	IsGlobalCatastrophe bool
}

// ImpactResult is the fully derived output of one calculation. It is
// allocated per call and never retained by the engine. Energy is exposed
// both in raw SI joules and in megatons TNT, since downstream severity and
// zone logic work in megatons.
type ImpactResult struct {
	Params ImpactParameters

	MassKg         float64
	KineticEnergyJ float64
	EnergyMegatons float64

	Crater  Crater
	Thermal Thermal
	Zones   DestructionZones
	Dust    DustEffects

	Assessment Assessment
}

// ZoneCasualties is the toll inside a single annular zone.
type ZoneCasualties struct {
	Zone     string
	Deaths   int64
	Injuries int64
}

// Casualties aggregates deaths and injuries across the nested destruction
// zones, ordered innermost (fireball) to outermost (light damage).
type Casualties struct {
	Zones         []ZoneCasualties
	TotalDeaths   int64
	TotalInjuries int64
	TotalAffected int64
}
