package physics

import (
	"math"

	"github.com/mr1hm/go-impact-sim/internal/models"
)

// Zone labels used in casualty reports, innermost first.
const (
	ZoneFireball         = "fireball"
	ZoneTotalDestruction = "total_destruction"
	ZoneSevereDamage     = "severe_damage"
	ZoneModerateDamage   = "moderate_damage"
	ZoneLightDamage      = "light_damage"
)

// zoneRates is the fixed mortality/injury table. Injury rates apply to
// survivors only.
var zoneRates = []struct {
	zone      string
	mortality float64
	injury    float64
}{
	{ZoneFireball, 1.00, 0.00},
	{ZoneTotalDestruction, 0.98, 0.95},
	{ZoneSevereDamage, 0.70, 0.85},
	{ZoneModerateDamage, 0.30, 0.60},
	{ZoneLightDamage, 0.05, 0.40},
}

// EstimateCasualties apportions a uniform population density (people per
// km²) across the nested destruction zones and applies the per-zone rate
// table. Zones are treated as annuli: fireball ⊂ total ⊂ severe ⊂
// moderate ⊂ light. Callers are expected to pass radii in that order; if
// an inner radius exceeds its outer one the annulus area is clamped to
// zero instead of producing negative deaths.
//
// A density of zero or less yields an all-zero result, which is valid.
// Per-zone counts are truncated toward zero before summing.
func EstimateCasualties(zones models.DestructionZones, fireballRadiusKm, populationDensity float64) models.Casualties {
	radii := []float64{
		fireballRadiusKm,
		zones.TotalDestructionKm,
		zones.SevereDamageKm,
		zones.ModerateDamageKm,
		zones.LightDamageKm,
	}

	out := models.Casualties{Zones: make([]models.ZoneCasualties, 0, len(zoneRates))}

	inner := 0.0
	for i, rate := range zoneRates {
		outer := radii[i]
		area := math.Pi * (outer*outer - inner*inner)
		if area < 0 {
			area = 0
		}
		population := area * populationDensity
		if population < 0 {
			population = 0
		}

		deaths := population * rate.mortality
		injuries := (population - deaths) * rate.injury

		zc := models.ZoneCasualties{
			Zone:     rate.zone,
			Deaths:   int64(deaths),
			Injuries: int64(injuries),
		}
		out.Zones = append(out.Zones, zc)
		out.TotalDeaths += zc.Deaths
		out.TotalInjuries += zc.Injuries

		inner = outer
	}

	out.TotalAffected = out.TotalDeaths + out.TotalInjuries
	return out
}
