package physics

import (
	"math"

	"github.com/mr1hm/go-impact-sim/internal/material"
	"github.com/mr1hm/go-impact-sim/internal/models"
)

// Energy conversion constants.
const (
	TNTJoulesPerKiloton = 4.184e12
	TNTJoulesPerMegaton = 4.184e15

	// earthSurfaceKm2 caps the dust cloud coverage for global events.
	earthSurfaceKm2 = 510_000_000

	// ejectaFactor multiplies crater volume to estimate total thrown-up
	// material (typical range is 10-100x; 30 is the adopted average).
	ejectaFactor = 30.0
)

// Calculate runs the full impact pipeline. It validates the parameters
// first and returns models.ErrInvalidParameter (wrapped) without computing
// anything if they are out of contract.
func Calculate(p models.ImpactParameters) (models.ImpactResult, error) {
	if err := p.Validate(); err != nil {
		return models.ImpactResult{}, err
	}

	// Mass and kinetic energy.
	radius := p.DiameterM / 2.0
	volume := (4.0 / 3.0) * math.Pi * radius * radius * radius
	mass := volume * p.DensityKgM3

	energyJ := 0.5 * mass * p.VelocityMS * p.VelocityMS
	energyMt := energyJ / TNTJoulesPerMegaton

	// Crater. sin(angle) is the only place the angle enters the model.
	angleCorrection := math.Sin(p.ImpactAngleDeg * math.Pi / 180.0)

	craterDiameterM := 2.0 * math.Pow(p.DiameterM, 0.78) *
		math.Pow(p.VelocityMS/1000.0, 0.44) * angleCorrection
	craterDepthM := craterDiameterM / 5.0
	craterVolumeM3 := (math.Pi / 3.0) * (craterDiameterM / 2.0) * (craterDiameterM / 2.0) * craterDepthM

	crater := models.Crater{
		DiameterKm: craterDiameterM / 1000.0,
		DepthKm:    craterDepthM / 1000.0,
		VolumeKm3:  craterVolumeM3 / 1e9,
	}

	// Thermal effects.
	fireballKm := 0.28 * math.Pow(energyMt, 0.33)
	thermal := models.Thermal{
		EnergyJ:          0.4 * energyJ,
		TemperatureK:     5000.0 + math.Pow(energyMt, 0.5)*500.0,
		FireballRadiusKm: fireballKm,
	}

	// Destruction zones.
	blastBase := math.Pow(energyMt, 0.33)
	zones := models.DestructionZones{
		TotalDestructionKm: 2.0 * fireballKm,
		SevereDamageKm:     5.0 * blastBase,
		ModerateDamageKm:   10.0 * blastBase,
		LightDamageKm:      20.0 * blastBase,
	}

	// Dust and impact winter.
	surfaceDensity := material.SurfaceDensity(p.TargetSurface)
	ejectedMass := craterVolumeM3 * ejectaFactor * surfaceDensity
	stratoMass := ejectedMass * stratosphereFraction(energyMt)

	coverage, hemisphere := dustCoverage(energyMt, p.Latitude)

	dust := models.DustEffects{
		EjectedMassKg:      ejectedMass,
		StratosphereMassKg: stratoMass,
		CoverageKm2:        coverage,
		AffectedHemisphere: hemisphere,
		ImpactWinterYears:  impactWinterYears(stratoMass),
		TemperatureDropC:   temperatureDrop(stratoMass),
	}

	assessment := models.Assessment{
		Severity:            Classify(energyMt),
		IsExtinctionEvent:   energyMt > 10000,
		IsGlobalCatastrophe: hemisphere == models.HemisphereGlobal,
	}

	return models.ImpactResult{
		Params:         p,
		MassKg:         mass,
		KineticEnergyJ: energyJ,
		EnergyMegatons: energyMt,
		Crater:         crater,
		Thermal:        thermal,
		Zones:          zones,
		Dust:           dust,
		Assessment:     assessment,
	}, nil
}

// stratosphereFraction is the share of ejected dust fine enough to reach
// the stratosphere. The high-energy branch is checked first so the
// [100,10000] band cannot shadow it.
func stratosphereFraction(energyMt float64) float64 {
	switch {
	case energyMt > 10000:
		return 0.3
	case energyMt >= 100:
		return 0.1
	default:
		return 0.01
	}
}

func dustCoverage(energyMt, latitude float64) (float64, models.Hemisphere) {
	switch {
	case energyMt < 100:
		return energyMt * 10000, models.HemisphereRegional
	case energyMt < 10000:
		if latitude > 0 {
			return energyMt * 50000, models.HemisphereNorthern
		}
		return energyMt * 50000, models.HemisphereSouthern
	default:
		return earthSurfaceKm2, models.HemisphereGlobal
	}
}

// impactWinterYears converts stratospheric dust mass (kg) into a cooling
// period. Below 1e12 kg the atmosphere clears too fast to matter.
func impactWinterYears(stratoMassKg float64) float64 {
	switch {
	case stratoMassKg < 1e12:
		return 0
	case stratoMassKg < 1e14:
		return 0.5
	case stratoMassKg < 1e15:
		return 2.0
	default:
		return 5.0 + math.Log10(stratoMassKg/1e15)
	}
}

// temperatureDrop is the global cooling in °C, capped at 25.
func temperatureDrop(stratoMassKg float64) float64 {
	if stratoMassKg < 1e12 {
		return 0
	}
	return math.Min(25.0, 2.0*math.Log10(stratoMassKg/1e12))
}

// Classify buckets impact energy (megatons TNT) into a severity label.
// Boundaries are strict: exactly 1 Mt is still "significant", and so on
// up the ladder.
func Classify(energyMt float64) models.Severity {
	switch {
	case energyMt < 1:
		return models.SeverityMinor
	case energyMt < 100:
		return models.SeveritySignificant
	case energyMt < 10000:
		return models.SeverityCatastrophic
	case energyMt < 1e8:
		return models.SeverityExtinction
	default:
		return models.SeverityPlanetKiller
	}
}
