package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr1hm/go-impact-sim/internal/models"
)

func baseParams() models.ImpactParameters {
	return models.ImpactParameters{
		DiameterM:      100,
		VelocityMS:     20000,
		DensityKgM3:    3300,
		ImpactAngleDeg: 45,
		TargetSurface:  models.SurfaceLand,
	}
}

func TestCalculate_MassAndEnergy(t *testing.T) {
	// 10 m iron meteor at 20 km/s: volume 523.6 m³, mass ~4.12e6 kg,
	// energy ~8.24e14 J.
	p := models.ImpactParameters{
		DiameterM:      10,
		VelocityMS:     20000,
		DensityKgM3:    7870,
		ImpactAngleDeg: 45,
	}

	res, err := Calculate(p)
	require.NoError(t, err)

	expectedVolume := (4.0 / 3.0) * math.Pi * 125.0
	expectedMass := expectedVolume * 7870
	assert.InEpsilon(t, expectedMass, res.MassKg, 1e-12)
	assert.InEpsilon(t, 0.5*expectedMass*20000*20000, res.KineticEnergyJ, 1e-12)
	assert.InEpsilon(t, res.KineticEnergyJ/TNTJoulesPerMegaton, res.EnergyMegatons, 1e-12)
}

func TestKilotonConversion_HiroshimaScale(t *testing.T) {
	// 6.276e13 J is roughly the Hiroshima bomb: ~15 kilotons.
	kt := 6.276e13 / TNTJoulesPerKiloton
	assert.InDelta(t, 15.0, kt, 0.5)
}

func TestCalculate_EnergyMonotonicity(t *testing.T) {
	base, err := Calculate(baseParams())
	require.NoError(t, err)

	bigger := baseParams()
	bigger.DiameterM *= 2
	faster := baseParams()
	faster.VelocityMS *= 2
	denser := baseParams()
	denser.DensityKgM3 *= 2

	for name, p := range map[string]models.ImpactParameters{
		"diameter": bigger, "velocity": faster, "density": denser,
	} {
		res, err := Calculate(p)
		require.NoError(t, err)
		assert.Greater(t, res.KineticEnergyJ, base.KineticEnergyJ, "increasing %s must increase energy", name)
	}
}

func TestCalculate_CraterContracts(t *testing.T) {
	res, err := Calculate(baseParams())
	require.NoError(t, err)

	assert.InEpsilon(t, res.Crater.DiameterKm/5.0, res.Crater.DepthKm, 1e-12, "depth is always diameter/5")

	p := baseParams()
	expected := 2.0 * math.Pow(p.DiameterM, 0.78) * math.Pow(p.VelocityMS/1000.0, 0.44) *
		math.Sin(p.ImpactAngleDeg*math.Pi/180.0) / 1000.0
	assert.InEpsilon(t, expected, res.Crater.DiameterKm, 1e-12)
}

func TestCalculate_GrazingImpact(t *testing.T) {
	// 0° keeps full kinetic energy but collapses the crater.
	p := baseParams()
	p.ImpactAngleDeg = 0

	res, err := Calculate(p)
	require.NoError(t, err)

	assert.Zero(t, res.Crater.DiameterKm)
	assert.Zero(t, res.Crater.VolumeKm3)
	assert.Zero(t, res.Dust.EjectedMassKg)
	assert.Greater(t, res.KineticEnergyJ, 0.0)
	assert.Greater(t, res.Zones.LightDamageKm, 0.0)
}

func TestCalculate_ZoneOrderingAndClosedForms(t *testing.T) {
	res, err := Calculate(baseParams())
	require.NoError(t, err)

	z := res.Zones
	assert.Greater(t, z.LightDamageKm, z.ModerateDamageKm)
	assert.Greater(t, z.ModerateDamageKm, z.SevereDamageKm)
	assert.Greater(t, z.SevereDamageKm, z.TotalDestructionKm)
	assert.Greater(t, z.TotalDestructionKm, 0.0)

	base := math.Pow(res.EnergyMegatons, 0.33)
	assert.InEpsilon(t, 5.0*base, z.SevereDamageKm, 1e-12)
	assert.InEpsilon(t, 10.0*base, z.ModerateDamageKm, 1e-12)
	assert.InEpsilon(t, 20.0*base, z.LightDamageKm, 1e-12)
	assert.InEpsilon(t, 2.0*res.Thermal.FireballRadiusKm, z.TotalDestructionKm, 1e-12)
}

func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		energyMt float64
		want     models.Severity
	}{
		{0.5, models.SeverityMinor},
		{1, models.SeveritySignificant}, // strict <: exactly 1 is not minor
		{99.999, models.SeveritySignificant},
		{100, models.SeverityCatastrophic},
		{10000, models.SeverityExtinction},
		{1e8, models.SeverityPlanetKiller},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.energyMt), "at %g Mt", tc.energyMt)
	}
}

func TestCalculate_PlanetKiller(t *testing.T) {
	// 100 km stone impactor at 25 km/s, vertical, into ocean.
	p := models.ImpactParameters{
		DiameterM:      100000,
		VelocityMS:     25000,
		DensityKgM3:    3300,
		ImpactAngleDeg: 90,
		TargetSurface:  models.SurfaceOcean,
	}

	res, err := Calculate(p)
	require.NoError(t, err)

	assert.Greater(t, res.EnergyMegatons, 1e8)
	assert.Equal(t, models.SeverityPlanetKiller, res.Assessment.Severity)
	assert.True(t, res.Assessment.IsExtinctionEvent)
	assert.True(t, res.Assessment.IsGlobalCatastrophe)
	assert.Equal(t, models.HemisphereGlobal, res.Dust.AffectedHemisphere)
	assert.Equal(t, float64(earthSurfaceKm2), res.Dust.CoverageKm2)
	assert.InDelta(t, 25.0, res.Dust.TemperatureDropC, 1e-9, "cooling is capped at 25°C")
}

func TestCalculate_HemisphereByLatitude(t *testing.T) {
	// A ~200 m impactor lands in the 100..10000 Mt band where the dust
	// cloud is hemispheric.
	p := baseParams()
	p.DiameterM = 200
	p.Latitude = 40

	res, err := Calculate(p)
	require.NoError(t, err)
	require.Greater(t, res.EnergyMegatons, 100.0)
	require.Less(t, res.EnergyMegatons, 10000.0)
	assert.Equal(t, models.HemisphereNorthern, res.Dust.AffectedHemisphere)

	p.Latitude = -40
	res, err = Calculate(p)
	require.NoError(t, err)
	assert.Equal(t, models.HemisphereSouthern, res.Dust.AffectedHemisphere)

	small := baseParams()
	small.DiameterM = 10
	res, err = Calculate(small)
	require.NoError(t, err)
	assert.Equal(t, models.HemisphereRegional, res.Dust.AffectedHemisphere)
}

func TestStratosphereFraction_Steps(t *testing.T) {
	assert.Equal(t, 0.01, stratosphereFraction(50))
	assert.Equal(t, 0.1, stratosphereFraction(100))
	assert.Equal(t, 0.1, stratosphereFraction(10000))
	assert.Equal(t, 0.3, stratosphereFraction(10001))
}

func TestImpactWinter_Steps(t *testing.T) {
	assert.Equal(t, 0.0, impactWinterYears(1e11))
	assert.Equal(t, 0.5, impactWinterYears(1e13))
	assert.Equal(t, 2.0, impactWinterYears(5e14))
	assert.InDelta(t, 5.0+2.0, impactWinterYears(1e17), 1e-12)

	assert.Equal(t, 0.0, temperatureDrop(1e11))
	assert.InDelta(t, 2.0, temperatureDrop(1e13), 1e-12)
}

func TestCalculate_Deterministic(t *testing.T) {
	p := baseParams()
	a, err := Calculate(p)
	require.NoError(t, err)
	b, err := Calculate(p)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same parameters must yield bit-identical results")
}

func TestCalculate_RejectsInvalidParameters(t *testing.T) {
	cases := map[string]models.ImpactParameters{
		"zero diameter":     {DiameterM: 0, VelocityMS: 1, DensityKgM3: 1, ImpactAngleDeg: 45},
		"negative velocity": {DiameterM: 1, VelocityMS: -1, DensityKgM3: 1, ImpactAngleDeg: 45},
		"NaN density":       {DiameterM: 1, VelocityMS: 1, DensityKgM3: math.NaN(), ImpactAngleDeg: 45},
		"inf diameter":      {DiameterM: math.Inf(1), VelocityMS: 1, DensityKgM3: 1, ImpactAngleDeg: 45},
		"angle over 90":     {DiameterM: 1, VelocityMS: 1, DensityKgM3: 1, ImpactAngleDeg: 91},
		"latitude over 90":  {DiameterM: 1, VelocityMS: 1, DensityKgM3: 1, ImpactAngleDeg: 45, Latitude: 95},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Calculate(p)
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrInvalidParameter)
		})
	}
}
