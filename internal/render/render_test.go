package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr1hm/go-impact-sim/internal/atlas"
	"github.com/mr1hm/go-impact-sim/internal/models"
	"github.com/mr1hm/go-impact-sim/internal/physics"
)

func testResult(t *testing.T) models.ImpactResult {
	t.Helper()
	res, err := physics.Calculate(models.ImpactParameters{
		DiameterM:      100,
		VelocityMS:     20000,
		DensityKgM3:    3300,
		ImpactAngleDeg: 45,
		TargetSurface:  models.SurfaceLand,
		Latitude:       35.6762,
		Longitude:      139.6503,
	})
	require.NoError(t, err)
	return res
}

func testCity() atlas.City {
	return atlas.City{
		Name:            "Tokyo",
		Country:         "Japan",
		Latitude:        35.6762,
		Longitude:       139.6503,
		Population:      13960000,
		MetroPopulation: 37400068,
		MetroDensity:    2700,
	}
}

func TestImpactMap(t *testing.T) {
	res := testResult(t)
	out := ImpactMap(60, 30, testCity(), res.Zones, res.Thermal.FireballRadiusKm)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 30)
	for i := 0; i < 30; i++ {
		assert.Len(t, lines[i], 60, "grid row %d", i)
	}

	assert.Contains(t, lines[15], "X", "impact point must be marked on the center row")
	assert.Contains(t, out, "Tokyo (Japan)")
	assert.Contains(t, out, "Legend:")
	assert.Contains(t, out, "* = Fireball")

	// Outer zones must actually be painted.
	grid := strings.Join(lines[:30], "\n")
	assert.Contains(t, grid, ".")
	assert.Contains(t, grid, "o")
}

func TestImpactMap_ZeroZones(t *testing.T) {
	// All-zero radii must not divide by zero or paint anything.
	out := ImpactMap(40, 20, testCity(), models.DestructionZones{}, 0)
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[10], "X")
	for i := 0; i < 20; i++ {
		trimmed := strings.TrimRight(lines[i], " ")
		if i == 10 {
			assert.Equal(t, "X", strings.TrimSpace(trimmed))
		} else {
			assert.Empty(t, trimmed, "row %d should be blank", i)
		}
	}
}

func TestSummary(t *testing.T) {
	res := testResult(t)
	out := Summary("Stone", res)

	for _, want := range []string{
		"METEOR IMPACT ANALYSIS",
		"METEOR PROPERTIES",
		"ENERGY & HEAT",
		"CRATER",
		"DESTRUCTION ZONES",
		"DUST CLOUD & IMPACT WINTER",
		"ASSESSMENT",
		"Stone (3300 kg/m³)",
	} {
		assert.Contains(t, out, want)
	}
}

func TestComparisons(t *testing.T) {
	res := testResult(t)
	out := Comparisons(res)
	assert.Contains(t, out, "Hiroshima")

	tiny, err := physics.Calculate(models.ImpactParameters{
		DiameterM:      0.05,
		VelocityMS:     1000,
		DensityKgM3:    917,
		ImpactAngleDeg: 45,
	})
	require.NoError(t, err)
	out = Comparisons(tiny)
	assert.Contains(t, out, "too small")
}

func TestCasualtyTable(t *testing.T) {
	res := testResult(t)
	c := physics.EstimateCasualties(res.Zones, res.Thermal.FireballRadiusKm, 2700)

	out := CasualtyTable(c)
	assert.Contains(t, out, "fireball")
	assert.Contains(t, out, "light damage")
	assert.Contains(t, out, "TOTAL")
}
