package render

import (
	"fmt"
	"strings"

	"github.com/mr1hm/go-impact-sim/internal/models"
	"github.com/mr1hm/go-impact-sim/internal/physics"
)

const rule = "======================================================================"

// Summary formats the full impact report.
func Summary(materialName string, res models.ImpactResult) string {
	p := res.Params
	var b strings.Builder

	b.WriteString(rule + "\n")
	b.WriteString(Styles.Title.Render("METEOR IMPACT ANALYSIS") + "\n")
	b.WriteString(rule + "\n\n")

	section(&b, "METEOR PROPERTIES")
	line(&b, "Diameter", fmt.Sprintf("%.1f m (%.2f km)", p.DiameterM, p.DiameterM/1000))
	line(&b, "Velocity", fmt.Sprintf("%.1f m/s (%.2f km/s)", p.VelocityMS, p.VelocityMS/1000))
	line(&b, "Material", fmt.Sprintf("%s (%.0f kg/m³)", materialName, p.DensityKgM3))
	line(&b, "Impact Angle", fmt.Sprintf("%.0f°", p.ImpactAngleDeg))
	line(&b, "Target Surface", string(surfaceOrDefault(p.TargetSurface)))
	line(&b, "Mass", fmt.Sprintf("%.2e kg", res.MassKg))

	section(&b, "ENERGY & HEAT")
	line(&b, "Kinetic Energy", fmt.Sprintf("%.2e J", res.KineticEnergyJ))
	line(&b, "TNT Equivalent", fmt.Sprintf("%.2f megatons", res.EnergyMegatons))
	line(&b, "Thermal Energy", fmt.Sprintf("%.2e J", res.Thermal.EnergyJ))
	line(&b, "Impact Temperature", fmt.Sprintf("%.0f K (%.0f°C)", res.Thermal.TemperatureK, res.Thermal.TemperatureK-273.15))
	line(&b, "Fireball Radius", fmt.Sprintf("%.2f km", res.Thermal.FireballRadiusKm))

	section(&b, "CRATER")
	line(&b, "Diameter", fmt.Sprintf("%.2f km", res.Crater.DiameterKm))
	line(&b, "Depth", fmt.Sprintf("%.2f km", res.Crater.DepthKm))
	line(&b, "Volume", fmt.Sprintf("%.2f km³", res.Crater.VolumeKm3))

	section(&b, "DESTRUCTION ZONES")
	line(&b, "Total Destruction", fmt.Sprintf("%.2f km radius", res.Zones.TotalDestructionKm))
	line(&b, "Severe Damage", fmt.Sprintf("%.2f km radius", res.Zones.SevereDamageKm))
	line(&b, "Moderate Damage", fmt.Sprintf("%.2f km radius", res.Zones.ModerateDamageKm))
	line(&b, "Light Damage", fmt.Sprintf("%.2f km radius", res.Zones.LightDamageKm))

	section(&b, "DUST CLOUD & IMPACT WINTER")
	line(&b, "Dust Ejected", fmt.Sprintf("%.2e kg", res.Dust.EjectedMassKg))
	line(&b, "Stratospheric Dust", fmt.Sprintf("%.2e kg", res.Dust.StratosphereMassKg))
	line(&b, "Coverage Area", fmt.Sprintf("%.2e km²", res.Dust.CoverageKm2))
	line(&b, "Affected Region", string(res.Dust.AffectedHemisphere))
	line(&b, "Impact Winter", fmt.Sprintf("%.1f years", res.Dust.ImpactWinterYears))
	line(&b, "Temperature Drop", fmt.Sprintf("%.1f°C", res.Dust.TemperatureDropC))

	section(&b, "ASSESSMENT")
	sev := strings.ToUpper(string(res.Assessment.Severity))
	if res.Assessment.Severity == models.SeverityExtinction || res.Assessment.Severity == models.SeverityPlanetKiller {
		line(&b, "Severity", Styles.Danger.Render(sev))
	} else {
		line(&b, "Severity", sev)
	}
	line(&b, "Extinction Event", yesNo(res.Assessment.IsExtinctionEvent))
	line(&b, "Global Catastrophe", yesNo(res.Assessment.IsGlobalCatastrophe))

	b.WriteString("\n" + rule + "\n")
	return b.String()
}

// Comparisons relates the impact to known historical events. Small
// impacts skip comparisons that would read as noise.
func Comparisons(res models.ImpactResult) string {
	kt := res.KineticEnergyJ / physics.TNTJoulesPerKiloton

	var lines []string
	if kt >= 0.01 {
		lines = append(lines, fmt.Sprintf("  ~ %.2fx Hiroshima atomic bomb", kt/15))
	}
	if kt >= 100 {
		lines = append(lines, fmt.Sprintf("  ~ %.2fx Tunguska event (1908)", kt/12000))
	}
	if kt >= 1e6 {
		lines = append(lines, fmt.Sprintf("  ~ %.2ex Chicxulub impact (dinosaurs)", kt/1e11))
	}

	var b strings.Builder
	b.WriteString(Styles.Section.Render("COMPARISONS") + "\n")
	if len(lines) == 0 {
		b.WriteString(Styles.Muted.Render("  Impact too small for meaningful comparisons") + "\n")
		return b.String()
	}
	b.WriteString(strings.Join(lines, "\n") + "\n")
	return b.String()
}

// CasualtyTable formats per-zone deaths and injuries.
func CasualtyTable(c models.Casualties) string {
	var b strings.Builder
	b.WriteString(Styles.Section.Render("ESTIMATED CASUALTIES") + "\n")
	for _, z := range c.Zones {
		name := strings.ReplaceAll(z.Zone, "_", " ")
		b.WriteString(fmt.Sprintf("  %-18s deaths: %-12d injuries: %d\n", name, z.Deaths, z.Injuries))
	}
	b.WriteString(fmt.Sprintf("  %-18s deaths: %-12d injuries: %d  (affected: %d)\n",
		"TOTAL", c.TotalDeaths, c.TotalInjuries, c.TotalAffected))
	return b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteString("\n" + Styles.Section.Render(title) + "\n")
}

func line(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("  %s %s\n", Styles.Label.Render(fmt.Sprintf("%-20s", label+":")), value))
}

func yesNo(v bool) string {
	if v {
		return Styles.Danger.Render("YES")
	}
	return "NO"
}

func surfaceOrDefault(s models.TargetSurface) models.TargetSurface {
	if s == "" {
		return models.SurfaceLand
	}
	return s
}
