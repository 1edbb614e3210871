// Package render turns engine output into terminal text: a styled report,
// historic comparisons, a casualty table, and a coarse ASCII map of the
// destruction zones. Everything here is read-only over the result structs.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/mr1hm/go-impact-sim/internal/atlas"
	"github.com/mr1hm/go-impact-sim/internal/models"
)

// zone glyphs, painted outside-in so inner zones overwrite outer ones.
var mapZones = []struct {
	label string
	char  byte
}{
	{"light_damage", '.'},
	{"moderate_damage", 'o'},
	{"severe_damage", 'O'},
	{"total_destruction", '#'},
	{"fireball", '*'},
}

// ImpactMap renders the nested destruction zones as a width x height
// character grid centered on the impact point, with a legend naming each
// radius. Vertical distances count double to compensate for terminal
// character aspect ratio.
func ImpactMap(width, height int, city atlas.City, zones models.DestructionZones, fireballKm float64) string {
	if width < 11 {
		width = 11
	}
	if height < 7 {
		height = 7
	}

	grid := make([][]byte, height)
	for y := range grid {
		grid[y] = make([]byte, width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	centerX := width / 2
	centerY := height / 2

	radii := []float64{
		zones.LightDamageKm,
		zones.ModerateDamageKm,
		zones.SevereDamageKm,
		zones.TotalDestructionKm,
		fireballKm,
	}

	maxRadius := 0.0
	for _, r := range radii {
		if r > maxRadius {
			maxRadius = r
		}
	}

	// km per character cell.
	scale := 1.0
	if maxRadius > 0 {
		half := min(width, height)/2 - 2
		scale = maxRadius / float64(half)
	}

	for i, z := range mapZones {
		radius := radii[i]
		if radius <= 0 {
			continue
		}
		radiusChars := radius / scale
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				dx := float64(x - centerX)
				dy := float64(y-centerY) * 2
				if math.Sqrt(dx*dx+dy*dy) <= radiusChars {
					grid[y][x] = z.char
				}
			}
		}
	}

	grid[centerY][centerX] = 'X'

	var b strings.Builder
	for _, row := range grid {
		b.Write(row)
		b.WriteByte('\n')
	}

	ns := "N"
	if city.Latitude < 0 {
		ns = "S"
	}
	ew := "E"
	if city.Longitude < 0 {
		ew = "W"
	}

	b.WriteByte('\n')
	b.WriteString(Styles.Section.Render("Impact Location:") +
		fmt.Sprintf(" %s (%s)\n", city.Name, city.Country))
	b.WriteString(fmt.Sprintf("Coordinates: %.2f°%s, %.2f°%s\n",
		math.Abs(city.Latitude), ns, math.Abs(city.Longitude), ew))
	b.WriteString(fmt.Sprintf("Population: %d (Metro: %d)\n\n",
		city.Population, city.MetroPopulation))

	b.WriteString("Legend:\n")
	b.WriteString("  X = Impact Point\n")
	b.WriteString(fmt.Sprintf("  * = Fireball (%.1f km)\n", fireballKm))
	b.WriteString(fmt.Sprintf("  # = Total Destruction (%.1f km)\n", zones.TotalDestructionKm))
	b.WriteString(fmt.Sprintf("  O = Severe Damage (%.1f km)\n", zones.SevereDamageKm))
	b.WriteString(fmt.Sprintf("  o = Moderate Damage (%.1f km)\n", zones.ModerateDamageKm))
	b.WriteString(fmt.Sprintf("  . = Light Damage (%.1f km)\n", zones.LightDamageKm))

	return b.String()
}
