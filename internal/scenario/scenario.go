// Package scenario carries the named historical/hypothetical presets and
// the batch runner that evaluates them concurrently.
package scenario

import (
	"github.com/mr1hm/go-impact-sim/internal/models"
)

// Preset is a canned impactor. Material is a registry key; the runner
// resolves it to a density so presets stay in sync with the canonical
// material table.
type Preset struct {
	Key         string
	Title       string
	Material    string
	DiameterM   float64
	VelocityMS  float64
	AngleDeg    float64
	Surface     models.TargetSurface
	Latitude    float64
	Longitude   float64
	Description string
}

var presets = []Preset{
	{
		Key:         "chelyabinsk",
		Title:       "Chelyabinsk (2013)",
		Material:    "stone",
		DiameterM:   20,
		VelocityMS:  19000,
		AngleDeg:    20,
		Surface:     models.SurfaceLand,
		Latitude:    55.15,
		Longitude:   61.41,
		Description: "Shallow airburst-scale entry over the Urals",
	},
	{
		Key:         "tunguska",
		Title:       "Tunguska (1908)",
		Material:    "stone",
		DiameterM:   60,
		VelocityMS:  15000,
		AngleDeg:    30,
		Surface:     models.SurfaceLand,
		Latitude:    60.89,
		Longitude:   101.89,
		Description: "Forest-flattening event over Siberia",
	},
	{
		Key:         "chicxulub",
		Title:       "Chicxulub (dinosaur killer)",
		Material:    "stone",
		DiameterM:   10000,
		VelocityMS:  20000,
		AngleDeg:    45,
		Surface:     models.SurfaceLand,
		Latitude:    21.3,
		Longitude:   -89.5,
		Description: "10 km impactor at the Yucatán peninsula",
	},
	{
		Key:         "planet-killer",
		Title:       "Planet Killer",
		Material:    "stone",
		DiameterM:   100000,
		VelocityMS:  25000,
		AngleDeg:    90,
		Surface:     models.SurfaceOcean,
		Description: "100 km vertical ocean strike; nothing survives",
	},
}

// Presets returns all presets in canonical (size) order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Find returns the preset with the given key.
func Find(key string) (Preset, bool) {
	for _, p := range presets {
		if p.Key == key {
			return p, true
		}
	}
	return Preset{}, false
}
