// Package material holds the static reference tables for meteor
// compositions and target surfaces. Both tables are read-only after Load
// and safe for concurrent use.
//
// Lookup policy: material names are matched case-insensitively, and an
// unknown name resolves to stone rather than failing. That fallback is a
// deliberate contract of the calculator, not an error path; callers that
// want to distinguish unknown names should use Profile's ok result.
//
// The canonical stone density is 3300 kg/m³.
package material

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mr1hm/go-impact-sim/internal/models"
)

//go:embed materials.yaml
var rawMaterials []byte

// FallbackKey is the material every unknown name resolves to.
const FallbackKey = "stone"

// Profile describes one meteor composition.
type Profile struct {
	Key         string  `yaml:"key"`
	Name        string  `yaml:"name"`
	DensityKgM3 float64 `yaml:"density"`
	Description string  `yaml:"description"`
}

type tables struct {
	Materials []Profile `yaml:"materials"`
}

// Registry is the immutable material table.
type Registry struct {
	byKey map[string]Profile
	keys  []string
}

// Load parses the embedded material table. It fails only if the embedded
// data is malformed or missing the stone fallback entry.
func Load() (*Registry, error) {
	var t tables
	if err := yaml.Unmarshal(rawMaterials, &t); err != nil {
		return nil, fmt.Errorf("error parsing material table: %w", err)
	}

	r := &Registry{byKey: make(map[string]Profile, len(t.Materials))}
	for _, p := range t.Materials {
		key := strings.ToLower(p.Key)
		if _, dup := r.byKey[key]; dup {
			return nil, fmt.Errorf("duplicate material key: %s", key)
		}
		r.byKey[key] = p
		r.keys = append(r.keys, key)
	}
	sort.Strings(r.keys)

	if _, ok := r.byKey[FallbackKey]; !ok {
		return nil, fmt.Errorf("material table has no %q fallback entry", FallbackKey)
	}
	return r, nil
}

// Density returns the density for a material name, case-insensitively.
// Unknown names resolve to the stone density.
func (r *Registry) Density(name string) float64 {
	p, _ := r.Profile(name)
	return p.DensityKgM3
}

// Profile returns the full profile for a material name. ok is false when
// the name was unknown and the stone fallback was returned instead.
func (r *Registry) Profile(name string) (Profile, bool) {
	if p, ok := r.byKey[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p, true
	}
	return r.byKey[FallbackKey], false
}

// Keys lists all material keys in sorted order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// All returns every profile in key order, for CLI listings.
func (r *Registry) All() []Profile {
	out := make([]Profile, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.byKey[k])
	}
	return out
}

// Surface (ground) densities in kg/m³, used only for crater ejecta mass.
// This is a separate table from meteor material density: the meteor is
// what arrives, the surface is what gets thrown up.
var surfaceDensity = map[models.TargetSurface]float64{
	models.SurfaceLand:   2500,
	models.SurfaceDesert: 2500,
	models.SurfaceOcean:  1025,
	models.SurfaceIce:    917,
}

// SurfaceDensity returns the target ground density for a surface type.
// Unknown surfaces use the land default.
func SurfaceDensity(s models.TargetSurface) float64 {
	if d, ok := surfaceDensity[s]; ok {
		return d
	}
	return surfaceDensity[models.SurfaceLand]
}
