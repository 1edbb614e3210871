package models

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidParameter marks a physical input that is non-positive,
// non-finite, or outside its documented range. The engine refuses to
// compute on parameters that fail validation.
var ErrInvalidParameter = errors.New("invalid parameter")

// TargetSurface identifies the ground the meteor strikes. It only affects
// crater ejecta density, not the meteor itself.
type TargetSurface string

const (
	SurfaceLand   TargetSurface = "land"
	SurfaceOcean  TargetSurface = "ocean"
	SurfaceDesert TargetSurface = "desert"
	SurfaceIce    TargetSurface = "ice"
)

// ParseSurface maps a user-supplied string to a TargetSurface. Unknown or
// empty values fall back to land, mirroring the material registry's
// fallback-on-miss policy.
func ParseSurface(s string) TargetSurface {
	switch TargetSurface(strings.ToLower(strings.TrimSpace(s))) {
	case SurfaceOcean:
		return SurfaceOcean
	case SurfaceDesert:
		return SurfaceDesert
	case SurfaceIce:
		return SurfaceIce
	default:
		return SurfaceLand
	}
}

// ImpactParameters describes the impactor and target. Values are passed by
// value and never mutated, so a single instance may be shared across
// concurrent calculations.
type ImpactParameters struct {
	DiameterM      float64       `validate:"gt=0"`
	VelocityMS     float64       `validate:"gt=0"`
	DensityKgM3    float64       `validate:"gt=0"`
	ImpactAngleDeg float64       `validate:"gte=0,lte=90"` // 0 = grazing, 90 = vertical
	TargetSurface  TargetSurface `validate:"omitempty,oneof=land ocean desert ice"`
	Latitude       float64       `validate:"gte=-90,lte=90"`
	Longitude      float64       `validate:"gte=-180,lte=180"`
}

var validate = validator.New()

// Validate checks the physical plausibility bounds. All violations are
// reported as ErrInvalidParameter so callers can branch on a single
// sentinel.
func (p ImpactParameters) Validate() error {
	fields := map[string]float64{
		"diameter":  p.DiameterM,
		"velocity":  p.VelocityMS,
		"density":   p.DensityKgM3,
		"angle":     p.ImpactAngleDeg,
		"latitude":  p.Latitude,
		"longitude": p.Longitude,
	}
	for name, v := range fields {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParameter, name)
		}
	}

	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	return nil
}
