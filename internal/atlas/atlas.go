// Package atlas is the read-only registry of impact target cities. The
// data set is embedded at build time and loaded into SQLite once at
// startup; after that every operation is a plain query against immutable
// rows, so a single repository may be shared across goroutines.
package atlas

import (
	"context"
	"errors"
)

// ErrCityNotFound is returned when a lookup names a city the atlas does
// not carry. Unlike the material registry, city lookup has no fallback:
// the CLI re-prompts instead.
var ErrCityNotFound = errors.New("city not found")

// City is one impact target. MetroDensity is average people per km² over
// the metro area, used as the population density for casualty estimates.
type City struct {
	Name            string  `yaml:"name"`
	Country         string  `yaml:"country"`
	Latitude        float64 `yaml:"latitude"`
	Longitude       float64 `yaml:"longitude"`
	Population      int64   `yaml:"population"`
	MetroPopulation int64   `yaml:"metro_population"`
	MetroDensity    float64 `yaml:"metro_density"`
}

// CityRepository is the lookup surface the CLI consumes.
type CityRepository interface {
	Get(ctx context.Context, name string) (City, error)
	List(ctx context.Context) ([]City, error)
	Search(ctx context.Context, term string) ([]City, error)
	ByCountry(ctx context.Context, country string) ([]City, error)
}
