package atlas

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"
)

//go:embed cities.yaml
var rawCities []byte

type seedFile struct {
	Cities []City `yaml:"cities"`
}

// SQLiteAtlas is the SQLite-backed CityRepository. The default DSN is
// ":memory:"; nothing is persisted between runs.
type SQLiteAtlas struct {
	db *sql.DB
}

// NewSQLiteAtlas opens the database, creates the schema, and seeds it from
// the embedded city table.
func NewSQLiteAtlas(dsn string) (*SQLiteAtlas, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening atlas database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging atlas database: %w", err)
	}

	a := &SQLiteAtlas{db: db}
	if err := a.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating atlas schema: %w", err)
	}
	if err := a.seed(); err != nil {
		return nil, fmt.Errorf("error while seeding atlas: %w", err)
	}

	return a, nil
}

func (a *SQLiteAtlas) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS cities (
			name TEXT PRIMARY KEY COLLATE NOCASE,
			country TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			population INTEGER NOT NULL,
			metro_population INTEGER NOT NULL,
			metro_density REAL NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_cities_country ON cities(country);
  	`

	_, err := a.db.Exec(schema)
	return err
}

func (a *SQLiteAtlas) seed() error {
	var sf seedFile
	if err := yaml.Unmarshal(rawCities, &sf); err != nil {
		return fmt.Errorf("error parsing embedded city table: %w", err)
	}

	tx, err := a.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO cities
			(name, country, latitude, longitude, population, metro_population, metro_density)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range sf.Cities {
		if _, err := stmt.Exec(c.Name, c.Country, c.Latitude, c.Longitude,
			c.Population, c.MetroPopulation, c.MetroDensity); err != nil {
			return fmt.Errorf("error seeding city %q: %w", c.Name, err)
		}
	}

	return tx.Commit()
}

const citySelect = `
	SELECT name, country, latitude, longitude, population, metro_population, metro_density
	FROM cities`

// Get returns a city by exact name, case-insensitively.
func (a *SQLiteAtlas) Get(ctx context.Context, name string) (City, error) {
	row := a.db.QueryRowContext(ctx, citySelect+" WHERE name = ?", name)

	var c City
	err := row.Scan(&c.Name, &c.Country, &c.Latitude, &c.Longitude,
		&c.Population, &c.MetroPopulation, &c.MetroDensity)
	if err == sql.ErrNoRows {
		return City{}, fmt.Errorf("%w: %s", ErrCityNotFound, name)
	}
	if err != nil {
		return City{}, fmt.Errorf("error fetching city %q: %w", name, err)
	}
	return c, nil
}

// List returns every city ordered by name.
func (a *SQLiteAtlas) List(ctx context.Context) ([]City, error) {
	return a.query(ctx, citySelect+" ORDER BY name")
}

// Search returns cities whose name contains term, case-insensitively.
func (a *SQLiteAtlas) Search(ctx context.Context, term string) ([]City, error) {
	return a.query(ctx, citySelect+" WHERE name LIKE '%' || ? || '%' ORDER BY name", term)
}

// ByCountry returns every city in the given country.
func (a *SQLiteAtlas) ByCountry(ctx context.Context, country string) ([]City, error) {
	return a.query(ctx, citySelect+" WHERE country = ? COLLATE NOCASE ORDER BY name", country)
}

func (a *SQLiteAtlas) query(ctx context.Context, q string, args ...any) ([]City, error) {
	rows, err := a.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying cities: %w", err)
	}
	defer rows.Close()

	var out []City
	for rows.Next() {
		var c City
		if err := rows.Scan(&c.Name, &c.Country, &c.Latitude, &c.Longitude,
			&c.Population, &c.MetroPopulation, &c.MetroDensity); err != nil {
			return nil, fmt.Errorf("error scanning city row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (a *SQLiteAtlas) Close() error {
	return a.db.Close()
}
