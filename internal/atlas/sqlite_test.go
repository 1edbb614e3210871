package atlas

import (
	"context"
	"errors"
	"testing"
)

func setupTestAtlas(t *testing.T) *SQLiteAtlas {
	a, err := NewSQLiteAtlas(":memory:")
	if err != nil {
		t.Fatalf("failed to create test atlas: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func TestSQLiteAtlas_Get(t *testing.T) {
	a := setupTestAtlas(t)
	ctx := context.Background()

	city, err := a.Get(ctx, "New York")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if city.Country != "USA" {
		t.Errorf("expected country USA, got %q", city.Country)
	}
	if city.Population <= 0 || city.MetroPopulation < city.Population {
		t.Errorf("implausible population numbers: %+v", city)
	}
	if city.MetroDensity <= 0 {
		t.Errorf("expected positive metro density, got %f", city.MetroDensity)
	}
}

func TestSQLiteAtlas_GetCaseInsensitive(t *testing.T) {
	a := setupTestAtlas(t)
	ctx := context.Background()

	lower, err := a.Get(ctx, "tokyo")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	upper, err := a.Get(ctx, "TOKYO")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if lower != upper {
		t.Errorf("case-insensitive lookups disagree: %+v vs %+v", lower, upper)
	}
}

func TestSQLiteAtlas_GetUnknown(t *testing.T) {
	a := setupTestAtlas(t)

	_, err := a.Get(context.Background(), "Atlantis")
	if !errors.Is(err, ErrCityNotFound) {
		t.Errorf("expected ErrCityNotFound, got %v", err)
	}
}

func TestSQLiteAtlas_List(t *testing.T) {
	a := setupTestAtlas(t)

	cities, err := a.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(cities) != 20 {
		t.Errorf("expected 20 seeded cities, got %d", len(cities))
	}
	for i := 1; i < len(cities); i++ {
		if cities[i-1].Name > cities[i].Name {
			t.Errorf("cities not sorted: %q before %q", cities[i-1].Name, cities[i].Name)
			break
		}
	}
}

func TestSQLiteAtlas_Search(t *testing.T) {
	a := setupTestAtlas(t)
	ctx := context.Background()

	results, err := a.Search(ctx, "york")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].Name != "New York" {
		t.Errorf("expected [New York], got %+v", results)
	}

	none, err := a.Search(ctx, "zzz")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no matches, got %d", len(none))
	}
}

func TestSQLiteAtlas_ByCountry(t *testing.T) {
	a := setupTestAtlas(t)

	usa, err := a.ByCountry(context.Background(), "usa")
	if err != nil {
		t.Fatalf("ByCountry failed: %v", err)
	}
	if len(usa) != 2 {
		t.Fatalf("expected 2 US cities, got %d", len(usa))
	}
	if usa[0].Name != "Los Angeles" || usa[1].Name != "New York" {
		t.Errorf("unexpected US cities: %+v", usa)
	}
}
