package db_test

import (
	"context"
	"testing"

	dbfs "github.com/centralbjl/directory/db"
	dbpkg "github.com/centralbjl/directory/internal/db"
)

func TestMigrate_AppliesSchemaAndSeeds(t *testing.T) {
	ctx := context.Background()
	d, err := dbpkg.New(ctx, "file:migrate_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer d.Close()

	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations, dbfs.SeedFiles); err != nil {
		t.Fatalf("Migrate returned error: %v", err)
	}

	// schema tables exist
	for _, table := range []string{"accounts", "profiles", "companies", "jobs", "travel_packages", "events", "foods", "business_categories", "neighborhoods"} {
		var name string
		err := d.QueryRow(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}

	// seeds applied
	var categories int
	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM business_categories`).Scan(&categories); err != nil {
		t.Fatalf("count categories: %v", err)
	}
	if categories == 0 {
		t.Fatalf("expected seeded business categories")
	}

	// running twice is a no-op
	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations, dbfs.SeedFiles); err != nil {
		t.Fatalf("second Migrate returned error: %v", err)
	}
	var again int
	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM business_categories`).Scan(&again); err != nil {
		t.Fatalf("recount categories: %v", err)
	}
	if again != categories {
		t.Fatalf("seed not idempotent: %d then %d", categories, again)
	}
}
