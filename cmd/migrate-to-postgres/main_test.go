package main

import (
	"path/filepath"
	"testing"

	"github.com/labenh526/Island/internal/database"
)

func openLedger(t *testing.T, name string) *database.Database {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), name))
	if err != nil {
		t.Fatalf("Failed to open ledger: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func seedLedger(t *testing.T, db *database.Database) {
	t.Helper()
	runs := []database.Run{
		{Seed: 1, Width: 5, Height: 5, RegionCount: 2, Level: 1, Attempts: 1, Succeeded: true,
			Regions: []database.RunRegion{
				{RegionID: 1, Name: "Ashmere", Terrain: "Woods", Cells: 13},
				{RegionID: 2, Name: "Brindle", Terrain: "Plains", Cells: 12},
			}},
		{Seed: 2, Width: 5, Height: 5, RegionCount: 1, Level: 0, Attempts: 1000, Failure: "exhausted"},
	}
	for _, r := range runs {
		if _, err := db.RecordRun(r); err != nil {
			t.Fatalf("RecordRun failed: %v", err)
		}
	}
}

func TestMigrateRuns(t *testing.T) {
	src := openLedger(t, "src.db")
	dst := openLedger(t, "dst.db")
	seedLedger(t, src)

	result, err := migrateRuns(src, dst, false)
	if err != nil {
		t.Fatalf("migrateRuns failed: %v", err)
	}
	if result.runs != 2 || result.regions != 2 || result.skipped != 0 {
		t.Errorf("result = %+v, want 2 runs, 2 regions, 0 skipped", result)
	}

	// A second pass finds everything in place.
	result, err = migrateRuns(src, dst, false)
	if err != nil {
		t.Fatalf("second migrateRuns failed: %v", err)
	}
	if result.runs != 0 || result.skipped != 2 {
		t.Errorf("second result = %+v, want 0 runs, 2 skipped", result)
	}
}

func TestMigrateRunsDryRun(t *testing.T) {
	src := openLedger(t, "src.db")
	dst := openLedger(t, "dst.db")
	seedLedger(t, src)

	result, err := migrateRuns(src, dst, true)
	if err != nil {
		t.Fatalf("migrateRuns failed: %v", err)
	}
	if result.runs != 2 || result.regions != 2 {
		t.Errorf("result = %+v, want 2 runs and 2 regions", result)
	}

	ids, err := dst.RunIDs()
	if err != nil {
		t.Fatalf("RunIDs failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("dry run wrote %d runs", len(ids))
	}
}
