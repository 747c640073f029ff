package database

import (
	"fmt"
)

// RunIDs returns the ids of every recorded run in ascending order.
func (d *Database) RunIDs() ([]int64, error) {
	rows, err := d.db.Query(`SELECT id FROM generation_runs ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ImportRun inserts run under its existing id together with its regions.
// It reports false without writing anything if the id is already taken,
// which makes repeated imports safe.
func (d *Database) ImportRun(run Run) (bool, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var existing int
	if err := tx.QueryRow(d.qb.Build(`SELECT COUNT(*) FROM generation_runs WHERE id = ?`), run.ID).Scan(&existing); err != nil {
		return false, err
	}
	if existing > 0 {
		return false, nil
	}

	_, err = tx.Exec(d.qb.Build(`
		INSERT INTO generation_runs (id, seed, width, height, region_count, level, attempts, succeeded, failure, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		run.ID, run.Seed, run.Width, run.Height, run.RegionCount, run.Level,
		run.Attempts, run.Succeeded, run.Failure, run.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("import run %d: %w", run.ID, err)
	}

	regionQuery := d.qb.Build(`
		INSERT INTO generated_regions (run_id, region_id, name, terrain, cells)
		VALUES (?, ?, ?, ?, ?)`)
	for _, r := range run.Regions {
		if _, err := tx.Exec(regionQuery, run.ID, r.RegionID, r.Name, r.Terrain, r.Cells); err != nil {
			return false, fmt.Errorf("import run %d region %d: %w", run.ID, r.RegionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

// ResetSequences moves PostgreSQL id sequences past the highest imported
// id. SQLite tracks AUTOINCREMENT values itself, so it is a no-op there.
func (d *Database) ResetSequences() error {
	if _, ok := d.dialect.(*PostgresDialect); !ok {
		return nil
	}
	for _, table := range []string{"generation_runs", "generated_regions"} {
		stmt := fmt.Sprintf(`SELECT setval('%s_id_seq', COALESCE((SELECT MAX(id) FROM %s), 0) + 1, false)`, table, table)
		if _, err := d.db.Exec(stmt); err != nil {
			return fmt.Errorf("reset %s sequence: %w", table, err)
		}
	}
	return nil
}
