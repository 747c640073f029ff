package database

import (
	"database/sql"
	"fmt"
	"time"
)

// Run is one recorded island generation, successful or not.
type Run struct {
	ID          int64
	Seed        int64
	Width       int
	Height      int
	RegionCount int
	Level       int
	Attempts    int
	Succeeded   bool
	Failure     string // last error when the run gave up
	CreatedAt   time.Time
	Regions     []RunRegion
}

// RunRegion is one named region of a successful run.
type RunRegion struct {
	RegionID int
	Name     string
	Terrain  string
	Cells    int
}

// LevelStats summarises the runs recorded for one level.
type LevelStats struct {
	Level        int
	Runs         int
	Failures     int
	MeanAttempts float64
}

// RecordRun stores run and its regions in one transaction and returns the
// new run id. A zero CreatedAt is stamped with the current time.
func (d *Database) RecordRun(run Run) (int64, error) {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	tx, err := d.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	query := d.qb.BuildWithReturning(`
		INSERT INTO generation_runs (seed, width, height, region_count, level, attempts, succeeded, failure, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, "id")
	args := []any{run.Seed, run.Width, run.Height, run.RegionCount, run.Level,
		run.Attempts, run.Succeeded, run.Failure, run.CreatedAt}

	var id int64
	if d.dialect.SupportsLastInsertID() {
		res, err := tx.Exec(query, args...)
		if err != nil {
			return 0, fmt.Errorf("insert run: %w", err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return 0, err
		}
	} else if err := tx.QueryRow(query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	regionQuery := d.qb.Build(`
		INSERT INTO generated_regions (run_id, region_id, name, terrain, cells)
		VALUES (?, ?, ?, ?, ?)`)
	for _, r := range run.Regions {
		if _, err := tx.Exec(regionQuery, id, r.RegionID, r.Name, r.Terrain, r.Cells); err != nil {
			return 0, fmt.Errorf("insert region %d: %w", r.RegionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// GetRun returns the run with its regions, or nil if no such run exists.
func (d *Database) GetRun(id int64) (*Run, error) {
	row := d.db.QueryRow(d.qb.Build(`
		SELECT id, seed, width, height, region_count, level, attempts, succeeded, failure, created_at
		FROM generation_runs
		WHERE id = ?`), id)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := d.db.Query(d.qb.Build(`
		SELECT region_id, name, terrain, cells
		FROM generated_regions
		WHERE run_id = ?
		ORDER BY region_id ASC`), id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r RunRegion
		if err := rows.Scan(&r.RegionID, &r.Name, &r.Terrain, &r.Cells); err != nil {
			return nil, err
		}
		run.Regions = append(run.Regions, r)
	}
	return run, rows.Err()
}

// RecentRuns returns up to limit runs, newest first, without their regions.
func (d *Database) RecentRuns(limit int) ([]Run, error) {
	rows, err := d.db.Query(d.qb.Build(`
		SELECT id, seed, width, height, region_count, level, attempts, succeeded, failure, created_at
		FROM generation_runs
		ORDER BY id DESC
		LIMIT ?`), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// LevelStats returns run counts and mean attempts for one level.
func (d *Database) LevelStats(level int) (LevelStats, error) {
	stats := LevelStats{Level: level}
	err := d.db.QueryRow(d.qb.Build(`
		SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN succeeded THEN 0 ELSE 1 END), 0),
			COALESCE(AVG(attempts), 0)
		FROM generation_runs
		WHERE level = ?`), level).Scan(&stats.Runs, &stats.Failures, &stats.MeanAttempts)
	if err != nil {
		return LevelStats{}, err
	}
	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*Run, error) {
	run := &Run{}
	err := s.Scan(&run.ID, &run.Seed, &run.Width, &run.Height, &run.RegionCount,
		&run.Level, &run.Attempts, &run.Succeeded, &run.Failure, &run.CreatedAt)
	if err != nil {
		return nil, err
	}
	return run, nil
}
