package database

import (
	"testing"
	"time"
)

func TestNewDialect(t *testing.T) {
	tests := []struct {
		typ      DialectType
		postgres bool
	}{
		{DialectSQLite, false},
		{DialectPostgres, true},
		{"unknown", false}, // falls back to SQLite
	}
	for _, tt := range tests {
		_, isPostgres := NewDialect(tt.typ).(*PostgresDialect)
		if isPostgres != tt.postgres {
			t.Errorf("NewDialect(%q) postgres = %v, want %v", tt.typ, isPostgres, tt.postgres)
		}
	}
}

func TestSQLiteDialect(t *testing.T) {
	d := &SQLiteDialect{}

	if got := d.DriverName(); got != "sqlite" {
		t.Errorf("DriverName() = %q, want %q", got, "sqlite")
	}
	for _, pos := range []int{1, 2, 10} {
		if got := d.Placeholder(pos); got != "?" {
			t.Errorf("Placeholder(%d) = %q, want ?", pos, got)
		}
	}
	if !d.SupportsLastInsertID() {
		t.Error("SupportsLastInsertID() = false, want true")
	}
	if got := d.ReturningClause("id"); got != "" {
		t.Errorf("ReturningClause() = %q, want empty string", got)
	}
	if got := d.SerialPrimaryKey(); got != "INTEGER PRIMARY KEY AUTOINCREMENT" {
		t.Errorf("SerialPrimaryKey() = %q", got)
	}

	expected := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	stmts := d.InitStatements()
	if len(stmts) != len(expected) {
		t.Fatalf("InitStatements() returned %d statements, want %d", len(stmts), len(expected))
	}
	for i, want := range expected {
		if stmts[i] != want {
			t.Errorf("InitStatements()[%d] = %q, want %q", i, stmts[i], want)
		}
	}
}

func TestPostgresDialect(t *testing.T) {
	d := &PostgresDialect{}

	if got := d.DriverName(); got != "postgres" {
		t.Errorf("DriverName() = %q, want %q", got, "postgres")
	}
	placeholders := map[int]string{1: "$1", 2: "$2", 10: "$10", 100: "$100"}
	for pos, want := range placeholders {
		if got := d.Placeholder(pos); got != want {
			t.Errorf("Placeholder(%d) = %q, want %q", pos, got, want)
		}
	}
	if d.SupportsLastInsertID() {
		t.Error("SupportsLastInsertID() = true, want false")
	}
	if got := d.ReturningClause("id"); got != " RETURNING id" {
		t.Errorf("ReturningClause(id) = %q", got)
	}
	if got := d.SerialPrimaryKey(); got != "BIGSERIAL PRIMARY KEY" {
		t.Errorf("SerialPrimaryKey() = %q", got)
	}
	if stmts := d.InitStatements(); len(stmts) != 1 || stmts[0] != "SET client_min_messages TO WARNING" {
		t.Errorf("InitStatements() = %v", stmts)
	}
}

func TestQueryBuilder_Build(t *testing.T) {
	tests := []struct {
		input    string
		sqlite   string
		postgres string
	}{
		{"", "", ""},
		{
			"SELECT id FROM generation_runs ORDER BY id DESC",
			"SELECT id FROM generation_runs ORDER BY id DESC",
			"SELECT id FROM generation_runs ORDER BY id DESC",
		},
		{
			"SELECT * FROM generation_runs WHERE id = ?",
			"SELECT * FROM generation_runs WHERE id = ?",
			"SELECT * FROM generation_runs WHERE id = $1",
		},
		{
			"INSERT INTO generated_regions (run_id, region_id, name, terrain, cells) VALUES (?, ?, ?, ?, ?)",
			"INSERT INTO generated_regions (run_id, region_id, name, terrain, cells) VALUES (?, ?, ?, ?, ?)",
			"INSERT INTO generated_regions (run_id, region_id, name, terrain, cells) VALUES ($1, $2, $3, $4, $5)",
		},
		{
			"INSERT INTO t VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			"INSERT INTO t VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			"INSERT INTO t VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)",
		},
	}

	sqlite := NewQueryBuilder(&SQLiteDialect{})
	postgres := NewQueryBuilder(&PostgresDialect{})
	for _, tt := range tests {
		if got := sqlite.Build(tt.input); got != tt.sqlite {
			t.Errorf("sqlite Build(%q) = %q, want %q", tt.input, got, tt.sqlite)
		}
		if got := postgres.Build(tt.input); got != tt.postgres {
			t.Errorf("postgres Build(%q) = %q, want %q", tt.input, got, tt.postgres)
		}
	}
}

func TestQueryBuilder_BuildWithReturning(t *testing.T) {
	query := "INSERT INTO generation_runs (seed, level) VALUES (?, ?)"

	if got := NewQueryBuilder(&SQLiteDialect{}).BuildWithReturning(query, "id"); got != query {
		t.Errorf("sqlite BuildWithReturning() = %q, want unchanged", got)
	}

	want := "INSERT INTO generation_runs (seed, level) VALUES ($1, $2) RETURNING id"
	if got := NewQueryBuilder(&PostgresDialect{}).BuildWithReturning(query, "id"); got != want {
		t.Errorf("postgres BuildWithReturning() = %q, want %q", got, want)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/path/to/islands.db")
	if cfg.Driver != "sqlite" || cfg.SQLitePath != "/path/to/islands.db" {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
}

func TestDefaultPostgresConfig(t *testing.T) {
	cfg := DefaultPostgresConfig()

	if cfg.Host != "localhost" || cfg.Port != 5432 || cfg.SSLMode != "disable" {
		t.Errorf("DefaultPostgresConfig() connection = %+v", cfg)
	}
	if cfg.MaxOpenConns != 4 || cfg.MaxIdleConns != 2 {
		t.Errorf("pool = %d/%d, want 4/2", cfg.MaxOpenConns, cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime != 5*time.Minute {
		t.Errorf("ConnMaxLifetime = %v, want %v", cfg.ConnMaxLifetime, 5*time.Minute)
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	tests := []struct {
		cfg  PostgresConfig
		want string
	}{
		{
			PostgresConfig{Host: "db.example.com", Port: 5433, User: "islands", Password: "secret", Database: "ledger", SSLMode: "require"},
			"host=db.example.com port=5433 user=islands password=secret dbname=ledger sslmode=require",
		},
		{
			PostgresConfig{Host: "localhost", Port: 5432, User: "u", Password: "p", Database: "d"},
			"host=localhost port=5432 user=u password=p dbname=d sslmode=disable",
		},
	}
	for _, tt := range tests {
		if got := tt.cfg.DSN(); got != tt.want {
			t.Errorf("DSN() = %q, want %q", got, tt.want)
		}
	}
}

func TestDialect_InterfaceCompliance(t *testing.T) {
	var _ Dialect = (*SQLiteDialect)(nil)
	var _ Dialect = (*PostgresDialect)(nil)
}
