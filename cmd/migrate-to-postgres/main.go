// migrate-to-postgres copies the generation ledger from SQLite to PostgreSQL.
//
// Usage:
//
//	go run ./cmd/migrate-to-postgres \
//	    -sqlite data/islands.db \
//	    -pg-host localhost \
//	    -pg-port 5432 \
//	    -pg-user island \
//	    -pg-password island \
//	    -pg-database island
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/labenh526/Island/internal/database"
)

func main() {
	sqlitePath := flag.String("sqlite", "data/islands.db", "Path to SQLite ledger")
	pgHost := flag.String("pg-host", "localhost", "PostgreSQL host")
	pgPort := flag.Int("pg-port", 5432, "PostgreSQL port")
	pgUser := flag.String("pg-user", "island", "PostgreSQL user")
	pgPassword := flag.String("pg-password", "island", "PostgreSQL password")
	pgDatabase := flag.String("pg-database", "island", "PostgreSQL database name")
	pgSSLMode := flag.String("pg-sslmode", "disable", "PostgreSQL SSL mode")
	dryRun := flag.Bool("dry-run", false, "Show what would be migrated without making changes")
	flag.Parse()

	log.Println("SQLite to PostgreSQL Ledger Migration")
	log.Println("=====================================")

	if _, err := os.Stat(*sqlitePath); err != nil {
		log.Fatalf("SQLite ledger not found: %v", err)
	}

	log.Printf("Opening SQLite ledger: %s", *sqlitePath)
	src, err := database.Open(*sqlitePath)
	if err != nil {
		log.Fatalf("Failed to open SQLite ledger: %v", err)
	}
	defer src.Close()

	pg := database.DefaultPostgresConfig()
	pg.Host = *pgHost
	pg.Port = *pgPort
	pg.User = *pgUser
	pg.Password = *pgPassword
	pg.Database = *pgDatabase
	pg.SSLMode = *pgSSLMode

	log.Printf("Opening PostgreSQL ledger: %s@%s:%d/%s", pg.User, pg.Host, pg.Port, pg.Database)
	dst, err := database.OpenWithConfig(database.Config{Driver: string(database.DialectPostgres), Postgres: pg})
	if err != nil {
		log.Fatalf("Failed to open PostgreSQL ledger: %v", err)
	}
	defer dst.Close()

	if *dryRun {
		log.Println("DRY RUN MODE - No changes will be made")
	}

	result, err := migrateRuns(src, dst, *dryRun)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("=====================================")
	log.Printf("Migration complete! Runs migrated: %d, skipped: %d, regions: %d",
		result.runs, result.skipped, result.regions)
	if *dryRun {
		log.Println("(DRY RUN - No actual changes were made)")
	}
}

type migrationResult struct {
	runs    int
	skipped int
	regions int
}

// migrateRuns copies every run from src into dst, keeping run ids so that
// ledger references stay valid. Runs already present in dst are skipped.
func migrateRuns(src, dst *database.Database, dryRun bool) (migrationResult, error) {
	var result migrationResult

	ids, err := src.RunIDs()
	if err != nil {
		return result, fmt.Errorf("list runs: %w", err)
	}

	for _, id := range ids {
		run, err := src.GetRun(id)
		if err != nil {
			return result, fmt.Errorf("read run %d: %w", id, err)
		}
		if run == nil {
			continue
		}

		if dryRun {
			result.runs++
			result.regions += len(run.Regions)
			continue
		}

		imported, err := dst.ImportRun(*run)
		if err != nil {
			return result, err
		}
		if !imported {
			result.skipped++
			continue
		}
		result.runs++
		result.regions += len(run.Regions)
	}

	if !dryRun {
		if err := dst.ResetSequences(); err != nil {
			return result, err
		}
	}
	return result, nil
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Copies the island generation ledger from SQLite to PostgreSQL.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s -sqlite data/islands.db -pg-host localhost -pg-user island -pg-password island -pg-database island\n", os.Args[0])
	}
}
