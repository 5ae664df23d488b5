package store

import (
	"database/sql"
	"fmt"

	"aoc2020/internal/logging"
)

// migration moves the ledger schema to version.
type migration struct {
	version     int
	description string
	ddl         string
}

var migrations = []migration{
	{
		version:     1,
		description: "results ledger",
		ddl: `
		CREATE TABLE IF NOT EXISTS results (
			id TEXT PRIMARY KEY,
			day INTEGER NOT NULL,
			part INTEGER NOT NULL,
			answer TEXT NOT NULL,
			duration_ns INTEGER NOT NULL,
			input_hash TEXT NOT NULL,
			recorded_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_results_day ON results(day, part);
		`,
	},
	{
		version:     2,
		description: "lookup by input hash",
		ddl:         `CREATE INDEX IF NOT EXISTS idx_results_hash ON results(day, part, input_hash, recorded_at);`,
	},
}

// SchemaVersion is the version Open migrates to.
var SchemaVersion = migrations[len(migrations)-1].version

func ensureVersionTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_versions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			version INTEGER NOT NULL,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			description TEXT
		)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_versions table: %w", err)
	}
	return nil
}

// schemaVersion returns the highest applied version, 0 for a new database.
func schemaVersion(db *sql.DB) (int, error) {
	var v sql.NullInt64
	if err := db.QueryRow("SELECT MAX(version) FROM schema_versions").Scan(&v); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return int(v.Int64), nil
}

// migrate applies every migration newer than the stored version, each in
// its own transaction.
func migrate(db *sql.DB) error {
	if err := ensureVersionTable(db); err != nil {
		return err
	}
	current, err := schemaVersion(db)
	if err != nil {
		return err
	}
	logging.StoreDebug("ledger schema at version %d", current)

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.version, err)
		}
		if _, err := tx.Exec(m.ddl); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.version, m.description, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO schema_versions (version, description) VALUES (?, ?)",
			m.version, m.description,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record schema version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.version, err)
		}
		logging.Store("ledger schema migrated to version %d (%s)", m.version, m.description)
	}
	return nil
}
