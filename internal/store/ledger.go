// Package store keeps a SQLite ledger of computed answers so reruns can be
// compared against earlier results.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"aoc2020/internal/logging"
)

// MemoryPath opens a private in-memory ledger.
const MemoryPath = ":memory:"

// Record is one computed answer.
type Record struct {
	ID         string
	Day        int
	Part       int
	Answer     string
	Duration   time.Duration
	InputHash  string
	RecordedAt time.Time
}

// Ledger is the answers table.
type Ledger struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// Open opens or creates the ledger at path and migrates its schema.
func Open(path string) (*Ledger, error) {
	timer := logging.StartTimer(logging.CategoryStore, "store.Open")
	defer timer.Stop()

	if path != MemoryPath {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A second connection to ":memory:" would see a different database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.StoreDebug("failed to set sqlite busy_timeout: %v", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	logging.StoreDebug("ledger opened at %s", path)
	return &Ledger{db: db, path: path}, nil
}

// Path returns the file the ledger was opened from.
func (l *Ledger) Path() string { return l.path }

// Close closes the database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Record stores r, assigning an ID and timestamp when they are unset.
func (l *Ledger) Record(ctx context.Context, r Record) (Record, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO results (id, day, part, answer, duration_ns, input_hash, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Day, r.Part, r.Answer, int64(r.Duration), r.InputHash, r.RecordedAt.UnixNano(),
	)
	if err != nil {
		return Record{}, fmt.Errorf("failed to record day %d part %d: %w", r.Day, r.Part, err)
	}
	logging.StoreDebug("recorded day %d part %d = %s (%s)", r.Day, r.Part, r.Answer, r.ID)
	return r, nil
}

const selectColumns = `SELECT id, day, part, answer, duration_ns, input_hash, recorded_at FROM results`

// History returns the newest records first. day 0 means every day and
// limit 0 means no limit.
func (l *Ledger) History(ctx context.Context, day, limit int) ([]Record, error) {
	query := selectColumns
	var args []any
	if day > 0 {
		query += " WHERE day = ?"
		args = append(args, day)
	}
	query += " ORDER BY recorded_at DESC, rowid DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return out, nil
}

// Latest returns the newest record for (day, part) computed from the input
// with the given hash. The bool is false when none exists.
func (l *Ledger) Latest(ctx context.Context, day, part int, inputHash string) (Record, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	row := l.db.QueryRowContext(ctx,
		selectColumns+` WHERE day = ? AND part = ? AND input_hash = ?
		ORDER BY recorded_at DESC, rowid DESC LIMIT 1`,
		day, part, inputHash,
	)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}
	return r, true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (Record, error) {
	var (
		r          Record
		durationNs int64
		recordedNs int64
	)
	if err := s.Scan(&r.ID, &r.Day, &r.Part, &r.Answer, &durationNs, &r.InputHash, &recordedNs); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("failed to scan result: %w", err)
	}
	r.Duration = time.Duration(durationNs)
	r.RecordedAt = time.Unix(0, recordedNs)
	return r, nil
}
