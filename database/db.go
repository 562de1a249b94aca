package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const (
	// DatabaseName is the logical name of the notes store file
	DatabaseName = "NotesDB"

	// SchemaVersion is the schema this build writes. Raising it drops every note.
	SchemaVersion = 1
)

// ErrDowngrade is returned when the file carries a newer schema than the build
var ErrDowngrade = errors.New("database schema is newer than supported")

type DB struct {
	*sql.DB
}

// DefaultPath returns the store file location under dir
func DefaultPath(dir string) string {
	return filepath.Join(dir, DatabaseName+".db")
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Per-connection pragmas go in the DSN so every pooled connection gets them
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &DB{db}, nil
}

// Version reads the schema version stamped in the file header
func (db *DB) Version() (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// Migrate brings the file to SchemaVersion
func (db *DB) Migrate() error {
	return db.MigrateTo(SchemaVersion)
}

// MigrateTo brings the file to the target schema version.
// A fresh file gets the notes table. An older file has the table dropped and
// recreated: every stored note is lost. A newer file is refused.
func (db *DB) MigrateTo(target int) error {
	if target < 1 {
		return fmt.Errorf("invalid schema version %d", target)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	defer tx.Rollback()

	var current int
	if err := tx.QueryRow("PRAGMA user_version").Scan(&current); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	switch {
	case current == target:
		return nil
	case current > target:
		return fmt.Errorf("%w: file is at version %d, target is %d", ErrDowngrade, current, target)
	case current > 0:
		slog.Warn("upgrading schema, all notes will be dropped",
			"from_version", current,
			"to_version", target,
		)
		if _, err := tx.Exec("DROP TABLE IF EXISTS notes"); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	queries := []string{
		`CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT,
			content TEXT
		)`,
		// PRAGMA does not take bound parameters; target is an int
		fmt.Sprintf("PRAGMA user_version = %d", target),
	}

	for _, query := range queries {
		if _, err := tx.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
