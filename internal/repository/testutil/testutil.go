package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"gamelog/internal/db"
)

// NewTestDB opens a migrated SQLite database in a per-test temp dir.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// SeedSlot writes a raw slot value, bypassing the repositories.
func SeedSlot(t *testing.T, database *sql.DB, key, value string) {
	t.Helper()

	_, err := database.Exec(
		`INSERT INTO storage_slots (key, value, updated_at) VALUES (?, ?, '2024-01-01T00:00:00Z')`,
		key, value,
	)
	if err != nil {
		t.Fatalf("seed slot: %v", err)
	}
}

// ReadSlot returns the raw slot value.
func ReadSlot(t *testing.T, database *sql.DB, key string) string {
	t.Helper()

	var value string
	if err := database.QueryRow(`SELECT value FROM storage_slots WHERE key = ?`, key).Scan(&value); err != nil {
		t.Fatalf("read slot: %v", err)
	}
	return value
}
