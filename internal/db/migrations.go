package db

import (
	"database/sql"
	"fmt"
)

// Each storage slot holds one serialized document under a unique key.
const baseSchema = `
CREATE TABLE IF NOT EXISTS storage_slots (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}
	return nil
}
