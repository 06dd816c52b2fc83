package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gamelog/internal/model"
)

// SlotRepository defines the interface for named key-value storage slots.
type SlotRepository interface {
	// Get returns nil without error when the slot has never been written.
	Get(ctx context.Context, key string) (*model.Slot, error)
	// Set creates or overwrites the slot in a single statement.
	Set(ctx context.Context, key, value string) error
}

type slotRepository struct {
	db dbtx
}

// NewSlotRepository creates a new slot repository.
func NewSlotRepository(db dbtx) SlotRepository {
	return &slotRepository{db: db}
}

func (r *slotRepository) Get(ctx context.Context, key string) (*model.Slot, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, value, updated_at FROM storage_slots WHERE key = ?
	`, key)

	var s model.Slot
	var updatedAt string
	if err := row.Scan(&s.Key, &s.Value, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get slot %q: %w", key, err)
	}

	s.UpdatedAt, _ = parseTime(updatedAt)
	return &s, nil
}

func (r *slotRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO storage_slots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("set slot %q: %w", key, err)
	}
	return nil
}
