package model

import "time"

// Slot is a named key-value storage location.
type Slot struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
