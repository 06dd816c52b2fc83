package service

import (
	"errors"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid")
)

// FieldError identifies why a single form field was rejected.
type FieldError string

const (
	NameRequired     FieldError = "NameRequired"
	RatingOutOfRange FieldError = "RatingOutOfRange"
	DateRequired     FieldError = "DateRequired"
)

// FieldErrors carries the pass/fail state of every checked field at once.
// A true value means the field failed.
type FieldErrors struct {
	Name   bool
	Rating bool
	Date   bool
}

func (f FieldErrors) Any() bool {
	return f.Name || f.Rating || f.Date
}

// Codes maps each failed form field name to its error code.
func (f FieldErrors) Codes() map[string]FieldError {
	codes := make(map[string]FieldError, 3)
	if f.Name {
		codes["name"] = NameRequired
	}
	if f.Rating {
		codes["rating"] = RatingOutOfRange
	}
	if f.Date {
		codes["date"] = DateRequired
	}
	return codes
}

// ValidationError is returned when a submitted game form is rejected.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	var codes []string
	if e.Fields.Name {
		codes = append(codes, string(NameRequired))
	}
	if e.Fields.Rating {
		codes = append(codes, string(RatingOutOfRange))
	}
	if e.Fields.Date {
		codes = append(codes, string(DateRequired))
	}
	return "invalid game: " + strings.Join(codes, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}
