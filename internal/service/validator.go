package service

import (
	"math"
	"strconv"
	"strings"

	"gamelog/internal/model"
)

const (
	MinRating = 0
	MaxRating = 10
)

// IDGenerator supplies fresh, unique game ids.
type IDGenerator interface {
	NextID() int64
}

// GameForm holds the raw field strings of a submitted game form.
type GameForm struct {
	Name   string
	Rating string
	Date   string
	Review string
}

// FormFromGame renders a stored game back into raw form fields, as used to
// prefill an edit.
func FormFromGame(g model.Game) GameForm {
	return GameForm{
		Name:   g.Name,
		Rating: strconv.FormatFloat(g.Rating, 'f', -1, 64),
		Date:   g.Date,
		Review: g.Review,
	}
}

type Validator struct {
	ids IDGenerator
}

func NewValidator(ids IDGenerator) *Validator {
	return &Validator{ids: ids}
}

// Validate checks every field independently and reports all failures together.
// On success the game carries existingID when given, otherwise a fresh id.
func (v *Validator) Validate(form GameForm, existingID *int64) (model.Game, error) {
	name := strings.TrimSpace(form.Name)
	date := strings.TrimSpace(form.Date)
	rating, ratingOK := parseRating(form.Rating)

	fields := FieldErrors{
		Name:   name == "",
		Rating: !ratingOK,
		Date:   date == "",
	}
	if fields.Any() {
		return model.Game{}, &ValidationError{Fields: fields}
	}

	var id int64
	if existingID != nil {
		id = *existingID
	} else {
		id = v.ids.NextID()
	}

	return model.Game{
		ID:     id,
		Name:   name,
		Rating: rating,
		Date:   date,
		Review: strings.TrimSpace(form.Review),
	}, nil
}

func parseRating(raw string) (float64, bool) {
	rating, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(rating) {
		return 0, false
	}
	if rating < MinRating || rating > MaxRating {
		return 0, false
	}
	return rating, true
}
