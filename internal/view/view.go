// Package view maps game lists to display rows. It holds no state and does
// no I/O.
package view

import (
	"strconv"

	"github.com/microcosm-cc/bluemonday"

	"gamelog/internal/model"
	"gamelog/internal/service"
)

// DateLayout renders dates like "Mon, Apr 1, 2024".
const DateLayout = "Mon, Jan 2, 2006"

// Row is one rendered game. Every text field is stripped of markup and
// escaped, so it can be injected into a page as-is.
type Row struct {
	ID          string
	Name        string
	Rating      float64
	RatingLabel string
	Date        string
	DateLabel   string
	Review      string
}

var textPolicy = bluemonday.StrictPolicy()

// Rows renders games in the order given.
func Rows(games []model.Game) []Row {
	rows := make([]Row, 0, len(games))
	for _, g := range games {
		rows = append(rows, RowFor(g))
	}
	return rows
}

func RowFor(g model.Game) Row {
	return Row{
		ID:          strconv.FormatInt(g.ID, 10),
		Name:        textPolicy.Sanitize(g.Name),
		Rating:      g.Rating,
		RatingLabel: FormatRating(g.Rating),
		Date:        textPolicy.Sanitize(g.Date),
		DateLabel:   FormatDate(g.Date),
		Review:      textPolicy.Sanitize(g.Review),
	}
}

// FormatRating renders a rating out of the maximum, e.g. "8.5/10".
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64) + "/" + strconv.Itoa(service.MaxRating)
}

// FormatDate renders an ISO date for display. Anything else is shown as
// typed, with markup removed.
func FormatDate(date string) string {
	t, ok := service.ParseDate(date)
	if !ok {
		return textPolicy.Sanitize(date)
	}
	return t.Format(DateLayout)
}
