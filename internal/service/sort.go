package service

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"gamelog/internal/model"
)

// SortMode selects the display ordering of the game list.
type SortMode string

const (
	SortByName   SortMode = "name"
	SortByRating SortMode = "rating"
	SortByDate   SortMode = "date"
)

// ParseSortMode accepts name, rating or date. An empty value means name.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortByName:
		return SortByName, nil
	case SortByRating:
		return SortByRating, nil
	case SortByDate:
		return SortByDate, nil
	default:
		return "", fmt.Errorf("sort mode %q: %w", s, ErrInvalid)
	}
}

// Sorter orders snapshots of the game list. Name ordering follows the
// collation rules of its locale.
type Sorter struct {
	tag language.Tag
}

func NewSorter(tag language.Tag) Sorter {
	return Sorter{tag: tag}
}

// ParseSorter builds a Sorter from a BCP 47 locale string.
func ParseSorter(locale string) (Sorter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return Sorter{}, fmt.Errorf("parse sort locale %q: %w", locale, err)
	}
	return NewSorter(tag), nil
}

// SortedView is the fixed-locale convenience form of Sorter.View: it always
// collates names with English rules. Code that honors a configured locale
// should build a Sorter with ParseSorter instead.
func SortedView(games []model.Game, mode SortMode) []model.Game {
	return NewSorter(language.English).View(games, mode)
}

// View returns a sorted copy of games. Equal elements keep their input order
// and the input slice is never modified. An unknown mode returns the copy
// in input order.
func (s Sorter) View(games []model.Game, mode SortMode) []model.Game {
	out := slices.Clone(games)
	if out == nil {
		out = []model.Game{}
	}

	switch mode {
	case SortByName:
		c := collate.New(s.tag)
		slices.SortStableFunc(out, func(a, b model.Game) int {
			return c.CompareString(a.Name, b.Name)
		})
	case SortByRating:
		slices.SortStableFunc(out, func(a, b model.Game) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	case SortByDate:
		slices.SortStableFunc(out, compareDates)
	}
	return out
}

// compareDates orders chronologically; unparseable dates go last.
func compareDates(a, b model.Game) int {
	ta, okA := ParseDate(a.Date)
	tb, okB := ParseDate(b.Date)
	switch {
	case okA && okB:
		return ta.Compare(tb)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}

// ParseDate reads an ISO calendar date, also accepting a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
