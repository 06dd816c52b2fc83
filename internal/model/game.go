package model

// Game is one recorded game rating. Its JSON form is the persisted layout of the
// storage slot, so the keys must not change.
type Game struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
	Date   string  `json:"date"` // start date, ISO 2006-01-02
	Review string  `json:"review"`
}
