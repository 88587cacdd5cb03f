package models

import "time"

// Date selection modes accepted by the filter engine.
const (
	DateModeAll      = "all"
	DateModeSpecific = "specific"
	DateModeLastYear = "last_year"
	DateModeRange    = "range"
)

// MPriceFilter is the parsed user query describing which securities and
// dates to include. Built per request, never persisted.
type MPriceFilter struct {
	Ticker   string
	DateMode string

	// Bounds are inclusive and only set for the modes that need them.
	SpecificDate time.Time
	StartDate    time.Time
	EndDate      time.Time

	// Invalid marks a filter whose date range could not be honored. The
	// store must return no rows for it rather than an unbounded result.
	Invalid bool
}
