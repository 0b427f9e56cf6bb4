package daily

import (
	"time"

	"github.com/mcoot/cricle/internal/dependencies/clock"
	"github.com/mcoot/cricle/internal/model"
)

// DefaultTimezone is the reference timezone for "today"
const DefaultTimezone = "Asia/Kolkata"

// DateLayout is the format used to store game dates
const DateLayout = "2006-01-02"

// SelectIndex maps a calendar date to the index of that day's mystery entity.
// The year and day-of-year are read from date as given, so callers must pass
// a time already converted to the reference timezone.
func SelectIndex(date time.Time, size int) int {
	if size <= 0 {
		return model.NoMystery
	}
	return (date.YearDay() + date.Year()) % size
}

// Selector resolves the current reference-timezone date
type Selector struct {
	clock    clock.Clock
	location *time.Location
}

// New creates a Selector for the given reference timezone. A nil location
// falls back to UTC.
func New(clk clock.Clock, location *time.Location) *Selector {
	if location == nil {
		location = time.UTC
	}
	return &Selector{
		clock:    clk,
		location: location,
	}
}

// Location returns the reference timezone
func (s *Selector) Location() *time.Location {
	return s.location
}

// Today returns midnight of the current date in the reference timezone
func (s *Selector) Today() time.Time {
	now := clock.InLocation(s.clock, s.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
}

// TodayKey returns today's date as a YYYY-MM-DD string
func (s *Selector) TodayKey() string {
	return DateKey(s.Today())
}

// IndexForToday returns today's mystery index for a dataset of the given size
func (s *Selector) IndexForToday(size int) int {
	return SelectIndex(s.Today(), size)
}

// DateKey formats a date for storage
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}
