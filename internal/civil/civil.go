// Package civil normalizes every timestamp in the system to one fixed
// reference timezone and renders them as timezone-naive civil strings.
package civil

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the fixed-width, zero-padded calendar date form. Dates in
	// this form order correctly under plain string comparison; the booking
	// classifier relies on that, so the layout must stay fixed-width.
	DateLayout = "2006-01-02"

	// DateTimeLayout is the civil date+time form used on the wire.
	DateTimeLayout = "2006-01-02T15:04:05"
)

// Clock supplies the current instant. Tests substitute a fixed clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Time converts between instants and civil strings in one reference timezone.
type Time struct {
	loc   *time.Location
	clock Clock
}

// New loads the reference timezone and returns a converter backed by the
// system clock.
func New(timezone string) (*Time, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}
	return &Time{loc: loc, clock: systemClock{}}, nil
}

// NewWithClock is like New but with an injected clock, for tests.
func NewWithClock(timezone string, clock Clock) (*Time, error) {
	t, err := New(timezone)
	if err != nil {
		return nil, err
	}
	t.clock = clock
	return t, nil
}

// Now returns the current instant in the reference timezone.
func (t *Time) Now() time.Time {
	return t.clock.Now().In(t.loc)
}

// Today returns the current civil date as YYYY-MM-DD.
func (t *Time) Today() string {
	return t.Now().Format(DateLayout)
}

// FormatDateTime renders an instant as a civil date+time string.
func (t *Time) FormatDateTime(instant time.Time) string {
	return instant.In(t.loc).Format(DateTimeLayout)
}

// FormatDate renders an instant's civil date as YYYY-MM-DD.
func (t *Time) FormatDate(instant time.Time) string {
	return instant.In(t.loc).Format(DateLayout)
}

// ParseDateTime interprets a civil date+time string in the reference timezone.
func (t *Time) ParseDateTime(s string) (time.Time, error) {
	parsed, err := time.ParseInLocation(DateTimeLayout, s, t.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	return parsed, nil
}

// ParseDate interprets a YYYY-MM-DD string as midnight in the reference
// timezone.
func (t *Time) ParseDate(s string) (time.Time, error) {
	parsed, err := time.ParseInLocation(DateLayout, s, t.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", s, err)
	}
	return parsed, nil
}
