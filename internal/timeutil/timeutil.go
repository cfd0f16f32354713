// Package timeutil provides utility functions for working with local
// wall-clock time.
package timeutil

import (
	"fmt"
	"math"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const MinutesInAnHour = 60

// Round rounds a time value in seconds, minutes, or hours to the nearest
// integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// MinuteOfDay returns the number of minutes elapsed since local midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*MinutesInAnHour + t.Minute()
}

// AtMinuteOfDay returns the given day's date at the specified minute past
// midnight.
func AtMinuteOfDay(day time.Time, minute int) time.Time {
	return RoundToStart(day).Add(time.Duration(minute) * time.Minute)
}

// FormatMinutes expresses a minutes value as a compact duration string,
// e.g. 75 -> "1h 15m".
func FormatMinutes(val int) string {
	hrs := val / MinutesInAnHour
	mins := val % MinutesInAnHour

	if hrs == 0 {
		return fmt.Sprintf("%dm", mins)
	}

	if mins == 0 {
		return fmt.Sprintf("%dh", hrs)
	}

	return fmt.Sprintf("%dh %dm", hrs, mins)
}

// FromStr parses a natural-language date string such as "2 days ago" or
// "june 5" into a concrete time.
func FromStr(s string) (time.Time, error) {
	dt, err := dateparser.Parse(&dateparser.Configuration{
		CurrentTime: time.Now(),
	}, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date string: %w", err)
	}

	return dt.Time, nil
}
