// file: internals/helpers/reporttime/reporttime.go
package reporttime

import (
	"math"
	"strconv"
	"time"
)

// Helpers for the fixed reporting timezone. Every calendar-date and
// hour-of-day derivation in the app goes through these so the window
// widening done by callers and the attendance date math cannot drift
// apart. The *time.Location always comes in as a parameter; nothing
// here reads config.

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ParseSlackTS parses a Slack message timestamp (fractional Unix
// seconds as a string, e.g. "1704099600.000200").
func ParseSlackTS(ts string) (time.Time, bool) {
	f, err := strconv.ParseFloat(ts, 64)
	if err != nil {
		return time.Time{}, false
	}
	sec := int64(f)
	nsec := int64((f - float64(sec)) * 1e9)
	return time.Unix(sec, nsec), true
}

// DateIn returns the calendar date (YYYY-MM-DD) of t in loc.
func DateIn(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// ClockIn returns the wall clock (HH:MM) of t in loc.
func ClockIn(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(ClockLayout)
}

// HourIn returns the hour-of-day (0-23) of t in loc.
func HourIn(t time.Time, loc *time.Location) int {
	return t.In(loc).Hour()
}

// PrevDate returns the calendar date one day before date (YYYY-MM-DD).
func PrevDate(date string, loc *time.Location) string {
	t, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, -1).Format(DateLayout)
}

// HoursBetween returns the elapsed hours between two timestamps,
// rounded to 2 decimals.
func HoursBetween(in, out time.Time) float64 {
	return Round2(out.Sub(in).Hours())
}

func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// StartOfDay returns midnight of date (YYYY-MM-DD) in loc.
func StartOfDay(date string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, loc)
}

// NoonOfNextDay returns 12:00 of the day after date in loc. Used to
// widen attendance windows so early-morning overnight checkouts are
// not dropped by the end-boundary filter.
func NoonOfNextDay(date string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.AddDate(0, 0, 1).Add(12 * time.Hour), nil
}
