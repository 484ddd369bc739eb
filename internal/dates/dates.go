package dates

import (
	"time"

	"github.com/stride-cli/stride/internal/constants"
)

// Day keys are YYYY-MM-DD strings in the local calendar. The format sorts
// lexicographically in date order, so keys are compared with plain < and >.

// Today returns the day key for the current local calendar day.
func Today() string {
	return DayKey(time.Now())
}

// DayKey converts a time to its local day key.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Parse converts a day key back to a local midnight time.
func Parse(day string) (time.Time, error) {
	return time.ParseInLocation(constants.DateFormat, day, time.Local)
}

// Weekday returns the weekday index of a day key, 0=Sunday through 6=Saturday.
// Malformed keys report Sunday; callers validate day keys at the boundary.
func Weekday(day string) int {
	t, err := Parse(day)
	if err != nil {
		return 0
	}
	return int(t.Weekday())
}

// AddDays shifts a day key by n calendar days (n may be negative).
func AddDays(day string, n int) string {
	t, err := Parse(day)
	if err != nil {
		return day
	}
	return DayKey(t.AddDate(0, 0, n))
}

// LastNDays returns the n day keys ending at (and including) end, in
// ascending order. Used for heatmap windows.
func LastNDays(n int, end string) []string {
	days := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, AddDays(end, -i))
	}
	return days
}

// WeekBounds returns the Sunday-aligned week containing day, as inclusive
// start and end day keys.
func WeekBounds(day string) (string, string) {
	start := AddDays(day, -Weekday(day))
	return start, AddDays(start, 6)
}

// MonthBounds returns the first and last day keys of the calendar month
// containing day.
func MonthBounds(day string) (string, string) {
	t, err := Parse(day)
	if err != nil {
		return day, day
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	return DayKey(first), DayKey(last)
}

// IsValid reports whether day is a well-formed day key.
func IsValid(day string) bool {
	_, err := Parse(day)
	return err == nil
}
