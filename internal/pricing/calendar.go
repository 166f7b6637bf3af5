package pricing

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate reads YYYY-MM-DD as a civil date at midnight UTC, or an RFC 3339
// timestamp kept in its own offset.
func ParseDate(value string) (time.Time, error) {
	s := strings.TrimSpace(value)

	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: value, Err: err}
	}
	return t, nil
}

// CivilDay drops the clock from t, keeping its calendar day in its own location.
func CivilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// UpcomingDay parses date and reports whether it falls on the day of now or
// later. The returned day is the civil date, for ordering.
func UpcomingDay(date string, now time.Time) (time.Time, bool, error) {
	t, err := ParseDate(date)
	if err != nil {
		return time.Time{}, false, err
	}
	day := CivilDay(t)
	return day, !day.Before(CivilDay(now)), nil
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(date string) (bool, error) {
	t, err := ParseDate(date)
	if err != nil {
		return false, err
	}

	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return true, nil
	default:
		return false, nil
	}
}
