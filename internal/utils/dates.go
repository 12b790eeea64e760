package utils

import (
	"fmt"
	"time"
)

// ParseDate parses an ISO 8601 calendar date (YYYY-MM-DD). Timestamps
// are rejected so night counts always cover whole days.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatTimestamp formats a time as RFC3339.
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
