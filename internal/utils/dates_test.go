package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-06-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// Timestamps would produce fractional nights downstream.
	for _, bad := range []string{"", "June 1st", "01/06/2026", "2026-13-40", "2026-06-01T15:04:05Z"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 6, 1, 12, 30, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2026-06-01" {
		t.Errorf("expected 2026-06-01, got %q", got)
	}
}
