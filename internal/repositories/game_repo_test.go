package repositories

import (
	"testing"
	"time"
)

func TestStartOfDayKeepsLocalCalendarDay(t *testing.T) {
	zone := time.FixedZone("UTC+12", 12*60*60)
	// 02:30 local is still the previous day in UTC.
	early := time.Date(2025, 6, 15, 2, 30, 0, 0, zone)

	got := startOfDay(early)

	want := time.Date(2025, 6, 15, 0, 0, 0, 0, zone)
	if !got.Equal(want) {
		t.Errorf("startOfDay() = %v, want %v", got, want)
	}
	if y, m, d := got.Date(); y != 2025 || m != time.June || d != 15 {
		t.Errorf("calendar day = %d-%02d-%02d, want 2025-06-15", y, m, d)
	}
}

func TestStartOfDayBehindUTC(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*60*60)
	late := time.Date(2025, 6, 14, 23, 45, 0, 0, zone)

	got := startOfDay(late)

	want := time.Date(2025, 6, 14, 0, 0, 0, 0, zone)
	if !got.Equal(want) {
		t.Errorf("startOfDay() = %v, want %v", got, want)
	}
}
