package calendar

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2026, time.April, 30},
		{2026, time.February, 28},
		{2024, time.February, 29},
		{2026, time.December, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, expected %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestWindow(t *testing.T) {
	today := time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC)

	window := Window(today, 2, 14)

	if len(window) != 14 {
		t.Fatalf("expected 14 months, got %d", len(window))
	}
	if window[0] != (YearMonth{Year: 2026, Month: time.June}) {
		t.Errorf("window starts at %v, expected June 2026", window[0])
	}
	if window[13] != (YearMonth{Year: 2027, Month: time.July}) {
		t.Errorf("window ends at %v, expected July 2027", window[13])
	}
}

func TestWindowMonthEndAnchor(t *testing.T) {
	// Jan 31 must still yield whole civil months, not AddDate skew.
	today := time.Date(2026, time.January, 31, 23, 0, 0, 0, time.UTC)

	window := Window(today, 0, 3)

	want := []YearMonth{
		{2026, time.January},
		{2026, time.February},
		{2026, time.March},
	}
	for i, w := range want {
		if window[i] != w {
			t.Errorf("window[%d] = %v, expected %v", i, window[i], w)
		}
	}
}
