package calendar

import "time"

// YearMonth identifies one civil month of the export window.
type YearMonth struct {
	Year  int
	Month time.Month
}

// DaysInMonth returns the number of days in the given civil month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the following month normalizes to this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Window returns count consecutive months, starting back months before the
// month containing today. Anchoring on the first of the month keeps
// AddDate from skewing at month ends (Jan 31 plus one month is March 2).
func Window(today time.Time, back, count int) []YearMonth {
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -back, 0)

	window := make([]YearMonth, count)
	for i := range window {
		t := first.AddDate(0, i, 0)
		window[i] = YearMonth{Year: t.Year(), Month: t.Month()}
	}
	return window
}
