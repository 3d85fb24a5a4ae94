package schedule

import (
	"fmt"
	"time"

	"shinbukan-ics/internal/calendar"
	"shinbukan-ics/internal/event"
)

// Month accumulates the events and errors of one month's parse pass. Each
// Month is exclusively owned by that pass; once the grid has been scanned
// it is only read for output. Events and Errors keep insertion order.
type Month struct {
	Year   int
	Month  time.Month
	Days   int
	Events []event.Event
	Errors []error

	covered []bool
}

// New creates an empty accumulator for the given civil month.
func New(year int, month time.Month) *Month {
	days := calendar.DaysInMonth(year, month)
	return &Month{
		Year:    year,
		Month:   month,
		Days:    days,
		covered: make([]bool, days),
	}
}

// Add appends an extracted event.
func (m *Month) Add(e event.Event) {
	m.Events = append(m.Events, e)
}

// AddError records a non-fatal error. Both content errors (*ParseError)
// and the month's transport error land here.
func (m *Month) AddError(err error) {
	m.Errors = append(m.Errors, err)
}

// MarkCovered records that a successful cell parse touched day. A second
// touch of the same day records a day-covered-twice error instead.
func (m *Month) MarkCovered(day int) {
	if m.covered[day-1] {
		m.AddError(&ParseError{
			Reason:  ReasonDayCoveredTwice,
			Day:     day,
			Context: fmt.Sprintf("day %d appears in more than one cell", day),
		})
		return
	}
	m.covered[day-1] = true
}

// CheckCoverage records a day-not-covered error for every day of the month
// no cell parse touched. It runs once, after all cells; coverage errors
// are additive and never block already-collected events from being
// serialized.
func (m *Month) CheckCoverage() {
	for day := 1; day <= m.Days; day++ {
		if !m.covered[day-1] {
			m.AddError(&ParseError{
				Reason:  ReasonDayNotCovered,
				Day:     day,
				Context: fmt.Sprintf("no cell parsed for day %d", day),
			})
		}
	}
}
