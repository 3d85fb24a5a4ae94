package schedule

import "fmt"

// Reason classifies a content problem found in the grid.
type Reason string

const (
	ReasonUnexpectedElement  Reason = "unexpected-element"
	ReasonUnexpectedNode     Reason = "unexpected-node"
	ReasonBadDayMarker       Reason = "unparseable-day-marker"
	ReasonDayNotCovered      Reason = "day-not-covered"
	ReasonDayCoveredTwice    Reason = "day-covered-twice"
	ReasonDanglingAnnotation Reason = "dangling-annotation"
)

// ParseError is a non-fatal content problem in the schedule grid. Day is
// zero when the problem is not attributable to a specific day.
type ParseError struct {
	Reason  Reason
	Day     int
	Context string
}

func (e *ParseError) Error() string {
	if e.Day > 0 {
		return fmt.Sprintf("day %d: %s: %s", e.Day, e.Reason, e.Context)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Context)
}
