package event

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a time of day. Clocks are produced only by ParseClock; nothing
// else in the system constructs one.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses the grid's "H" or "H:M" notation and resolves its bare
// 12-hour ambiguity. The venue never opens before 8:00, so an hour below 8
// always denotes the afternoon or evening and gets 12 added.
func ParseClock(s string) (Clock, error) {
	hourText, minuteText, hasMinutes := strings.Cut(s, ":")

	hour, err := strconv.Atoi(hourText)
	if err != nil {
		return Clock{}, fmt.Errorf("parsing hour in %q: %w", s, err)
	}

	minute := 0
	if hasMinutes {
		minute, err = strconv.Atoi(minuteText)
		if err != nil {
			return Clock{}, fmt.Errorf("parsing minutes in %q: %w", s, err)
		}
	}

	if hour < 8 {
		hour += 12
	}

	return Clock{Hour: hour, Minute: minute}, nil
}

// String formats the clock as "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
