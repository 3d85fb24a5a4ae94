package event

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// idVersion is hashed into every identifier so that a future change to the
// field encoding cannot collide with identifiers from older runs.
const idVersion = "shinbukan.event.v1"

// Event is one schedule entry extracted from a day cell. The set of
// implementations is closed: AllDay and Timed are the only two.
type Event interface {
	// Append extends the event's label with a space and text, in place.
	Append(text string)
	// ID returns the stable 64-bit content identifier (see package doc).
	ID() uint64

	isEvent()
}

// AllDay is an event with no time bounds, spanning its entire day.
type AllDay struct {
	Day   int
	Label string
}

// Timed is an event with explicit start and end clocks.
type Timed struct {
	Day      int
	From, To Clock
	Label    string
}

func (e *AllDay) isEvent() {}
func (e *Timed) isEvent()  {}

func (e *AllDay) Append(text string) {
	e.Label += " " + text
}

func (e *Timed) Append(text string) {
	e.Label += " " + text
}

func (e *AllDay) ID() uint64 {
	h := xxhash.New()
	fmt.Fprintf(h, "%s|allday|%d|%s", idVersion, e.Day, e.Label)
	return h.Sum64()
}

func (e *Timed) ID() uint64 {
	h := xxhash.New()
	fmt.Fprintf(h, "%s|timed|%d|%s|%s|%s", idVersion, e.Day, e.From, e.To, e.Label)
	return h.Sum64()
}
