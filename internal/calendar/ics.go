// Package calendar serializes extracted events into the iCalendar feed
// consumed by calendar-import tools. The field order, header lines and
// line endings are fixed: existing importers consume this feed
// byte-for-byte, so none of it may change shape.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"shinbukan-ics/internal/event"
)

const (
	// UIDSuffix anchors every event UID to this feed.
	UIDSuffix = "shinbukan-ics"

	prodID  = "-//Shinbukan-ICS//Shinbukan-ICS//"
	calName = "Shinbukan"

	icsTimeLayout = "20060102T150405Z"
)

// jst is the civil timezone of the venue's listings. Japan observes no
// daylight saving, so a fixed offset is exact year-round.
var jst = time.FixedZone("JST", 9*60*60)

// EventICS renders one event as a VEVENT record. Timed events are
// interpreted as JST civil time and converted to UTC; all-day events use
// the whole-day VALUE=DATE form with DTEND on the same date. now stamps
// the record's generation time and pageURL references the source page the
// event was extracted from.
func EventICS(e event.Event, year int, month time.Month, now time.Time, pageURL string) string {
	var start, end, label string

	switch ev := e.(type) {
	case *event.AllDay:
		date := fmt.Sprintf("DATE:%04d%02d%02d", year, month, ev.Day)
		start = "DTSTART;VALUE=" + date
		end = "DTEND;VALUE=" + date
		label = ev.Label
	case *event.Timed:
		from := time.Date(year, month, ev.Day, ev.From.Hour, ev.From.Minute, 0, 0, jst)
		to := time.Date(year, month, ev.Day, ev.To.Hour, ev.To.Minute, 0, 0, jst)
		start = "DTSTART:" + from.UTC().Format(icsTimeLayout)
		end = "DTEND:" + to.UTC().Format(icsTimeLayout)
		label = ev.Label
	}

	var b strings.Builder
	b.WriteString("BEGIN:VEVENT\n")
	fmt.Fprintf(&b, "UID:%d@%s\n", e.ID(), UIDSuffix)
	fmt.Fprintf(&b, "DTSTAMP:%s\n", now.UTC().Format(icsTimeLayout))
	b.WriteString(start + "\n")
	b.WriteString(end + "\n")
	fmt.Fprintf(&b, "SUMMARY:%s\n", label)
	fmt.Fprintf(&b, "URL:%s\n", pageURL)
	b.WriteString("END:VEVENT\n")

	return b.String()
}

// EventsICS concatenates one month's VEVENT records in insertion order.
func EventsICS(events []event.Event, year int, month time.Month, now time.Time, pageURL string) string {
	var b strings.Builder
	for _, e := range events {
		b.WriteString(EventICS(e, year, month, now, pageURL))
	}
	return b.String()
}

// Envelope wraps the concatenated VEVENT records of all exported months in
// the single VCALENDAR envelope emitted once per run.
func Envelope(body string) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\n")
	b.WriteString("VERSION:2.0\n")
	b.WriteString("PRODID:" + prodID + "\n")
	b.WriteString("NAME:" + calName + "\n")
	b.WriteString("X-WR-CALNAME:" + calName + "\n")
	b.WriteString(body)
	b.WriteString("END:VCALENDAR\n")
	return b.String()
}
