package schedule

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"shinbukan-ics/internal/event"
)

// gridSelector locates the day cells of the schedule table. The generator
// marks the grid with a fixed summary attribute.
const gridSelector = `table[summary="日程"] td`

// Parse extracts all day cells of one decoded schedule page into m. The
// returned error reports only a failure to read the document; content
// problems are recorded on m and never abort the pass.
func Parse(m *Month, r io.Reader) error {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return fmt.Errorf("parsing schedule page: %w", err)
	}

	doc.Find(gridSelector).Each(func(_ int, sel *goquery.Selection) {
		for _, cell := range sel.Nodes {
			if day, ok := interpretCell(m, cell); ok {
				m.MarkCovered(day)
			}
		}
	})

	m.CheckCoverage()
	return nil
}

// interpretCell scans one cell's child nodes in order, recording its events
// and errors into m. It reports the cell's day number, or ok=false when the
// cell is not a day cell (the grid pads its first and last week with blank
// spacer cells, which is not an error).
func interpretCell(m *Month, cell *html.Node) (day int, ok bool) {
	first := cell.FirstChild
	if first == nil {
		return 0, false
	}
	day, rest, ok := dayMarker(m, first)
	if !ok {
		return 0, false
	}

	// The annotation target: the most recently produced event in this
	// cell. Never carried across cells.
	var last event.Event

	// The generator sometimes puts the first entry in the same text node
	// as the day number.
	if rest != "" {
		last = classify(m, day, rest)
	}

	for c := first.NextSibling; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			switch {
			case c.Data == "br":
				// layout only
			case c.Data == "font" && attr(c, "size") == "-1":
				// decorative small print, not schedule content
			case c.Data == "font" && attr(c, "color") == "red":
				note := descendantText(c)
				if note == "" {
					continue
				}
				if last == nil {
					m.AddError(&ParseError{Reason: ReasonDanglingAnnotation, Day: day, Context: note})
					continue
				}
				last.Append(note)
			default:
				m.AddError(&ParseError{
					Reason:  ReasonUnexpectedElement,
					Day:     day,
					Context: "<" + c.Data + ">",
				})
			}
		case html.TextNode:
			text := strings.TrimSpace(c.Data)
			if text == "" {
				continue
			}
			last = classify(m, day, text)
		default:
			m.AddError(&ParseError{
				Reason:  ReasonUnexpectedNode,
				Day:     day,
				Context: fmt.Sprintf("node type %d: %.40s", c.Type, c.Data),
			})
		}
	}

	return day, true
}

// dayMarker reads the cell's first child as a day-of-month number,
// returning any trailing text after the number. Blank first children mean
// a spacer cell and stay silent; non-empty text that does not start with a
// day number in range records an error.
func dayMarker(m *Month, n *html.Node) (day int, rest string, ok bool) {
	if n.Type != html.TextNode {
		return 0, "", false
	}
	text := strings.TrimSpace(n.Data)
	if text == "" {
		return 0, "", false
	}
	head, rest, _ := strings.Cut(text, " ")
	day, err := strconv.Atoi(head)
	if err != nil || day < 1 || day > m.Days {
		m.AddError(&ParseError{Reason: ReasonBadDayMarker, Context: text})
		return 0, "", false
	}
	return day, strings.TrimSpace(rest), true
}

// classify turns one non-empty text node into an event. Text without a
// space is an all-day label. Otherwise the head up to the first space is
// tried as a "from-to" clock range ('-' or '~' separated); if it parses,
// the remainder is a timed event's label, and if not, the whole text is an
// all-day label after all.
func classify(m *Month, day int, text string) event.Event {
	head, rest, hasRest := strings.Cut(text, " ")
	if hasRest {
		if i := strings.IndexAny(head, "-~"); i >= 0 {
			from, errFrom := event.ParseClock(head[:i])
			to, errTo := event.ParseClock(head[i+1:])
			if errFrom == nil && errTo == nil {
				e := &event.Timed{Day: day, From: from, To: to, Label: rest}
				m.Add(e)
				return e
			}
		}
	}
	e := &event.AllDay{Day: day, Label: text}
	m.Add(e)
	return e
}

// descendantText collects the trimmed content of every descendant text
// node, joined by single spaces.
func descendantText(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
