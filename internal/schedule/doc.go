// Package schedule parses one month of the Shinbukan schedule grid: a
// hand-authored HTML table with one cell per day, each holding the day
// number followed by that day's entries.
//
// Parsing is deliberately tolerant. Content problems (an element the grid
// generator never emits, a day appearing twice, a day missing from the
// grid) are recorded as ParseErrors on the Month and scanning continues,
// so one broken cell never costs the rest of the month's events.
package schedule
