// Package cli implements the shinbukan-ics command: fetch a window of
// monthly schedule pages, parse each into events, and emit one iCalendar
// feed on stdout.
//
// Exit codes: 0 on a clean run, 1 on a fatal error (bad configuration,
// unwritable output), 2 when the feed was produced but at least one month
// had fetch or content errors. Code 2 runs still emit every successfully
// parsed event; the errors are reported on stderr.
package cli
