// Package event models the entries extracted from the Shinbukan schedule
// grid: all-day and timed events, the time-of-day notation the grid uses,
// and the stable 64-bit content identifier used as the calendar UID.
//
// Identifiers are deterministic across runs but not globally unique: two
// distinct events with identical fields collide. That is accepted. The
// identifier exists so calendar consumers can deduplicate and resync, not
// to distinguish coincidentally identical entries.
package event
