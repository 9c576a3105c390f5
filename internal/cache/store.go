// Package cache provides the freshness cache consulted by the upstream
// client. Entries are keyed by the full request URL and are valid for
// reuse only while they were captured on the current calendar date
// (local time). Implementations are safe for concurrent use.
package cache

import "time"

// Store is a day-scoped response cache.
type Store interface {
	// Get returns the cached payload for url if it was captured today.
	Get(url string) ([]byte, bool)
	// Put stores the payload for url with the current capture timestamp.
	Put(url string, body []byte)
}

// sameCalendarDay reports whether a falls on the same calendar date as b,
// evaluated in b's location.
func sameCalendarDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// untilMidnight returns the duration from now until the next local
// midnight, which is when a freshly captured entry stops being valid.
func untilMidnight(now time.Time) time.Duration {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return midnight.Sub(now)
}
