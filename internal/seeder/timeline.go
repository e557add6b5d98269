package seeder

import "time"

// DependentDate returns a date for an entity anchored on anchor.
//
// A future anchor yields a date in [now, anchor). An anchor at or before now
// yields an arbitrary past date which may fall after the anchor.
func DependentDate(g *DataGenerator, anchor, now time.Time) time.Time {
	if anchor.After(now) {
		return g.Between(now, anchor)
	}
	return g.PastDate(now)
}
