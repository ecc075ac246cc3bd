package model

import "time"

// TimelineRow is one calendar day of a reporting range with its post count.
type TimelineRow struct {
	Date  time.Time
	Count int
}

// Gap reports whether the day had no posts. Renderers use it for emphasis;
// the computation layers attach no other meaning to it.
func (r TimelineRow) Gap() bool { return r.Count == 0 }

// StatusSummary is the cumulative pace triple. Delta is total posts minus
// elapsed days: positive means ahead of a post-per-day cadence.
type StatusSummary struct {
	Total int
	Days  int
	Delta int
}

// DayUTC truncates an instant to its UTC calendar day (midnight UTC).
func DayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
