// Package pace derives the two reporting views from a normalized post-day
// sequence. Both operations are pure functions: the caller supplies the
// clock, nothing is read from the environment and nothing is retained
// between calls.
package pace

import (
	"time"

	"postpace/internal/model"
)

// BucketByDay counts posts per UTC calendar day.
func BucketByDay(posts []time.Time) map[time.Time]int {
	buckets := make(map[time.Time]int, len(posts))
	for _, p := range posts {
		buckets[model.DayUTC(p)]++
	}
	return buckets
}

// Timeline emits one row per calendar day over the inclusive range from the
// earliest post day through asOf, ascending, with zero counts for silent
// days. Every day in range appears exactly once; surfacing the gaps is the
// whole point. An empty post list yields no rows at all.
//
// Historical requests pass the last post day as asOf; live requests pass the
// current UTC day so inactivity since the last post shows up as trailing
// zero rows.
func Timeline(posts []time.Time, asOf time.Time) []model.TimelineRow {
	if len(posts) == 0 {
		return nil
	}
	buckets := BucketByDay(posts)
	end := model.DayUTC(asOf)
	var rows []model.TimelineRow
	for d := FirstDay(posts); !d.After(end); d = d.AddDate(0, 0, 1) {
		rows = append(rows, model.TimelineRow{Date: d, Count: buckets[d]})
	}
	return rows
}

// Status computes the cumulative pace triple as of now. Days is the
// inclusive day count from the first post day through now's day, so it is at
// least 1 once a post exists. The empty-feed result is a fixed {0,0,0}
// sentinel: with no first post there is no day range to anchor on.
func Status(posts []time.Time, now time.Time) model.StatusSummary {
	if len(posts) == 0 {
		return model.StatusSummary{}
	}
	first := FirstDay(posts)
	days := int(model.DayUTC(now).Sub(first).Hours()/24) + 1
	total := len(posts)
	return model.StatusSummary{Total: total, Days: days, Delta: total - days}
}

// FirstDay returns the earliest post day. The normalizer hands posts over
// sorted, but the scan keeps this package independent of input order.
func FirstDay(posts []time.Time) time.Time {
	first := model.DayUTC(posts[0])
	for _, p := range posts[1:] {
		if d := model.DayUTC(p); d.Before(first) {
			first = d
		}
	}
	return first
}

// LastDay returns the latest post day, the historical timeline bound.
func LastDay(posts []time.Time) time.Time {
	last := model.DayUTC(posts[0])
	for _, p := range posts[1:] {
		if d := model.DayUTC(p); d.After(last) {
			last = d
		}
	}
	return last
}
