// Package feed normalizes a blog's raw feed payload into an ordered
// sequence of UTC post days. It understands two JSON layouts (JSON-Feed
// "items" and platform-API "entries") plus RSS/Atom via gofeed, and is the
// only package that raises the structural feed error.
package feed

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/mmcdole/gofeed"

	"postpace/internal/model"
)

// ErrInvalidFormat is raised when the payload lacks an extractable entry
// list, or a qualifying entry carries an unusable timestamp. The text is the
// exact user-facing message; callers surface it verbatim.
var ErrInvalidFormat = errors.New("Invalid response format")

const entryTypePost = "post"

// Decode picks the payload layout by which top-level key is present.
// A present-but-empty list is valid (zero posts); neither key present is a
// structural error.
func Decode(data []byte) (*Payload, error) {
	var raw struct {
		Items   json.RawMessage `json:"items"`
		Entries json.RawMessage `json:"entries"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, ErrInvalidFormat
	}
	switch {
	case raw.Items != nil:
		var items []Item
		if err := json.Unmarshal(raw.Items, &items); err != nil {
			return nil, ErrInvalidFormat
		}
		return &Payload{Shape: ShapeJSONFeed, Items: items}, nil
	case raw.Entries != nil:
		var entries []Entry
		if err := json.Unmarshal(raw.Entries, &entries); err != nil {
			return nil, ErrInvalidFormat
		}
		return &Payload{Shape: ShapeAPI, Entries: entries}, nil
	}
	return nil, ErrInvalidFormat
}

// PostDates extracts the qualifying post days, truncated to UTC midnight and
// sorted ascending. Same-day duplicates are preserved as separate elements
// (only counts matter downstream) and their relative order is kept stable.
// A malformed timestamp fails the whole batch: dropping entries silently
// would corrupt the pace and day-count arithmetic.
func (p *Payload) PostDates() ([]time.Time, error) {
	var days []time.Time
	switch p.Shape {
	case ShapeJSONFeed:
		for _, it := range p.Items {
			t, err := time.Parse(time.RFC3339, it.DatePublished)
			if err != nil {
				return nil, ErrInvalidFormat
			}
			days = append(days, model.DayUTC(t))
		}
	case ShapeAPI:
		for _, e := range p.Entries {
			if e.Type != "" && e.Type != entryTypePost {
				continue
			}
			sec, err := strconv.ParseInt(e.Date, 10, 64)
			if err != nil {
				return nil, ErrInvalidFormat
			}
			days = append(days, model.DayUTC(time.Unix(sec, 0)))
		}
	}
	sortDays(days)
	return days, nil
}

// ParseSyndication maps an RSS/Atom/JSON-Feed document to post days under
// the same rules: every item is a post, an item without a parseable publish
// date fails the batch.
func ParseSyndication(data []byte) ([]time.Time, error) {
	f, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, ErrInvalidFormat
	}
	days := make([]time.Time, 0, len(f.Items))
	for _, it := range f.Items {
		ts := it.PublishedParsed
		if ts == nil {
			ts = it.UpdatedParsed
		}
		if ts == nil {
			return nil, ErrInvalidFormat
		}
		days = append(days, model.DayUTC(*ts))
	}
	sortDays(days)
	return days, nil
}

// DetectPostDates handles the "auto" source: JSON objects go through Decode,
// anything else is treated as a syndication document.
func DetectPostDates(data []byte) ([]time.Time, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		p, err := Decode(data)
		if err != nil {
			return nil, err
		}
		return p.PostDates()
	}
	return ParseSyndication(data)
}

func sortDays(days []time.Time) {
	sort.SliceStable(days, func(i, j int) bool { return days[i].Before(days[j]) })
}
