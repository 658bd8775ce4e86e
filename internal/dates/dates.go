// Package dates holds the small calendar helpers the search pipeline needs.
package dates

import (
	"fmt"
	"time"
)

// Layout is the wire format for calendar dates throughout the pipeline
const Layout = "2006-01-02"

// DaysAgo returns the date n days before today, formatted for the wire
func DaysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format(Layout)
}

// Range expands a start/end pair into the ordered daily sequence between
// them, inclusive on both ends
func Range(start, end string) ([]string, error) {
	first, err := time.Parse(Layout, start)
	if err != nil {
		return nil, fmt.Errorf("parse start date %q: %w", start, err)
	}
	last, err := time.Parse(Layout, end)
	if err != nil {
		return nil, fmt.Errorf("parse end date %q: %w", end, err)
	}
	if last.Before(first) {
		return nil, fmt.Errorf("end date %s precedes start date %s", end, start)
	}

	var out []string
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format(Layout))
	}
	return out, nil
}
