// Package timewindow decides whether half-open time intervals on the same
// resource collide. Callers pre-filter to one resource and to the statuses
// that hold it; nothing here touches storage.
package timewindow

import "time"

// Interval is a half-open [Start, End) range owned by the record with ID
type Interval struct {
	ID    string
	Start time.Time
	End   time.Time
}

// Valid reports whether the interval is non-empty
func (i Interval) Valid() bool {
	return i.Start.Before(i.End)
}

// Intersects reports whether [a.Start, a.End) and [b.Start, b.End) share an instant
func Intersects(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Overlaps reports whether candidate intersects any existing interval.
// An existing interval whose ID equals excludeID is skipped, so a record can
// be re-checked against its siblings when its own dates change.
func Overlaps(existing []Interval, candidate Interval, excludeID string) bool {
	for _, iv := range existing {
		if excludeID != "" && iv.ID == excludeID {
			continue
		}
		if Intersects(iv, candidate) {
			return true
		}
	}
	return false
}

// Conflicts returns the existing intervals that intersect candidate, in input order
func Conflicts(existing []Interval, candidate Interval, excludeID string) []Interval {
	var out []Interval
	for _, iv := range existing {
		if excludeID != "" && iv.ID == excludeID {
			continue
		}
		if Intersects(iv, candidate) {
			out = append(out, iv)
		}
	}
	return out
}

// Days returns the length of [start, end) as a fractional number of days
func Days(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24
}
