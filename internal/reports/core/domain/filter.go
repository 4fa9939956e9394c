package domain

import (
	"strings"
	"time"
)

// FilterSpec holds per-field substring constraints plus an optional
// inclusive date range. The range is active only when both ends are set.
type FilterSpec struct {
	Fields map[string]string
	Start  *time.Time
	End    *time.Time
}

// IsEmpty reports whether the spec is the identity filter.
func (s FilterSpec) IsEmpty() bool {
	return len(s.Fields) == 0 && !s.dateRangeActive()
}

func (s FilterSpec) dateRangeActive() bool {
	return s.Start != nil && s.End != nil
}

// Filter returns the records matching spec, preserving source order. The
// input is never mutated; an empty spec returns it unchanged.
func Filter(log []Record, spec FilterSpec) []Record {
	if spec.IsEmpty() {
		return log
	}
	out := make([]Record, 0, len(log))
	for _, rec := range log {
		if matches(rec, spec) {
			out = append(out, rec)
		}
	}
	return out
}

func matches(rec Record, spec FilterSpec) bool {
	for key, want := range spec.Fields {
		got, ok := rec.Field(key)
		if !ok {
			// A record lacking the filtered key is not excluded by that
			// filter; only a present-but-mismatching value excludes.
			continue
		}
		if !strings.Contains(strings.ToLower(got), strings.ToLower(want)) {
			return false
		}
	}

	if spec.dateRangeActive() {
		ts, ok := rec.Timestamp()
		if !ok {
			// Missing or unparseable Time excludes once a range is active.
			return false
		}
		d := dateOnly(ts)
		if d.Before(dateOnly(*spec.Start)) || d.After(dateOnly(*spec.End)) {
			return false
		}
	}

	return true
}

// dateOnly discards the time-of-day component for the range comparison.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
