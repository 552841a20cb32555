// Package timestamp converts raw commit timestamps into the fixed
// display timezone used by the report.
package timestamp

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedTimestamp indicates a commit timestamp that cannot be
// parsed into civil time. Callers treat this as fatal: a report with
// silently skipped commits is worse than no report.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// DefaultLabel is the display tag for the default report timezone.
const DefaultLabel = "ET"

// displayLayout matches the entry template: 2006-01-02 15:04:05 -0700.
const displayLayout = "2006-01-02 15:04:05 -0700"

// DefaultZone returns the default report timezone: a constant UTC-05:00
// offset. No tz database is consulted, so there is no daylight-saving
// adjustment.
func DefaultZone() *time.Location {
	return time.FixedZone(DefaultLabel, -5*60*60)
}

// FixedZone builds a report timezone from a label and an offset in
// minutes east of UTC.
func FixedZone(label string, offsetMinutes int) *time.Location {
	return time.FixedZone(label, offsetMinutes*60)
}

// Parse parses a raw ISO 8601 timestamp (git's %cI format) carrying its
// own UTC offset.
func Parse(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, raw)
	}
	return t, nil
}

// Normalize converts a timestamp into the target zone. The instant is
// unchanged; only the civil representation moves.
func Normalize(t time.Time, zone *time.Location) time.Time {
	return t.In(zone)
}

// Format renders a normalized timestamp for the report entry line,
// e.g. "2025-09-02 07:34:56 -0500 (ET)".
func Format(t time.Time, zone *time.Location) string {
	local := Normalize(t, zone)
	label, _ := local.Zone()
	return local.Format(displayLayout) + " (" + label + ")"
}
