// ABOUTME: Date normalization for the heterogeneous timestamps found in RSS/Atom feeds
// ABOUTME: Produces a UTC instant or reports the date as unknown, never an error

package time

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Layouts carrying a numeric UTC offset. Tried first: they are the most specific.
var offsetFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.999999999-0700",
	time.RFC1123Z,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04 -0700",
	"2 Jan 2006 15:04:05 -0700",
	time.RFC822Z,
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05-07:00",
}

// Layouts carrying a zone abbreviation, resolved through zoneOffsets.
var abbrevFormats = []string{
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04 MST",
	"2 Jan 2006 15:04:05 MST",
	time.RFC822,
	time.RFC850,
	time.UnixDate,
	"2006-01-02 15:04:05 MST",
}

// Layouts without any zone information; read as UTC.
var naiveFormats = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"Mon, 2 Jan 2006 15:04:05",
	"2 Jan 2006 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
}

// zoneOffsets maps the abbreviations commonly seen in sports feeds to seconds east of UTC.
var zoneOffsets = map[string]int{
	"UTC": 0, "GMT": 0, "Z": 0,
	"EST": -5 * 3600, "EDT": -4 * 3600,
	"CST": -6 * 3600, "CDT": -5 * 3600,
	"MST": -7 * 3600, "MDT": -6 * 3600,
	"PST": -8 * 3600, "PDT": -7 * 3600,
	"BST": 1 * 3600, "CET": 1 * 3600, "CEST": 2 * 3600,
}

// Normalize converts a raw feed date into a UTC instant.
// The boolean is false when the value is absent or unparseable.
func Normalize(raw string) (time.Time, bool) {
	raw = strings.Join(strings.Fields(raw), " ")
	if raw == "" {
		return time.Time{}, false
	}

	for _, format := range offsetFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return t.UTC(), true
		}
	}

	for _, format := range abbrevFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return resolveAbbreviation(t).UTC(), true
		}
	}

	for _, format := range naiveFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return t.UTC(), true
		}
	}

	if t, err := dateparse.ParseIn(raw, time.UTC); err == nil && !t.IsZero() {
		return t.UTC(), true
	}

	return time.Time{}, false
}

// resolveAbbreviation re-anchors a time parsed with a zone abbreviation.
// time.Parse gives unknown abbreviations a zero offset, so known ones are fixed here.
func resolveAbbreviation(t time.Time) time.Time {
	name, _ := t.Zone()
	offset, ok := zoneOffsets[strings.ToUpper(name)]
	if !ok {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.FixedZone(name, offset))
}
