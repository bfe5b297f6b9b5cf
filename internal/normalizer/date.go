package normalizer

import (
	"regexp"
	"strings"
	"time"
)

const (
	isoDate     = "2006-01-02"
	isoDateTime = "2006-01-02T15:04:05"
	isoZoned    = time.RFC3339
)

// dateLayout pairs an input layout with the ISO layout used to render it.
type dateLayout struct {
	parse  string
	render string
}

// dateLayouts is tried in order; the first layout that parses wins.
// Month names are matched against Go's fixed English table, never the system locale.
var dateLayouts = []dateLayout{
	{time.RFC3339Nano, isoZoned},
	{isoDateTime, isoDateTime},
	{"2006-01-02 15:04:05", isoDateTime},
	{isoDate, isoDate},

	{"2006-Jan-02T15:04:05Z07:00", isoZoned},
	{"2006-Jan-02T15:04:05", isoDateTime},

	{time.RFC1123Z, isoZoned},
	{time.RFC1123, isoZoned},
	{time.RFC822Z, isoZoned},
	{time.RFC822, isoZoned},
	{"Mon, 2 Jan 2006 15:04:05 -0700", isoZoned},

	{"January 2, 2006", isoDate},
	{"Jan 2, 2006", isoDate},
	{"Jan. 2, 2006", isoDate},
	{"2 January 2006", isoDate},
	{"2 Jan 2006", isoDate},

	{"1/2/2006", isoDate},
	{"2-1-2006", isoDate},
	{"2006/01/02", isoDate},
}

var updatedPrefix = regexp.MustCompile(`(?i)^updated\s+`)

// ParseDateToISO converts a scraped date string to ISO 8601. Values carrying a
// time of day and a resolvable offset keep the time; date-only values and
// times in an unresolved named zone render as YYYY-MM-DD. Anything that
// cannot be parsed, including impossible calendar dates, yields "".
func ParseDateToISO(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	s = strings.TrimSpace(updatedPrefix.ReplaceAllString(s, ""))

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout.parse, s)
		if err != nil {
			continue
		}

		if layout.render == isoZoned && !knownOffset(t) {
			return t.Format(isoDate)
		}

		return t.Format(layout.render)
	}

	return ""
}

// knownOffset reports whether t's offset came from the input. time.Parse
// gives zone abbreviations it cannot resolve (EST, PST, EDT) a zero offset
// while keeping the name, and a time of day in that zone cannot be placed.
func knownOffset(t time.Time) bool {
	name, offset := t.Zone()
	if offset != 0 {
		return true
	}

	switch name {
	case "", "UTC", "GMT", "UT", "Z":
		return true
	}

	return false
}
