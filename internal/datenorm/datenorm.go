package datenorm

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// The upstream project resource does not emit one consistent date format:
// records have been observed carrying ISO strings, .NET JSON dates like
// /Date(1695383393000)/, bare epoch numbers in seconds or milliseconds, and
// regional slash/dash layouts. ToEpochMillis normalizes all of them to a
// single epoch-millisecond value so createdDate sorting stays total and
// deterministic; anything unparseable maps to 0 instead of an error.

var (
	dotNetDateRe = regexp.MustCompile(`Date\((\d+)\)`)
	numericRe    = regexp.MustCompile(`^\d+$`)
	dayFirstRe   = regexp.MustCompile(`^(\d{2})[/\-](\d{2})[/\-](\d{4})(?:[ T](\d{2}):(\d{2})(?::(\d{2}))?)?`)
	yearFirstRe  = regexp.MustCompile(`^(\d{4})[/\-](\d{2})[/\-](\d{2})(?:[ T](\d{2}):(\d{2})(?::(\d{2}))?)?`)
)

// Layouts tried by the generic parse step, most specific first. All are
// interpreted in UTC so the result does not depend on the host timezone.
var genericLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Threshold below which a bare number is interpreted as seconds rather than
// milliseconds.
const msThreshold = 1e12

// ToEpochMillis converts an arbitrary date-like value to epoch milliseconds,
// or 0 if it cannot be parsed. Matching is ordered and the first hit wins:
// native time value, .NET wrapper, bare number, generic standard formats,
// DD/MM/YYYY, YYYY/MM/DD, MM/DD/YYYY (slash or dash, optional time).
func ToEpochMillis(value any) int64 {
	switch v := value.(type) {
	case nil:
		return 0
	case time.Time:
		if v.IsZero() {
			return 0
		}
		return v.UnixMilli()
	case *time.Time:
		if v == nil || v.IsZero() {
			return 0
		}
		return v.UnixMilli()
	case int64:
		return numberToMillis(float64(v))
	case int:
		return numberToMillis(float64(v))
	case float64:
		return numberToMillis(v)
	case string:
		return parseString(v)
	default:
		return 0
	}
}

func numberToMillis(n float64) int64 {
	if n <= 0 {
		return 0
	}
	if n < msThreshold {
		return int64(n) * 1000
	}
	return int64(n)
}

func parseString(s string) int64 {
	str := strings.TrimSpace(s)
	if str == "" {
		return 0
	}

	if m := dotNetDateRe.FindStringSubmatch(str); m != nil {
		ms, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0
		}
		return ms
	}

	if numericRe.MatchString(str) {
		num, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return 0
		}
		return numberToMillis(num)
	}

	for _, layout := range genericLayouts {
		if t, err := time.ParseInLocation(layout, str, time.UTC); err == nil {
			return t.UnixMilli()
		}
	}

	// DD/MM/YYYY or DD-MM-YYYY, optional HH:MM[:SS]
	if m := dayFirstRe.FindStringSubmatch(str); m != nil {
		if ts, ok := buildDate(m[3], m[2], m[1], m[4], m[5], m[6]); ok {
			return ts
		}
	}

	// YYYY/MM/DD or YYYY-MM-DD, optional HH:MM[:SS]
	if m := yearFirstRe.FindStringSubmatch(str); m != nil {
		if ts, ok := buildDate(m[1], m[2], m[3], m[4], m[5], m[6]); ok {
			return ts
		}
	}

	// MM/DD/YYYY or MM-DD-YYYY, optional HH:MM[:SS]
	if m := dayFirstRe.FindStringSubmatch(str); m != nil {
		if ts, ok := buildDate(m[3], m[1], m[2], m[4], m[5], m[6]); ok {
			return ts
		}
	}

	return 0
}

// buildDate assembles a UTC timestamp from string components, rejecting
// combinations that do not name a real calendar date (so 25 cannot be read
// as a month and the next pattern in the chain gets its chance).
func buildDate(year, month, day, hour, minute, second string) (int64, bool) {
	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	h := atoiDefault(hour, 0)
	mi := atoiDefault(minute, 0)
	se := atoiDefault(second, 0)

	if mo < 1 || mo > 12 || d < 1 || d > 31 {
		return 0, false
	}

	t := time.Date(y, time.Month(mo), d, h, mi, se, 0, time.UTC)
	// time.Date normalizes out-of-range days (e.g. Feb 31); reject those
	if t.Year() != y || t.Month() != time.Month(mo) || t.Day() != d {
		return 0, false
	}

	return t.UnixMilli(), true
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// createdFieldCandidates is the ordered list of created-date field names the
// project resource has been seen using, across casing and naming conventions.
var createdFieldCandidates = []string{
	"createdDate", "CreatedDate", "created_date", "createdDateTime", "CreatedDateTime",
	"createdAt", "CreatedAt", "created_at", "createdOn", "CreatedOn", "created_on",
	"created", "Created", "creationDate", "CreationDate", "creation_time", "creationTime",
	"createdTimestamp", "CreatedTimestamp", "created_time", "created_time_utc",
}

// CreatedTimestamp probes a raw record for a created-date field and returns
// the first candidate that normalizes to a non-zero timestamp, or 0.
func CreatedTimestamp(record map[string]any) int64 {
	if record == nil {
		return 0
	}
	for _, key := range createdFieldCandidates {
		if v, ok := record[key]; ok && v != nil {
			if ts := ToEpochMillis(v); ts != 0 {
				return ts
			}
		}
	}
	return 0
}
