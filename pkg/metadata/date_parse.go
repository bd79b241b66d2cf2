package metadata

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts is tried, in order, after RFC 3339: full datetime,
// date-only, month-year, year-only. A layout with no time component
// parses to 00:00:00 UTC, matching the day-granularity rule for
// date-only results.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02 15:04:05",
	"02/01/2006 15:04:05",
	"01/02/2006 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"01/02/2006",
	"January 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"January 2006",
	"Jan 2006",
	"01/2006",
	"01-2006",
	"2006",
}

// ParseDate parses a date string against RFC 3339 first, then the
// fixed layout table above, in order. It returns the first layout
// that matches, interpreted as UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var yearRe = regexp.MustCompile(`\b(19\d\d|20\d\d)\b`)
var dayRe = regexp.MustCompile(`\b\d{1,2}(st|nd|rd|th)?\b`)

// months lists full names followed by three-letter abbreviations so
// that index i maps to calendar month i%12+1 for both forms — "may"
// at index 4 and index 16 both land on month 5, and "jan" at index 12
// lands on month 1 via the same modulus. See DESIGN.md for the
// verification that no entry produces an off-by-one.
var months = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// ExtractFreeTextDate scans free text for a year and, optionally, a
// month name/abbreviation and day number, returning UTC midnight on
// the resolved date. Returns false if no year is found.
func ExtractFreeTextDate(text string) (time.Time, bool) {
	yearMatch := yearRe.FindString(text)
	if yearMatch == "" {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(yearMatch)
	if err != nil {
		return time.Time{}, false
	}

	lower := strings.ToLower(text)
	month := 1
	haveMonth := false
	for i, name := range months {
		if strings.Contains(lower, name) {
			month = i%12 + 1
			haveMonth = true
			break
		}
	}

	day := 1
	if haveMonth {
		if d := dayRe.FindString(text); d != "" {
			numPart := strings.TrimRightFunc(d, func(r rune) bool {
				return r < '0' || r > '9'
			})
			if n, err := strconv.Atoi(numPart); err == nil && n >= 1 && n <= 31 {
				day = n
			}
		}
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}
