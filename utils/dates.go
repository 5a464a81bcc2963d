package utils

import (
	"strings"
	"time"
)

// ParseRosterDate parses a date-of-birth cell from the roster spreadsheet.
// Accepts day/month/year with either a Buddhist-era or Gregorian year
// (roster files from schools mix both), plus ISO dates. Returns nil when
// the value cannot be parsed.
func ParseRosterDate(val string) *time.Time {
	val = strings.TrimSpace(val)
	if val == "" {
		return nil
	}

	layouts := []string{"2/1/2006", "02/01/2006", "2-1-2006", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, val); err == nil {
			t = normalizeBuddhistEra(t)
			return &t
		}
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return &t
	}
	return nil
}

// normalizeBuddhistEra shifts Buddhist-era years back to Gregorian.
// A birth year above 2400 can only be BE.
func normalizeBuddhistEra(t time.Time) time.Time {
	if t.Year() > 2400 {
		return t.AddDate(-543, 0, 0)
	}
	return t
}
