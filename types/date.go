package types

import "time"

// DateLayout is the calendar date form used for expiration dates,
// matching the stored JSON ("2025-08-30").
const DateLayout = "2006-01-02"

// ParseDate parses a DateLayout string into a local-time date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// FormatDate renders t as a DateLayout string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
