// Package expiry classifies expiration dates relative to a reference
// day. Everything here is pure: callers inject "now", nothing is read
// from the environment, and the same inputs always produce the same
// classification.
package expiry

import (
	"fmt"
	"time"
)

// Status tags an item's urgency.
type Status string

const (
	StatusExpired      Status = "expired"
	StatusExpiringSoon Status = "expiring-soon"
	StatusFresh        Status = "fresh"
)

// soonWindowDays is the upper bound of the expiring-soon window,
// inclusive: items due within 0..3 days are expiring-soon.
const soonWindowDays = 3

// Priority orders statuses for sorting: expired sorts before
// expiring-soon, which sorts before fresh.
func (s Status) Priority() int {
	switch s {
	case StatusExpired:
		return 0
	case StatusExpiringSoon:
		return 1
	default:
		return 2
	}
}

// Classification is the derived view of an expiration date: the status
// tag, the signed day distance, and the human-readable phrase.
type Classification struct {
	Status Status
	Days   int
	Text   string
}

// DaysUntil returns the whole-day distance from now to expires. Both
// instants are truncated to day granularity first, so the time of day
// never shifts the result: an item expiring later today is 0 days out,
// yesterday is -1.
func DaysUntil(expires, now time.Time) int {
	return int(dayOf(expires).Sub(dayOf(now)) / (24 * time.Hour))
}

// dayOf normalizes t to its calendar day. The day is rebuilt in UTC so
// daylight-saving shifts cannot produce fractional-day distances.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Classify derives the status and display text for an expiration date.
// The expiring-soon window is inclusive on both ends: due today through
// due in three days. Fresh begins strictly beyond the window.
func Classify(expires, now time.Time) Classification {
	days := DaysUntil(expires, now)

	switch {
	case days < 0:
		return Classification{
			Status: StatusExpired,
			Days:   days,
			Text:   fmt.Sprintf("Expired %d days ago", -days),
		}
	case days == 0:
		return Classification{Status: StatusExpiringSoon, Days: days, Text: "Expires today"}
	case days == 1:
		return Classification{Status: StatusExpiringSoon, Days: days, Text: "Expires tomorrow"}
	case days <= soonWindowDays:
		return Classification{
			Status: StatusExpiringSoon,
			Days:   days,
			Text:   fmt.Sprintf("Expires in %d days", days),
		}
	default:
		return Classification{
			Status: StatusFresh,
			Days:   days,
			Text:   fmt.Sprintf("Expires in %d days", days),
		}
	}
}
