package services

import "time"

const dateLayout = "2006-01-02"

// Expiry status labels surfaced on ingredient responses
const (
	StatusUnknown          = "unknown"
	StatusExpired          = "expired"
	StatusExpiringSoon     = "expiringSoon"
	StatusExpiringThisWeek = "expiringThisWeek"
	StatusFresh            = "fresh"
)

// DaysUntilExpiry returns the signed day count between the expiry date and
// today (negative means already expired, zero means expires today). The
// second return value is false when the date string does not parse as
// YYYY-MM-DD.
//
// "today" is an explicit parameter so callers and tests control the clock.
func DaysUntilExpiry(expiryDate string, today time.Time) (int, bool) {
	expiry, err := time.Parse(dateLayout, expiryDate)
	if err != nil {
		return 0, false
	}
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(expiry.Sub(midnight).Hours() / 24), true
}

// ExpiryStatus classifies a day-offset into a status label
func ExpiryStatus(daysLeft int, ok bool) string {
	switch {
	case !ok:
		return StatusUnknown
	case daysLeft < 0:
		return StatusExpired
	case daysLeft <= 3:
		return StatusExpiringSoon
	case daysLeft <= 7:
		return StatusExpiringThisWeek
	default:
		return StatusFresh
	}
}
