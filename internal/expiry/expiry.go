// Package expiry formats, parses and checks card expiration dates for
// gateway wire fields.
package expiry

import (
	"fmt"
	"time"
)

// Known reports whether month/year describe a usable expiration date.
// Callers omit the expiration wire field entirely when it is not known.
func Known(month, year int) bool {
	return month >= 1 && month <= 12 && year > 0
}

// MMYY returns the 4-digit MMYY wire format of an expiration month/year,
// or "" when the expiration is not known.
func MMYY(month, year int) string {
	if !Known(month, year) {
		return ""
	}
	return fmt.Sprintf("%02d%02d", month, year%100)
}

// ParseMMYY parses the 4-digit MMYY wire format. Two-digit years map to
// 2000..2099.
func ParseMMYY(s string) (month, year int, err error) {
	if len(s) != 4 {
		return 0, 0, fmt.Errorf("expiration must be MMYY (4 digits)")
	}
	for i := 0; i < 4; i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, 0, fmt.Errorf("expiration must be digits: MMYY")
		}
	}
	month = int(s[0]-'0')*10 + int(s[1]-'0')
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("expiration month must be 01..12")
	}
	year = 2000 + int(s[2]-'0')*10 + int(s[3]-'0')
	return month, year, nil
}

// Expired reports whether the expiration has passed at time 'at'. A card is
// valid through the last instant of its expiration month.
func Expired(month, year int, at time.Time) bool {
	if !Known(month, year) {
		return false
	}
	// First instant of the month after expiration.
	cutoff := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return !at.Before(cutoff)
}
