// Package cardnum holds card number helpers shared by gateway adapters:
// digits-only normalization for wire fields, Luhn validation, and masking
// for logs.
package cardnum

import (
	"fmt"
	"strings"
)

// NumbersOnly strips every non-digit from s. Gateways expect PANs and postal
// codes without spaces or separators.
func NumbersOnly(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			sb.WriteByte(s[i])
		}
	}
	if sb.Len() == len(s) {
		return s
	}
	return sb.String()
}

// Mask returns a log-safe card number: first six and last four digits kept,
// the rest replaced by '*'. Short values are masked entirely.
func Mask(pan string) string {
	pan = NumbersOnly(pan)
	if len(pan) < 12 {
		return strings.Repeat("*", len(pan))
	}
	return pan[:6] + strings.Repeat("*", len(pan)-10) + pan[len(pan)-4:]
}

// IsDigits reports whether s is non-empty and all ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ValidatePAN checks PAN length, digits and the Luhn check digit.
// Lengths 13..19 are accepted.
func ValidatePAN(pan string) error {
	if pan == "" {
		return fmt.Errorf("pan is required")
	}
	if !IsDigits(pan) {
		return fmt.Errorf("pan must contain digits only")
	}
	if l := len(pan); l < 13 || l > 19 {
		return fmt.Errorf("pan length must be 13..19 digits (got %d)", l)
	}

	body := pan[:len(pan)-1]
	if pan[len(pan)-1] != luhnCheckDigit(body) {
		return fmt.Errorf("invalid luhn check digit")
	}
	return nil
}

func luhnCheckDigit(body string) byte {
	sum, dbl := 0, true
	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i] - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	return byte('0' + (10-sum%10)%10)
}
