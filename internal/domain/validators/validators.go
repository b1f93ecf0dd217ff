// Package validators holds the pure single-field checks used by the dialogue
// controller while collecting customer data. Functions are total: they return
// the normalized value or a sentinel error, never panic.
package validators

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidTaxID = errors.New("invalid tax id")
	ErrInvalidPhone = errors.New("invalid phone")
	ErrInvalidEmail = errors.New("invalid email")
)

const taxIDLength = 11

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateTaxID strips non-digits and accepts exactly 11 remaining digits
// (CPF shape). Returns the digit-only form.
func ValidateTaxID(raw string) (string, error) {
	digits := onlyDigits(raw)
	if len(digits) != taxIDLength {
		return "", ErrInvalidTaxID
	}
	return digits, nil
}

// ValidatePhone strips non-digits and accepts 10 or more remaining digits
// (DDD + number). Returns the digit-only form.
func ValidatePhone(raw string) (string, error) {
	digits := onlyDigits(raw)
	if len(digits) < 10 {
		return "", ErrInvalidPhone
	}
	return digits, nil
}

// ValidateEmail accepts a local@domain.tld shape. Returns the trimmed input.
func ValidateEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if !emailPattern.MatchString(email) {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
