// Package validation provides input validation rules for user-supplied fields.
package validation

import (
	"errors"
	"net/mail"
	"strings"
	"unicode"
)

// ValidatePassword checks the registration password policy: at least eight
// characters with an uppercase letter, a lowercase letter, and a digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("Password must be at least 8 characters")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		return errors.New("Password must contain an uppercase letter, a lowercase letter, and a digit")
	}
	return nil
}

// ValidateEmail checks that email parses as an address and has no surrounding whitespace.
func ValidateEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return errors.New("Email is required")
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return errors.New("Invalid email address")
	}
	return nil
}

// ValidateName checks the display name used for registration.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.New("Name is required")
	}
	if len(trimmed) > 100 {
		return errors.New("Name too long (max 100 characters)")
	}
	return nil
}
