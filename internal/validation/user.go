// Package validation holds input validators for user-supplied fields.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minNameLength     = 2
	maxNameLength     = 50
	minPasswordLength = 12
	maxPasswordLength = 128
	maxEmailLength    = 254
)

// ValidateName validates a display name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) != name {
		return fmt.Errorf("name cannot start or end with whitespace")
	}

	length := utf8.RuneCountInString(name)
	if length < minNameLength || length > maxNameLength {
		return fmt.Errorf("name must be %d-%d characters", minNameLength, maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("name contains invalid characters")
		}
	}

	return nil
}

// ValidateEmail validates email format and length.
func ValidateEmail(email string) error {
	if len(email) > maxEmailLength {
		return fmt.Errorf("email must be at most %d characters", maxEmailLength)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("invalid email format")
	}

	// mail.ParseAddress accepts addresses without a dot in the domain and
	// with a trailing dot; reject both.
	at := strings.LastIndex(email, "@")
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.HasSuffix(domain, ".") {
		return fmt.Errorf("invalid email format")
	}

	return nil
}

// ValidatePassword enforces minimum password strength: length bounds plus at
// least one uppercase letter, lowercase letter, digit, and special character.
func ValidatePassword(password string) error {
	length := utf8.RuneCountInString(password)
	if length < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	if length > maxPasswordLength {
		return fmt.Errorf("password must be at most %d characters", maxPasswordLength)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return fmt.Errorf("password must contain an uppercase letter, a lowercase letter, a digit, and a special character")
	}

	return nil
}
