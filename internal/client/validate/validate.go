// Package validate implements the local form-validation rules. Failures here
// are caught before any network call is made.
package validate

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailInvalid     = errors.New("email address is not valid")
	ErrFullNameTooShort = errors.New("full name must be at least 3 characters")
	ErrPasswordLength   = errors.New("password must be between 6 and 30 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrMessageRequired  = errors.New("message is required")
)

// Requires a local part, a domain and a TLD of at least two letters.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[a-zA-Z]{2,}$`)

// Email checks that s looks like a deliverable address.
func Email(s string) error {
	if s == "" {
		return ErrEmailRequired
	}
	if !emailRe.MatchString(s) {
		return ErrEmailInvalid
	}
	return nil
}

// FullName checks the display-name length floor.
func FullName(s string) error {
	if utf8.RuneCountInString(s) < 3 {
		return ErrFullNameTooShort
	}
	return nil
}

// Password checks the length bounds applied at registration and on password
// changes.
func Password(s string) error {
	if n := utf8.RuneCountInString(s); n < 6 || n > 30 {
		return ErrPasswordLength
	}
	return nil
}

// PasswordsMatch checks a password/confirmation pair.
func PasswordsMatch(password, confirmation string) error {
	if password != confirmation {
		return ErrPasswordMismatch
	}
	return nil
}

// Message checks free-text fields that must not be empty, like the adoption
// request message.
func Message(s string) error {
	if s == "" {
		return ErrMessageRequired
	}
	return nil
}
