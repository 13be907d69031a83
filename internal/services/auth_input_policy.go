package services

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
	ErrInvalidUsername        = errors.New("username must be 3-150 letters, digits or @.+-_")
	ErrInvalidEmail           = errors.New("invalid email address")
	ErrWeakPassword           = errors.New("weak password")
	ErrPasswordMismatch       = errors.New("passwords do not match")
)

var usernameFormatRegex = regexp.MustCompile(`^[A-Za-z0-9@.+\-_]{3,150}$`)

// NormalizeUsername trims the input and returns "" for names outside the
// accepted alphabet. Case is kept for display; lookups compare lower-case.
func NormalizeUsername(raw string) string {
	username := strings.TrimSpace(raw)
	if !usernameFormatRegex.MatchString(username) {
		return ""
	}
	return username
}

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(usernameRaw string, passwordRaw string) (string, string, error) {
	username := NormalizeUsername(usernameRaw)
	password := strings.TrimSpace(passwordRaw)
	if username == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return username, password, nil
}

// ValidatePasswordStrength requires at least eight characters with a letter
// and a digit, and rejects passwords that contain the username.
func ValidatePasswordStrength(password string, username string) error {
	if len([]rune(password)) < 8 {
		return ErrWeakPassword
	}
	if username != "" && strings.Contains(strings.ToLower(password), strings.ToLower(username)) {
		return ErrWeakPassword
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	if hasLetter && hasDigit {
		return nil
	}
	return ErrWeakPassword
}
