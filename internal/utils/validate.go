package utils

import (
	"regexp"

	"gitlab.com/codeduel-2025.net/internal/domain"
	"gitlab.com/codeduel-2025.net/internal/static/errs"
)

var roomCodePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

// ValidateCode rejects empty and oversized submissions
func ValidateCode(code string, maxSize int) error {
	if code == "" {
		return errs.CodeRequired
	}
	if len(code) > maxSize {
		return errs.CodeTooLarge
	}
	return nil
}

// ValidateLanguage rejects languages the judge cannot run
func ValidateLanguage(language string) error {
	if !domain.SupportedLanguage(language) {
		return errs.UnsupportedLanguage
	}
	return nil
}

// ValidRoomCode reports whether code has the 6-character [A-Z0-9] shape
func ValidRoomCode(code string) bool {
	return roomCodePattern.MatchString(code)
}
