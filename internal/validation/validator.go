package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// Common validation errors
var (
	ErrInvalidName      = errors.New("invalid name format")
	ErrInvalidBirthdate = errors.New("invalid birthdate")
	ErrInvalidID        = errors.New("invalid national id format")
	ErrInvalidDate      = errors.New("invalid date format")
)

const (
	DateFormat = "2006-01-02"
	// MinYear bounds birthdates to plausible living players.
	MinYear = 1915
)

// Regex patterns for validation
var (
	// Letters (ASCII + latin accents), apostrophes, spaces and hyphens.
	nameRegex = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ' -]+$`)
	// Two letters followed by five digits, e.g. AB12345.
	idRegex = regexp.MustCompile(`^[A-Za-z]{2}[0-9]{5}$`)
)

// ValidateName validates a first or last name
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if !nameRegex.MatchString(trimmed) {
		return fmt.Errorf("%w: only letters, apostrophes, spaces and hyphens are allowed", ErrInvalidName)
	}
	return nil
}

// ValidateBirthdate validates a YYYY-MM-DD birthdate: strictly in the
// past with the year between MinYear and the current year.
func ValidateBirthdate(birthdate string) error {
	birth, err := time.Parse(DateFormat, birthdate)
	if err != nil {
		return fmt.Errorf("%w: expected YYYY-MM-DD", ErrInvalidBirthdate)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !birth.Before(today) {
		return fmt.Errorf("%w: must be in the past", ErrInvalidBirthdate)
	}
	if birth.Year() < MinYear || birth.Year() > now.Year() {
		return fmt.Errorf("%w: year must be between %d and %d", ErrInvalidBirthdate, MinYear, now.Year())
	}
	return nil
}

// ValidateNationalID validates the national ID format: two letters
// followed by five digits.
func ValidateNationalID(nationalID string) error {
	if !idRegex.MatchString(strings.TrimSpace(nationalID)) {
		return fmt.Errorf("%w: expected two letters followed by five digits", ErrInvalidID)
	}
	return nil
}

// ValidateDate validates a plain YYYY-MM-DD date string.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateFormat, date); err != nil {
		return fmt.Errorf("%w: expected YYYY-MM-DD", ErrInvalidDate)
	}
	return nil
}

// NormalizeName trims and title-cases a name. A letter is uppercased
// when it starts the string or follows a space, hyphen or apostrophe,
// so "jean-pierre o'neill" becomes "Jean-Pierre O'Neill".
func NormalizeName(name string) string {
	trimmed := strings.TrimSpace(name)
	var b strings.Builder
	b.Grow(len(trimmed))

	startOfWord := true
	for _, r := range trimmed {
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		startOfWord = r == ' ' || r == '-' || r == '\''
	}
	return b.String()
}

// NormalizeID trims and uppercases a national ID.
func NormalizeID(nationalID string) string {
	return strings.ToUpper(strings.TrimSpace(nationalID))
}
