package library

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// minYear is the floor for publication years.
const minYear = 1440

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) < 3 {
		return "", fmt.Errorf("%w: title must be at least 3 characters", ErrInvalidArgument)
	}
	return title, nil
}

func validateYear(year int) error {
	now := time.Now().Year()
	if year < minYear || year > now {
		return fmt.Errorf("%w: year %d must be between %d and %d", ErrInvalidArgument, year, minYear, now)
	}
	return nil
}

func validatePersonName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < 2 {
		return "", fmt.Errorf("%w: person name must be at least 2 characters", ErrInvalidArgument)
	}
	return name, nil
}

// validateISBN accepts ISBN-10 and ISBN-13, with or without dashes.
func validateISBN(isbn string) error {
	digits := strings.ReplaceAll(isbn, "-", "")
	if len(digits) != 10 && len(digits) != 13 {
		return fmt.Errorf("%w: ISBN %q must have 10 or 13 digits", ErrInvalidArgument, isbn)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: ISBN %q contains a non-digit character", ErrInvalidArgument, isbn)
		}
	}
	return nil
}

func validatePositive(field string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidArgument, field, v)
	}
	return nil
}
