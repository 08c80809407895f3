package utils

import (
	"errors"
	"regexp"
)

// Allow alphanumeric, underscore, hyphen, dot - common in transit IDs
var validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateID validates that a vehicle or location ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateSignificanceLevel checks that alpha is a usable test threshold in (0, 1]
func ValidateSignificanceLevel(alpha float64) error {
	if !(alpha > 0 && alpha <= 1) {
		return errors.New("significance level must be in (0, 1]")
	}
	return nil
}
