// Package helpers provides small general-purpose utility functions.
package helpers

import "github.com/google/uuid"

// CreateUUID creates a new random UUID.
func CreateUUID() string {
	return uuid.New().String()
}

// ParseUUID reports whether the string is a valid UUID.
func ParseUUID(s string) error {
	_, err := uuid.Parse(s)
	return err
}
