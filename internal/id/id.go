package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Length is the number of characters in an expense ID.
const Length = 8

// New returns a short expense ID: the first 8 hex characters of a random
// UUID. Uniqueness within a session is the store's concern.
func New() string {
	return uuid.New().String()[:Length]
}

// Valid reports whether s looks like an expense ID (8 lowercase hex chars).
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

// Check returns an error describing why s is not a valid expense ID, or nil.
func Check(s string) error {
	if !Valid(s) {
		return fmt.Errorf("invalid expense ID %q: want %d hex characters", s, Length)
	}
	return nil
}
