package types

import "fmt"

// ------------------------------
// Shared validation
// ------------------------------

// ValidateUserID rejects an empty user identity before any request is built.
func ValidateUserID(userID string) error {
	if userID == "" {
		return fmt.Errorf("userId is required")
	}
	return nil
}

// ValidateIDPresent rejects an empty resource identifier.
func ValidateIDPresent(id, field string) error {
	if id == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// ------------------------------
// Shared errors
// ------------------------------

// ErrNotFound is returned when the backend reports 404 for a record the
// caller tried to read or patch.
var ErrNotFound = fmt.Errorf("record not found")
