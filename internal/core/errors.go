package core

import (
	"errors"
	"fmt"
)

// ErrAuthRequired is returned by the auth gate when a mutation is attempted
// without an authenticated session. The caller is expected to route the user
// into the login flow rather than surface it as a failure.
var ErrAuthRequired = errors.New("authentication required")

// ErrTokenUnknown is returned when a removal confirmation token is unknown,
// already used, or expired.
var ErrTokenUnknown = errors.New("unknown or expired confirmation token")

// ValidationError reports a rejected field on add or update. The mutation
// does not proceed; no partial write is observable.
type ValidationError struct {
	Field  string
	Reason string // defaults to "is required"
}

func (e *ValidationError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "is required"
	}
	return fmt.Sprintf("%s %s", e.Field, reason)
}

// NotFoundError reports that no item with the given id exists.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item %s not found", e.ID)
}
