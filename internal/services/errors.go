package services

import "errors"

var (
	// ErrDuplicateAccount is returned by sign-up when the email is already
	// registered.
	ErrDuplicateAccount = errors.New("email already registered")
	// ErrInvalidCredentials is returned by sign-in when the stored secret
	// does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrProfileNotFound is returned when a credential record exists with no
	// matching profile. That state only arises from a corrupted store.
	ErrProfileNotFound = errors.New("user profile not found")
	// ErrPermissionDenied is returned when a caller's role lacks the
	// capability for the requested operation.
	ErrPermissionDenied = errors.New("permission denied")
)
