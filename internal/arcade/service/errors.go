package service

import "errors"

var (
	// ErrInvalidInput covers empty or out-of-range request fields.
	ErrInvalidInput = errors.New("invalid_input")

	ErrDuplicateUsername = errors.New("duplicate_username")

	// ErrInvalidCredentials is returned for an unknown username and for a
	// wrong password alike.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrStorageUnavailable wraps any store failure that is not a domain
	// outcome. Nothing was committed when it is returned.
	ErrStorageUnavailable = errors.New("storage_unavailable")

	// ErrUserNotFound means a user id that was valid when a session was
	// issued no longer refers to a stored user.
	ErrUserNotFound = errors.New("user_not_found")
)
