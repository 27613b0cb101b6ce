package store

import "errors"

var (
	// ErrUsernameConflict is returned when a username already exists
	ErrUsernameConflict = errors.New("username already exists")

	// ErrRecordNotFound is returned by every backend for unknown usernames
	ErrRecordNotFound = errors.New("record not found")

	// ErrUnsupportedDriver is returned for an unknown CREDENTIAL_STORE value
	ErrUnsupportedDriver = errors.New("unsupported credential store driver")
)
