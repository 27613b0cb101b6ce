package services

import "errors"

var (
	// ErrUserNotFound is returned when no record exists for the exact username
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongPassword is returned when the candidate password does not match the stored hash
	ErrWrongPassword = errors.New("wrong password")

	// ErrPasswordTooLong is returned by Rotate when the hasher cannot take the whole password
	ErrPasswordTooLong = errors.New("password is too long")
)
