package auth

import "errors"

var (
	// ErrMismatchedPassword is returned by Compare when the password does not match the hash
	ErrMismatchedPassword = errors.New("password does not match hash")

	// ErrUnsupportedHash is returned when an encoded hash uses an unknown algorithm or format
	ErrUnsupportedHash = errors.New("unsupported password hash format")

	// ErrPasswordTooLong is returned when the algorithm cannot hash the whole password
	ErrPasswordTooLong = errors.New("password exceeds algorithm input limit")

	// ErrInvalidHasherConfig is returned for out-of-range cost parameters
	ErrInvalidHasherConfig = errors.New("invalid password hasher configuration")
)
