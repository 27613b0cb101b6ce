package core

import "context"

// CredentialRepository persists username -> password hash mappings.
// Implementations return store.ErrRecordNotFound for unknown usernames.
type CredentialRepository interface {
	// GetPasswordHash returns the stored hash for an exact, case-sensitive username.
	GetPasswordHash(ctx context.Context, username string) (string, error)

	// UpdatePasswordHash overwrites the hash of an existing user.
	// The write must be atomic with respect to concurrent reads and writes of the same username.
	UpdatePasswordHash(ctx context.Context, username, hash string) error

	// CreateUser inserts a new record. Returns store.ErrUsernameConflict if the username exists.
	CreateUser(ctx context.Context, username, hash string) error

	// Health checks if the backend is reachable
	Health(ctx context.Context) error

	// Close releases backend resources
	Close() error
}

// Hasher produces and checks salted adaptive password hashes.
type Hasher interface {
	// Hash returns an encoded hash embedding algorithm, cost, salt and digest.
	Hash(password string) (string, error)

	// Compare returns nil when password matches the encoded hash.
	Compare(encodedHash, password string) error

	// Name returns the algorithm identifier used in logs and metrics
	Name() string
}
