package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-authgate/loginapi/internal/core"

	"golang.org/x/crypto/bcrypt"
)

const (
	algorithmBcrypt = "bcrypt"

	// bcryptMaxPasswordBytes is the input limit of the bcrypt key schedule
	bcryptMaxPasswordBytes = 72
)

// Compile-time interface check.
var _ core.Hasher = (*BcryptHasher)(nil)

// BcryptHasher hashes passwords with bcrypt at a fixed cost.
// The cost and salt are embedded in every hash, so Compare works for
// hashes produced at any cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt hasher with the given cost factor
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf(
			"%w: bcrypt cost %d out of range [%d, %d]",
			ErrInvalidHasherConfig, cost, bcrypt.MinCost, bcrypt.MaxCost,
		)
	}
	return &BcryptHasher{cost: cost}, nil
}

// Hash generates a salted bcrypt hash
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(hash), nil
}

// Compare checks password against a bcrypt hash.
// bcrypt only reads the first 72 bytes, and Hash refuses longer input, so a
// longer candidate is rejected here instead of matching on its prefix.
func (h *BcryptHasher) Compare(encodedHash, password string) error {
	if len(password) > bcryptMaxPasswordBytes {
		return ErrMismatchedPassword
	}
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword),
		errors.Is(err, bcrypt.ErrPasswordTooLong):
		return ErrMismatchedPassword
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedHash, err)
	}
}

// Name returns the algorithm identifier
func (h *BcryptHasher) Name() string {
	return algorithmBcrypt
}

// Cost returns the configured work factor
func (h *BcryptHasher) Cost() int {
	return h.cost
}

func isBcryptHash(encodedHash string) bool {
	return strings.HasPrefix(encodedHash, "$2a$") ||
		strings.HasPrefix(encodedHash, "$2b$") ||
		strings.HasPrefix(encodedHash, "$2y$")
}
