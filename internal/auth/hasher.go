package auth

import (
	"fmt"
	"math"

	"github.com/go-authgate/loginapi/internal/config"
	"github.com/go-authgate/loginapi/internal/core"
)

// Compile-time interface check.
var _ core.Hasher = (*Dispatcher)(nil)

// Dispatcher hashes with the configured primary algorithm and verifies
// against whichever known algorithm produced the stored hash, so records
// hashed before an algorithm switch keep verifying.
type Dispatcher struct {
	primary core.Hasher
	known   map[string]core.Hasher
}

// NewDispatcher creates a dispatcher. The primary hasher is always known.
func NewDispatcher(primary core.Hasher, others ...core.Hasher) *Dispatcher {
	known := map[string]core.Hasher{primary.Name(): primary}
	for _, h := range others {
		if _, exists := known[h.Name()]; !exists {
			known[h.Name()] = h
		}
	}
	return &Dispatcher{primary: primary, known: known}
}

// NewHasher builds the dispatcher described by cfg
func NewHasher(cfg *config.Config) (*Dispatcher, error) {
	bcryptHasher, err := NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	argon2Cfg, err := argon2ConfigFrom(cfg)
	if err != nil {
		return nil, err
	}
	argon2Hasher, err := NewArgon2Hasher(argon2Cfg)
	if err != nil {
		return nil, err
	}

	switch cfg.PasswordHasher {
	case config.PasswordHasherArgon2id:
		return NewDispatcher(argon2Hasher, bcryptHasher), nil
	case config.PasswordHasherBcrypt:
		return NewDispatcher(bcryptHasher, argon2Hasher), nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidHasherConfig, cfg.PasswordHasher)
	}
}

// argon2ConfigFrom narrows the configured ints, rejecting values that would wrap
func argon2ConfigFrom(cfg *config.Config) (Argon2Config, error) {
	if cfg.Argon2MemoryKB < 0 || int64(cfg.Argon2MemoryKB) > math.MaxUint32 ||
		cfg.Argon2Time < 0 || int64(cfg.Argon2Time) > math.MaxUint32 ||
		cfg.Argon2Threads < 0 || cfg.Argon2Threads > math.MaxUint8 {
		return Argon2Config{}, fmt.Errorf(
			"%w: argon2 parameters out of range (memory=%d, time=%d, threads=%d)",
			ErrInvalidHasherConfig, cfg.Argon2MemoryKB, cfg.Argon2Time, cfg.Argon2Threads,
		)
	}
	return Argon2Config{
		MemoryKB: uint32(cfg.Argon2MemoryKB),
		Time:     uint32(cfg.Argon2Time),
		Threads:  uint8(cfg.Argon2Threads),
	}, nil
}

// Hash uses the primary algorithm
func (d *Dispatcher) Hash(password string) (string, error) {
	return d.primary.Hash(password)
}

// Compare routes to the algorithm identified by the hash prefix
func (d *Dispatcher) Compare(encodedHash, password string) error {
	h, ok := d.known[algorithmOf(encodedHash)]
	if !ok {
		return ErrUnsupportedHash
	}
	return h.Compare(encodedHash, password)
}

// Name returns the primary algorithm identifier
func (d *Dispatcher) Name() string {
	return d.primary.Name()
}

func algorithmOf(encodedHash string) string {
	switch {
	case isBcryptHash(encodedHash):
		return algorithmBcrypt
	case isArgon2Hash(encodedHash):
		return algorithmArgon2id
	default:
		return ""
	}
}
