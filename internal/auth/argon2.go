package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-authgate/loginapi/internal/core"

	"golang.org/x/crypto/argon2"
)

const (
	algorithmArgon2id = "argon2id"

	argon2MinMemoryKB   uint32 = 8 * 1024
	argon2MaxMemoryKB   uint32 = 4 * 1024 * 1024
	argon2SaltLength    uint32 = 16
	argon2KeyLength     uint32 = 32
	argon2MinSaltLength        = 16
)

// Compile-time interface check.
var _ core.Hasher = (*Argon2Hasher)(nil)

// Argon2Config holds the argon2id work factors
type Argon2Config struct {
	MemoryKB uint32
	Time     uint32
	Threads  uint8
}

// Argon2Hasher hashes passwords with argon2id and encodes them in PHC format:
//
//	$argon2id$v=19$m=65536,t=1,p=2$<salt>$<hash>
type Argon2Hasher struct {
	cfg Argon2Config
}

type argon2Params struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	hash    []byte
}

// NewArgon2Hasher creates an argon2id hasher
func NewArgon2Hasher(cfg Argon2Config) (*Argon2Hasher, error) {
	if cfg.MemoryKB < argon2MinMemoryKB || cfg.MemoryKB > argon2MaxMemoryKB {
		return nil, fmt.Errorf(
			"%w: argon2 memory must be between %d and %d KB",
			ErrInvalidHasherConfig, argon2MinMemoryKB, argon2MaxMemoryKB,
		)
	}
	if cfg.Time < 1 {
		return nil, fmt.Errorf("%w: argon2 time must be >= 1", ErrInvalidHasherConfig)
	}
	if cfg.Threads < 1 {
		return nil, fmt.Errorf("%w: argon2 threads must be >= 1", ErrInvalidHasherConfig)
	}
	return &Argon2Hasher{cfg: cfg}, nil
}

// Hash generates a salted argon2id hash
func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argon2SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("argon2 salt: %w", err)
	}

	key := argon2.IDKey(
		[]byte(password),
		salt,
		h.cfg.Time,
		h.cfg.MemoryKB,
		h.cfg.Threads,
		argon2KeyLength,
	)

	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmArgon2id,
		argon2.Version,
		h.cfg.MemoryKB,
		h.cfg.Time,
		h.cfg.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Compare recomputes the digest with the parameters embedded in the hash
func (h *Argon2Hasher) Compare(encodedHash, password string) error {
	params, err := parseArgon2Hash(encodedHash)
	if err != nil {
		return err
	}

	computed := argon2.IDKey(
		[]byte(password),
		params.salt,
		params.time,
		params.memory,
		params.threads,
		uint32(len(params.hash)),
	)

	if subtle.ConstantTimeCompare(computed, params.hash) != 1 {
		return ErrMismatchedPassword
	}
	return nil
}

// Name returns the algorithm identifier
func (h *Argon2Hasher) Name() string {
	return algorithmArgon2id
}

func isArgon2Hash(encodedHash string) bool {
	return strings.HasPrefix(encodedHash, "$"+algorithmArgon2id+"$")
}

func parseArgon2Hash(encodedHash string) (*argon2Params, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != algorithmArgon2id {
		return nil, fmt.Errorf("%w: malformed argon2id hash", ErrUnsupportedHash)
	}

	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return nil, fmt.Errorf("%w: unsupported argon2 version %q", ErrUnsupportedHash, parts[2])
	}

	params := &argon2Params{}
	var memorySet, timeSet, threadsSet bool
	for _, pair := range strings.Split(parts[3], ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%w: invalid parameter %q", ErrUnsupportedHash, pair)
		}
		switch key {
		case "m":
			v, err := strconv.ParseUint(value, 10, 32)
			if err != nil || v < uint64(argon2MinMemoryKB) || v > uint64(argon2MaxMemoryKB) {
				return nil, fmt.Errorf("%w: invalid memory parameter", ErrUnsupportedHash)
			}
			params.memory = uint32(v)
			memorySet = true
		case "t":
			v, err := strconv.ParseUint(value, 10, 32)
			if err != nil || v < 1 {
				return nil, fmt.Errorf("%w: invalid time parameter", ErrUnsupportedHash)
			}
			params.time = uint32(v)
			timeSet = true
		case "p":
			v, err := strconv.ParseUint(value, 10, 8)
			if err != nil || v < 1 {
				return nil, fmt.Errorf("%w: invalid parallelism parameter", ErrUnsupportedHash)
			}
			params.threads = uint8(v)
			threadsSet = true
		default:
			return nil, fmt.Errorf("%w: unknown parameter %q", ErrUnsupportedHash, key)
		}
	}
	if !memorySet || !timeSet || !threadsSet {
		return nil, fmt.Errorf("%w: missing argon2 parameters", ErrUnsupportedHash)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) < argon2MinSaltLength {
		return nil, fmt.Errorf("%w: invalid salt", ErrUnsupportedHash)
	}
	params.salt = salt

	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(hash) == 0 {
		return nil, fmt.Errorf("%w: invalid digest", ErrUnsupportedHash)
	}
	params.hash = hash

	return params, nil
}
