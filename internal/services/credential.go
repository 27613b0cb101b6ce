package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-authgate/loginapi/internal/auth"
	"github.com/go-authgate/loginapi/internal/core"
	"github.com/go-authgate/loginapi/internal/metrics"
	"github.com/go-authgate/loginapi/internal/store"

	"golang.org/x/sync/semaphore"
)

// CredentialService verifies and rotates passwords against a credential repository.
//
// Lookups and writes go through the repository, whose single-record operations
// are atomic per username. Hashing happens outside any record lock and is
// bounded by a weighted semaphore so that CPU-bound work cannot pile up.
type CredentialService struct {
	repo    core.CredentialRepository
	hasher  core.Hasher
	metrics core.Recorder
	sem     *semaphore.Weighted
}

func NewCredentialService(
	repo core.CredentialRepository,
	hasher core.Hasher,
	recorder core.Recorder,
	concurrency int,
) *CredentialService {
	if concurrency < 1 {
		concurrency = 1
	}
	if recorder == nil {
		recorder = metrics.NewNoopMetrics()
	}
	return &CredentialService{
		repo:    repo,
		hasher:  hasher,
		metrics: recorder,
		sem:     semaphore.NewWeighted(int64(concurrency)),
	}
}

// Verify checks a candidate password. It returns nil when authenticated,
// ErrUserNotFound, ErrWrongPassword, or a wrapped internal error.
func (s *CredentialService) Verify(ctx context.Context, username, password string) error {
	start := time.Now()

	hash, err := s.repo.GetPasswordHash(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			s.metrics.RecordVerification(metrics.ResultUserNotFound, time.Since(start))
			return ErrUserNotFound
		}
		s.metrics.RecordVerification(metrics.ResultError, time.Since(start))
		log.Printf("[Credential] Failed to load credential for %q: %v", username, err)
		return fmt.Errorf("failed to load credential: %w", err)
	}

	err = s.withHashSlot(ctx, func() error {
		return s.hasher.Compare(hash, password)
	})
	switch {
	case err == nil:
		s.metrics.RecordVerification(metrics.ResultAuthenticated, time.Since(start))
		return nil
	case errors.Is(err, auth.ErrMismatchedPassword):
		s.metrics.RecordVerification(metrics.ResultWrongPassword, time.Since(start))
		return ErrWrongPassword
	default:
		s.metrics.RecordVerification(metrics.ResultError, time.Since(start))
		log.Printf("[Credential] Failed to compare password for %q: %v", username, err)
		return fmt.Errorf("failed to compare password: %w", err)
	}
}

// Rotate replaces the password of an existing user. The old password is not
// required. It returns nil when rotated, ErrUserNotFound, ErrPasswordTooLong,
// or a wrapped internal error.
func (s *CredentialService) Rotate(ctx context.Context, username, newPassword string) error {
	start := time.Now()

	// Unknown users are rejected before paying for a hash
	if _, err := s.repo.GetPasswordHash(ctx, username); err != nil {
		return s.rotationFailed(username, start, err)
	}

	hash, err := s.hash(ctx, newPassword)
	if err != nil {
		return s.rotationFailed(username, start, err)
	}

	if err := s.repo.UpdatePasswordHash(ctx, username, hash); err != nil {
		return s.rotationFailed(username, start, err)
	}

	s.metrics.RecordRotation(metrics.ResultRotated, time.Since(start))
	return nil
}

func (s *CredentialService) rotationFailed(username string, start time.Time, err error) error {
	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		s.metrics.RecordRotation(metrics.ResultUserNotFound, time.Since(start))
		return ErrUserNotFound
	case errors.Is(err, auth.ErrPasswordTooLong):
		s.metrics.RecordRotation(metrics.ResultPasswordTooLong, time.Since(start))
		return ErrPasswordTooLong
	default:
		s.metrics.RecordRotation(metrics.ResultError, time.Since(start))
		log.Printf("[Credential] Failed to rotate password for %q: %v", username, err)
		return fmt.Errorf("failed to rotate password: %w", err)
	}
}

// Seed creates the record if the username does not exist yet. An existing
// record is left untouched, so restarts against a durable store keep any
// rotated password.
func (s *CredentialService) Seed(ctx context.Context, username, password string) error {
	_, err := s.repo.GetPasswordHash(ctx, username)
	if err == nil {
		log.Printf("[Credential] Seed user %q already exists, skipping", username)
		return nil
	}
	if !errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up seed user: %w", err)
	}

	hash, err := s.hash(ctx, password)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	if err := s.repo.CreateUser(ctx, username, hash); err != nil {
		if errors.Is(err, store.ErrUsernameConflict) {
			return nil
		}
		return fmt.Errorf("failed to create seed user: %w", err)
	}

	log.Printf("[Credential] Seeded user %q (%s)", username, s.hasher.Name())
	return nil
}

// Health reports whether the credential repository is reachable
func (s *CredentialService) Health(ctx context.Context) error {
	return s.repo.Health(ctx)
}

func (s *CredentialService) hash(ctx context.Context, password string) (string, error) {
	var hash string
	err := s.withHashSlot(ctx, func() error {
		start := time.Now()
		h, err := s.hasher.Hash(password)
		s.metrics.RecordHash(s.hasher.Name(), time.Since(start))
		hash = h
		return err
	})
	return hash, err
}

// withHashSlot runs fn while holding one hash worker slot. It gives up when
// ctx is done before a slot frees up.
func (s *CredentialService) withHashSlot(ctx context.Context, fn func() error) error {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer s.sem.Release(1)
	return fn()
}
