package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/go-authgate/loginapi/internal/auth"
	"github.com/go-authgate/loginapi/internal/config"
	"github.com/go-authgate/loginapi/internal/core"
	"github.com/go-authgate/loginapi/internal/services"
)

// initializeServices builds the password hasher and the credential service
func initializeServices(
	cfg *config.Config,
	repo core.CredentialRepository,
	recorder core.Recorder,
) (*services.CredentialService, error) {
	hasher, err := auth.NewHasher(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}
	log.Printf("[Bootstrap] Password hasher: %s (hash concurrency: %d)", hasher.Name(), cfg.HashConcurrency)

	return services.NewCredentialService(repo, hasher, recorder, cfg.HashConcurrency), nil
}

// seedDefaultUser creates the configured account when it does not exist yet
func seedDefaultUser(ctx context.Context, cfg *config.Config, cs *services.CredentialService) error {
	if err := cs.Seed(ctx, cfg.SeedUsername, cfg.SeedPassword); err != nil {
		return fmt.Errorf("failed to seed default user: %w", err)
	}
	return nil
}
