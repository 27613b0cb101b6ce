package store

import (
	"context"
	"fmt"
	"log"

	"github.com/go-authgate/loginapi/internal/config"
	"github.com/go-authgate/loginapi/internal/core"

	"github.com/redis/go-redis/v9"
)

// NewRepository builds the credential repository selected by CREDENTIAL_STORE
func NewRepository(ctx context.Context, cfg *config.Config) (core.CredentialRepository, error) {
	switch cfg.CredentialStore {
	case config.CredentialStoreMemory:
		log.Println("[Store] Using in-memory credential store (state is lost on restart)")
		return NewMemoryStore(), nil

	case config.CredentialStoreSQLite, config.CredentialStorePostgres:
		initCtx, cancel := context.WithTimeout(ctx, cfg.DBInitTimeout)
		defer cancel()

		db, err := New(initCtx, cfg.CredentialStore, cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		log.Printf("[Store] Using %s credential store", cfg.CredentialStore)
		return db, nil

	case config.CredentialStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, cfg.RedisConnTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
		}
		log.Printf("[Store] Using redis credential store (address: %s, db: %d)", cfg.RedisAddr, cfg.RedisDB)
		return NewRedisStore(client, cfg.RedisKeyPrefix), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, cfg.CredentialStore)
	}
}
