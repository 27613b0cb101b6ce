package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-authgate/loginapi/internal/core"

	"github.com/redis/go-redis/v9"
)

// Compile-time interface check.
var _ core.CredentialRepository = (*RedisStore)(nil)

// RedisStore keeps one string key per username holding the password hash.
// Writes are single SET commands, which Redis executes atomically.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps an existing go-redis client
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) key(username string) string {
	return r.prefix + username
}

func (r *RedisStore) GetPasswordHash(ctx context.Context, username string) (string, error) {
	hash, err := r.client.Get(ctx, r.key(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrRecordNotFound
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return hash, nil
}

// UpdatePasswordHash uses SET XX so a rotation never creates a record
func (r *RedisStore) UpdatePasswordHash(ctx context.Context, username, hash string) error {
	err := r.client.SetArgs(ctx, r.key(username), hash, redis.SetArgs{Mode: "XX"}).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("redis set xx: %w", err)
	}
	return nil
}

func (r *RedisStore) CreateUser(ctx context.Context, username, hash string) error {
	created, err := r.client.SetNX(ctx, r.key(username), hash, 0).Result()
	if err != nil {
		return fmt.Errorf("redis set nx: %w", err)
	}
	if !created {
		return ErrUsernameConflict
	}
	return nil
}

func (r *RedisStore) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
