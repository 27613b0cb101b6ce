package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/go-authgate/loginapi/internal/config"
	"github.com/go-authgate/loginapi/internal/core"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// repositoryFactory creates a fresh, empty repository for each subtest
type repositoryFactory func(t *testing.T) core.CredentialRepository

func newTestSQLiteStore(t *testing.T) core.CredentialRepository {
	t.Helper()
	db, err := New(context.Background(), "sqlite", filepath.Join(t.TempDir(), "login.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestRedisStore(t *testing.T) core.CredentialRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := NewRedisStore(client, "credential:")
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func newTestMemoryStore(t *testing.T) core.CredentialRepository {
	t.Helper()
	return NewMemoryStore()
}

func TestMemoryStore(t *testing.T) {
	testRepositoryContract(t, newTestMemoryStore)
}

func TestStoreWithSQLite(t *testing.T) {
	testRepositoryContract(t, newTestSQLiteStore)
}

func TestRedisStore(t *testing.T) {
	testRepositoryContract(t, newTestRedisStore)
}

// TestStoreWithPostgres tests store operations with PostgreSQL
func TestStoreWithPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping PostgreSQL integration test in short mode")
	}

	// Recover from panic if Docker is not available
	defer func() {
		if r := recover(); r != nil {
			t.Skipf("Skipping PostgreSQL test: Docker not available (panic: %v)", r)
		}
	}()

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Skipf("Skipping PostgreSQL test: Docker not available (%v)", err)
		return
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	testRepositoryContract(t, func(t *testing.T) core.CredentialRepository {
		t.Helper()
		dbName := "test_" + uuid.New().String()[:8]
		_, _, err := pgContainer.Exec(
			ctx,
			[]string{"psql", "-U", "testuser", "-d", "testdb", "-c", "CREATE DATABASE " + dbName},
		)
		require.NoError(t, err)

		host, err := pgContainer.Host(ctx)
		require.NoError(t, err)
		port, err := pgContainer.MappedPort(ctx, "5432")
		require.NoError(t, err)
		dsn := fmt.Sprintf(
			"host=%s port=%s user=testuser password=testpass dbname=%s sslmode=disable",
			host, port.Port(), dbName,
		)

		db, err := New(ctx, "postgres", dsn)
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		return db
	})
}

// testRepositoryContract runs the behaviour every backend must share
func testRepositoryContract(t *testing.T, newRepo repositoryFactory) {
	ctx := context.Background()

	t.Run("CreateAndGet", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.CreateUser(ctx, "admin", "hash-1"))

		hash, err := repo.GetPasswordHash(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, "hash-1", hash)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.GetPasswordHash(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrRecordNotFound)

		err = repo.UpdatePasswordHash(ctx, "nonexistent", "hash")
		assert.ErrorIs(t, err, ErrRecordNotFound)

		// Update must not have created the record
		_, err = repo.GetPasswordHash(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("UsernameIsCaseSensitive", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.CreateUser(ctx, "admin", "hash-1"))

		_, err := repo.GetPasswordHash(ctx, "Admin")
		assert.ErrorIs(t, err, ErrRecordNotFound)
		_, err = repo.GetPasswordHash(ctx, "ADMIN")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.CreateUser(ctx, "admin", "hash-1"))

		err := repo.CreateUser(ctx, "admin", "hash-2")
		assert.ErrorIs(t, err, ErrUsernameConflict)

		hash, err := repo.GetPasswordHash(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, "hash-1", hash, "conflicting create must not overwrite")
	})

	t.Run("UpdateOverwritesWithoutHistory", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.CreateUser(ctx, "admin", "hash-1"))

		require.NoError(t, repo.UpdatePasswordHash(ctx, "admin", "hash-2"))
		require.NoError(t, repo.UpdatePasswordHash(ctx, "admin", "hash-3"))

		hash, err := repo.GetPasswordHash(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, "hash-3", hash)
	})

	t.Run("UpdateSameValue", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.CreateUser(ctx, "admin", "hash-1"))
		assert.NoError(t, repo.UpdatePasswordHash(ctx, "admin", "hash-1"))
	})

	t.Run("IndependentUsers", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.CreateUser(ctx, "alice", "hash-a"))
		require.NoError(t, repo.CreateUser(ctx, "bob", "hash-b"))

		require.NoError(t, repo.UpdatePasswordHash(ctx, "alice", "hash-a2"))

		hash, err := repo.GetPasswordHash(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, "hash-b", hash)
	})

	t.Run("ConcurrentUpdates", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.CreateUser(ctx, "admin", "initial"))

		const writers = 16
		written := make(map[string]bool, writers)
		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			value := fmt.Sprintf("hash-%02d-%s", i, uuid.New().String())
			written[value] = true
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, repo.UpdatePasswordHash(ctx, "admin", value))
				_, err := repo.GetPasswordHash(ctx, "admin")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		final, err := repo.GetPasswordHash(ctx, "admin")
		require.NoError(t, err)
		assert.True(t, written[final], "final hash %q must be one of the written values", final)
	})

	t.Run("Health", func(t *testing.T) {
		repo := newRepo(t)
		assert.NoError(t, repo.Health(ctx))
	})
}

func TestSQLiteStore_GetUserByUsername(t *testing.T) {
	ctx := context.Background()
	db, err := New(ctx, "sqlite", filepath.Join(t.TempDir(), "login.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.CreateUser(ctx, "admin", "hash-1"))

	user, err := db.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	count, err := db.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryStore_Close(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	require.NoError(t, m.CreateUser(ctx, "admin", "hash"))

	require.NoError(t, m.Close())

	_, err := m.GetPasswordHash(ctx, "admin")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRedisStore_KeyPrefix(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := NewRedisStore(client, "login:")
	defer r.Close()

	require.NoError(t, r.CreateUser(ctx, "admin", "hash-1"))

	value, err := mr.Get("login:admin")
	require.NoError(t, err)
	assert.Equal(t, "hash-1", value)
	assert.Equal(t, time.Duration(0), mr.TTL("login:admin"), "credentials must not expire")
}

func TestRedisStore_BackendUnavailable(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	r := NewRedisStore(client, "credential:")
	defer r.Close()

	mr.Close()

	_, err = r.GetPasswordHash(ctx, "admin")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRecordNotFound)
	assert.Error(t, r.Health(ctx))
}

func TestGetDialector(t *testing.T) {
	_, err := GetDialector("sqlite", ":memory:")
	assert.NoError(t, err)

	_, err = GetDialector("postgres", "host=localhost")
	assert.NoError(t, err)

	for _, kind := range []string{"mysql", "memory", "redis"} {
		_, err = GetDialector(kind, "dsn")
		assert.ErrorIs(t, err, ErrUnsupportedDriver, kind)
	}
}

func TestNewRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		repo, err := NewRepository(ctx, &config.Config{CredentialStore: config.CredentialStoreMemory})
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, repo)
	})

	t.Run("sqlite", func(t *testing.T) {
		repo, err := NewRepository(ctx, &config.Config{
			CredentialStore: config.CredentialStoreSQLite,
			DatabaseDSN:     filepath.Join(t.TempDir(), "login.db"),
			DBInitTimeout:   10 * time.Second,
		})
		require.NoError(t, err)
		defer repo.Close()
		assert.IsType(t, &Store{}, repo)
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		repo, err := NewRepository(ctx, &config.Config{
			CredentialStore:  config.CredentialStoreRedis,
			RedisAddr:        mr.Addr(),
			RedisKeyPrefix:   "credential:",
			RedisConnTimeout: 5 * time.Second,
		})
		require.NoError(t, err)
		defer repo.Close()
		assert.IsType(t, &RedisStore{}, repo)
	})

	t.Run("redis unreachable", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		addr := mr.Addr()
		mr.Close()

		_, err = NewRepository(ctx, &config.Config{
			CredentialStore:  config.CredentialStoreRedis,
			RedisAddr:        addr,
			RedisConnTimeout: time.Second,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to connect to Redis")
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := NewRepository(ctx, &config.Config{CredentialStore: "etcd"})
		assert.ErrorIs(t, err, ErrUnsupportedDriver)
	})
}
