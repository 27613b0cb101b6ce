package config

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Credential store backends
const (
	CredentialStoreMemory   = "memory"
	CredentialStoreSQLite   = "sqlite"
	CredentialStorePostgres = "postgres"
	CredentialStoreRedis    = "redis"
)

// Password hashing algorithms
const (
	PasswordHasherBcrypt   = "bcrypt"
	PasswordHasherArgon2id = "argon2id"
)

type Config struct {
	// Server settings
	ServerAddr      string
	BaseURL         string
	IsProduction    bool
	ShutdownTimeout time.Duration

	// Credential store
	CredentialStore string // "memory", "sqlite", "postgres" or "redis"
	DatabaseDSN     string // Database connection string (DSN or path)
	DBInitTimeout   time.Duration

	// Redis credential store
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	RedisKeyPrefix   string
	RedisConnTimeout time.Duration

	// Password hashing
	PasswordHasher  string // "bcrypt" or "argon2id"
	BcryptCost      int
	Argon2MemoryKB  int
	Argon2Time      int
	Argon2Threads   int
	HashConcurrency int // Maximum concurrent hash/compare operations

	// Seeded account
	SeedUsername string
	SeedPassword string

	// HTTP surface
	EnableSwagger      bool
	CORSAllowedOrigins []string

	// Metrics
	MetricsEnabled bool
	MetricsToken   string // Bearer token for /metrics (empty = no auth)
}

func Load() *Config {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	driver := getEnv("CREDENTIAL_STORE", CredentialStoreMemory)
	var dsn string
	if driver == CredentialStoreSQLite {
		dsn = getEnv("DATABASE_DSN", "login.db")
	} else {
		dsn = getEnv("DATABASE_DSN", "")
	}

	return &Config{
		ServerAddr:      getEnv("SERVER_ADDR", ":6060"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:6060"),
		IsProduction:    getEnv("ENVIRONMENT", "development") == "production",
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),

		CredentialStore: driver,
		DatabaseDSN:     dsn,
		DBInitTimeout:   getEnvDuration("DB_INIT_TIMEOUT", 30*time.Second),

		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisKeyPrefix:   getEnv("REDIS_KEY_PREFIX", "credential:"),
		RedisConnTimeout: getEnvDuration("REDIS_CONN_TIMEOUT", 5*time.Second),

		PasswordHasher:  getEnv("PASSWORD_HASHER", PasswordHasherBcrypt),
		BcryptCost:      getEnvInt("BCRYPT_COST", 10),
		Argon2MemoryKB:  getEnvInt("ARGON2_MEMORY_KB", 64*1024),
		Argon2Time:      getEnvInt("ARGON2_TIME", 1),
		Argon2Threads:   getEnvInt("ARGON2_THREADS", 2),
		HashConcurrency: getEnvInt("HASH_CONCURRENCY", runtime.NumCPU()),

		SeedUsername: getEnv("SEED_USERNAME", "admin"),
		SeedPassword: getEnv("SEED_PASSWORD", "12345678"),

		EnableSwagger:      getEnvBool("ENABLE_SWAGGER", true),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),

		MetricsEnabled: getEnvBool("METRICS_ENABLED", false),
		MetricsToken:   getEnv("METRICS_TOKEN", ""),
	}
}

// Validate checks enum-like settings and numeric bounds
func (c *Config) Validate() error {
	switch c.CredentialStore {
	case CredentialStoreMemory, CredentialStoreSQLite, CredentialStoreRedis:
	case CredentialStorePostgres:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required when CREDENTIAL_STORE=%s", c.CredentialStore)
		}
	default:
		return fmt.Errorf(
			"invalid CREDENTIAL_STORE value: %q (must be: memory, sqlite, postgres, redis)",
			c.CredentialStore,
		)
	}

	switch c.PasswordHasher {
	case PasswordHasherBcrypt, PasswordHasherArgon2id:
	default:
		return fmt.Errorf(
			"invalid PASSWORD_HASHER value: %q (must be: bcrypt, argon2id)",
			c.PasswordHasher,
		)
	}

	if err := c.validateArgon2(); err != nil {
		return err
	}

	if c.HashConcurrency < 1 {
		return fmt.Errorf("HASH_CONCURRENCY must be at least 1, got %d", c.HashConcurrency)
	}

	if c.SeedUsername == "" {
		return fmt.Errorf("SEED_USERNAME must not be empty")
	}

	return nil
}

// Argon2 bounds. Memory is capped well below the uint32 limit so a typo
// cannot make a single hash allocate terabytes.
const (
	Argon2MinMemoryKB = 8 * 1024
	Argon2MaxMemoryKB = 4 * 1024 * 1024
	Argon2MaxTime     = 1 << 16
	Argon2MaxThreads  = math.MaxUint8
)

// validateArgon2 range-checks the argon2 parameters before they are narrowed
// to the unsigned types the algorithm takes
func (c *Config) validateArgon2() error {
	if c.Argon2MemoryKB < Argon2MinMemoryKB || c.Argon2MemoryKB > Argon2MaxMemoryKB {
		return fmt.Errorf(
			"ARGON2_MEMORY_KB must be between %d and %d, got %d",
			Argon2MinMemoryKB, Argon2MaxMemoryKB, c.Argon2MemoryKB,
		)
	}
	if c.Argon2Time < 1 || c.Argon2Time > Argon2MaxTime {
		return fmt.Errorf("ARGON2_TIME must be between 1 and %d, got %d", Argon2MaxTime, c.Argon2Time)
	}
	if c.Argon2Threads < 1 || c.Argon2Threads > Argon2MaxThreads {
		return fmt.Errorf(
			"ARGON2_THREADS must be between 1 and %d, got %d",
			Argon2MaxThreads, c.Argon2Threads,
		)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var i int
		if _, err := fmt.Sscanf(value, "%d", &i); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		if parts := splitAndTrim(value, ","); len(parts) > 0 {
			return parts
		}
	}
	return defaultValue
}

func splitAndTrim(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
