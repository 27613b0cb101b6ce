package store

import (
	"context"
	"sync"

	"github.com/go-authgate/loginapi/internal/core"
)

// Compile-time interface check.
var _ core.CredentialRepository = (*MemoryStore)(nil)

type memoryRecord struct {
	mu   sync.RWMutex
	hash string
}

// MemoryStore keeps credentials in process memory. Each record carries its
// own lock, so operations on different usernames never contend.
// State is lost on restart.
type MemoryStore struct {
	records sync.Map // username -> *memoryRecord
}

// NewMemoryStore creates an empty in-memory repository
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) record(username string) (*memoryRecord, error) {
	v, ok := m.records.Load(username)
	if !ok {
		return nil, ErrRecordNotFound
	}
	return v.(*memoryRecord), nil
}

func (m *MemoryStore) GetPasswordHash(ctx context.Context, username string) (string, error) {
	rec, err := m.record(username)
	if err != nil {
		return "", err
	}
	rec.mu.RLock()
	defer rec.mu.RUnlock()
	return rec.hash, nil
}

func (m *MemoryStore) UpdatePasswordHash(ctx context.Context, username, hash string) error {
	rec, err := m.record(username)
	if err != nil {
		return err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.hash = hash
	return nil
}

func (m *MemoryStore) CreateUser(ctx context.Context, username, hash string) error {
	if _, loaded := m.records.LoadOrStore(username, &memoryRecord{hash: hash}); loaded {
		return ErrUsernameConflict
	}
	return nil
}

// Health always succeeds for the in-memory store
func (m *MemoryStore) Health(ctx context.Context) error {
	return nil
}

// Close drops all records
func (m *MemoryStore) Close() error {
	m.records.Range(func(key, _ any) bool {
		m.records.Delete(key)
		return true
	})
	return nil
}
