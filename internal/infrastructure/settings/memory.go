package settings

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store for tests and single-node deployments
// that run without Redis.
type MemoryStore struct {
	mu      sync.RWMutex
	strings map[string]string
	bools   map[string]bool
}

// NewMemoryStore creates an empty in-memory settings store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		strings: make(map[string]string),
		bools:   make(map[string]bool),
	}
}

// GetString retrieves a string setting; missing keys read as empty
func (m *MemoryStore) GetString(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.strings[key], nil
}

// GetBool retrieves a boolean setting; missing keys read as false
func (m *MemoryStore) GetBool(_ context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bools[key], nil
}

// SetBool stores a boolean setting
func (m *MemoryStore) SetBool(_ context.Context, key string, value bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bools[key] = value
	return nil
}

// SetString stores a string setting (used to seed credentials in tests)
func (m *MemoryStore) SetString(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.strings[key] = value
}
