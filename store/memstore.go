package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemStore is an in-memory RecordStore used by tests and ephemeral
// environments. Values round-trip through JSON so it behaves like the real
// backends.
type MemStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: map[string][]byte{}}
}

// Get reads the value stored under key into v.
func (m *MemStore) Get(_ context.Context, key string, v interface{}) error {
	m.mu.RLock()
	b, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(b, v)
}

// Put replaces the value stored under key.
func (m *MemStore) Put(_ context.Context, key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = b
	m.mu.Unlock()
	return nil
}

// Delete removes the value stored under key.
func (m *MemStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}
