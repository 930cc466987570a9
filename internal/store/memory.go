package store

import (
	"context"
	"sync"
)

// Memory is the in-process Store used when no redis is reachable and in
// tests. Subscribers are invoked synchronously on every Set.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
	subs map[string][]func()
}

func NewMemory() *Memory {
	return &Memory{
		data: make(map[string][]byte),
		subs: make(map[string][]func()),
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	m.mu.Lock()
	m.data[key] = stored
	subs := make([]func(), len(m.subs[key]))
	copy(subs, m.subs[key])
	m.mu.Unlock()

	// Change signal fires outside the lock so a subscriber may re-read.
	for _, fn := range subs {
		fn()
	}
	return nil
}

func (m *Memory) Subscribe(key string, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs[key] = append(m.subs[key], fn)
}

func (m *Memory) Close() error { return nil }
