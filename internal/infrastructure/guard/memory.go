// Package guard provides a process-local submission guard for single
// replica deployments without Redis.
package guard

import (
	"context"
	"sync"
	"time"
)

type Memory struct {
	mu   sync.Mutex
	held map[string]time.Time
	now  func() time.Time
}

func NewMemory() *Memory {
	return &Memory{held: make(map[string]time.Time), now: time.Now}
}

func (m *Memory) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if exp, ok := m.held[key]; ok && now.Before(exp) {
		return false, nil
	}
	m.sweep(now)
	m.held[key] = now.Add(ttl)
	return true, nil
}

func (m *Memory) Release(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.held, key)
	m.mu.Unlock()
	return nil
}

// sweep drops expired keys; caller holds mu.
func (m *Memory) sweep(now time.Time) {
	for k, exp := range m.held {
		if !now.Before(exp) {
			delete(m.held, k)
		}
	}
}
