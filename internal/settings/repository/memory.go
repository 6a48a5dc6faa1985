package repository

import (
	"context"
	"sync"

	"phonelink_backend/internal/phonelink/domain"
)

// Memory keeps the settings in process memory.
type Memory struct {
	mu       sync.RWMutex
	settings *domain.Settings
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

var _ Repository = (*Memory)(nil)

func (m *Memory) Get(_ context.Context) (domain.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.settings == nil {
		return domain.Settings{}, errNotFound()
	}
	return *m.settings, nil
}

func (m *Memory) Save(_ context.Context, settings domain.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = &settings
	return nil
}

func (m *Memory) Ping(context.Context) error {
	return nil
}
