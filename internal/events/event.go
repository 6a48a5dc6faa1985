// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"phonelink_backend/platform/events"
	"phonelink_backend/platform/logger"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates the process-local bus used by cmd/api.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// =============================================================================
// Settings Domain Events
// =============================================================================

// SettingsUpdated is published after the phone link defaults were saved.
type SettingsUpdated struct {
	BaseEvent
	Region    string `json:"region"`
	Format    int    `json:"format"`
	Linkify   bool   `json:"linkify"`
	UpdatedBy string `json:"updatedBy"`
}

func (e SettingsUpdated) EventName() string { return "settings.updated" }
