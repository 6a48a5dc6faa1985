// Package repository persists the phone link settings record.
package repository

import (
	"context"

	"phonelink_backend/internal/phonelink/domain"
	"phonelink_backend/platform/apperr"
)

const settingsNotFoundMessage = "phone settings not found"

// Repository stores the single plugin-wide settings record.
type Repository interface {
	// Get returns the stored record, or an apperr.KindNotFound error when
	// nothing has been saved yet.
	Get(ctx context.Context) (domain.Settings, error)
	// Save replaces the stored record.
	Save(ctx context.Context, settings domain.Settings) error
	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
}

func errNotFound() error {
	return apperr.NotFound(settingsNotFoundMessage)
}
