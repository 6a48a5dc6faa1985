// Package service manages the plugin-wide phone link defaults.
package service

import (
	"context"

	"phonelink_backend/internal/events"
	"phonelink_backend/internal/phonelink/domain"
	"phonelink_backend/internal/settings/repository"
	"phonelink_backend/internal/settings/transport"
	"phonelink_backend/platform/apperr"
	"phonelink_backend/platform/logger"
)

const msgStoreUnavailable = "settings store unavailable"

// Service reads and writes the settings record.
type Service struct {
	repo     repository.Repository
	eventBus events.Bus
	log      *logger.Logger
}

// New creates a new settings service.
func New(repo repository.Repository, eventBus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, eventBus: eventBus, log: log}
}

// Get returns the stored settings. The defaults are persisted the first time
// nothing is found.
func (s *Service) Get(ctx context.Context) (domain.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if !apperr.Is(err, apperr.KindNotFound) {
		s.log.DatabaseError("get_settings", err)
		return domain.Settings{}, apperr.Unavailable(msgStoreUnavailable, err).WithOp("settings.Get")
	}

	settings = domain.DefaultSettings()
	if err := s.repo.Save(ctx, settings); err != nil {
		s.log.DatabaseError("create_default_settings", err)
		return domain.Settings{}, apperr.Unavailable(msgStoreUnavailable, err).WithOp("settings.Get")
	}
	return settings, nil
}

// Save normalizes a submission and persists it. Misconfigured values are
// corrected, never rejected.
func (s *Service) Save(ctx context.Context, req transport.SaveSettingsRequest, actor string) (domain.Settings, error) {
	settings := domain.Normalize(req.Raw())
	if err := s.repo.Save(ctx, settings); err != nil {
		s.log.DatabaseError("save_settings", err)
		return domain.Settings{}, apperr.Unavailable(msgStoreUnavailable, err).WithOp("settings.Save")
	}

	s.log.WithContext(ctx).SettingsSaved(settings.Region, settings.Format.String(), settings.Linkify)
	s.eventBus.Publish(ctx, events.SettingsUpdated{
		BaseEvent: events.NewBaseEvent(ctx),
		Region:    settings.Region,
		Format:    int(settings.Format),
		Linkify:   settings.Linkify,
		UpdatedBy: actor,
	})
	return settings, nil
}

// Ping reports whether the settings store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
