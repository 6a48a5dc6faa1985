package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonelink_backend/internal/events"
	"phonelink_backend/internal/phonelink/domain"
	"phonelink_backend/internal/settings/repository"
	"phonelink_backend/internal/settings/transport"
	"phonelink_backend/platform/apperr"
	platformevents "phonelink_backend/platform/events"
	"phonelink_backend/platform/logger"
)

var errStoreDown = errors.New("connection refused")

type brokenRepo struct {
	repository.Memory
}

func (*brokenRepo) Get(context.Context) (domain.Settings, error) {
	return domain.Settings{}, errStoreDown
}

func newTestService(repo repository.Repository) (*Service, *platformevents.InMemoryBus) {
	bus := platformevents.NewInMemoryBus(nil)
	return New(repo, bus, logger.NewWithWriter("production", io.Discard)), bus
}

func TestGetPersistsDefaultsOnFirstAccess(t *testing.T) {
	repo := repository.NewMemory()
	svc, _ := newTestService(repo)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)

	stored, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), stored)
}

func TestGetReportsUnavailableStore(t *testing.T) {
	svc, _ := newTestService(&brokenRepo{})

	_, err := svc.Get(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUnavailable))
	assert.ErrorIs(t, err, errStoreDown)
}

func TestSaveNormalizesSubmission(t *testing.T) {
	tests := []struct {
		name string
		req  transport.SaveSettingsRequest
		want domain.Settings
	}{
		{
			name: "valid values",
			req:  transport.SaveSettingsRequest{Region: "nl", Format: "2", Linkify: "true"},
			want: domain.Settings{Region: "NL", Format: domain.FormatNational, Linkify: true},
		},
		{
			name: "long region is truncated",
			req:  transport.SaveSettingsRequest{Region: "usa", Format: "3", Linkify: "false"},
			want: domain.Settings{Region: "US", Format: domain.FormatRFC3966, Linkify: false},
		},
		{
			name: "garbage is corrected",
			req:  transport.SaveSettingsRequest{Region: "1x", Format: "12", Linkify: "yes"},
			want: domain.Settings{Region: "", Format: domain.FormatInternational, Linkify: false},
		},
		{
			name: "non-numeric format becomes E164",
			req:  transport.SaveSettingsRequest{Region: "", Format: "national", Linkify: "true"},
			want: domain.Settings{Region: "", Format: domain.FormatE164, Linkify: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewMemory()
			svc, _ := newTestService(repo)

			got, err := svc.Save(context.Background(), tt.req, "tester")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			stored, err := repo.Get(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, stored)
		})
	}
}

func TestSavePublishesSettingsUpdated(t *testing.T) {
	svc, bus := newTestService(repository.NewMemory())

	received := make(chan events.SettingsUpdated, 1)
	bus.Subscribe(events.SettingsUpdated{}.EventName(), events.HandlerFunc(func(_ context.Context, e events.Event) error {
		received <- e.(events.SettingsUpdated)
		return nil
	}))

	_, err := svc.Save(context.Background(), transport.SaveSettingsRequest{Region: "de", Format: "0", Linkify: "true"}, "admin-1")
	require.NoError(t, err)
	bus.Wait()

	e := <-received
	assert.Equal(t, "DE", e.Region)
	assert.Equal(t, int(domain.FormatE164), e.Format)
	assert.True(t, e.Linkify)
	assert.Equal(t, "admin-1", e.UpdatedBy)
}
