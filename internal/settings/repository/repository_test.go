package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonelink_backend/internal/phonelink/domain"
	"phonelink_backend/platform/apperr"
)

var saved = domain.Settings{Region: "NL", Format: domain.FormatNational, Linkify: false}

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedis(client, "phonelink:settings"), mr
}

func TestStoresRoundTrip(t *testing.T) {
	redisStore, _ := newTestRedis(t)
	stores := map[string]Repository{
		"memory": NewMemory(),
		"redis":  redisStore,
		"cached": NewCached(NewMemory(), time.Minute),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := store.Get(ctx)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.KindNotFound))

			require.NoError(t, store.Save(ctx, saved))
			got, err := store.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, saved, got)

			require.NoError(t, store.Save(ctx, domain.DefaultSettings()))
			got, err = store.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, domain.DefaultSettings(), got)

			assert.NoError(t, store.Ping(ctx))
		})
	}
}

func TestRedisStoresRawHash(t *testing.T) {
	store, mr := newTestRedis(t)
	require.NoError(t, store.Save(context.Background(), saved))

	assert.Equal(t, "NL", mr.HGet("phonelink:settings", "region"))
	assert.Equal(t, "2", mr.HGet("phonelink:settings", "format"))
	assert.Equal(t, "false", mr.HGet("phonelink:settings", "linkify"))
}

func TestRedisNormalizesHandEditedHash(t *testing.T) {
	store, mr := newTestRedis(t)
	mr.HSet("phonelink:settings", "region", "germany", "format", "9", "linkify", "TRUE")

	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{Region: "GE", Format: domain.FormatInternational, Linkify: false}, got)
}

func TestRedisUnavailable(t *testing.T) {
	store, mr := newTestRedis(t)
	mr.Close()

	_, err := store.Get(context.Background())
	require.Error(t, err)
	assert.False(t, apperr.Is(err, apperr.KindNotFound))
	assert.Error(t, store.Ping(context.Background()))
}

type countingRepo struct {
	Memory
	gets int
	err  error
}

func (c *countingRepo) Get(ctx context.Context) (domain.Settings, error) {
	c.gets++
	if c.err != nil {
		return domain.Settings{}, c.err
	}
	return c.Memory.Get(ctx)
}

func TestCachedServesRepeatReadsFromCache(t *testing.T) {
	next := &countingRepo{}
	require.NoError(t, next.Save(context.Background(), saved))
	cached := NewCached(next, time.Minute)

	for range 3 {
		got, err := cached.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, saved, got)
	}
	assert.Equal(t, 1, next.gets)
}

func TestCachedSaveReplacesEntry(t *testing.T) {
	next := &countingRepo{}
	cached := NewCached(next, time.Minute)
	ctx := context.Background()

	require.NoError(t, cached.Save(ctx, saved))
	got, err := cached.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	require.NoError(t, cached.Save(ctx, domain.DefaultSettings()))
	got, err = cached.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)
	assert.Equal(t, 0, next.gets)
}

// slowRepo returns a fixed record from Get after release is closed.
type slowRepo struct {
	Memory
	record  domain.Settings
	started chan struct{}
	release chan struct{}
}

func (s *slowRepo) Get(context.Context) (domain.Settings, error) {
	close(s.started)
	<-s.release
	return s.record, nil
}

func TestCachedIgnoresReadOverlappingSave(t *testing.T) {
	next := &slowRepo{
		record:  saved,
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	cached := NewCached(next, time.Minute)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = cached.Get(ctx)
	}()

	<-next.started
	require.NoError(t, cached.Save(ctx, domain.DefaultSettings()))
	close(next.release)
	<-done

	got, err := cached.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)
}

func TestCachedDoesNotCacheErrors(t *testing.T) {
	next := &countingRepo{err: errors.New("connection refused")}
	cached := NewCached(next, time.Minute)
	ctx := context.Background()

	_, err := cached.Get(ctx)
	require.EqualError(t, err, "connection refused")

	next.err = nil
	require.NoError(t, next.Save(ctx, saved))
	got, err := cached.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
	assert.Equal(t, 2, next.gets)
}
