package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"phonelink_backend/internal/phonelink/domain"
)

const (
	fieldRegion  = "region"
	fieldFormat  = "format"
	fieldLinkify = "linkify"
)

// Redis stores the settings as a hash at a single key. Values are kept in
// their submitted string form and normalized on read.
type Redis struct {
	client *redis.Client
	key    string
}

// NewRedis creates a Redis settings store writing to key.
func NewRedis(client *redis.Client, key string) *Redis {
	return &Redis{client: client, key: key}
}

var _ Repository = (*Redis)(nil)

func (r *Redis) Get(ctx context.Context) (domain.Settings, error) {
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return domain.Settings{}, fmt.Errorf("get phone settings: %w", err)
	}
	if len(fields) == 0 {
		return domain.Settings{}, errNotFound()
	}

	return domain.Normalize(domain.RawSettings{
		Region:  fields[fieldRegion],
		Format:  fields[fieldFormat],
		Linkify: fields[fieldLinkify],
	}), nil
}

func (r *Redis) Save(ctx context.Context, s domain.Settings) error {
	raw := s.Raw()
	err := r.client.HSet(ctx, r.key,
		fieldRegion, raw.Region,
		fieldFormat, raw.Format,
		fieldLinkify, raw.Linkify,
	).Err()
	if err != nil {
		return fmt.Errorf("save phone settings: %w", err)
	}
	return nil
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
