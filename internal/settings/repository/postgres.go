package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"phonelink_backend/internal/phonelink/domain"
)

// Migrations holds the goose migrations for the Postgres store.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of Migrations that goose reads.
const MigrationsDir = "migrations"

// settingsRowID pins the table to a single row.
const settingsRowID = 1

// Postgres implements Repository with a single-row PostgreSQL table.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new Postgres settings store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

var _ Repository = (*Postgres)(nil)

// Get retrieves the settings row.
func (r *Postgres) Get(ctx context.Context) (domain.Settings, error) {
	query := `
		SELECT region, format, linkify
		FROM phone_settings
		WHERE id = $1`

	var s domain.Settings
	var format int16
	err := r.pool.QueryRow(ctx, query, settingsRowID).Scan(&s.Region, &format, &s.Linkify)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Settings{}, errNotFound()
		}
		return domain.Settings{}, fmt.Errorf("get phone settings: %w", err)
	}
	s.Format = domain.Format(format)

	return s, nil
}

// Save upserts the settings row.
func (r *Postgres) Save(ctx context.Context, s domain.Settings) error {
	query := `
		INSERT INTO phone_settings (id, region, format, linkify, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE
		SET region = EXCLUDED.region,
		    format = EXCLUDED.format,
		    linkify = EXCLUDED.linkify,
		    updated_at = EXCLUDED.updated_at`

	if _, err := r.pool.Exec(ctx, query, settingsRowID, s.Region, int16(s.Format), s.Linkify); err != nil {
		return fmt.Errorf("save phone settings: %w", err)
	}
	return nil
}

// Ping checks database connectivity.
func (r *Postgres) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
