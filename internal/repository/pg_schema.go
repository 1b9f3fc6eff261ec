package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// pgSchema is applied statement by statement; every statement is idempotent.
var pgSchema = []string{
	`CREATE TABLE IF NOT EXISTS contacts (
		id              UUID PRIMARY KEY,
		first_name      TEXT NOT NULL,
		last_name       TEXT NOT NULL,
		email           TEXT NOT NULL,
		organization    TEXT NOT NULL,
		phone           TEXT,
		role            TEXT,
		department_size TEXT,
		inquiry_type    TEXT,
		message         TEXT,
		status          TEXT NOT NULL,
		source          TEXT NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS contacts_status_created_at_idx ON contacts (status, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS contacts_created_at_idx ON contacts (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS blog_posts (
		id           UUID PRIMARY KEY,
		title        TEXT NOT NULL,
		excerpt      TEXT NOT NULL DEFAULT '',
		content      TEXT NOT NULL,
		author       TEXT NOT NULL,
		author_role  TEXT,
		published_at TIMESTAMPTZ NOT NULL,
		category     TEXT NOT NULL DEFAULT '',
		tags         TEXT[] NOT NULL DEFAULT '{}',
		featured     BOOLEAN NOT NULL DEFAULT false,
		slug         TEXT NOT NULL DEFAULT '',
		read_time    TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL,
		seed_key     TEXT UNIQUE
	)`,
	`CREATE INDEX IF NOT EXISTS blog_posts_published_at_idx ON blog_posts (published_at DESC)`,
}

func ensurePgSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range pgSchema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
