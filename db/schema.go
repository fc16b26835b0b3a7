package db

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

const schemaTemplate = `
CREATE SCHEMA IF NOT EXISTS %[1]s;

CREATE TABLE IF NOT EXISTS %[1]s.bots (
	id          TEXT PRIMARY KEY,
	owner_id    TEXT NOT NULL,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS bots_owner_id_idx ON %[1]s.bots (owner_id);

CREATE TABLE IF NOT EXISTS %[1]s.commands (
	id             TEXT PRIMARY KEY,
	bot_id         TEXT NOT NULL REFERENCES %[1]s.bots (id) ON DELETE CASCADE,
	name           TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	user_code      TEXT,
	generated_code TEXT,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS commands_bot_id_idx ON %[1]s.commands (bot_id, created_at);

CREATE TABLE IF NOT EXISTS %[1]s.env_vars (
	id          TEXT PRIMARY KEY,
	bot_id      TEXT NOT NULL REFERENCES %[1]s.bots (id) ON DELETE CASCADE,
	key         TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS env_vars_bot_id_idx ON %[1]s.env_vars (bot_id, created_at);
`

// EnsureSchema creates the schema and its tables when they do not exist yet
func EnsureSchema(ctx context.Context, db *sqlx.DB, schema string) error {
	if _, err := db.ExecContext(ctx, fmt.Sprintf(schemaTemplate, schema)); err != nil {
		return fmt.Errorf("failed to ensure schema %s: %w", schema, err)
	}

	log.Printf("✅ Database schema %s is ready", schema)
	return nil
}
