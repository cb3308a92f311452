package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS monasteries (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT NOT NULL,
		district TEXT NOT NULL,
		altitude TEXT NOT NULL,
		tradition TEXT NOT NULL,
		description TEXT NOT NULL,
		founded TEXT NOT NULL,
		architecture TEXT NOT NULL,
		spiritual_significance TEXT NOT NULL,
		main_image TEXT NOT NULL,
		gallery_images TEXT[] NOT NULL DEFAULT '{}',
		panoramic_images TEXT[] NOT NULL DEFAULT '{}',
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		highlights TEXT[] NOT NULL DEFAULT '{}',
		visiting_hours TEXT NOT NULL,
		entrance_fee TEXT NOT NULL,
		accessibility TEXT NOT NULL,
		cultural_importance TEXT NOT NULL,
		festivals JSONB NOT NULL DEFAULT '[]',
		travel_info JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS chat_messages (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		user_message TEXT NOT NULL,
		ai_response TEXT NOT NULL,
		monastery_context TEXT,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_messages_session
		ON chat_messages (session_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS status_checks (
		id TEXT PRIMARY KEY,
		client_name TEXT NOT NULL,
		timestamp TIMESTAMPTZ NOT NULL
	)`,
}

// EnsureSchema creates the tables this service needs. Statements are
// idempotent, so it is safe to run on every start.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
