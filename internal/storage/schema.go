package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

func Migrate(ctx context.Context, db *sqlx.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at DATETIME NOT NULL
		);`,
		// Append-only audit of quest completions; the snapshot in kv remains the source of state.
		`CREATE TABLE IF NOT EXISTS quest_completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			quest_id TEXT NOT NULL,
			title TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			xp_awarded INTEGER NOT NULL,
			coins_awarded INTEGER NOT NULL,
			level_after INTEGER NOT NULL,
			completed_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_quest_completions_completed_at ON quest_completions(completed_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
