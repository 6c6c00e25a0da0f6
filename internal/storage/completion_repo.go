package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type CompletionRepo struct {
	db *sqlx.DB
}

func NewCompletionRepo(db *sqlx.DB) *CompletionRepo {
	return &CompletionRepo{db: db}
}

func (r *CompletionRepo) Insert(ctx context.Context, c Completion) (int64, error) {
	if c.CompletedAt.IsZero() {
		c.CompletedAt = time.Now()
	}
	c.CompletedAt = c.CompletedAt.UTC()
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO quest_completions (quest_id, title, difficulty, xp_awarded, coins_awarded, level_after, completed_at)
		VALUES (:quest_id, :title, :difficulty, :xp_awarded, :coins_awarded, :level_after, :completed_at)
	`, c)
	if err != nil {
		return 0, fmt.Errorf("completion insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("completion last insert id: %w", err)
	}
	return id, nil
}

// Recent returns up to limit completions, newest first.
func (r *CompletionRepo) Recent(ctx context.Context, limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []Completion
	err := r.db.SelectContext(ctx, &out, `
		SELECT id, quest_id, title, difficulty, xp_awarded, coins_awarded, level_after, completed_at
		FROM quest_completions
		ORDER BY completed_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("completion recent: %w", err)
	}
	return out, nil
}

func (r *CompletionRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM quest_completions WHERE completed_at >= ?`, since.UTC()); err != nil {
		return 0, fmt.Errorf("completion count: %w", err)
	}
	return n, nil
}

// Clear empties the journal and restarts its ids.
func (r *CompletionRepo) Clear(ctx context.Context) error {
	return WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return clearCompletions(ctx, tx)
	})
}

func clearCompletions(ctx context.Context, tx *sqlx.Tx) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM quest_completions`); err != nil {
		return fmt.Errorf("completion clear: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sqlite_sequence WHERE name = 'quest_completions'`); err != nil {
		return fmt.Errorf("completion reset ids: %w", err)
	}
	return nil
}
