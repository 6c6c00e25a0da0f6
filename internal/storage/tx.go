package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// WithTx runs fn in a transaction. It commits when fn succeeds and rolls back otherwise.
func WithTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// ResetBoard replaces the snapshot stored under key and empties the completion
// journal in one transaction, so a failed reset leaves both untouched.
func ResetBoard(ctx context.Context, db *sqlx.DB, key string, snapshot []byte) error {
	return WithTx(ctx, db, func(tx *sqlx.Tx) error {
		if err := clearCompletions(ctx, tx); err != nil {
			return err
		}
		return putKV(ctx, tx, key, snapshot)
	})
}
