package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tasklist/internal/models"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return storageErr("begin transaction", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit transaction", err)
	}

	return nil
}

// storageErr tags a driver error so callers can match ErrStorageUnavailable
// while keeping the original error in the chain.
func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", models.ErrStorageUnavailable, op, err)
}

// requireAffected maps a zero-row write to ErrTaskNotFound
func requireAffected(result sql.Result, op string, id int) error {
	n, err := result.RowsAffected()
	if err != nil {
		return storageErr(op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", op, id, models.ErrTaskNotFound)
	}
	return nil
}
