package utils

import (
	"context"
	"errors"

	"expense-tracker/internal/interfaces"

	"github.com/jackc/pgx/v5"
)

// RunInTransaction begins a transaction, stores it in the context handed to fn and
// commits when fn succeeds. Any error from fn rolls the transaction back and is returned unchanged.
// Nested calls reuse the transaction that is already open.
func RunInTransaction(ctx context.Context, pool interfaces.PgxPoolIface, fn func(txCtx context.Context) error) error {
	if _, ok := ctx.Value(TransactionKey).(pgx.Tx); ok {
		return fn(ctx)
	}

	LogMessageWithFields(ctx, "debug", "Beginning transaction...")
	tx, err := pool.Begin(ctx)
	if err != nil {
		LogMessageWithFieldsAndError(ctx, "error", "Error beginning transaction", err)
		return err
	}

	if err := fn(context.WithValue(ctx, TransactionKey, tx)); err != nil {
		RollbackTransaction(ctx, tx)
		return err
	}

	return CommitTransaction(ctx, tx)
}

// RollbackTransaction rolls back the given transaction and logs any error, except if the transaction is already closed.
func RollbackTransaction(ctx context.Context, tx pgx.Tx) {
	LogMessageWithFields(ctx, "debug", "Rolling back transaction...")

	if err := tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return
		}
		LogMessageWithFieldsAndError(ctx, "error", "Error rolling back transaction", err)
		return
	}
	LogMessageWithFields(ctx, "debug", "Transaction rolled back")
}

// CommitTransaction attempts to commit the given transaction and logs the result.
func CommitTransaction(ctx context.Context, tx pgx.Tx) error {
	LogMessageWithFields(ctx, "debug", "Committing transaction...")

	if err := tx.Commit(ctx); err != nil {
		LogMessageWithFieldsAndError(ctx, "error", "Error committing transaction", err)
		return err
	}

	LogMessageWithFields(ctx, "debug", "Transaction committed")
	return nil
}

// QuerierFromContext returns the transaction opened by RunInTransaction, falling back to the pool.
func QuerierFromContext(ctx context.Context, pool interfaces.PgxPoolIface) interfaces.Querier {
	if tx, ok := ctx.Value(TransactionKey).(pgx.Tx); ok {
		return tx
	}
	return pool
}
