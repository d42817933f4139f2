package service

import (
	"context"
	"errors"
	"fmt"

	"coin-ledger/internal/core/ports"
	"coin-ledger/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

// withTx runs fn in a transaction and commits when it succeeds. Errors that
// are not already AppErrors become SYS_001.
func withTx(ctx context.Context, transactor ports.DBTransactor, fn func(ctx context.Context, dbTx pgx.Tx) error) error {
	dbTx, err := transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := fn(ctx, dbTx); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return apperror.InternalError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}
