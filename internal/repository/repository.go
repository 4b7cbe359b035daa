package repository

import (
	"context"
	"errors"

	"github.com/Mouhib912/Event-Management-Platform/internal/apierror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes surfaced to clients as conflicts.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// session returns tx when the caller runs inside a transaction, db otherwise.
func session(ctx context.Context, db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// translateError maps constraint violations onto conflict errors and passes
// everything else through untouched.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apierror.Conflict("A record with the same value already exists", err)
		case pgForeignKeyViolation:
			return apierror.Conflict("Record is still referenced by other data", err)
		}
	}
	return err
}
