package repository

import (
	"context"
	"database/sql"
	"errors"

	"stockroom/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so the same repository code
// runs standalone or inside a transaction opened by the stock engine.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Postgres SQLSTATE codes translated into the domain error taxonomy.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateProductError maps driver-level constraint violations onto domain
// errors so raw engine errors never leak past the repository.
func translateProductError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		if pgErr.ConstraintName == "idx_products_code" {
			return domain.ErrDuplicateCode
		}
		return domain.ErrDuplicateName
	case pgForeignKeyViolation:
		return domain.ErrProductHasSales
	}
	return err
}
