package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Коды ошибок PostgreSQL, которые транслируются в доменные ошибки
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// pgError извлекает *pgconn.PgError с указанным кодом.
func pgError(err error, code string) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr, true
	}
	return nil, false
}

func isUniqueViolation(err error) (*pgconn.PgError, bool) {
	return pgError(err, pgUniqueViolation)
}

func isForeignKeyViolation(err error) (*pgconn.PgError, bool) {
	return pgError(err, pgForeignKeyViolation)
}

func isCheckViolation(err error) (*pgconn.PgError, bool) {
	return pgError(err, pgCheckViolation)
}
