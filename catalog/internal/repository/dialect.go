package repository

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-catalog/pkg/sqlite"
)

type dialect uint8

const (
	dialectPostgres dialect = iota + 1
	dialectSQLite
)

func dialectOf(driver string) (dialect, error) {
	switch driver {
	case "pgx", "postgres":
		return dialectPostgres, nil
	case sqlite.DriverName, "sqlite3":
		return dialectSQLite, nil
	default:
		return 0, errors.Errorf("unsupported driver %q", driver)
	}
}

func (d dialect) placeholder() sq.PlaceholderFormat {
	if d == dialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// lower wraps a text column in the dialect's Unicode-aware lowercase function.
func (d dialect) lower(column string) string {
	if d == dialectSQLite {
		return sqlite.FuncCasefold + "(" + column + ")"
	}
	return "LOWER(" + column + ")"
}

func (d dialect) isUniqueViolation(err error) bool {
	switch d {
	case dialectPostgres:
		var pgErr *pgconn.PgError
		return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
	case dialectSQLite:
		var liteErr sqlite3.Error
		return errors.As(err, &liteErr) && liteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
