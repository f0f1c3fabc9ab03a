package migrations

import (
	"database/sql"
	"embed"
	"sync"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var MigrationFiles embed.FS

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// goose keeps its base FS and dialect in package globals.
var mu sync.Mutex

// Up applies all pending migrations of the dialect.
func Up(db *sql.DB, d Dialect) error {
	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(MigrationFiles)
	defer goose.SetBaseFS(nil)

	gooseDialect := "postgres"
	if d == DialectSQLite {
		gooseDialect = "sqlite3"
	}
	if err := goose.SetDialect(gooseDialect); err != nil {
		return errors.Wrap(err, "goose.SetDialect")
	}
	if err := goose.Up(db, string(d)); err != nil {
		return errors.Wrap(err, "goose.Up")
	}
	return nil
}
