package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// DriverName is go-sqlite3 with the catalog's SQL functions attached to every connection.
const DriverName = "sqlite3_catalog"

// FuncCasefold lowers text with Unicode rules; the built-in LOWER folds ASCII only.
const FuncCasefold = "casefold"

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc(FuncCasefold, strings.ToLower, true)
		},
	})
	sqlx.BindDriver(DriverName, sqlx.QUESTION)
}

type DB struct {
	Path string `yaml:"path" envconfig:"SQLITE_PATH" default:"data/catalog.db"`
}

// NewSQLiteDB opens (or creates) the database file. A single connection is
// kept open so write transactions queue instead of failing with SQLITE_BUSY.
func NewSQLiteDB(ctx context.Context, cfg *DB) (*sqlx.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create db dir")
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1&_journal_mode=WAL&_loc=UTC", cfg.Path)
	db, err := sqlx.Open(DriverName, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "sqlx.Open")
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "db.Ping")
	}
	return db, nil
}
