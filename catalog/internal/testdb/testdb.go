// Package testdb opens migrated databases for integration tests.
package testdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-catalog/catalog/migrations"
	"github.com/Astemirdum/library-catalog/pkg/postgres"
	"github.com/Astemirdum/library-catalog/pkg/sqlite"
)

const EnvPostgresURL = "TEST_DATABASE_URL"

func init() {
	goose.SetLogger(goose.NopLogger())
}

// SQLite returns a fresh migrated database file under t.TempDir().
func SQLite(t testing.TB) *sqlx.DB {
	t.Helper()
	db, err := sqlite.NewSQLiteDB(context.Background(), &sqlite.DB{
		Path: filepath.Join(t.TempDir(), "catalog.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(db.DB, migrations.DialectSQLite))
	return db
}

// Postgres connects to TEST_DATABASE_URL and empties the tables. The test is
// skipped when the variable is unset.
func Postgres(t testing.TB) *sqlx.DB {
	t.Helper()
	dsn := os.Getenv(EnvPostgresURL)
	if dsn == "" {
		t.Skipf("%s not set", EnvPostgresURL)
	}
	ctx := context.Background()
	db, err := postgres.Open(ctx, dsn, 10, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(db.DB, migrations.DialectPostgres))
	_, err = db.ExecContext(ctx, `TRUNCATE borrow_records, books RESTART IDENTITY`)
	require.NoError(t, err)
	return db
}
