package postgres

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const DriverName = "pgx"

type DB struct {
	Host         string        `yaml:"host" envconfig:"DB_HOST" default:"localhost"`
	Port         int           `yaml:"port" envconfig:"DB_PORT" default:"5432"`
	Username     string        `yaml:"user" envconfig:"DB_USER" default:"postgres"`
	Password     string        `yaml:"password" envconfig:"DB_PASSWORD" json:"-"`
	NameDB       string        `yaml:"dbname" envconfig:"DB_NAME" default:"catalog"`
	SSLMode      string        `yaml:"sslmode" envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenConns int           `yaml:"maxOpenConns" envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	ConnLifetime time.Duration `yaml:"connLifetime" envconfig:"DB_CONN_LIFETIME" default:"5m"`
}

func (c *DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Username, c.Password, net.JoinHostPort(c.Host, strconv.Itoa(c.Port)), c.NameDB, c.SSLMode)
}

func NewPostgresDB(ctx context.Context, cfg *DB) (*sqlx.DB, error) {
	return Open(ctx, cfg.DSN(), cfg.MaxOpenConns, cfg.ConnLifetime)
}

func Open(ctx context.Context, dsn string, maxOpen int, lifetime time.Duration) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverName, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "sqlx.Open")
	}
	if maxOpen > 0 {
		db.SetMaxOpenConns(maxOpen)
		db.SetMaxIdleConns(maxOpen)
	}
	if lifetime > 0 {
		db.SetConnMaxLifetime(lifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "db.Ping")
	}
	return db, nil
}
