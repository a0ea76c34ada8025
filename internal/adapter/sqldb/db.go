// Package sqldb is the relational storage layer: connection setup for the
// embedded SQLite store or PostgreSQL, embedded goose migrations, the
// context-carried transaction pattern and driver error mapping. Each table
// has its own repository subpackage built on squirrel.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	_ "github.com/mattn/go-sqlite3"    // sqlite3 driver for database/sql

	"github.com/heartmarshall/boxstudy/internal/config"
)

// DB is a *sql.DB bound to a dialect.
type DB struct {
	*sql.DB
	dialect Dialect
}

// Open connects, configures the pool and verifies connectivity with a ping.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dialect.Name, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("sqldb: open: %w", err)
	}

	if dialect.SingleWriter {
		db.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxConnLifetime > 0 {
		db.SetConnMaxLifetime(cfg.MaxConnLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqldb: ping: %w", err)
	}

	return &DB{DB: db, dialect: dialect}, nil
}

// Wrap binds an already opened *sql.DB to a dialect.
func Wrap(db *sql.DB, dialect Dialect) *DB {
	return &DB{DB: db, dialect: dialect}
}

// Dialect returns the dialect the database was opened with.
func (d *DB) Dialect() Dialect { return d.dialect }

// Builder returns a squirrel statement builder using the dialect's placeholders.
func (d *DB) Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.dialect.Placeholder)
}
