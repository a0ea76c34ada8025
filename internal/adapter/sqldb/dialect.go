package sqldb

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
)

// Dialect describes the per-driver differences the repositories care about.
type Dialect struct {
	Name        string // driver name registered with database/sql
	Goose       goose.Dialect
	Placeholder sq.PlaceholderFormat
	// MigrationsDir is the embedded directory holding this dialect's migrations.
	MigrationsDir string
	// SingleWriter limits the pool to one connection.
	SingleWriter bool
}

var (
	// SQLite is the embedded store, backed by mattn/go-sqlite3.
	SQLite = Dialect{
		Name:          "sqlite3",
		Goose:         goose.DialectSQLite3,
		Placeholder:   sq.Question,
		MigrationsDir: "migrations/sqlite",
		SingleWriter:  true,
	}

	// Postgres is the server dialect, backed by the pgx stdlib driver.
	Postgres = Dialect{
		Name:          "pgx",
		Goose:         goose.DialectPostgres,
		Placeholder:   sq.Dollar,
		MigrationsDir: "migrations/postgres",
	}
)

// DialectFor resolves a configured driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case SQLite.Name:
		return SQLite, nil
	case Postgres.Name:
		return Postgres, nil
	}
	return Dialect{}, fmt.Errorf("sqldb: unsupported driver %q", driver)
}
