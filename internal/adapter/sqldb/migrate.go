package sqldb

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// Migrations returns the embedded migration files for a dialect.
func Migrations(d Dialect) (fs.FS, error) {
	sub, err := fs.Sub(migrationsFS, d.MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("sqldb: migrations for %s: %w", d.Name, err)
	}
	return sub, nil
}

// NewMigrator builds a goose provider over the embedded migrations.
func NewMigrator(db *DB) (*goose.Provider, error) {
	fsys, err := Migrations(db.dialect)
	if err != nil {
		return nil, err
	}
	provider, err := goose.NewProvider(db.dialect.Goose, db.DB, fsys)
	if err != nil {
		return nil, fmt.Errorf("sqldb: goose provider: %w", err)
	}
	return provider, nil
}

// Migrate applies all pending migrations and returns how many were applied.
func Migrate(ctx context.Context, db *DB) (int, error) {
	provider, err := NewMigrator(db)
	if err != nil {
		return 0, err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("sqldb: goose up: %w", err)
	}
	return len(results), nil
}
