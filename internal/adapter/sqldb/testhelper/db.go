// Package testhelper provides migrated databases and seed data for
// repository and service tests.
package testhelper

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/heartmarshall/boxstudy/internal/adapter/sqldb"
	"github.com/heartmarshall/boxstudy/internal/config"
)

var dbSeq atomic.Int64

// SetupTestDB opens a private in-memory SQLite database, applies the
// embedded migrations and closes it via t.Cleanup.
func SetupTestDB(t *testing.T) *sqldb.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_foreign_keys=on", dbSeq.Add(1))
	db, err := sqldb.Open(ctx, config.DatabaseConfig{Driver: sqldb.SQLite.Name, DSN: dsn})
	if err != nil {
		t.Fatalf("testhelper: open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := sqldb.Migrate(ctx, db); err != nil {
		t.Fatalf("testhelper: migrate sqlite: %v", err)
	}

	return db
}
