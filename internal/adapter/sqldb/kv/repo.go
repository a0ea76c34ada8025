// Package kv implements the local key-value store used for box snapshots.
package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/boxstudy/internal/adapter/sqldb"
)

const table = "kv_store"

// Repo provides key-value persistence.
type Repo struct {
	db  *sqldb.DB
	now func() time.Time
}

// New creates a new key-value repository.
func New(db *sqldb.DB) *Repo {
	return &Repo{db: db, now: time.Now}
}

// Get returns the value stored under key. ok is false when the key is absent.
func (r *Repo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := r.db.Builder().
		Select("value").
		From(table).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build kv get: %w", err)
	}

	var value []byte
	err = sqldb.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, sqldb.MapError(err, "kv", key)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (r *Repo) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := r.db.Builder().
		Insert(table).
		Columns("key", "value", "updated_at").
		Values(key, value, r.now().UnixMilli()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build kv set: %w", err)
	}

	if _, err := sqldb.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return sqldb.MapError(err, "kv", key)
	}
	return nil
}

// Remove deletes key. Absent keys are not an error.
func (r *Repo) Remove(ctx context.Context, key string) error {
	query, args, err := r.db.Builder().
		Delete(table).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build kv remove: %w", err)
	}

	if _, err := sqldb.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return sqldb.MapError(err, "kv", key)
	}
	return nil
}

// Keys returns every key starting with prefix, ascending.
func (r *Repo) Keys(ctx context.Context, prefix string) ([]string, error) {
	query, args, err := r.db.Builder().
		Select("key").
		From(table).
		Where(sq.Expr("substr(key, 1, ?) = ?", utf8.RuneCountInString(prefix), prefix)).
		OrderBy("key ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build kv keys: %w", err)
	}

	rows, err := sqldb.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, sqldb.MapError(err, "kv prefix", prefix)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan kv key: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kv keys: %w", err)
	}
	return keys, nil
}
