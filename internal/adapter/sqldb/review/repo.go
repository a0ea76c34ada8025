// Package review implements the durable review-record table.
// Timestamps are stored as unix milliseconds so both dialects compare them
// as plain integers.
package review

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/boxstudy/internal/adapter/sqldb"
	"github.com/heartmarshall/boxstudy/internal/domain"
)

const table = "reviews"

var columns = []string{"word_id", "scope_key", "stage", "next_review_at", "learned_at"}

// hasContent keeps only records whose word still exists.
var hasContent = sq.Expr("EXISTS (SELECT 1 FROM words w WHERE w.id = " + table + ".word_id)")

// Repo provides review record persistence.
type Repo struct {
	db *sqldb.DB
}

// New creates a new review repository.
func New(db *sqldb.DB) *Repo {
	return &Repo{db: db}
}

// Upsert inserts the record or updates stage and next_review_at of an
// existing one. learned_at is only written on insert.
func (r *Repo) Upsert(ctx context.Context, rec domain.ReviewRecord) error {
	query, args, err := r.db.Builder().
		Insert(table).
		Columns("word_id", "scope_key", "scope_prefix", "level", "stage", "next_review_at", "learned_at").
		Values(
			rec.WordID,
			rec.Scope.Key(),
			rec.Scope.Prefix(),
			rec.Scope.LevelLabel(),
			rec.Stage,
			rec.NextReviewAt.UnixMilli(),
			rec.LearnedAt.UnixMilli(),
		).
		Suffix("ON CONFLICT (word_id, scope_key) DO UPDATE SET stage = excluded.stage, next_review_at = excluded.next_review_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert review: %w", err)
	}

	if _, err := sqldb.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return sqldb.MapError(err, "review", rec.WordID)
	}
	return nil
}

// Get returns the record for a word in a scope or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, scope domain.Scope, wordID int64) (domain.ReviewRecord, error) {
	query, args, err := r.db.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"word_id": wordID, "scope_key": scope.Key()}).
		ToSql()
	if err != nil {
		return domain.ReviewRecord{}, fmt.Errorf("build get review: %w", err)
	}

	row := sqldb.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...)
	rec, err := scanRecord(row)
	if err != nil {
		return domain.ReviewRecord{}, sqldb.MapError(err, "review", wordID)
	}
	return rec, nil
}

// Delete removes the record. Reports whether a row existed.
func (r *Repo) Delete(ctx context.Context, scope domain.Scope, wordID int64) (bool, error) {
	query, args, err := r.db.Builder().
		Delete(table).
		Where(sq.Eq{"word_id": wordID, "scope_key": scope.Key()}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete review: %w", err)
	}

	res, err := sqldb.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return false, sqldb.MapError(err, "review", wordID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete review rows affected: %w", err)
	}
	return n > 0, nil
}

// DeleteScope removes every record of a scope and returns how many were deleted.
func (r *Repo) DeleteScope(ctx context.Context, scope domain.Scope) (int, error) {
	query, args, err := r.db.Builder().
		Delete(table).
		Where(sq.Eq{"scope_key": scope.Key()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete scope reviews: %w", err)
	}

	res, err := sqldb.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, sqldb.MapError(err, "reviews of scope", scope.Key())
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete scope reviews rows affected: %w", err)
	}
	return int(n), nil
}

// ListDue returns up to limit records with next_review_at <= now, ordered by
// next_review_at then word_id. Records of deleted words are not returned.
func (r *Repo) ListDue(ctx context.Context, scope domain.Scope, now time.Time, limit int) ([]domain.ReviewRecord, error) {
	if limit <= 0 {
		return []domain.ReviewRecord{}, nil
	}

	query, args, err := r.db.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"scope_key": scope.Key()}).
		Where(sq.LtOrEq{"next_review_at": now.UnixMilli()}).
		Where(hasContent).
		OrderBy("next_review_at ASC", "word_id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list due reviews: %w", err)
	}

	rows, err := sqldb.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, sqldb.MapError(err, "due reviews of scope", scope.Key())
	}
	defer rows.Close()

	out := make([]domain.ReviewRecord, 0, limit)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate due reviews: %w", err)
	}
	return out, nil
}

// CountDue counts records of a scope with next_review_at <= now whose word
// still exists.
func (r *Repo) CountDue(ctx context.Context, scope domain.Scope, now time.Time) (int, error) {
	query, args, err := r.db.Builder().
		Select("count(*)").
		From(table).
		Where(sq.Eq{"scope_key": scope.Key()}).
		Where(sq.LtOrEq{"next_review_at": now.UnixMilli()}).
		Where(hasContent).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count due reviews: %w", err)
	}

	var n int
	if err := sqldb.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, sqldb.MapError(err, "due reviews of scope", scope.Key())
	}
	return n, nil
}

// CountDueByLevel counts due records of a scope group bucketed by level label.
func (r *Repo) CountDueByLevel(ctx context.Context, prefix string, now time.Time) (map[string]int, error) {
	return r.countByLevel(ctx, sq.And{
		sq.Eq{"scope_prefix": prefix},
		sq.LtOrEq{"next_review_at": now.UnixMilli()},
	}, prefix)
}

// CountByLevel counts all records of a scope group bucketed by level label.
func (r *Repo) CountByLevel(ctx context.Context, prefix string) (map[string]int, error) {
	return r.countByLevel(ctx, sq.Eq{"scope_prefix": prefix}, prefix)
}

func (r *Repo) countByLevel(ctx context.Context, where sq.Sqlizer, prefix string) (map[string]int, error) {
	query, args, err := r.db.Builder().
		Select("level", "count(*)").
		From(table).
		Where(where).
		GroupBy("level").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count reviews by level: %w", err)
	}

	rows, err := sqldb.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, sqldb.MapError(err, "reviews of group", prefix)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			level string
			n     int
		)
		if err := rows.Scan(&level, &n); err != nil {
			return nil, fmt.Errorf("scan level count: %w", err)
		}
		out[level] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate level counts: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (domain.ReviewRecord, error) {
	var (
		rec                 domain.ReviewRecord
		scopeKey            string
		nextReview, learned int64
	)
	if err := s.Scan(&rec.WordID, &scopeKey, &rec.Stage, &nextReview, &learned); err != nil {
		return domain.ReviewRecord{}, err
	}

	scope, err := domain.ParseScope(scopeKey)
	if err != nil {
		return domain.ReviewRecord{}, fmt.Errorf("review %d: %w: %v", rec.WordID, domain.ErrCorruptKey, err)
	}
	rec.Scope = scope
	rec.NextReviewAt = time.UnixMilli(nextReview).UTC()
	rec.LearnedAt = time.UnixMilli(learned).UTC()
	return rec, nil
}
