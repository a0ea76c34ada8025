// Package event stores learning analytics: one row per answered card and
// per-word counters of box moves.
package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/boxstudy/internal/adapter/sqldb"
	"github.com/heartmarshall/boxstudy/internal/domain"
)

// Repo provides learning event persistence.
type Repo struct {
	db *sqldb.DB
}

// New creates a new learning event repository.
func New(db *sqldb.DB) *Repo {
	return &Repo{db: db}
}

// Create stores one learning event.
func (r *Repo) Create(ctx context.Context, e domain.LearningEvent) error {
	var box, duration any
	if e.Box != "" {
		box = string(e.Box)
	}
	if e.DurationMs > 0 {
		duration = e.DurationMs
	}

	query, args, err := r.db.Builder().
		Insert("learning_events").
		Columns("id", "word_id", "scope_key", "box", "result", "duration_ms", "created_at").
		Values(e.ID.String(), e.WordID, e.Scope.Key(), box, string(e.Result), duration, e.CreatedAt.UnixMilli()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert learning event: %w", err)
	}

	if _, err := sqldb.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return sqldb.MapError(err, "learning event", e.ID)
	}
	return nil
}

// RecordMove increments the counter of a word moving between two boxes.
func (r *Repo) RecordMove(ctx context.Context, scope domain.Scope, wordID int64, from, to domain.Box, at time.Time) error {
	query, args, err := r.db.Builder().
		Insert("word_box_moves").
		Columns("word_id", "scope_key", "from_box", "to_box", "moves", "updated_at").
		Values(wordID, scope.Key(), string(from), string(to), 1, at.UnixMilli()).
		Suffix("ON CONFLICT (word_id, scope_key, from_box, to_box) DO UPDATE SET moves = word_box_moves.moves + 1, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build record box move: %w", err)
	}

	if _, err := sqldb.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return sqldb.MapError(err, "box move", wordID)
	}
	return nil
}

// ResultCounts returns ok/wrong totals of a scope since the given time.
func (r *Repo) ResultCounts(ctx context.Context, scope domain.Scope, since time.Time) (map[domain.AnswerResult]int, error) {
	query, args, err := r.db.Builder().
		Select("result", "count(*)").
		From("learning_events").
		Where(sq.Eq{"scope_key": scope.Key()}).
		Where(sq.GtOrEq{"created_at": since.UnixMilli()}).
		GroupBy("result").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build result counts: %w", err)
	}

	rows, err := sqldb.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, sqldb.MapError(err, "learning events of scope", scope.Key())
	}
	defer rows.Close()

	out := map[domain.AnswerResult]int{domain.AnswerOK: 0, domain.AnswerWrong: 0}
	for rows.Next() {
		var (
			result string
			n      int
		)
		if err := rows.Scan(&result, &n); err != nil {
			return nil, fmt.Errorf("scan result count: %w", err)
		}
		out[domain.AnswerResult(result)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate result counts: %w", err)
	}
	return out, nil
}

// Moves returns the counter for one transition of a word, 0 when absent.
func (r *Repo) Moves(ctx context.Context, scope domain.Scope, wordID int64, from, to domain.Box) (int, error) {
	query, args, err := r.db.Builder().
		Select("moves").
		From("word_box_moves").
		Where(sq.Eq{"word_id": wordID, "scope_key": scope.Key(), "from_box": string(from), "to_box": string(to)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build get moves: %w", err)
	}

	var n int
	err = sqldb.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, sqldb.MapError(err, "box move", wordID)
	}
	return n, nil
}
