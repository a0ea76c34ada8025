// Package word implements the SQL-backed word content provider.
package word

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/boxstudy/internal/adapter/sqldb"
	"github.com/heartmarshall/boxstudy/internal/domain"
)

var wordColumns = []string{"w.id", "w.prompt", "w.flipped", "w.media", "w.word_type"}

// Repo provides word content persistence.
type Repo struct {
	db *sqldb.DB
	tx *sqldb.TxManager
}

// New creates a new word repository.
func New(db *sqldb.DB) *Repo {
	return &Repo{db: db, tx: sqldb.NewTxManager(db)}
}

// Pool returns every word of a scope in content order.
func (r *Repo) Pool(ctx context.Context, scope domain.Scope) ([]domain.Word, error) {
	query, args, err := r.db.Builder().
		Select(wordColumns...).
		From("words w").
		Where(sq.Eq{"w.scope_key": scope.Key()}).
		OrderBy("w.position ASC", "w.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build word pool: %w", err)
	}

	words, err := r.queryWords(ctx, query, args)
	if err != nil {
		return nil, sqldb.MapError(err, "words of scope", scope.Key())
	}

	answersQuery, answersArgs, err := r.db.Builder().
		Select("a.word_id", "a.answer").
		From("word_answers a").
		Join("words w ON w.id = a.word_id").
		Where(sq.Eq{"w.scope_key": scope.Key()}).
		OrderBy("a.word_id ASC", "a.position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build word pool answers: %w", err)
	}
	if err := r.attachAnswers(ctx, words, answersQuery, answersArgs); err != nil {
		return nil, sqldb.MapError(err, "answers of scope", scope.Key())
	}

	return words, nil
}

// GetByIDs returns the words with the given ids. Missing ids are skipped;
// result order follows ids.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Word, error) {
	if len(ids) == 0 {
		return []domain.Word{}, nil
	}

	query, args, err := r.db.Builder().
		Select(wordColumns...).
		From("words w").
		Where(sq.Eq{"w.id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build words by ids: %w", err)
	}

	words, err := r.queryWords(ctx, query, args)
	if err != nil {
		return nil, sqldb.MapError(err, "words", ids)
	}

	answersQuery, answersArgs, err := r.db.Builder().
		Select("a.word_id", "a.answer").
		From("word_answers a").
		Where(sq.Eq{"a.word_id": ids}).
		OrderBy("a.word_id ASC", "a.position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build answers by ids: %w", err)
	}
	if err := r.attachAnswers(ctx, words, answersQuery, answersArgs); err != nil {
		return nil, sqldb.MapError(err, "answers", ids)
	}

	byID := make(map[int64]domain.Word, len(words))
	for _, w := range words {
		byID[w.ID] = w
	}
	out := make([]domain.Word, 0, len(words))
	for _, id := range ids {
		if w, ok := byID[id]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}

// Create stores a word and its answers in a scope at the given position.
func (r *Repo) Create(ctx context.Context, scope domain.Scope, position int, w domain.Word) error {
	if w.Type == "" {
		w.Type = domain.WordTypeText
	}
	answers := domain.NormalizeAnswers(w.Answers)
	if len(answers) == 0 {
		return domain.NewValidationError("answers", "at least one answer required")
	}

	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := sqldb.QuerierFromCtx(ctx, r.db)

		query, args, err := r.db.Builder().
			Insert("words").
			Columns("id", "scope_key", "prompt", "flipped", "media", "word_type", "position").
			Values(w.ID, scope.Key(), w.Prompt, w.Flipped, w.Media, string(w.Type), position).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert word: %w", err)
		}
		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return sqldb.MapError(err, "word", w.ID)
		}

		insert := r.db.Builder().Insert("word_answers").Columns("word_id", "position", "answer")
		for i, a := range answers {
			insert = insert.Values(w.ID, i, a)
		}
		query, args, err = insert.ToSql()
		if err != nil {
			return fmt.Errorf("build insert answers: %w", err)
		}
		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return sqldb.MapError(err, "word answers", w.ID)
		}
		return nil
	})
}

// Delete removes a word; answers cascade.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := sqldb.QuerierFromCtx(ctx, r.db)

		query, args, err := r.db.Builder().Delete("word_answers").Where(sq.Eq{"word_id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete answers: %w", err)
		}
		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return sqldb.MapError(err, "word answers", id)
		}

		query, args, err = r.db.Builder().Delete("words").Where(sq.Eq{"id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete word: %w", err)
		}
		res, err := q.ExecContext(ctx, query, args...)
		if err != nil {
			return sqldb.MapError(err, "word", id)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("word %d: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}

func (r *Repo) queryWords(ctx context.Context, query string, args []any) ([]domain.Word, error) {
	rows, err := sqldb.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	words := []domain.Word{}
	for rows.Next() {
		var (
			w        domain.Word
			wordType string
		)
		if err := rows.Scan(&w.ID, &w.Prompt, &w.Flipped, &w.Media, &wordType); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		w.Type = domain.WordType(wordType)
		words = append(words, w)
	}
	return words, rows.Err()
}

func (r *Repo) attachAnswers(ctx context.Context, words []domain.Word, query string, args []any) error {
	if len(words) == 0 {
		return nil
	}

	index := make(map[int64]int, len(words))
	for i, w := range words {
		index[w.ID] = i
	}

	rows, err := sqldb.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			wordID int64
			answer string
		)
		if err := rows.Scan(&wordID, &answer); err != nil {
			return fmt.Errorf("scan answer: %w", err)
		}
		if i, ok := index[wordID]; ok {
			words[i].Answers = append(words[i].Answers, answer)
		}
	}
	return rows.Err()
}
