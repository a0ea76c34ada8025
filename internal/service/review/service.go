// Package review is the long-term track: a fixed stage-interval scheduler
// over durable review records, one per (word, scope).
package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/boxstudy/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type reviewRepo interface {
	Upsert(ctx context.Context, rec domain.ReviewRecord) error
	Get(ctx context.Context, scope domain.Scope, wordID int64) (domain.ReviewRecord, error)
	Delete(ctx context.Context, scope domain.Scope, wordID int64) (bool, error)
	DeleteScope(ctx context.Context, scope domain.Scope) (int, error)
	ListDue(ctx context.Context, scope domain.Scope, now time.Time, limit int) ([]domain.ReviewRecord, error)
	CountDue(ctx context.Context, scope domain.Scope, now time.Time) (int, error)
	CountDueByLevel(ctx context.Context, prefix string, now time.Time) (map[string]int, error)
	CountByLevel(ctx context.Context, prefix string) (map[string]int, error)
}

type wordProvider interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Word, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service owns review records: scheduling, stage moves, due queries.
type Service struct {
	log     *slog.Logger
	reviews reviewRepo
	words   wordProvider
	tx      txManager
	stages  *StageTable
	floor   int
	clock   clockwork.Clock
}

// NewService creates a review service. floor is the stage a wrong answer
// resets a record to.
func NewService(
	log *slog.Logger,
	reviews reviewRepo,
	words wordProvider,
	tx txManager,
	stages *StageTable,
	floor int,
	clock clockwork.Clock,
) (*Service, error) {
	if floor < 0 || floor > stages.MaxStage() {
		return nil, fmt.Errorf("review: demotion floor %d outside [0, %d]", floor, stages.MaxStage())
	}
	return &Service{
		log:     log.With("service", "review"),
		reviews: reviews,
		words:   words,
		tx:      tx,
		stages:  stages,
		floor:   floor,
		clock:   clock,
	}, nil
}

// Stages exposes the interval table the service schedules with.
func (s *Service) Stages() *StageTable { return s.stages }

// ScheduleReview creates or overwrites the record of a word at stage
// (clamped) with next review at now + delay(stage). The first learned_at is kept.
func (s *Service) ScheduleReview(ctx context.Context, wordID int64, scope domain.Scope, stage int) (domain.ReviewRecord, error) {
	if err := validate(wordID, scope); err != nil {
		return domain.ReviewRecord{}, err
	}

	now := s.clock.Now()
	rec := domain.ReviewRecord{
		WordID:       wordID,
		Scope:        scope,
		Stage:        s.stages.Clamp(stage),
		NextReviewAt: s.stages.NextReviewAt(stage, now),
		LearnedAt:    now,
	}
	if err := s.reviews.Upsert(ctx, rec); err != nil {
		return domain.ReviewRecord{}, fmt.Errorf("schedule review: %w", err)
	}

	s.log.DebugContext(ctx, "review scheduled",
		slog.Int64("word_id", wordID),
		slog.String("scope", scope.Key()),
		slog.Int("stage", rec.Stage),
		slog.Time("next_review_at", rec.NextReviewAt),
	)
	return rec, nil
}

// AdvanceReview moves the record one stage up, capped at MaxStage. An
// absent record counts as stage 0.
func (s *Service) AdvanceReview(ctx context.Context, wordID int64, scope domain.Scope) (domain.ReviewRecord, error) {
	return s.restage(ctx, wordID, scope, "advance", func(stage int) int {
		return min(stage+1, s.stages.MaxStage())
	})
}

// DemoteReview resets the record to the demotion floor. A record already
// below the floor keeps its stage. The record is never deleted.
func (s *Service) DemoteReview(ctx context.Context, wordID int64, scope domain.Scope) (domain.ReviewRecord, error) {
	return s.restage(ctx, wordID, scope, "demote", func(stage int) int {
		return min(stage, s.floor)
	})
}

func (s *Service) restage(ctx context.Context, wordID int64, scope domain.Scope, op string, next func(int) int) (domain.ReviewRecord, error) {
	if err := validate(wordID, scope); err != nil {
		return domain.ReviewRecord{}, err
	}

	var rec domain.ReviewRecord
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		now := s.clock.Now()

		current, err := s.reviews.Get(ctx, scope, wordID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			current = domain.ReviewRecord{WordID: wordID, Scope: scope, LearnedAt: now}
		case err != nil:
			return err
		}

		stage := s.stages.Clamp(next(current.Stage))
		rec = domain.ReviewRecord{
			WordID:       wordID,
			Scope:        scope,
			Stage:        stage,
			NextReviewAt: s.stages.NextReviewAt(stage, now),
			LearnedAt:    current.LearnedAt,
		}
		return s.reviews.Upsert(ctx, rec)
	})
	if err != nil {
		return domain.ReviewRecord{}, fmt.Errorf("%s review: %w", op, err)
	}

	s.log.DebugContext(ctx, "review restaged",
		slog.String("op", op),
		slog.Int64("word_id", wordID),
		slog.String("scope", scope.Key()),
		slog.Int("stage", rec.Stage),
	)
	return rec, nil
}

// RemoveReview deletes the record. Absent records are not an error.
// The caller must also free the id in the scope's used-ids ledger.
func (s *Service) RemoveReview(ctx context.Context, wordID int64, scope domain.Scope) error {
	if err := validate(wordID, scope); err != nil {
		return err
	}

	deleted, err := s.reviews.Delete(ctx, scope, wordID)
	if err != nil {
		return fmt.Errorf("remove review: %w", err)
	}
	if deleted {
		s.log.InfoContext(ctx, "review removed",
			slog.Int64("word_id", wordID),
			slog.String("scope", scope.Key()),
		)
	}
	return nil
}

// GetReview returns the record of a word. ok is false when absent.
func (s *Service) GetReview(ctx context.Context, wordID int64, scope domain.Scope) (domain.ReviewRecord, bool, error) {
	if err := validate(wordID, scope); err != nil {
		return domain.ReviewRecord{}, false, err
	}

	rec, err := s.reviews.Get(ctx, scope, wordID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ReviewRecord{}, false, nil
	}
	if err != nil {
		return domain.ReviewRecord{}, false, fmt.Errorf("get review: %w", err)
	}
	return rec, true, nil
}

// CountDueByLevel counts due records of a scope group per level. Builtin
// groups always report all six CEFR levels.
func (s *Service) CountDueByLevel(ctx context.Context, prefix string, now time.Time) (domain.LevelCounts, error) {
	kind, err := domain.ValidatePrefix(prefix)
	if err != nil {
		return nil, err
	}

	counts, err := s.reviews.CountDueByLevel(ctx, prefix, now)
	if err != nil {
		return nil, fmt.Errorf("count due by level: %w", err)
	}
	return levelCounts(kind, counts), nil
}

// CountLearnedByLevel counts all records of a scope group per level.
func (s *Service) CountLearnedByLevel(ctx context.Context, prefix string) (domain.LevelCounts, error) {
	kind, err := domain.ValidatePrefix(prefix)
	if err != nil {
		return nil, err
	}

	counts, err := s.reviews.CountByLevel(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("count learned by level: %w", err)
	}
	return levelCounts(kind, counts), nil
}

// CountTotalDue counts due records of a scope.
func (s *Service) CountTotalDue(ctx context.Context, scope domain.Scope, now time.Time) (int, error) {
	if err := scope.Validate(); err != nil {
		return 0, err
	}

	n, err := s.reviews.CountDue(ctx, scope, now)
	if err != nil {
		return 0, fmt.Errorf("count total due: %w", err)
	}
	return n, nil
}

// GetDueBatch returns up to limit due words ordered by next review time,
// then word id. Records whose word no longer exists are skipped.
func (s *Service) GetDueBatch(ctx context.Context, scope domain.Scope, limit int, now time.Time) ([]domain.DueWord, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []domain.DueWord{}, nil
	}

	records, err := s.reviews.ListDue(ctx, scope, now, limit)
	if err != nil {
		return nil, fmt.Errorf("get due batch: %w", err)
	}
	if len(records) == 0 {
		return []domain.DueWord{}, nil
	}

	ids := make([]int64, len(records))
	for i, r := range records {
		ids[i] = r.WordID
	}

	words, err := s.words.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get due batch content: %w", err)
	}
	byID := make(map[int64]domain.Word, len(words))
	for _, w := range words {
		byID[w.ID] = w
	}

	batch := make([]domain.DueWord, 0, len(records))
	for _, r := range records {
		w, ok := byID[r.WordID]
		if !ok {
			s.log.WarnContext(ctx, "due review without content",
				slog.Int64("word_id", r.WordID),
				slog.String("scope", scope.Key()),
			)
			continue
		}
		batch = append(batch, domain.DueWord{Word: w, Stage: r.Stage, NextReviewAt: r.NextReviewAt})
	}
	return batch, nil
}

// ResetScope deletes every record of a scope.
func (s *Service) ResetScope(ctx context.Context, scope domain.Scope) (int, error) {
	if err := scope.Validate(); err != nil {
		return 0, err
	}

	n, err := s.reviews.DeleteScope(ctx, scope)
	if err != nil {
		return 0, fmt.Errorf("reset scope reviews: %w", err)
	}
	s.log.InfoContext(ctx, "scope reviews reset", slog.String("scope", scope.Key()), slog.Int("deleted", n))
	return n, nil
}

func validate(wordID int64, scope domain.Scope) error {
	if wordID <= 0 {
		return domain.NewValidationError("word_id", "must be positive")
	}
	return scope.Validate()
}

func levelCounts(kind domain.ScopeKind, counts map[string]int) domain.LevelCounts {
	out := make(domain.LevelCounts, len(counts)+len(domain.AllLevels))
	if kind == domain.ScopeBuiltin {
		for _, l := range domain.AllLevels {
			out[string(l)] = 0
		}
	}
	for level, n := range counts {
		out[level] = n
	}
	return out
}
