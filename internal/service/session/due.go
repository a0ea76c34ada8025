package session

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/boxstudy/internal/domain"
)

// EnterDueReview switches to reviewing the due words of scope. The session
// clock is fixed at entry so words falling due mid-session wait for the next
// one.
func (o *Orchestrator) EnterDueReview(ctx context.Context, scope domain.Scope) error {
	if err := scope.Validate(); err != nil {
		return err
	}

	o.mu.Lock()
	loadCtx, gen := o.beginEntry(ctx, scope)
	cursor := o.clock.Now()
	o.cursor = cursor
	logCtx := o.withSession(ctx)
	o.mu.Unlock()

	batch, err := o.reviews.GetDueBatch(loadCtx, scope, o.cfg.DueBatchSize, cursor)

	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.gen {
		o.log.DebugContext(logCtx, "dropping stale due batch")
		return fmt.Errorf("enter %s: %w", scope.Key(), domain.ErrStaleScope)
	}
	if err != nil {
		o.state, o.reason = StateIdle, ReasonLoadFailed
		return fmt.Errorf("enter %s: %w", scope.Key(), err)
	}
	if len(batch) == 0 {
		o.state, o.reason = StateIdle, ReasonNothingDue
		return nil
	}

	o.dueQueue = batch
	o.state = StateDueReview
	o.log.InfoContext(logCtx, "due review started", slog.Int("batch", len(batch)))
	return nil
}

// NextDue returns the head of the due queue, pulling the next batch when the
// queue ran dry. ok is false once nothing is left; the session is then
// complete.
func (o *Orchestrator) NextDue(ctx context.Context) (domain.DueWord, bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.state {
	case StateSessionComplete:
		return domain.DueWord{}, false, nil
	case StateDueReview:
	default:
		return domain.DueWord{}, false, fmt.Errorf("due review: %w", domain.ErrNoActiveScope)
	}

	if len(o.dueQueue) == 0 {
		batch, err := o.reviews.GetDueBatch(ctx, o.scope, o.cfg.DueBatchSize, o.cursor)
		if err != nil {
			return domain.DueWord{}, false, err
		}
		if len(batch) == 0 {
			o.state = StateSessionComplete
			o.log.InfoContext(o.withSession(ctx), "due review complete", slog.Int("reviewed", o.dueShown))
			return domain.DueWord{}, false, nil
		}
		o.dueQueue = batch
	}
	return o.dueQueue[0], true, nil
}

// SubmitDueAnswer grades response for a queued word: correct advances its
// stage, wrong demotes it. The word leaves the queue either way.
func (o *Orchestrator) SubmitDueAnswer(ctx context.Context, wordID int64, response string) (domain.AnswerResult, domain.ReviewRecord, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateDueReview {
		return "", domain.ReviewRecord{}, fmt.Errorf("due review: %w", domain.ErrNoActiveScope)
	}
	ctx = o.withSession(ctx)

	idx := slices.IndexFunc(o.dueQueue, func(d domain.DueWord) bool { return d.Word.ID == wordID })
	if idx < 0 {
		return "", domain.ReviewRecord{}, fmt.Errorf("due word %d: %w", wordID, domain.ErrNotFound)
	}
	due := o.dueQueue[idx]

	result := o.checker.Check(due.Word, response, due.Word.Flipped)

	var (
		rec domain.ReviewRecord
		err error
	)
	if result == domain.AnswerOK {
		rec, err = o.reviews.AdvanceReview(ctx, wordID, o.scope)
	} else {
		rec, err = o.reviews.DemoteReview(ctx, wordID, o.scope)
	}
	if err != nil {
		return "", domain.ReviewRecord{}, err
	}

	o.dueQueue = slices.Delete(o.dueQueue, idx, idx+1)
	o.dueShown++
	o.recordEvent(ctx, wordID, "", result)
	return result, rec, nil
}

func dropDue(queue []domain.DueWord, wordID int64) []domain.DueWord {
	return slices.DeleteFunc(queue, func(d domain.DueWord) bool { return d.Word.ID == wordID })
}
