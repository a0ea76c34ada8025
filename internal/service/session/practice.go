package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/boxstudy/internal/domain"
	"github.com/heartmarshall/boxstudy/internal/service/boxes"
)

// requireBoxPractice returns the live engine. Caller holds o.mu.
func (o *Orchestrator) requireBoxPractice() (*boxes.Engine, error) {
	if o.state != StateBoxPractice || o.engine == nil {
		return nil, fmt.Errorf("box practice: %w", domain.ErrNoActiveScope)
	}
	return o.engine, nil
}

func (o *Orchestrator) flowOptions(canRefill bool) boxes.FlowOptions {
	opts := boxes.FlowOptions{
		PoolSize:    len(o.pool),
		FlushMin:    o.cfg.FlushMin,
		FlushMax:    o.cfg.FlushMax,
		StackTarget: o.cfg.StackTarget,
		Intake:      domain.BoxOne,
	}
	if o.engine != nil {
		opts.Intake = o.engine.IntakeBox()
		opts.CanRefill = canRefill && !o.engine.Exhausted(o.pool) && !o.engine.IntroLimitReached()
	}
	return opts
}

// SelectBox makes box active and draws a card from it. ok is false when the
// box is empty.
func (o *Orchestrator) SelectBox(box domain.Box) (Card, bool, error) {
	if !box.IsValid() {
		return Card{}, false, domain.NewValidationError("box", fmt.Sprintf("unknown box %q", box))
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := o.requireBoxPractice(); err != nil {
		return Card{}, false, err
	}
	o.activeBox = box
	card, ok := o.draw()
	return card, ok, nil
}

// NextBoxWord draws the next card from the active box.
func (o *Orchestrator) NextBoxWord() (Card, bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := o.requireBoxPractice(); err != nil {
		return Card{}, false, err
	}
	if o.activeBox == "" {
		return Card{}, false, nil
	}
	card, ok := o.draw()
	return card, ok, nil
}

// draw picks from the active box. Caller holds o.mu.
func (o *Orchestrator) draw() (Card, bool) {
	w, ok := o.engine.SelectRandomOpen(o.activeBox)
	if !ok {
		o.current = nil
		return Card{}, false
	}
	card := Card{Word: w, Box: o.activeBox, Reversed: o.engine.Reversed(w, o.activeBox)}
	o.current = &card
	return card, true
}

// SubmitBoxAnswer grades response for wordID and moves the word. Graduation
// schedules a stage 0 review when the course has reviews enabled. Failures of
// the review store or the event log are logged and the box move is kept.
func (o *Orchestrator) SubmitBoxAnswer(ctx context.Context, wordID int64, response string) (BoxAnswer, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	engine, err := o.requireBoxPractice()
	if err != nil {
		return BoxAnswer{}, err
	}
	ctx = o.withSession(ctx)

	word, box, ok := engine.Find(wordID)
	if !ok {
		return BoxAnswer{}, fmt.Errorf("word %d in %s: %w", wordID, o.scope.Key(), domain.ErrNotFound)
	}
	reversed := engine.Reversed(word, box)
	if o.current != nil && o.current.Word.ID == wordID {
		box, reversed = o.current.Box, o.current.Reversed
	}

	result := o.checker.Check(word, response, reversed)

	var outcome boxes.Outcome
	if result == domain.AnswerOK {
		outcome, err = engine.HandleCorrect(wordID, box)
	} else {
		outcome, err = engine.HandleIncorrect(wordID, box)
	}
	if err != nil {
		return BoxAnswer{}, err
	}
	o.current = nil

	res := BoxAnswer{Result: result, Outcome: outcome}
	now := o.clock.Now()

	if outcome.Graduated && o.course.ReviewsEnabled {
		rec, err := o.reviews.ScheduleReview(ctx, wordID, o.scope, 0)
		if err != nil {
			o.log.ErrorContext(ctx, "review not scheduled", slog.Int64("word_id", wordID), slog.String("error", err.Error()))
			o.notice = fmt.Sprintf("review for word %d was not scheduled: %v", wordID, err)
		} else {
			res.Review = &rec
		}
	}

	o.recordEvent(ctx, wordID, outcome.From, result)
	if outcome.Moved() {
		to := outcome.To
		if outcome.Graduated {
			to = "learned"
		}
		if err := o.events.RecordMove(ctx, o.scope, wordID, outcome.From, to, now); err != nil {
			o.log.WarnContext(ctx, "box move not recorded", slog.Int64("word_id", wordID), slog.String("error", err.Error()))
		}
	}

	o.snapshots.Save(o.scope, engine.State(), engine.Ledger())
	return res, nil
}

// Autoflow picks the next box by backpressure and performs the refill it
// asks for. The session completes when nothing is left to practise.
func (o *Orchestrator) Autoflow(ctx context.Context) (boxes.Decision, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	engine, err := o.requireBoxPractice()
	if err != nil {
		return boxes.Decision{}, err
	}

	d := boxes.Decide(engine.State(), o.activeBox, o.flowOptions(true))
	if d.Refill {
		if _, err := o.refill(ctx); err != nil {
			return boxes.Decision{}, err
		}
		if next := boxes.Decide(engine.State(), o.activeBox, o.flowOptions(false)); next.Box != "" {
			d.Box = next.Box
		}
	}

	if d.Box == "" {
		o.state = StateSessionComplete
		o.activeBox = ""
		return d, nil
	}
	o.activeBox = d.Box
	return d, nil
}

// Refill deals a new batch into the intake box of the active scope.
func (o *Orchestrator) Refill(ctx context.Context) ([]domain.Word, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := o.requireBoxPractice(); err != nil {
		return nil, err
	}
	return o.refill(ctx)
}

// refill runs a refill and schedules a save. Caller holds o.mu.
func (o *Orchestrator) refill(ctx context.Context) ([]domain.Word, error) {
	dealt, err := o.engine.Refill(o.pool, o.cfg.BatchSize)
	if err != nil {
		return nil, err
	}
	if len(dealt) > 0 {
		o.snapshots.Save(o.scope, o.engine.State(), o.engine.Ledger())
		o.log.DebugContext(o.withSession(ctx), "refilled", slog.Int("dealt", len(dealt)))
	}
	return dealt, nil
}
