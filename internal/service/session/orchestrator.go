// Package session drives a study session: it owns the active scope, hydrates
// box state from the content pool and the snapshot store, routes answers to
// the box engine or the review scheduler and keeps the snapshot current.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/boxstudy/internal/domain"
	"github.com/heartmarshall/boxstudy/internal/service/answer"
	"github.com/heartmarshall/boxstudy/internal/service/boxes"
	"github.com/heartmarshall/boxstudy/internal/service/snapshot"
	"github.com/heartmarshall/boxstudy/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer interfaces
// ---------------------------------------------------------------------------

type wordSource interface {
	Pool(ctx context.Context, scope domain.Scope) ([]domain.Word, error)
}

type reviewService interface {
	ScheduleReview(ctx context.Context, wordID int64, scope domain.Scope, stage int) (domain.ReviewRecord, error)
	AdvanceReview(ctx context.Context, wordID int64, scope domain.Scope) (domain.ReviewRecord, error)
	DemoteReview(ctx context.Context, wordID int64, scope domain.Scope) (domain.ReviewRecord, error)
	RemoveReview(ctx context.Context, wordID int64, scope domain.Scope) error
	GetDueBatch(ctx context.Context, scope domain.Scope, limit int, now time.Time) ([]domain.DueWord, error)
}

type snapshotStore interface {
	Load(ctx context.Context, scope domain.Scope) (snapshot.Snapshot, error)
	Save(scope domain.Scope, state *domain.BoxState, ledger *domain.Ledger)
	Flush(ctx context.Context, scope domain.Scope) error
	RemoveUsedID(ctx context.Context, scope domain.Scope, id int64) error
	OnError(h snapshot.ErrorHandler)
}

type eventRecorder interface {
	Create(ctx context.Context, e domain.LearningEvent) error
	RecordMove(ctx context.Context, scope domain.Scope, wordID int64, from, to domain.Box, at time.Time) error
}

// ---------------------------------------------------------------------------
// Types
// ---------------------------------------------------------------------------

// State is the orchestrator lifecycle state.
type State string

const (
	StateIdle            State = "idle"
	StateLoadingContent  State = "loading_content"
	StateBoxPractice     State = "box_practice"
	StateDueReview       State = "due_review"
	StateSessionComplete State = "session_complete"
)

// Reason qualifies why the orchestrator is idle.
type Reason string

const (
	ReasonNone       Reason = ""
	ReasonEmptyPool  Reason = "empty_pool"
	ReasonNothingDue Reason = "nothing_due"
	ReasonLoadFailed Reason = "load_failed"
	ReasonLeft       Reason = "left"
)

// CourseSettings are per-course switches applied on scope entry.
type CourseSettings struct {
	IntroEnabled   bool
	ReviewsEnabled bool
}

// Config holds the orchestrator tunables.
type Config struct {
	BatchSize       int
	DueBatchSize    int
	IntroLimit      int
	StrictIntegrity bool
	ReversedBoxes   []domain.Box
	FlushMin        int
	FlushMax        int
	StackTarget     int
}

// Card is a word presented in box practice.
type Card struct {
	Word     domain.Word
	Box      domain.Box
	Reversed bool
}

// BoxAnswer is the result of SubmitBoxAnswer.
type BoxAnswer struct {
	Result  domain.AnswerResult
	Outcome boxes.Outcome
	// Review is set when a graduation scheduled a review.
	Review *domain.ReviewRecord
}

// View is the read model of the orchestrator.
type View struct {
	State     State
	Reason    Reason
	Scope     domain.Scope
	HasScope  bool
	SessionID uuid.UUID
	ActiveBox domain.Box
	Counts    map[domain.Box]int
	Learned   int
	DueQueue  int
	DueShown  int
	Notice    string
}

// ---------------------------------------------------------------------------
// Orchestrator
// ---------------------------------------------------------------------------

// Orchestrator is safe for concurrent use; every operation serializes on one
// mutex and blocking loads of a scope entry run outside of it, tagged with a
// generation so that results of a superseded entry are dropped.
type Orchestrator struct {
	log       *slog.Logger
	words     wordSource
	reviews   reviewService
	snapshots snapshotStore
	events    eventRecorder
	checker   answer.Checker
	clock     clockwork.Clock
	cfg       Config
	newRand   func() *rand.Rand

	mu        sync.Mutex
	state     State
	reason    Reason
	scope     domain.Scope
	hasScope  bool
	course    CourseSettings
	sessionID uuid.UUID
	gen       uint64
	cancel    context.CancelFunc
	notice    string

	// box practice
	engine    *boxes.Engine
	pool      []domain.Word
	activeBox domain.Box
	current   *Card

	// due review
	cursor   time.Time
	dueQueue []domain.DueWord
	dueShown int
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithRand sets the random source factory used by box engines.
func WithRand(f func() *rand.Rand) Option {
	return func(o *Orchestrator) { o.newRand = f }
}

// NewOrchestrator creates an idle Orchestrator and subscribes to snapshot
// write failures.
func NewOrchestrator(
	log *slog.Logger,
	words wordSource,
	reviews reviewService,
	snapshots snapshotStore,
	events eventRecorder,
	checker answer.Checker,
	clock clockwork.Clock,
	cfg Config,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		log:       log.With("service", "session"),
		words:     words,
		reviews:   reviews,
		snapshots: snapshots,
		events:    events,
		checker:   checker,
		clock:     clock,
		cfg:       cfg,
		state:     StateIdle,
		newRand:   func() *rand.Rand { return nil },
	}
	for _, opt := range opts {
		opt(o)
	}
	snapshots.OnError(o.persistFailed)
	return o
}

func (o *Orchestrator) persistFailed(scope domain.Scope, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.notice = fmt.Sprintf("progress for %s was not saved: %v", scope.Key(), err)
}

// withSession attaches the session id and scope key for logging.
func (o *Orchestrator) withSession(ctx context.Context) context.Context {
	ctx = ctxutil.WithSessionID(ctx, o.sessionID)
	if o.hasScope {
		ctx = ctxutil.WithScopeKey(ctx, o.scope.Key())
	}
	return ctx
}

// View returns a snapshot of the orchestrator for display.
func (o *Orchestrator) View() View {
	o.mu.Lock()
	defer o.mu.Unlock()

	v := View{
		State:     o.state,
		Reason:    o.reason,
		Scope:     o.scope,
		HasScope:  o.hasScope,
		SessionID: o.sessionID,
		ActiveBox: o.activeBox,
		DueQueue:  len(o.dueQueue),
		DueShown:  o.dueShown,
		Notice:    o.notice,
	}
	if o.engine != nil {
		v.Counts = o.engine.Counts()
		v.Learned = o.engine.LearnedCount()
	}
	return v
}

// ClearNotice drops the last persistence notice.
func (o *Orchestrator) ClearNotice() {
	o.mu.Lock()
	o.notice = ""
	o.mu.Unlock()
}

// beginEntry tears down the current scope and starts a new generation.
// Caller holds o.mu.
func (o *Orchestrator) beginEntry(ctx context.Context, scope domain.Scope) (context.Context, uint64) {
	o.teardown(ctx)

	o.gen++
	loadCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	o.scope = scope
	o.hasScope = true
	o.sessionID = uuid.New()
	o.state = StateLoadingContent
	o.reason = ReasonNone
	return loadCtx, o.gen
}

// teardown flushes and cancels the active scope. Caller holds o.mu.
func (o *Orchestrator) teardown(ctx context.Context) {
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
	if o.engine != nil {
		if err := o.snapshots.Flush(ctx, o.scope); err != nil {
			o.log.ErrorContext(o.withSession(ctx), "flush on leave failed", slog.String("error", err.Error()))
			o.notice = fmt.Sprintf("progress for %s was not saved: %v", o.scope.Key(), err)
		}
	}
	o.engine = nil
	o.pool = nil
	o.activeBox = ""
	o.current = nil
	o.cursor = time.Time{}
	o.dueQueue = nil
	o.dueShown = 0
}

// Leave flushes the active scope and returns to Idle.
func (o *Orchestrator) Leave(ctx context.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.teardown(ctx)
	o.gen++
	o.hasScope = false
	o.scope = domain.Scope{}
	o.state = StateIdle
	o.reason = ReasonLeft
}

// EnterBoxPractice switches to box practice of scope. The pool and the
// stored snapshot load concurrently; the restored state is reconciled with
// the pool and, when no word sits in any box, refilled.
func (o *Orchestrator) EnterBoxPractice(ctx context.Context, scope domain.Scope, course CourseSettings) error {
	if err := scope.Validate(); err != nil {
		return err
	}

	o.mu.Lock()
	loadCtx, gen := o.beginEntry(ctx, scope)
	o.course = course
	logCtx := o.withSession(ctx)
	o.mu.Unlock()

	pool, snap, err := o.hydrate(loadCtx, scope)

	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.gen {
		o.log.DebugContext(logCtx, "dropping stale scope load")
		return fmt.Errorf("enter %s: %w", scope.Key(), domain.ErrStaleScope)
	}
	if err != nil {
		o.state, o.reason = StateIdle, ReasonLoadFailed
		return fmt.Errorf("enter %s: %w", scope.Key(), err)
	}
	if len(pool) == 0 {
		o.state, o.reason = StateIdle, ReasonEmptyPool
		return nil
	}

	changed := snapshot.Sanitize(snap.State, snap.Ledger, pool)
	engine := boxes.NewEngine(o.log, scope, snap.State, snap.Ledger, boxes.Options{
		IntroEnabled:  course.IntroEnabled,
		IntroLimit:    o.cfg.IntroLimit,
		Strict:        o.cfg.StrictIntegrity,
		ReversedBoxes: o.cfg.ReversedBoxes,
	}, o.newRand())

	if err := engine.CheckIntegrity(); err != nil {
		o.state, o.reason = StateIdle, ReasonLoadFailed
		return fmt.Errorf("enter %s: %w", scope.Key(), err)
	}

	if !course.IntroEnabled {
		if released := engine.ReleaseIntroBox(); len(released) > 0 {
			o.log.InfoContext(logCtx, "intro box released", slog.Int("words", len(released)))
			changed = true
		}
	}

	if engine.State().Total() == 0 && !engine.Exhausted(pool) {
		if _, err := engine.Refill(pool, o.cfg.BatchSize); err != nil {
			o.state, o.reason = StateIdle, ReasonLoadFailed
			return fmt.Errorf("enter %s: %w", scope.Key(), err)
		}
		changed = true
	}

	if changed {
		o.snapshots.Save(scope, engine.State(), engine.Ledger())
	}

	o.engine = engine
	o.pool = pool
	o.state = StateBoxPractice
	o.activeBox = boxes.Decide(engine.State(), "", o.flowOptions(false)).Box

	o.log.InfoContext(logCtx, "box practice started",
		slog.Int("pool", len(pool)),
		slog.Int("in_boxes", engine.State().Total()),
		slog.Int("learned", engine.LearnedCount()),
	)
	return nil
}

func (o *Orchestrator) hydrate(ctx context.Context, scope domain.Scope) ([]domain.Word, snapshot.Snapshot, error) {
	var (
		pool []domain.Word
		snap snapshot.Snapshot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pool, err = o.words.Pool(gctx, scope)
		if err != nil {
			return fmt.Errorf("load pool: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		snap, err = o.snapshots.Load(gctx, scope)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, snapshot.Snapshot{}, err
	}
	return pool, snap, nil
}

// RemoveFromReview deletes the review record of wordID and frees the id in
// the ledger, in the live engine when scope is active and in the stored
// snapshot otherwise.
func (o *Orchestrator) RemoveFromReview(ctx context.Context, wordID int64, scope domain.Scope) error {
	if err := o.reviews.RemoveReview(ctx, wordID, scope); err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.hasScope && o.scope == scope {
		o.dueQueue = dropDue(o.dueQueue, wordID)
		if o.engine != nil {
			if o.engine.FreeID(wordID) {
				o.snapshots.Save(scope, o.engine.State(), o.engine.Ledger())
			}
			return nil
		}
	}

	if err := o.snapshots.RemoveUsedID(ctx, scope, wordID); err != nil {
		o.notice = fmt.Sprintf("progress for %s was not saved: %v", scope.Key(), err)
		return err
	}
	return nil
}

func (o *Orchestrator) recordEvent(ctx context.Context, wordID int64, box domain.Box, result domain.AnswerResult) {
	err := o.events.Create(ctx, domain.LearningEvent{
		ID:        uuid.New(),
		WordID:    wordID,
		Scope:     o.scope,
		Box:       box,
		Result:    result,
		CreatedAt: o.clock.Now(),
	})
	if err != nil {
		o.log.WarnContext(ctx, "learning event not recorded",
			slog.Int64("word_id", wordID),
			slog.String("error", err.Error()),
		)
	}
}
