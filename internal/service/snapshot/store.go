// Package snapshot persists per-scope box state and the used-ids ledger to a
// key-value store, debouncing writes per scope.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/boxstudy/internal/domain"
)

type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Snapshot is a persisted box state with its ledger. Found is false for the
// empty default returned when nothing usable is stored.
type Snapshot struct {
	State     *domain.BoxState
	Ledger    *domain.Ledger
	UpdatedAt time.Time
	Found     bool
}

// Empty returns a snapshot with no words and an empty ledger.
func Empty() Snapshot {
	return Snapshot{State: &domain.BoxState{}, Ledger: domain.NewLedger()}
}

func (s Snapshot) clone() Snapshot {
	return Snapshot{State: s.State.Clone(), Ledger: s.Ledger.Clone(), UpdatedAt: s.UpdatedAt, Found: s.Found}
}

// Options configures a Store.
type Options struct {
	Delay           time.Duration
	Namespace       string
	CustomNamespace string
}

// ErrorHandler receives failures of debounced writes.
type ErrorHandler func(scope domain.Scope, err error)

type pendingSave struct {
	scope domain.Scope
	snap  Snapshot
	seq   uint64
	timer clockwork.Timer
}

// Store is safe for concurrent use.
type Store struct {
	log   *slog.Logger
	kv    kvStore
	clock clockwork.Clock
	opts  Options

	mu      sync.Mutex
	pending map[string]*pendingSave
	seq     uint64
	onError ErrorHandler

	// ioMu orders slot I/O. It is taken before mu, and a pending save is
	// only claimed while holding it, so claimed saves reach the kv store
	// in claim order.
	ioMu sync.Mutex
}

// NewStore creates a Store.
func NewStore(log *slog.Logger, kv kvStore, clock clockwork.Clock, opts Options) *Store {
	if opts.Namespace == "" {
		opts.Namespace = "boxes"
	}
	if opts.CustomNamespace == "" {
		opts.CustomNamespace = "customBoxes"
	}
	return &Store{
		log:     log.With("service", "snapshot"),
		kv:      kv,
		clock:   clock,
		opts:    opts,
		pending: make(map[string]*pendingSave),
	}
}

// OnError installs the handler for debounced write failures.
func (s *Store) OnError(h ErrorHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onError = h
}

// Namespace returns the slot namespace of scope.
func (s *Store) Namespace(scope domain.Scope) string {
	if scope.Kind == domain.ScopeCustom {
		return s.opts.CustomNamespace
	}
	return s.opts.Namespace
}

// Key returns the slot key of scope.
func (s *Store) Key(scope domain.Scope) string {
	return s.Namespace(scope) + ":" + scope.Key()
}

// Save schedules a write of state and ledger after the debounce delay. A
// later Save for the same scope supersedes a pending one.
func (s *Store) Save(scope domain.Scope, state *domain.BoxState, ledger *domain.Ledger) {
	key := s.Key(scope)
	snap := Snapshot{State: state.Clone(), Ledger: ledger.Clone(), Found: true}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.pending[key]; ok {
		prev.timer.Stop()
	}
	s.seq++
	seq := s.seq
	p := &pendingSave{scope: scope, snap: snap, seq: seq}
	p.timer = s.clock.AfterFunc(s.opts.Delay, func() { s.fire(key, seq) })
	s.pending[key] = p
}

func (s *Store) fire(key string, seq uint64) {
	s.ioMu.Lock()
	s.mu.Lock()
	p, ok := s.pending[key]
	if !ok || p.seq != seq {
		s.mu.Unlock()
		s.ioMu.Unlock()
		return
	}
	delete(s.pending, key)
	handler := s.onError
	s.mu.Unlock()

	err := s.write(context.Background(), key, p.scope, p.snap)
	s.ioMu.Unlock()
	if err != nil {
		s.log.Error("debounced snapshot write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		if handler != nil {
			handler(p.scope, err)
		}
	}
}

// takePending removes and stops the pending save for key. Callers hold ioMu.
func (s *Store) takePending(key string) (*pendingSave, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[key]
	if !ok {
		return nil, false
	}
	p.timer.Stop()
	delete(s.pending, key)
	return p, true
}

// write stores snap under key. Callers hold ioMu.
func (s *Store) write(ctx context.Context, key string, scope domain.Scope, snap Snapshot) error {
	data, err := encode(scope, snap, s.clock.Now())
	if err != nil {
		return fmt.Errorf("snapshot %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("snapshot %s: %w", key, err)
	}
	return nil
}

// Flush writes the pending save of scope immediately, if any.
func (s *Store) Flush(ctx context.Context, scope domain.Scope) error {
	key := s.Key(scope)
	s.ioMu.Lock()
	defer s.ioMu.Unlock()

	p, ok := s.takePending(key)
	if !ok {
		return nil
	}
	return s.write(ctx, key, p.scope, p.snap)
}

// Close flushes every pending save.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	scopes := make([]domain.Scope, 0, len(s.pending))
	for _, p := range s.pending {
		scopes = append(scopes, p.scope)
	}
	s.mu.Unlock()

	var errs []error
	for _, scope := range scopes {
		if err := s.Flush(ctx, scope); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Load returns the snapshot of scope. A pending save wins over the stored
// slot. Absent, malformed or mismatched payloads load as Empty with a
// warning; only storage errors are returned.
func (s *Store) Load(ctx context.Context, scope domain.Scope) (Snapshot, error) {
	s.ioMu.Lock()
	defer s.ioMu.Unlock()
	return s.load(ctx, scope)
}

func (s *Store) load(ctx context.Context, scope domain.Scope) (Snapshot, error) {
	key := s.Key(scope)

	s.mu.Lock()
	if p, ok := s.pending[key]; ok {
		snap := p.snap.clone()
		s.mu.Unlock()
		return snap, nil
	}
	s.mu.Unlock()

	data, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot %s: %w", key, err)
	}
	if !ok {
		return Empty(), nil
	}

	snap, err := decode(scope, data)
	if err != nil {
		s.log.WarnContext(ctx, "discarding unreadable snapshot",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return Empty(), nil
	}
	return snap, nil
}

// AddUsedIDs marks ids used in the stored ledger of scope and writes eagerly.
func (s *Store) AddUsedIDs(ctx context.Context, scope domain.Scope, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	return s.mutateLedger(ctx, scope, func(snap Snapshot) bool {
		snap.Ledger.Add(ids...)
		return true
	})
}

// RemoveUsedID frees id in the stored ledger of scope and drops it from
// Learned, writing eagerly. Absent snapshots are left alone.
func (s *Store) RemoveUsedID(ctx context.Context, scope domain.Scope, id int64) error {
	return s.mutateLedger(ctx, scope, func(snap Snapshot) bool {
		if _, inBox := snap.State.Locate(id); inBox {
			return false
		}
		removed := snap.Ledger.Remove(id)
		if snap.State.IsLearned(id) {
			learned := snap.State.Learned[:0]
			for _, l := range snap.State.Learned {
				if l != id {
					learned = append(learned, l)
				}
			}
			snap.State.Learned = learned
			removed = true
		}
		return removed && snap.Found
	})
}

// mutateLedger applies fn to the pending save if one exists, otherwise to
// the stored slot. A pending save is always written; a stored slot only
// when fn reports a change.
func (s *Store) mutateLedger(ctx context.Context, scope domain.Scope, fn func(Snapshot) bool) error {
	key := s.Key(scope)
	s.ioMu.Lock()
	defer s.ioMu.Unlock()

	var snap Snapshot
	p, hadPending := s.takePending(key)
	if hadPending {
		snap = p.snap
	} else {
		loaded, err := s.load(ctx, scope)
		if err != nil {
			return err
		}
		snap = loaded
	}

	if !fn(snap) && !hadPending {
		return nil
	}
	snap.Found = true
	return s.write(ctx, key, scope, snap)
}

// Reset drops any pending save and deletes the slot of scope.
func (s *Store) Reset(ctx context.Context, scope domain.Scope) error {
	key := s.Key(scope)
	s.ioMu.Lock()
	defer s.ioMu.Unlock()

	s.takePending(key)
	if err := s.kv.Remove(ctx, key); err != nil {
		return fmt.Errorf("snapshot %s: %w", key, err)
	}
	return nil
}

// ClearNamespace deletes every slot of namespace ns, including pending
// saves, and returns the number of stored slots removed.
func (s *Store) ClearNamespace(ctx context.Context, ns string) (int, error) {
	prefix := ns + ":"
	s.ioMu.Lock()
	defer s.ioMu.Unlock()

	s.mu.Lock()
	for key, p := range s.pending {
		if strings.HasPrefix(key, prefix) {
			p.timer.Stop()
			delete(s.pending, key)
		}
	}
	s.mu.Unlock()

	keys, err := s.kv.Keys(ctx, prefix)
	if err != nil {
		return 0, fmt.Errorf("list %s: %w", ns, err)
	}
	for i, key := range keys {
		if err := s.kv.Remove(ctx, key); err != nil {
			return i, fmt.Errorf("remove %s: %w", key, err)
		}
	}

	s.log.InfoContext(ctx, "namespace cleared", slog.String("namespace", ns), slog.Int("slots", len(keys)))
	return len(keys), nil
}
