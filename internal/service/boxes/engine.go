// Package boxes implements the session-local Leitner progression over six
// boxes, the used-ids ledger that keeps refills from re-dealing words, and
// the autoflow policy that picks which box to practise next.
package boxes

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/heartmarshall/boxstudy/internal/domain"
)

// Options tunes an Engine.
type Options struct {
	// IntroEnabled routes refills into boxZero instead of boxOne.
	IntroEnabled bool
	// IntroLimit caps boxZero; refills into a full intro box are skipped.
	IntroLimit int
	// Strict turns integrity violations into errors instead of repairs.
	Strict bool
	// ReversedBoxes ask for the prompt given the answer.
	ReversedBoxes []domain.Box
}

// Outcome describes what an answer did to a word.
type Outcome struct {
	Word      domain.Word
	From      domain.Box
	To        domain.Box // empty when Graduated
	Graduated bool
}

// Moved reports whether the word changed box or graduated.
func (o Outcome) Moved() bool { return o.Graduated || o.From != o.To }

// Engine mutates one scope's box state. It is not safe for concurrent use;
// the session orchestrator is its single writer.
type Engine struct {
	log      *slog.Logger
	scope    domain.Scope
	state    *domain.BoxState
	ledger   *domain.Ledger
	opts     Options
	rng      *rand.Rand
	lastPick map[domain.Box]int64
}

// NewEngine wraps state and ledger (nil means empty). rng may be nil.
func NewEngine(log *slog.Logger, scope domain.Scope, state *domain.BoxState, ledger *domain.Ledger, opts Options, rng *rand.Rand) *Engine {
	if state == nil {
		state = &domain.BoxState{}
	}
	if ledger == nil {
		ledger = domain.NewLedger()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{
		log:      log.With("service", "boxes", "scope", scope.Key()),
		scope:    scope,
		state:    state,
		ledger:   ledger,
		opts:     opts,
		rng:      rng,
		lastPick: make(map[domain.Box]int64),
	}
}

// Scope returns the scope the engine works on.
func (e *Engine) Scope() domain.Scope { return e.scope }

// State returns a copy of the current box state.
func (e *Engine) State() *domain.BoxState { return e.state.Clone() }

// Ledger returns a copy of the used-ids ledger.
func (e *Engine) Ledger() *domain.Ledger { return e.ledger.Clone() }

// Counts returns per-box sizes.
func (e *Engine) Counts() map[domain.Box]int { return e.state.Counts() }

// LearnedCount returns how many words graduated.
func (e *Engine) LearnedCount() int { return len(e.state.Learned) }

// IntakeBox is where refills land.
func (e *Engine) IntakeBox() domain.Box {
	if e.opts.IntroEnabled {
		return domain.BoxZero
	}
	return domain.BoxOne
}

// IsReversed reports whether box asks answer-to-prompt.
func (e *Engine) IsReversed(box domain.Box) bool {
	return slices.Contains(e.opts.ReversedBoxes, box)
}

// Reversed reports whether w is asked answer-to-prompt in box. The word's
// own Flipped flag inverts the box direction.
func (e *Engine) Reversed(w domain.Word, box domain.Box) bool {
	return e.IsReversed(box) != w.Flipped
}

// IntroLimitReached reports whether the intro box is full.
func (e *Engine) IntroLimitReached() bool {
	return e.opts.IntroEnabled && e.opts.IntroLimit > 0 && e.state.Len(domain.BoxZero) >= e.opts.IntroLimit
}

// Find returns the word with id and the box holding it.
func (e *Engine) Find(id int64) (domain.Word, domain.Box, bool) {
	for _, b := range domain.AllBoxes {
		for _, w := range e.state.Words(b) {
			if w.ID == id {
				return w, b, true
			}
		}
	}
	return domain.Word{}, "", false
}

// HandleCorrect promotes the word to the next box, inserting it at the
// head. A correct answer in the terminal box graduates the word: it leaves
// every box and is prepended to Learned. The caller schedules its review.
func (e *Engine) HandleCorrect(wordID int64, current domain.Box) (Outcome, error) {
	word, from, err := e.take(wordID, current)
	if err != nil {
		return Outcome{}, err
	}

	next, ok := from.Promote()
	if !ok {
		e.state.Learned = append([]int64{word.ID}, e.state.Learned...)
		e.ledger.Add(word.ID)
		e.log.Debug("word graduated", slog.Int64("word_id", word.ID))
		return Outcome{Word: word, From: from, Graduated: true}, e.afterMutation()
	}

	e.prepend(next, word)
	return Outcome{Word: word, From: from, To: next}, e.afterMutation()
}

// HandleIncorrect sends the word back to boxOne. A word already in boxOne
// stays where it is.
func (e *Engine) HandleIncorrect(wordID int64, current domain.Box) (Outcome, error) {
	if current == domain.BoxOne {
		word, actual, ok := e.Find(wordID)
		if ok && actual == domain.BoxOne {
			return Outcome{Word: word, From: domain.BoxOne, To: domain.BoxOne}, nil
		}
	}

	word, from, err := e.take(wordID, current)
	if err != nil {
		return Outcome{}, err
	}

	to := from.Demote()
	e.prepend(to, word)
	return Outcome{Word: word, From: from, To: to}, e.afterMutation()
}

// take removes the word from its box. A word found in a different box than
// claimed is an integrity violation.
func (e *Engine) take(wordID int64, claimed domain.Box) (domain.Word, domain.Box, error) {
	if !claimed.IsValid() {
		return domain.Word{}, "", domain.NewValidationError("box", fmt.Sprintf("unknown box %q", claimed))
	}

	word, actual, ok := e.Find(wordID)
	if !ok {
		return domain.Word{}, "", fmt.Errorf("word %d in %s: %w", wordID, e.scope.Key(), domain.ErrNotFound)
	}
	if actual != claimed {
		violation := &domain.IntegrityError{WordID: wordID, Reason: fmt.Sprintf("claimed in %s, found in %s", claimed, actual)}
		if e.opts.Strict {
			return domain.Word{}, "", violation
		}
		e.log.Warn("box integrity repaired", slog.String("violation", violation.Error()))
	}

	words := e.state.Words(actual)
	e.state.SetWords(actual, slices.DeleteFunc(slices.Clone(words), func(w domain.Word) bool { return w.ID == wordID }))
	return word, actual, nil
}

func (e *Engine) prepend(box domain.Box, w domain.Word) {
	e.state.SetWords(box, append([]domain.Word{w}, e.state.Words(box)...))
}

// SelectRandomOpen picks a uniformly random word of box, never the one picked
// from that box just before unless it is the only word.
func (e *Engine) SelectRandomOpen(box domain.Box) (domain.Word, bool) {
	if !box.IsValid() {
		return domain.Word{}, false
	}
	words := e.state.Words(box)
	if len(words) == 0 {
		return domain.Word{}, false
	}

	skip := -1
	if last, ok := e.lastPick[box]; ok && len(words) > 1 {
		skip = slices.IndexFunc(words, func(w domain.Word) bool { return w.ID == last })
	}
	var idx int
	if skip < 0 {
		idx = e.rng.IntN(len(words))
	} else if idx = e.rng.IntN(len(words) - 1); idx >= skip {
		idx++
	}
	e.lastPick[box] = words[idx].ID
	return words[idx], true
}

// Exhausted reports whether every pool word is already in the ledger.
func (e *Engine) Exhausted(pool []domain.Word) bool {
	for _, w := range pool {
		if !e.ledger.Has(w.ID) {
			return false
		}
	}
	return true
}

// Refill deals up to batchSize unused pool words into the intake box,
// preserving pool order, marks them used and bumps BatchIndex. Returns the
// dealt words; an exhausted pool or a full intro box deals nothing.
func (e *Engine) Refill(pool []domain.Word, batchSize int) ([]domain.Word, error) {
	intake := e.IntakeBox()
	limit := batchSize
	if intake == domain.BoxZero && e.opts.IntroLimit > 0 {
		limit = min(limit, e.opts.IntroLimit-e.state.Len(domain.BoxZero))
	}
	if limit <= 0 {
		return nil, nil
	}

	candidates := make([]domain.Word, 0, len(pool))
	for _, w := range pool {
		if !e.ledger.Has(w.ID) {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	picked := candidates
	if len(candidates) > limit {
		idx := e.rng.Perm(len(candidates))[:limit]
		slices.Sort(idx)
		picked = make([]domain.Word, limit)
		for i, j := range idx {
			picked[i] = candidates[j]
		}
	}

	e.state.SetWords(intake, append(slices.Clone(e.state.Words(intake)), picked...))
	e.ledger.Add(domain.WordIDs(picked)...)
	e.state.BatchIndex++

	e.log.Debug("boxes refilled",
		slog.String("box", intake.String()),
		slog.Int("dealt", len(picked)),
		slog.Int("batch_index", e.state.BatchIndex),
	)
	return picked, e.afterMutation()
}

// ReleaseIntroBox empties boxZero and frees its ids so they can be dealt
// again into boxOne. Used when the intro box gets disabled.
func (e *Engine) ReleaseIntroBox() []int64 {
	words := e.state.Words(domain.BoxZero)
	if len(words) == 0 {
		return nil
	}
	ids := domain.WordIDs(words)
	for _, id := range ids {
		e.ledger.Remove(id)
	}
	e.state.SetWords(domain.BoxZero, nil)
	delete(e.lastPick, domain.BoxZero)
	return ids
}

// FreeID removes id from the ledger and from Learned so a later refill may
// deal it again. Words still sitting in a box are left alone.
func (e *Engine) FreeID(id int64) bool {
	if _, _, inBox := e.Find(id); inBox {
		return false
	}
	e.state.Learned = slices.DeleteFunc(e.state.Learned, func(l int64) bool { return l == id })
	return e.ledger.Remove(id)
}

// CheckIntegrity verifies box exclusivity and that the ledger covers every
// member. In strict mode the first duplicate is returned as an error;
// otherwise duplicates are dropped (first occurrence wins) and the ledger is
// topped up.
func (e *Engine) CheckIntegrity() error {
	seen := make(map[int64]domain.Box, e.state.Total())
	healed := 0

	for _, b := range domain.AllBoxes {
		words := e.state.Words(b)
		kept := words[:0:0]
		for _, w := range words {
			if first, dup := seen[w.ID]; dup {
				if e.opts.Strict {
					return &domain.IntegrityError{WordID: w.ID, Reason: fmt.Sprintf("in %s and %s", first, b)}
				}
				healed++
				continue
			}
			seen[w.ID] = b
			kept = append(kept, w)
		}
		e.state.SetWords(b, kept)
	}

	learned := e.state.Learned[:0:0]
	for _, id := range e.state.Learned {
		if first, dup := seen[id]; dup {
			if e.opts.Strict {
				return &domain.IntegrityError{WordID: id, Reason: fmt.Sprintf("learned and in %s", first)}
			}
			healed++
			continue
		}
		seen[id] = ""
		learned = append(learned, id)
	}
	e.state.Learned = learned

	for id := range seen {
		e.ledger.Add(id)
	}

	if healed > 0 {
		e.log.Warn("box integrity repaired", slog.Int("dropped_duplicates", healed))
	}
	return nil
}

func (e *Engine) afterMutation() error {
	return e.CheckIntegrity()
}
