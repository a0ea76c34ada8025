package snapshot

import (
	"slices"

	"github.com/heartmarshall/boxstudy/internal/domain"
)

// Sanitize reconciles a loaded snapshot with the live pool: ids that left the
// pool are dropped from boxes, Learned and the ledger, surviving box words
// get the pool's current content, and the ledger is re-derived as
// (ledger ∩ pool) ∪ members. Reports whether anything changed.
func Sanitize(state *domain.BoxState, ledger *domain.Ledger, pool []domain.Word) bool {
	live := make(map[int64]domain.Word, len(pool))
	for _, w := range pool {
		live[w.ID] = w
	}

	changed := false
	for _, b := range domain.AllBoxes {
		words := state.Words(b)
		kept := make([]domain.Word, 0, len(words))
		for _, w := range words {
			current, ok := live[w.ID]
			if !ok {
				changed = true
				continue
			}
			if !wordEqual(w, current) {
				changed = true
			}
			kept = append(kept, current)
		}
		if len(words) > 0 {
			state.SetWords(b, kept)
		}
	}

	learned := slices.DeleteFunc(slices.Clone(state.Learned), func(id int64) bool {
		_, ok := live[id]
		return !ok
	})
	if len(learned) != len(state.Learned) {
		changed = true
		state.Learned = learned
	}

	for _, id := range ledger.IDs() {
		if _, ok := live[id]; !ok {
			ledger.Remove(id)
			changed = true
		}
	}
	for _, id := range state.MemberIDs() {
		if !ledger.Has(id) {
			ledger.Add(id)
			changed = true
		}
	}
	return changed
}

func wordEqual(a, b domain.Word) bool {
	return a.ID == b.ID &&
		a.Prompt == b.Prompt &&
		a.Flipped == b.Flipped &&
		a.Media == b.Media &&
		a.Type == b.Type &&
		slices.Equal(a.Answers, b.Answers)
}
