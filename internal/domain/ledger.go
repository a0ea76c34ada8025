package domain

import (
	"maps"
	"slices"
)

// Ledger is the per-scope set of word ids already dealt into boxes or
// graduated. Refills never draw an id present in the ledger.
type Ledger struct {
	ids map[int64]struct{}
}

// NewLedger builds a ledger from ids.
func NewLedger(ids ...int64) *Ledger {
	l := &Ledger{ids: make(map[int64]struct{}, len(ids))}
	l.Add(ids...)
	return l
}

// Add marks ids as used.
func (l *Ledger) Add(ids ...int64) {
	if l.ids == nil {
		l.ids = make(map[int64]struct{}, len(ids))
	}
	for _, id := range ids {
		l.ids[id] = struct{}{}
	}
}

// Remove frees id. Reports whether it was present.
func (l *Ledger) Remove(id int64) bool {
	if _, ok := l.ids[id]; !ok {
		return false
	}
	delete(l.ids, id)
	return true
}

func (l *Ledger) Has(id int64) bool {
	_, ok := l.ids[id]
	return ok
}

func (l *Ledger) Len() int { return len(l.ids) }

// IDs returns the ids in ascending order.
func (l *Ledger) IDs() []int64 {
	return slices.Sorted(maps.Keys(l.ids))
}

// Clone returns an independent copy.
func (l *Ledger) Clone() *Ledger {
	return &Ledger{ids: maps.Clone(l.ids)}
}
