package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/heartmarshall/boxstudy/internal/domain"
)

// FormatVersion is written into every payload; other versions load as empty.
const FormatVersion = 3

type payload struct {
	V          int                      `json:"v"`
	Scope      string                   `json:"scope"`
	UpdatedAt  int64                    `json:"updatedAt"`
	BatchIndex int                      `json:"batchIndex"`
	Boxes      map[string][]domain.Word `json:"boxes"`
	Learned    []int64                  `json:"learned"`
	UsedIDs    []int64                  `json:"usedIds"`
}

func encode(scope domain.Scope, snap Snapshot, now time.Time) ([]byte, error) {
	p := payload{
		V:          FormatVersion,
		Scope:      scope.Key(),
		UpdatedAt:  now.UnixMilli(),
		BatchIndex: snap.State.BatchIndex,
		Boxes:      make(map[string][]domain.Word, domain.BoxCount),
		Learned:    snap.State.Learned,
		UsedIDs:    snap.Ledger.IDs(),
	}
	for _, b := range domain.AllBoxes {
		words := snap.State.Words(b)
		if words == nil {
			words = []domain.Word{}
		}
		p.Boxes[b.String()] = words
	}
	if p.Learned == nil {
		p.Learned = []int64{}
	}
	return json.Marshal(p)
}

func decode(scope domain.Scope, data []byte) (Snapshot, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Snapshot{}, fmt.Errorf("decode: %w", err)
	}
	if p.V != FormatVersion {
		return Snapshot{}, fmt.Errorf("format version %d, want %d", p.V, FormatVersion)
	}
	if p.Scope != scope.Key() {
		return Snapshot{}, fmt.Errorf("payload scope %q, want %q", p.Scope, scope.Key())
	}

	state := &domain.BoxState{BatchIndex: p.BatchIndex, Learned: p.Learned}
	for name, words := range p.Boxes {
		b, err := domain.ParseBox(name)
		if err != nil {
			return Snapshot{}, err
		}
		if len(words) > 0 {
			state.SetWords(b, words)
		}
	}
	if len(state.Learned) == 0 {
		state.Learned = nil
	}

	ledger := domain.NewLedger(p.UsedIDs...)
	ledger.Add(state.MemberIDs()...)

	return Snapshot{
		State:     state,
		Ledger:    ledger,
		UpdatedAt: time.UnixMilli(p.UpdatedAt).UTC(),
		Found:     true,
	}, nil
}
