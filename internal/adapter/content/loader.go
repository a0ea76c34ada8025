// Package content batches word lookups for the review track. Every lookup
// gets its own dataloader, so ids are deduplicated and split into bounded
// queries while edits and deletions show up on the next lookup.
package content

import (
	"context"
	"fmt"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/boxstudy/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type wordRepo interface {
	Pool(ctx context.Context, scope domain.Scope) ([]domain.Word, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Word, error)
}

// Loader is a word content provider backed by a repository.
type Loader struct {
	repo wordRepo
}

// NewLoader creates a Loader over repo.
func NewLoader(repo wordRepo) *Loader {
	return &Loader{repo: repo}
}

// newBatchLoader creates a loader whose cache lives for one lookup only.
func (l *Loader) newBatchLoader() *dataloader.Loader[int64, *domain.Word] {
	return dataloader.NewBatchedLoader(
		newWordsBatchFn(l.repo),
		dataloader.WithWait[int64, *domain.Word](wait),
		dataloader.WithBatchCapacity[int64, *domain.Word](maxBatch),
	)
}

// Pool returns every word of a scope. Pools are not cached; the caller
// sanitizes persisted state against the live pool on every scope entry.
func (l *Loader) Pool(ctx context.Context, scope domain.Scope) ([]domain.Word, error) {
	return l.repo.Pool(ctx, scope)
}

// GetByIDs returns the words for ids in order, skipping ids with no content.
func (l *Loader) GetByIDs(ctx context.Context, ids []int64) ([]domain.Word, error) {
	if len(ids) == 0 {
		return []domain.Word{}, nil
	}

	words, errs := l.newBatchLoader().LoadMany(ctx, ids)()
	out := make([]domain.Word, 0, len(ids))
	for i, w := range words {
		if i < len(errs) && errs[i] != nil {
			return nil, fmt.Errorf("load word %d: %w", ids[i], errs[i])
		}
		if w != nil {
			out = append(out, *w)
		}
	}
	return out, nil
}

func newWordsBatchFn(repo wordRepo) dataloader.BatchFunc[int64, *domain.Word] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.Word] {
		results := make([]*dataloader.Result[*domain.Word], len(keys))

		words, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[*domain.Word]{Error: err}
			}
			return results
		}

		byID := make(map[int64]*domain.Word, len(words))
		for i := range words {
			byID[words[i].ID] = &words[i]
		}
		for i, k := range keys {
			results[i] = &dataloader.Result[*domain.Word]{Data: byID[k]}
		}
		return results
	}
}
