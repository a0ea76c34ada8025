package testhelper

import (
	"context"
	"fmt"
	"testing"

	"github.com/heartmarshall/boxstudy/internal/adapter/sqldb"
	"github.com/heartmarshall/boxstudy/internal/adapter/sqldb/word"
	"github.com/heartmarshall/boxstudy/internal/domain"
)

// MakeWords builds n text words with ids firstID, firstID+1, ...
func MakeWords(firstID int64, n int) []domain.Word {
	words := make([]domain.Word, n)
	for i := range words {
		id := firstID + int64(i)
		words[i] = domain.Word{
			ID:      id,
			Prompt:  fmt.Sprintf("prompt-%d", id),
			Answers: []string{fmt.Sprintf("answer-%d", id)},
			Type:    domain.WordTypeText,
		}
	}
	return words
}

// SeedWords stores n words in scope and returns them in content order.
func SeedWords(t *testing.T, db *sqldb.DB, scope domain.Scope, firstID int64, n int) []domain.Word {
	t.Helper()

	repo := word.New(db)
	words := MakeWords(firstID, n)
	for i, w := range words {
		if err := repo.Create(context.Background(), scope, i, w); err != nil {
			t.Fatalf("testhelper: seed word %d: %v", w.ID, err)
		}
	}
	return words
}
