package word_test

import (
	"context"
	"errors"
	"testing"

	"github.com/heartmarshall/boxstudy/internal/adapter/sqldb/testhelper"
	"github.com/heartmarshall/boxstudy/internal/adapter/sqldb/word"
	"github.com/heartmarshall/boxstudy/internal/domain"
)

var scope = domain.BuiltinScope(1, 2, domain.LevelA2)

func TestRepo_Pool_OrderAndAnswers(t *testing.T) {
	t.Parallel()
	db := testhelper.SetupTestDB(t)
	repo := word.New(db)
	ctx := context.Background()

	// Positions out of id order.
	words := []domain.Word{
		{ID: 3, Prompt: "kot", Answers: []string{"cat", " cat ", "kitty"}},
		{ID: 1, Prompt: "pies", Answers: []string{"dog"}, Flipped: true, Media: "dog.png", Type: domain.WordTypeImage},
	}
	for i, w := range words {
		if err := repo.Create(ctx, scope, i, w); err != nil {
			t.Fatalf("Create %d: %v", w.ID, err)
		}
	}
	testhelper.SeedWords(t, db, domain.CustomScope(4), 100, 2)

	pool, err := repo.Pool(ctx, scope)
	if err != nil {
		t.Fatalf("Pool: %v", err)
	}
	if len(pool) != 2 {
		t.Fatalf("Pool len = %d, want 2", len(pool))
	}
	if pool[0].ID != 3 || pool[1].ID != 1 {
		t.Errorf("Pool order = %d, %d; want 3, 1", pool[0].ID, pool[1].ID)
	}
	if len(pool[0].Answers) != 2 || pool[0].Answers[1] != "kitty" {
		t.Errorf("answers = %v, want [cat kitty]", pool[0].Answers)
	}
	if pool[0].Type != domain.WordTypeText {
		t.Errorf("default type = %q", pool[0].Type)
	}
	if !pool[1].Flipped || pool[1].Media != "dog.png" || pool[1].Type != domain.WordTypeImage {
		t.Errorf("word 1 = %+v", pool[1])
	}
}

func TestRepo_GetByIDs(t *testing.T) {
	t.Parallel()
	db := testhelper.SetupTestDB(t)
	repo := word.New(db)
	testhelper.SeedWords(t, db, scope, 1, 5)

	got, err := repo.GetByIDs(context.Background(), []int64{4, 99, 2})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(got) != 2 || got[0].ID != 4 || got[1].ID != 2 {
		t.Fatalf("GetByIDs = %+v", got)
	}
	if got[0].PrimaryAnswer() != "answer-4" {
		t.Errorf("answer = %q", got[0].PrimaryAnswer())
	}

	empty, err := repo.GetByIDs(context.Background(), nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("GetByIDs(nil) = %v, %v", empty, err)
	}
}

func TestRepo_Create_Validation(t *testing.T) {
	t.Parallel()
	repo := word.New(testhelper.SetupTestDB(t))

	err := repo.Create(context.Background(), scope, 0, domain.Word{ID: 1, Prompt: "x", Answers: []string{" "}})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Create err = %v, want ErrValidation", err)
	}
}

func TestRepo_Create_Duplicate(t *testing.T) {
	t.Parallel()
	repo := word.New(testhelper.SetupTestDB(t))
	ctx := context.Background()

	w := domain.Word{ID: 1, Prompt: "x", Answers: []string{"y"}}
	if err := repo.Create(ctx, scope, 0, w); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, scope, 1, w); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("duplicate Create err = %v, want ErrAlreadyExists", err)
	}
}

func TestRepo_Delete(t *testing.T) {
	t.Parallel()
	db := testhelper.SetupTestDB(t)
	repo := word.New(db)
	ctx := context.Background()
	testhelper.SeedWords(t, db, scope, 1, 2)

	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	pool, err := repo.Pool(ctx, scope)
	if err != nil || len(pool) != 1 || pool[0].ID != 2 {
		t.Fatalf("Pool after delete = %+v, %v", pool, err)
	}
	if err := repo.Delete(ctx, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second Delete err = %v, want ErrNotFound", err)
	}
}
