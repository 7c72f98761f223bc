package assessment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/gyansetu/gyansetu-backend/internal/data/repos/testutil"
	types "github.com/gyansetu/gyansetu-backend/internal/domain"
	"github.com/gyansetu/gyansetu-backend/internal/platform/dbctx"
)

func TestQuestionRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	repo := NewQuestionRepo(db, testutil.Logger(t))

	testutil.SeedQuestions(t, ctx, tx, "Indian Polity", 1, 7)
	testutil.SeedQuestions(t, ctx, tx, "Geography", 2, 3)

	byTest, err := repo.ListByTest(dbc, 2)
	if err != nil {
		t.Fatalf("ListByTest: %v", err)
	}
	if len(byTest) != 3 {
		t.Fatalf("ListByTest: expected 3, got %d", len(byTest))
	}
	if len(byTest[0].Options) != 4 || byTest[0].Options[2] != "Article 21" {
		t.Fatalf("ListByTest: options not round-tripped: %+v", byTest[0].Options)
	}

	empty, err := repo.ListByTest(dbc, 42)
	if err != nil {
		t.Fatalf("ListByTest empty: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("ListByTest empty: expected non-nil empty slice, got %#v", empty)
	}

	sample, err := repo.SampleBySubject(dbc, "Indian Polity", 5)
	if err != nil {
		t.Fatalf("SampleBySubject: %v", err)
	}
	if len(sample) != 5 {
		t.Fatalf("SampleBySubject: expected 5, got %d", len(sample))
	}
	seen := map[int64]bool{}
	for _, q := range sample {
		if q.Subject != "Indian Polity" {
			t.Fatalf("SampleBySubject: wrong subject %q", q.Subject)
		}
		if seen[q.ID] {
			t.Fatalf("SampleBySubject: duplicate id %d", q.ID)
		}
		seen[q.ID] = true
	}

	few, err := repo.SampleBySubject(dbc, "Geography", 5)
	if err != nil {
		t.Fatalf("SampleBySubject few: %v", err)
	}
	if len(few) != 3 {
		t.Fatalf("SampleBySubject few: expected all 3, got %d", len(few))
	}

	none, err := repo.SampleBySubject(dbc, "NoSuchSubject", 5)
	if err != nil || len(none) != 0 {
		t.Fatalf("SampleBySubject none: %d, %v", len(none), err)
	}
}

func TestTestAttemptRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	repo := NewTestAttemptRepo(db, testutil.Logger(t))
	userID := uuid.New()

	for i := 0; i < 2; i++ {
		if err := repo.Create(dbc, &types.TestAttempt{UserID: userID, TestID: 1, Score: 4, Accuracy: 80}); err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
	}
	got, err := repo.ListByUser(dbc, userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListByUser: duplicate submissions must both persist, got %d", len(got))
	}
}
