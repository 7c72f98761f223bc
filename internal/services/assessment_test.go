package services

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gyansetu/gyansetu-backend/internal/data/repos"
	"github.com/gyansetu/gyansetu-backend/internal/data/repos/testutil"
	"github.com/gyansetu/gyansetu-backend/internal/platform/dbctx"
)

func TestGenerateTest(t *testing.T) {
	f := newFixture(t)
	testutil.SeedQuestions(t, f.ctx, f.db, DefaultTestSubject, 1, 7)
	testutil.SeedQuestions(t, f.ctx, f.db, "Economy", 2, 3)

	_, err := f.assessment.GenerateTest(f.dbc, "NoSuchSubject")
	wantStatus(t, err, http.StatusNotFound)
	if err != nil && !strings.Contains(err.Error(), "NoSuchSubject") {
		t.Fatalf("404 message should name the subject: %v", err)
	}

	qs, err := f.assessment.GenerateTest(f.dbc, "")
	if err != nil {
		t.Fatalf("GenerateTest default subject: %v", err)
	}
	if len(qs) != GeneratedTestSize {
		t.Fatalf("expected %d questions, got %d", GeneratedTestSize, len(qs))
	}
	seen := map[int64]bool{}
	for _, q := range qs {
		if q.Subject != DefaultTestSubject {
			t.Fatalf("wrong subject: %q", q.Subject)
		}
		if seen[q.ID] {
			t.Fatalf("duplicate question %d in sample", q.ID)
		}
		seen[q.ID] = true
	}

	qs, err = f.assessment.GenerateTest(f.dbc, "Economy")
	if err != nil {
		t.Fatalf("GenerateTest Economy: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("fewer than %d rows should return all of them, got %d", GeneratedTestSize, len(qs))
	}
}

func TestTestQuestions(t *testing.T) {
	f := newFixture(t)
	testutil.SeedQuestions(t, f.ctx, f.db, "History", 42, 2)

	qs, err := f.assessment.TestQuestions(f.dbc, 42)
	if err != nil {
		t.Fatalf("TestQuestions: %v", err)
	}
	if len(qs) != 2 || len(qs[0].Options) != 4 {
		t.Fatalf("unexpected questions: %+v", qs)
	}

	empty, err := f.assessment.TestQuestions(f.dbc, 7)
	if err != nil {
		t.Fatalf("TestQuestions empty: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}

func TestSubmitTestValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.assessment.SubmitTest(f.dbc, SubmitTestInput{UserID: "x", TestID: 1})
	wantStatus(t, err, http.StatusBadRequest)

	_, err = f.assessment.SubmitTest(f.dbc, SubmitTestInput{UserID: uuid.NewString(), TestID: 1, Score: 3, Accuracy: 60})
	wantStatus(t, err, http.StatusBadRequest)
}

func TestConcurrentDuplicateSubmissionsBothPersist(t *testing.T) {
	f := newFixture(t)
	u := testutil.SeedUser(t, f.ctx, f.db, "s@example.com", "student")
	in := SubmitTestInput{UserID: u.ID.String(), TestID: 11, Score: 4, Accuracy: 80.5}

	var g errgroup.Group
	for i := 0; i < 2; i++ {
		g.Go(func() error {
			_, err := f.assessment.SubmitTest(f.dbc, in)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent SubmitTest: %v", err)
	}

	attempts, err := repos.NewTestAttemptRepo(f.db, testutil.Logger(t)).ListByUser(dbctx.Context{Ctx: f.ctx}, u.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("expected both submissions to persist, got %d", len(attempts))
	}
	for _, a := range attempts {
		if a.TestID != 11 || a.Score != 4 || a.Accuracy != 80.5 {
			t.Fatalf("unexpected attempt: %+v", a)
		}
	}
}
