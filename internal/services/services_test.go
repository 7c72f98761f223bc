package services

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/gyansetu/gyansetu-backend/internal/data/repos"
	"github.com/gyansetu/gyansetu-backend/internal/data/repos/testutil"
	"github.com/gyansetu/gyansetu-backend/internal/platform/apierr"
	"github.com/gyansetu/gyansetu-backend/internal/platform/dbctx"
)

type fixture struct {
	db  *gorm.DB
	ctx context.Context
	dbc dbctx.Context

	users      UserService
	content    ContentService
	assessment AssessmentService
	extractor  *fakeExtractor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	userRepo := repos.NewUserRepo(db, log)
	materialRepo := repos.NewMaterialRepo(db, log)
	videoRepo := repos.NewVideoRepo(db, log)
	ex := &fakeExtractor{}

	return &fixture{
		db:         db,
		ctx:        ctx,
		dbc:        dbctx.Context{Ctx: ctx},
		users:      NewUserService(db, log, userRepo, materialRepo, videoRepo),
		content:    NewContentService(db, log, userRepo, materialRepo, videoRepo, ex),
		assessment: NewAssessmentService(db, log, userRepo, repos.NewQuestionRepo(db, log), repos.NewTestAttemptRepo(db, log)),
		extractor:  ex,
	}
}

type fakeExtractor struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (f *fakeExtractor) ExtractPDF(ctx context.Context, materialID int64, fileURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fileURL)
	return f.err
}

func (f *fakeExtractor) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func wantStatus(t *testing.T, err error, want int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with status %d, got nil", want)
	}
	if got := apierr.Status(err, http.StatusInternalServerError); got != want {
		t.Fatalf("unexpected status: got=%d want=%d (err=%v)", got, want, err)
	}
}
