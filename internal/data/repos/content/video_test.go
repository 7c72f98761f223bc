package content

import (
	"context"
	"testing"

	"github.com/gyansetu/gyansetu-backend/internal/data/repos/testutil"
	types "github.com/gyansetu/gyansetu-backend/internal/domain"
	"github.com/gyansetu/gyansetu-backend/internal/platform/dbctx"
)

func TestVideoRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	repo := NewVideoRepo(db, testutil.Logger(t))

	v := &types.Video{
		Title:     "Lecture recording",
		Category:  "mains",
		Subject:   "History",
		VideoURL:  "https://cdn.example.com/lecture.mp4",
		IsYouTube: false,
	}
	if err := repo.Create(dbc, v); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByID(dbc, v.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.IsYouTube {
		t.Fatalf("GetByID: expected stored is_youtube=false, got %+v", got)
	}

	testutil.SeedVideo(t, ctx, tx, "prelims")

	all, err := repo.List(dbc, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List: expected 2, got %d", len(all))
	}
	mains, err := repo.List(dbc, "mains")
	if err != nil {
		t.Fatalf("List category: %v", err)
	}
	if len(mains) != 1 || mains[0].ID != v.ID {
		t.Fatalf("List category: unexpected %+v", mains)
	}

	n, err := repo.Count(dbc)
	if err != nil || n != 2 {
		t.Fatalf("Count: %d, %v", n, err)
	}

	deleted, err := repo.Delete(dbc, v.ID)
	if err != nil || !deleted {
		t.Fatalf("Delete: deleted=%v err=%v", deleted, err)
	}
	deleted, err = repo.Delete(dbc, 999999)
	if err != nil || deleted {
		t.Fatalf("Delete unknown: deleted=%v err=%v", deleted, err)
	}
}
