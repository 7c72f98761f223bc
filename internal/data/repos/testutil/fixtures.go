package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	types "github.com/gyansetu/gyansetu-backend/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email, role string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:       uuid.New(),
		FullName: "Test User",
		Email:    email,
		Role:     role,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedMaterial(tb testing.TB, ctx context.Context, tx *gorm.DB, contentType, category string, uploader *uuid.UUID) *types.Material {
	tb.Helper()
	m := &types.Material{
		Title:       "material " + contentType,
		Category:    category,
		Subject:     "Indian Polity",
		ContentType: contentType,
		FileURL:     "https://files.example.com/notes.pdf",
		UploadedBy:  uploader,
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed material: %v", err)
	}
	return m
}

func SeedVideo(tb testing.TB, ctx context.Context, tx *gorm.DB, category string) *types.Video {
	tb.Helper()
	v := &types.Video{
		Title:     "video " + category,
		Category:  category,
		Subject:   "Geography",
		VideoURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		IsYouTube: true,
	}
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed video: %v", err)
	}
	return v
}

// SeedQuestions inserts n questions for subject, all attached to testID.
func SeedQuestions(tb testing.TB, ctx context.Context, tx *gorm.DB, subject string, testID int64, n int) []*types.Question {
	tb.Helper()
	out := make([]*types.Question, 0, n)
	for i := 0; i < n; i++ {
		q := &types.Question{
			TestID:        PtrInt64(testID),
			QuestionText:  "Which article of the Constitution applies?",
			Options:       datatypes.JSONSlice[string]{"Article 14", "Article 19", "Article 21", "Article 32"},
			CorrectAnswer: i % 4,
			Explanation:   "See Part III.",
			Subject:       subject,
		}
		if err := tx.WithContext(ctx).Create(q).Error; err != nil {
			tb.Fatalf("seed question: %v", err)
		}
		out = append(out, q)
	}
	return out
}

func PtrUUID(v uuid.UUID) *uuid.UUID { return &v }

func PtrInt64(v int64) *int64 { return &v }
