package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gyansetu/gyansetu-backend/internal/platform/apierr"
	"github.com/gyansetu/gyansetu-backend/internal/platform/gemini"
	"github.com/gyansetu/gyansetu-backend/internal/platform/logger"
)

const (
	TutorSystemInstruction = "You are the GyanSetu AI Tutor. Provide helpful GPSC advice."
	TutorFailureMessage    = "AI Tutor encountered a problem. Please try again later."
)

type TutorService interface {
	Ask(ctx context.Context, query string) (string, error)
}

type tutorService struct {
	log   *logger.Logger
	model gemini.Client
}

// NewTutorService accepts a nil client; every Ask then fails with the generic error.
func NewTutorService(log *logger.Logger, model gemini.Client) TutorService {
	return &tutorService{log: log.With("service", "TutorService"), model: model}
}

func (ts *tutorService) Ask(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", apierr.BadRequest(errors.New("Query is required"))
	}
	if ts.model == nil {
		ts.log.Error("AI tutor unavailable", "error", "no generative model client configured")
		return "", tutorFailure(nil)
	}
	start := time.Now()
	answer, err := ts.model.GenerateText(ctx, TutorSystemInstruction, query)
	if err != nil {
		ts.log.Error("AI tutor call failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		return "", tutorFailure(err)
	}
	return answer, nil
}

// tutorFailure hides upstream detail from clients; err is kept for errors.Is.
func tutorFailure(err error) error {
	return &apierr.Error{
		Status: http.StatusInternalServerError,
		Code:   "ai_tutor_failed",
		Err:    &hiddenErr{cause: err},
	}
}

type hiddenErr struct{ cause error }

func (e *hiddenErr) Error() string { return TutorFailureMessage }
func (e *hiddenErr) Unwrap() error { return e.cause }
