package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gyansetu/gyansetu-backend/internal/data/repos"
	types "github.com/gyansetu/gyansetu-backend/internal/domain"
	"github.com/gyansetu/gyansetu-backend/internal/platform/apierr"
	"github.com/gyansetu/gyansetu-backend/internal/platform/dbctx"
	"github.com/gyansetu/gyansetu-backend/internal/platform/logger"
)

const (
	DefaultTestSubject = "Indian Polity"
	GeneratedTestSize  = 5
)

type SubmitTestInput struct {
	UserID   string
	TestID   int64
	Score    int
	Accuracy float64
}

type AssessmentService interface {
	TestQuestions(dbc dbctx.Context, testID int64) ([]*types.Question, error)
	// SubmitTest always records a new attempt; resubmissions are not merged.
	SubmitTest(dbc dbctx.Context, in SubmitTestInput) (*types.TestAttempt, error)
	GenerateTest(dbc dbctx.Context, subject string) ([]*types.Question, error)
}

type assessmentService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     repos.UserRepo
	questionRepo repos.QuestionRepo
	attemptRepo  repos.TestAttemptRepo
}

func NewAssessmentService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, questionRepo repos.QuestionRepo, attemptRepo repos.TestAttemptRepo) AssessmentService {
	return &assessmentService{
		db:           db,
		log:          log.With("service", "AssessmentService"),
		userRepo:     userRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
	}
}

func (as *assessmentService) TestQuestions(dbc dbctx.Context, testID int64) ([]*types.Question, error) {
	qs, err := as.questionRepo.ListByTest(dbc, testID)
	if err != nil {
		as.log.Error("List test questions failed", "test_id", testID, "error", err)
		return nil, apierr.FromDB(err)
	}
	return qs, nil
}

func (as *assessmentService) SubmitTest(dbc dbctx.Context, in SubmitTestInput) (*types.TestAttempt, error) {
	userID, err := uuid.Parse(strings.TrimSpace(in.UserID))
	if err != nil {
		return nil, apierr.BadRequest(fmt.Errorf("invalid user_id %q", in.UserID))
	}
	attempt := &types.TestAttempt{
		UserID:   userID,
		TestID:   in.TestID,
		Score:    in.Score,
		Accuracy: in.Accuracy,
	}
	err = inTx(as.db, dbc, func(txc dbctx.Context) error {
		u, err := as.userRepo.GetByID(txc, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return apierr.BadRequest(fmt.Errorf("user %s does not exist", userID))
		}
		return as.attemptRepo.Create(txc, attempt)
	})
	if err != nil {
		as.log.Warn("Submit test failed", "user_id", userID, "test_id", in.TestID, "error", err)
		return nil, uploadErr(err)
	}
	as.log.Info("Test attempt recorded", "attempt_id", attempt.ID, "user_id", userID, "test_id", in.TestID)
	return attempt, nil
}

func (as *assessmentService) GenerateTest(dbc dbctx.Context, subject string) ([]*types.Question, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = DefaultTestSubject
	}
	qs, err := as.questionRepo.SampleBySubject(dbc, subject, GeneratedTestSize)
	if err != nil {
		as.log.Error("Sample questions failed", "subject", subject, "error", err)
		return nil, apierr.FromDB(err)
	}
	if len(qs) == 0 {
		return nil, apierr.NotFound("No questions found for subject: " + subject)
	}
	return qs, nil
}
