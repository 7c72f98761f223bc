package assessment

import (
	types "github.com/gyansetu/gyansetu-backend/internal/domain"
	"github.com/gyansetu/gyansetu-backend/internal/platform/dbctx"
	"github.com/gyansetu/gyansetu-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type QuestionRepo interface {
	Create(dbc dbctx.Context, questions []*types.Question) ([]*types.Question, error)
	ListByTest(dbc dbctx.Context, testID int64) ([]*types.Question, error)
	// SampleBySubject returns up to n questions in engine-random order.
	SampleBySubject(dbc dbctx.Context, subject string, n int) ([]*types.Question, error)
}

type questionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionRepo {
	return &questionRepo{db: db, log: baseLog.With("repo", "QuestionRepo")}
}

func (r *questionRepo) Create(dbc dbctx.Context, questions []*types.Question) ([]*types.Question, error) {
	if len(questions) == 0 {
		return []*types.Question{}, nil
	}
	if err := dbc.Conn(r.db).Create(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) ListByTest(dbc dbctx.Context, testID int64) ([]*types.Question, error) {
	results := []*types.Question{}
	if err := dbc.Conn(r.db).
		Where("test_id = ?", testID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// RANDOM() is understood by both Postgres and SQLite.
func (r *questionRepo) SampleBySubject(dbc dbctx.Context, subject string, n int) ([]*types.Question, error) {
	results := []*types.Question{}
	if n <= 0 {
		return results, nil
	}
	if err := dbc.Conn(r.db).
		Where("subject = ?", subject).
		Order("RANDOM()").
		Limit(n).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
