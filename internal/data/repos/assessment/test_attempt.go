package assessment

import (
	"github.com/google/uuid"
	types "github.com/gyansetu/gyansetu-backend/internal/domain"
	"github.com/gyansetu/gyansetu-backend/internal/platform/dbctx"
	"github.com/gyansetu/gyansetu-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type TestAttemptRepo interface {
	Create(dbc dbctx.Context, a *types.TestAttempt) error
	ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.TestAttempt, error)
}

type testAttemptRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTestAttemptRepo(db *gorm.DB, baseLog *logger.Logger) TestAttemptRepo {
	return &testAttemptRepo{db: db, log: baseLog.With("repo", "TestAttemptRepo")}
}

func (r *testAttemptRepo) Create(dbc dbctx.Context, a *types.TestAttempt) error {
	return dbc.Conn(r.db).Create(a).Error
}

func (r *testAttemptRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.TestAttempt, error) {
	var results []*types.TestAttempt
	if err := dbc.Conn(r.db).
		Where("user_id = ?", userID).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
