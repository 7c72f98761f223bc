package repos

import (
	"github.com/gyansetu/gyansetu-backend/internal/data/repos/assessment"
	"github.com/gyansetu/gyansetu-backend/internal/data/repos/content"
	"github.com/gyansetu/gyansetu-backend/internal/data/repos/user"
	"github.com/gyansetu/gyansetu-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type UserRepo = user.UserRepo

type MaterialRepo = content.MaterialRepo
type MaterialFilter = content.MaterialFilter
type VideoRepo = content.VideoRepo

type QuestionRepo = assessment.QuestionRepo
type TestAttemptRepo = assessment.TestAttemptRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }

func NewMaterialRepo(db *gorm.DB, baseLog *logger.Logger) MaterialRepo {
	return content.NewMaterialRepo(db, baseLog)
}
func NewVideoRepo(db *gorm.DB, baseLog *logger.Logger) VideoRepo {
	return content.NewVideoRepo(db, baseLog)
}

func NewQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionRepo {
	return assessment.NewQuestionRepo(db, baseLog)
}
func NewTestAttemptRepo(db *gorm.DB, baseLog *logger.Logger) TestAttemptRepo {
	return assessment.NewTestAttemptRepo(db, baseLog)
}
