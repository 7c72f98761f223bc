package app

import (
	"gorm.io/gorm"

	"github.com/gyansetu/gyansetu-backend/internal/data/repos"
	"github.com/gyansetu/gyansetu-backend/internal/platform/logger"
)

type Repos struct {
	User        repos.UserRepo
	Material    repos.MaterialRepo
	Video       repos.VideoRepo
	Question    repos.QuestionRepo
	TestAttempt repos.TestAttemptRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:        repos.NewUserRepo(db, log),
		Material:    repos.NewMaterialRepo(db, log),
		Video:       repos.NewVideoRepo(db, log),
		Question:    repos.NewQuestionRepo(db, log),
		TestAttempt: repos.NewTestAttemptRepo(db, log),
	}
}
