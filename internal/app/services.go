package app

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/gyansetu/gyansetu-backend/internal/platform/logger"
	"github.com/gyansetu/gyansetu-backend/internal/services"
)

type Services struct {
	User       services.UserService
	Content    services.ContentService
	Assessment services.AssessmentService
	Tutor      services.TutorService
	Extraction services.ExtractionService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, clients Clients) Services {
	log.Info("Wiring services...")
	extraction := services.NewExtractionService(log, cfg.Extraction, &http.Client{}, clients.Objects)
	return Services{
		User:       services.NewUserService(db, log, reposet.User, reposet.Material, reposet.Video),
		Content:    services.NewContentService(db, log, reposet.User, reposet.Material, reposet.Video, extraction),
		Assessment: services.NewAssessmentService(db, log, reposet.User, reposet.Question, reposet.TestAttempt),
		Tutor:      services.NewTutorService(log, clients.Gemini),
		Extraction: extraction,
	}
}
