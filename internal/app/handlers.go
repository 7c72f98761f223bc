package app

import (
	httpH "github.com/gyansetu/gyansetu-backend/internal/http/handlers"
	"github.com/gyansetu/gyansetu-backend/internal/platform/logger"
)

type Handlers struct {
	User       *httpH.UserHandler
	Content    *httpH.ContentHandler
	Assessment *httpH.AssessmentHandler
	Tutor      *httpH.TutorHandler
	Health     *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		User:       httpH.NewUserHandler(serviceset.User),
		Content:    httpH.NewContentHandler(serviceset.Content),
		Assessment: httpH.NewAssessmentHandler(serviceset.Assessment),
		Tutor:      httpH.NewTutorHandler(serviceset.Tutor),
		Health:     httpH.NewHealthHandler(),
	}
}
