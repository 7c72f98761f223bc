package app

import (
	server "github.com/gyansetu/gyansetu-backend/internal/http"
	"github.com/gyansetu/gyansetu-backend/internal/observability"
	"github.com/gyansetu/gyansetu-backend/internal/platform/logger"
)

func wireServer(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlerset Handlers) *server.Server {
	log.Info("Wiring router...")
	return server.NewServer(server.RouterConfig{
		Log:               log,
		Metrics:           metrics,
		ServiceName:       cfg.ServiceName,
		UserHandler:       handlerset.User,
		ContentHandler:    handlerset.Content,
		AssessmentHandler: handlerset.Assessment,
		TutorHandler:      handlerset.Tutor,
		HealthHandler:     handlerset.Health,
	})
}
