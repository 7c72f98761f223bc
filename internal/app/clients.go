package app

import (
	"context"

	"github.com/gyansetu/gyansetu-backend/internal/platform/gcp"
	"github.com/gyansetu/gyansetu-backend/internal/platform/gemini"
	"github.com/gyansetu/gyansetu-backend/internal/platform/logger"
)

type Clients struct {
	// Gemini is nil when no API key is configured.
	Gemini gemini.Client
	// Objects is nil unless GCS_ENABLED is set.
	Objects gcp.ObjectReader
}

// wireClients never fails: a missing optional client is logged and left nil.
func wireClients(ctx context.Context, log *logger.Logger, cfg Config) Clients {
	log.Info("Wiring clients...")
	var out Clients

	g, err := gemini.NewClient(ctx, log, gemini.Config{
		APIKey:   cfg.GeminiAPIKey,
		Model:    cfg.GeminiModel,
		Endpoint: cfg.GeminiEndpoint,
	})
	if err != nil {
		log.Warn("Gemini client disabled; AI tutor will return errors", "error", err)
	} else {
		out.Gemini = g
	}

	if cfg.GCSEnabled {
		objs, err := gcp.NewObjectReader(ctx, log)
		if err != nil {
			log.Warn("Cloud Storage reader disabled", "error", err)
		} else {
			out.Objects = objs
		}
	}
	return out
}

func (c Clients) Close() {
	if c.Objects != nil {
		_ = c.Objects.Close()
	}
}
