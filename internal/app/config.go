package app

import (
	"time"

	"github.com/gyansetu/gyansetu-backend/internal/data/db"
	"github.com/gyansetu/gyansetu-backend/internal/platform/envutil"
	"github.com/gyansetu/gyansetu-backend/internal/platform/gemini"
	"github.com/gyansetu/gyansetu-backend/internal/platform/logger"
	"github.com/gyansetu/gyansetu-backend/internal/services"
)

type Config struct {
	ServiceName string
	Environment string
	Version     string
	Port        string

	Postgres db.PostgresConfig

	GeminiAPIKey   string
	GeminiModel    string
	GeminiEndpoint string

	GCSEnabled bool
	Extraction services.ExtractionConfig
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		ServiceName: envutil.String("OTEL_SERVICE_NAME", "gyansetu", log),
		Environment: envutil.String("APP_ENV", "development", log),
		Version:     envutil.String("APP_VERSION", "dev", log),
		Port:        envutil.String("PORT", "5000", log),
		Postgres: db.PostgresConfig{
			DSN:          envutil.String("DATABASE_URL", "", log),
			MaxOpenConns: envutil.Int("DB_MAX_OPEN_CONNS", 20, log),
			MaxIdleConns: envutil.Int("DB_MAX_IDLE_CONNS", 5, log),
		},
		GeminiAPIKey:   envutil.String("GEMINI_API_KEY", "", log),
		GeminiModel:    envutil.String("GEMINI_MODEL", gemini.DefaultModel, log),
		GeminiEndpoint: envutil.String("GEMINI_ENDPOINT", "", log),
		GCSEnabled:     envutil.Bool("GCS_ENABLED", false, log),
		Extraction: services.ExtractionConfig{
			// Zero keeps downloads unbounded in time.
			FetchTimeout: envutil.Seconds("PDF_FETCH_TIMEOUT_SECONDS", 0, log),
			MaxPages:     envutil.Int("PDF_MAX_PAGES", 5, log),
			MaxBytes:     int64(envutil.Int("PDF_MAX_BYTES", 50<<20, log)),
		},
	}
}

func (c Config) Addr() string { return ":" + c.Port }

// ShutdownTimeout bounds graceful HTTP shutdown.
const ShutdownTimeout = 15 * time.Second
