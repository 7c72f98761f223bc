package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/gyansetu/gyansetu-backend/internal/http/handlers"
	httpMW "github.com/gyansetu/gyansetu-backend/internal/http/middleware"
	"github.com/gyansetu/gyansetu-backend/internal/observability"
	"github.com/gyansetu/gyansetu-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string

	UserHandler       *httpH.UserHandler
	ContentHandler    *httpH.ContentHandler
	AssessmentHandler *httpH.AssessmentHandler
	TutorHandler      *httpH.TutorHandler
	HealthHandler     *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	httpH.RegisterValidators()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "gyansetu"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Identity & roles
		if cfg.UserHandler != nil {
			api.GET("/user/:uid", cfg.UserHandler.GetProfile)
			api.POST("/admin/promote-user", cfg.UserHandler.PromoteUser)
			api.GET("/expert/students", cfg.UserHandler.ListStudents)
			api.GET("/expert/stats", cfg.UserHandler.Stats)
		}

		// Content delivery & management
		if cfg.ContentHandler != nil {
			api.GET("/materials", cfg.ContentHandler.ListMaterials)
			api.GET("/videos", cfg.ContentHandler.ListVideos)
			api.GET("/pyp", cfg.ContentHandler.ListPYP)
			api.GET("/expert/my-content", cfg.ContentHandler.ListMyContent)
			api.POST("/expert/upload-content", cfg.ContentHandler.UploadContent)
			api.POST("/expert/upload-video", cfg.ContentHandler.UploadVideo)
			api.DELETE("/expert/delete-content/:id", cfg.ContentHandler.DeleteContent)
			api.DELETE("/expert/delete-video/:id", cfg.ContentHandler.DeleteVideo)
		}

		// Assessment
		if cfg.AssessmentHandler != nil {
			api.GET("/test/:test_id/questions", cfg.AssessmentHandler.TestQuestions)
			api.POST("/test/submit", cfg.AssessmentHandler.SubmitTest)
			api.POST("/ai/generate-test", cfg.AssessmentHandler.GenerateTest)
		}

		// AI tutor
		if cfg.TutorHandler != nil {
			api.POST("/ai/ask", cfg.TutorHandler.Ask)
		}
	}

	return r
}
