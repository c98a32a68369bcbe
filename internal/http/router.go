package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/kairo-app/kairo-backend/internal/http/handlers"
	httpMW "github.com/kairo-app/kairo-backend/internal/http/middleware"
	"github.com/kairo-app/kairo-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler *httpH.HealthHandler
	TasksHandler  *httpH.TasksHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")

	protected := api.Group("/")
	{
		// Middleware
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Daily tasks
		if cfg.TasksHandler != nil {
			protected.GET("/goals/:id/tasks/today", cfg.TasksHandler.GetTodayTasks)
			protected.POST("/goals/:id/tasks/today", cfg.TasksHandler.EnsureTodayTasks)
			protected.GET("/goals/:id/plan", cfg.TasksHandler.GetPlan)
			protected.PATCH("/challenges/:id/status", cfg.TasksHandler.UpdateChallengeStatus)
			protected.POST("/tasks/pick", cfg.TasksHandler.PickTask)
		}
	}

	return r
}
