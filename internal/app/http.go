package app

import (
	"github.com/kairo-app/kairo-backend/internal/http"
	httpH "github.com/kairo-app/kairo-backend/internal/http/handlers"
	httpMW "github.com/kairo-app/kairo-backend/internal/http/middleware"
	"github.com/kairo-app/kairo-backend/internal/pkg/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health *httpH.HealthHandler
	Tasks  *httpH.TasksHandler
}

func wireMiddleware(log *logger.Logger, cfg Config) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, cfg.JWTSecretKey),
	}
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: httpH.NewHealthHandler(),
		Tasks:  httpH.NewTasksHandler(log, serviceset.DailyTasks),
	}
}

func wireServer(log *logger.Logger, handlerset Handlers, middleware Middleware) *http.Server {
	return http.NewServer(http.RouterConfig{
		Log:            log,
		AuthMiddleware: middleware.Auth,
		HealthHandler:  handlerset.Health,
		TasksHandler:   handlerset.Tasks,
	})
}
