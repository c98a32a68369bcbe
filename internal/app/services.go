package app

import (
	"github.com/kairo-app/kairo-backend/internal/pkg/logger"
	"github.com/kairo-app/kairo-backend/internal/services"
)

type Services struct {
	TemplateSource services.TemplateSource
	DailyTasks     services.DailyTaskService
}

func wireServices(log *logger.Logger, cfg Config, reposet Repos, clients Clients) Services {
	log.Info("Wiring services...")

	source := services.NewTemplateSource(
		reposet.Template,
		reposet.TemplateText,
		clients.TemplateCache,
		cfg.StoreTimeout,
		log,
	)

	dailyTasks := services.NewDailyTaskService(
		reposet.Goal,
		reposet.Challenge,
		reposet.Profile,
		source,
		cfg.DesiredMin,
		cfg.DesiredMax,
		nil,
		log,
	)

	return Services{
		TemplateSource: source,
		DailyTasks:     dailyTasks,
	}
}
