package app

import (
	"os"
	"strings"

	"github.com/kairo-app/kairo-backend/internal/clients/redis"
	"github.com/kairo-app/kairo-backend/internal/pkg/logger"
)

type Clients struct {
	TemplateCache redis.TemplateCache
}

func wireClients(log *logger.Logger, cfg Config) Clients {
	log.Info("Wiring clients...")

	// Redis is strictly optional; without it the store adapter queries
	// Postgres on every materialization.
	var cache redis.TemplateCache
	if strings.TrimSpace(os.Getenv("REDIS_ADDR")) != "" {
		c, err := redis.NewTemplateCache(log, cfg.TemplateCacheTTL)
		if err != nil {
			log.Warn("Template cache unavailable, continuing without it", "error", err)
		} else {
			cache = c
		}
	}

	return Clients{TemplateCache: cache}
}
