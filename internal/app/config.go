package app

import (
	"time"

	"github.com/kairo-app/kairo-backend/internal/pkg/logger"
	"github.com/kairo-app/kairo-backend/internal/utils"
)

type Config struct {
	Port         string
	JWTSecretKey string

	// Daily task generation bounds.
	DesiredMin int
	DesiredMax int

	// Template store behaviour.
	StoreTimeout     time.Duration
	TemplateCacheTTL time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	desiredMin := utils.GetEnvAsInt("TASKS_DESIRED_MIN", 3, log)
	desiredMax := utils.GetEnvAsInt("TASKS_DESIRED_MAX", 5, log)
	storeTimeoutMS := utils.GetEnvAsInt("TEMPLATE_STORE_TIMEOUT_MS", 3000, log)
	cacheTTLSeconds := utils.GetEnvAsInt("TEMPLATE_CACHE_TTL", 300, log)
	return Config{
		Port:             port,
		JWTSecretKey:     jwtSecretKey,
		DesiredMin:       desiredMin,
		DesiredMax:       desiredMax,
		StoreTimeout:     time.Duration(storeTimeoutMS) * time.Millisecond,
		TemplateCacheTTL: time.Duration(cacheTTLSeconds) * time.Second,
	}
}
