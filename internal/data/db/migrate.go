package db

import (
	types "github.com/kairo-app/kairo-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.Profile{},
		&types.Goal{},

		// Catalog (content-team owned, read-only at runtime)
		&types.TaskTemplate{},
		&types.TemplateText{},

		// Daily task instances; carries the (goal_id, day, text) unique
		// index the materializer's conflict tolerance depends on.
		&types.Challenge{},
	)
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}
