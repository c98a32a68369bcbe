package repos

import (
	"gorm.io/gorm"

	"github.com/kairo-app/kairo-backend/internal/data/repos/catalog"
	"github.com/kairo-app/kairo-backend/internal/data/repos/goals"
	"github.com/kairo-app/kairo-backend/internal/data/repos/user"
	"github.com/kairo-app/kairo-backend/internal/pkg/logger"
)

type GoalRepo = goals.GoalRepo
type ChallengeRepo = goals.ChallengeRepo

type TemplateRepo = catalog.TemplateRepo
type TemplateTextRepo = catalog.TemplateTextRepo
type TemplateFilter = catalog.TemplateFilter

type ProfileRepo = user.ProfileRepo

func NewGoalRepo(db *gorm.DB, baseLog *logger.Logger) GoalRepo {
	return goals.NewGoalRepo(db, baseLog)
}
func NewChallengeRepo(db *gorm.DB, baseLog *logger.Logger) ChallengeRepo {
	return goals.NewChallengeRepo(db, baseLog)
}

func NewTemplateRepo(db *gorm.DB, baseLog *logger.Logger) TemplateRepo {
	return catalog.NewTemplateRepo(db, baseLog)
}
func NewTemplateTextRepo(db *gorm.DB, baseLog *logger.Logger) TemplateTextRepo {
	return catalog.NewTemplateTextRepo(db, baseLog)
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	return user.NewProfileRepo(db, baseLog)
}
