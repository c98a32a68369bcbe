package app

import (
	"gorm.io/gorm"

	"github.com/kairo-app/kairo-backend/internal/data/repos"
	"github.com/kairo-app/kairo-backend/internal/pkg/logger"
)

type Repos struct {
	Goal         repos.GoalRepo
	Challenge    repos.ChallengeRepo
	Template     repos.TemplateRepo
	TemplateText repos.TemplateTextRepo
	Profile      repos.ProfileRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Goal:         repos.NewGoalRepo(db, log),
		Challenge:    repos.NewChallengeRepo(db, log),
		Template:     repos.NewTemplateRepo(db, log),
		TemplateText: repos.NewTemplateTextRepo(db, log),
		Profile:      repos.NewProfileRepo(db, log),
	}
}
