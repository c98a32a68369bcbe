package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/kairo-app/kairo-backend/internal/domain"
	"github.com/kairo-app/kairo-backend/internal/pkg/dbctx"
	"github.com/kairo-app/kairo-backend/internal/pkg/logger"
)

type TemplateTextRepo interface {
	ListByTemplatesAndLocale(dbc dbctx.Context, templateIDs []uuid.UUID, locale string) ([]*types.TemplateText, error)
	Upsert(dbc dbctx.Context, texts []*types.TemplateText) error
}

type templateTextRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTemplateTextRepo(db *gorm.DB, baseLog *logger.Logger) TemplateTextRepo {
	return &templateTextRepo{
		db:  db,
		log: baseLog.With("repo", "TemplateTextRepo"),
	}
}

func (r *templateTextRepo) ListByTemplatesAndLocale(dbc dbctx.Context, templateIDs []uuid.UUID, locale string) ([]*types.TemplateText, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.TemplateText
	if len(templateIDs) == 0 || locale == "" {
		return out, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("template_id IN ? AND locale = ?", templateIDs, locale).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *templateTextRepo) Upsert(dbc dbctx.Context, texts []*types.TemplateText) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(texts) == 0 {
		return nil
	}
	now := time.Now()
	for _, t := range texts {
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		t.UpdatedAt = now
	}
	return transaction.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "template_id"}, {Name: "locale"}},
			DoUpdates: clause.AssignmentColumns([]string{"text", "updated_at"}),
		}).
		Create(&texts).Error
}
