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

// TemplateFilter narrows ListActive. Zero-valued bounds are ignored.
type TemplateFilter struct {
	Category   string
	MinLevel   int
	MaxLevel   int
	MinMinutes int
	MaxMinutes int
	Limit      int
}

type TemplateRepo interface {
	ListActive(dbc dbctx.Context, filter TemplateFilter) ([]*types.TaskTemplate, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.TaskTemplate, error)
	Upsert(dbc dbctx.Context, templates []*types.TaskTemplate) error
}

type templateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTemplateRepo(db *gorm.DB, baseLog *logger.Logger) TemplateRepo {
	return &templateRepo{
		db:  db,
		log: baseLog.With("repo", "TemplateRepo"),
	}
}

func (r *templateRepo) ListActive(dbc dbctx.Context, filter TemplateFilter) ([]*types.TaskTemplate, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.TaskTemplate
	if filter.Category == "" {
		return out, nil
	}

	q := transaction.WithContext(dbc.Ctx).
		Model(&types.TaskTemplate{}).
		Where("category = ? AND active = ?", filter.Category, true)
	if filter.MinLevel > 0 {
		q = q.Where("level >= ?", filter.MinLevel)
	}
	if filter.MaxLevel > 0 {
		q = q.Where("level <= ?", filter.MaxLevel)
	}
	if filter.MinMinutes > 0 {
		q = q.Where("minutes >= ?", filter.MinMinutes)
	}
	if filter.MaxMinutes > 0 {
		q = q.Where("minutes <= ?", filter.MaxMinutes)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	if err := q.Order("created_at ASC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *templateRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.TaskTemplate, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var tpl types.TaskTemplate
	err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&tpl).Error
	if err != nil {
		return nil, err
	}
	if tpl.ID == uuid.Nil {
		return nil, nil
	}
	return &tpl, nil
}

func (r *templateRepo) Upsert(dbc dbctx.Context, templates []*types.TaskTemplate) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(templates) == 0 {
		return nil
	}
	now := time.Now()
	for _, t := range templates {
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		t.UpdatedAt = now
	}
	return transaction.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"category", "subcategory", "level", "kind", "minutes", "tags", "active", "updated_at"}),
		}).
		Create(&templates).Error
}
