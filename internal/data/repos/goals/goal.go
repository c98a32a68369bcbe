package goals

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/kairo-app/kairo-backend/internal/domain"
	"github.com/kairo-app/kairo-backend/internal/pkg/dbctx"
	"github.com/kairo-app/kairo-backend/internal/pkg/logger"
)

type GoalRepo interface {
	Create(dbc dbctx.Context, goal *types.Goal) (*types.Goal, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Goal, error)
	ListActiveByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.Goal, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
	Deactivate(dbc dbctx.Context, id uuid.UUID) error
}

type goalRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGoalRepo(db *gorm.DB, baseLog *logger.Logger) GoalRepo {
	return &goalRepo{
		db:  db,
		log: baseLog.With("repo", "GoalRepo"),
	}
}

func (r *goalRepo) Create(dbc dbctx.Context, goal *types.Goal) (*types.Goal, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if goal == nil {
		return nil, nil
	}
	if goal.ID == uuid.Nil {
		goal.ID = uuid.New()
	}
	if err := transaction.WithContext(dbc.Ctx).Create(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

func (r *goalRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Goal, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var goal types.Goal
	err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&goal).Error
	if err != nil {
		return nil, err
	}
	if goal.ID == uuid.Nil {
		return nil, nil
	}
	return &goal, nil
}

func (r *goalRepo) ListActiveByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.Goal, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Goal
	if userID == uuid.Nil {
		return out, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *goalRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return nil
	}
	if updates == nil {
		updates = map[string]interface{}{}
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now()
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.Goal{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *goalRepo) Deactivate(dbc dbctx.Context, id uuid.UUID) error {
	return r.UpdateFields(dbc, id, map[string]interface{}{"active": false})
}
