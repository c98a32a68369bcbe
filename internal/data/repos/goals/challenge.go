package goals

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/kairo-app/kairo-backend/internal/domain"
	"github.com/kairo-app/kairo-backend/internal/pkg/dbctx"
	apperrors "github.com/kairo-app/kairo-backend/internal/pkg/errors"
	"github.com/kairo-app/kairo-backend/internal/pkg/logger"
)

type ChallengeRepo interface {
	CreateIgnoreDuplicates(dbc dbctx.Context, challenges []*types.Challenge) error
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Challenge, error)
	ListByGoalDay(dbc dbctx.Context, goalID uuid.UUID, day string) ([]*types.Challenge, error)
	ListRecentByGoal(dbc dbctx.Context, goalID uuid.UUID, limit int) ([]*types.Challenge, error)
	UpdateStatus(dbc dbctx.Context, id uuid.UUID, status string) (*types.Challenge, error)
}

type challengeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChallengeRepo(db *gorm.DB, baseLog *logger.Logger) ChallengeRepo {
	return &challengeRepo{
		db:  db,
		log: baseLog.With("repo", "ChallengeRepo"),
	}
}

// CreateIgnoreDuplicates inserts the batch tolerating (goal_id, day, text)
// collisions from concurrent materializers. Conflicting rows are dropped, the
// rest land normally.
func (r *challengeRepo) CreateIgnoreDuplicates(dbc dbctx.Context, challenges []*types.Challenge) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(challenges) == 0 {
		return nil
	}
	for _, c := range challenges {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
	}
	err := transaction.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "goal_id"}, {Name: "day"}, {Name: "text"}},
			DoNothing: true,
		}).
		Create(&challenges).Error
	if err != nil && isUniqueViolation(err) {
		r.log.Warn("Duplicate challenge rows dropped on insert", "count", len(challenges))
		return nil
	}
	return err
}

func (r *challengeRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Challenge, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var challenge types.Challenge
	err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&challenge).Error
	if err != nil {
		return nil, err
	}
	if challenge.ID == uuid.Nil {
		return nil, nil
	}
	return &challenge, nil
}

func (r *challengeRepo) ListByGoalDay(dbc dbctx.Context, goalID uuid.UUID, day string) ([]*types.Challenge, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Challenge
	if goalID == uuid.Nil || day == "" {
		return out, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("goal_id = ? AND day = ?", goalID, day).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListRecentByGoal returns the newest rows first; callers use it to rebuild
// selection history across day boundaries.
func (r *challengeRepo) ListRecentByGoal(dbc dbctx.Context, goalID uuid.UUID, limit int) ([]*types.Challenge, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Challenge
	if goalID == uuid.Nil {
		return out, nil
	}
	if limit <= 0 {
		limit = 20
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("goal_id = ?", goalID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus applies the pending -> done|skipped transition. The status
// guard lives in the WHERE clause so two racing updates cannot both win.
func (r *challengeRepo) UpdateStatus(dbc dbctx.Context, id uuid.UUID, status string) (*types.Challenge, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return nil, apperrors.ErrNotFound
	}
	if status != types.ChallengeStatusDone && status != types.ChallengeStatusSkipped {
		return nil, apperrors.ErrInvalidTransition
	}
	res := transaction.WithContext(dbc.Ctx).
		Model(&types.Challenge{}).
		Where("id = ? AND status = ?", id, types.ChallengeStatusPending).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		existing, err := r.GetByID(dbc, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.ErrInvalidTransition
	}
	return r.GetByID(dbc, id)
}

// isUniqueViolation matches duplicate-key failures across the Postgres driver
// in production and the sqlite driver used by the test harness.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
