package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ChallengeStatusPending = "pending"
	ChallengeStatusDone    = "done"
	ChallengeStatusSkipped = "skipped"
)

// Challenge is a concrete task materialized for a goal on one calendar day.
// Once created it is a frozen copy of the template/library text; later
// catalog edits never touch it. The (goal_id, day, text) unique index is the
// storage-level guard against concurrent materialization races.
type Challenge struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	GoalID uuid.UUID `gorm:"type:uuid;column:goal_id;not null;uniqueIndex:idx_challenge_goal_day_text,priority:1" json:"goal_id"`
	Day    string    `gorm:"column:day;not null;uniqueIndex:idx_challenge_goal_day_text,priority:2" json:"day"`
	Text   string    `gorm:"column:text;not null;uniqueIndex:idx_challenge_goal_day_text,priority:3" json:"text"`

	Minutes int    `gorm:"column:minutes;not null;default:10" json:"minutes"`
	Kind    string `gorm:"column:kind;not null;default:'accion'" json:"kind"`
	Status  string `gorm:"column:status;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Challenge) TableName() string { return "challenges" }

// CanTransitionTo enforces pending -> done | skipped, both terminal.
func (c *Challenge) CanTransitionTo(status string) bool {
	if c.Status != ChallengeStatusPending {
		return false
	}
	return status == ChallengeStatusDone || status == ChallengeStatusSkipped
}
