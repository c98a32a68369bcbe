package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Goal is a user's tracked objective, created once at onboarding. The
// free-form onboarding answers live in FormData; each template builder reads
// its own keys out of it with defensive defaults.
type Goal struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;column:user_id;not null;index" json:"user_id"`

	Category      string         `gorm:"column:category;not null;index" json:"category"`
	Subcategory   string         `gorm:"column:subcategory" json:"subcategory,omitempty"`
	Level         int            `gorm:"column:level;not null;default:1" json:"level"`
	MinutesPerDay int            `gorm:"column:minutes_per_day;not null;default:10" json:"minutes_per_day"`
	FormData      datatypes.JSON `gorm:"column:form_data;type:jsonb" json:"form_data,omitempty"`

	Active bool `gorm:"column:active;not null;default:true;index" json:"active"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Goal) TableName() string { return "goals" }

// ClampedLevel keeps declared proficiency inside the supported 1..5 range.
func (g *Goal) ClampedLevel() int {
	if g.Level < 1 {
		return 1
	}
	if g.Level > 5 {
		return 5
	}
	return g.Level
}

// PreferredMinutes is MinutesPerDay with the >= 1 invariant applied.
func (g *Goal) PreferredMinutes() int {
	if g.MinutesPerDay < 1 {
		return 10
	}
	return g.MinutesPerDay
}
