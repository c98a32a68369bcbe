package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile mirrors the out-of-scope auth layer's per-user row; this subsystem
// only reads Locale from it.
type Profile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DisplayName string    `gorm:"column:display_name" json:"display_name,omitempty"`
	Locale      string    `gorm:"column:locale;not null;default:'es'" json:"locale"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }
