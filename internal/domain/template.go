package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TaskTemplate is a catalog row authored by the content team. Read-only to
// this subsystem except for the seeder.
type TaskTemplate struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Category    string `gorm:"column:category;not null;index:idx_task_template_filter,priority:1" json:"category"`
	Subcategory string `gorm:"column:subcategory" json:"subcategory,omitempty"`
	Level       int    `gorm:"column:level;not null;default:1;index:idx_task_template_filter,priority:2" json:"level"`
	Kind        string `gorm:"column:kind;not null;default:'accion'" json:"kind"`
	Minutes     int    `gorm:"column:minutes;not null;default:10" json:"minutes"`

	Tags   datatypes.JSON `gorm:"column:tags;type:jsonb" json:"tags,omitempty"`
	Active bool           `gorm:"column:active;not null;default:true;index" json:"active"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (TaskTemplate) TableName() string { return "task_templates" }

// TagList decodes the JSON tag column; a missing or malformed column reads
// as no tags, which the adapter treats as universally eligible.
func (t *TaskTemplate) TagList() []string {
	if len(t.Tags) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(t.Tags, &out); err != nil {
		return nil
	}
	return out
}

// TemplateText is the localized display string for a template. At most one
// row per (template, locale).
type TemplateText struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	TemplateID uuid.UUID `gorm:"type:uuid;column:template_id;not null;uniqueIndex:idx_template_text_locale,priority:1" json:"template_id"`
	Locale     string    `gorm:"column:locale;not null;uniqueIndex:idx_template_text_locale,priority:2" json:"locale"`
	Text       string    `gorm:"column:text;not null" json:"text"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (TemplateText) TableName() string { return "task_template_i18n" }
