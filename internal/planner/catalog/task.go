package catalog

import (
	"strconv"
	"strings"

	"github.com/kairo-app/kairo-backend/internal/planner"
)

type Slot string

const (
	SlotManana   Slot = "manana"
	SlotMediodia Slot = "mediodia"
	SlotTarde    Slot = "tarde"
	SlotNoche    Slot = "noche"
)

type KPIMode string

const (
	KPIAtLeast KPIMode = "atLeast"
	KPIEquals  KPIMode = "equals"
	KPIAtMost  KPIMode = "atMost"
)

// KPI describes a per-execution target attached to a task for display and
// analytics only; nothing in this subsystem enforces it.
type KPI struct {
	Metric string  `json:"metric"`
	Target float64 `json:"target"`
	Unit   string  `json:"unit,omitempty"`
	Mode   KPIMode `json:"mode,omitempty"`
}

// Task is one parametrized candidate produced by a catalog builder.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Minutes     int    `json:"minutes"`

	Slot          Slot    `json:"slot,omitempty"`
	RepeatEvery   int     `json:"repeat_every,omitempty"`
	RepeatUnit    string  `json:"repeat_unit,omitempty"` // day | week | month
	TimesPerWeek  float64 `json:"times_per_week,omitempty"`
	DayOfWeekHint []int   `json:"day_of_week_hint,omitempty"` // 0-6, Sunday=0

	Priority string   `json:"priority,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	KPI      *KPI     `json:"kpi,omitempty"`

	// Requires lists form fields without which the task is not emitted.
	Requires []string `json:"-"`
}

// Candidate adapts a catalog task to the engine shape: title and description
// collapse into the display text, kind and level stay neutral until the
// content team models them in the store.
func (t Task) Candidate(category string) planner.Candidate {
	text := t.Title
	if t.Description != "" {
		text = t.Title + " — " + t.Description
	}
	minutes := t.Minutes
	if minutes <= 0 {
		minutes = 10
	}
	return planner.Candidate{
		Kind:     planner.KindAccion,
		Minutes:  minutes,
		Text:     text,
		Category: category,
		Level:    2,
		Tags:     t.Tags,
	}
}

func taskID(parts ...string) string {
	joined := strings.ToLower(strings.Join(parts, ":"))
	return strings.Join(strings.Fields(joined), "_")
}

func formatNum(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func upper(s string) string { return strings.ToUpper(s) }

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
