package catalog

import (
	"strings"
	"testing"

	"github.com/kairo-app/kairo-backend/internal/planner"
)

func TestBuildTasksUnknownPair(t *testing.T) {
	if got := BuildTasks("no_such", "whatever", nil); got != nil {
		t.Fatalf("expected nil for unknown category, got %+v", got)
	}
	if got := BuildTasks("salud", "no_such", nil); got != nil {
		t.Fatalf("expected nil for unknown subcategory, got %+v", got)
	}
}

func TestBuildTasksDefaultsApplied(t *testing.T) {
	got := BuildTasks("salud", "bajar_peso", nil)
	if len(got) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(got))
	}
	for _, task := range got {
		if task.ID == "" {
			t.Fatalf("missing id: %+v", task)
		}
		if task.Minutes <= 0 {
			t.Fatalf("missing minutes default: %+v", task)
		}
		if task.Priority != "normal" {
			t.Fatalf("missing priority default: %+v", task)
		}
	}
	if got[0].Title != "Cardio ligero 15 min" {
		t.Fatalf("expected default 15 min cardio title, got %q", got[0].Title)
	}
	if got[0].TimesPerWeek != 4 {
		t.Fatalf("expected default frequency 4, got %v", got[0].TimesPerWeek)
	}
}

func TestBuildTasksFormInterpolation(t *testing.T) {
	form := Form{"minutes": float64(30), "frequency": float64(6), "planTime": "manana"}
	got := BuildTasks("salud", "bajar_peso", form)
	if len(got) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(got))
	}
	if got[0].Title != "Cardio ligero 30 min" {
		t.Fatalf("expected interpolated title, got %q", got[0].Title)
	}
	if got[0].Minutes != 30 || got[0].TimesPerWeek != 6 {
		t.Fatalf("form values not applied: %+v", got[0])
	}
	if got[0].Slot != SlotManana {
		t.Fatalf("expected planTime slot, got %q", got[0].Slot)
	}
	if got[0].KPI == nil || got[0].KPI.Target != 30 || got[0].KPI.Mode != KPIAtLeast {
		t.Fatalf("unexpected KPI: %+v", got[0].KPI)
	}
}

func TestBuildTasksDeterministic(t *testing.T) {
	form := Form{"minutes": float64(20), "modality": "nadar"}
	a := BuildTasks("salud", "cardio", form)
	b := BuildTasks("salud", "cardio", form)
	if len(a) != len(b) {
		t.Fatalf("non-deterministic output length")
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Title != b[i].Title || a[i].Minutes != b[i].Minutes {
			t.Fatalf("non-deterministic output at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
	if !strings.Contains(a[0].Title, "NADAR") {
		t.Fatalf("expected modality in title, got %q", a[0].Title)
	}
}

func TestBuildTasksRequiresGuard(t *testing.T) {
	// otro_habito needs title, metricName and dailyTarget to emit anything.
	if got := BuildTasks("reducir_habitos", "otro_habito", nil); len(got) != 0 {
		t.Fatalf("expected no tasks without required fields, got %+v", got)
	}
	if got := BuildTasks("reducir_habitos", "otro_habito", Form{"title": "café"}); len(got) != 0 {
		t.Fatalf("expected no tasks with partial required fields, got %+v", got)
	}

	form := Form{"title": "café", "metricName": "cups_per_day", "dailyTarget": float64(2)}
	got := BuildTasks("reducir_habitos", "otro_habito", form)
	if len(got) != 1 {
		t.Fatalf("expected 1 task with all required fields, got %d", len(got))
	}
	if got[0].KPI == nil || got[0].KPI.Metric != "cups_per_day" || got[0].KPI.Target != 2 {
		t.Fatalf("unexpected KPI: %+v", got[0].KPI)
	}
}

func TestBuildTasksEveryRegisteredPairYieldsValidTasks(t *testing.T) {
	// Requires-guarded builders need their fields present to produce output.
	form := Form{"title": "café", "metricName": "cups_per_day", "dailyTarget": float64(2)}
	for _, category := range []string{
		"salud", "alimentacion", "mental", "finanzas", "relaciones",
		"carrera", "autocuidado", "organizacion", "reducir_habitos",
	} {
		subs := subcategories(category)
		if len(subs) == 0 {
			t.Fatalf("category %q has no subcategories", category)
		}
		for _, sub := range subs {
			tasks := BuildTasks(category, sub, form)
			if len(tasks) == 0 {
				t.Fatalf("builder (%s, %s) produced no tasks", category, sub)
			}
			for _, task := range tasks {
				if task.ID == "" || task.Title == "" || task.Minutes <= 0 {
					t.Fatalf("invalid task from (%s, %s): %+v", category, sub, task)
				}
			}
		}
	}
}

func TestTaskCandidateAdaptation(t *testing.T) {
	task := Task{Title: "Cardio 20 min", Description: "Ritmo suave", Minutes: 20, Tags: []string{"cardio"}}
	c := task.Candidate("salud")
	if c.Kind != planner.KindAccion {
		t.Fatalf("expected accion kind, got %q", c.Kind)
	}
	if c.Text != "Cardio 20 min — Ritmo suave" {
		t.Fatalf("unexpected text: %q", c.Text)
	}
	if c.Minutes != 20 || c.Category != "salud" {
		t.Fatalf("unexpected candidate: %+v", c)
	}

	bare := Task{Title: "Solo título"}
	if got := bare.Candidate("otro"); got.Text != "Solo título" || got.Minutes != 10 {
		t.Fatalf("unexpected bare candidate: %+v", got)
	}
}
