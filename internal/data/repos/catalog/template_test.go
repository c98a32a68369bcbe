package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/kairo-app/kairo-backend/internal/data/repos/testutil"
	types "github.com/kairo-app/kairo-backend/internal/domain"
	"github.com/kairo-app/kairo-backend/internal/pkg/dbctx"
)

func TestTemplateRepoListActive(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewTemplateRepo(db, testutil.Logger(t))
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	testutil.SeedTemplate(t, ctx, tx, "salud", 2, 10, "accion", nil)
	testutil.SeedTemplate(t, ctx, tx, "salud", 4, 10, "accion", nil)
	testutil.SeedTemplate(t, ctx, tx, "salud", 2, 30, "accion", nil)
	testutil.SeedTemplate(t, ctx, tx, "finanzas", 2, 10, "accion", nil)
	inactive := testutil.SeedTemplate(t, ctx, tx, "salud", 2, 10, "educacion", nil)
	if err := tx.Model(inactive).Update("active", false).Error; err != nil {
		t.Fatalf("deactivate template: %v", err)
	}

	tests := []struct {
		name   string
		filter TemplateFilter
		want   int
	}{
		{"category only", TemplateFilter{Category: "salud"}, 3},
		{"level window", TemplateFilter{Category: "salud", MinLevel: 1, MaxLevel: 3}, 2},
		{"minutes window", TemplateFilter{Category: "salud", MinMinutes: 5, MaxMinutes: 15}, 2},
		{"both windows", TemplateFilter{Category: "salud", MinLevel: 1, MaxLevel: 3, MinMinutes: 5, MaxMinutes: 15}, 1},
		{"empty category", TemplateFilter{}, 0},
		{"limit", TemplateFilter{Category: "salud", Limit: 2}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.ListActive(dbc, tc.filter)
			if err != nil {
				t.Fatalf("ListActive: %v", err)
			}
			if len(got) != tc.want {
				t.Fatalf("ListActive: expected %d templates, got %d", tc.want, len(got))
			}
		})
	}
}

func TestTemplateRepoUpsert(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewTemplateRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	tpl := &types.TaskTemplate{
		ID:       uuid.New(),
		Category: "mental",
		Level:    1,
		Kind:     "reflexion",
		Minutes:  5,
		Active:   true,
	}
	if err := repo.Upsert(dbc, []*types.TaskTemplate{tpl}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	tpl.Minutes = 8
	if err := repo.Upsert(dbc, []*types.TaskTemplate{tpl}); err != nil {
		t.Fatalf("Upsert (update): %v", err)
	}

	got, err := repo.GetByID(dbc, tpl.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Minutes != 8 {
		t.Fatalf("GetByID: expected minutes 8, got %+v", got)
	}
}

func TestTemplateTextRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewTemplateTextRepo(db, testutil.Logger(t))
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	tpl := testutil.SeedTemplate(t, ctx, tx, "salud", 2, 10, "accion", nil)
	other := testutil.SeedTemplate(t, ctx, tx, "salud", 2, 10, "accion", nil)
	testutil.SeedTemplateText(t, ctx, tx, tpl.ID, "es", "Camina 15 min")
	testutil.SeedTemplateText(t, ctx, tx, tpl.ID, "en", "Walk 15 min")
	testutil.SeedTemplateText(t, ctx, tx, other.ID, "es", "Estira 5 min")

	got, err := repo.ListByTemplatesAndLocale(dbc, []uuid.UUID{tpl.ID, other.ID}, "es")
	if err != nil {
		t.Fatalf("ListByTemplatesAndLocale: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListByTemplatesAndLocale: expected 2 texts, got %d", len(got))
	}

	empty, err := repo.ListByTemplatesAndLocale(dbc, nil, "es")
	if err != nil {
		t.Fatalf("ListByTemplatesAndLocale (empty ids): %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("ListByTemplatesAndLocale (empty ids): expected none, got %d", len(empty))
	}

	// Upsert replaces on the (template_id, locale) key.
	if err := repo.Upsert(dbc, []*types.TemplateText{
		{TemplateID: tpl.ID, Locale: "es", Text: "Camina 20 min"},
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	got, err = repo.ListByTemplatesAndLocale(dbc, []uuid.UUID{tpl.ID}, "es")
	if err != nil {
		t.Fatalf("ListByTemplatesAndLocale (after upsert): %v", err)
	}
	if len(got) != 1 || got[0].Text != "Camina 20 min" {
		t.Fatalf("ListByTemplatesAndLocale (after upsert): unexpected %+v", got)
	}
}
