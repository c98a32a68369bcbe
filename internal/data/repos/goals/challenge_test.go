package goals

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/kairo-app/kairo-backend/internal/data/repos/testutil"
	types "github.com/kairo-app/kairo-backend/internal/domain"
	"github.com/kairo-app/kairo-backend/internal/pkg/dbctx"
	apperrors "github.com/kairo-app/kairo-backend/internal/pkg/errors"
)

func TestChallengeRepoCreateIgnoreDuplicates(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewChallengeRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	goalID := uuid.New()
	first := []*types.Challenge{
		{GoalID: goalID, Day: "2026-08-28", Text: "Camina 15 min", Kind: "accion", Minutes: 15, Status: types.ChallengeStatusPending},
		{GoalID: goalID, Day: "2026-08-28", Text: "Bebe 2L de agua", Kind: "accion", Minutes: 2, Status: types.ChallengeStatusPending},
	}
	if err := repo.CreateIgnoreDuplicates(dbc, first); err != nil {
		t.Fatalf("CreateIgnoreDuplicates: %v", err)
	}

	// Same (goal, day, text) again plus one new row: the dupes silently drop.
	second := []*types.Challenge{
		{GoalID: goalID, Day: "2026-08-28", Text: "Camina 15 min", Kind: "accion", Minutes: 15, Status: types.ChallengeStatusPending},
		{GoalID: goalID, Day: "2026-08-28", Text: "Estira 5 min", Kind: "accion", Minutes: 5, Status: types.ChallengeStatusPending},
	}
	if err := repo.CreateIgnoreDuplicates(dbc, second); err != nil {
		t.Fatalf("CreateIgnoreDuplicates (dupes): %v", err)
	}

	rows, err := repo.ListByGoalDay(dbc, goalID, "2026-08-28")
	if err != nil {
		t.Fatalf("ListByGoalDay: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("ListByGoalDay: expected 3 rows, got %d", len(rows))
	}
}

func TestChallengeRepoUpdateStatus(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewChallengeRepo(db, testutil.Logger(t))
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	goalID := uuid.New()
	seeded := testutil.SeedChallenge(t, ctx, tx, goalID, "2026-08-28", "Lee 10 min", "educacion", 10)

	updated, err := repo.UpdateStatus(dbc, seeded.ID, types.ChallengeStatusDone)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != types.ChallengeStatusDone {
		t.Fatalf("UpdateStatus: expected done, got %q", updated.Status)
	}

	// done is terminal
	if _, err := repo.UpdateStatus(dbc, seeded.ID, types.ChallengeStatusSkipped); !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("UpdateStatus (terminal): expected ErrInvalidTransition, got %v", err)
	}

	if _, err := repo.UpdateStatus(dbc, seeded.ID, "pending"); !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("UpdateStatus (to pending): expected ErrInvalidTransition, got %v", err)
	}

	if _, err := repo.UpdateStatus(dbc, uuid.New(), types.ChallengeStatusDone); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("UpdateStatus (missing): expected ErrNotFound, got %v", err)
	}
}

func TestChallengeRepoListRecentByGoal(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewChallengeRepo(db, testutil.Logger(t))
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	goalID := uuid.New()
	testutil.SeedChallenge(t, ctx, tx, goalID, "2026-08-26", "Tarea A", "accion", 10)
	testutil.SeedChallenge(t, ctx, tx, goalID, "2026-08-27", "Tarea B", "accion", 10)
	testutil.SeedChallenge(t, ctx, tx, goalID, "2026-08-28", "Tarea C", "accion", 10)

	rows, err := repo.ListRecentByGoal(dbc, goalID, 2)
	if err != nil {
		t.Fatalf("ListRecentByGoal: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("ListRecentByGoal: expected 2 rows, got %d", len(rows))
	}
}
