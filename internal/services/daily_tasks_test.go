package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kairo-app/kairo-backend/internal/data/repos"
	"github.com/kairo-app/kairo-backend/internal/data/repos/testutil"
	types "github.com/kairo-app/kairo-backend/internal/domain"
	"github.com/kairo-app/kairo-backend/internal/pkg/dbctx"
	apperrors "github.com/kairo-app/kairo-backend/internal/pkg/errors"
	"github.com/kairo-app/kairo-backend/internal/planner"
)

type stubSource struct {
	candidates []planner.Candidate
}

func (s stubSource) Candidates(ctx context.Context, goal *types.Goal, userTags []string, locale, fallback string) []planner.Candidate {
	return s.candidates
}

// gateSource blocks inside Candidates until released, holding an in-flight
// materialization open for concurrency tests.
type gateSource struct {
	entered chan struct{}
	release chan struct{}
}

func (s *gateSource) Candidates(ctx context.Context, goal *types.Goal, userTags []string, locale, fallback string) []planner.Candidate {
	close(s.entered)
	<-s.release
	return nil
}

func dbcBG() dbctx.Context {
	return dbctx.Context{Ctx: context.Background()}
}

func newTestService(t *testing.T, source TemplateSource, seed int64) (DailyTaskService, repos.ChallengeRepo, func(category string, level, minutes int) *types.Goal) {
	t.Helper()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	ctx := context.Background()

	goalRepo := repos.NewGoalRepo(tx, log)
	challengeRepo := repos.NewChallengeRepo(tx, log)
	profileRepo := repos.NewProfileRepo(tx, log)

	svc := NewDailyTaskService(
		goalRepo, challengeRepo, profileRepo, source,
		3, 5,
		rand.New(rand.NewSource(seed)),
		log,
	)

	profile := testutil.SeedProfile(t, ctx, tx, "es")
	makeGoal := func(category string, level, minutes int) *types.Goal {
		return testutil.SeedGoal(t, ctx, tx, profile.ID, category, level, minutes)
	}
	return svc, challengeRepo, makeGoal
}

func todayCount(t *testing.T, repo repos.ChallengeRepo, goalID uuid.UUID) int {
	t.Helper()
	rows, err := repo.ListByGoalDay(dbcBG(), goalID, DayKey(time.Now()))
	if err != nil {
		t.Fatalf("list today: %v", err)
	}
	return len(rows)
}

func TestEnsureTodayTasksFillsFromLibraryWhenStoreEmpty(t *testing.T) {
	svc, challengeRepo, makeGoal := newTestService(t, stubSource{}, 1)
	goal := makeGoal("salud", 1, 10)
	ctx := context.Background()

	if err := svc.EnsureTodayTasks(ctx, goal.UserID, goal.ID); err != nil {
		t.Fatalf("EnsureTodayTasks: %v", err)
	}

	rows, err := challengeRepo.ListByGoalDay(dbcBG(), goal.ID, DayKey(time.Now()))
	if err != nil {
		t.Fatalf("list today: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(rows))
	}
	seen := map[string]struct{}{}
	for _, r := range rows {
		if r.Status != types.ChallengeStatusPending {
			t.Fatalf("expected pending status, got %q", r.Status)
		}
		if _, dup := seen[r.Text]; dup {
			t.Fatalf("duplicate text materialized: %q", r.Text)
		}
		seen[r.Text] = struct{}{}
	}
}

func TestEnsureTodayTasksIdempotent(t *testing.T) {
	svc, challengeRepo, makeGoal := newTestService(t, stubSource{}, 2)
	goal := makeGoal("salud", 1, 10)
	ctx := context.Background()

	if err := svc.EnsureTodayTasks(ctx, goal.UserID, goal.ID); err != nil {
		t.Fatalf("EnsureTodayTasks: %v", err)
	}
	first := todayCount(t, challengeRepo, goal.ID)
	if first != 3 {
		t.Fatalf("expected 3 tasks after first call, got %d", first)
	}

	if err := svc.EnsureTodayTasks(ctx, goal.UserID, goal.ID); err != nil {
		t.Fatalf("EnsureTodayTasks (second): %v", err)
	}
	if got := todayCount(t, challengeRepo, goal.ID); got != first {
		t.Fatalf("second call changed count: %d -> %d", first, got)
	}
}

func TestEnsureTodayTasksKeepsExistingAboveMinimum(t *testing.T) {
	svc, challengeRepo, makeGoal := newTestService(t, stubSource{}, 3)
	goal := makeGoal("salud", 2, 10)
	ctx := context.Background()

	day := DayKey(time.Now())
	for _, text := range []string{"A", "B", "C", "D"} {
		rows := []*types.Challenge{{GoalID: goal.ID, Day: day, Text: text, Kind: "accion", Minutes: 5, Status: types.ChallengeStatusPending}}
		if err := challengeRepo.CreateIgnoreDuplicates(dbcBG(), rows); err != nil {
			t.Fatalf("seed challenge: %v", err)
		}
	}

	if err := svc.EnsureTodayTasks(ctx, goal.UserID, goal.ID); err != nil {
		t.Fatalf("EnsureTodayTasks: %v", err)
	}
	if got := todayCount(t, challengeRepo, goal.ID); got != 4 {
		t.Fatalf("expected existing 4 tasks untouched, got %d", got)
	}
}

func TestEnsureTodayTasksPadsWithGenericFillerOnce(t *testing.T) {
	// "relaciones" maps to the generic library pool; level 5 at 59 minutes
	// matches nothing on any ladder rung.
	svc, challengeRepo, makeGoal := newTestService(t, stubSource{}, 4)
	goal := makeGoal("relaciones", 5, 59)
	ctx := context.Background()

	if err := svc.EnsureTodayTasks(ctx, goal.UserID, goal.ID); err != nil {
		t.Fatalf("EnsureTodayTasks: %v", err)
	}

	rows, err := challengeRepo.ListByGoalDay(dbcBG(), goal.ID, DayKey(time.Now()))
	if err != nil {
		t.Fatalf("list today: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected single filler task, got %d", len(rows))
	}
	if rows[0].Text != genericFiller || rows[0].Kind != planner.KindReflexion || rows[0].Minutes != genericFillerMinutes {
		t.Fatalf("unexpected filler row: %+v", rows[0])
	}

	// A second call must not duplicate the filler.
	if err := svc.EnsureTodayTasks(ctx, goal.UserID, goal.ID); err != nil {
		t.Fatalf("EnsureTodayTasks (second): %v", err)
	}
	if got := todayCount(t, challengeRepo, goal.ID); got != 1 {
		t.Fatalf("filler duplicated: %d rows", got)
	}
}

func TestEnsureTodayTasksMixesStoreAndLibrary(t *testing.T) {
	source := stubSource{candidates: []planner.Candidate{
		{Kind: planner.KindAccion, Minutes: 15, Text: "Transfiere 10 CHF a tu cuenta de ahorro.", Category: "finanzas", Level: 2},
		{Kind: planner.KindEducacion, Minutes: 12, Text: "Lee sobre la regla 50/30/20.", Category: "finanzas", Level: 2},
	}}
	svc, challengeRepo, makeGoal := newTestService(t, source, 5)
	goal := makeGoal("finanzas", 2, 15)
	ctx := context.Background()

	if err := svc.EnsureTodayTasks(ctx, goal.UserID, goal.ID); err != nil {
		t.Fatalf("EnsureTodayTasks: %v", err)
	}

	rows, err := challengeRepo.ListByGoalDay(dbcBG(), goal.ID, DayKey(time.Now()))
	if err != nil {
		t.Fatalf("list today: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(rows))
	}

	texts := map[string]bool{}
	for _, r := range rows {
		if r.Status != types.ChallengeStatusPending {
			t.Fatalf("expected pending status, got %q", r.Status)
		}
		if texts[r.Text] {
			t.Fatalf("duplicate text materialized: %q", r.Text)
		}
		texts[r.Text] = true
	}
	if !texts["Transfiere 10 CHF a tu cuenta de ahorro."] || !texts["Lee sobre la regla 50/30/20."] {
		t.Fatalf("expected both store texts in result, got %v", texts)
	}
}

func TestEnsureTodayTasksUnknownGoal(t *testing.T) {
	svc, _, _ := newTestService(t, stubSource{}, 6)
	if err := svc.EnsureTodayTasks(context.Background(), uuid.Nil, uuid.New()); err == nil {
		t.Fatalf("expected error for unknown goal")
	}
}

func TestEnsureTodayTasksOwnershipMismatch(t *testing.T) {
	svc, _, makeGoal := newTestService(t, stubSource{}, 7)
	goal := makeGoal("salud", 1, 10)

	if err := svc.EnsureTodayTasks(context.Background(), uuid.New(), goal.ID); err == nil {
		t.Fatalf("expected error for foreign goal")
	}
}

func TestEnsureTodayTasksOwnershipCheckedBeforeCoalescing(t *testing.T) {
	source := &gateSource{entered: make(chan struct{}), release: make(chan struct{})}
	svc, _, makeGoal := newTestService(t, source, 9)
	goal := makeGoal("salud", 1, 10)
	ctx := context.Background()

	ownerDone := make(chan error, 1)
	go func() { ownerDone <- svc.EnsureTodayTasks(ctx, goal.UserID, goal.ID) }()
	<-source.entered

	// A foreign caller arriving mid-flight is rejected, never coalesced onto
	// the owner's materialization.
	if err := svc.EnsureTodayTasks(ctx, uuid.New(), goal.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign caller, got %v", err)
	}

	close(source.release)
	if err := <-ownerDone; err != nil {
		t.Fatalf("owner EnsureTodayTasks: %v", err)
	}
}

func TestEnsureTodayTasksDesiredBoundsMisconfigured(t *testing.T) {
	// A minimum configured above the maximum collapses to the ceiling.
	candidates := make([]planner.Candidate, 0, 8)
	for i := 0; i < 8; i++ {
		kind := planner.KindAccion
		if i%2 == 1 {
			kind = planner.KindEducacion
		}
		candidates = append(candidates, planner.Candidate{
			Kind: kind, Minutes: 15, Text: fmt.Sprintf("Tarea financiera %d", i),
			Category: "finanzas", Level: 2,
		})
	}

	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	ctx := context.Background()

	goalRepo := repos.NewGoalRepo(tx, log)
	challengeRepo := repos.NewChallengeRepo(tx, log)
	profileRepo := repos.NewProfileRepo(tx, log)
	svc := NewDailyTaskService(
		goalRepo, challengeRepo, profileRepo, stubSource{candidates: candidates},
		9, 2,
		rand.New(rand.NewSource(10)),
		log,
	)

	profile := testutil.SeedProfile(t, ctx, tx, "es")
	goal := testutil.SeedGoal(t, ctx, tx, profile.ID, "finanzas", 2, 15)

	if err := svc.EnsureTodayTasks(ctx, goal.UserID, goal.ID); err != nil {
		t.Fatalf("EnsureTodayTasks: %v", err)
	}
	if got := todayCount(t, challengeRepo, goal.ID); got != 5 {
		t.Fatalf("expected 5 tasks with clamped bounds, got %d", got)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	svc, challengeRepo, makeGoal := newTestService(t, stubSource{}, 11)
	goal := makeGoal("salud", 1, 10)
	ctx := context.Background()
	day := DayKey(time.Now())

	seed := []*types.Challenge{{GoalID: goal.ID, Day: day, Text: "Camina 10 min", Kind: "accion", Minutes: 10, Status: types.ChallengeStatusPending}}
	if err := challengeRepo.CreateIgnoreDuplicates(dbcBG(), seed); err != nil {
		t.Fatalf("seed challenge: %v", err)
	}
	rows, err := challengeRepo.ListByGoalDay(dbcBG(), goal.ID, day)
	if err != nil || len(rows) != 1 {
		t.Fatalf("seed lookup: %v (%d rows)", err, len(rows))
	}
	id := rows[0].ID

	if _, err := svc.UpdateStatus(ctx, uuid.New(), id, types.ChallengeStatusDone); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign user, got %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, goal.UserID, id, types.ChallengeStatusDone)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != types.ChallengeStatusDone {
		t.Fatalf("expected done, got %q", updated.Status)
	}

	// done is terminal.
	if _, err := svc.UpdateStatus(ctx, goal.UserID, id, types.ChallengeStatusSkipped); !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition from done, got %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, goal.UserID, id, types.ChallengeStatusPending); !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition to pending, got %v", err)
	}
}

func TestPickFromPlan(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	ctx := context.Background()

	goalRepo := repos.NewGoalRepo(tx, log)
	challengeRepo := repos.NewChallengeRepo(tx, log)
	profileRepo := repos.NewProfileRepo(tx, log)
	svc := NewDailyTaskService(
		goalRepo, challengeRepo, profileRepo, stubSource{},
		3, 5,
		rand.New(rand.NewSource(12)),
		log,
	)

	profile := testutil.SeedProfile(t, ctx, tx, "es")
	goal := testutil.SeedGoalWithPlan(t, ctx, tx, profile.ID, "salud", "bajar_peso", 2, 15,
		map[string]interface{}{"minutesPerDay": float64(15)})

	pick, err := svc.PickFromPlan(ctx, profile.ID, goal.ID)
	if err != nil {
		t.Fatalf("PickFromPlan: %v", err)
	}
	if pick == nil {
		t.Fatalf("expected a pick from the salud/bajar_peso plan")
	}
	if pick.Category != "salud" || pick.Text == "" {
		t.Fatalf("unexpected pick: %+v", pick)
	}

	if _, err := svc.PickFromPlan(ctx, uuid.New(), goal.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign goal, got %v", err)
	}

	// No subcategory means no plan, which is a nil pick and no error.
	plain := testutil.SeedGoal(t, ctx, tx, profile.ID, "salud", 2, 15)
	pick, err = svc.PickFromPlan(ctx, profile.ID, plain.ID)
	if err != nil {
		t.Fatalf("PickFromPlan (empty plan): %v", err)
	}
	if pick != nil {
		t.Fatalf("expected nil pick for empty plan, got %+v", pick)
	}
}

func TestPickTodayTask(t *testing.T) {
	svc, _, _ := newTestService(t, stubSource{}, 8)
	ctx := context.Background()

	pick := svc.PickTodayTask(ctx, "salud", 1, 10, nil)
	if pick == nil {
		t.Fatalf("expected a pick for salud level 1")
	}
	if pick.Category != "salud" {
		t.Fatalf("expected salud candidate, got %+v", pick)
	}

	// Nothing in the generic pool fits 59 minutes at level 5.
	if pick := svc.PickTodayTask(ctx, "relaciones", 5, 59, nil); pick != nil {
		t.Fatalf("expected nil pick, got %+v", pick)
	}
}
