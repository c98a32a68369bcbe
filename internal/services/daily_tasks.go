package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/kairo-app/kairo-backend/internal/data/repos"
	types "github.com/kairo-app/kairo-backend/internal/domain"
	"github.com/kairo-app/kairo-backend/internal/pkg/dbctx"
	apperrors "github.com/kairo-app/kairo-backend/internal/pkg/errors"
	"github.com/kairo-app/kairo-backend/internal/pkg/logger"
	"github.com/kairo-app/kairo-backend/internal/planner"
	"github.com/kairo-app/kairo-backend/internal/planner/catalog"
)

const (
	// genericFiller is the last-resort reflection prompt, inserted at most
	// once per goal per day.
	genericFiller        = "Escribe el micro-paso de hoy hacia tu objetivo (1 frase)."
	genericFillerMinutes = 3

	legacyAttempts = 12
	historyWindow  = 10
)

// DailyTaskService guarantees each active goal holds between desiredMin and
// desiredMax pending tasks for the current day, and owns the pending ->
// done|skipped transition.
type DailyTaskService interface {
	EnsureTodayTasks(ctx context.Context, userID, goalID uuid.UUID) error
	ListTodayTasks(ctx context.Context, userID, goalID uuid.UUID) ([]*types.Challenge, error)
	UpdateStatus(ctx context.Context, userID, challengeID uuid.UUID, status string) (*types.Challenge, error)
	PickTodayTask(ctx context.Context, category string, level, minutes int, history []planner.HistoryEntry) *planner.Candidate
	PickFromPlan(ctx context.Context, userID, goalID uuid.UUID) (*planner.Candidate, error)
	PlanTasks(ctx context.Context, userID, goalID uuid.UUID) ([]catalog.Task, error)
}

type dailyTaskService struct {
	goalRepo      repos.GoalRepo
	challengeRepo repos.ChallengeRepo
	profileRepo   repos.ProfileRepo
	source        TemplateSource

	desiredMin int
	desiredMax int

	// rnd, when set, replaces the per-call seeded source; tests use it to
	// drive deterministic picks.
	rnd *rand.Rand

	group singleflight.Group
	log   *logger.Logger
}

func NewDailyTaskService(
	goalRepo repos.GoalRepo,
	challengeRepo repos.ChallengeRepo,
	profileRepo repos.ProfileRepo,
	source TemplateSource,
	desiredMin, desiredMax int,
	rnd *rand.Rand,
	baseLog *logger.Logger,
) DailyTaskService {
	if desiredMin <= 0 {
		desiredMin = 3
	}
	if desiredMax < desiredMin {
		desiredMax = 5
	}
	if desiredMin > desiredMax {
		desiredMin = desiredMax
	}
	return &dailyTaskService{
		goalRepo:      goalRepo,
		challengeRepo: challengeRepo,
		profileRepo:   profileRepo,
		source:        source,
		desiredMin:    desiredMin,
		desiredMax:    desiredMax,
		rnd:           rnd,
		log:           baseLog.With("service", "DailyTaskService"),
	}
}

// DayKey is the calendar bucket for daily tasks, UTC by policy.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func (s *dailyTaskService) EnsureTodayTasks(ctx context.Context, userID, goalID uuid.UUID) error {
	// Ownership gates entry to the flight; coalesced callers share only the
	// materialization itself.
	goal, err := s.ownedGoal(dbctx.Context{Ctx: ctx}, userID, goalID)
	if err != nil {
		return err
	}
	day := DayKey(time.Now())
	_, err, _ = s.group.Do(goalID.String()+"|"+day, func() (interface{}, error) {
		return nil, s.materialize(ctx, goal, day)
	})
	return err
}

func (s *dailyTaskService) ListTodayTasks(ctx context.Context, userID, goalID uuid.UUID) ([]*types.Challenge, error) {
	if err := s.EnsureTodayTasks(ctx, userID, goalID); err != nil {
		return nil, err
	}
	dbc := dbctx.Context{Ctx: ctx}
	return s.challengeRepo.ListByGoalDay(dbc, goalID, DayKey(time.Now()))
}

func (s *dailyTaskService) UpdateStatus(ctx context.Context, userID, challengeID uuid.UUID, status string) (*types.Challenge, error) {
	dbc := dbctx.Context{Ctx: ctx}
	existing, err := s.challengeRepo.GetByID(dbc, challengeID)
	if err != nil {
		return nil, fmt.Errorf("load challenge: %w", err)
	}
	if existing == nil {
		return nil, apperrors.ErrNotFound
	}
	if _, err := s.ownedGoal(dbc, userID, existing.GoalID); err != nil {
		return nil, err
	}
	if !existing.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidTransition
	}
	return s.challengeRepo.UpdateStatus(dbc, challengeID, status)
}

// PickTodayTask is the synchronous single-pick path used at goal creation,
// before any store round-trip is worth the latency.
func (s *dailyTaskService) PickTodayTask(ctx context.Context, category string, level, minutes int, history []planner.HistoryEntry) *planner.Candidate {
	return planner.PickOne(planner.LibraryCategory(category), level, minutes, history, s.newRand())
}

// PickFromPlan picks one task for today out of the goal's catalog-built
// plan, with the same anti-repetition history the materializer uses. Returns
// nil when the plan is empty.
func (s *dailyTaskService) PickFromPlan(ctx context.Context, userID, goalID uuid.UUID) (*planner.Candidate, error) {
	dbc := dbctx.Context{Ctx: ctx}
	goal, err := s.ownedGoal(dbc, userID, goalID)
	if err != nil {
		return nil, err
	}
	history, err := s.loadHistory(dbc, goalID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	tasks := catalog.BuildTasks(goal.Category, goal.Subcategory, formData(goal))
	pool := make([]planner.Candidate, 0, len(tasks))
	for _, t := range tasks {
		pool = append(pool, t.Candidate(goal.Category))
	}
	return planner.NewSelector(s.newRand()).SelectOne(pool, history, goal.PreferredMinutes()), nil
}

// PlanTasks builds the parametrized recurring-task plan for a goal from the
// static catalog. Pure computation over the goal's form answers.
func (s *dailyTaskService) PlanTasks(ctx context.Context, userID, goalID uuid.UUID) ([]catalog.Task, error) {
	dbc := dbctx.Context{Ctx: ctx}
	goal, err := s.ownedGoal(dbc, userID, goalID)
	if err != nil {
		return nil, err
	}
	return catalog.BuildTasks(goal.Category, goal.Subcategory, formData(goal)), nil
}

func (s *dailyTaskService) materialize(ctx context.Context, goal *types.Goal, day string) error {
	dbc := dbctx.Context{Ctx: ctx}

	existing, err := s.challengeRepo.ListByGoalDay(dbc, goal.ID, day)
	if err != nil {
		return fmt.Errorf("load existing tasks: %w", err)
	}
	if len(existing) >= s.desiredMin {
		return nil
	}
	missing := s.desiredMin - len(existing)

	locale, fallback := s.resolveLocales(dbc, goal.UserID)
	userTags := planner.TagsFromForm(formData(goal))
	history, err := s.loadHistory(dbc, goal.ID)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	existingTexts := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		existingTexts[c.Text] = struct{}{}
	}

	rnd := s.newRand()
	selector := planner.NewSelector(rnd)
	preferred := goal.PreferredMinutes()

	var chosen []planner.Candidate

	pool := s.source.Candidates(ctx, goal, userTags, locale, fallback)
	pool = excludeTexts(pool, existingTexts)
	if len(pool) > 0 {
		chosen = selector.Select(pool, history, missing, preferred)
		for _, c := range chosen {
			existingTexts[c.Text] = struct{}{}
			history = append(history, planner.HistoryEntry{Kind: c.Kind, Text: c.Text})
		}
	}

	// Legacy fallback: walk the minutes ladder until filled or out of tries.
	libCategory := planner.LibraryCategory(goal.Category)
	ladder := []int{preferred, maxInt(5, preferred-5), preferred + 5}
	for attempt := 0; attempt < legacyAttempts && len(chosen) < missing; attempt++ {
		pick := planner.PickOne(libCategory, goal.ClampedLevel(), ladder[attempt%len(ladder)], history, rnd)
		if pick == nil {
			continue
		}
		if _, dup := existingTexts[pick.Text]; dup {
			continue
		}
		chosen = append(chosen, *pick)
		existingTexts[pick.Text] = struct{}{}
		history = append(history, planner.HistoryEntry{Kind: pick.Kind, Text: pick.Text})
	}

	if len(chosen) < missing {
		if _, dup := existingTexts[genericFiller]; !dup {
			chosen = append(chosen, planner.Candidate{
				Kind:    planner.KindReflexion,
				Minutes: genericFillerMinutes,
				Text:    genericFiller,
			})
		}
	}

	if len(chosen) == 0 {
		return nil
	}

	rows := make([]*types.Challenge, 0, len(chosen))
	for _, c := range chosen {
		rows = append(rows, &types.Challenge{
			GoalID:  goal.ID,
			Day:     day,
			Text:    c.Text,
			Minutes: c.Minutes,
			Kind:    c.Kind,
			Status:  types.ChallengeStatusPending,
		})
	}
	if err := s.challengeRepo.CreateIgnoreDuplicates(dbc, rows); err != nil {
		return fmt.Errorf("persist tasks: %w", err)
	}
	s.log.Info("Materialized daily tasks", "goal_id", goal.ID, "day", day, "created", len(rows))
	return nil
}

func (s *dailyTaskService) ownedGoal(dbc dbctx.Context, userID, goalID uuid.UUID) (*types.Goal, error) {
	goal, err := s.goalRepo.GetByID(dbc, goalID)
	if err != nil {
		return nil, fmt.Errorf("load goal: %w", err)
	}
	if goal == nil {
		return nil, apperrors.ErrNotFound
	}
	if userID != uuid.Nil && goal.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return goal, nil
}

func (s *dailyTaskService) resolveLocales(dbc dbctx.Context, userID uuid.UUID) (string, string) {
	profileLocale := ""
	profile, err := s.profileRepo.GetByID(dbc, userID)
	if err != nil {
		s.log.Warn("Profile lookup failed, using default locale", "user_id", userID, "error", err)
	} else if profile != nil {
		profileLocale = profile.Locale
	}
	return planner.ResolveLocales(profileLocale)
}

// loadHistory rebuilds the anti-repetition window from the goal's most
// recent challenges, oldest first.
func (s *dailyTaskService) loadHistory(dbc dbctx.Context, goalID uuid.UUID) ([]planner.HistoryEntry, error) {
	recent, err := s.challengeRepo.ListRecentByGoal(dbc, goalID, historyWindow)
	if err != nil {
		return nil, err
	}
	out := make([]planner.HistoryEntry, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		out = append(out, planner.HistoryEntry{Kind: recent[i].Kind, Text: recent[i].Text})
	}
	return out, nil
}

func (s *dailyTaskService) newRand() *rand.Rand {
	if s.rnd != nil {
		return s.rnd
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func formData(goal *types.Goal) map[string]interface{} {
	if goal == nil || len(goal.FormData) == 0 {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(goal.FormData, &out); err != nil {
		return nil
	}
	return out
}

func excludeTexts(pool []planner.Candidate, texts map[string]struct{}) []planner.Candidate {
	var out []planner.Candidate
	for _, c := range pool {
		if _, dup := texts[c.Text]; !dup {
			out = append(out, c)
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
