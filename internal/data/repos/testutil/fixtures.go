package testutil

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/kairo-app/kairo-backend/internal/domain"
)

func SeedProfile(tb testing.TB, ctx context.Context, tx *gorm.DB, locale string) *types.Profile {
	tb.Helper()
	p := &types.Profile{
		ID:          uuid.New(),
		DisplayName: "Test",
		Locale:      locale,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed profile: %v", err)
	}
	return p
}

func SeedGoal(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, category string, level, minutes int) *types.Goal {
	tb.Helper()
	g := &types.Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Category:      category,
		Level:         level,
		MinutesPerDay: minutes,
		Active:        true,
	}
	if err := tx.WithContext(ctx).Create(g).Error; err != nil {
		tb.Fatalf("seed goal: %v", err)
	}
	return g
}

func SeedGoalWithPlan(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, category, subcategory string, level, minutes int, form map[string]interface{}) *types.Goal {
	tb.Helper()
	var formJSON datatypes.JSON
	if len(form) > 0 {
		raw, err := json.Marshal(form)
		if err != nil {
			tb.Fatalf("marshal form: %v", err)
		}
		formJSON = datatypes.JSON(raw)
	}
	g := &types.Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Category:      category,
		Subcategory:   subcategory,
		Level:         level,
		MinutesPerDay: minutes,
		FormData:      formJSON,
		Active:        true,
	}
	if err := tx.WithContext(ctx).Create(g).Error; err != nil {
		tb.Fatalf("seed goal: %v", err)
	}
	return g
}

func SeedTemplate(tb testing.TB, ctx context.Context, tx *gorm.DB, category string, level, minutes int, kind string, tags []string) *types.TaskTemplate {
	tb.Helper()
	var tagsJSON datatypes.JSON
	if len(tags) > 0 {
		raw, err := json.Marshal(tags)
		if err != nil {
			tb.Fatalf("marshal tags: %v", err)
		}
		tagsJSON = datatypes.JSON(raw)
	}
	t := &types.TaskTemplate{
		ID:       uuid.New(),
		Category: category,
		Level:    level,
		Kind:     kind,
		Minutes:  minutes,
		Tags:     tagsJSON,
		Active:   true,
	}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed template: %v", err)
	}
	return t
}

func SeedTemplateText(tb testing.TB, ctx context.Context, tx *gorm.DB, templateID uuid.UUID, locale, text string) *types.TemplateText {
	tb.Helper()
	tt := &types.TemplateText{
		ID:         uuid.New(),
		TemplateID: templateID,
		Locale:     locale,
		Text:       text,
	}
	if err := tx.WithContext(ctx).Create(tt).Error; err != nil {
		tb.Fatalf("seed template text: %v", err)
	}
	return tt
}

func SeedChallenge(tb testing.TB, ctx context.Context, tx *gorm.DB, goalID uuid.UUID, day, text, kind string, minutes int) *types.Challenge {
	tb.Helper()
	c := &types.Challenge{
		ID:      uuid.New(),
		GoalID:  goalID,
		Day:     day,
		Text:    text,
		Kind:    kind,
		Minutes: minutes,
		Status:  types.ChallengeStatusPending,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed challenge: %v", err)
	}
	return c
}
