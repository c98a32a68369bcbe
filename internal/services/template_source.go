package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kairo-app/kairo-backend/internal/clients/redis"
	"github.com/kairo-app/kairo-backend/internal/data/repos"
	types "github.com/kairo-app/kairo-backend/internal/domain"
	"github.com/kairo-app/kairo-backend/internal/pkg/dbctx"
	"github.com/kairo-app/kairo-backend/internal/pkg/logger"
	"github.com/kairo-app/kairo-backend/internal/planner"
)

// TemplateSource yields store-backed candidates for a goal. Failures never
// propagate: the contract is "no candidates", callers fall back to the
// legacy library.
type TemplateSource interface {
	Candidates(ctx context.Context, goal *types.Goal, userTags []string, locale, fallback string) []planner.Candidate
}

type templateSource struct {
	templateRepo repos.TemplateRepo
	textRepo     repos.TemplateTextRepo
	cache        redis.TemplateCache
	timeout      time.Duration
	log          *logger.Logger
}

func NewTemplateSource(
	templateRepo repos.TemplateRepo,
	textRepo repos.TemplateTextRepo,
	cache redis.TemplateCache,
	timeout time.Duration,
	baseLog *logger.Logger,
) TemplateSource {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &templateSource{
		templateRepo: templateRepo,
		textRepo:     textRepo,
		cache:        cache,
		timeout:      timeout,
		log:          baseLog.With("service", "TemplateSource"),
	}
}

func (s *templateSource) Candidates(ctx context.Context, goal *types.Goal, userTags []string, locale, fallback string) []planner.Candidate {
	if goal == nil {
		return nil
	}

	category := planner.NormalizeStoreCategory(goal.Category)
	level := goal.ClampedLevel()
	minutes := goal.PreferredMinutes()

	filter := repos.TemplateFilter{
		Category:   category,
		MinLevel:   clamp(level-1, 1, 5),
		MaxLevel:   clamp(level+1, 1, 5),
		MinMinutes: clamp(minutes-5, 1, 60),
		MaxMinutes: clamp(minutes+5, 1, 60),
		Limit:      50,
	}

	cacheKey := candidateCacheKey(filter, locale, fallback)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, cacheKey); ok {
			return filterByTags(cached, userTags)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	dbc := dbctx.Context{Ctx: ctx}

	templates, err := s.templateRepo.ListActive(dbc, filter)
	if err != nil {
		s.log.Warn("Template query failed, falling back to library", "category", category, "error", err)
		return nil
	}
	if len(templates) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(templates))
	for _, t := range templates {
		ids = append(ids, t.ID)
	}

	var primary, secondary []*types.TemplateText
	g, gctx := errgroup.WithContext(ctx)
	gdbc := dbctx.Context{Ctx: gctx}
	g.Go(func() error {
		var err error
		primary, err = s.textRepo.ListByTemplatesAndLocale(gdbc, ids, locale)
		return err
	})
	g.Go(func() error {
		var err error
		secondary, err = s.textRepo.ListByTemplatesAndLocale(gdbc, ids, fallback)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Warn("Template text query failed, falling back to library", "category", category, "error", err)
		return nil
	}

	// Fallback locale lands first, the primary overwrites on top.
	texts := make(map[uuid.UUID]string, len(ids))
	for _, t := range secondary {
		texts[t.TemplateID] = t.Text
	}
	for _, t := range primary {
		texts[t.TemplateID] = t.Text
	}

	candidates := make([]planner.Candidate, 0, len(templates))
	for _, t := range templates {
		text, ok := texts[t.ID]
		if !ok || text == "" {
			continue
		}
		candidates = append(candidates, planner.Candidate{
			Kind:     t.Kind,
			Minutes:  t.Minutes,
			Text:     text,
			Category: t.Category,
			Level:    t.Level,
			Tags:     t.TagList(),
		})
	}

	if s.cache != nil && len(candidates) > 0 {
		s.cache.Set(ctx, cacheKey, candidates)
	}
	return filterByTags(candidates, userTags)
}

// filterByTags applies the client-side tag overlap rule after the store
// filters; tags stay out of the cache key so one entry serves every goal in
// the same (category, level, minutes, locale) bucket.
func filterByTags(candidates []planner.Candidate, userTags []string) []planner.Candidate {
	var out []planner.Candidate
	for _, c := range candidates {
		if planner.TagsOverlap(c.Tags, userTags) {
			out = append(out, c)
		}
	}
	return out
}

func candidateCacheKey(f repos.TemplateFilter, locale, fallback string) string {
	return strings.Join([]string{
		f.Category,
		fmt.Sprintf("%d-%d", f.MinLevel, f.MaxLevel),
		fmt.Sprintf("%d-%d", f.MinMinutes, f.MaxMinutes),
		locale,
		fallback,
	}, "|")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
