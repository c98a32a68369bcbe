package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"

	"github.com/kairo-app/kairo-backend/internal/data/db"
	"github.com/kairo-app/kairo-backend/internal/data/repos"
	types "github.com/kairo-app/kairo-backend/internal/domain"
	"github.com/kairo-app/kairo-backend/internal/pkg/dbctx"
	"github.com/kairo-app/kairo-backend/internal/pkg/logger"
	"github.com/kairo-app/kairo-backend/internal/planner"
)

// seedFile is the YAML shape the content team hands over: one entry per
// template, texts keyed by locale.
type seedFile struct {
	Templates []seedTemplate `yaml:"templates"`
}

type seedTemplate struct {
	ID          string            `yaml:"id"`
	Category    string            `yaml:"category"`
	Subcategory string            `yaml:"subcategory"`
	Level       int               `yaml:"level"`
	Kind        string            `yaml:"kind"`
	Minutes     int               `yaml:"minutes"`
	Tags        []string          `yaml:"tags"`
	Active      *bool             `yaml:"active"`
	Texts       map[string]string `yaml:"texts"`
}

func main() {
	var path string
	flag.StringVar(&path, "file", "seed/templates.yaml", "path to the template seed file")
	flag.Parse()

	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatal("Failed to read seed file", "path", path, "error", err)
	}
	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		log.Fatal("Failed to parse seed file", "path", path, "error", err)
	}

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Failed to init postgres", "error", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Fatal("Failed to automigrate", "error", err)
	}

	templates, texts, err := buildRows(file)
	if err != nil {
		log.Fatal("Invalid seed data", "error", err)
	}

	dbc := dbctx.Context{Ctx: context.Background()}
	templateRepo := repos.NewTemplateRepo(pg.DB(), log)
	textRepo := repos.NewTemplateTextRepo(pg.DB(), log)

	if err := templateRepo.Upsert(dbc, templates); err != nil {
		log.Fatal("Failed to upsert templates", "error", err)
	}
	if err := textRepo.Upsert(dbc, texts); err != nil {
		log.Fatal("Failed to upsert template texts", "error", err)
	}
	log.Info("Seed complete", "templates", len(templates), "texts", len(texts))
}

func buildRows(file seedFile) ([]*types.TaskTemplate, []*types.TemplateText, error) {
	var templates []*types.TaskTemplate
	var texts []*types.TemplateText
	for i, entry := range file.Templates {
		if entry.Category == "" {
			return nil, nil, fmt.Errorf("template %d: missing category", i)
		}
		if !planner.ValidKind(entry.Kind) {
			return nil, nil, fmt.Errorf("template %d: unknown kind %q", i, entry.Kind)
		}
		if entry.Minutes <= 0 {
			return nil, nil, fmt.Errorf("template %d: minutes must be positive", i)
		}
		if len(entry.Texts) == 0 {
			return nil, nil, fmt.Errorf("template %d: at least one localized text required", i)
		}

		id := templateID(entry.ID)

		var tags datatypes.JSON
		if len(entry.Tags) > 0 {
			raw, err := json.Marshal(entry.Tags)
			if err != nil {
				return nil, nil, fmt.Errorf("template %d: encode tags: %w", i, err)
			}
			tags = datatypes.JSON(raw)
		}

		active := true
		if entry.Active != nil {
			active = *entry.Active
		}

		templates = append(templates, &types.TaskTemplate{
			ID:          id,
			Category:    planner.NormalizeStoreCategory(entry.Category),
			Subcategory: entry.Subcategory,
			Level:       entry.Level,
			Kind:        entry.Kind,
			Minutes:     entry.Minutes,
			Tags:        tags,
			Active:      active,
		})
		for locale, text := range entry.Texts {
			if text == "" {
				continue
			}
			texts = append(texts, &types.TemplateText{
				TemplateID: id,
				Locale:     locale,
				Text:       text,
			})
		}
	}
	return templates, texts, nil
}

// templateID keeps reruns idempotent: named ids hash to a stable UUID so the
// same seed entry always lands on the same row.
func templateID(raw string) uuid.UUID {
	if raw == "" {
		return uuid.New()
	}
	if id, err := uuid.Parse(raw); err == nil {
		return id
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("task_template:"+raw))
}
