package catalog

import "fmt"

var carrera = map[string]builder{
	"skill": func(f Form) []Task {
		deep := f.perWeek("deepStudyDays", 3)
		tasks := []Task{
			{
				ID:           taskID("car", "skill", "study"),
				Title:        fmt.Sprintf("Bloque de estudio (%s)", f.Str("specificSkill", "Skill")),
				Description:  fmt.Sprintf("Recurso: %s.", f.Str("resources", "curso/plataforma")),
				Minutes:      f.minutesOr(25),
				Slot:         f.slotOr(SlotManana),
				TimesPerWeek: deep,
				Tags:         []string{"study"},
			},
		}
		if f.Bool("includeTests") {
			tasks = append(tasks, Task{
				ID:           taskID("car", "skill", "mock"),
				Title:        "Simulacro/Práctica",
				Minutes:      30,
				TimesPerWeek: 1,
				Tags:         []string{"practice"},
			})
		}
		return tasks
	},

	"proyecto": func(f Form) []Task {
		milestones := f.perWeek("weeklyMilestones", 1)
		shareDesc := "Registro privado en tu diario de progreso."
		if f.Bool("publicSharing") {
			shareDesc = "Post en LinkedIn/GitHub/foro"
		}
		return []Task{
			{
				ID:           taskID("car", "proyecto", "hitos"),
				Title:        "Hito de proyecto",
				Description:  fmt.Sprintf("Define entregable de esta semana (%s hito/s).", formatNum(milestones)),
				Minutes:      20,
				TimesPerWeek: milestones,
				Tags:         []string{"project"},
			},
			{
				ID:           taskID("car", "proyecto", "difusion"),
				Title:        "Pequeña publicación del progreso",
				Description:  shareDesc,
				Minutes:      10,
				TimesPerWeek: 1,
				Tags:         []string{"build-in-public"},
			},
		}
	},

	"networking": func(f Form) []Task {
		contacts := f.perWeek("weeklyContacts", 3)
		tasks := []Task{
			{
				ID:           taskID("car", "networking", "reachouts"),
				Title:        fmt.Sprintf("Contactos: %s/sem", formatNum(contacts)),
				Description:  "Mensaje breve con propuesta clara y cierre (CTA).",
				Minutes:      15,
				TimesPerWeek: contacts,
				Tags:         []string{"networking", "outreach"},
			},
		}
		if f.Bool("mockInterviews") {
			tasks = append(tasks, Task{
				ID:           taskID("car", "networking", "mock"),
				Title:        "Simulacro de entrevista",
				Minutes:      30,
				TimesPerWeek: 1,
				Tags:         []string{"interview"},
			})
		}
		return tasks
	},

	"idiomas": func(f Form) []Task {
		return []Task{
			{
				ID:           taskID("car", "idiomas", "practice"),
				Title:        fmt.Sprintf("Práctica de %s (%s)", f.Str("languageTarget", "idioma"), f.Str("focus", "speaking")),
				Minutes:      f.minutesOr(15),
				TimesPerWeek: f.perWeek("conversationDays", 3),
				Tags:         []string{"language"},
			},
		}
	},
}
