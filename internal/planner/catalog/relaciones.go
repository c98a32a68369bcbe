package catalog

import "fmt"

var relaciones = map[string]builder{
	"pareja": func(f Form) []Task {
		desc := "Cena/paseo y conversación sin pantallas."
		if ritual := f.Str("weeklyRitual", ""); ritual != "" {
			desc = fmt.Sprintf("Plan: %s", ritual)
		}
		return []Task{
			{
				ID:            taskID("rel", "pareja", "ritual"),
				Title:         "Ritual semanal en pareja",
				Description:   desc,
				Minutes:       60,
				TimesPerWeek:  1,
				DayOfWeekHint: []int{5, 6},
				Tags:          []string{"relationship"},
			},
		}
	},

	"amistades": func(f Form) []Task {
		perWeekByFreq := map[string]float64{
			"diario": 5, "semanal": 1, "quincenal": 0.5, "mensual": 0.25,
		}
		perWeek, ok := perWeekByFreq[f.Str("contactFrequency", "semanal")]
		if !ok {
			perWeek = 1
		}
		return []Task{
			{
				ID:           taskID("rel", "amistades", "contacto"),
				Title:        "Contacta a tus prioritarios",
				Description:  fmt.Sprintf("Mensaje/call corto a %s.", f.Str("priorityPeople", "1-3 amigos")),
				Minutes:      5,
				TimesPerWeek: perWeek,
				Tags:         []string{"friends"},
			},
		}
	},

	"familia": func(f Form) []Task {
		return []Task{
			{
				ID:           taskID("rel", "familia", "ritual"),
				Title:        "Actividad familiar",
				Description:  fmt.Sprintf("Ritual: %s.", f.Str("ritual", "comida juntos")),
				Minutes:      f.Int("sessionDuration", 60),
				TimesPerWeek: 1,
				Tags:         []string{"family"},
			},
		}
	},

	"conocer_gente": func(f Form) []Task {
		return []Task{
			{
				ID:           taskID("rel", "conocer", "actividad"),
				Title:        "Asiste a actividad social",
				Description:  fmt.Sprintf("Formato: %s. Intereses: %s.", f.Str("format", "evento"), f.Str("interests", "generales")),
				Minutes:      60,
				TimesPerWeek: f.perWeek("weeklyFrequency", 1),
				Tags:         []string{"networking", "social"},
			},
		}
	},
}
