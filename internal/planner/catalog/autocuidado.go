package catalog

import (
	"fmt"
	"strings"
)

var autocuidado = map[string]builder{
	"sueno_energia": func(f Form) []Task {
		desc := strings.Join(f.Strs("sleepHygiene"), " · ")
		if desc == "" {
			desc = "Rutina y luz tenue."
		}
		return []Task{
			{
				ID:           taskID("auto", "sueno", "higiene"),
				Title:        "Higiene del sueño",
				Description:  desc,
				Minutes:      8,
				Slot:         SlotNoche,
				TimesPerWeek: 7,
				Tags:         []string{"sleep"},
			},
		}
	},

	"hobbies_creatividad": func(f Form) []Task {
		return []Task{
			{
				ID:           taskID("auto", "hobby", "sesion"),
				Title:        fmt.Sprintf("Hobby: %s", f.Str("hobbyName", "creatividad")),
				Minutes:      f.Int("sessionMinutes", 20),
				TimesPerWeek: f.perWeek("sessionsPerWeek", 3),
				Tags:         []string{"hobby", "creative"},
			},
		}
	},

	"naturaleza_mov_suave": func(f Form) []Task {
		return []Task{
			{
				ID:           taskID("auto", "naturaleza", "paseo"),
				Title:        "Paseo/movimiento suave",
				Minutes:      f.minutesOr(20),
				TimesPerWeek: f.perWeek("daysPerWeek", 4),
				Tags:         []string{"nature", "walk"},
			},
		}
	},

	"micro_placeres": func(f Form) []Task {
		ideas := f.Strs("pleasureIdeas")
		if len(ideas) > 3 {
			ideas = ideas[:3]
		}
		desc := strings.Join(ideas, " · ")
		if desc == "" {
			desc = "Té, música, lectura…"
		}
		return []Task{
			{
				ID:           taskID("auto", "micro", "placeres"),
				Title:        "Micro-placer del día",
				Description:  desc,
				Minutes:      5,
				TimesPerWeek: f.perWeek("pleasuresPerDay", 2),
				Tags:         []string{"joy"},
			},
		}
	},
}
