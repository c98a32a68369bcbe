package catalog

import "fmt"

var organizacion = map[string]builder{
	"plan_diario": func(f Form) []Task {
		focusBlock := f.Int("focusBlock", 15)
		return []Task{
			{
				ID:           taskID("org", "plan", "top3"),
				Title:        fmt.Sprintf("Plan del día (TOP %d)", f.Int("dailyTop", 3)),
				Minutes:      5,
				Slot:         Slot(f.Str("planTime", "manana")),
				TimesPerWeek: 7,
				Tags:         []string{"planning"},
			},
			{
				ID:           taskID("org", "plan", "foco"),
				Title:        fmt.Sprintf("Bloque de enfoque %d min", focusBlock),
				Minutes:      focusBlock,
				TimesPerWeek: 5,
				Tags:         []string{"focus"},
			},
		}
	},

	"revision_semanal": func(f Form) []Task {
		return []Task{
			{
				ID:            taskID("org", "review", "semanal"),
				Title:         "Revisión semanal",
				Minutes:       20,
				TimesPerWeek:  1,
				DayOfWeekHint: []int{0},
				Tags:          []string{"review"},
			},
		}
	},

	"declutter": func(f Form) []Task {
		zone := "zona pequeña"
		if zones := f.Strs("zones"); len(zones) > 0 {
			zone = zones[0]
		}
		return []Task{
			{
				ID:           taskID("org", "declutter", "zona"),
				Title:        fmt.Sprintf("Declutter: %s", zone),
				Minutes:      15,
				TimesPerWeek: 2,
				Tags:         []string{"declutter"},
				KPI:          &KPI{Metric: "items_out", Target: f.Num("itemsPerSession", 10), Unit: "items", Mode: KPIAtLeast},
			},
		}
	},

	"inbox_zero": func(f Form) []Task {
		return []Task{
			{
				ID:           taskID("org", "inbox", "daily"),
				Title:        "Bandeja a cero (timebox)",
				Minutes:      f.Int("emailMinutes", 15),
				TimesPerWeek: 5,
				Tags:         []string{"email"},
			},
		}
	},
}
