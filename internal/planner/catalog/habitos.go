package catalog

import (
	"fmt"
	"strings"
)

var reducirHabitos = map[string]builder{
	"fumar": func(f Form) []Task {
		return []Task{
			{
				ID:           taskID("habitos", "fumar", "plan"),
				Title:        "Plan de reducción",
				Description:  fmt.Sprintf("Estrategia: %s. Disparadores: %s", f.Str("quitStrategy", "gradual"), strings.Join(f.Strs("triggers"), ", ")),
				Minutes:      f.minutesOr(10),
				TimesPerWeek: 7,
				Tags:         []string{"smoking"},
				KPI:          &KPI{Metric: "cigs_per_day", Target: f.Num("cigsPerDay", 8), Unit: "cigs", Mode: KPIAtMost},
			},
		}
	},

	"alcohol": func(f Form) []Task {
		desc := fmt.Sprintf("Aplicar: %s", f.Str("alcoholRule", "L-V"))
		if f.Str("alcoholRule", "") == "reducir" {
			desc = fmt.Sprintf("Límite objetivo: %s/sem", formatNum(f.Num("targetDrinksPerWeek", 4)))
		}
		return []Task{
			{
				ID:           taskID("habitos", "alcohol", "regla"),
				Title:        "Regla de consumo",
				Description:  desc,
				Minutes:      3,
				TimesPerWeek: 7,
				Tags:         []string{"alcohol"},
			},
		}
	},

	"azucar": func(f Form) []Task {
		return []Task{
			{
				ID:           taskID("habitos", "azucar", "foco"),
				Title:        fmt.Sprintf("Control azúcar (%s)", f.Str("sugarFocus", "ambos")),
				Minutes:      3,
				TimesPerWeek: 7,
				Tags:         []string{"sugar"},
				KPI:          &KPI{Metric: "sweet_per_week", Target: f.Num("sweetPerWeek", 6), Unit: "times", Mode: KPIAtMost},
			},
		}
	},

	"redes_sociales": func(f Form) []Task {
		limit := f.Num("dailyLimitMin", 30)
		return []Task{
			{
				ID:           taskID("habitos", "redes", "limite"),
				Title:        fmt.Sprintf("Límite diario redes (%s min)", formatNum(limit)),
				Minutes:      2,
				TimesPerWeek: 7,
				Tags:         []string{"screen-time"},
				KPI:          &KPI{Metric: "social_minutes", Target: limit, Unit: "min", Mode: KPIAtMost},
			},
		}
	},

	"otro_habito": func(f Form) []Task {
		return []Task{
			{
				ID:           taskID("habitos", "otro", f.Str("metricName", "metric")),
				Title:        fmt.Sprintf("Reducir: %s", f.Str("title", "hábito")),
				Minutes:      f.minutesOr(5),
				TimesPerWeek: 7,
				Tags:         []string{"habit"},
				KPI:          &KPI{Metric: f.Str("metricName", "units_per_day"), Target: f.Num("dailyTarget", 1), Unit: "units", Mode: KPIAtMost},
				Requires:     []string{"title", "metricName", "dailyTarget"},
			},
		}
	},
}
