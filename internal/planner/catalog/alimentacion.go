package catalog

import (
	"fmt"
	"strings"
)

var alimentacion = map[string]builder{
	"mas_verduras": func(f Form) []Task {
		meals := f.Int("mealsPerDay", 3)
		return []Task{
			{
				ID:           taskID("food", "mas_verduras", "plato"),
				Title:        fmt.Sprintf("Añade verdura a %d comidas", meals),
				Description:  "Llena 1/2 del plato con verduras o añade una ensalada simple.",
				Minutes:      5,
				Slot:         SlotMediodia,
				TimesPerWeek: 7,
				Tags:         []string{"vegetables", "habit"},
				KPI:          &KPI{Metric: "veg_meals", Target: float64(meals), Unit: "meals", Mode: KPIAtLeast},
			},
		}
	},

	"mas_proteina": func(f Form) []Task {
		servings := f.Int("servingsPerDay", 3)
		fuente := f.Str("proteinSource", "mixto")
		return []Task{
			{
				ID:           taskID("food", "mas_proteina", fuente),
				Title:        fmt.Sprintf("Asegura %d raciones de proteína", servings),
				Description:  fmt.Sprintf("Proteína fuente %s. Ración ~25-30g.", fuente),
				Minutes:      5,
				Slot:         SlotNoche,
				TimesPerWeek: 7,
				Tags:         []string{"protein", "habit"},
				KPI:          &KPI{Metric: "protein_servings", Target: float64(servings), Unit: "servings", Mode: KPIAtLeast},
			},
		}
	},

	"menos_procesados": func(f Form) []Task {
		nivel := f.Str("strictness", "gradual")
		triggers := f.Strs("triggers")
		plan := "situaciones comunes"
		if len(triggers) > 0 {
			plan = strings.Join(triggers, ", ")
		}
		return []Task{
			{
				ID:           taskID("food", "menos_procesados", nivel),
				Title:        fmt.Sprintf("Evita ultraprocesados (%s)", nivel),
				Description:  fmt.Sprintf("Plan anti-antojos para: %s.", plan),
				Minutes:      3,
				Slot:         SlotTarde,
				TimesPerWeek: 7,
				Tags:         []string{"processed", "habit"},
			},
		}
	},

	"plan_menus": func(f Form) []Task {
		days := f.Int("planningDays", 5)
		recipes := f.Int("recipesCount", 5)
		return []Task{
			{
				ID:            taskID("food", "plan_menus", "plan"),
				Title:         fmt.Sprintf("Planificar %d días (%d recetas)", days, recipes),
				Description:   "Elige recetas, lista de compra y prep básico.",
				Minutes:       20,
				Slot:          SlotTarde,
				TimesPerWeek:  1,
				DayOfWeekHint: []int{0},
				Tags:          []string{"planning", "grocery"},
			},
		}
	},
}
