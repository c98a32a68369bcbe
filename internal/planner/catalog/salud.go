package catalog

import "fmt"

var salud = map[string]builder{
	"bajar_peso": func(f Form) []Task {
		m := f.minutesOr(15)
		w := f.perWeek("frequency", 4)
		return []Task{
			{
				ID:           taskID("salud", "bajar_peso", "cardio"),
				Title:        fmt.Sprintf("Cardio ligero %d min", m),
				Description:  fmt.Sprintf("Haz caminar/correr suave o bici estática durante %d minutos a ritmo conversacional.", m),
				Minutes:      m,
				Slot:         f.slotOr(SlotTarde),
				TimesPerWeek: w,
				Tags:         []string{"cardio", "fat-loss"},
				KPI:          &KPI{Metric: "cardio_minutes", Target: float64(m), Unit: "min", Mode: KPIAtLeast},
			},
			{
				ID:           taskID("salud", "bajar_peso", "fuerza_basica"),
				Title:        "Rutina fuerza cuerpo completo (casera)",
				Description:  "3 rondas: sentadillas x12, flexiones asistidas x10, glute bridge x15, plancha 30s.",
				Minutes:      clampInt(m*8/10, 10, 25),
				Slot:         f.slotOr(SlotManana),
				TimesPerWeek: maxFloat(2, w/2),
				Tags:         []string{"strength", "fat-loss"},
			},
			{
				ID:           taskID("salud", "bajar_peso", "registro"),
				Title:        "Registro de ingesta y peso",
				Description:  "Anota comidas del día y tu peso 1x/sem para control de tendencia.",
				Minutes:      5,
				Slot:         SlotNoche,
				TimesPerWeek: 7,
				Tags:         []string{"tracking"},
				KPI:          &KPI{Metric: "log_meal", Target: 1, Unit: "entry", Mode: KPIAtLeast},
			},
		}
	},

	"ganar_musculo": func(f Form) []Task {
		m := f.minutesOr(25)
		w := f.perWeek("frequency", 3)
		zonas := f.Str("targetZones", "cuerpo completo")
		return []Task{
			{
				ID:           taskID("salud", "ganar_musculo", "fuerza"),
				Title:        fmt.Sprintf("Fuerza %s", zonas),
				Description:  fmt.Sprintf("Progresión 5x5 o 3x8. Concéntrate en %s. Aumenta carga cuando completes las repeticiones.", zonas),
				Minutes:      m,
				Slot:         f.slotOr(SlotTarde),
				TimesPerWeek: w,
				Tags:         []string{"strength", "hypertrophy"},
				KPI:          &KPI{Metric: "workout_done", Target: 1, Unit: "session", Mode: KPIEquals},
			},
			{
				ID:           taskID("salud", "ganar_musculo", "proteinas"),
				Title:        "Chequeo proteína del día",
				Description:  "Confirma que alcanzaste tu ración objetivo de proteína.",
				Minutes:      3,
				Slot:         SlotNoche,
				TimesPerWeek: 7,
				Tags:         []string{"nutrition"},
				KPI:          &KPI{Metric: "protein_ok", Target: 1, Unit: "flag", Mode: KPIEquals},
			},
		}
	},

	"cardio": func(f Form) []Task {
		m := f.minutesOr(20)
		w := f.perWeek("frequency", 4)
		mod := f.Str("modality", "correr")
		return []Task{
			{
				ID:           taskID("salud", "cardio", mod),
				Title:        fmt.Sprintf("%s %d min", upper(mod), m),
				Description:  fmt.Sprintf("Sesión de %s por %d min con 5 min de calentamiento y 3 min de vuelta a la calma.", mod, m),
				Minutes:      m,
				Slot:         f.slotOr(SlotManana),
				TimesPerWeek: w,
				Tags:         []string{"cardio", "endurance"},
				KPI:          &KPI{Metric: "cardio_minutes", Target: float64(m), Unit: "min", Mode: KPIAtLeast},
			},
		}
	},

	"movilidad": func(f Form) []Task {
		m := f.minutesOr(10)
		zona := f.Str("targetZone", "cadera y espalda")
		stiff := f.Str("stiffness", "media")
		return []Task{
			{
				ID:           taskID("salud", "movilidad", zona),
				Title:        fmt.Sprintf("Movilidad %s (%s)", zona, stiff),
				Description:  fmt.Sprintf("Secuencia guiada 10-15 min enfocada en %s. Prioriza respiración nasal y rango cómodo.", zona),
				Minutes:      m,
				Slot:         f.slotOr(SlotNoche),
				TimesPerWeek: 5,
				Tags:         []string{"mobility", "recovery"},
			},
		}
	},

	"mantener_activo": func(f Form) []Task {
		steps := f.Int("stepsGoal", 7500)
		days := f.perWeek("activeDays", 5)
		return []Task{
			{
				ID:           taskID("salud", "mantener_activo", "steps"),
				Title:        fmt.Sprintf("Meta de pasos: %d", steps),
				Description:  fmt.Sprintf("Llega a %d pasos hoy. Divide en 2-3 paseos.", steps),
				Minutes:      20,
				Slot:         f.slotOr(SlotTarde),
				TimesPerWeek: days,
				Tags:         []string{"steps", "habit"},
				KPI:          &KPI{Metric: "steps", Target: float64(steps), Unit: "steps", Mode: KPIAtLeast},
			},
		}
	},
}
