package catalog

import "fmt"

var mental = map[string]builder{
	"reducir_estres": func(f Form) []Task {
		tech := f.Str("technique", "respiracion")
		return []Task{
			{
				ID:           taskID("mental", "estres", tech),
				Title:        fmt.Sprintf("Técnica anti-estrés: %s", tech),
				Description:  "3-5 min de respiración 4-7-8 o paseo corto consciente.",
				Minutes:      5,
				Slot:         f.slotOr(SlotTarde),
				TimesPerWeek: 7,
				Tags:         []string{"stress", "breathing"},
			},
		}
	},

	"dormir_mejor": func(f Form) []Task {
		hours := f.Num("sleepHours", 7)
		bedtime := f.Str("bedtime", "22:30")
		wake := f.Str("wakeTime", "06:30")
		return []Task{
			{
				ID:           taskID("mental", "sleep", "ritual"),
				Title:        "Ritual nocturno",
				Description:  fmt.Sprintf("Apaga pantallas 60 min antes. A cama %s. Despertar %s.", bedtime, wake),
				Minutes:      f.Int("ritualDuration", 15),
				Slot:         SlotNoche,
				TimesPerWeek: 7,
				Tags:         []string{"sleep"},
				KPI:          &KPI{Metric: "sleep_hours", Target: hours, Unit: "h", Mode: KPIAtLeast},
			},
		}
	},

	"mindfulness": func(f Form) []Task {
		freq := f.perWeek("frequency", 5)
		practice := f.Str("practice", "meditacion")
		return []Task{
			{
				ID:           taskID("mental", "mindfulness", practice),
				Title:        fmt.Sprintf("Mindfulness (%s)", practice),
				Description:  "Sesión guiada 5-10 min. Respiración y atención a sensaciones.",
				Minutes:      10,
				Slot:         f.slotOr(SlotManana),
				TimesPerWeek: freq,
				Tags:         []string{"mindfulness"},
			},
		}
	},

	"menos_pantalla": func(f Form) []Task {
		limit := f.Num("dailyLimit", 1.5)
		return []Task{
			{
				ID:           taskID("mental", "menos_pantalla", "limite"),
				Title:        fmt.Sprintf("Límite pantalla %sh", formatNum(limit)),
				Description:  "Activa temporizadores en apps objetivo y prepara alternativas rápidas.",
				Minutes:      3,
				Slot:         SlotNoche,
				TimesPerWeek: 7,
				Tags:         []string{"screen-time"},
				KPI:          &KPI{Metric: "screen_hours", Target: limit, Unit: "h", Mode: KPIAtMost},
			},
		}
	},
}
