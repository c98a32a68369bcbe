package catalog

import "fmt"

var finanzas = map[string]builder{
	"ahorro": func(f Form) []Task {
		goal := f.Num("savingsTarget", 1000)
		freq := f.Str("contributionFrequency", "mensual")
		chargeDay := f.Int("chargeDay", 1)
		perWeek := 0.0
		if freq == "semanal" {
			perWeek = 1
		}
		return []Task{
			{
				ID:           taskID("finanzas", "ahorro", "aporte"),
				Title:        fmt.Sprintf("Aporte de ahorro (%s)", freq),
				Description:  fmt.Sprintf("Programa transferencia automática el día %d.", chargeDay),
				Minutes:      5,
				TimesPerWeek: perWeek,
				Tags:         []string{"savings"},
				KPI:          &KPI{Metric: "savings", Target: goal, Unit: "CHF", Mode: KPIAtLeast},
			},
			{
				ID:           taskID("finanzas", "ahorro", "revision"),
				Title:        "Revisión de gastos fijos",
				Minutes:      10,
				TimesPerWeek: 1,
				RepeatUnit:   "week",
				Tags:         []string{"budget"},
			},
		}
	},

	"pagar_deudas": func(f Form) []Task {
		pay := f.Num("monthlyPayment", 200)
		strategy := f.Str("paymentStrategy", "avalancha")
		return []Task{
			{
				ID:           taskID("finanzas", "deudas", strategy),
				Title:        fmt.Sprintf("Pago deuda (%s)", strategy),
				Description:  fmt.Sprintf("Realiza o verifica el pago programado (%s CHF).", formatNum(pay)),
				Minutes:      5,
				TimesPerWeek: 4,
				Tags:         []string{"debt"},
				KPI:          &KPI{Metric: "debt_payment", Target: pay, Unit: "CHF", Mode: KPIAtLeast},
			},
		}
	},

	"gasto_consciente": func(f Form) []Task {
		weekly := f.Num("weeklyBudget", 100)
		noDays := f.perWeek("noSpendDays", 1)
		return []Task{
			{
				ID:            taskID("finanzas", "gasto", "plan"),
				Title:         fmt.Sprintf("Plan semanal: %s CHF", formatNum(weekly)),
				Minutes:       6,
				TimesPerWeek:  1,
				DayOfWeekHint: []int{0},
				Tags:          []string{"budget"},
			},
			{
				ID:           taskID("finanzas", "gasto", "no_spend"),
				Title:        fmt.Sprintf("Día sin gastar (%s/sem)", formatNum(noDays)),
				Minutes:      2,
				TimesPerWeek: noDays,
				Tags:         []string{"no-spend"},
			},
		}
	},

	"presupuesto": func(f Form) []Task {
		perWeek := 0.5
		if f.Str("reviewFrequency", "") == "semanal" {
			perWeek = 1
		}
		return []Task{
			{
				ID:           taskID("finanzas", "presupuesto", "revision"),
				Title:        "Revisión 50/30/20",
				Minutes:      10,
				TimesPerWeek: perWeek,
				Tags:         []string{"budget"},
			},
		}
	},
}
