package catalog

import "strconv"

type builder func(f Form) []Task

// registry maps (category, subcategory) to its builder. Unknown pairs yield
// no tasks, never an error.
var registry = map[string]map[string]builder{
	"salud":           salud,
	"alimentacion":    alimentacion,
	"mental":          mental,
	"finanzas":        finanzas,
	"relaciones":      relaciones,
	"carrera":         carrera,
	"autocuidado":     autocuidado,
	"organizacion":    organizacion,
	"reducir_habitos": reducirHabitos,
}

// BuildTasks derives candidate tasks for a goal from its onboarding answers.
// Pure and deterministic given the same form; builders never perform I/O.
// Tasks whose Requires fields are absent from the form are dropped.
func BuildTasks(category, subcategory string, form Form) []Task {
	byCat, ok := registry[category]
	if !ok {
		return nil
	}
	build, ok := byCat[subcategory]
	if !ok {
		return nil
	}

	var out []Task
	for i, t := range build(form) {
		if missingRequired(t, form) {
			continue
		}
		if t.ID == "" {
			t.ID = taskID(category, subcategory, strconv.Itoa(i))
		}
		if t.Minutes <= 0 {
			t.Minutes = 10
		}
		if t.Priority == "" {
			t.Priority = "normal"
		}
		out = append(out, t)
	}
	return out
}

// subcategories lists the known subcategory keys for a category.
func subcategories(category string) []string {
	byCat, ok := registry[category]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(byCat))
	for k := range byCat {
		out = append(out, k)
	}
	return out
}

func missingRequired(t Task, form Form) bool {
	for _, key := range t.Requires {
		if !form.Has(key) {
			return true
		}
	}
	return false
}
