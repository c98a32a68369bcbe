package planner

import "strings"

// storeCategoryBySlug collapses every legacy label and current slug onto the
// canonical task_templates.category value. Unrecognized non-empty input
// passes through unchanged so new store categories need no code change here.
var storeCategoryBySlug = map[string]string{
	"salud":        "salud",
	"salud_fisica": "salud",

	"alimentacion": "alimentacion",
	"alimentación": "alimentacion",

	"mental":       "mental",
	"salud_mental": "mental",

	"finanzas": "finanzas",
	"ahorro":   "finanzas",

	"organizacion": "organizacion",
	"organización": "organizacion",
	"enfoque":      "organizacion",

	"carrera": "carrera",
	"idioma":  "carrera",

	"relaciones":  "relaciones",
	"autocuidado": "autocuidado",

	"reducir_habitos": "habitos_nocivos",
	"habitos_nocivos": "habitos_nocivos",

	"nuevo": "carrera",
}

// NormalizeStoreCategory maps a raw goal category onto the canonical store
// slug. Empty input defaults to "salud".
func NormalizeStoreCategory(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "salud"
	}
	if mapped, ok := storeCategoryBySlug[s]; ok {
		return mapped
	}
	return s
}

// libraryCategoryBySlug maps goal categories onto the smaller seeded-library
// category set used by the fallback path.
var libraryCategoryBySlug = map[string]string{
	"salud":        "salud",
	"salud_fisica": "salud",
	"alimentacion": "alimentacion",
	"alimentación": "alimentacion",
	"finanzas":     "ahorro",
	"ahorro":       "ahorro",
	"organizacion": "enfoque",
	"organización": "enfoque",
	"enfoque":      "enfoque",
	"carrera":      "idioma",
	"idioma":       "idioma",
}

// LibraryCategory maps a raw goal category onto the seeded library's
// category set, defaulting to the generic "otro" pool.
func LibraryCategory(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if mapped, ok := libraryCategoryBySlug[s]; ok {
		return mapped
	}
	return "otro"
}
