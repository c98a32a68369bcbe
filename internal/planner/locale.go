package planner

import "strings"

// ResolveLocales returns the display locale and its single fallback. The
// resolution chain is deliberately two locales long: Spanish profiles fall
// back to English, everything else falls back to Spanish.
func ResolveLocales(profileLocale string) (locale, fallback string) {
	l := strings.ToLower(strings.TrimSpace(profileLocale))
	if l == "" {
		l = "es"
	}
	if i := strings.Index(l, "-"); i > 0 {
		l = l[:i]
	}
	if l == "es" {
		return l, "en"
	}
	return l, "es"
}
