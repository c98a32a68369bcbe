package planner

const (
	KindAccion    = "accion"
	KindEducacion = "educacion"
	KindReflexion = "reflexion"
)

// ValidKind reports whether k belongs to the closed task-kind set.
func ValidKind(k string) bool {
	return k == KindAccion || k == KindEducacion || k == KindReflexion
}

// Candidate is the engine-level shape every task source reduces to: the
// seeded library entries natively, store templates after text resolution,
// and catalog builder output after adaptation.
type Candidate struct {
	Kind     string   `json:"kind"`
	Minutes  int      `json:"minutes"`
	Text     string   `json:"text"`
	Category string   `json:"category"`
	Level    int      `json:"level"`
	Tags     []string `json:"tags,omitempty"`
}

// HistoryEntry is a (kind, text) pair derived from recently materialized
// challenges; input to anti-repetition only, never persisted on its own.
type HistoryEntry struct {
	Kind string
	Text string
}
