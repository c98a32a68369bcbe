package planner

import (
	"math/rand"
	"time"
)

// durationTolerance is the soft window around the preferred minutes; if it
// would empty the pool it is ignored entirely.
const durationTolerance = 7

// Selector picks candidates with anti-repetition rules. The random source is
// injectable so tests can drive deterministic sequences; a nil source gets a
// fresh per-selector seed.
type Selector struct {
	rnd *rand.Rand
}

func NewSelector(rnd *rand.Rand) *Selector {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rnd: rnd}
}

// SelectOne returns a single pick, or nil for an empty pool. preferredMinutes
// <= 0 disables the duration tolerance.
func (s *Selector) SelectOne(pool []Candidate, history []HistoryEntry, preferredMinutes int) *Candidate {
	picks := s.Select(pool, history, 1, preferredMinutes)
	if len(picks) == 0 {
		return nil
	}
	return &picks[0]
}

// Select picks up to desired candidates without replacement. Recency rules
// are re-applied against the growing selection so a batch never produces
// adjacent duplicate kinds either.
func (s *Selector) Select(pool []Candidate, history []HistoryEntry, desired int, preferredMinutes int) []Candidate {
	if desired <= 0 || len(pool) == 0 {
		return nil
	}

	remaining := withDurationTolerance(pool, preferredMinutes)
	hist := append([]HistoryEntry(nil), history...)

	var out []Candidate
	for len(out) < desired && len(remaining) > 0 {
		survivors := avoidRepetition(remaining, hist)
		s.rnd.Shuffle(len(survivors), func(i, j int) {
			survivors[i], survivors[j] = survivors[j], survivors[i]
		})
		pick := survivors[0]
		out = append(out, pick)
		hist = append(hist, HistoryEntry{Kind: pick.Kind, Text: pick.Text})
		remaining = removeCandidate(remaining, pick)
	}
	return out
}

// withDurationTolerance keeps candidates within the +-7 min window, unless
// that would leave nothing to pick from.
func withDurationTolerance(pool []Candidate, preferredMinutes int) []Candidate {
	out := append([]Candidate(nil), pool...)
	if preferredMinutes <= 0 {
		return out
	}
	var filtered []Candidate
	for _, c := range out {
		if abs(c.Minutes-preferredMinutes) <= durationTolerance {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		return out
	}
	return filtered
}

// avoidRepetition applies the shared anti-repetition rule: if the last two
// history entries share a kind, drop that kind; drop any of the last five
// texts. Each restriction is skipped when it would empty the pool.
func avoidRepetition(pool []Candidate, history []HistoryEntry) []Candidate {
	out := pool
	if len(history) >= 2 {
		k1 := history[len(history)-2].Kind
		k2 := history[len(history)-1].Kind
		if k1 == k2 {
			var different []Candidate
			for _, c := range out {
				if c.Kind != k1 {
					different = append(different, c)
				}
			}
			if len(different) > 0 {
				out = different
			}
		}
	}

	recent := history
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	recentTexts := make(map[string]struct{}, len(recent))
	for _, h := range recent {
		recentTexts[h.Text] = struct{}{}
	}
	var novel []Candidate
	for _, c := range out {
		if _, seen := recentTexts[c.Text]; !seen {
			novel = append(novel, c)
		}
	}
	if len(novel) > 0 {
		return novel
	}
	return out
}

func removeCandidate(pool []Candidate, pick Candidate) []Candidate {
	for i, c := range pool {
		if c.Text == pick.Text && c.Kind == pick.Kind {
			return append(pool[:i:i], pool[i+1:]...)
		}
	}
	return pool
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
