package planner

import (
	"math/rand"
	"testing"
)

func TestPickOneFiltersByCategoryLevelMinutes(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		pick := PickOne("salud", 1, 5, nil, rnd)
		if pick == nil {
			t.Fatalf("expected a pick for salud level 1")
		}
		if pick.Category != "salud" {
			t.Fatalf("wrong category: %+v", pick)
		}
		if pick.Level < 1 || pick.Level > 2 {
			t.Fatalf("level outside +-1 window: %+v", pick)
		}
		if abs(pick.Minutes-5) > 5 {
			t.Fatalf("minutes outside +-5 window: %+v", pick)
		}
	}
}

func TestPickOneEmptyResult(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	if pick := PickOne("no_such_category", 1, 10, nil, rnd); pick != nil {
		t.Fatalf("expected nil for unknown category, got %+v", pick)
	}
	if pick := PickOne("salud", 5, 60, nil, rnd); pick != nil {
		t.Fatalf("expected nil when no entry fits the windows, got %+v", pick)
	}
}

func TestPickOneAppliesAntiRepetition(t *testing.T) {
	history := []HistoryEntry{
		{Kind: KindAccion, Text: "x"},
		{Kind: KindAccion, Text: "y"},
	}
	for seed := int64(0); seed < 20; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		pick := PickOne("salud", 1, 5, history, rnd)
		if pick == nil {
			t.Fatalf("seed %d: expected a pick", seed)
		}
		if pick.Kind == KindAccion {
			t.Fatalf("seed %d: repeated kind accion with alternatives in pool", seed)
		}
	}
}

func TestPickOneNilRand(t *testing.T) {
	if pick := PickOne("otro", 1, 5, nil, nil); pick == nil {
		t.Fatalf("expected a pick with a default random source")
	}
}
