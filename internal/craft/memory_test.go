package craft

import (
	"testing"

	"github.com/appengine-ltd/hearthstead/internal/chem"
	"github.com/appengine-ltd/hearthstead/internal/item"
)

func TestRememberKeepsHigherScore(t *testing.T) {
	var m Memory
	sigs := []string{"H2O:1.000", "STARCH:1.000"}

	m.Remember("meal", ProcessCook, sigs, []float64{0.5, 0.5}, 2.0)
	m.Remember("meal", ProcessCook, sigs, []float64{0.9, 0.1}, 1.0)

	if m.Len() != 1 {
		t.Fatalf("expected upsert, got %d recipes", m.Len())
	}
	got := m.Recipes()[0]
	if got.Score != 2.0 {
		t.Fatalf("lower-scoring duplicate overwrote score: %v", got.Score)
	}
	if got.Weights[0] != 0.5 {
		t.Fatalf("lower-scoring duplicate overwrote weights: %v", got.Weights)
	}

	m.Remember("meal", ProcessCook, sigs, []float64{0.7, 0.3}, 3.0)
	got = m.Recipes()[0]
	if got.Score != 3.0 || got.Weights[0] != 0.7 {
		t.Fatalf("higher score should win with its weights: %+v", got)
	}
}

func TestRememberDistinguishesSignatureOrder(t *testing.T) {
	var m Memory
	m.Remember("meal", ProcessCook, []string{"a", "b"}, nil, 1)
	m.Remember("meal", ProcessCook, []string{"b", "a"}, nil, 1)
	if m.Len() != 2 {
		t.Fatalf("ordered signature lists are distinct keys, got %d", m.Len())
	}
}

func TestRecallPrefersBestSatisfiableRecipe(t *testing.T) {
	reg := item.NewRegistry()
	water := reg.Register(item.Def{ID: "water", Mix: chem.Mixture{chem.SubWater: 1}})
	grain := reg.Register(item.Def{ID: "grain", Mix: chem.Mixture{chem.SubStarch: 1}})
	truffle := reg.Register(item.Def{ID: "truffle", Mix: chem.Mixture{chem.SubFat: 1}})

	var m Memory
	m.Remember("meal", ProcessCook, []string{truffle.Signature}, nil, 9)
	m.Remember("meal", ProcessCook, []string{grain.Signature, water.Signature}, []float64{0.6, 0.4}, 4)

	inventory := item.Stockpile{"grain": 1}
	stockpile := item.Stockpile{"water": 2}

	// The truffle recipe scores best but cannot be re-acquired.
	inputs, weights, ok := m.Recall("meal", ProcessCook, inventory, stockpile, reg)
	if !ok {
		t.Fatalf("expected recall to find the grain recipe")
	}
	if len(inputs) != 2 || inputs[0].ID != "grain" || inputs[1].ID != "water" {
		t.Fatalf("unexpected inputs %v", inputs)
	}
	if len(weights) != 2 || weights[0] != 0.6 {
		t.Fatalf("expected recipe weights back, got %v", weights)
	}

	// Recall must not consume anything or touch memory.
	if inventory.Qty("grain") != 1 || stockpile.Qty("water") != 2 {
		t.Fatalf("recall mutated pools: inv=%v stock=%v", inventory, stockpile)
	}
	if m.Len() != 2 {
		t.Fatalf("recall mutated memory")
	}
}

func TestRecallReservesUnitsAcrossSlots(t *testing.T) {
	reg := item.NewRegistry()
	water := reg.Register(item.Def{ID: "water", Mix: chem.Mixture{chem.SubWater: 1}})

	// "potion" has no tag heuristic, so a decline here can only mean the
	// per-slot reservation refused to reuse the single unit.
	var m Memory
	m.Remember("potion", ProcessBrew, []string{water.Signature, water.Signature}, nil, 1)

	oneUnit := item.Stockpile{"water": 1}
	if _, _, ok := m.Recall("potion", ProcessBrew, oneUnit, nil, reg); ok {
		t.Fatalf("one stocked unit must not fill two slots")
	}

	twoUnits := item.Stockpile{"water": 2}
	inputs, _, ok := m.Recall("potion", ProcessBrew, twoUnits, nil, reg)
	if !ok || len(inputs) != 2 {
		t.Fatalf("expected two slots filled from two units, got %v ok=%v", inputs, ok)
	}
}

func TestRecallUnsatisfiableRecipeYieldsTagFallback(t *testing.T) {
	reg := item.NewRegistry()
	water := reg.Register(item.Def{ID: "water", Mix: chem.Mixture{chem.SubWater: 1}})

	var m Memory
	m.Remember("drink", ProcessBrew, []string{water.Signature, water.Signature}, nil, 1)

	// The two-slot recipe cannot be re-acquired from one unit, but the
	// drink-tag heuristic still offers it; the missing weights mark the
	// result as heuristic rather than learned.
	oneUnit := item.Stockpile{"water": 1}
	inputs, weights, ok := m.Recall("drink", ProcessBrew, oneUnit, nil, reg)
	if !ok || len(inputs) != 1 || inputs[0].ID != "water" {
		t.Fatalf("expected single-unit fallback, got %v ok=%v", inputs, ok)
	}
	if weights != nil {
		t.Fatalf("fallback must not carry learned weights, got %v", weights)
	}
}

func TestRecallFallsBackToTagSearch(t *testing.T) {
	reg := item.NewRegistry()
	reg.Register(item.Def{ID: "berries", Mix: chem.Mixture{chem.SubGlucose: 0.6, chem.SubFiber: 0.4}})
	reg.Register(item.Def{ID: "water", Mix: chem.Mixture{chem.SubWater: 1}})

	var m Memory
	stock := item.Stockpile{"berries": 3, "water": 3}
	inputs, weights, ok := m.Recall("meal", ProcessCook, nil, stock, reg)
	if !ok {
		t.Fatalf("expected heuristic fallback to find food")
	}
	if weights != nil {
		t.Fatalf("heuristic fallback has no learned weights, got %v", weights)
	}
	foundFood := false
	for _, def := range inputs {
		if def.HasTag("food") {
			foundFood = true
		}
	}
	if !foundFood {
		t.Fatalf("expected a food-tagged ingredient, got %v", inputs)
	}

	if _, _, ok := m.Recall("meal", ProcessCook, nil, item.Stockpile{}, reg); ok {
		t.Fatalf("expected recall to decline with empty pools")
	}
}
