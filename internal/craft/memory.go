package craft

import (
	"sort"

	"github.com/appengine-ltd/hearthstead/internal/item"
)

// LearnedRecipe is one remembered success: what was being made, how, from
// which ingredient signatures, and how well it turned out.
type LearnedRecipe struct {
	Intent     string
	Process    Process
	Signatures []string
	Weights    []float64
	Score      float64
}

// Memory is one agent's recipe store. Single-owner like the rest of agent
// state; concurrent crafts for the same agent must be serialized by the
// host.
type Memory struct {
	recipes []LearnedRecipe
}

func (m *Memory) Len() int {
	return len(m.recipes)
}

// Recipes returns a copy for inspection.
func (m *Memory) Recipes() []LearnedRecipe {
	out := make([]LearnedRecipe, len(m.recipes))
	copy(out, m.recipes)
	return out
}

// Remember upserts by exact (intent, process, ordered signatures) match. On
// collision the higher score wins and keeps its own weights.
func (m *Memory) Remember(intent string, process Process, signatures []string, weights []float64, score float64) {
	for i := range m.recipes {
		existing := &m.recipes[i]
		if existing.Intent != intent || existing.Process != process {
			continue
		}
		if !sameSignatures(existing.Signatures, signatures) {
			continue
		}
		if score > existing.Score {
			existing.Score = score
			existing.Weights = append([]float64(nil), weights...)
		}
		return
	}
	m.recipes = append(m.recipes, LearnedRecipe{
		Intent:     intent,
		Process:    process,
		Signatures: append([]string(nil), signatures...),
		Weights:    append([]float64(nil), weights...),
		Score:      score,
	})
}

func sameSignatures(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Recall finds known-good ingredients for (intent, process). Candidates are
// tried best-score-first; each required signature slot must be re-acquired
// from the agent inventory or the shared stockpile. The first fully
// satisfiable recipe wins. With no satisfiable recipe it falls back to a
// tag-heuristic ingredient search. Recall never mutates memory or the pools.
func (m *Memory) Recall(intent string, process Process, inventory, stockpile item.Stockpile,
	reg *item.Registry) ([]item.Def, []float64, bool) {

	candidates := make([]LearnedRecipe, 0, len(m.recipes))
	for _, recipe := range m.recipes {
		if recipe.Intent == intent && recipe.Process == process {
			candidates = append(candidates, recipe)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	for _, recipe := range candidates {
		if inputs, ok := acquireBySignatures(recipe.Signatures, inventory, stockpile, reg); ok {
			return inputs, append([]float64(nil), recipe.Weights...), true
		}
	}

	if inputs, ok := findByIntentTags(intent, inventory, stockpile, reg); ok {
		return inputs, nil, true
	}
	return nil, nil, false
}

// acquireBySignatures fills each signature slot with a distinct unit of a
// matching item. The registry's stable listing order keeps the match
// deterministic; a reserved map prevents one stocked unit from filling two
// slots.
func acquireBySignatures(signatures []string, inventory, stockpile item.Stockpile,
	reg *item.Registry) ([]item.Def, bool) {

	reserved := map[string]float64{}
	inputs := make([]item.Def, 0, len(signatures))
	for _, signature := range signatures {
		filled := false
		for _, def := range reg.List() {
			if def.Signature != signature {
				continue
			}
			available := inventory.Qty(def.ID) + stockpile.Qty(def.ID) - reserved[def.ID]
			if available < 1 {
				continue
			}
			reserved[def.ID]++
			inputs = append(inputs, def)
			filled = true
			break
		}
		if !filled {
			return nil, false
		}
	}
	return inputs, true
}

// intentTags maps crafting intents to the tags a heuristic ingredient
// search looks for.
var intentTags = map[string][]string{
	"meal":  {"food", "drink"},
	"drink": {"drink"},
	"tool":  {"metal", "wood"},
	"fuel":  {"fuel"},
	"build": {"wood", "stone"},
}

func findByIntentTags(intent string, inventory, stockpile item.Stockpile,
	reg *item.Registry) ([]item.Def, bool) {

	tags, ok := intentTags[intent]
	if !ok {
		return nil, false
	}
	reserved := map[string]float64{}
	var inputs []item.Def
	for _, tag := range tags {
		for _, def := range reg.List() {
			if !def.HasTag(tag) {
				continue
			}
			available := inventory.Qty(def.ID) + stockpile.Qty(def.ID) - reserved[def.ID]
			if available < 1 {
				continue
			}
			reserved[def.ID]++
			inputs = append(inputs, def)
			break
		}
	}
	if len(inputs) == 0 {
		return nil, false
	}
	return inputs, true
}
