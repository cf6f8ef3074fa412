package craft

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"

	"github.com/appengine-ltd/hearthstead/internal/chem"
	"github.com/appengine-ltd/hearthstead/internal/item"
)

// variationTag is the one sanctioned randomness channel: a caller-supplied
// scalar in [0,1) injected into the reactor context per craft.
const variationTag = "variation"

// CraftOnce combines the weighted input mixtures, runs them through the
// reactor with the process preset, and registers the result as a new item.
// It declines (ok=false) when there is nothing usable to combine.
func CraftOnce(rng *rand.Rand, reg *item.Registry, rules []chem.ReactionRule,
	inputs []item.Def, process Process, labelHint string, weights []float64) (item.Def, bool) {

	if len(inputs) == 0 {
		return item.Def{}, false
	}
	normalized, ok := NormalizeWeights(len(inputs), weights)
	if !ok {
		return item.Def{}, false
	}

	combined := chem.NewMixture()
	for i, input := range inputs {
		combined = chem.Merge(combined, input.Mix.Scale(normalized[i]))
	}
	if combined.IsEmpty() {
		return item.Def{}, false
	}

	spec := SpecFor(process)
	tags := make(map[string]float64, len(spec.Tags)+1)
	for tag, v := range spec.Tags {
		tags[tag] = v
	}
	tags[variationTag] = rng.Float64()

	result := chem.RunReactor(combined, chem.ReactorOptions{
		Temp:      spec.Temp,
		Catalysts: spec.Catalysts,
		Tags:      tags,
		Steps:     spec.Steps,
		Dt:        spec.Dt,
	}, rules)
	if result.IsEmpty() {
		return item.Def{}, false
	}

	return reg.SpawnFromMixture(labelHint, result), true
}

// NormalizeWeights maps a caller weight list onto len(inputs) non-negative
// weights summing to 1. Nil or empty means equal weighting; an all-zero list
// is unusable.
func NormalizeWeights(n int, weights []float64) ([]float64, bool) {
	if n <= 0 {
		return nil, false
	}
	out := make([]float64, n)
	if len(weights) == 0 {
		for i := range out {
			out[i] = 1.0 / float64(n)
		}
		return out, true
	}
	for i := 0; i < n && i < len(weights); i++ {
		if weights[i] > 0 {
			out[i] = weights[i]
		}
	}
	total := floats.Sum(out)
	if total <= 0 {
		return nil, false
	}
	floats.Scale(1/total, out)
	return out, true
}
