package craft

import (
	"gonum.org/v1/gonum/floats"

	"github.com/appengine-ltd/hearthstead/internal/body"
	"github.com/appengine-ltd/hearthstead/internal/chem"
)

// Craft scoring is split in two: ingestible results are scored by simulating
// a metabolism run, material results by static trait weighting. The two
// scales are not comparable and are deliberately kept apart; recipe memory
// only ever compares scores within one intent.

const ingestionScoreTicks = 10

// ScoreIngestion feeds the result to a fresh baseline chemistry, ticks it,
// and scores the final macro snapshot. Higher is better.
func ScoreIngestion(result chem.Mixture) float64 {
	c := body.NewChemistry()
	c.Ingest(result)
	for i := 0; i < ingestionScoreTicks; i++ {
		body.TickMetabolism(c, body.DigestRules(), 1)
	}
	snap := body.DeriveMacroSnapshot(c.Body)

	values := []float64{
		snap.Energy, snap.Mood, snap.Focus,
		snap.Pain, snap.Stress, snap.Hunger, snap.Thirst,
	}
	weights := []float64{1, 0.8, 0.4, -1, -0.6, -0.5, -0.5}
	return floats.Dot(values, weights)
}

// ScoreMaterial weights static traits by intent. Unknown intents fall back
// to a generic solidity score.
func ScoreMaterial(intent string, traits map[string]float64) float64 {
	weights, ok := materialScoreWeights[intent]
	if !ok {
		weights = materialScoreWeights["material"]
	}
	score := 0.0
	for trait, weight := range weights {
		score += traits[trait] * weight
	}
	return score
}

var materialScoreWeights = map[string]map[string]float64{
	"tool": {
		"metalness":  3,
		"woodiness":  0.5,
		"reactivity": -0.5,
		"toxicity":   -0.5,
	},
	"fuel": {
		"reactivity":  2,
		"calories":    0.3,
		"mineralness": -0.5,
	},
	"build": {
		"woodiness":   2,
		"mineralness": 1,
		"metalness":   1,
	},
	"material": {
		"metalness":   1,
		"woodiness":   1,
		"mineralness": 1,
	},
}
