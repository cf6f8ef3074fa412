package body

import (
	"gonum.org/v1/gonum/floats"

	"github.com/appengine-ltd/hearthstead/internal/chem"
)

// MacroSnapshot is the derived physiological/psychological summary of a body
// pool. Every field is clamped to [0,1]. It has no lifecycle of its own:
// recompute it from the pool whenever it is needed.
type MacroSnapshot struct {
	Energy float64
	Pain   float64
	Mood   float64
	Focus  float64
	Hunger float64
	Thirst float64
	Stress float64
}

type snapshotTerm struct {
	sub    chem.Substance
	weight float64
}

// DeriveMacroSnapshot is a pure function of the body pool: same pool, same
// snapshot, always.
func DeriveMacroSnapshot(bodyPool chem.Mixture) MacroSnapshot {
	return MacroSnapshot{
		Energy: combine(bodyPool, 0, []snapshotTerm{
			{chem.SubGlycogen, 0.9}, {chem.SubGlucose, 0.5}, {chem.SubFat, 0.4},
			{chem.SubInflammation, -0.6}, {chem.SubOxidant, -0.4},
		}),
		Pain: combine(bodyPool, 0, []snapshotTerm{
			{chem.SubInflammation, 0.8}, {chem.SubToxin, 0.5},
		}),
		Mood: combine(bodyPool, 0.45, []snapshotTerm{
			{chem.SubSerotonin, 0.5}, {chem.SubCortisol, -0.5}, {chem.SubToxin, -0.3},
		}),
		Focus: combine(bodyPool, 0.3, []snapshotTerm{
			{chem.SubGlucose, 0.5}, {chem.SubCaffeine, 0.6},
			{chem.SubEthanol, -0.7}, {chem.SubAdrenaline, -0.2},
		}),
		Hunger: combine(bodyPool, 1, []snapshotTerm{
			{chem.SubGlycogen, -0.8}, {chem.SubGlucose, -0.6}, {chem.SubFat, -0.3},
		}),
		Thirst: combine(bodyPool, 1, []snapshotTerm{
			{chem.SubWater, -1.2},
		}),
		Stress: combine(bodyPool, 0, []snapshotTerm{
			{chem.SubCortisol, 0.7}, {chem.SubAdrenaline, 0.5}, {chem.SubSerotonin, -0.3},
		}),
	}
}

func combine(pool chem.Mixture, bias float64, terms []snapshotTerm) float64 {
	quantities := make([]float64, len(terms))
	weights := make([]float64, len(terms))
	for i, term := range terms {
		quantities[i] = pool.Get(term.sub)
		weights[i] = term.weight
	}
	return clamp01(bias + floats.Dot(quantities, weights))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
