package body

import (
	"math"
	"testing"

	"github.com/appengine-ltd/hearthstead/internal/chem"
)

func TestIngestMergesIntoStomach(t *testing.T) {
	c := NewChemistry()
	c.Ingest(chem.Mixture{chem.SubStarch: 0.8, chem.SubWater: 0.4})
	c.Ingest(chem.Mixture{chem.SubWater: 0.2})

	if math.Abs(c.Stomach.Get(chem.SubWater)-0.6) > 1e-9 {
		t.Fatalf("expected stomach water 0.6, got %v", c.Stomach)
	}
}

func TestAbsorptionFractionIsCapped(t *testing.T) {
	c := &Chemistry{Stomach: chem.Mixture{chem.SubGlucose: 1}, Body: chem.NewMixture()}
	TickMetabolism(c, nil, 100)

	// Even at an absurd dt only half the pool may move in one tick, and the
	// basal rules then work on what arrived.
	if c.Stomach.Get(chem.SubGlucose) < 0.49 {
		t.Fatalf("expected at least half the glucose still in the stomach, got %v", c.Stomach)
	}
	if c.Stomach.Get(chem.SubGlucose) > 0.51 {
		t.Fatalf("expected half the glucose absorbed, got %v", c.Stomach)
	}
}

func TestDigestionConvertsStarch(t *testing.T) {
	c := &Chemistry{Stomach: chem.Mixture{chem.SubStarch: 1, chem.SubWater: 0.5}, Body: chem.NewMixture()}
	for i := 0; i < 10; i++ {
		TickMetabolism(c, DigestRules(), 1)
	}
	if c.Stomach.Get(chem.SubStarch) >= 1 {
		t.Fatalf("expected starch consumed, got %v", c.Stomach)
	}
	if c.Body.Get(chem.SubGlucose) <= 0 && c.Body.Get(chem.SubGlycogen) <= 0 {
		t.Fatalf("expected absorbed energy substances, body=%v", c.Body)
	}
}

func TestSnapshotIsPure(t *testing.T) {
	pool := chem.Mixture{
		chem.SubGlycogen: 0.4,
		chem.SubWater:    0.5,
		chem.SubCortisol: 0.2,
	}
	first := DeriveMacroSnapshot(pool)
	second := DeriveMacroSnapshot(pool)
	if first != second {
		t.Fatalf("snapshot not pure: %v vs %v", first, second)
	}
}

func TestSnapshotStaysBoundedUnderExtremes(t *testing.T) {
	extremes := []chem.Mixture{
		{},
		{chem.SubGlycogen: 1000, chem.SubGlucose: 1000, chem.SubWater: 1000},
		{chem.SubToxin: 500, chem.SubInflammation: 500, chem.SubCortisol: 500},
		{chem.SubEthanol: 250, chem.SubCaffeine: 250, chem.SubAdrenaline: 250},
	}
	for _, pool := range extremes {
		snap := DeriveMacroSnapshot(pool)
		for name, v := range map[string]float64{
			"energy": snap.Energy, "pain": snap.Pain, "mood": snap.Mood,
			"focus": snap.Focus, "hunger": snap.Hunger, "thirst": snap.Thirst,
			"stress": snap.Stress,
		} {
			if v < 0 || v > 1 {
				t.Fatalf("field %s out of bounds: %v (pool %v)", name, v, pool)
			}
		}
	}
}

func TestSnapshotBoundedOverLongRun(t *testing.T) {
	c := NewChemistry()
	for day := 0; day < 200; day++ {
		if day%3 == 0 {
			c.Ingest(chem.Mixture{
				chem.SubStarch:  2,
				chem.SubEthanol: 1,
				chem.SubToxin:   0.5,
				chem.SubWater:   3,
			})
		}
		TickMetabolism(c, DigestRules(), 1.5)
		snap := DeriveMacroSnapshot(c.Body)
		for _, v := range []float64{snap.Energy, snap.Pain, snap.Mood, snap.Focus, snap.Hunger, snap.Thirst, snap.Stress} {
			if v < 0 || v > 1 {
				t.Fatalf("day %d: snapshot out of bounds %+v", day, snap)
			}
		}
	}
}

func TestHungerRisesAsReservesDeplete(t *testing.T) {
	c := NewChemistry()
	before := DeriveMacroSnapshot(c.Body)
	for i := 0; i < 60; i++ {
		TickMetabolism(c, DigestRules(), 1)
	}
	after := DeriveMacroSnapshot(c.Body)
	if after.Hunger <= before.Hunger {
		t.Fatalf("expected hunger to rise while starving: before=%v after=%v", before.Hunger, after.Hunger)
	}
	if after.Thirst <= before.Thirst {
		t.Fatalf("expected thirst to rise while dehydrating: before=%v after=%v", before.Thirst, after.Thirst)
	}
}
