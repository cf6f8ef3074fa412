package craft

import (
	"math"
	"testing"

	"github.com/appengine-ltd/hearthstead/internal/chem"
	"github.com/appengine-ltd/hearthstead/internal/item"
)

func TestForgeScenario(t *testing.T) {
	reg := item.NewRegistry()
	ore := reg.Register(item.Def{ID: "iron_ore", Mix: chem.Mixture{chem.SubOreIron: 1}})
	coal := reg.Register(item.Def{ID: "coal", Mix: chem.Mixture{chem.SubCarbon: 0.5}})

	rng := chem.SeededRNG(7)
	result, ok := CraftOnce(rng, reg, WorldRules(), []item.Def{ore, coal}, ProcessForge, "ingot", nil)
	if !ok {
		t.Fatalf("expected forge craft to succeed")
	}
	if result.Mix.Get(chem.SubOreIron) >= 0.5 {
		t.Fatalf("expected ore consumed, got %v", result.Mix)
	}
	if !result.HasTag("metal") {
		t.Fatalf("expected metal tag, got %v", result.Tags)
	}
	if result.Traits["metalness"] <= 0 {
		t.Fatalf("expected positive metalness, got %v", result.Traits)
	}
}

func TestCraftOnceDeclinesWithNothingUsable(t *testing.T) {
	reg := item.NewRegistry()
	rng := chem.SeededRNG(1)

	if _, ok := CraftOnce(rng, reg, WorldRules(), nil, ProcessCook, "x", nil); ok {
		t.Fatalf("expected decline with no inputs")
	}

	water := reg.Register(item.Def{ID: "water", Mix: chem.Mixture{chem.SubWater: 1}})
	if _, ok := CraftOnce(rng, reg, WorldRules(), []item.Def{water}, ProcessCook, "x", []float64{0}); ok {
		t.Fatalf("expected decline with all-zero weights")
	}
}

func TestCraftOnceDoesNotMutateInputs(t *testing.T) {
	reg := item.NewRegistry()
	grain := reg.Register(item.Def{ID: "grain", Mix: chem.Mixture{chem.SubStarch: 0.8, chem.SubFiber: 0.2}})
	water := reg.Register(item.Def{ID: "water", Mix: chem.Mixture{chem.SubWater: 1}})

	rng := chem.SeededRNG(3)
	if _, ok := CraftOnce(rng, reg, WorldRules(), []item.Def{grain, water}, ProcessCook, "porridge", nil); !ok {
		t.Fatalf("expected cook craft to succeed")
	}
	if grain.Mix.Get(chem.SubStarch) != 0.8 || water.Mix.Get(chem.SubWater) != 1 {
		t.Fatalf("craft mutated input mixtures: %v %v", grain.Mix, water.Mix)
	}
}

func TestNormalizeWeights(t *testing.T) {
	equal, ok := NormalizeWeights(4, nil)
	if !ok {
		t.Fatalf("expected equal weighting for nil")
	}
	for _, w := range equal {
		if math.Abs(w-0.25) > 1e-9 {
			t.Fatalf("expected 0.25 each, got %v", equal)
		}
	}

	skewed, ok := NormalizeWeights(2, []float64{3, 1})
	if !ok || math.Abs(skewed[0]-0.75) > 1e-9 || math.Abs(skewed[1]-0.25) > 1e-9 {
		t.Fatalf("unexpected normalization %v ok=%v", skewed, ok)
	}

	negatives, ok := NormalizeWeights(2, []float64{-5, 1})
	if !ok || negatives[0] != 0 || negatives[1] != 1 {
		t.Fatalf("expected negatives zeroed, got %v ok=%v", negatives, ok)
	}

	if _, ok := NormalizeWeights(2, []float64{0, -1}); ok {
		t.Fatalf("expected all-zero weights to be unusable")
	}
}

func TestScoringSplitStaysSeparate(t *testing.T) {
	meal := chem.Mixture{chem.SubGlucose: 0.6, chem.SubWater: 0.8, chem.SubProtein: 0.3}
	gruel := chem.Mixture{chem.SubToxin: 1}
	if ScoreIngestion(meal) <= ScoreIngestion(gruel) {
		t.Fatalf("expected wholesome meal to outscore toxin")
	}

	iron := map[string]float64{"metalness": 0.8, "woodiness": 0.1}
	twig := map[string]float64{"metalness": 0, "woodiness": 0.9}
	if ScoreMaterial("tool", iron) <= ScoreMaterial("tool", twig) {
		t.Fatalf("expected metal to win the tool intent")
	}
	if ScoreMaterial("build", twig) <= ScoreMaterial("build", map[string]float64{}) {
		t.Fatalf("expected wood to score for building")
	}
}
