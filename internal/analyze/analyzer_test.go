package analyze

import (
	"math"
	"strings"
	"testing"

	"github.com/appengine-ltd/hearthstead/internal/chem"
)

func TestNormalizeSumsToOne(t *testing.T) {
	mix := chem.Mixture{"A": 2, "B": 6}
	normalized := Normalize(mix)
	if math.Abs(normalized["A"]-0.25) > 1e-9 || math.Abs(normalized["B"]-0.75) > 1e-9 {
		t.Fatalf("unexpected proportions %v", normalized)
	}
	if mix["A"] != 2 {
		t.Fatalf("normalize mutated its input: %v", mix)
	}
}

func TestNormalizeEmptyAndTiny(t *testing.T) {
	if got := Normalize(chem.Mixture{}); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
	if got := Normalize(chem.Mixture{"A": chem.Epsilon / 2}); len(got) != 0 {
		t.Fatalf("expected sub-epsilon entry dropped, got %v", got)
	}
}

func TestWaterScenario(t *testing.T) {
	analysis := AnalyzeMix(chem.Mixture{chem.SubWater: 1})
	if analysis.Signature != "H2O:1.000" {
		t.Fatalf("expected signature H2O:1.000, got %q", analysis.Signature)
	}
	if !hasTag(analysis.Tags, "drink") {
		t.Fatalf("expected drink tag, got %v", analysis.Tags)
	}
	if analysis.CanonicalName != "Water" {
		t.Fatalf("expected canonical Water, got %q", analysis.CanonicalName)
	}
	if math.Abs(analysis.Traits["hydration"]-1) > 1e-9 {
		t.Fatalf("expected hydration 1, got %v", analysis.Traits["hydration"])
	}
}

func TestSignatureOrderInvariance(t *testing.T) {
	a := chem.NewMixture()
	a.Add("ZINC", 0.5)
	a.Add("ALUM", 0.25)
	a.Add("MICA", 0.25)

	b := chem.NewMixture()
	b.Add("MICA", 0.25)
	b.Add("ALUM", 0.25)
	b.Add("ZINC", 0.5)

	if SignatureOf(a) != SignatureOf(b) {
		t.Fatalf("signatures differ across insertion order: %q vs %q", SignatureOf(a), SignatureOf(b))
	}
}

func TestSignatureScaleInvariance(t *testing.T) {
	base := chem.Mixture{"A": 1, "B": 3}
	scaled := base.Scale(7.5)
	if SignatureOf(base) != SignatureOf(scaled) {
		t.Fatalf("scalar multiples should share a signature: %q vs %q", SignatureOf(base), SignatureOf(scaled))
	}
}

func TestEmptySignatureSentinel(t *testing.T) {
	if got := SignatureOf(chem.Mixture{}); got != EmptySignature {
		t.Fatalf("expected sentinel %q, got %q", EmptySignature, got)
	}
}

func TestCompositeTags(t *testing.T) {
	analysis := AnalyzeMix(chem.Mixture{chem.SubCellulose: 1})
	if !hasTag(analysis.Tags, "wood") || !hasTag(analysis.Tags, "organic") {
		t.Fatalf("expected wood+organic, got %v", analysis.Tags)
	}

	analysis = AnalyzeMix(chem.Mixture{chem.SubOreIron: 0.8, chem.SubStone: 0.2})
	if !hasTag(analysis.Tags, "ore") || !hasTag(analysis.Tags, "stone") || !hasTag(analysis.Tags, "inorganic") {
		t.Fatalf("expected ore+stone+inorganic, got %v", analysis.Tags)
	}
}

func TestOreNamingByDominantSubstance(t *testing.T) {
	analysis := AnalyzeMix(chem.Mixture{chem.SubOreIron: 0.6, chem.SubOreCopper: 0.3, chem.SubStone: 0.1})
	if analysis.CanonicalName != "Iron Ore" {
		t.Fatalf("expected Iron Ore, got %q", analysis.CanonicalName)
	}
}

func TestBrackishQualifier(t *testing.T) {
	analysis := AnalyzeMix(chem.Mixture{chem.SubWater: 0.7, chem.SubSalt: 0.3})
	if !strings.Contains(analysis.DisplayName, "brackish") {
		t.Fatalf("expected brackish qualifier, got %q", analysis.DisplayName)
	}
}

func TestTraitsAreUnclamped(t *testing.T) {
	analysis := AnalyzeMix(chem.Mixture{chem.SubFat: 1})
	if analysis.Traits["calories"] <= 1 {
		t.Fatalf("expected concentrated fat to exceed 1 calorie trait, got %v", analysis.Traits["calories"])
	}
}
