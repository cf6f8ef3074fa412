// Package analyze classifies mixtures: normalized proportions, boolean tags,
// continuous traits, deterministic names, and a stable signature string.
package analyze

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/appengine-ltd/hearthstead/internal/chem"
)

// Analysis is the full derived view of one mixture.
type Analysis struct {
	Tags          []string
	Traits        map[string]float64
	CanonicalName string
	DisplayName   string
	Signature     string
}

// Normalize returns a new mixture whose quantities sum to 1, dropping
// sub-epsilon entries first. A zero-total mixture normalizes to empty.
func Normalize(mix chem.Mixture) chem.Mixture {
	kept := make([]chem.Substance, 0, len(mix))
	quantities := make([]float64, 0, len(mix))
	for sub, qty := range mix {
		if qty > chem.Epsilon {
			kept = append(kept, sub)
			quantities = append(quantities, qty)
		}
	}
	total := floats.Sum(quantities)
	out := make(chem.Mixture, len(kept))
	if total <= 0 {
		return out
	}
	for i, sub := range kept {
		out[sub] = quantities[i] / total
	}
	return out
}

// AnalyzeMix normalizes the mixture, classifies tags, computes traits, and
// derives names and the signature. Deterministic for a given mixture.
func AnalyzeMix(mix chem.Mixture) Analysis {
	normalized := Normalize(mix)
	tags := classifyTags(normalized)
	traits := computeTraits(normalized)
	canonical := canonicalName(normalized, tags)
	return Analysis{
		Tags:          tags,
		Traits:        traits,
		CanonicalName: canonical,
		DisplayName:   displayName(canonical, normalized, tags, traits),
		Signature:     SignatureOf(mix),
	}
}

func classifyTags(normalized chem.Mixture) []string {
	fired := map[string]bool{}
	for tag, group := range tagGroups {
		if groupProportion(normalized, group) > tagThreshold {
			fired[tag] = true
		}
	}
	for composite, members := range compositeTags {
		for _, member := range members {
			if fired[member] {
				fired[composite] = true
				break
			}
		}
	}

	tags := make([]string, 0, len(fired))
	for tag := range fired {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func groupProportion(normalized chem.Mixture, group []chem.Substance) float64 {
	proportions := make([]float64, len(group))
	for i, sub := range group {
		proportions[i] = normalized.Get(sub)
	}
	return floats.Sum(proportions)
}

// Traits are weighted sums over the normalized proportions. They are not
// clamped: a mixture concentrated in one group can score past 1.
func computeTraits(normalized chem.Mixture) map[string]float64 {
	traits := make(map[string]float64, len(traitWeights))
	for trait, weights := range traitWeights {
		subs := make([]float64, 0, len(weights))
		factors := make([]float64, 0, len(weights))
		for sub, weight := range weights {
			subs = append(subs, normalized.Get(sub))
			factors = append(factors, weight)
		}
		traits[trait] = floats.Dot(subs, factors)
	}
	return traits
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}
