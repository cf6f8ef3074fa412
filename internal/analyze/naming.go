package analyze

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/hearthstead/internal/chem"
)

// canonicalName picks a noun by fixed tag priority: ore (keyed by the
// dominant ore substance) beats metal, wood, stone, drink, food, fuel, with
// "Material" as the fallback.
func canonicalName(normalized chem.Mixture, tags []string) string {
	switch {
	case hasTag(tags, "ore"):
		if noun, ok := dominantNoun(normalized, oreNouns); ok {
			return noun
		}
		return "Ore"
	case hasTag(tags, "metal"):
		if noun, ok := dominantNoun(normalized, metalNouns); ok {
			return noun
		}
		return "Metal"
	case hasTag(tags, "wood"):
		return "Wood"
	case hasTag(tags, "stone"):
		return "Stone"
	case hasTag(tags, "drink"):
		return "Water"
	case hasTag(tags, "food"):
		return "Food"
	case hasTag(tags, "fuel"):
		return "Fuel"
	default:
		return "Material"
	}
}

// dominantNoun picks the noun of the highest-proportion substance present in
// the table, breaking quantity ties by substance name so naming stays
// deterministic.
func dominantNoun(normalized chem.Mixture, nouns map[chem.Substance]string) (string, bool) {
	var bestSub chem.Substance
	best := 0.0
	for sub := range nouns {
		qty := normalized.Get(sub)
		if qty > best || (qty == best && qty > 0 && sub < bestSub) {
			best = qty
			bestSub = sub
		}
	}
	if best <= 0 {
		return "", false
	}
	return nouns[bestSub], true
}

// displayName appends parenthesized qualifiers when trait thresholds are
// crossed.
func displayName(canonical string, normalized chem.Mixture, tags []string, traits map[string]float64) string {
	var qualifiers []string
	if hasTag(tags, "drink") {
		if traits["mineralness"] > 0.2 {
			qualifiers = append(qualifiers, "brackish")
		}
		if normalized.Get(chem.SubEthanol) > 0.1 {
			qualifiers = append(qualifiers, "fermented")
		}
	}
	if hasTag(tags, "food") && traits["toxicity"] > 0.25 {
		qualifiers = append(qualifiers, "tainted")
	}
	if hasTag(tags, "metal") && normalized.Get(chem.SubSlag) > 0.15 {
		qualifiers = append(qualifiers, "impure")
	}
	if hasTag(tags, "ore") && traits["metalness"] > 0.3 {
		qualifiers = append(qualifiers, "rich")
	}
	if len(qualifiers) == 0 {
		return canonical
	}
	return fmt.Sprintf("%s (%s)", canonical, strings.Join(qualifiers, ", "))
}
