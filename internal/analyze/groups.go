package analyze

import "github.com/appengine-ltd/hearthstead/internal/chem"

// tagThreshold is the normalized proportion a substance group must exceed
// for its tag to fire.
const tagThreshold = 0.05

// Classification tables. Content packs may replace them through Configure;
// the compiled defaults stay authoritative otherwise.
var (
	tagGroups     = defaultTagGroups()
	compositeTags = defaultCompositeTags()
	traitWeights  = defaultTraitWeights()
	oreNouns      = defaultOreNouns()
	metalNouns    = defaultMetalNouns()
)

func defaultTagGroups() map[string][]chem.Substance {
	return map[string][]chem.Substance{
		"drink": {chem.SubWater},
		"food": {chem.SubGlucose, chem.SubStarch, chem.SubProtein,
			chem.SubFat, chem.SubFiber, chem.SubVitamin},
		"ore":   {chem.SubOreIron, chem.SubOreCopper, chem.SubOreGold},
		"metal": {chem.SubIron, chem.SubCopper, chem.SubGold},
		"stone": {chem.SubStone, chem.SubSilica, chem.SubClay},
		"wood":  {chem.SubCellulose, chem.SubLignin, chem.SubResin},
		"fuel": {chem.SubCarbon, chem.SubCharcoal, chem.SubFat,
			chem.SubResin, chem.SubEthanol, chem.SubLignin},
		"mineral": {chem.SubMinerals, chem.SubSalt, chem.SubSilica},
	}
}

// Composite tags are unions of primitive tags, not substance groups.
func defaultCompositeTags() map[string][]string {
	return map[string][]string{
		"organic":   {"drink", "food", "wood"},
		"inorganic": {"ore", "metal", "stone", "mineral"},
	}
}

func defaultTraitWeights() map[string]map[chem.Substance]float64 {
	return map[string]map[chem.Substance]float64{
		"hydration": {
			chem.SubWater:   1,
			chem.SubEthanol: -0.3,
		},
		"calories": {
			chem.SubFat:     9,
			chem.SubGlucose: 4,
			chem.SubStarch:  4,
			chem.SubProtein: 4,
			chem.SubEthanol: 7,
		},
		"mineralness": {
			chem.SubMinerals: 1,
			chem.SubSalt:     1,
			chem.SubSilica:   0.6,
			chem.SubStone:    0.4,
		},
		"metalness": {
			chem.SubIron:      1,
			chem.SubCopper:    1,
			chem.SubGold:      1,
			chem.SubOreIron:   0.35,
			chem.SubOreCopper: 0.35,
			chem.SubOreGold:   0.35,
			chem.SubSlag:      0.2,
		},
		"woodiness": {
			chem.SubCellulose: 1,
			chem.SubLignin:    1,
			chem.SubResin:     0.5,
		},
		"reactivity": {
			chem.SubEthanol:  0.8,
			chem.SubCharcoal: 0.7,
			chem.SubCarbon:   0.6,
			chem.SubResin:    0.5,
			chem.SubToxin:    0.4,
		},
		"toxicity": {
			chem.SubToxin:     1,
			chem.SubEthanol:   0.4,
			chem.SubSlag:      0.3,
			chem.SubOreCopper: 0.2,
		},
		"potency": {
			chem.SubCaffeine: 1,
			chem.SubEthanol:  0.6,
			chem.SubVitamin:  0.3,
		},
	}
}

func defaultOreNouns() map[chem.Substance]string {
	return map[chem.Substance]string{
		chem.SubOreIron:   "Iron Ore",
		chem.SubOreCopper: "Copper Ore",
		chem.SubOreGold:   "Gold Ore",
	}
}

func defaultMetalNouns() map[chem.Substance]string {
	return map[chem.Substance]string{
		chem.SubIron:   "Iron",
		chem.SubCopper: "Copper",
		chem.SubGold:   "Gold",
	}
}

// Config carries replacement classification tables from a content pack.
// Nil fields keep the compiled defaults.
type Config struct {
	TagGroups    map[string][]chem.Substance
	Composites   map[string][]string
	TraitWeights map[string]map[chem.Substance]float64
	OreNouns     map[chem.Substance]string
	MetalNouns   map[chem.Substance]string
}

// Configure installs content-pack tables. Call before any analysis runs;
// classification is not safe to reconfigure concurrently with use.
func Configure(cfg Config) {
	if cfg.TagGroups != nil {
		tagGroups = cfg.TagGroups
	}
	if cfg.Composites != nil {
		compositeTags = cfg.Composites
	}
	if cfg.TraitWeights != nil {
		traitWeights = cfg.TraitWeights
	}
	if cfg.OreNouns != nil {
		oreNouns = cfg.OreNouns
	}
	if cfg.MetalNouns != nil {
		metalNouns = cfg.MetalNouns
	}
}
