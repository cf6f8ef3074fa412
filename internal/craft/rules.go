package craft

import "github.com/appengine-ltd/hearthstead/internal/chem"

// WorldRules is the built-in reaction list shared by crafting and
// procedural synthesis. Content packs may supply their own list to
// CraftOnce; this table is the fallback.
func WorldRules() []chem.ReactionRule {
	return []chem.ReactionRule{
		chem.MustReactionRule("smelt-iron",
			chem.Mixture{chem.SubOreIron: 1, chem.SubCarbon: 0.25},
			chem.Mixture{chem.SubIron: 0.7, chem.SubSlag: 0.25, chem.SubCarbonGas: 0.3},
			0.35, chem.TemperatureWindow(1100, 2000)),
		chem.MustReactionRule("smelt-copper",
			chem.Mixture{chem.SubOreCopper: 1, chem.SubCarbon: 0.2},
			chem.Mixture{chem.SubCopper: 0.75, chem.SubSlag: 0.2, chem.SubCarbonGas: 0.25},
			0.4, chem.TemperatureWindow(900, 2000)),
		chem.MustReactionRule("roast-gold",
			chem.Mixture{chem.SubOreGold: 1},
			chem.Mixture{chem.SubGold: 0.6, chem.SubSlag: 0.4},
			0.25, chem.TemperatureWindow(1000, 2100)),
		chem.MustReactionRule("char-wood",
			chem.Mixture{chem.SubCellulose: 1},
			chem.Mixture{chem.SubCharcoal: 0.45, chem.SubCarbonGas: 0.4, chem.SubAsh: 0.15},
			0.2, chem.TemperatureWindow(250, 2000)),
		chem.MustReactionRule("boil-off",
			chem.Mixture{chem.SubWater: 1},
			chem.Mixture{},
			0.3, chem.TemperatureWindow(100, 3000)),
		chem.MustReactionRule("cook-starch",
			chem.Mixture{chem.SubStarch: 1, chem.SubWater: 0.15},
			chem.Mixture{chem.SubGlucose: 0.9},
			0.25, chem.TagThreshold("heat", 0.5, 6)),
		chem.MustReactionRule("ferment",
			chem.Mixture{chem.SubGlucose: 1, chem.SubWater: 0.3},
			chem.Mixture{chem.SubEthanol: 0.45, chem.SubCarbonGas: 0.4},
			0.15, chem.TagThreshold("wet", 0.5, 6)),
		chem.MustReactionRule("wild-ferment",
			chem.Mixture{chem.SubGlucose: 1},
			chem.Mixture{chem.SubToxin: 0.1},
			0.05, chem.TagThreshold("variation", 0.8, 10)),
		chem.MustReactionRule("leach-minerals",
			chem.Mixture{chem.SubStone: 1, chem.SubWater: 0.5},
			chem.Mixture{chem.SubMinerals: 0.25, chem.SubSilica: 0.6, chem.SubClay: 0.15},
			0.08, chem.TagThreshold("wet", 0.5, 6)),
		chem.MustReactionRule("weather-stone",
			chem.Mixture{chem.SubStone: 1},
			chem.Mixture{chem.SubClay: 0.4, chem.SubMinerals: 0.2, chem.SubSilica: 0.4},
			0.05, chem.TagThreshold("weathering", 0.6, 8)),
		chem.MustReactionRule("flux-refine",
			chem.Mixture{chem.SubSlag: 1},
			chem.Mixture{chem.SubAsh: 0.5},
			0.1, chem.CatalystBoost(chem.SubSalt, 2)),
	}
}
