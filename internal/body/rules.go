package body

import "github.com/appengine-ltd/hearthstead/internal/chem"

// DigestRules is the built-in stomach rule list: breakdown of complex
// foodstuffs into absorbable substances.
func DigestRules() []chem.ReactionRule {
	return []chem.ReactionRule{
		chem.MustReactionRule("starch-hydrolysis",
			chem.Mixture{chem.SubStarch: 1, chem.SubWater: 0.2},
			chem.Mixture{chem.SubGlucose: 1.05},
			0.4, chem.Always()),
		chem.MustReactionRule("protein-breakdown",
			chem.Mixture{chem.SubProtein: 1, chem.SubWater: 0.1},
			chem.Mixture{chem.SubGlucose: 0.3, chem.SubFat: 0.2},
			0.2, chem.Always()),
		chem.MustReactionRule("fiber-slow-release",
			chem.Mixture{chem.SubFiber: 1},
			chem.Mixture{chem.SubGlucose: 0.15},
			0.05, chem.Always()),
		chem.MustReactionRule("vitamin-neutralize-toxin",
			chem.Mixture{chem.SubToxin: 1, chem.SubVitamin: 0.4},
			chem.Mixture{},
			0.15, chem.Always()),
	}
}

// BasalRules is the built-in body-pool rule list: storage, burn, and decay
// of circulating substances. It keeps the body pool bounded over long runs.
func BasalRules() []chem.ReactionRule {
	return []chem.ReactionRule{
		chem.MustReactionRule("glycogen-storage",
			chem.Mixture{chem.SubGlucose: 1},
			chem.Mixture{chem.SubGlycogen: 0.85},
			0.25, chem.Always()),
		chem.MustReactionRule("glycogen-burn",
			chem.Mixture{chem.SubGlycogen: 1},
			chem.Mixture{chem.SubOxidant: 0.04},
			0.05, chem.Always()),
		chem.MustReactionRule("fat-burn",
			chem.Mixture{chem.SubFat: 1},
			chem.Mixture{chem.SubOxidant: 0.06},
			0.02, chem.Always()),
		chem.MustReactionRule("hydration-loss",
			chem.Mixture{chem.SubWater: 1},
			chem.Mixture{},
			0.03, chem.Always()),
		chem.MustReactionRule("ethanol-metabolize",
			chem.Mixture{chem.SubEthanol: 1},
			chem.Mixture{chem.SubToxin: 0.3, chem.SubSerotonin: 0.1},
			0.12, chem.Always()),
		chem.MustReactionRule("toxin-inflame",
			chem.Mixture{chem.SubToxin: 1},
			chem.Mixture{chem.SubInflammation: 0.6},
			0.15, chem.Always()),
		chem.MustReactionRule("inflammation-heal",
			chem.Mixture{chem.SubInflammation: 1},
			chem.Mixture{},
			0.08, chem.Always()),
		chem.MustReactionRule("oxidant-clear",
			chem.Mixture{chem.SubOxidant: 1, chem.SubVitamin: 0.2},
			chem.Mixture{},
			0.2, chem.Always()),
		chem.MustReactionRule("caffeine-spike",
			chem.Mixture{chem.SubCaffeine: 1},
			chem.Mixture{chem.SubAdrenaline: 0.25},
			0.2, chem.Always()),
		chem.MustReactionRule("cortisol-decay",
			chem.Mixture{chem.SubCortisol: 1},
			chem.Mixture{},
			0.1, chem.Always()),
		chem.MustReactionRule("adrenaline-decay",
			chem.Mixture{chem.SubAdrenaline: 1},
			chem.Mixture{},
			0.18, chem.Always()),
		chem.MustReactionRule("serotonin-decay",
			chem.Mixture{chem.SubSerotonin: 1},
			chem.Mixture{},
			0.06, chem.Always()),
	}
}
