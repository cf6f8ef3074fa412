// Package gen synthesizes raw world materials: biome-weighted base mixtures
// jittered by the caller's RNG, weathered through the reactor, and
// registered as items.
package gen

import (
	"math/rand/v2"
	"sort"

	"github.com/appengine-ltd/hearthstead/internal/chem"
	"github.com/appengine-ltd/hearthstead/internal/item"
)

// biomeBases are the pre-weathering deposit compositions per biome.
var biomeBases = map[string]chem.Mixture{
	"hills": {
		chem.SubStone:     2,
		chem.SubOreIron:   0.8,
		chem.SubOreCopper: 0.3,
		chem.SubSilica:    0.5,
	},
	"forest": {
		chem.SubCellulose: 2,
		chem.SubLignin:    0.8,
		chem.SubResin:     0.3,
	},
	"river": {
		chem.SubWater:    2,
		chem.SubClay:     0.6,
		chem.SubMinerals: 0.3,
	},
	"desert": {
		chem.SubSilica: 2,
		chem.SubSalt:   0.5,
		chem.SubStone:  0.8,
	},
}

// Biomes lists the known biome names in a fixed order.
func Biomes() []string {
	names := make([]string, 0, len(biomeBases))
	for name := range biomeBases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SynthesizeDeposit builds one deposit for a biome and registers it. All
// variation flows through rng, so a fixed seed reproduces the same deposit
// sequence. Unknown biomes fall back to hills.
func SynthesizeDeposit(rng *rand.Rand, reg *item.Registry, rules []chem.ReactionRule,
	biome, label string) item.Def {

	base, ok := biomeBases[biome]
	if !ok {
		base = biomeBases["hills"]
	}

	// Jitter each base quantity by ±40%, iterating substances in sorted
	// order so the rng draw sequence is stable.
	subs := make([]chem.Substance, 0, len(base))
	for sub := range base {
		subs = append(subs, sub)
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i] < subs[j] })

	mix := chem.NewMixture()
	for _, sub := range subs {
		jitter := 0.6 + rng.Float64()*0.8
		mix.Add(sub, base[sub]*jitter)
	}

	weathered := chem.RunReactor(mix, chem.ReactorOptions{
		Temp: 20,
		Tags: map[string]float64{
			"weathering": rng.Float64(),
			"wet":        rng.Float64(),
			"variation":  rng.Float64(),
		},
		Steps: 4,
		Dt:    1,
	}, rules)

	return reg.SpawnFromMixture(label, weathered)
}
