// chemsim runs a small headless colony through days of eating, metabolizing,
// and crafting, and prints what the agents learn.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/appengine-ltd/hearthstead/internal/body"
	"github.com/appengine-ltd/hearthstead/internal/chem"
	"github.com/appengine-ltd/hearthstead/internal/content"
	"github.com/appengine-ltd/hearthstead/internal/craft"
	"github.com/appengine-ltd/hearthstead/internal/item"
)

type agent struct {
	name      string
	chemistry *body.Chemistry
	inventory item.Stockpile
	memory    craft.Memory
}

func main() {
	var seed int64
	var days int
	var agents int
	var packPath string

	flag.Int64Var(&seed, "seed", 1, "simulation seed")
	flag.IntVar(&days, "days", 7, "days to simulate")
	flag.IntVar(&agents, "agents", 3, "number of agents")
	flag.StringVar(&packPath, "pack", "", "optional content pack YAML overlay")
	flag.Parse()

	rules := craft.WorldRules()
	if packPath != "" {
		pack, err := content.Load(packPath)
		if err != nil {
			fmt.Println("content pack:", err)
			return
		}
		pack.Apply()
		converted, err := pack.Rules()
		if err != nil {
			fmt.Println("content pack rules:", err)
			return
		}
		rules = converted
	}

	rng := chem.SeededRNG(seed)
	reg := item.NewRegistry()
	stockpile := seedStockpile(reg)
	colony := makeAgents(agents)

	for day := 1; day <= days; day++ {
		for _, a := range colony {
			drink(rng, a, reg, stockpile)
			eat(rng, a, reg, rules, stockpile)
			for hour := 0; hour < 24; hour++ {
				body.TickMetabolism(a.chemistry, body.DigestRules(), 1)
			}
		}
		if day%2 == 0 {
			forgeTool(rng, colony[0], reg, rules, stockpile)
		}
		printDay(day, colony)
	}

	printLearned(colony)
}

func seedStockpile(reg *item.Registry) item.Stockpile {
	stock := item.NewStockpile()
	seedItem := func(id, name string, mix chem.Mixture, qty float64) {
		reg.Register(item.Def{ID: id, Name: name, Mix: mix})
		stock.AddStock(id, qty)
	}
	seedItem("water", "Spring Water", chem.Mixture{chem.SubWater: 1}, 60)
	seedItem("berries", "Berries", chem.Mixture{
		chem.SubGlucose: 0.5, chem.SubFiber: 0.3, chem.SubWater: 0.15, chem.SubVitamin: 0.05,
	}, 30)
	seedItem("grain", "Grain", chem.Mixture{
		chem.SubStarch: 0.8, chem.SubFiber: 0.15, chem.SubProtein: 0.05,
	}, 30)
	seedItem("meat", "Meat", chem.Mixture{chem.SubProtein: 0.6, chem.SubFat: 0.35, chem.SubWater: 0.05}, 20)
	seedItem("iron_ore", "Iron Ore", chem.Mixture{chem.SubOreIron: 0.9, chem.SubStone: 0.1}, 15)
	seedItem("coal", "Coal", chem.Mixture{chem.SubCarbon: 0.95, chem.SubAsh: 0.05}, 15)
	seedItem("timber", "Timber", chem.Mixture{chem.SubCellulose: 0.7, chem.SubLignin: 0.25, chem.SubResin: 0.05}, 20)
	return stock
}

func makeAgents(count int) []*agent {
	if count < 1 {
		count = 1
	}
	names := []string{"Ada", "Bram", "Ceri", "Dov", "Eira", "Fen"}
	colony := make([]*agent, count)
	for i := range colony {
		colony[i] = &agent{
			name:      names[i%len(names)],
			chemistry: body.NewChemistry(),
			inventory: item.NewStockpile(),
		}
	}
	return colony
}

// drink takes one unit of whatever drinkable the stockpile still holds.
func drink(rng *rand.Rand, a *agent, reg *item.Registry, stockpile item.Stockpile) {
	var drinkable []item.Def
	for _, def := range reg.List() {
		if def.HasTag("drink") && stockpile.Has(def.ID, 1) {
			drinkable = append(drinkable, def)
		}
	}
	if len(drinkable) == 0 {
		return
	}
	pick := chem.Choice(rng, drinkable)
	if !stockpile.RemoveStock(pick.ID, 1) {
		return
	}
	a.chemistry.Ingest(pick.Mix)
}

// eat recalls a known-good meal or falls back to foraged ingredients, crafts
// it, scores it, and remembers the result.
func eat(rng *rand.Rand, a *agent, reg *item.Registry, rules []chem.ReactionRule, stockpile item.Stockpile) {
	inputs, weights, ok := a.memory.Recall("meal", craft.ProcessCook, a.inventory, stockpile, reg)
	if !ok {
		return
	}
	if !consume(inputs, a.inventory, stockpile) {
		return
	}

	meal, ok := craft.CraftOnce(rng, reg, rules, inputs, craft.ProcessCook, "meal", weights)
	if !ok {
		return
	}

	score := craft.ScoreIngestion(meal.Mix)
	signatures := make([]string, len(inputs))
	for i, input := range inputs {
		signatures[i] = input.Signature
	}
	a.memory.Remember("meal", craft.ProcessCook, signatures, weights, score)
	a.chemistry.Ingest(meal.Mix)
}

func forgeTool(rng *rand.Rand, a *agent, reg *item.Registry, rules []chem.ReactionRule, stockpile item.Stockpile) {
	inputs, weights, ok := a.memory.Recall("tool", craft.ProcessForge, a.inventory, stockpile, reg)
	if !ok || weights == nil {
		// Nothing learned yet (a tag fallback carries no weights): try the
		// obvious smelt.
		ore, oreOK := reg.Get("iron_ore")
		coal, coalOK := reg.Get("coal")
		if !oreOK || !coalOK {
			return
		}
		inputs = []item.Def{ore, coal}
		weights = []float64{0.7, 0.3}
	}
	if !consume(inputs, a.inventory, stockpile) {
		return
	}

	tool, ok := craft.CraftOnce(rng, reg, rules, inputs, craft.ProcessForge, "tool", weights)
	if !ok {
		return
	}

	score := craft.ScoreMaterial("tool", tool.Traits)
	signatures := make([]string, len(inputs))
	for i, input := range inputs {
		signatures[i] = input.Signature
	}
	a.memory.Remember("tool", craft.ProcessForge, signatures, weights, score)
	a.inventory.AddStock(tool.ID, 1)
	fmt.Printf("  %s forged %s (score %.2f)\n", a.name, tool.DisplayName, score)
}

// consume takes one unit of each input, preferring the agent's own
// inventory. Partial takes are rolled back so a failed craft costs nothing.
func consume(inputs []item.Def, inventory, stockpile item.Stockpile) bool {
	var takenInv, takenStock []string
	rollback := func() {
		for _, id := range takenInv {
			inventory.AddStock(id, 1)
		}
		for _, id := range takenStock {
			stockpile.AddStock(id, 1)
		}
	}
	for _, input := range inputs {
		switch {
		case inventory.RemoveStock(input.ID, 1):
			takenInv = append(takenInv, input.ID)
		case stockpile.RemoveStock(input.ID, 1):
			takenStock = append(takenStock, input.ID)
		default:
			rollback()
			return false
		}
	}
	return true
}

func printDay(day int, colony []*agent) {
	energies := make([]float64, len(colony))
	moods := make([]float64, len(colony))
	hungers := make([]float64, len(colony))
	for i, a := range colony {
		snap := body.DeriveMacroSnapshot(a.chemistry.Body)
		energies[i] = snap.Energy
		moods[i] = snap.Mood
		hungers[i] = snap.Hunger
	}
	fmt.Printf("day %d: energy %.2f mood %.2f hunger %.2f\n",
		day, stat.Mean(energies, nil), stat.Mean(moods, nil), stat.Mean(hungers, nil))
}

func printLearned(colony []*agent) {
	fmt.Println("learned recipes:")
	for _, a := range colony {
		for _, recipe := range a.memory.Recipes() {
			fmt.Printf("  %s: %s/%s %.2f <- %s\n",
				a.name, recipe.Intent, recipe.Process, recipe.Score,
				strings.Join(recipe.Signatures, " + "))
		}
	}
}
