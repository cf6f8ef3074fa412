// genitems synthesizes procedural material deposits and writes them out as a
// CSV table for inspection or seeding world stockpiles.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/appengine-ltd/hearthstead/internal/chem"
	"github.com/appengine-ltd/hearthstead/internal/craft"
	"github.com/appengine-ltd/hearthstead/internal/gen"
	"github.com/appengine-ltd/hearthstead/internal/item"
)

type depositRow struct {
	ID          string  `csv:"id"`
	Name        string  `csv:"name"`
	Biome       string  `csv:"biome"`
	Tags        string  `csv:"tags"`
	Metalness   float64 `csv:"metalness"`
	Woodiness   float64 `csv:"woodiness"`
	Mineralness float64 `csv:"mineralness"`
	Signature   string  `csv:"signature"`
}

func main() {
	var seed int64
	var count int
	var biome string
	var out string

	flag.Int64Var(&seed, "seed", 1, "generation seed")
	flag.IntVar(&count, "count", 12, "deposits per biome")
	flag.StringVar(&biome, "biome", "", "generate only this biome")
	flag.StringVar(&out, "out", "", "output CSV path (stdout when empty)")
	flag.Parse()

	biomes := gen.Biomes()
	if biome != "" {
		biomes = []string{biome}
	}

	rng := chem.SeededRNG(seed)
	reg := item.NewRegistry()
	rules := craft.WorldRules()

	var rows []depositRow
	for _, b := range biomes {
		for i := 0; i < count; i++ {
			def := gen.SynthesizeDeposit(rng, reg, rules, b, b)
			rows = append(rows, depositRow{
				ID:          def.ID,
				Name:        def.DisplayName,
				Biome:       b,
				Tags:        strings.Join(def.Tags, " "),
				Metalness:   def.Traits["metalness"],
				Woodiness:   def.Traits["woodiness"],
				Mineralness: def.Traits["mineralness"],
				Signature:   def.Signature,
			})
		}
	}

	if out == "" {
		if err := gocsv.Marshal(rows, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "write csv:", err)
			os.Exit(1)
		}
		return
	}

	file, err := os.Create(out)
	if err != nil {
		fmt.Fprintln(os.Stderr, "create output:", err)
		os.Exit(1)
	}
	defer file.Close()
	if err := gocsv.MarshalFile(&rows, file); err != nil {
		fmt.Fprintln(os.Stderr, "write csv:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d deposits to %s\n", len(rows), out)
}
