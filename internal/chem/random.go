package chem

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// SeededRNG builds the deterministic PRNG the simulation hands to crafting
// and synthesis. The engine itself never owns one.
func SeededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// Choice picks a uniform element. Calling it with an empty slice is a
// programmer error and panics.
func Choice[T any](rng *rand.Rand, items []T) T {
	if len(items) == 0 {
		panic("chem: Choice on empty slice")
	}
	return items[rng.IntN(len(items))]
}
