// Package body runs agent metabolism: ingested mixtures digest in a stomach
// pool, absorb into a body pool, and the body pool is summarized into a
// bounded macro snapshot each tick.
package body

import "github.com/appengine-ltd/hearthstead/internal/chem"

// Chemistry is one agent's internal chemical state. Single-owner: callers
// must not tick or ingest for the same agent concurrently.
type Chemistry struct {
	Stomach chem.Mixture
	Body    chem.Mixture
}

// NewChemistry starts an agent at a rested, fed baseline.
func NewChemistry() *Chemistry {
	return &Chemistry{
		Stomach: chem.NewMixture(),
		Body: chem.Mixture{
			chem.SubWater:     0.7,
			chem.SubGlycogen:  0.6,
			chem.SubGlucose:   0.3,
			chem.SubFat:       0.2,
			chem.SubSerotonin: 0.4,
		},
	}
}

// Ingest merges an eaten or drunk mixture into the stomach pool. The input
// is not retained.
func (c *Chemistry) Ingest(mix chem.Mixture) {
	c.Stomach = chem.Merge(c.Stomach, mix)
}
