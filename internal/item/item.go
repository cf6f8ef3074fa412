// Package item holds item definitions, the append-only registry that owns id
// generation, and the quantity-map shape shared by stockpiles and agent
// inventories.
package item

import (
	"github.com/appengine-ltd/hearthstead/internal/analyze"
	"github.com/appengine-ltd/hearthstead/internal/chem"
)

// Def is one registered item. Analyzer-derived fields are filled at
// registration and are not kept fresh automatically: MergeMix re-derives
// nothing, callers re-run the analyzer when they need current tags.
type Def struct {
	ID   string
	Name string
	Mix  chem.Mixture

	Tags          []string
	Traits        map[string]float64
	CanonicalName string
	DisplayName   string
	Signature     string
}

func (d Def) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MergeMix folds delta into the item's mixture without re-analyzing.
func (d *Def) MergeMix(delta chem.Mixture) {
	d.Mix = chem.Merge(d.Mix, delta)
}

func applyAnalysis(d *Def, analysis analyze.Analysis) {
	d.Tags = analysis.Tags
	d.Traits = analysis.Traits
	d.CanonicalName = analysis.CanonicalName
	d.DisplayName = analysis.DisplayName
	d.Signature = analysis.Signature
}
