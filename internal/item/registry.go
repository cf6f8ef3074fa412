package item

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/hearthstead/internal/analyze"
	"github.com/appengine-ltd/hearthstead/internal/chem"
)

// Registry is the append-only item catalog. It owns the serial counter used
// for spawned ids so nothing in the engine depends on process-global state.
type Registry struct {
	defs       map[string]Def
	order      []string
	nextSerial int
}

func NewRegistry() *Registry {
	return &Registry{defs: map[string]Def{}}
}

// Register analyzes the definition's mixture and stores it. Registering an
// existing id replaces the definition without disturbing listing order.
func (r *Registry) Register(def Def) Def {
	applyAnalysis(&def, analyze.AnalyzeMix(def.Mix))
	if _, exists := r.defs[def.ID]; !exists {
		r.order = append(r.order, def.ID)
	}
	r.defs[def.ID] = def
	return def
}

func (r *Registry) Get(id string) (Def, bool) {
	def, ok := r.defs[id]
	return def, ok
}

// List returns definitions in registration order.
func (r *Registry) List() []Def {
	out := make([]Def, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.defs[id])
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.order)
}

// SpawnFromMixture registers a new item with a fresh id derived from the
// label and the registry's monotonically increasing serial.
func (r *Registry) SpawnFromMixture(label string, mix chem.Mixture) Def {
	r.nextSerial++
	label = strings.TrimSpace(label)
	if label == "" {
		label = "item"
	}
	def := Def{
		ID:  fmt.Sprintf("%s#%d", label, r.nextSerial),
		Mix: mix.Clone(),
	}
	def = r.Register(def)
	if def.Name == "" {
		def.Name = def.DisplayName
		r.defs[def.ID] = def
	}
	return def
}
