// Package craft combines item mixtures, runs them through the reactor with
// process presets, scores the results, and learns which ingredient
// combinations worked for an agent.
package craft

import "github.com/appengine-ltd/hearthstead/internal/chem"

// Process names how a craft is performed. The engine consumes the label; it
// attaches no meaning beyond the preset lookup.
type Process string

const (
	ProcessCook   Process = "cook"
	ProcessBrew   Process = "brew"
	ProcessForge  Process = "forge"
	ProcessSmelt  Process = "smelt"
	ProcessRefine Process = "refine"
	ProcessGrind  Process = "grind"
)

// ProcessSpec is the reactor preset for one process.
type ProcessSpec struct {
	Temp      float64
	Tags      map[string]float64
	Catalysts chem.Mixture
	Steps     int
	Dt        float64
}

var processSpecs = defaultProcessSpecs()

func defaultProcessSpecs() map[Process]ProcessSpec {
	return map[Process]ProcessSpec{
		ProcessCook: {
			Temp:  180,
			Tags:  map[string]float64{"heat": 1},
			Steps: 6,
			Dt:    1,
		},
		ProcessBrew: {
			Temp:  30,
			Tags:  map[string]float64{"wet": 1},
			Steps: 10,
			Dt:    1,
		},
		ProcessForge: {
			Temp:  1300,
			Tags:  map[string]float64{"heat": 1, "oxidize": 0.4},
			Steps: 8,
			Dt:    1,
		},
		ProcessSmelt: {
			Temp:  1500,
			Tags:  map[string]float64{"heat": 1, "oxidize": 0.8},
			Steps: 8,
			Dt:    1,
		},
		ProcessRefine: {
			Temp:      600,
			Tags:      map[string]float64{"oxidize": 0.2},
			Catalysts: chem.Mixture{chem.SubSalt: 0.5},
			Steps:     6,
			Dt:        1,
		},
		ProcessGrind: {
			Temp:  20,
			Tags:  map[string]float64{},
			Steps: 3,
			Dt:    1,
		},
	}
}

// SpecFor returns the preset for a process, falling back to a cold, inert
// single-step run for unknown labels.
func SpecFor(p Process) ProcessSpec {
	if spec, ok := processSpecs[p]; ok {
		return spec
	}
	return ProcessSpec{Temp: 20, Steps: 1, Dt: 1}
}

// SetSpecs replaces the preset table, for content packs. Not safe to call
// concurrently with crafting.
func SetSpecs(specs map[Process]ProcessSpec) {
	if specs != nil {
		processSpecs = specs
	}
}
