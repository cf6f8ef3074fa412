// Package content loads data-driven chemistry packs: substances, classifier
// groups, trait weights, process presets, and reaction rule lists. A pack
// embedded at build time supplies the defaults; a user pack may overlay it.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/hearthstead/internal/analyze"
	"github.com/appengine-ltd/hearthstead/internal/chem"
	"github.com/appengine-ltd/hearthstead/internal/craft"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Pack is one parsed content pack.
type Pack struct {
	Substances   []string                      `yaml:"substances"`
	Groups       map[string][]string           `yaml:"groups"`
	Composites   map[string][]string           `yaml:"composites"`
	TraitWeights map[string]map[string]float64 `yaml:"trait_weights"`
	OreNouns     map[string]string             `yaml:"ore_nouns"`
	MetalNouns   map[string]string             `yaml:"metal_nouns"`
	Processes    map[string]ProcessDef         `yaml:"processes"`
	WorldRules   []RuleDef                     `yaml:"world_rules"`
}

type ProcessDef struct {
	Temp      float64            `yaml:"temp"`
	Tags      map[string]float64 `yaml:"tags"`
	Catalysts map[string]float64 `yaml:"catalysts"`
	Steps     int                `yaml:"steps"`
	Dt        float64            `yaml:"dt"`
}

type RuleDef struct {
	Name      string             `yaml:"name"`
	Inputs    map[string]float64 `yaml:"inputs"`
	Outputs   map[string]float64 `yaml:"outputs"`
	Rate      float64            `yaml:"rate"`
	Condition chem.Condition     `yaml:"condition"`
}

// Default parses the embedded pack.
func Default() (*Pack, error) {
	var pack Pack
	if err := yaml.Unmarshal(defaultsYAML, &pack); err != nil {
		return nil, fmt.Errorf("parse embedded content pack: %w", err)
	}
	if err := pack.Validate(); err != nil {
		return nil, fmt.Errorf("embedded content pack: %w", err)
	}
	return &pack, nil
}

// Load overlays a pack file on top of the embedded defaults. Sections the
// file omits keep their default content.
func Load(path string) (*Pack, error) {
	pack, err := Default()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content pack: %w", err)
	}
	if err := yaml.Unmarshal(data, pack); err != nil {
		return nil, fmt.Errorf("parse content pack %s: %w", path, err)
	}
	if err := pack.Validate(); err != nil {
		return nil, fmt.Errorf("content pack %s: %w", path, err)
	}
	return pack, nil
}

// Validate rejects rules and groups that reference substances the pack never
// declares. Unknown names come with a nearest-match suggestion so authoring
// typos surface immediately.
func (p *Pack) Validate() error {
	known := map[string]bool{}
	for _, sub := range p.Substances {
		known[sub] = true
	}
	if len(known) == 0 {
		return fmt.Errorf("no substances declared")
	}

	check := func(where, name string) error {
		if known[name] {
			return nil
		}
		if suggestion, ok := p.nearestSubstance(name); ok {
			return fmt.Errorf("%s: unknown substance %q (did you mean %q?)", where, name, suggestion)
		}
		return fmt.Errorf("%s: unknown substance %q", where, name)
	}

	for tag, group := range p.Groups {
		for _, sub := range group {
			if err := check(fmt.Sprintf("group %q", tag), sub); err != nil {
				return err
			}
		}
	}
	for trait, weights := range p.TraitWeights {
		for sub := range weights {
			if err := check(fmt.Sprintf("trait %q", trait), sub); err != nil {
				return err
			}
		}
	}
	for _, rule := range p.WorldRules {
		for sub := range rule.Inputs {
			if err := check(fmt.Sprintf("rule %q inputs", rule.Name), sub); err != nil {
				return err
			}
		}
		for sub := range rule.Outputs {
			if err := check(fmt.Sprintf("rule %q outputs", rule.Name), sub); err != nil {
				return err
			}
		}
		if rule.Rate < 0 {
			return fmt.Errorf("rule %q: negative rate %v", rule.Name, rule.Rate)
		}
	}
	return nil
}

func (p *Pack) nearestSubstance(name string) (string, bool) {
	best := ""
	bestDist := levenshteinLimit(len(name)) + 1
	candidates := append([]string(nil), p.Substances...)
	sort.Strings(candidates)
	for _, candidate := range candidates {
		dist := levenshtein.ComputeDistance(name, candidate)
		if dist < bestDist {
			bestDist = dist
			best = candidate
		}
	}
	return best, best != ""
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// Rules converts the pack's world rule list.
func (p *Pack) Rules() ([]chem.ReactionRule, error) {
	rules := make([]chem.ReactionRule, 0, len(p.WorldRules))
	for _, def := range p.WorldRules {
		rule, err := chem.NewReactionRule(def.Name, toMixture(def.Inputs), toMixture(def.Outputs), def.Rate, def.Condition)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// ProcessSpecs converts the pack's process presets.
func (p *Pack) ProcessSpecs() map[craft.Process]craft.ProcessSpec {
	specs := make(map[craft.Process]craft.ProcessSpec, len(p.Processes))
	for name, def := range p.Processes {
		specs[craft.Process(name)] = craft.ProcessSpec{
			Temp:      def.Temp,
			Tags:      def.Tags,
			Catalysts: toMixture(def.Catalysts),
			Steps:     def.Steps,
			Dt:        def.Dt,
		}
	}
	return specs
}

// Apply installs the pack's classifier tables and process presets. Call once
// at startup, before any analysis or crafting.
func (p *Pack) Apply() {
	analyze.Configure(analyze.Config{
		TagGroups:    toGroups(p.Groups),
		Composites:   p.Composites,
		TraitWeights: toTraitWeights(p.TraitWeights),
		OreNouns:     toNouns(p.OreNouns),
		MetalNouns:   toNouns(p.MetalNouns),
	})
	if len(p.Processes) > 0 {
		craft.SetSpecs(p.ProcessSpecs())
	}
}

func toMixture(quantities map[string]float64) chem.Mixture {
	mix := make(chem.Mixture, len(quantities))
	for sub, qty := range quantities {
		mix[chem.Substance(sub)] = qty
	}
	return mix
}

func toGroups(groups map[string][]string) map[string][]chem.Substance {
	if groups == nil {
		return nil
	}
	out := make(map[string][]chem.Substance, len(groups))
	for tag, members := range groups {
		subs := make([]chem.Substance, len(members))
		for i, member := range members {
			subs[i] = chem.Substance(member)
		}
		out[tag] = subs
	}
	return out
}

func toTraitWeights(weights map[string]map[string]float64) map[string]map[chem.Substance]float64 {
	if weights == nil {
		return nil
	}
	out := make(map[string]map[chem.Substance]float64, len(weights))
	for trait, table := range weights {
		converted := make(map[chem.Substance]float64, len(table))
		for sub, weight := range table {
			converted[chem.Substance(sub)] = weight
		}
		out[trait] = converted
	}
	return out
}

func toNouns(nouns map[string]string) map[chem.Substance]string {
	if nouns == nil {
		return nil
	}
	out := make(map[chem.Substance]string, len(nouns))
	for sub, noun := range nouns {
		out[chem.Substance(sub)] = noun
	}
	return out
}
