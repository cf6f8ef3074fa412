package chem

import "fmt"

// ReactionContext is the external state a rule is applied against. The rule
// itself owns no mutable state.
type ReactionContext struct {
	Mix       Mixture
	Temp      float64
	Catalysts Mixture
	Tags      map[string]float64
}

// ReactionRule is a stoichiometric transformation: inputs are consumed and
// outputs produced proportionally to an extent derived from rate, condition,
// and the scarcest required input.
type ReactionRule struct {
	Name    string
	Inputs  Mixture
	Outputs Mixture
	Rate    float64
	Cond    Condition
}

// NewReactionRule validates the stoichiometry. Negative rates or quantities
// have no defined semantics and are rejected outright.
func NewReactionRule(name string, inputs, outputs Mixture, rate float64, cond Condition) (ReactionRule, error) {
	if rate < 0 {
		return ReactionRule{}, fmt.Errorf("reaction %q: negative rate %v", name, rate)
	}
	for sub, qty := range inputs {
		if qty < 0 {
			return ReactionRule{}, fmt.Errorf("reaction %q: negative input %s=%v", name, sub, qty)
		}
	}
	for sub, qty := range outputs {
		if qty < 0 {
			return ReactionRule{}, fmt.Errorf("reaction %q: negative output %s=%v", name, sub, qty)
		}
	}
	return ReactionRule{Name: name, Inputs: inputs, Outputs: outputs, Rate: rate, Cond: cond}, nil
}

// MustReactionRule is for built-in rule tables whose stoichiometry is fixed
// at compile time.
func MustReactionRule(name string, inputs, outputs Mixture, rate float64, cond Condition) ReactionRule {
	rule, err := NewReactionRule(name, inputs, outputs, rate, cond)
	if err != nil {
		panic(err)
	}
	return rule
}

// Apply runs the rule against ctx.Mix for one step of dt, mutating ctx.Mix
// in place. The scarcest required input caps the extent, so a rule can never
// drive a required input negative. Abundance does not amplify: limit tops
// out at one stoichiometric unit per rate*dt*condition, and the extent is
// further capped at the limiting ratio so no dt or rate can overdraw.
func (r ReactionRule) Apply(ctx ReactionContext, dt float64) {
	cond := r.Cond.Evaluate(ctx)
	if cond <= 0 || dt <= 0 {
		return
	}

	limit := 1.0
	for sub, required := range r.Inputs {
		if required <= 0 {
			continue
		}
		available := ctx.Mix.Get(sub)
		ratio := available / required
		if ratio < limit {
			limit = ratio
		}
	}

	extent := r.Rate * dt * cond * limit
	if extent > limit {
		// Large dt*rate steps still may not overdraw the scarcest input.
		extent = limit
	}
	if extent <= 0 {
		return
	}

	for sub, qty := range r.Inputs {
		ctx.Mix.Add(sub, -qty*extent)
	}
	for sub, qty := range r.Outputs {
		ctx.Mix.Add(sub, qty*extent)
	}
}
