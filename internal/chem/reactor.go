package chem

// ReactorOptions configures one reactor run. Zero values for Steps and Dt
// fall back to a single unit step.
type ReactorOptions struct {
	Temp      float64
	Catalysts Mixture
	Tags      map[string]float64
	Steps     int
	Dt        float64
}

// RunReactor applies the ordered rule list to a private working copy of mix
// for the requested number of steps and returns the result. The run is
// deterministic: identical inputs, rules, and options always yield identical
// mixtures. Any desired variation is injected by the caller through a
// context tag.
func RunReactor(mix Mixture, opts ReactorOptions, rules []ReactionRule) Mixture {
	steps := opts.Steps
	if steps <= 0 {
		steps = 1
	}
	dt := opts.Dt
	if dt <= 0 {
		dt = 1
	}

	working := mix.Clone()
	ctx := ReactionContext{
		Mix:       working,
		Temp:      opts.Temp,
		Catalysts: opts.Catalysts,
		Tags:      opts.Tags,
	}
	for step := 0; step < steps; step++ {
		for _, rule := range rules {
			rule.Apply(ctx, dt)
		}
	}
	return working
}
