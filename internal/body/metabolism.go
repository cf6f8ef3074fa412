package body

import "github.com/appengine-ltd/hearthstead/internal/chem"

// TickMetabolism advances one agent's chemistry by dt: the digest rule list
// runs against the stomach pool, a bounded fraction of the stomach absorbs
// into the body pool, then the basal rule list runs against the body pool.
func TickMetabolism(c *Chemistry, rules []chem.ReactionRule, dt float64) {
	if c == nil || dt <= 0 {
		return
	}
	if c.Stomach == nil {
		c.Stomach = chem.NewMixture()
	}
	if c.Body == nil {
		c.Body = chem.NewMixture()
	}

	stomachCtx := chem.ReactionContext{Mix: c.Stomach}
	for _, rule := range rules {
		rule.Apply(stomachCtx, dt)
	}

	absorb(c, dt)

	bodyCtx := chem.ReactionContext{Mix: c.Body}
	for _, rule := range BasalRules() {
		rule.Apply(bodyCtx, dt)
	}
}

// absorb moves a fixed fraction of the stomach pool into the body pool.
// The fraction is capped at 0.5 so large dt steps stay stable and never
// drain more than half the pool in one tick.
func absorb(c *Chemistry, dt float64) {
	fraction := 0.1 * dt
	if fraction > 0.5 {
		fraction = 0.5
	}
	if fraction <= 0 {
		return
	}
	for sub, qty := range c.Stomach {
		moved := qty * fraction
		c.Stomach.Add(sub, -moved)
		c.Body.Add(sub, moved)
	}
}
