package chem

import "math"

// ConditionKind selects which gating formula a condition evaluates.
type ConditionKind string

const (
	CondAlways            ConditionKind = "always"
	CondTemperatureWindow ConditionKind = "temperature_window"
	CondCatalystBoost     ConditionKind = "catalyst_boost"
	CondTagThreshold      ConditionKind = "tag_threshold"
)

// Condition gates a reaction rule. The tagged-variant form keeps rules
// data-driven and replayable instead of hiding behavior in closures.
type Condition struct {
	Kind ConditionKind `yaml:"kind"`

	// TemperatureWindow bounds.
	Lo float64 `yaml:"lo,omitempty"`
	Hi float64 `yaml:"hi,omitempty"`

	// CatalystBoost parameters.
	Substance Substance `yaml:"substance,omitempty"`
	Strength  float64   `yaml:"strength,omitempty"`

	// TagThreshold parameters.
	Tag       string  `yaml:"tag,omitempty"`
	Threshold float64 `yaml:"threshold,omitempty"`
	Slope     float64 `yaml:"slope,omitempty"`
}

func Always() Condition {
	return Condition{Kind: CondAlways}
}

// TemperatureWindow gates a rule to 1 when the context temperature lies in
// [lo, hi] and 0 otherwise.
func TemperatureWindow(lo, hi float64) Condition {
	return Condition{Kind: CondTemperatureWindow, Lo: lo, Hi: hi}
}

// CatalystBoost amplifies a rule by 1 + strength*concentration of the named
// catalyst. Catalysts never gate a rule to zero.
func CatalystBoost(sub Substance, strength float64) Condition {
	return Condition{Kind: CondCatalystBoost, Substance: sub, Strength: strength}
}

// TagThreshold is a smooth sigmoid gate over a named context tag. It avoids
// hard cutoffs so outcomes don't flicker when a world signal sits near the
// boundary.
func TagThreshold(tag string, threshold, slope float64) Condition {
	return Condition{Kind: CondTagThreshold, Tag: tag, Threshold: threshold, Slope: slope}
}

// Evaluate returns the rule multiplier for this context, clamped to [0,3].
// Zero disables the rule for the step.
func (c Condition) Evaluate(ctx ReactionContext) float64 {
	switch c.Kind {
	case CondTemperatureWindow:
		if ctx.Temp < c.Lo || ctx.Temp > c.Hi {
			return 0
		}
		return 1
	case CondCatalystBoost:
		concentration := ctx.Catalysts.Get(c.Substance)
		return clampMultiplier(1 + c.Strength*concentration)
	case CondTagThreshold:
		value := ctx.Tags[c.Tag]
		return clampMultiplier(1 / (1 + math.Exp(-c.Slope*(value-c.Threshold))))
	default:
		return 1
	}
}

func clampMultiplier(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 3 {
		return 3
	}
	return v
}
