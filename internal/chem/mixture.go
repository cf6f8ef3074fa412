package chem

// Substance identifies one entry in a mixture. Absent means zero.
type Substance string

// Epsilon is the smallest quantity a mixture keeps. Any entry whose quantity
// falls to or below it is removed, so no zero or negative entries persist.
const Epsilon = 1e-6

// Mixture is a sparse non-negative quantity map over substances.
type Mixture map[Substance]float64

func NewMixture() Mixture {
	return Mixture{}
}

func (m Mixture) Get(sub Substance) float64 {
	return m[sub]
}

// Add mutates the mixture in place. The entry is dropped when the result
// falls to or below Epsilon.
func (m Mixture) Add(sub Substance, delta float64) {
	next := m[sub] + delta
	if next <= Epsilon {
		delete(m, sub)
		return
	}
	m[sub] = next
}

// Scale returns a new mixture with every quantity multiplied by factor.
// A factor of zero or less yields an empty mixture.
func (m Mixture) Scale(factor float64) Mixture {
	out := make(Mixture, len(m))
	if factor <= 0 {
		return out
	}
	for sub, qty := range m {
		scaled := qty * factor
		if scaled > Epsilon {
			out[sub] = scaled
		}
	}
	return out
}

// Merge returns a new mixture with delta applied additively over base.
// Neither argument is mutated; entries may cancel out to removal.
func Merge(base, delta Mixture) Mixture {
	out := base.Clone()
	for sub, qty := range delta {
		out.Add(sub, qty)
	}
	return out
}

func (m Mixture) Total() float64 {
	total := 0.0
	for _, qty := range m {
		total += qty
	}
	return total
}

func (m Mixture) Clone() Mixture {
	out := make(Mixture, len(m))
	for sub, qty := range m {
		out[sub] = qty
	}
	return out
}

func (m Mixture) IsEmpty() bool {
	return len(m) == 0
}
