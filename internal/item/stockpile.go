package item

// Stockpile maps item id to quantity. Shared location stockpiles and
// per-agent inventories use the same shape.
type Stockpile map[string]float64

func NewStockpile() Stockpile {
	return Stockpile{}
}

func (s Stockpile) Has(id string, qty float64) bool {
	return s[id] >= qty
}

func (s Stockpile) AddStock(id string, qty float64) {
	if qty <= 0 {
		return
	}
	s[id] += qty
}

// RemoveStock takes qty of id if available. Shortage is a normal outcome
// reported through the return value, not an error.
func (s Stockpile) RemoveStock(id string, qty float64) bool {
	if qty <= 0 {
		return true
	}
	if s[id] < qty {
		return false
	}
	s[id] -= qty
	if s[id] <= 0 {
		delete(s, id)
	}
	return true
}

func (s Stockpile) Qty(id string) float64 {
	return s[id]
}
