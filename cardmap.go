package blackjackev

import "math"

// CardMap is a fixed 10-slot table keyed by [Card], each slot either
// holding a value or being empty. Emptiness is distinct from a zero value:
// a missing entry means "this action is not legal/possible", not "this
// action is worth zero".
type CardMap[T any] struct {
	values [NumRanks]T
	set    [NumRanks]bool
}

// Set records val for c.
func (m *CardMap[T]) Set(c Card, val T) {
	m.values[c.Index()] = val
	m.set[c.Index()] = true
}

// Get returns the value recorded for c and whether one was recorded.
func (m CardMap[T]) Get(c Card) (T, bool) {
	if !m.set[c.Index()] {
		var zero T
		return zero, false
	}
	return m.values[c.Index()], true
}

// Has reports whether a value was recorded for c.
func (m CardMap[T]) Has(c Card) bool {
	return m.set[c.Index()]
}

// Defined reports whether any entry at all was recorded.
func (m CardMap[T]) Defined() bool {
	for _, ok := range m.set {
		if ok {
			return true
		}
	}
	return false
}

// Each calls f for every present entry, in rank order.
func (m CardMap[T]) Each(f func(c Card, val T)) {
	for c := Ace; c <= Ten; c++ {
		if v, ok := m.Get(c); ok {
			f(c, v)
		}
	}
}

// AddFloat64 returns a new CardMap whose entries are the elementwise sum of
// m and other; an entry present in exactly one of the two maps passes
// through unchanged.
func AddFloat64(m, other CardMap[float64]) CardMap[float64] {
	var out CardMap[float64]
	for c := Ace; c <= Ten; c++ {
		v, okV := m.Get(c)
		w, okW := other.Get(c)
		switch {
		case okV && okW:
			out.Set(c, v+w)
		case okV:
			out.Set(c, v)
		case okW:
			out.Set(c, w)
		}
	}
	return out
}

// negInf is the sentinel value used for a missing action in a max
// reduction over stand/hit/double/split, so that an absent action never
// wins the maximum.
var negInf = math.Inf(-1)

// MaxFloat64 returns the largest of the values present for c across maps,
// or negInf if none are present.
func MaxFloat64(c Card, maps ...CardMap[float64]) float64 {
	best := negInf
	for _, m := range maps {
		if v, ok := m.Get(c); ok && v > best {
			best = v
		}
	}
	return best
}
