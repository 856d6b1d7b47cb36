package blackjackev

// DealerOutcome is the probability distribution of the dealer's final
// result for a single up-card, as returned by a [Calculator]. The seven
// probabilities sum to 1 within floating-point tolerance; PBJ is nonzero
// only when the up-card is Ace or Ten.
type DealerOutcome struct {
	P17, P18, P19, P20, P21 float64
	PBust                   float64
	PBJ                     float64
}

// Calculator is the dealer outcome probability engine's contract: given a
// shoe, return each present up-card's [DealerOutcome]. This module treats
// an implementation of Calculator as an external collaborator -- the
// solver (cache.go, eval_stand.go) only ever calls through this interface,
// never into the concrete engine's package. See package dealerprob for the
// implementation shipped with this module.
type Calculator interface {
	Probabilities(shoe Deck) CardMap[DealerOutcome]
}

// DealerProbCache memoizes a [Calculator] by shoe identity, so that a
// dealer's outcome distribution is computed at most once per distinct
// shoe composition no matter how many player hands reference it. This is
// the sole mutable shared resource of the solver (see package doc); it is
// exclusively owned and read by one [ComputeAllHandEV] call, never shared
// across goroutines, so it needs no locking.
type DealerProbCache struct {
	calc Calculator
	memo map[Deck]CardMap[DealerOutcome]
}

// NewDealerProbCache creates a cache wrapping calc.
func NewDealerProbCache(calc Calculator) *DealerProbCache {
	return &DealerProbCache{
		calc: calc,
		memo: make(map[Deck]CardMap[DealerOutcome]),
	}
}

// Get returns shoe's dealer outcome distribution, computing and caching it
// on first request.
func (c *DealerProbCache) Get(shoe Deck) CardMap[DealerOutcome] {
	if probs, ok := c.memo[shoe]; ok {
		return probs
	}
	probs := c.calc.Probabilities(shoe)
	c.memo[shoe] = probs
	return probs
}
