// Package dealerprob computes the exact outcome probability distribution
// of a dealer playing out a hand under the standard stand-on-all-17s
// rule, for every up-card a given shoe can show. It implements
// [blackjackev.Calculator] and is the concrete engine the rest of this
// module treats as an external collaborator: nothing here reaches back
// into package blackjackev's internals, only its public Deck, Card,
// CardMap, HandValue, and DealerOutcome types.
package dealerprob

import "github.com/deckshoe/blackjackev"

// dist is the raw, un-bucketed outcome distribution accumulated by
// resolve: the probability mass of busting, plus one slot per final
// total 17 through 21. It does not yet distinguish a natural blackjack
// from a 21 reached by drawing further cards -- that split happens in
// Engine.Probabilities, once, from the caller's up-card.
type dist struct {
	p17, p18, p19, p20, p21, bust float64
}

func (d dist) scale(w float64) dist {
	return dist{d.p17 * w, d.p18 * w, d.p19 * w, d.p20 * w, d.p21 * w, d.bust * w}
}

func (d dist) add(o dist) dist {
	return dist{d.p17 + o.p17, d.p18 + o.p18, d.p19 + o.p19, d.p20 + o.p20, d.p21 + o.p21, d.bust + o.bust}
}

// terminal builds the one-hot distribution for a hand that has stopped
// drawing, either because it stands (total in 17..21) or busted.
func terminal(value blackjackev.HandValue) dist {
	if value.Busted() {
		return dist{bust: 1}
	}
	switch value.Total() {
	case 17:
		return dist{p17: 1}
	case 18:
		return dist{p18: 1}
	case 19:
		return dist{p19: 1}
	case 20:
		return dist{p20: 1}
	default:
		return dist{p21: 1}
	}
}

// memoKey identifies a (hand value, remaining shoe) state. Both fields are
// plain comparable structs, so this can be used directly as a map key.
type memoKey struct {
	value blackjackev.HandValue
	shoe  blackjackev.Deck
}

// Engine memoizes dealer-hand resolution by (value, shoe) state across
// every up-card branch computed within a single Probabilities call --
// the state space is shared, since a hand total of, say, Hard(14) with a
// given remaining shoe arises identically regardless of which up-card
// the dealer started with.
type Engine struct {
	memo map[memoKey]dist
}

// New creates a dealer probability engine with an empty memo.
func New() *Engine {
	return &Engine{memo: make(map[memoKey]dist)}
}

// Probabilities implements [blackjackev.Calculator].
func (e *Engine) Probabilities(shoe blackjackev.Deck) blackjackev.CardMap[blackjackev.DealerOutcome] {
	var result blackjackev.CardMap[blackjackev.DealerOutcome]
	for _, up := range shoe.RankIter() {
		rest, ok := shoe.MinusCard(up)
		if !ok {
			continue
		}
		var pbj float64
		switch up {
		case blackjackev.Ace:
			pbj = rest.Prob(blackjackev.Ten)
		case blackjackev.Ten:
			pbj = rest.Prob(blackjackev.Ace)
		}
		d := e.resolve(blackjackev.HardZero.Add(up), rest)
		result.Set(up, blackjackev.DealerOutcome{
			P17:   d.p17,
			P18:   d.p18,
			P19:   d.p19,
			P20:   d.p20,
			P21:   d.p21 - pbj,
			PBust: d.bust,
			PBJ:   pbj,
		})
	}
	return result
}

// resolve returns the outcome distribution of a dealer hand currently
// valued value, drawing further cards from shoe until standing on a
// total of 17 or more (soft or hard) or busting.
func (e *Engine) resolve(value blackjackev.HandValue, shoe blackjackev.Deck) dist {
	if value.Busted() || value.Total() >= 17 {
		return terminal(value)
	}
	key := memoKey{value: value, shoe: shoe}
	if d, ok := e.memo[key]; ok {
		return d
	}
	var d dist
	for _, c := range shoe.RankIter() {
		w := shoe.Prob(c)
		next, ok := shoe.MinusCard(c)
		if !ok {
			continue
		}
		d = d.add(e.resolve(value.Add(c), next).scale(w))
	}
	e.memo[key] = d
	return d
}
