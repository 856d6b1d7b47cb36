package blackjackev

import "math"

// evalHit computes the EV of taking exactly one card and then playing on
// optimally, for every up-card the remaining shoe can show, per spec §4.3.
//
// shoe is the player's remaining shoe for this hand (the shoe the solver
// is working against, minus hand itself). table holds every other hand's
// already-computed EV, in the dependency order [orderForProcessing]
// guarantees: any hand one card longer than hand has already been filled
// in by the time evalHit needs it.
//
// otherSplitEV, when non-nil, is the sibling split hand's per-up-card EV
// contribution (see eval_split.go): it is added to every branch, busted or
// not, realizing exactly one resplit.
func evalHit(table map[Hand]*HandEV, shoe Deck, hand Hand, value HandValue, otherSplitEV *CardMap[float64]) CardMap[float64] {
	var ev CardMap[float64]
	if value.Equal(Hard(21)) {
		for _, c := range shoe.RankIter() {
			ev.Set(c, -1+splitAdj(otherSplitEV, c))
		}
		return ev
	}
	for _, c := range shoe.RankIter() {
		after, ok := shoe.MinusCard(c)
		if !ok {
			continue
		}
		var sum float64
		var count int
		for _, k := range after.RankIter() {
			n := after.Count(k)
			next := value.Add(k)
			if next.Busted() {
				count += n
				sum += float64(n) * (-1 + splitAdj(otherSplitEV, c))
				continue
			}
			succ, ok := table[hand.PlusCard(k)]
			if !ok {
				panic(ErrUnenumeratedHand)
			}
			hv, hasH := succ.Hit.Get(c)
			sv, hasS := succ.Stand.Get(c)
			var chosen float64
			switch {
			case hasH && hasS:
				chosen = math.Max(hv, sv)
			case hasH:
				chosen = hv
			case hasS:
				chosen = sv
			default:
				continue
			}
			count += n
			sum += float64(n) * (chosen + splitAdj(otherSplitEV, c))
		}
		if count > 0 {
			ev.Set(c, sum/float64(count))
		}
	}
	return ev
}

// splitAdj returns the sibling split correction for c, or 0 if m is nil or
// has no entry for c.
func splitAdj(m *CardMap[float64], c Card) float64 {
	if m == nil {
		return 0
	}
	v, _ := m.Get(c)
	return v
}
