package blackjackev

// ComputeAllHandEV runs the full pipeline of §4: it enumerates every
// reachable hand from shoe and fills in each one's stand, hit, double, and
// split EV against every dealer up-card, using calc to price the dealer's
// outcome distribution.
//
// Hands are processed in [orderForProcessing]'s dependency order, so that
// by the time a hand's hit or double EV is computed, every hand one card
// longer than it already has its own stand and hit entries filled in.
func ComputeAllHandEV(shoe Deck, calc Calculator) (map[Hand]*HandEV, error) {
	if shoe.Total() == 0 {
		return nil, ErrEmptyShoe
	}
	cache := NewDealerProbCache(calc)
	table := enumerateHands(shoe)
	for _, hev := range orderForProcessing(table) {
		handShoe, ok := shoe.Minus(hev.Hand)
		if !ok {
			panic(ErrUnenumeratedHand)
		}
		hev.Stand = evalStand(cache, handShoe, hev.Hand, hev.Value, false)
		hev.Hit = evalHit(table, handShoe, hev.Hand, hev.Value, nil)
		hev.hasHit = true
		if d, ok := evalDouble(table, handShoe, hev.Hand, hev.Value, nil); ok {
			hev.Double = d
			hev.hasDouble = true
		}
		if s, ok := evalSplit(cache, handShoe, table, hev.Hand); ok {
			hev.Split = s
			hev.hasSplit = true
		}
	}
	return table, nil
}

// ComputeOverallProb weights every possible initial deal by its
// probability of occurring from shoe and averages the resulting optimal
// play EV, producing the shoe's overall expected return per unit wagered
// (§4.7). A negative result is the house edge; e.g. -0.005 means the
// player is expected to lose half a percent of every wager.
func ComputeOverallProb(shoe Deck, table map[Hand]*HandEV) float64 {
	var total float64
	for _, c := range shoe.RankIter() {
		afterUp, ok := shoe.MinusCard(c)
		if !ok {
			continue
		}
		total += shoe.Prob(c) * averageInitialDeal(afterUp, table, c)
	}
	return total
}

// averageInitialDeal returns the probability-weighted average optimal-play
// EV of every two-card hand dealt from shoe against up-card c.
func averageInitialDeal(shoe Deck, table map[Hand]*HandEV, c Card) float64 {
	n := shoe.Total()
	if n < 2 {
		return 0
	}
	var sum float64
	for _, k1 := range shoe.RankIter() {
		n1 := shoe.Count(k1)
		afterK1, ok := shoe.MinusCard(k1)
		if !ok {
			continue
		}
		for _, k2 := range afterK1.RankIter() {
			n2 := afterK1.Count(k2)
			p := float64(n1) / float64(n) * float64(n2) / float64(n-1)
			hev, found := table[handOf(k1, k2)]
			if !found {
				continue
			}
			best, ok := hev.Best(c)
			if !ok {
				continue
			}
			sum += p * best
		}
	}
	return sum
}
