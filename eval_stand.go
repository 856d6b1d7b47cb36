package blackjackev

// evalStand computes the EV of standing on hand (valued value) against
// every up-card the remaining shoe can show, following spec §4.2.
//
// isSplit disables the natural-blackjack 1.5x payout: a two-card A-T dealt
// as one half of a split pair pays even money like any other 21, not 3:2.
func evalStand(cache *DealerProbCache, shoe Deck, hand Hand, value HandValue, isSplit bool) CardMap[float64] {
	probs := cache.Get(shoe)
	var ev CardMap[float64]
	for _, c := range shoe.RankIter() {
		out, ok := probs.Get(c)
		if !ok {
			continue
		}
		if !isSplit && hand.IsBlackjack() {
			ev.Set(c, 1.5*(1-out.PBJ))
			continue
		}
		t := value.Total()
		ev.Set(c, out.PBust-out.PBJ+
			sign(t, 17)*out.P17+
			sign(t, 18)*out.P18+
			sign(t, 19)*out.P19+
			sign(t, 20)*out.P20+
			sign(t, 21)*out.P21)
	}
	return ev
}

// sign returns +1 if t>k, -1 if t<k, 0 if t==k.
func sign(t, k int) float64 {
	switch {
	case t > k:
		return 1
	case t < k:
		return -1
	default:
		return 0
	}
}
