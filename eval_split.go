package blackjackev

// handOf builds a Hand out of individual cards.
func handOf(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h = h.PlusCard(c)
	}
	return h
}

// evalSplit computes the EV of splitting a pair, for every up-card the
// remaining shoe can show, per spec §4.5. S is the shoe after removing
// both cards of the pair (the same shoe the solver passed to evalStand
// etc. for this hand). table is the full, already-ordered hand table.
//
// ok is false when hand is not a pair (not exactly two cards of the same
// rank).
func evalSplit(cache *DealerProbCache, S Deck, table map[Hand]*HandEV, hand Hand) (ev CardMap[float64], ok bool) {
	if hand.Total() != 2 {
		return CardMap[float64]{}, false
	}
	ranks := hand.RankIter()
	if len(ranks) != 1 {
		return CardMap[float64]{}, false
	}
	p := ranks[0]

	result := splitInner(cache, S, table, p, true)

	if t, a, d := S.Count(Ten), S.Count(Ace), S.Total(); t > 0 && a > 0 && d > 1 {
		if v, has := result.Get(Ten); has {
			result.Set(Ten, v+float64(a)/float64(d-1))
		}
		if v, has := result.Get(Ace); has {
			result.Set(Ace, v+float64(t)/float64(d-1))
		}
	}
	return result, true
}

// splitInner computes one split hand's per-up-card EV, realizing exactly
// one resplit of the same rank when recurse is true (see spec §4.5).
//
// S is the shoe after removing both cards of the original pair. The
// "virtual" shoe S+p represents the cards available when one copy of p
// has already been dealt to the hand being played; it seeds a fresh
// sub-universe of every table hand reachable from it that still contains
// p, each independently re-evaluated as a split hand (no natural bonus,
// hit/double disabled when p is Ace).
func splitInner(cache *DealerProbCache, S Deck, table map[Hand]*HandEV, p Card, recurse bool) CardMap[float64] {
	virtual := S.PlusCard(p)
	sub := make(map[Hand]*HandEV, len(table))
	for h, src := range table {
		if h.Count(p) == 0 {
			continue
		}
		if _, ok := virtual.Minus(h); !ok {
			continue
		}
		sub[h] = &HandEV{Hand: h, Value: src.Value}
	}

	var otherSplitEV CardMap[float64]
	var haveOther bool
	if recurse {
		otherSplitEV = splitInner(cache, S, table, p, false)
		haveOther = true
	}

	for _, hev := range orderForProcessing(sub) {
		handShoe, ok := virtual.Minus(hev.Hand)
		if !ok {
			panic(ErrUnenumeratedHand)
		}
		hev.Stand = evalStand(cache, handShoe, hev.Hand, hev.Value, true)
		if p != Ace {
			var osv *CardMap[float64]
			if haveOther {
				osv = &otherSplitEV
			}
			hev.Hit = evalHit(sub, handShoe, hev.Hand, hev.Value, osv)
			hev.hasHit = true
			if d, ok := evalDouble(sub, handShoe, hev.Hand, hev.Value, osv); ok {
				hev.Double = d
				hev.hasDouble = true
			}
		}
	}

	finalShoe, ok := virtual.MinusCard(p)
	if !ok {
		panic(ErrUnenumeratedHand)
	}
	var result CardMap[float64]
	for _, c := range finalShoe.RankIter() {
		afterUp, ok := finalShoe.MinusCard(c)
		if !ok || afterUp.Total() == 0 {
			continue
		}
		var sum float64
		for _, k := range afterUp.RankIter() {
			n := float64(afterUp.Count(k))
			sh, found := sub[handOf(p, k)]
			if !found {
				continue
			}
			sv, has := sh.Stand.Get(c)
			if !has {
				continue
			}
			best := sv
			if haveOther {
				best += splitAdj(&otherSplitEV, c)
			}
			if hv, has := sh.Hit.Get(c); sh.hasHit && has && hv > best {
				best = hv
			}
			if dv, has := sh.Double.Get(c); sh.hasDouble && has && dv > best {
				best = dv
			}
			sum += n * best
		}
		result.Set(c, sum/float64(afterUp.Total()))
	}
	return result
}
