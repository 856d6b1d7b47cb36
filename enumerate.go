package blackjackev

import "sort"

// enumerateHands returns every reachable, non-busted player hand dealt
// from shoe, including one-card hands (needed so that hit EV's
// one-card-extension lookups always resolve), keyed by the hand itself.
//
// Enumeration walks shoe's card sequence (see [Deck.CardIter]) and, at
// each recursion level, tries each distinct rank at most once: successive
// identical ranks in the sequence are skipped so that a multiset of k
// Fives, say, is only ever reached by one recursion path. A hand value
// that busts (Hard total over 21) is discarded without recursing further;
// any other value is recorded, and recursion continues unless the value
// is exactly Hard(21), which cannot be legally extended.
func enumerateHands(shoe Deck) map[Hand]*HandEV {
	table := make(map[Hand]*HandEV)
	cards := shoe.CardIter()
	var walk func(hand Hand, value HandValue, start int)
	walk = func(hand Hand, value HandValue, start int) {
		prev := InvalidCard
		for i := start; i < len(cards); i++ {
			c := cards[i]
			if c == prev {
				continue
			}
			prev = c
			next := value.Add(c)
			if next.Busted() {
				continue
			}
			nextHand := hand.PlusCard(c)
			table[nextHand] = &HandEV{Hand: nextHand, Value: next}
			if !next.Equal(Hard(21)) {
				walk(nextHand, next, i+1)
			}
		}
	}
	walk(Deck{}, HardZero, 0)
	return table
}

// orderForProcessing returns the hands of table sorted so that every
// hand's one-card extensions appear earlier in the slice, satisfying the
// dependency order the action evaluators need (see eval_hit.go,
// eval_double.go): hands are ordered by descending [HandValue], with one
// correction -- every Soft hand is ordered before every Hard hand whose
// total is 10 or less, since adding an Ace to such a hard hand produces a
// soft hand that must already be resolved.
func orderForProcessing(table map[Hand]*HandEV) []*HandEV {
	hands := make([]*HandEV, 0, len(table))
	for _, ev := range table {
		hands = append(hands, ev)
	}
	sort.Slice(hands, func(i, j int) bool {
		return processBefore(hands[i].Value, hands[j].Value)
	})
	return hands
}

// processBefore reports whether a hand must be processed before a hand
// valued b.
func processBefore(a, b HandValue) bool {
	aHardLE10 := !a.IsSoft() && a.Total() <= 10
	bHardLE10 := !b.IsSoft() && b.Total() <= 10
	switch {
	case a.IsSoft() && bHardLE10:
		return true
	case aHardLE10 && b.IsSoft():
		return false
	default:
		return a.Compare(b) > 0
	}
}
