package blackjackev

import (
	"fmt"
	"strings"
)

// Deck is a fixed 10-slot multiset of cards, indexed by [Card.Index]. It is
// used both to represent a shoe (the cards available to be dealt) and a
// hand (the cards a player or dealer holds) -- removing a hand from a shoe
// is exactly multiset subtraction.
//
// The zero value is an empty deck.
type Deck struct {
	counts [NumRanks]int
	total  int
}

// Hand is structurally identical to [Deck]; the distinction is purely
// semantic (a hand is what a player holds, a deck is what remains to be
// dealt).
type Hand = Deck

// NewDeck creates a deck with the given per-rank counts. counts is indexed
// by [Card.Index] (0 for Ace, 9 for Ten); a nil or short counts is treated
// as zero for the missing ranks.
func NewDeck(counts ...int) Deck {
	var d Deck
	for i := 0; i < len(counts) && i < NumRanks; i++ {
		d.counts[i] = counts[i]
		d.total += counts[i]
	}
	return d
}

// GenerateShoe creates a standard shoe of decks decks: decks*4 of each rank
// Ace through Nine, and decks*16 Tens (accounting for Ten, Jack, Queen, and
// King each contributing a Ten).
func GenerateShoe(decks int) Deck {
	var d Deck
	for c := Ace; c <= Nine; c++ {
		d.counts[c.Index()] = decks * 4
	}
	d.counts[Ten.Index()] = decks * 16
	d.total = decks * 52
	return d
}

// Count returns the number of copies of c remaining in d.
func (d Deck) Count(c Card) int {
	if !c.Valid() {
		return 0
	}
	return d.counts[c.Index()]
}

// Total returns the total number of cards in d.
func (d Deck) Total() int {
	return d.total
}

// Prob returns the probability of drawing c from d, or 0 if d is empty.
func (d Deck) Prob(c Card) float64 {
	if d.total == 0 {
		return 0
	}
	return float64(d.Count(c)) / float64(d.total)
}

// IsBlackjack reports whether d is a two-card natural: one Ace and one Ten.
func (d Deck) IsBlackjack() bool {
	return d.total == 2 && d.Count(Ace) == 1 && d.Count(Ten) == 1
}

// PlusCard returns a new deck with one more copy of c.
func (d Deck) PlusCard(c Card) Deck {
	d.counts[c.Index()]++
	d.total++
	return d
}

// MinusCard returns a new deck with one fewer copy of c, and true, or the
// unmodified deck and false if d has no copies of c remaining.
func (d Deck) MinusCard(c Card) (Deck, bool) {
	if d.Count(c) == 0 {
		return d, false
	}
	d.counts[c.Index()]--
	d.total--
	return d, true
}

// Plus returns the multiset sum of d and other.
func (d Deck) Plus(other Deck) Deck {
	for i := range d.counts {
		d.counts[i] += other.counts[i]
	}
	d.total += other.total
	return d
}

// Minus returns the multiset difference d-other, and true, or the
// unmodified deck and false if any slot of other exceeds the
// corresponding slot of d.
func (d Deck) Minus(other Deck) (Deck, bool) {
	for i := range d.counts {
		if other.counts[i] > d.counts[i] {
			return d, false
		}
	}
	for i := range d.counts {
		d.counts[i] -= other.counts[i]
	}
	d.total -= other.total
	return d, true
}

// Add adds one copy of c to d in place.
func (d *Deck) Add(c Card) {
	d.counts[c.Index()]++
	d.total++
}

// Remove removes one copy of c from d in place. Removing a card that is
// not present is a programmer error: it indicates a broken invariant
// upstream (an evaluator iterating a rank the shoe does not contain) and
// panics with [ErrNegativeCount] rather than silently corrupting the
// count.
func (d *Deck) Remove(c Card) {
	if d.counts[c.Index()] == 0 {
		panic(ErrNegativeCount)
	}
	d.counts[c.Index()]--
	d.total--
}

// RankIter returns each rank present in d, once, in rank order (Ace..Ten).
func (d Deck) RankIter() []Card {
	ranks := make([]Card, 0, NumRanks)
	for c := Ace; c <= Ten; c++ {
		if d.Count(c) > 0 {
			ranks = append(ranks, c)
		}
	}
	return ranks
}

// CardIter returns each copy of each rank present in d, in rank order,
// e.g. a deck of one Ace and two Threes yields [Ace, Three, Three]. Used
// by the hand enumerator, which walks this flat sequence positionally so
// that it can resume a sub-enumeration "after" a given index.
func (d Deck) CardIter() []Card {
	cards := make([]Card, 0, d.total)
	for c := Ace; c <= Ten; c++ {
		for n := d.Count(c); n > 0; n-- {
			cards = append(cards, c)
		}
	}
	return cards
}

// String satisfies the [fmt.Stringer] interface, formatting d as a
// rank:count list, e.g. "A:4 2:4 ... T:16".
func (d Deck) String() string {
	var sb strings.Builder
	for i, c := 0, Ace; c <= Ten; c++ {
		if n := d.Count(c); n > 0 {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%s:%d", c, n)
			i++
		}
	}
	return sb.String()
}
