package blackjackev

import (
	"fmt"
	"strconv"
)

// Card is a card rank as it matters to blackjack: Ace through Ten, with
// face cards (Jack, Queen, King) collapsing onto Ten. There is no suit --
// a shoe is a multiset of these ten values.
type Card uint8

// Card ranks. Ace is 1; Ten absorbs Jack, Queen, and King.
const (
	Ace Card = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
)

// NumRanks is the number of distinct card ranks.
const NumRanks = 10

// InvalidCard is an invalid card.
const InvalidCard Card = 0

// FromRune returns the card for a rank rune ('A', '2'..'9', 'T', 'J', 'Q',
// 'K'), ignoring case. Returns [InvalidCard] if r is not a recognized rank.
func FromRune(r rune) Card {
	switch r {
	case 'A', 'a':
		return Ace
	case '2':
		return Two
	case '3':
		return Three
	case '4':
		return Four
	case '5':
		return Five
	case '6':
		return Six
	case '7':
		return Seven
	case '8':
		return Eight
	case '9':
		return Nine
	case 'T', 't', 'J', 'j', 'Q', 'q', 'K', 'k':
		return Ten
	}
	return InvalidCard
}

// Value returns the card's blackjack face value: 1 for Ace (the caller
// decides whether it counts as 1 or 11 via [HandValue]), 10 for Ten, and
// the numeric rank otherwise.
func (c Card) Value() int {
	return int(c)
}

// Index returns the card's zero-based slot index (0 for Ace, 9 for Ten),
// suitable for indexing a 10-slot [Deck] or [CardMap].
func (c Card) Index() int {
	return int(c) - 1
}

// Valid reports whether c is one of the ten recognized ranks.
func (c Card) Valid() bool {
	return Ace <= c && c <= Ten
}

// Byte returns the card's single-character rank byte.
func (c Card) Byte() byte {
	switch c {
	case Ace:
		return 'A'
	case Ten:
		return 'T'
	default:
		if Two <= c && c <= Nine {
			return '0' + byte(c)
		}
	}
	return '0'
}

// Name returns the card rank's name.
func (c Card) Name() string {
	switch c {
	case Ace:
		return "Ace"
	case Two:
		return "Two"
	case Three:
		return "Three"
	case Four:
		return "Four"
	case Five:
		return "Five"
	case Six:
		return "Six"
	case Seven:
		return "Seven"
	case Eight:
		return "Eight"
	case Nine:
		return "Nine"
	case Ten:
		return "Ten"
	}
	return "Invalid"
}

// String satisfies the [fmt.Stringer] interface.
func (c Card) String() string {
	return c.Name()
}

// Format satisfies the [fmt.Formatter] interface.
//
// Supported verbs:
//
//	s, v - rank byte (ex: A, 5, T)
//	n    - rank name (ex: Ace, Five, Ten)
//	d    - base 10 face value
func (c Card) Format(f fmt.State, verb rune) {
	var buf []byte
	switch verb {
	case 's', 'v':
		buf = append(buf, c.Byte())
	case 'n':
		buf = append(buf, c.Name()...)
	case 'd':
		buf = append(buf, strconv.Itoa(c.Value())...)
	default:
		buf = append(buf, fmt.Sprintf("%%!%c(ERROR=unknown verb, card: %s)", verb, c.Name())...)
	}
	_, _ = f.Write(buf)
}
