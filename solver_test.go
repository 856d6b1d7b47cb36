package blackjackev_test

import (
	"math"
	"testing"

	. "github.com/deckshoe/blackjackev"
	"github.com/deckshoe/blackjackev/dealerprob"
)

func closeEnough(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}

// handOf builds a Hand out of individual cards.
func handOf(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h = h.PlusCard(c)
	}
	return h
}

func TestComputeAllHandEVKnownShoe(t *testing.T) {
	// {A,2,3,4,5,6,7,8,4x9,12x10}
	shoe := NewDeck(1, 1, 1, 1, 1, 1, 1, 1, 4, 12)
	table, err := ComputeAllHandEV(shoe, dealerprob.New())
	if err != nil {
		t.Fatalf("ComputeAllHandEV returned error: %v", err)
	}

	hand := handOf(Four, Six)
	hev, ok := table[hand]
	if !ok {
		t.Fatal("hand {4,6} not found in table")
	}
	if !hev.Value.Equal(Hard(10)) {
		t.Fatalf("value = %s, want Hard(10)", hev.Value)
	}
	if v, ok := hev.Stand.Get(Ace); !ok || !closeEnough(v, -0.78353, 1e-4) {
		t.Errorf("stand[Ace] = (%v,%v), want ~-0.78353", v, ok)
	}
	if v, ok := hev.Stand.Get(Five); !ok || !closeEnough(v, 0.63292, 1e-4) {
		t.Errorf("stand[Five] = (%v,%v), want ~0.63292", v, ok)
	}
	if v, ok := hev.Hit.Get(Five); !ok || !closeEnough(v, 0.91664, 1e-4) {
		t.Errorf("hit[Five] = (%v,%v), want ~0.91664", v, ok)
	}
	if !hev.HasDouble() {
		t.Fatal("double should be legal for a 2-card hand")
	}
	if v, ok := hev.Double.Get(Five); !ok || !closeEnough(v, 1.83328, 1e-4) {
		t.Errorf("double[Five] = (%v,%v), want ~1.83328", v, ok)
	}
	if hev.HasSplit() {
		t.Error("split should not be legal for {4,6}")
	}

	nines, ok := table[handOf(Nine, Nine)]
	if !ok {
		t.Fatal("hand {9,9} not found")
	}
	if !nines.HasSplit() {
		t.Fatal("split should be legal for {9,9}")
	}
	if v, ok := nines.Split.Get(Six); !ok || !closeEnough(v, 1.213, 5e-3) {
		t.Errorf("split[Six] = (%v,%v), want ~1.213", v, ok)
	}
}

func TestComputeAllHandEVSplitShoe(t *testing.T) {
	// {8, 3x9, 2x10}
	shoe := NewDeck(0, 0, 0, 0, 0, 0, 0, 1, 3, 2)
	table, err := ComputeAllHandEV(shoe, dealerprob.New())
	if err != nil {
		t.Fatalf("ComputeAllHandEV returned error: %v", err)
	}
	nines, ok := table[handOf(Nine, Nine)]
	if !ok {
		t.Fatal("hand {9,9} not found")
	}
	if !nines.HasSplit() {
		t.Fatal("split should be legal for {9,9}")
	}
	want := map[Card]float64{Eight: 1.333, Nine: 0.0, Ten: -0.667}
	for c, w := range want {
		if v, ok := nines.Split.Get(c); !ok || !closeEnough(v, w, 5e-3) {
			t.Errorf("split[%s] = (%v,%v), want ~%v", c, v, ok, w)
		}
	}
}

func TestComputeOverallProbStandardShoe(t *testing.T) {
	shoe := GenerateShoe(1)
	table, err := ComputeAllHandEV(shoe, dealerprob.New())
	if err != nil {
		t.Fatalf("ComputeAllHandEV returned error: %v", err)
	}
	got := ComputeOverallProb(shoe, table)
	if !closeEnough(got, 0.00155, 5e-4) {
		t.Errorf("ComputeOverallProb = %v, want ~0.00155", got)
	}
}

func TestComputeAllHandEVBlackjackHand(t *testing.T) {
	shoe := GenerateShoe(1)
	table, err := ComputeAllHandEV(shoe, dealerprob.New())
	if err != nil {
		t.Fatalf("ComputeAllHandEV returned error: %v", err)
	}
	bj, ok := table[handOf(Ace, Ten)]
	if !ok {
		t.Fatal("hand {Ace,Ten} not found")
	}
	if bj.HasDouble() {
		t.Error("double should not be legal for a natural blackjack")
	}
	if bj.HasSplit() {
		t.Error("split should not be legal for {Ace,Ten}")
	}
	cache := NewDealerProbCache(dealerprob.New())
	for _, c := range shoe.RankIter() {
		rest, ok := shoe.Minus(handOf(Ace, Ten))
		if !ok {
			t.Fatal("could not remove {Ace,Ten} from shoe")
		}
		out, found := cache.Get(rest).Get(c)
		if !found {
			continue
		}
		want := 1.5 * (1 - out.PBJ)
		v, ok := bj.Stand.Get(c)
		if !ok || !closeEnough(v, want, 1e-9) {
			t.Errorf("stand[%s] = (%v,%v), want %v", c, v, ok, want)
		}
	}
}

func TestComputeAllHandEVNoAcesInShoe(t *testing.T) {
	shoe := GenerateShoe(1)
	noAces, ok := shoe.Minus(NewDeck(4))
	if !ok {
		t.Fatal("could not remove all aces from shoe")
	}
	table, err := ComputeAllHandEV(noAces, dealerprob.New())
	if err != nil {
		t.Fatalf("ComputeAllHandEV returned error: %v", err)
	}
	for hand, hev := range table {
		if hev.Stand.Has(Ace) {
			t.Fatalf("hand %v has a stand entry for Ace despite an ace-free shoe", hand)
		}
		if hev.HasHit() && hev.Hit.Has(Ace) {
			t.Fatalf("hand %v has a hit entry for Ace despite an ace-free shoe", hand)
		}
	}
}

func TestComputeAllHandEVEmptyShoe(t *testing.T) {
	if _, err := ComputeAllHandEV(NewDeck(), dealerprob.New()); err != ErrEmptyShoe {
		t.Errorf("ComputeAllHandEV(empty) err = %v, want ErrEmptyShoe", err)
	}
}

func TestComputeAllHandEVHard21HitsAlwaysLose(t *testing.T) {
	shoe := GenerateShoe(1)
	table, err := ComputeAllHandEV(shoe, dealerprob.New())
	if err != nil {
		t.Fatalf("ComputeAllHandEV returned error: %v", err)
	}
	hand, ok := table[handOf(Seven, Seven, Seven)]
	if !ok {
		t.Fatal("hand {7,7,7} (Hard 21) not found")
	}
	for _, c := range shoe.RankIter() {
		v, ok := hand.Hit.Get(c)
		if !ok || !closeEnough(v, -1, 1e-9) {
			t.Errorf("hit[%s] = (%v,%v), want -1", c, v, ok)
		}
	}
}
