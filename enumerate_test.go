package blackjackev

import "testing"

func TestEnumerateHandsIncludesSingletons(t *testing.T) {
	shoe := NewDeck(1, 1) // one Ace, one Two
	table := enumerateHands(shoe)
	single := handOf(Ace)
	if _, ok := table[single]; !ok {
		t.Error("singleton {Ace} hand was not recorded")
	}
	pair := handOf(Ace, Two)
	if _, ok := table[pair]; !ok {
		t.Error("{Ace,Two} hand was not recorded")
	}
}

func TestEnumerateHandsExcludesBusted(t *testing.T) {
	shoe := NewDeck(0, 0, 0, 0, 0, 0, 0, 0, 0, 3) // three Tens
	table := enumerateHands(shoe)
	busted := handOf(Ten, Ten, Ten)
	if _, ok := table[busted]; ok {
		t.Error("busted {Ten,Ten,Ten} hand should not be recorded")
	}
	if _, ok := table[handOf(Ten, Ten)]; !ok {
		t.Error("{Ten,Ten} hand should be recorded")
	}
}

func TestEnumerateHandsStopsAtHard21(t *testing.T) {
	shoe := NewDeck(1, 0, 0, 0, 0, 0, 0, 0, 0, 3) // one Ace, three Tens
	table := enumerateHands(shoe)
	twentyOne := handOf(Ace, Ten, Ten)
	ev, ok := table[twentyOne]
	if !ok {
		t.Fatal("{Ace,Ten,Ten} not recorded")
	}
	if !ev.Value.Equal(Hard(21)) {
		t.Fatalf("got value %s, want Hard 21", ev.Value)
	}
	// A hand that reaches exactly Hard(21) must never be extended further.
	extended := handOf(Ace, Ten, Ten, Ten)
	if _, ok := table[extended]; ok {
		t.Error("Hard(21) hand was illegally extended")
	}
}

func TestOrderForProcessingIsDependencyOrder(t *testing.T) {
	shoe := GenerateShoe(1)
	table := enumerateHands(shoe)
	order := orderForProcessing(table)
	position := make(map[Hand]int, len(order))
	for i, ev := range order {
		position[ev.Hand] = i
	}
	for hand, ev := range table {
		for c := Ace; c <= Ten; c++ {
			next := hand.PlusCard(c)
			if next.Total() == hand.Total()+1 && next == hand {
				continue // defensive, cannot happen
			}
			succ, ok := table[next]
			if !ok {
				continue
			}
			if position[succ.Hand] >= position[ev.Hand] {
				t.Fatalf("successor %v (value %s) processed at or after %v (value %s)",
					succ.Hand, succ.Value, hand, ev.Value)
			}
		}
	}
}
