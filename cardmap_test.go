package blackjackev

import "testing"

func TestCardMapGetSet(t *testing.T) {
	var m CardMap[float64]
	if _, ok := m.Get(Ace); ok {
		t.Fatal("Get on empty CardMap returned ok=true")
	}
	m.Set(Ace, 1.5)
	v, ok := m.Get(Ace)
	if !ok || v != 1.5 {
		t.Fatalf("Get(Ace) = (%v, %v), want (1.5, true)", v, ok)
	}
	if !m.Has(Ace) {
		t.Error("Has(Ace) = false, want true")
	}
	if m.Has(Two) {
		t.Error("Has(Two) = true, want false")
	}
}

func TestCardMapDefined(t *testing.T) {
	var m CardMap[float64]
	if m.Defined() {
		t.Error("Defined() on empty map = true, want false")
	}
	m.Set(Five, 0)
	if !m.Defined() {
		t.Error("Defined() after Set = false, want true")
	}
}

func TestAddFloat64(t *testing.T) {
	var a, b CardMap[float64]
	a.Set(Ace, 1)
	a.Set(Two, 2)
	b.Set(Two, 3)
	b.Set(Three, 4)
	sum := AddFloat64(a, b)
	if v, ok := sum.Get(Ace); !ok || v != 1 {
		t.Errorf("sum[Ace] = (%v,%v), want (1,true)", v, ok)
	}
	if v, ok := sum.Get(Two); !ok || v != 5 {
		t.Errorf("sum[Two] = (%v,%v), want (5,true)", v, ok)
	}
	if v, ok := sum.Get(Three); !ok || v != 4 {
		t.Errorf("sum[Three] = (%v,%v), want (4,true)", v, ok)
	}
}

func TestMaxFloat64(t *testing.T) {
	var a, b CardMap[float64]
	a.Set(Ace, 0.5)
	b.Set(Ace, 0.9)
	b.Set(Two, 0.1)
	if got := MaxFloat64(Ace, a, b); got != 0.9 {
		t.Errorf("MaxFloat64(Ace) = %v, want 0.9", got)
	}
	if got := MaxFloat64(Three, a, b); got != negInf {
		t.Errorf("MaxFloat64(Three) = %v, want -Inf", got)
	}
}
