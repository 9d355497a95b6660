package common

import "testing"

func TestRing(t *testing.T) {
	r := NewRing[int](3)
	for i := 1; i <= 5; i++ {
		r.Push(i)
	}
	if !r.Full() || r.Len() != 3 {
		t.Fatalf("expected full ring of 3, got len %d", r.Len())
	}
	for i, want := range []int{3, 4, 5} {
		if got := r.At(i); got != want {
			t.Errorf("At(%d) = %d, want %d", i, got, want)
		}
	}
	r.Reset()
	if r.Len() != 0 || r.Full() {
		t.Error("Reset left elements behind")
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "title", "other"); got != "title" {
		t.Errorf("Coalesce = %q, want title", got)
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Errorf("Coalesce of zeros = %d", got)
	}
}
