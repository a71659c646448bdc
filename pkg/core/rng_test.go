package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(99).Seeds(16, 1000)
	b := NewRNG(99).Seeds(16, 1000)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seed %d differs: %d != %d", i, a[i], b[i])
		}
		if a[i] < 0 || a[i] > 1000 {
			t.Fatalf("seed %d out of range: %d", i, a[i])
		}
	}
}

func TestRNGDegenerate(t *testing.T) {
	r := NewRNG(1)
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d", got)
	}
	if got := r.Seeds(0, 10); got != nil {
		t.Fatalf("Seeds(0) = %v", got)
	}
}
