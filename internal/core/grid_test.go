package core

import "testing"

func TestGridAtAndSet(t *testing.T) {
	g := NewGrid[int](3, 2)
	g.Set(2, 1, 7)
	g.Set(3, 0, 9)
	g.Set(-1, 0, 9)

	if v, ok := g.At(2, 1); !ok || v != 7 {
		t.Fatalf("At(2,1) = %d,%v", v, ok)
	}
	if _, ok := g.At(0, 2); ok {
		t.Fatal("At(0,2) must be out of range")
	}
	sum := 0
	for _, v := range g.Cells() {
		sum += v
	}
	if sum != 7 {
		t.Fatalf("out-of-range writes leaked: sum %d", sum)
	}
}

func TestNewGridEmpty(t *testing.T) {
	g := NewGrid[byte](0, 4)
	if g.W != 0 || g.H != 0 || len(g.Cells()) != 0 {
		t.Fatalf("expected empty grid, got %dx%d", g.W, g.H)
	}
	if g.InBounds(0, 0) {
		t.Fatal("empty grid has no slots")
	}
}
