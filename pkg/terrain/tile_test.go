package terrain

import (
	"slices"
	"testing"
)

func TestLayers(t *testing.T) {
	cases := map[Kind][]Kind{
		Water:    {Water},
		Sand:     {Water, Sand},
		Grass:    {Water, Sand, Grass},
		Forest:   {Water, Grass, Forest},
		Mountain: {Water, Forest, Mountain},
	}
	for k, want := range cases {
		if got := Layers(k); !slices.Equal(got, want) {
			t.Errorf("Layers(%v) = %v, want %v", k, got, want)
		}
	}
	l := Layers(Grass)
	l[0] = Mountain
	if Layers(Grass)[0] != Water {
		t.Fatal("Layers must return a copy")
	}
	if Layers(Kind(7)) != nil {
		t.Fatal("unknown kind must have no layers")
	}
}

func TestPlacementAt(t *testing.T) {
	g := gridFromRows(t,
		"wwww",
		"wllw",
		"wllw",
		"llll",
	)
	cases := []struct {
		x, y   int
		edge   bool
		corner bool
		rot    int
	}{
		{1, 2, true, true, 0},    // water above and left
		{2, 2, true, true, 270},  // water above and right
		{1, 1, true, false, 90},  // water left only
		{2, 1, true, false, 270}, // water right only
		{1, 0, false, false, 0},
		{0, 0, true, false, 0}, // water above
	}
	for _, tc := range cases {
		pl, err := PlacementAt(g, tc.x, tc.y)
		if err != nil {
			t.Fatalf("PlacementAt(%d,%d): %v", tc.x, tc.y, err)
		}
		if pl.Edge != tc.edge || pl.Corner != tc.corner || pl.Rotation != tc.rot {
			t.Errorf("PlacementAt(%d,%d) = %+v, want edge=%v corner=%v rot=%d", tc.x, tc.y, pl, tc.edge, tc.corner, tc.rot)
		}
		if pl.Kind != Grass || !slices.Equal(pl.Layers, Layers(Grass)) {
			t.Errorf("PlacementAt(%d,%d) kind/layers = %v %v", tc.x, tc.y, pl.Kind, pl.Layers)
		}
	}

	pl, _ := PlacementAt(g, 0, 3)
	if pl.Kind != Water || pl.Edge || pl.Rotation != 0 {
		t.Fatalf("water placement = %+v", pl)
	}
}
