package terrain

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func smallParams() Params {
	p := DefaultParams()
	p.GridSize = 48
	return p
}

func TestGenerateDeterministic(t *testing.T) {
	for _, primitive := range []string{"simplex", "perlin"} {
		p := smallParams()
		p.Noise = primitive
		a, err := Generate(p)
		if err != nil {
			t.Fatalf("Generate(%s): %v", primitive, err)
		}
		b, err := Generate(p)
		if err != nil {
			t.Fatalf("Generate(%s): %v", primitive, err)
		}
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("%s: two generations with the same parameters differ", primitive)
		}
	}
}

func TestGenerateParallelMatchesSequential(t *testing.T) {
	p := smallParams()
	seq, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	par, err := NewGenerator(4, nil).Generate(p)
	if err != nil {
		t.Fatalf("Generator.Generate: %v", err)
	}
	if !slices.Equal(seq.Cells(), par.Cells()) {
		t.Fatal("parallel generation differs from sequential")
	}
}

func TestGeneratedCellsCoherent(t *testing.T) {
	g, err := Generate(smallParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	size := g.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c, err := g.CellAt(x, y)
			if err != nil {
				t.Fatalf("CellAt(%d, %d): %v", x, y, err)
			}
			if c.Position.X != x || c.Position.Y != y {
				t.Fatalf("cell at (%d,%d) has position %+v", x, y, c.Position)
			}
			if c.IsWater != (c.Kind == Water) {
				t.Fatalf("cell (%d,%d) isWater=%v kind=%v", x, y, c.IsWater, c.Kind)
			}
		}
	}
}

// The border ring is water for default parameters on a 64-cell grid. Tiny
// grids are not covered: there the falloff can lose to the noise.
func TestGenerateBorderIsWater(t *testing.T) {
	for _, seed := range []int{0, 1, 42, 12345} {
		p := DefaultParams()
		p.GridSize = 64
		p.Seed = seed
		g, err := Generate(p)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		last := p.GridSize - 1
		for i := 0; i < p.GridSize; i++ {
			for _, pt := range [][2]int{{0, i}, {i, 0}, {last, i}, {i, last}} {
				c, _ := g.CellAt(pt[0], pt[1])
				if !c.IsWater {
					t.Fatalf("seed %d: border cell %v is %v", seed, pt, c.Kind)
				}
			}
		}
	}
}

func TestGenerateProducesLand(t *testing.T) {
	for _, seed := range []int{1, 2, 3, 42} {
		p := DefaultParams()
		p.Seed = seed
		g, err := Generate(p)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if Summarize(g).Land > 0 {
			return
		}
	}
	t.Fatal("no seed produced any land")
}

func TestGenerateInvalidConfiguration(t *testing.T) {
	cases := []struct {
		name  string
		field string
		mut   func(*Params)
	}{
		{"zero grid", "grid_size", func(p *Params) { p.GridSize = 0 }},
		{"negative grid", "grid_size", func(p *Params) { p.GridSize = -3 }},
		{"zero island", "island_size", func(p *Params) { p.IslandSize = 0 }},
		{"negative island", "island_size", func(p *Params) { p.IslandSize = -20 }},
		{"zero octaves", "noise_octaves", func(p *Params) { p.NoiseOctaves = 0 }},
		{"zero scale", "noise_scale", func(p *Params) { p.NoiseScale = 0 }},
		{"negative seed", "seed", func(p *Params) { p.Seed = -1 }},
		{"unknown noise", "noise", func(p *Params) { p.Noise = "value" }},
	}
	for _, tc := range cases {
		p := DefaultParams()
		tc.mut(&p)
		g, err := Generate(p)
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("%s: err = %v, want ErrInvalidConfiguration", tc.name, err)
		}
		if g != nil {
			t.Fatalf("%s: returned a grid alongside the error", tc.name)
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) || cfgErr.Field != tc.field {
			t.Fatalf("%s: err = %v, want field %q", tc.name, err, tc.field)
		}
	}
}

func TestGeneratorLifecycle(t *testing.T) {
	gen := NewGenerator(1, nil)
	if _, err := gen.Grid(); !errors.Is(err, ErrUninitializedGrid) {
		t.Fatalf("Grid before generation err = %v", err)
	}
	if _, err := gen.Regenerate(); !errors.Is(err, ErrUninitializedGrid) {
		t.Fatalf("Regenerate before generation err = %v", err)
	}
	if _, err := gen.Params(); !errors.Is(err, ErrUninitializedGrid) {
		t.Fatalf("Params before generation err = %v", err)
	}

	p := smallParams()
	first, err := gen.Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	bad := p
	bad.GridSize = 0
	if _, err := gen.Generate(bad); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("Generate(bad) err = %v", err)
	}
	current, err := gen.Grid()
	if err != nil || current != first {
		t.Fatalf("rejected generation replaced the current grid (err=%v)", err)
	}

	again, err := gen.Regenerate()
	if err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	if again == first {
		t.Fatal("Regenerate must build a new grid")
	}
	if !slices.Equal(first.Cells(), again.Cells()) {
		t.Fatal("Regenerate with unchanged parameters produced a different grid")
	}
	if got, _ := gen.Params(); got != p {
		t.Fatalf("Params() = %+v, want %+v", got, p)
	}
}

func TestGridQueries(t *testing.T) {
	g, err := Generate(smallParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !g.IsInGrid(0, 0) || !g.IsInGrid(47, 47) {
		t.Fatal("corners must be in grid")
	}
	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {48, 0}, {0, 48}} {
		if g.IsInGrid(pt[0], pt[1]) {
			t.Fatalf("IsInGrid%v = true", pt)
		}
		if _, err := g.CellAt(pt[0], pt[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("CellAt%v err = %v, want ErrOutOfBounds", pt, err)
		}
	}

	var empty *Grid
	if _, err := empty.CellAt(0, 0); !errors.Is(err, ErrUninitializedGrid) {
		t.Fatalf("CellAt on nil grid err = %v", err)
	}
	if empty.IsInGrid(0, 0) || empty.Size() != 0 || empty.Cells() != nil {
		t.Fatal("nil grid must report no cells")
	}
}

func TestBuildConcurrentRowsComplete(t *testing.T) {
	p := smallParams()
	s, err := NewSampler(p)
	if err != nil {
		t.Fatalf("NewSampler: %v", err)
	}
	seq, err := build(s, p, 1)
	if err != nil {
		t.Fatalf("build sequential: %v", err)
	}
	par, err := build(s, p, 4)
	if err != nil {
		t.Fatalf("build concurrent: %v", err)
	}
	want, got := seq.Cells(), par.Cells()
	if len(got) != p.GridSize*p.GridSize {
		t.Fatalf("concurrent build has %d cells, want %d", len(got), p.GridSize*p.GridSize)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cell %d differs: %+v != %+v", i, got[i], want[i])
		}
	}
}

func TestGenerateTinyGridFinite(t *testing.T) {
	p := DefaultParams()
	p.GridSize = 3
	g, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// The clamp keeps every falloff finite; it does not force water.
	for _, c := range g.Cells() {
		if math.IsNaN(c.NoiseValue) || math.IsInf(c.NoiseValue, 0) {
			t.Fatalf("cell %+v has a non-finite noise value", c.Position)
		}
	}
}
