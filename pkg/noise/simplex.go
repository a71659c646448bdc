package noise

import opensimplex "github.com/ojrac/opensimplex-go"

// Simplex wraps OpenSimplex noise.
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex returns a simplex primitive seeded with seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.New(seed)}
}

// Eval2 samples the field at (x, y).
func (s *Simplex) Eval2(x, y float64) float64 { return s.n.Eval2(x, y) }

func init() {
	Register("simplex", func(seed int64) Source { return NewSimplex(seed) })
}
