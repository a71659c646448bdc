package noise

import perlin "github.com/aquilax/go-perlin"

const (
	perlinAlpha = 2
	perlinBeta  = 2
)

// Perlin wraps classic gradient noise with a single octave; octaves are
// layered by the caller.
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin returns a perlin primitive seeded with seed.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(perlinAlpha, perlinBeta, 1, seed)}
}

// Eval2 samples the field at (x, y).
func (p *Perlin) Eval2(x, y float64) float64 { return p.p.Noise2D(x, y) }

func init() {
	Register("perlin", func(seed int64) Source { return NewPerlin(seed) })
}
