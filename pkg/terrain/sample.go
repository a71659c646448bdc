package terrain

import (
	"math"

	"islandgen/pkg/noise"
)

// primitiveSeed seeds every noise primitive. Variation between seeds comes
// from the origin offset only.
const primitiveSeed = 0

// Sampler evaluates fractal noise for one set of parameters. It is safe for
// concurrent use.
type Sampler struct {
	src    noise.Source
	params Params
	ox, oy float64
}

// NewSampler builds a sampler for p.
func NewSampler(p Params) (*Sampler, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	src, err := noise.New(p.Noise, primitiveSeed)
	if err != nil {
		return nil, &ConfigError{Field: "noise", Reason: err.Error()}
	}
	ox, oy := Origin(p.Seed)
	return &Sampler{src: src, params: p, ox: ox, oy: oy}, nil
}

// Origin maps a seed to its offset into noise space. Both axes share the value.
func Origin(seed int) (float64, float64) {
	o := math.Sqrt(float64(seed))
	return o, o
}

// Sample sums NoiseOctaves layers of noise at (x, y). Each octave halves the
// noise scale and the weight of the previous one. The result is not
// normalized.
func (s *Sampler) Sample(x, y int) float64 {
	p := s.params
	size := float64(p.GridSize)
	freq := p.NoiseScale
	divisor := 1.0
	sum := 0.0
	for o := 0; o < p.NoiseOctaves; o++ {
		sx := float64(x)/(freq*size) + s.ox
		sy := float64(y)/(freq*size) - s.oy
		sum += noise.Unit(s.src.Eval2(sx, sy)) / divisor

		freq /= 2
		divisor *= 2
	}
	return sum
}

// Shaped returns the noise at (x, y) with the island falloff subtracted.
func (s *Sampler) Shaped(x, y int) float64 {
	p := s.params
	return s.Sample(x, y) - Falloff(float64(x), float64(y), p.GridSize, p.IslandSize)
}

// Sample is a one-shot form of Sampler.Sample.
func Sample(x, y int, p Params) (float64, error) {
	s, err := NewSampler(p)
	if err != nil {
		return 0, err
	}
	return s.Sample(x, y), nil
}
