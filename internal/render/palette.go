package render

import (
	"image/color"

	"islandgen/pkg/terrain"
)

// Palette maps terrain kinds to tile colors.
type Palette struct {
	Kinds [terrain.KindCount]color.RGBA
	// ShoreWeight is how much of the underlying layer shows through on the
	// water-facing side of edge and corner tiles.
	ShoreWeight float64
}

// DefaultPalette returns the standard island colors.
func DefaultPalette() Palette {
	return Palette{
		Kinds: [terrain.KindCount]color.RGBA{
			terrain.Water:    {R: 38, G: 92, B: 160, A: 255},
			terrain.Sand:     {R: 222, G: 204, B: 140, A: 255},
			terrain.Grass:    {R: 86, G: 160, B: 72, A: 255},
			terrain.Forest:   {R: 40, G: 100, B: 55, A: 255},
			terrain.Mountain: {R: 140, G: 134, B: 128, A: 255},
		},
		ShoreWeight: 0.6,
	}
}

// Color returns the tile color for k.
func (p Palette) Color(k terrain.Kind) color.RGBA {
	if int(k) >= terrain.KindCount {
		return color.RGBA{}
	}
	return p.Kinds[k]
}

// Shore returns the color drawn on the water side of a k tile: the top layer
// blended with the layer beneath it.
func (p Palette) Shore(k terrain.Kind) color.RGBA {
	layers := terrain.Layers(k)
	if len(layers) < 2 {
		return p.Color(k)
	}
	under := layers[len(layers)-2]
	return blendColors(p.Color(k), p.Color(under), p.ShoreWeight)
}

func blendColors(base, overlay color.RGBA, overlayWeight float64) color.RGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.RGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}
