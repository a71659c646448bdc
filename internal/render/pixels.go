// Package render turns generated grids into pixels and text.
package render

import (
	"fmt"
	"image"
	"image/color"

	"islandgen/pkg/terrain"
)

// BufferSize returns the RGBA byte count for a grid of the given size painted
// at scale pixels per cell.
func BufferSize(size, scale int) int {
	side := size * scale
	return 4 * side * side
}

// FillTerrainRGBA paints every cell of g as a scale x scale tile into buf.
// Grid y grows upward, so image row 0 shows y = size-1. Edge and corner tiles
// get a shore band on their water-facing sides.
func FillTerrainRGBA(buf []byte, g *terrain.Grid, scale int, pal Palette) error {
	size := g.Size()
	if size == 0 {
		return terrain.ErrUninitializedGrid
	}
	if scale <= 0 {
		return fmt.Errorf("render scale must be positive, got %d", scale)
	}
	if len(buf) != BufferSize(size, scale) {
		return fmt.Errorf("render buffer holds %d bytes, want %d", len(buf), BufferSize(size, scale))
	}

	stride := 4 * size * scale
	band := max(1, scale/4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			pl, err := terrain.PlacementAt(g, x, y)
			if err != nil {
				return err
			}
			fill := pal.Color(pl.Kind)
			shore := pal.Shore(pl.Kind)
			top := (size - 1 - y) * scale
			left := x * scale
			for py := 0; py < scale; py++ {
				row := (top+py)*stride + left*4
				for px := 0; px < scale; px++ {
					c := fill
					if shoreSide(pl, px, py, scale, band) {
						c = shore
					}
					putRGBA(buf[row+px*4:], c)
				}
			}
		}
	}
	return nil
}

// shoreSide reports whether local pixel (px, py) of a tile lies in the shore
// band. py = 0 is the top of the tile.
func shoreSide(pl terrain.Placement, px, py, scale, band int) bool {
	if !pl.Edge {
		return false
	}
	up := py < band
	leftSide := px < band
	down := py >= scale-band
	rightSide := px >= scale-band

	if pl.Corner {
		switch pl.Rotation {
		case 0:
			return up || leftSide
		case 90:
			return leftSide || down
		case 180:
			return down || rightSide
		default:
			return rightSide || up
		}
	}
	switch pl.Rotation {
	case 0:
		return up
	case 90:
		return leftSide
	case 180:
		return down
	default:
		return rightSide
	}
}

func putRGBA(dst []byte, c color.RGBA) {
	dst[0] = c.R
	dst[1] = c.G
	dst[2] = c.B
	dst[3] = c.A
}

// Image renders g into a new RGBA image.
func Image(g *terrain.Grid, scale int, pal Palette) (*image.RGBA, error) {
	side := g.Size() * scale
	if side <= 0 {
		if g.Size() == 0 {
			return nil, terrain.ErrUninitializedGrid
		}
		return nil, fmt.Errorf("render scale must be positive, got %d", scale)
	}
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	if err := FillTerrainRGBA(img.Pix, g, scale, pal); err != nil {
		return nil, err
	}
	return img, nil
}
