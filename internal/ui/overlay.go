//go:build ebiten

package ui

import (
	"image/color"

	"islandgen/pkg/terrain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging markers on top of the island view.
type Overlay struct {
	scale       int
	showEdges   bool
	showCorners bool

	pixel *ebiten.Image

	cached  *terrain.Grid
	edges   []marker
	corners []marker
}

type marker struct {
	x, y     int
	rotation int
}

var (
	edgeColor   = color.RGBA{R: 250, G: 220, B: 60, A: 255}
	cornerColor = color.RGBA{R: 230, G: 60, B: 60, A: 255}
)

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the marker layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showEdges = !o.showEdges
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showCorners = !o.showCorners
	}
}

// Draw renders the enabled markers for grid.
func (o *Overlay) Draw(screen *ebiten.Image, grid *terrain.Grid) {
	if !o.showEdges && !o.showCorners {
		return
	}
	o.collect(grid)
	size := grid.Size()
	if o.showEdges {
		for _, m := range o.edges {
			o.drawMarker(screen, m, size, edgeColor)
		}
	}
	if o.showCorners {
		for _, m := range o.corners {
			o.drawMarker(screen, m, size, cornerColor)
		}
	}
}

func (o *Overlay) collect(grid *terrain.Grid) {
	if grid == o.cached {
		return
	}
	o.cached = grid
	o.edges = o.edges[:0]
	o.corners = o.corners[:0]
	size := grid.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			pl, err := terrain.PlacementAt(grid, x, y)
			if err != nil {
				continue
			}
			m := marker{x: x, y: y, rotation: pl.Rotation}
			switch {
			case pl.Corner:
				o.corners = append(o.corners, m)
			case pl.Edge:
				o.edges = append(o.edges, m)
			}
		}
	}
}

// drawMarker paints a square in the middle of the tile, nudged toward the
// water side named by the rotation.
func (o *Overlay) drawMarker(screen *ebiten.Image, m marker, size int, clr color.Color) {
	side := max(1, o.scale/3)
	px := float64(m.x*o.scale + (o.scale-side)/2)
	py := float64((size-1-m.y)*o.scale + (o.scale-side)/2)
	shift := float64(o.scale-side) / 2
	switch m.rotation {
	case 0:
		py -= shift
	case 90:
		px -= shift
	case 180:
		py += shift
	case 270:
		px += shift
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(side), float64(side))
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(o.pixel, op)
}
