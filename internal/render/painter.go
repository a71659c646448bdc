//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"islandgen/pkg/terrain"
)

// GridPainter keeps an ebiten image in sync with a generated grid.
type GridPainter struct {
	size, scale int
	img         *ebiten.Image
	buf         []byte
	pal         Palette
}

// NewGridPainter allocates a painter for a size x size grid drawn at scale
// pixels per cell.
func NewGridPainter(size, scale int, pal Palette) *GridPainter {
	side := size * scale
	gp := &GridPainter{size: size, scale: scale, buf: make([]byte, BufferSize(size, scale)), pal: pal}
	gp.img = ebiten.NewImage(side, side)
	return gp
}

// Update repaints the image from g. The grid must match the painter size.
func (gp *GridPainter) Update(g *terrain.Grid) error {
	if err := FillTerrainRGBA(gp.buf, g, gp.scale, gp.pal); err != nil {
		return err
	}
	gp.img.WritePixels(gp.buf)
	return nil
}

// Draw blits the painted grid onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image) {
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the grid size and scale the painter was built for.
func (gp *GridPainter) Size() (int, int) { return gp.size, gp.scale }
