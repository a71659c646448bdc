package render

import (
	"bufio"
	"io"

	"islandgen/pkg/terrain"
)

var glyphs = [terrain.KindCount]byte{
	terrain.Water:    '~',
	terrain.Sand:     '.',
	terrain.Grass:    ',',
	terrain.Forest:   '&',
	terrain.Mountain: '^',
}

// Glyph returns the character used for k.
func Glyph(k terrain.Kind) byte {
	if int(k) >= terrain.KindCount {
		return '?'
	}
	return glyphs[k]
}

// WriteASCII prints one line per row, top row (y = size-1) first.
func WriteASCII(w io.Writer, g *terrain.Grid) error {
	size := g.Size()
	if size == 0 {
		return terrain.ErrUninitializedGrid
	}
	bw := bufio.NewWriter(w)
	line := make([]byte, size+1)
	line[size] = '\n'
	for y := size - 1; y >= 0; y-- {
		for x := 0; x < size; x++ {
			c, err := g.CellAt(x, y)
			if err != nil {
				return err
			}
			line[x] = Glyph(c.Kind)
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
