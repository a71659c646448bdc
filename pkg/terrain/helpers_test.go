package terrain

import "testing"

// gridFromRows builds a grid from rows listed top (y = size-1) first. 'w'
// marks water, anything else grass.
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	size := len(rows)
	p := DefaultParams()
	p.GridSize = size
	g := newGrid(p)
	for r, row := range rows {
		if len(row) != size {
			t.Fatalf("row %d has length %d, want %d", r, len(row), size)
		}
		y := size - 1 - r
		for x := 0; x < size; x++ {
			n := p.WaterLevel + 0.15
			if row[x] == 'w' {
				n = 0
			}
			g.cells.Set(x, y, NewCell(x, y, n, p.WaterLevel))
		}
	}
	return g
}
