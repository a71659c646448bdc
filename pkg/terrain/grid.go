package terrain

import "islandgen/internal/core"

// Grid owns a fully generated GridSize x GridSize array of cells.
type Grid struct {
	cells  *core.Grid[Cell]
	params Params
}

func newGrid(p Params) *Grid {
	return &Grid{cells: core.NewGrid[Cell](p.GridSize, p.GridSize), params: p}
}

func (g *Grid) ready() error {
	if g == nil || g.cells == nil || g.cells.W == 0 {
		return ErrUninitializedGrid
	}
	return nil
}

// Size returns the edge length of the grid, or 0 for an ungenerated grid.
func (g *Grid) Size() int {
	if g.ready() != nil {
		return 0
	}
	return g.cells.W
}

// Params returns the parameters the grid was generated with.
func (g *Grid) Params() Params {
	if g == nil {
		return Params{}
	}
	return g.params
}

// IsInGrid reports whether 0 <= x,y < Size().
func (g *Grid) IsInGrid(x, y int) bool {
	if g.ready() != nil {
		return false
	}
	return g.cells.InBounds(x, y)
}

// CellAt returns a copy of the cell at (x, y).
func (g *Grid) CellAt(x, y int) (Cell, error) {
	if err := g.ready(); err != nil {
		return Cell{}, err
	}
	c, ok := g.cells.At(x, y)
	if !ok {
		return Cell{}, outOfBounds(x, y, g.cells.W)
	}
	return c, nil
}

// Cells returns a copy of all cells in row-major order (index y*Size()+x).
func (g *Grid) Cells() []Cell {
	if g.ready() != nil {
		return nil
	}
	return append([]Cell(nil), g.cells.Cells()...)
}

// isWater treats positions outside the grid as land.
func (g *Grid) isWater(x, y int) bool {
	c, ok := g.cells.At(x, y)
	return ok && c.IsWater
}
