package core

// Grid stores a square-or-rectangular 2D array of values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions. Non-positive dimensions
// produce an empty grid.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 || h <= 0 {
		return &Grid[T]{}
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a slot of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y) and false when the coordinates are outside
// the grid.
func (g *Grid[T]) At(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.data[g.Index(x, y)], true
}

// Set stores v at (x, y). Out-of-range writes are ignored.
func (g *Grid[T]) Set(x, y int, v T) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[g.Index(x, y)] = v
}
