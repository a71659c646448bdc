package terrain

// Orthogonal neighbor offsets. "Top" is +y.
var (
	top    = [2]int{0, 1}
	bottom = [2]int{0, -1}
	left   = [2]int{-1, 0}
	right  = [2]int{1, 0}
)

var orthogonal = [4][2]int{top, right, bottom, left}

// Neighborhood is the 3x3 block around a cell, indexed [dx+1][dy+1]. Entries
// outside the grid are nil.
type Neighborhood [3][3]*Cell

func (g *Grid) checkQuery(x, y int) error {
	if err := g.ready(); err != nil {
		return err
	}
	if !g.cells.InBounds(x, y) {
		return outOfBounds(x, y, g.cells.W)
	}
	return nil
}

func (g *Grid) waterAt(x, y int, dir [2]int) bool {
	return g.isWater(x+dir[0], y+dir[1])
}

func (g *Grid) waterNeighbors(x, y int) int {
	n := 0
	for _, d := range orthogonal {
		if g.waterAt(x, y, d) {
			n++
		}
	}
	return n
}

// IsLandEdge reports whether the land cell at (x, y) touches water on at
// least one orthogonal side. Sides outside the grid never count as water.
func IsLandEdge(g *Grid, x, y int) (bool, error) {
	if err := g.checkQuery(x, y); err != nil {
		return false, err
	}
	return g.landEdge(x, y), nil
}

func (g *Grid) landEdge(x, y int) bool {
	if g.isWater(x, y) {
		return false
	}
	return g.waterNeighbors(x, y) > 0
}

// IsLandCorner reports whether (x, y) is a land edge with water on at least
// two orthogonal sides.
func IsLandCorner(g *Grid, x, y int) (bool, error) {
	if err := g.checkQuery(x, y); err != nil {
		return false, err
	}
	return g.landCorner(x, y), nil
}

func (g *Grid) landCorner(x, y int) bool {
	return g.landEdge(x, y) && g.waterNeighbors(x, y) >= 2
}

// CornerRotation picks the corner tile angle from the pairs of water sides.
// Pairs are checked top+left (0), left+bottom (90), bottom+right (180),
// right+top (270); the last matching pair wins. No match yields 0.
func CornerRotation(g *Grid, x, y int) (int, error) {
	if err := g.checkQuery(x, y); err != nil {
		return 0, err
	}
	return g.cornerRotation(x, y), nil
}

func (g *Grid) cornerRotation(x, y int) int {
	t := g.waterAt(x, y, top)
	b := g.waterAt(x, y, bottom)
	l := g.waterAt(x, y, left)
	r := g.waterAt(x, y, right)

	rotation := 0
	if l && t {
		rotation = 0
	}
	if l && b {
		rotation = 90
	}
	if r && b {
		rotation = 180
	}
	if r && t {
		rotation = 270
	}
	return rotation
}

// EdgeRotation picks the edge tile angle from the single water side: top (0),
// left (90), bottom (180), right (270); the last match wins. No match yields 0.
func EdgeRotation(g *Grid, x, y int) (int, error) {
	if err := g.checkQuery(x, y); err != nil {
		return 0, err
	}
	return g.edgeRotation(x, y), nil
}

func (g *Grid) edgeRotation(x, y int) int {
	rotation := 0
	if g.waterAt(x, y, top) {
		rotation = 0
	}
	if g.waterAt(x, y, left) {
		rotation = 90
	}
	if g.waterAt(x, y, bottom) {
		rotation = 180
	}
	if g.waterAt(x, y, right) {
		rotation = 270
	}
	return rotation
}

// Neighbors3x3 returns copies of the cell at (x, y) and its eight neighbors.
func Neighbors3x3(g *Grid, x, y int) (Neighborhood, error) {
	var n Neighborhood
	if err := g.checkQuery(x, y); err != nil {
		return n, err
	}
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			c, ok := g.cells.At(x+i, y+j)
			if !ok {
				continue
			}
			n[i+1][j+1] = &c
		}
	}
	return n, nil
}
