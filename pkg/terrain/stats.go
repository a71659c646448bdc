package terrain

// Summary aggregates a grid.
type Summary struct {
	Counts  [KindCount]int
	Land    int
	Water   int
	Edges   int
	Corners int
}

// Total is the number of cells summarized.
func (s Summary) Total() int { return s.Land + s.Water }

// LandFraction is the share of non-water cells in [0, 1].
func (s Summary) LandFraction() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Land) / float64(s.Total())
}

// Summarize counts kinds, land, edges and corners. An ungenerated grid yields
// the zero Summary.
func Summarize(g *Grid) Summary {
	var s Summary
	if g.ready() != nil {
		return s
	}
	size := g.cells.W
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c, _ := g.cells.At(x, y)
			s.Counts[c.Kind]++
			if c.IsWater {
				s.Water++
				continue
			}
			s.Land++
			if g.landEdge(x, y) {
				s.Edges++
				if g.landCorner(x, y) {
					s.Corners++
				}
			}
		}
	}
	return s
}
