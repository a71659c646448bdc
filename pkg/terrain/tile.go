package terrain

// layerStacks lists, bottom to top, the tiles drawn for each kind. Water is
// always underneath; each land kind sits on the kind below it.
var layerStacks = [KindCount][]Kind{
	Water:    {Water},
	Sand:     {Water, Sand},
	Grass:    {Water, Sand, Grass},
	Forest:   {Water, Grass, Forest},
	Mountain: {Water, Forest, Mountain},
}

// Layers returns the tile stack for k, bottom first.
func Layers(k Kind) []Kind {
	if int(k) >= KindCount {
		return nil
	}
	return append([]Kind(nil), layerStacks[k]...)
}

// Placement selects and orients the tile drawn at one cell.
type Placement struct {
	Kind     Kind
	Layers   []Kind
	Edge     bool
	Corner   bool
	Rotation int
}

// PlacementAt resolves the tile for (x, y). Corners use CornerRotation, plain
// edges use EdgeRotation and everything else is unrotated.
func PlacementAt(g *Grid, x, y int) (Placement, error) {
	c, err := g.CellAt(x, y)
	if err != nil {
		return Placement{}, err
	}
	pl := Placement{
		Kind:   c.Kind,
		Layers: Layers(c.Kind),
		Edge:   g.landEdge(x, y),
		Corner: g.landCorner(x, y),
	}
	switch {
	case pl.Corner:
		pl.Rotation = g.cornerRotation(x, y)
	case pl.Edge:
		pl.Rotation = g.edgeRotation(x, y)
	}
	return pl, nil
}
