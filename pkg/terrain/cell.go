package terrain

import "islandgen/internal/core"

// Cell is the generated state of one grid tile. Cells are immutable once the
// grid holding them has been returned.
type Cell struct {
	Position   core.Point
	NoiseValue float64
	WaterLevel float64
	IsWater    bool
	Kind       Kind
}

// NewCell classifies noiseValue against waterLevel.
func NewCell(x, y int, noiseValue, waterLevel float64) Cell {
	isWater, kind := Classify(noiseValue, waterLevel)
	return Cell{
		Position:   core.Point{X: x, Y: y},
		NoiseValue: noiseValue,
		WaterLevel: waterLevel,
		IsWater:    isWater,
		Kind:       kind,
	}
}
