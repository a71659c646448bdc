package core

// Point is an integer grid coordinate.
type Point struct {
	X int
	Y int
}
