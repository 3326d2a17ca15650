package function

import "fmt"

// Point is a single (x, y) sample. Engines copy points on the way in and out.
type Point struct {
	X float64
	Y float64
}

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
