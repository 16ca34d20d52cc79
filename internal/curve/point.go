// Package curve samples periodic trigonometric functions in polar form and
// turns the sampled curves into discrete 8-connected skeletons on an integer
// grid. It is the lowest layer of the geometry engine: real-valued curves come
// out of Eval, grid skeletons come out of Scale/Merge/Interpolate, and
// everything downstream (area extraction, occlusion) operates on the grid.
package curve

import "github.com/chewxy/math32"

// Point is a real-valued 2D coordinate. Shape curves live in [-1, 1] on both
// axes before scaling to the grid.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Angle returns the polar angle of the point in radians, in (-pi, pi].
func (p Point) Angle() float32 {
	return math32.Atan2(p.Y, p.X)
}

// Rotate returns the point rotated about the origin by angle radians.
func (p Point) Rotate(angle float32) Point {
	sin, cos := math32.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// fromPolar converts polar coordinates to a cartesian Point.
func fromPolar(radius, theta float32) Point {
	sin, cos := math32.Sincos(theta)
	return Point{X: radius * cos, Y: radius * sin}
}

// GridPoint is a point on the integer working grid. All geometry after
// scaling lives on this grid; coordinates stay within int16 range.
type GridPoint struct {
	X, Y int16
}

// GridPt is a convenience function to create a GridPoint.
func GridPt(x, y int16) GridPoint {
	return GridPoint{X: x, Y: y}
}
