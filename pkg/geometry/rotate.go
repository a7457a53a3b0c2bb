package geometry

import "math"

// Rotate rotates point around origin by angle degrees, counter-clockwise
// for positive angles. The angle is converted to radians internally; all
// public APIs in this module take degrees.
//
// Non-finite inputs are not validated and propagate through the
// arithmetic.
func Rotate(point, origin Point, degrees float64) Point {
	theta := degrees * math.Pi / 180
	sin, cos := math.Sincos(theta)
	dx := point.X - origin.X
	dy := point.Y - origin.Y
	return Point{
		X: dx*cos - dy*sin + origin.X,
		Y: dx*sin + dy*cos + origin.Y,
	}
}

// RotatedCorners returns the four corners of r rotated by angle degrees
// about the rectangle's center, in the same order as Corners.
func RotatedCorners(r Rect, degrees float64) [4]Point {
	center := r.Center()
	corners := r.Corners()
	for i, c := range corners {
		corners[i] = Rotate(c, center, degrees)
	}
	return corners
}
