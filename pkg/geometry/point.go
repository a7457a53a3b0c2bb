// Package geometry provides the 2D value types and rotation primitives
// used by the shape-editing core. All types are small immutable values;
// operations return new values and are safe for concurrent use.
package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrIndexOutOfRange is returned by Point.At for indices outside 0..1.
var ErrIndexOutOfRange = errors.New("point index out of range (0-1)")

// Point represents a 2D point with floating-point coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint creates a new Point.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// At returns the component at index: 0 is X, 1 is Y.
// Any other index fails with ErrIndexOutOfRange.
func (p Point) At(index int) (float64, error) {
	switch index {
	case 0:
		return p.X, nil
	case 1:
		return p.Y, nil
	}
	return 0, fmt.Errorf("index %d: %w", index, ErrIndexOutOfRange)
}

// XY returns the coordinates for sequential destructuring.
func (p Point) XY() (float64, float64) {
	return p.X, p.Y
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns the point scaled by a factor.
func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// Midpoint returns the point halfway between p and other.
func (p Point) Midpoint(other Point) Point {
	return Point{X: (p.X + other.X) / 2, Y: (p.Y + other.Y) / 2}
}

// Size represents a 2D size.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewSize creates a new Size.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}
