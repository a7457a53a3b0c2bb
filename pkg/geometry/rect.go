package geometry

import (
	"math"
)

// Rect represents a rectangle in its unrotated frame. X,Y is the corner
// at the origin side of both axes and Width/Height extend from it.
// Width and Height may be negative: handle reconstruction deliberately
// produces negative dimensions when a drag crosses the opposite edge,
// and nothing here normalizes them. Callers that need a non-negative
// rectangle use Canonical.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect creates a new Rect.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Position returns the origin corner (X, Y).
func (r Rect) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the width and height.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Min returns the corner at (X, Y).
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Max returns the corner at (X+Width, Y+Height).
func (r Rect) Max() Point {
	return Point{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Corners returns the four corners in order Min, (X+W, Y), Max, (X, Y+H).
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
}

// Contains returns true if the point is inside the rectangle.
// Only meaningful for canonical (non-negative) dimensions.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Canonical returns an equal rectangle with non-negative Width and
// Height, flipping the origin corner as needed.
func (r Rect) Canonical() Rect {
	x, y, w, h := r.X, r.Y, r.Width, r.Height
	if w < 0 {
		x += w
		w = -w
	}
	if h < 0 {
		y += h
		h = -h
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	x := math.Min(r.X, other.X)
	y := math.Min(r.Y, other.Y)
	x2 := math.Max(r.X+r.Width, other.X+other.Width)
	y2 := math.Max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: x, Y: y, Width: x2 - x, Height: y2 - y}
}

// Centroid computes the centroid (average position) of a set of points.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(points))
	return Point{X: sumX / n, Y: sumY / n}
}

// BoundingBox computes the axis-aligned bounding box of a set of points.
// An editor draws selection chrome around the box of a rotated
// rectangle's corners.
func BoundingBox(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
