package handle

import (
	"fmt"

	"shapecore/pkg/geometry"
)

// AdjustPoints re-expresses two diagonal corners around a shifted
// rotation center. It rotates cornerA about center by angle degrees,
// takes the midpoint of the rotated A and cornerC as the new center, and
// rotates both back by -angle about that new center. Used after a drag
// has moved the rectangle's geometric center: the two defining corners
// must be restated consistently around it.
//
// The corners are not validated to be diagonal; that is the caller's
// contract.
func AdjustPoints(cornerA, cornerC, center geometry.Point, degrees float64) (geometry.Point, geometry.Point) {
	rotatedA := geometry.Rotate(cornerA, center, degrees)
	newCenter := rotatedA.Midpoint(cornerC)
	return geometry.Rotate(rotatedA, newCenter, -degrees),
		geometry.Rotate(cornerC, newCenter, -degrees)
}

// Anchors resolves a handle drag into the pair of anchor points that
// define the resized rectangle: the fixed point that does not move under
// the drag, and the moving point the drag carries.
//
// For corner handles the opposite corner is fixed and the moving point
// is the target exactly. For edge-midpoint handles only one axis of the
// opposite edge follows the drag: the target is first expressed in the
// rectangle's unrotated local frame, the unconstrained coordinate is
// taken from the original rectangle, and the result is rotated back to
// world space. That keeps the untouched dimension unaffected by the
// drag.
func Anchors(r geometry.Rect, target geometry.Point, degrees float64, h Handle) (fixed, moving geometry.Point, err error) {
	center := r.Center()
	local := geometry.Rotate(target, center, -degrees)

	switch h {
	case TopRight:
		return geometry.NewPoint(r.X, r.Y), target, nil

	case MiddleRight:
		edge := geometry.NewPoint(local.X, r.Y+r.Height)
		return geometry.NewPoint(r.X, r.Y), geometry.Rotate(edge, center, degrees), nil

	case BottomRight:
		return geometry.NewPoint(r.X, r.Y+r.Height), target, nil

	case TopLeft:
		return geometry.NewPoint(r.X+r.Width, r.Y), target, nil

	case MiddleLeft:
		edge := geometry.NewPoint(local.X, r.Y+r.Height)
		return geometry.NewPoint(r.X+r.Width, r.Y), geometry.Rotate(edge, center, degrees), nil

	case BottomLeft:
		return geometry.NewPoint(r.X+r.Width, r.Y+r.Height), target, nil

	case TopMiddle:
		edge := geometry.NewPoint(r.X+r.Width, local.Y)
		return geometry.NewPoint(r.X, r.Y), geometry.Rotate(edge, center, degrees), nil

	case BottomMiddle:
		edge := geometry.NewPoint(r.X+r.Width, local.Y)
		return geometry.NewPoint(r.X, r.Y+r.Height), geometry.Rotate(edge, center, degrees), nil
	}

	return geometry.Point{}, geometry.Point{}, fmt.Errorf("anchors: %w: %d", ErrInvalidHandle, int(h))
}

// ToRect reconstructs the rectangle defined by a fixed/moving anchor
// pair in the unrotated local frame. Width and height are not clamped:
// dragging past the opposite edge yields a negative dimension, which is
// the accepted flip-through outcome, not an error.
func ToRect(fixed, moving geometry.Point, h Handle) (geometry.Rect, error) {
	switch h {
	case TopRight, MiddleRight, TopMiddle:
		return geometry.NewRect(fixed.X, fixed.Y, moving.X-fixed.X, moving.Y-fixed.Y), nil

	case BottomRight:
		height := fixed.Y - moving.Y
		return geometry.NewRect(fixed.X, fixed.Y-height, moving.X-fixed.X, height), nil

	case TopLeft, MiddleLeft:
		height := moving.Y - fixed.Y
		return geometry.NewRect(moving.X, moving.Y-height, fixed.X-moving.X, height), nil

	case BottomLeft:
		return geometry.NewRect(moving.X, moving.Y, fixed.X-moving.X, fixed.Y-moving.Y), nil

	case BottomMiddle:
		return geometry.NewRect(fixed.X, moving.Y, moving.X-fixed.X, fixed.Y-moving.Y), nil
	}

	return geometry.Rect{}, fmt.Errorf("to rect: %w: %d", ErrInvalidHandle, int(h))
}

// Resize composes Anchors and ToRect: it resolves the drag of h on r to
// target under the given rotation and reconstructs the resulting
// rectangle in the unrotated frame.
func Resize(r geometry.Rect, target geometry.Point, degrees float64, h Handle) (geometry.Rect, error) {
	fixed, moving, err := Anchors(r, target, degrees, h)
	if err != nil {
		return geometry.Rect{}, err
	}
	return ToRect(fixed, moving, h)
}
