package handle

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"shapecore/pkg/geometry"
)

const tol = 1e-9

func pointsEqual(a, b geometry.Point) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) && scalar.EqualWithinAbs(a.Y, b.Y, tol)
}

func rectsEqual(a, b geometry.Rect) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) && scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Width, b.Width, tol) && scalar.EqualWithinAbs(a.Height, b.Height, tol)
}

// handlePosition returns h's resting position on r, with the top edge at
// Y+Height.
func handlePosition(r geometry.Rect, h Handle) geometry.Point {
	switch h {
	case TopRight:
		return geometry.NewPoint(r.X+r.Width, r.Y+r.Height)
	case MiddleRight:
		return geometry.NewPoint(r.X+r.Width, r.Y+r.Height/2)
	case BottomRight:
		return geometry.NewPoint(r.X+r.Width, r.Y)
	case TopLeft:
		return geometry.NewPoint(r.X, r.Y+r.Height)
	case MiddleLeft:
		return geometry.NewPoint(r.X, r.Y+r.Height/2)
	case BottomLeft:
		return geometry.NewPoint(r.X, r.Y)
	case TopMiddle:
		return geometry.NewPoint(r.X+r.Width/2, r.Y+r.Height)
	case BottomMiddle:
		return geometry.NewPoint(r.X+r.Width/2, r.Y)
	}
	return geometry.Point{}
}

func TestBottomRightDragAt45Degrees(t *testing.T) {
	rect := geometry.NewRect(0, 0, 2, 2)
	target := geometry.NewPoint(3, 3)

	fixed, moving, err := Anchors(rect, target, 45, BottomRight)
	if err != nil {
		t.Fatalf("Anchors failed: %v", err)
	}
	if !pointsEqual(fixed, geometry.NewPoint(0, 2)) {
		t.Errorf("fixed = %+v, want (0, 2)", fixed)
	}
	if !pointsEqual(moving, target) {
		t.Errorf("moving = %+v, want %+v", moving, target)
	}

	got, err := ToRect(fixed, moving, BottomRight)
	if err != nil {
		t.Fatalf("ToRect failed: %v", err)
	}
	// Height is 2-3 = -1, which pushes Y up to 3.
	if !rectsEqual(got, geometry.NewRect(0, 3, 3, -1)) {
		t.Errorf("rect = %+v, want (0, 3, 3, -1)", got)
	}
}

func TestIdentityDragsPreserveRect(t *testing.T) {
	rect := geometry.NewRect(1, 2, 4, 6)

	for h := TopRight; h <= BottomMiddle; h++ {
		t.Run(h.String(), func(t *testing.T) {
			got, err := Resize(rect, handlePosition(rect, h), 0, h)
			if err != nil {
				t.Fatalf("Resize failed: %v", err)
			}
			if !rectsEqual(got, rect) {
				t.Errorf("identity drag changed rect: %+v", got)
			}
		})
	}
}

func TestCornerDragsMoveDraggedCorner(t *testing.T) {
	rect := geometry.NewRect(1, 2, 3, 4)
	target := geometry.NewPoint(7, 9)

	tests := []struct {
		handle Handle
		want   geometry.Rect
	}{
		{handle: TopRight, want: geometry.NewRect(1, 2, 6, 7)},
		{handle: BottomRight, want: geometry.NewRect(1, 9, 6, -3)},
		{handle: TopLeft, want: geometry.NewRect(7, 2, -3, 7)},
		{handle: BottomLeft, want: geometry.NewRect(7, 9, -3, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.handle.String(), func(t *testing.T) {
			got, err := Resize(rect, target, 0, tt.handle)
			if err != nil {
				t.Fatalf("Resize failed: %v", err)
			}
			if !rectsEqual(got, tt.want) {
				t.Errorf("Resize = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEdgeDragsLeaveCrossAxisAlone(t *testing.T) {
	rect := geometry.NewRect(0, 0, 2, 2)

	t.Run("middle-right keeps height", func(t *testing.T) {
		// Wild Y on the target must not affect the height.
		got, err := Resize(rect, geometry.NewPoint(5, 99), 0, MiddleRight)
		if err != nil {
			t.Fatalf("Resize failed: %v", err)
		}
		if !rectsEqual(got, geometry.NewRect(0, 0, 5, 2)) {
			t.Errorf("Resize = %+v, want (0, 0, 5, 2)", got)
		}
	})

	t.Run("top-middle keeps width", func(t *testing.T) {
		got, err := Resize(rect, geometry.NewPoint(-37, 5), 0, TopMiddle)
		if err != nil {
			t.Fatalf("Resize failed: %v", err)
		}
		if !rectsEqual(got, geometry.NewRect(0, 0, 2, 5)) {
			t.Errorf("Resize = %+v, want (0, 0, 2, 5)", got)
		}
	})

	t.Run("middle-left keeps height", func(t *testing.T) {
		got, err := Resize(rect, geometry.NewPoint(-1, 42), 0, MiddleLeft)
		if err != nil {
			t.Fatalf("Resize failed: %v", err)
		}
		if !rectsEqual(got, geometry.NewRect(-1, 0, 3, 2)) {
			t.Errorf("Resize = %+v, want (-1, 0, 3, 2)", got)
		}
	})

	t.Run("bottom-middle keeps width", func(t *testing.T) {
		got, err := Resize(rect, geometry.NewPoint(17, -3), 0, BottomMiddle)
		if err != nil {
			t.Fatalf("Resize failed: %v", err)
		}
		if !rectsEqual(got, geometry.NewRect(0, -3, 2, 5)) {
			t.Errorf("Resize = %+v, want (0, -3, 2, 5)", got)
		}
	})
}

func TestDragThroughOppositeEdgeFlips(t *testing.T) {
	rect := geometry.NewRect(0, 0, 2, 2)

	// Drag the top-right corner below and left of the fixed corner.
	got, err := Resize(rect, geometry.NewPoint(-1, -1), 0, TopRight)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if got.Width >= 0 || got.Height >= 0 {
		t.Fatalf("expected negative dimensions, got %+v", got)
	}
	if !rectsEqual(got.Canonical(), geometry.NewRect(-1, -1, 1, 1)) {
		t.Errorf("Canonical = %+v, want (-1, -1, 1, 1)", got.Canonical())
	}
}

func TestInvalidHandle(t *testing.T) {
	rect := geometry.NewRect(0, 0, 1, 1)
	target := geometry.NewPoint(2, 2)
	bad := Handle(42)

	if _, _, err := Anchors(rect, target, 0, bad); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Anchors error = %v, want ErrInvalidHandle", err)
	}
	if _, err := ToRect(target, target, bad); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("ToRect error = %v, want ErrInvalidHandle", err)
	}
	if _, err := Resize(rect, target, 0, bad); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Resize error = %v, want ErrInvalidHandle", err)
	}
}

func TestAdjustPointsZeroAngle(t *testing.T) {
	a := geometry.NewPoint(0, 0)
	c := geometry.NewPoint(4, 2)
	center := geometry.NewPoint(1, 1)

	gotA, gotC := AdjustPoints(a, c, center, 0)
	if !pointsEqual(gotA, a) || !pointsEqual(gotC, c) {
		t.Errorf("AdjustPoints at angle 0 = (%+v, %+v), want inputs unchanged", gotA, gotC)
	}
}

func TestAdjustPointsRecenters(t *testing.T) {
	a := geometry.NewPoint(0, 0)
	c := geometry.NewPoint(6, 2)
	center := geometry.NewPoint(2, 2)
	angle := 30.0

	gotA, gotC := AdjustPoints(a, c, center, angle)

	// The midpoint of the outputs is the derived center: the midpoint of
	// the rotated A and the untouched C.
	rotatedA := geometry.Rotate(a, center, angle)
	wantCenter := rotatedA.Midpoint(c)
	if !pointsEqual(gotA.Midpoint(gotC), wantCenter) {
		t.Errorf("output midpoint = %+v, want %+v", gotA.Midpoint(gotC), wantCenter)
	}

	// Counter-rotation about a shared center preserves the diagonal.
	if got, want := gotA.Distance(gotC), rotatedA.Distance(c); !scalar.EqualWithinAbs(got, want, tol) {
		t.Errorf("diagonal length = %v, want %v", got, want)
	}
}
