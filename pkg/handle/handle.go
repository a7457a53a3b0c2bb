// Package handle computes how a rectangle's geometry changes when one of
// its eight resize handles is dragged while the rectangle is rotated by
// an arbitrary angle. It is the computational core of an interactive
// shape editor: hit-testing, pointer tracking and rendering live in the
// caller, which feeds a target point, angle and handle identity in and
// consumes the resulting rectangle.
//
// Handles are named for axes where y increases upward, the convention
// under which positive angles rotate counter-clockwise.
package handle

import (
	"errors"
	"fmt"
)

// ErrInvalidHandle is returned when a Handle value is outside the eight
// defined variants.
var ErrInvalidHandle = errors.New("invalid resize handle")

// Handle identifies which control point of a rectangle's bounding box is
// being dragged.
type Handle int

const (
	TopRight Handle = iota
	MiddleRight
	BottomRight
	TopLeft
	MiddleLeft
	BottomLeft
	TopMiddle
	BottomMiddle
)

var handleNames = [...]string{
	TopRight:     "top-right",
	MiddleRight:  "middle-right",
	BottomRight:  "bottom-right",
	TopLeft:      "top-left",
	MiddleLeft:   "middle-left",
	BottomLeft:   "bottom-left",
	TopMiddle:    "top-middle",
	BottomMiddle: "bottom-middle",
}

// Valid reports whether h is one of the eight defined variants.
func (h Handle) Valid() bool {
	return h >= TopRight && h <= BottomMiddle
}

func (h Handle) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Handle(%d)", int(h))
	}
	return handleNames[h]
}

// Parse returns the Handle named by s (e.g. "top-right").
func Parse(s string) (Handle, error) {
	for h, name := range handleNames {
		if s == name {
			return Handle(h), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidHandle)
}
