package handle

import (
	"errors"
	"testing"
)

func TestHandleStringParseRoundTrip(t *testing.T) {
	all := []Handle{
		TopRight, MiddleRight, BottomRight,
		TopLeft, MiddleLeft, BottomLeft,
		TopMiddle, BottomMiddle,
	}

	for _, h := range all {
		parsed, err := Parse(h.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", h.String(), err)
		}
		if parsed != h {
			t.Errorf("Parse(%q) = %v, want %v", h.String(), parsed, h)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("diagonal"); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Parse error = %v, want ErrInvalidHandle", err)
	}
}

func TestHandleValid(t *testing.T) {
	if !TopRight.Valid() || !BottomMiddle.Valid() {
		t.Error("expected defined handles to be valid")
	}
	if Handle(-1).Valid() || Handle(8).Valid() {
		t.Error("expected out-of-range handles to be invalid")
	}
}
