package input

import (
	"math"
	"testing"
)

func TestPointerActionString(t *testing.T) {
	tests := []struct {
		action   PointerAction
		expected string
	}{
		{PointerNone, "none"},
		{PointerPress, "press"},
		{PointerDrag, "drag"},
		{PointerRelease, "release"},
		{PointerMove, "move"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.action.String(); got != tt.expected {
				t.Errorf("PointerAction.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPositionEqual(t *testing.T) {
	p := Position{X: 3, Y: 7}
	if !p.Equal(Position{X: 3, Y: 7}) {
		t.Error("equal positions not detected as equal")
	}
	if p.Equal(Position{X: 3, Y: 8}) {
		t.Error("different positions detected as equal")
	}
}

func TestPointerAngleCardinalPoints(t *testing.T) {
	// 100x100 widget, center (50, 50).
	tests := []struct {
		name     string
		pos      Position
		expected float64
	}{
		{"west is angle π", Position{X: 0, Y: 50}, math.Pi},
		{"east is angle 0", Position{X: 100, Y: 50}, 0},
		{"north is angle π/2", Position{X: 50, Y: 0}, math.Pi / 2},
		{"south is angle 3π/2", Position{X: 50, Y: 100}, 3 * math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pointerAngle(tt.pos, 100, 100)
			// East comes out as 2π before normalization; compare modulo.
			diff := math.Abs(math.Mod(got, 2*math.Pi) - tt.expected)
			if diff > tolerance && math.Abs(diff-2*math.Pi) > tolerance {
				t.Errorf("pointerAngle(%+v) = %v, want %v", tt.pos, got, tt.expected)
			}
		})
	}
}

func TestPointerAngleAspectScale(t *testing.T) {
	// The y offset is scaled by width/height, so squashing the widget
	// vertically must not change the angle of a proportional position.
	square := pointerAngle(Position{X: 25, Y: 25}, 100, 100)
	squashed := pointerAngle(Position{X: 25, Y: 12}, 100, 48) // quarter point of 48-high widget
	if math.Abs(square-squashed) > 1e-6 {
		t.Errorf("aspect-corrected angles differ: %v vs %v", square, squashed)
	}
}
