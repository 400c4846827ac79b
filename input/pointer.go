package input

import "math"

// Position represents a pointer coordinate in the widget's local space.
type Position struct {
	X int
	Y int
}

// Equal returns true if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// PointerAction represents the type of pointer action.
type PointerAction uint8

const (
	// PointerNone indicates no action.
	PointerNone PointerAction = iota
	// PointerPress indicates a button press.
	PointerPress
	// PointerDrag indicates movement with the button held.
	PointerDrag
	// PointerRelease indicates a button release.
	PointerRelease
	// PointerMove indicates movement with no button held.
	PointerMove
)

// String returns a string representation of the action.
func (a PointerAction) String() string {
	switch a {
	case PointerPress:
		return "press"
	case PointerDrag:
		return "drag"
	case PointerRelease:
		return "release"
	case PointerMove:
		return "move"
	default:
		return "none"
	}
}

// PointerEvent represents a pointer input event.
type PointerEvent struct {
	// Position is the pointer location in widget-local coordinates.
	Position Position

	// Action is the type of pointer action.
	Action PointerAction

	// Modifiers are any keyboard modifiers held during the event.
	Modifiers Modifier
}

// WheelEvent represents a wheel rotation. Rotation is positive when the
// wheel is rotated toward the user (scroll down) and may be fractional on
// high-resolution wheels.
type WheelEvent struct {
	Rotation  float64
	Modifiers Modifier
}

// pointerAngle computes the dial angle for a pointer position inside a
// widget of the given size. The x/y ratio corrects for a non-square
// aspect, and the π offset aligns angle zero with the positive x-axis.
func pointerAngle(p Position, width, height int) float64 {
	fw, fh := float64(width), float64(height)
	return math.Atan2(fw/fh*(float64(p.Y)-fh/2), fw/2-float64(p.X)) + math.Pi
}
