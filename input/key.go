package input

import "strings"

// Key identifies the direction keys the controller reacts to. Hosts map
// their own key codes onto these before calling the controller; anything
// else is ignored.
type Key uint8

const (
	// KeyNone indicates no key.
	KeyNone Key = iota
	// KeyLeft steps the angle up by the unit increment.
	KeyLeft
	// KeyRight steps the angle down by the unit increment.
	KeyRight
	// KeyUp steps the angle up by the block increment.
	KeyUp
	// KeyDown steps the angle down by the block increment.
	KeyDown
)

// String returns a string representation of the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	default:
		return "none"
	}
}

// IsDirection returns true if this is one of the four direction keys.
func (k Key) IsDirection() bool {
	return k == KeyLeft || k == KeyRight || k == KeyUp || k == KeyDown
}

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key.
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasMeta returns true if Meta is pressed.
func (m Modifier) HasMeta() bool {
	return m.Has(ModMeta)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a human-readable representation like "Ctrl+Shift".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasMeta() {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// KeyEvent represents a key press or release delivered by the host.
type KeyEvent struct {
	// Key identifies the key.
	Key Key

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}
