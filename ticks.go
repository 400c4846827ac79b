package radial

import "strings"

// TickMask selects which tick rings the renderer draws.
type TickMask uint8

const (
	// TickNone hides all ticks.
	TickNone TickMask = 0

	// TickUnit shows a tick at every unit increment.
	TickUnit TickMask = 1 << iota

	// TickBlock shows a tick at every block increment.
	TickBlock
)

// Has returns true if m contains the specified ticks.
func (m TickMask) Has(ticks TickMask) bool {
	return m&ticks != 0
}

// With returns a new TickMask with the specified ticks added.
func (m TickMask) With(ticks TickMask) TickMask {
	return m | ticks
}

// Without returns a new TickMask with the specified ticks removed.
func (m TickMask) Without(ticks TickMask) TickMask {
	return m &^ ticks
}

// String returns a human-readable representation like "unit+block".
func (m TickMask) String() string {
	if m == TickNone {
		return "none"
	}

	var parts []string
	if m.Has(TickUnit) {
		parts = append(parts, "unit")
	}
	if m.Has(TickBlock) {
		parts = append(parts, "block")
	}
	return strings.Join(parts, "+")
}
