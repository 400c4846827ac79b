// Package event implements the radial slider's two notification channels:
// settled change notifications and live adjustment notifications. The two
// channels are independent; observers register on either or both.
package event

// AdjustmentID identifies where an adjustment sits in an interaction.
type AdjustmentID int

const (
	// AdjustFirst marks the beginning of an interactive adjustment
	// (pointer press, key press).
	AdjustFirst AdjustmentID = iota + 1

	// AdjustValueChanged marks an intermediate step of an ongoing
	// adjustment (drag motion, key-repeat tick).
	AdjustValueChanged

	// AdjustLast marks the end of an adjustment (pointer release, key
	// release, wheel tick, direct value assignment).
	AdjustLast
)

// String returns a human-readable id name.
func (id AdjustmentID) String() string {
	switch id {
	case AdjustFirst:
		return "first"
	case AdjustValueChanged:
		return "value-changed"
	case AdjustLast:
		return "last"
	default:
		return "unknown"
	}
}

// AdjustmentType identifies what kind of step produced an adjustment.
type AdjustmentType int

const (
	// Track is an absolute reposition (pointer interaction, direct set).
	Track AdjustmentType = iota

	// UnitIncrement is a small step up.
	UnitIncrement

	// UnitDecrement is a small step down.
	UnitDecrement

	// BlockIncrement is a large step up.
	BlockIncrement

	// BlockDecrement is a large step down.
	BlockDecrement
)

// String returns a human-readable type name.
func (t AdjustmentType) String() string {
	switch t {
	case Track:
		return "track"
	case UnitIncrement:
		return "unit-increment"
	case UnitDecrement:
		return "unit-decrement"
	case BlockIncrement:
		return "block-increment"
	case BlockDecrement:
		return "block-decrement"
	default:
		return "unknown"
	}
}

// ChangeEvent is delivered on the change channel when a value mutation
// settles. It carries only the source; observers re-read the current value.
type ChangeEvent struct {
	// Source is the widget that changed.
	Source any
}

// AdjustmentEvent is delivered on the adjustment channel for every live
// step of an interaction.
type AdjustmentEvent struct {
	// Source is the widget being adjusted.
	Source any

	// ID identifies the step's position in the interaction.
	ID AdjustmentID

	// Type identifies the kind of step.
	Type AdjustmentType

	// Value is the integer view of the value after the step.
	Value int

	// Adjusting is true while the interaction is still in progress.
	Adjusting bool
}

// ChangeObserver receives settled change notifications.
type ChangeObserver func(ChangeEvent)

// AdjustmentObserver receives live adjustment notifications.
type AdjustmentObserver func(AdjustmentEvent)
