// Package angle provides the pure math behind the radial slider: the
// affine mapping between a bounded value domain and an angular position,
// angle normalization, and tick snapping.
package angle

import (
	"errors"
	"math"
)

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// ErrInvalidRange is returned when a mapping is constructed with
// minimum >= maximum.
var ErrInvalidRange = errors.New("minimum must be less than maximum")

// Normalize maps an angle into [0, Tau).
// Negative inputs are handled correctly: Normalize(-π/2) == 3π/2.
func Normalize(a float64) float64 {
	m := math.Mod(a, Tau)
	if m < 0 {
		m += Tau
	}
	return m
}

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Snap rounds an angle to the nearest multiple of step.
// A step that is zero or negative is a configuration error the caller
// should avoid; Snap treats it as "no snapping" and returns the angle
// unchanged rather than faulting.
func Snap(a, step float64) float64 {
	if step <= 0 {
		return a
	}
	return math.Round(a/step) * step
}

// Mapping is a stateless affine bijection between the half-open value
// domain [Min, Max) and the angle domain [0, Tau). The range is fixed at
// construction; callers needing a different range construct a new Mapping.
type Mapping struct {
	Min float64
	Max float64
}

// NewMapping creates a mapping for the value domain [min, max).
func NewMapping(min, max float64) (Mapping, error) {
	if !(min < max) {
		return Mapping{}, ErrInvalidRange
	}
	return Mapping{Min: min, Max: max}, nil
}

// ValueToAngle converts a value into its angular position.
// Values inside [Min, Max) land in [0, Tau).
func (m Mapping) ValueToAngle(v float64) float64 {
	return (v - m.Min) / (m.Max - m.Min) * Tau
}

// AngleToValue converts an angle into a value. The angle is normalized
// into [0, Tau) first, so the result is always within [Min, Max).
func (m Mapping) AngleToValue(a float64) float64 {
	return m.Min + Normalize(a)/Tau*(m.Max-m.Min)
}

// Clamp restricts a value to the closed interval [Min, Max]. The closed
// maximum is deliberate: Max is unreachable through the angle mapping but
// reachable through direct assignment.
func (m Mapping) Clamp(v float64) float64 {
	return math.Max(math.Min(v, m.Max), m.Min)
}
