// Package radial implements a rotary-dial widget: a bounded real value
// selected by rotating a pointer around a circular dial. The widget owns
// the value model and the notification channels; pointer, wheel and key
// input is translated by the input package, and painting is done by the
// render package over a terminal backend.
package radial

import (
	"errors"

	"github.com/dialware/radial/angle"
	"github.com/dialware/radial/event"
)

// ErrUnsupported is returned by the integer minimum/maximum setters.
// The range is fixed at construction; changing it afterwards would
// invalidate the angle mapping, so the setters fail fast instead of
// silently ignoring the call.
var ErrUnsupported = errors.New("changing the range after construction is not supported")

// Default increments in degrees.
const (
	DefaultUnitIncrement  = 1
	DefaultBlockIncrement = 45
)

// Slider is a radial slider: a value in [min, max) selected by a pointer
// rotating around a dial.
//
// All mutation is expected to happen on the host's event-dispatch
// goroutine; the slider performs no locking of its own.
type Slider struct {
	mapping angle.Mapping
	value   float64

	unitIncrement  int // degrees
	blockIncrement int // degrees

	ticks     TickMask
	lineWidth float64
	showAxis  bool
	showText  bool
	focused   bool
	enabled   bool
	formatter Formatter

	dispatcher *event.Dispatcher
	redraw     func()
}

// New creates a slider with the given initial value and value range
// [min, max). The initial value is clamped into the range.
func New(value, min, max float64) (*Slider, error) {
	m, err := angle.NewMapping(min, max)
	if err != nil {
		return nil, err
	}

	s := &Slider{
		mapping:        m,
		unitIncrement:  DefaultUnitIncrement,
		blockIncrement: DefaultBlockIncrement,
		ticks:          TickBlock,
		lineWidth:      1.5,
		showText:       true,
		enabled:        true,
		formatter:      DecimalFormatter,
	}
	s.dispatcher = event.NewDispatcher(s, s.Enabled)
	s.value = m.Clamp(value)
	return s, nil
}

// NewDegrees creates a slider for angle selection: value 0, range
// [0, 360), degree formatting.
func NewDegrees() *Slider {
	s, _ := New(0, 0, 360) // range is statically valid
	s.formatter = DegreeFormatter
	return s
}

// Value returns the current value.
func (s *Slider) Value() float64 {
	return s.value
}

// SetValue clamps v into the closed interval [min, max], stores it, and
// fires a settled change notification plus a non-adjusting track
// notification. Out-of-range inputs are clamped, never an error.
//
// The closed upper bound is intentional: max is unreachable through the
// angle mapping but reachable through direct assignment.
func (s *Slider) SetValue(v float64) {
	s.value = s.mapping.Clamp(v)

	s.dispatcher.NotifyChanged()
	s.dispatcher.NotifyAdjusting(event.AdjustLast, event.Track, s.ValueInt(), false)

	s.requestRedraw()
}

// Minimum returns the minimum value (inclusive).
func (s *Slider) Minimum() float64 {
	return s.mapping.Min
}

// Maximum returns the maximum value (exclusive).
func (s *Slider) Maximum() float64 {
	return s.mapping.Max
}

// ValueInt returns the current value truncated toward zero.
func (s *Slider) ValueInt() int {
	return int(s.value)
}

// MinimumInt returns the minimum value truncated toward zero.
func (s *Slider) MinimumInt() int {
	return int(s.mapping.Min)
}

// MaximumInt returns the maximum value truncated toward zero.
func (s *Slider) MaximumInt() int {
	return int(s.mapping.Max)
}

// SetValueInt sets the value from its integer view.
func (s *Slider) SetValueInt(v int) {
	s.SetValue(float64(v))
}

// SetMinimumInt always fails: the range is fixed at construction.
func (s *Slider) SetMinimumInt(int) error {
	return ErrUnsupported
}

// SetMaximumInt always fails: the range is fixed at construction.
func (s *Slider) SetMaximumInt(int) error {
	return ErrUnsupported
}

// Angle returns the angular position of the current value in [0, 2π).
func (s *Slider) Angle() float64 {
	return s.mapping.ValueToAngle(s.value)
}

// SetAngle normalizes the angle into [0, 2π) and stores the mapped value.
// It fires no notifications; interactive callers notify through the
// controller, and the mapping guarantees the result is within [min, max).
func (s *Slider) SetAngle(a float64) {
	s.value = s.mapping.AngleToValue(a)
	s.requestRedraw()
}

// UnitIncrement returns the small step in degrees.
func (s *Slider) UnitIncrement() int {
	return s.unitIncrement
}

// SetUnitIncrement sets the small step in degrees.
// Non-positive values are ignored.
func (s *Slider) SetUnitIncrement(deg int) {
	if deg > 0 && deg != s.unitIncrement {
		s.unitIncrement = deg
		s.requestRedraw()
	}
}

// BlockIncrement returns the large step in degrees.
func (s *Slider) BlockIncrement() int {
	return s.blockIncrement
}

// SetBlockIncrement sets the large step in degrees.
// Non-positive values are ignored.
func (s *Slider) SetBlockIncrement(deg int) {
	if deg > 0 && deg != s.blockIncrement {
		s.blockIncrement = deg
		s.requestRedraw()
	}
}

// Ticks returns the visible tick rings.
func (s *Slider) Ticks() TickMask {
	return s.ticks
}

// SetTicks sets the visible tick rings.
func (s *Slider) SetTicks(m TickMask) {
	if s.ticks != m {
		s.ticks = m
		s.requestRedraw()
	}
}

// AxisVisible returns true if the axis guides are drawn.
func (s *Slider) AxisVisible() bool {
	return s.showAxis
}

// SetAxisVisible shows or hides the axis guides.
func (s *Slider) SetAxisVisible(visible bool) {
	if s.showAxis != visible {
		s.showAxis = visible
		s.requestRedraw()
	}
}

// TextVisible returns true if the value readout is drawn.
func (s *Slider) TextVisible() bool {
	return s.showText
}

// SetTextVisible shows or hides the value readout.
func (s *Slider) SetTextVisible(visible bool) {
	if s.showText != visible {
		s.showText = visible
		s.requestRedraw()
	}
}

// LineWidth returns the maximum line width used by the renderer.
func (s *Slider) LineWidth() float64 {
	return s.lineWidth
}

// SetLineWidth sets the maximum line width used by the renderer.
func (s *Slider) SetLineWidth(w float64) {
	if s.lineWidth != w {
		s.lineWidth = w
		s.requestRedraw()
	}
}

// Formatter returns the value formatter.
func (s *Slider) Formatter() Formatter {
	return s.formatter
}

// SetFormatter sets the value formatter. A nil formatter restores the
// decimal default.
func (s *Slider) SetFormatter(f Formatter) {
	if f == nil {
		f = DecimalFormatter
	}
	s.formatter = f
	s.requestRedraw()
}

// Text returns the formatted readout of the current value.
func (s *Slider) Text() string {
	return s.formatter.Format(s.value)
}

// Focused returns true if the widget has keyboard focus.
func (s *Slider) Focused() bool {
	return s.focused
}

// SetFocused toggles the focus flag. Purely visual: no value mutation and
// no notification, just a redraw request.
func (s *Slider) SetFocused(focused bool) {
	if s.focused != focused {
		s.focused = focused
		s.requestRedraw()
	}
}

// Enabled returns true if the widget accepts input.
func (s *Slider) Enabled() bool {
	return s.enabled
}

// SetEnabled enables or disables the widget. While disabled all input is
// ignored and no notifications fire, including for direct API mutations.
func (s *Slider) SetEnabled(enabled bool) {
	if s.enabled != enabled {
		s.enabled = enabled
		s.requestRedraw()
	}
}

// Dispatcher returns the notification dispatcher. The input controller
// publishes through it.
func (s *Slider) Dispatcher() *event.Dispatcher {
	return s.dispatcher
}

// OnChange registers an observer for settled value changes.
func (s *Slider) OnChange(fn event.ChangeObserver) (event.Handle, error) {
	return s.dispatcher.OnChange(fn)
}

// RemoveChange unregisters a change observer.
func (s *Slider) RemoveChange(h event.Handle) bool {
	return s.dispatcher.RemoveChange(h)
}

// OnAdjustment registers an observer for live adjustments.
func (s *Slider) OnAdjustment(fn event.AdjustmentObserver) (event.Handle, error) {
	return s.dispatcher.OnAdjustment(fn)
}

// RemoveAdjustment unregisters an adjustment observer.
func (s *Slider) RemoveAdjustment(h event.Handle) bool {
	return s.dispatcher.RemoveAdjustment(h)
}

// OnRedraw sets the redraw-request hook. The hosting UI decides when and
// how to repaint; the slider only signals that a visual change occurred.
func (s *Slider) OnRedraw(fn func()) {
	s.redraw = fn
}

func (s *Slider) requestRedraw() {
	if s.redraw != nil {
		s.redraw()
	}
}
