// Package input translates raw pointer, wheel and key events into radial
// slider mutations and notifications. The Controller is a small state
// machine: Idle, PointerDragging or KeyHeld, with focus tracked as an
// orthogonal flag on the widget.
package input

import (
	"math"
	"sync"
	"time"

	"github.com/dialware/radial/angle"
	"github.com/dialware/radial/event"
)

// State identifies the controller's interaction state.
type State uint8

const (
	// StateIdle means no interaction is in progress.
	StateIdle State = iota
	// StatePointerDragging means a pointer press is being dragged.
	StatePointerDragging
	// StateKeyHeld means a direction key is held and repeating.
	StateKeyHeld
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StatePointerDragging:
		return "pointer-dragging"
	case StateKeyHeld:
		return "key-held"
	default:
		return "idle"
	}
}

// Widget is the surface the controller drives. *radial.Slider implements it.
type Widget interface {
	// Angle returns the current angular position in [0, 2π).
	Angle() float64
	// SetAngle stores the value mapped from the (normalized) angle.
	SetAngle(a float64)
	// ValueInt returns the integer view of the current value.
	ValueInt() int
	// UnitIncrement returns the small step in degrees.
	UnitIncrement() int
	// BlockIncrement returns the large step in degrees.
	BlockIncrement() int
	// Enabled reports whether the widget accepts input.
	Enabled() bool
	// SetFocused toggles the widget's focus flag.
	SetFocused(focused bool)
}

// Notifier publishes notifications on behalf of the controller.
// *event.Dispatcher implements it.
type Notifier interface {
	NotifyChanged()
	NotifyAdjusting(id event.AdjustmentID, typ event.AdjustmentType, value int, adjusting bool)
}

// Config configures controller behavior.
type Config struct {
	// RepeatDelay is the pause before the first key repeat.
	RepeatDelay time.Duration

	// RepeatInterval is the steady interval between key repeats.
	RepeatInterval time.Duration

	// Scheduler schedules repeat ticks. Nil means the real clock.
	Scheduler Scheduler
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		RepeatDelay:    DefaultRepeatDelay,
		RepeatInterval: DefaultRepeatInterval,
	}
}

// Controller consumes raw input events and drives the widget.
//
// Repeat ticks fire from the scheduler, which with the real clock means a
// different goroutine than the host's event loop; the mutex keeps the two
// paths from interleaving.
type Controller struct {
	mu     sync.Mutex
	widget Widget
	notify Notifier
	config Config
	sched  Scheduler

	state  State
	width  int
	height int
	repeat repeatState
}

// NewController creates a controller for the given widget and notifier.
func NewController(w Widget, n Notifier, config Config) *Controller {
	if config.RepeatDelay <= 0 {
		config.RepeatDelay = DefaultRepeatDelay
	}
	if config.RepeatInterval <= 0 {
		config.RepeatInterval = DefaultRepeatInterval
	}
	sched := config.Scheduler
	if sched == nil {
		sched = SystemScheduler()
	}

	return &Controller{
		widget: w,
		notify: n,
		config: config,
		sched:  sched,
	}
}

// SetBounds tells the controller the widget's size, for pointer math.
func (c *Controller) SetBounds(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width = width
	c.height = height
}

// State returns the current interaction state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// HandlePointer processes a pointer event.
func (c *Controller) HandlePointer(ev PointerEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.widget.Enabled() {
		return
	}

	switch ev.Action {
	case PointerPress:
		c.widget.SetFocused(true)
		c.applyPointerAngle(ev)
		c.notify.NotifyAdjusting(event.AdjustFirst, event.Track, c.widget.ValueInt(), true)
		c.state = StatePointerDragging

	case PointerDrag:
		if c.state != StatePointerDragging {
			return
		}
		c.applyPointerAngle(ev)
		c.notify.NotifyAdjusting(event.AdjustValueChanged, event.Track, c.widget.ValueInt(), true)

	case PointerRelease:
		if c.state != StatePointerDragging {
			return
		}
		c.notify.NotifyAdjusting(event.AdjustLast, event.Track, c.widget.ValueInt(), false)
		c.notify.NotifyChanged()
		c.state = StateIdle
	}
}

// applyPointerAngle moves the pointer angle to the event position.
// Shift snaps to block ticks, Ctrl to unit ticks.
func (c *Controller) applyPointerAngle(ev PointerEvent) {
	a := pointerAngle(ev.Position, c.width, c.height)

	if ev.Modifiers.HasShift() {
		a = angle.Snap(a, angle.ToRadians(float64(c.widget.BlockIncrement())))
	} else if ev.Modifiers.HasCtrl() {
		a = angle.Snap(a, angle.ToRadians(float64(c.widget.UnitIncrement())))
	}

	c.widget.SetAngle(a)
}

// HandleWheel processes a wheel rotation. Wheel steps are instantaneous:
// one adjustment plus one committed change, no state transition.
func (c *Controller) HandleWheel(ev WheelEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.widget.Enabled() {
		return
	}

	delta := angle.ToRadians(ev.Rotation * float64(c.widget.UnitIncrement()))
	c.widget.SetAngle(c.widget.Angle() - delta)

	typ := event.UnitIncrement
	if ev.Rotation > 0 {
		typ = event.UnitDecrement
	}
	c.notify.NotifyAdjusting(event.AdjustLast, typ, c.widget.ValueInt(), false)
	c.notify.NotifyChanged()
}

// HandleKeyPress processes a direction-key press: one immediate step, an
// adjustment-start notification, and the start of the repeat timer.
// Non-direction keys are ignored.
func (c *Controller) HandleKeyPress(ev KeyEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.widget.Enabled() {
		return
	}

	var speed int
	switch ev.Key {
	case KeyLeft:
		speed = c.widget.UnitIncrement()
	case KeyRight:
		speed = -c.widget.UnitIncrement()
	case KeyUp:
		speed = c.widget.BlockIncrement()
	case KeyDown:
		speed = -c.widget.BlockIncrement()
	default:
		return
	}

	c.repeat.speed = speed

	a := c.widget.Angle() + angle.ToRadians(float64(speed))
	if ev.Modifiers.HasShift() {
		// Snap to the step's own multiple. Snap skips a zero step, which
		// cannot happen here since increments are kept positive.
		a = angle.Snap(a, math.Abs(angle.ToRadians(float64(speed))))
	}
	c.widget.SetAngle(a)

	c.notify.NotifyAdjusting(event.AdjustFirst, c.stepType(speed), c.widget.ValueInt(), true)

	c.startRepeat()
	c.state = StateKeyHeld
}

// HandleKeyRelease ends a key-held interaction: the repeat timer stops,
// an adjustment-end notification fires, then a committed change.
// Releases outside a key-held interaction are ignored.
func (c *Controller) HandleKeyRelease(KeyEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.widget.Enabled() {
		return
	}
	if c.state != StateKeyHeld {
		return
	}

	typ := c.stepType(c.repeat.speed)
	c.repeat.stop()

	c.notify.NotifyAdjusting(event.AdjustLast, typ, c.widget.ValueInt(), false)
	c.notify.NotifyChanged()
	c.state = StateIdle
}

// HandleFocus toggles the widget's focus flag. Purely visual; no value
// mutation and no notification.
func (c *Controller) HandleFocus(gained bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.widget.SetFocused(gained)
}

// Reset cancels any in-progress interaction without notifying. Hosts call
// this when the widget is disabled or removed mid-interaction.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.repeat.stop()
	c.state = StateIdle
}

// stepType classifies a signed key step in degrees against the widget's
// increments.
func (c *Controller) stepType(speed int) event.AdjustmentType {
	switch {
	case speed > 0 && speed == c.widget.UnitIncrement():
		return event.UnitIncrement
	case speed > 0:
		return event.BlockIncrement
	case speed == -c.widget.UnitIncrement():
		return event.UnitDecrement
	default:
		return event.BlockDecrement
	}
}

// startRepeat schedules the first repeat tick after the initial delay.
// If a repeat is already running (a second direction key pressed while
// the first is held), the pending tick is kept and picks up the new speed.
func (c *Controller) startRepeat() {
	if c.repeat.running {
		return
	}
	c.repeat.running = true
	c.repeat.interval = c.config.RepeatDelay

	gen := c.repeat.gen
	c.repeat.timer = c.sched.AfterFunc(c.repeat.interval, func() { c.tick(gen) })
}

// tick applies one repeat step and reschedules. Ticks from a stopped
// generation are dropped.
func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.repeat.gen || !c.repeat.running {
		return
	}
	if !c.widget.Enabled() {
		c.repeat.stop()
		c.state = StateIdle
		return
	}

	// After the first tick the interval drops to the steady repeat rate.
	c.repeat.interval = c.config.RepeatInterval

	c.widget.SetAngle(c.widget.Angle() + angle.ToRadians(float64(c.repeat.speed)))
	c.notify.NotifyAdjusting(event.AdjustValueChanged, c.stepType(c.repeat.speed), c.widget.ValueInt(), true)

	c.repeat.timer = c.sched.AfterFunc(c.repeat.interval, func() { c.tick(gen) })
}
