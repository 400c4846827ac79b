package input

import "time"

// Default key-repeat timing: a longer delay before the first repeat, then
// a short steady interval.
const (
	DefaultRepeatDelay    = 250 * time.Millisecond
	DefaultRepeatInterval = 40 * time.Millisecond
)

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop prevents the callback from firing. Returns false if it
	// already fired or was already stopped.
	Stop() bool
}

// Scheduler schedules single-shot callbacks. Injecting a Scheduler keeps
// the key-repeat machine testable without a real clock.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// systemScheduler schedules on the runtime timer heap.
type systemScheduler struct{}

func (systemScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// SystemScheduler returns the real-clock scheduler.
func SystemScheduler() Scheduler {
	return systemScheduler{}
}

// repeatState tracks the key-repeat machine while a direction key is held.
type repeatState struct {
	// speed is the signed step in degrees per tick; 0 when idle.
	speed int

	// running is true while a repeat is scheduled.
	running bool

	// interval is the current tick interval. It starts at the initial
	// delay and drops to the steady interval after the first tick.
	interval time.Duration

	// timer is the pending tick, if any.
	timer Timer

	// gen is bumped on every stop; ticks scheduled under an older
	// generation are dropped, so a stopped timer can never apply a
	// stale step.
	gen uint64
}

// stop cancels any pending tick and resets the machine.
func (r *repeatState) stop() {
	r.gen++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.running = false
	r.speed = 0
	r.interval = 0
}
