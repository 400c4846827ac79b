package event

import "errors"

// ErrNilObserver is returned when a nil observer is registered.
var ErrNilObserver = errors.New("observer cannot be nil")

// Dispatcher fans notifications out to registered observers. Dispatch is
// synchronous: every observer has run before the triggering call returns.
//
// Both channels are gated by the enabled predicate; while the widget is
// disabled no notification fires, even for direct programmatic mutations.
type Dispatcher struct {
	source  any
	enabled func() bool

	changes registry[ChangeObserver]
	adjusts registry[AdjustmentObserver]
}

// NewDispatcher creates a dispatcher for the given source widget.
// A nil enabled predicate means always enabled.
func NewDispatcher(source any, enabled func() bool) *Dispatcher {
	return &Dispatcher{source: source, enabled: enabled}
}

// OnChange registers an observer on the change channel.
func (d *Dispatcher) OnChange(fn ChangeObserver) (Handle, error) {
	if fn == nil {
		return "", ErrNilObserver
	}
	return d.changes.add(fn), nil
}

// RemoveChange unregisters a change observer.
// Returns false if the handle is not registered.
func (d *Dispatcher) RemoveChange(h Handle) bool {
	return d.changes.remove(h)
}

// OnAdjustment registers an observer on the adjustment channel.
func (d *Dispatcher) OnAdjustment(fn AdjustmentObserver) (Handle, error) {
	if fn == nil {
		return "", ErrNilObserver
	}
	return d.adjusts.add(fn), nil
}

// RemoveAdjustment unregisters an adjustment observer.
// Returns false if the handle is not registered.
func (d *Dispatcher) RemoveAdjustment(h Handle) bool {
	return d.adjusts.remove(h)
}

// ChangeObserverCount returns the number of registered change observers.
func (d *Dispatcher) ChangeObserverCount() int {
	return d.changes.count()
}

// AdjustmentObserverCount returns the number of registered adjustment
// observers.
func (d *Dispatcher) AdjustmentObserverCount() int {
	return d.adjusts.count()
}

// NotifyChanged delivers a settled change notification.
func (d *Dispatcher) NotifyChanged() {
	if !d.isEnabled() {
		return
	}
	fns := d.changes.snapshot()
	if len(fns) == 0 {
		return
	}
	ev := ChangeEvent{Source: d.source}
	for _, fn := range fns {
		fn(ev)
	}
}

// NotifyAdjusting delivers a live adjustment notification.
func (d *Dispatcher) NotifyAdjusting(id AdjustmentID, typ AdjustmentType, value int, adjusting bool) {
	if !d.isEnabled() {
		return
	}
	fns := d.adjusts.snapshot()
	if len(fns) == 0 {
		return
	}
	ev := AdjustmentEvent{
		Source:    d.source,
		ID:        id,
		Type:      typ,
		Value:     value,
		Adjusting: adjusting,
	}
	for _, fn := range fns {
		fn(ev)
	}
}

func (d *Dispatcher) isEnabled() bool {
	return d.enabled == nil || d.enabled()
}
