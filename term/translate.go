package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dialware/radial/input"
)

// Translator converts tcell events into dial input events. It tracks
// the previous button mask so a press, motion with the button down, and
// release can be told apart; tcell reports only the current mask.
//
// Terminals deliver no key-up events, so a direction key arrives as a
// press with the release synthesized immediately after. Holding a key
// shows up as repeated press/release pairs from the terminal's own
// autorepeat instead of the controller's timer.
type Translator struct {
	buttons tcell.ButtonMask
}

// NewTranslator creates a translator with no buttons held.
func NewTranslator() *Translator {
	return &Translator{}
}

// Pointer converts a mouse event into a pointer event. The second
// return is false for wheel-only and motionless events.
func (tr *Translator) Pointer(ev *tcell.EventMouse) (input.PointerEvent, bool) {
	x, y := ev.Position()
	mods := translateMods(ev.Modifiers())

	prev := tr.buttons
	now := ev.Buttons() &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)
	tr.buttons = now

	pressed := now&tcell.ButtonPrimary != 0
	wasPressed := prev&tcell.ButtonPrimary != 0

	var action input.PointerAction
	switch {
	case pressed && !wasPressed:
		action = input.PointerPress
	case pressed && wasPressed:
		action = input.PointerDrag
	case !pressed && wasPressed:
		action = input.PointerRelease
	default:
		return input.PointerEvent{}, false
	}

	return input.PointerEvent{
		Position:  input.Position{X: x, Y: y},
		Action:    action,
		Modifiers: mods,
	}, true
}

// Wheel converts a mouse event into a wheel event. The second return
// is false when no wheel flag is set. Scrolling down rotates positive,
// which steps the value down.
func (tr *Translator) Wheel(ev *tcell.EventMouse) (input.WheelEvent, bool) {
	var rotation float64
	if ev.Buttons()&tcell.WheelUp != 0 {
		rotation--
	}
	if ev.Buttons()&tcell.WheelDown != 0 {
		rotation++
	}
	if rotation == 0 {
		return input.WheelEvent{}, false
	}

	return input.WheelEvent{
		Rotation:  rotation,
		Modifiers: translateMods(ev.Modifiers()),
	}, true
}

// Key converts a key event into a dial key event. The second return is
// false for keys the dial does not handle.
func (tr *Translator) Key(ev *tcell.EventKey) (input.KeyEvent, bool) {
	var key input.Key
	switch ev.Key() {
	case tcell.KeyLeft:
		key = input.KeyLeft
	case tcell.KeyRight:
		key = input.KeyRight
	case tcell.KeyUp:
		key = input.KeyUp
	case tcell.KeyDown:
		key = input.KeyDown
	default:
		return input.KeyEvent{}, false
	}

	return input.KeyEvent{
		Key:       key,
		Modifiers: translateMods(ev.Modifiers()),
	}, true
}

// Feed routes one tcell event to the controller. Direction keys get a
// synthesized release right after the press. Returns true when the
// event was consumed.
func (tr *Translator) Feed(c *input.Controller, ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventMouse:
		consumed := false
		if wheel, ok := tr.Wheel(e); ok {
			c.HandleWheel(wheel)
			consumed = true
		}
		if pointer, ok := tr.Pointer(e); ok {
			c.HandlePointer(pointer)
			consumed = true
		}
		return consumed

	case *tcell.EventKey:
		key, ok := tr.Key(e)
		if !ok {
			return false
		}
		c.HandleKeyPress(key)
		c.HandleKeyRelease(key)
		return true

	case *tcell.EventFocus:
		c.HandleFocus(e.Focused)
		return true
	}

	return false
}

// translateMods converts a tcell modifier mask.
func translateMods(m tcell.ModMask) input.Modifier {
	var result input.Modifier
	if m&tcell.ModShift != 0 {
		result |= input.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= input.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= input.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= input.ModMeta
	}
	return result
}
