package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dialware/radial"
	"github.com/dialware/radial/input"
)

func TestPointerPressDragRelease(t *testing.T) {
	tr := NewTranslator()

	ev, ok := tr.Pointer(tcell.NewEventMouse(10, 5, tcell.ButtonPrimary, tcell.ModNone))
	if !ok || ev.Action != input.PointerPress {
		t.Fatalf("button down = %+v (%v), want press", ev, ok)
	}
	if ev.Position.X != 10 || ev.Position.Y != 5 {
		t.Errorf("press position = %+v", ev.Position)
	}

	ev, ok = tr.Pointer(tcell.NewEventMouse(12, 6, tcell.ButtonPrimary, tcell.ModNone))
	if !ok || ev.Action != input.PointerDrag {
		t.Fatalf("button held = %+v (%v), want drag", ev, ok)
	}

	ev, ok = tr.Pointer(tcell.NewEventMouse(12, 6, tcell.ButtonNone, tcell.ModNone))
	if !ok || ev.Action != input.PointerRelease {
		t.Fatalf("button up = %+v (%v), want release", ev, ok)
	}

	// No button and none previously held: nothing to report.
	if _, ok = tr.Pointer(tcell.NewEventMouse(13, 6, tcell.ButtonNone, tcell.ModNone)); ok {
		t.Error("motionless event produced a pointer event")
	}
}

func TestPointerCarriesModifiers(t *testing.T) {
	tr := NewTranslator()

	ev, ok := tr.Pointer(tcell.NewEventMouse(0, 0, tcell.ButtonPrimary, tcell.ModShift|tcell.ModCtrl))
	if !ok {
		t.Fatal("press not reported")
	}
	if !ev.Modifiers.HasShift() || !ev.Modifiers.HasCtrl() {
		t.Errorf("modifiers = %v, want shift+ctrl", ev.Modifiers)
	}
}

func TestWheel(t *testing.T) {
	tr := NewTranslator()

	ev, ok := tr.Wheel(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	if !ok || ev.Rotation != 1 {
		t.Errorf("wheel down = %+v (%v), want rotation 1", ev, ok)
	}

	ev, ok = tr.Wheel(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	if !ok || ev.Rotation != -1 {
		t.Errorf("wheel up = %+v (%v), want rotation -1", ev, ok)
	}

	if _, ok = tr.Wheel(tcell.NewEventMouse(0, 0, tcell.ButtonPrimary, tcell.ModNone)); ok {
		t.Error("plain button produced a wheel event")
	}
}

func TestWheelDoesNotDisturbButtonTracking(t *testing.T) {
	tr := NewTranslator()

	// Wheel flags must not register as button state.
	if _, ok := tr.Pointer(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone)); ok {
		t.Error("wheel event produced a pointer event")
	}

	ev, ok := tr.Pointer(tcell.NewEventMouse(0, 0, tcell.ButtonPrimary, tcell.ModNone))
	if !ok || ev.Action != input.PointerPress {
		t.Errorf("press after wheel = %+v (%v), want press", ev, ok)
	}
}

func TestKey(t *testing.T) {
	tr := NewTranslator()

	tests := []struct {
		name     string
		key      tcell.Key
		expected input.Key
	}{
		{"left", tcell.KeyLeft, input.KeyLeft},
		{"right", tcell.KeyRight, input.KeyRight},
		{"up", tcell.KeyUp, input.KeyUp},
		{"down", tcell.KeyDown, input.KeyDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := tr.Key(tcell.NewEventKey(tt.key, 0, tcell.ModNone))
			if !ok || ev.Key != tt.expected {
				t.Errorf("Key() = %+v (%v), want %v", ev, ok, tt.expected)
			}
		})
	}

	if _, ok := tr.Key(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); ok {
		t.Error("rune key translated")
	}
	if _, ok := tr.Key(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)); ok {
		t.Error("enter key translated")
	}
}

func TestKeyCarriesModifiers(t *testing.T) {
	tr := NewTranslator()

	ev, ok := tr.Key(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift))
	if !ok || !ev.Modifiers.HasShift() {
		t.Errorf("shifted key = %+v (%v)", ev, ok)
	}
}

func TestFeedKeySynthesizesRelease(t *testing.T) {
	s := radial.NewDegrees()
	c := input.NewController(s, s.Dispatcher(), input.DefaultConfig())
	tr := NewTranslator()

	if !tr.Feed(c, tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)) {
		t.Fatal("direction key not consumed")
	}
	// Press plus synthesized release: one unit step, interaction over.
	if got := s.Value(); got != 1 {
		t.Errorf("value after key feed = %v, want 1", got)
	}
	if got := c.State(); got != input.StateIdle {
		t.Errorf("state after key feed = %v, want idle", got)
	}
}

func TestFeedMouseDragSequence(t *testing.T) {
	s := radial.NewDegrees()
	c := input.NewController(s, s.Dispatcher(), input.DefaultConfig())
	c.SetBounds(100, 100)
	tr := NewTranslator()

	tr.Feed(c, tcell.NewEventMouse(0, 50, tcell.ButtonPrimary, tcell.ModNone))
	if got := c.State(); got != input.StatePointerDragging {
		t.Fatalf("state after press = %v", got)
	}
	if got := s.Value(); got != 180 {
		t.Errorf("value after press at west = %v, want 180", got)
	}

	tr.Feed(c, tcell.NewEventMouse(0, 50, tcell.ButtonNone, tcell.ModNone))
	if got := c.State(); got != input.StateIdle {
		t.Errorf("state after release = %v", got)
	}
}

func TestFeedWheel(t *testing.T) {
	s := radial.NewDegrees()
	s.SetValue(90)
	c := input.NewController(s, s.Dispatcher(), input.DefaultConfig())
	tr := NewTranslator()

	tr.Feed(c, tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	if got := s.Value(); got != 89 {
		t.Errorf("value after wheel down = %v, want 89", got)
	}
}

func TestFeedIgnoresUnrelatedEvents(t *testing.T) {
	s := radial.NewDegrees()
	c := input.NewController(s, s.Dispatcher(), input.DefaultConfig())
	tr := NewTranslator()

	if tr.Feed(c, tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("rune key consumed")
	}
	if tr.Feed(c, tcell.NewEventResize(80, 24)) {
		t.Error("resize consumed")
	}
}
