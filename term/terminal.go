// Package term hosts the dial on a tcell terminal screen. Terminal
// wraps the screen lifecycle; Translator converts tcell input events
// into the controller's pointer, wheel and key events.
package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal manages a tcell screen for dial rendering.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewTerminal creates a terminal on the real screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen creates a terminal on a supplied screen, such
// as a tcell simulation screen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init initializes the screen and enables mouse reporting.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	t.screen.EnablePaste()
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

// Size returns the screen dimensions in cells.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

// SetContent places a rune at the given cell.
func (t *Terminal) SetContent(x, y int, r rune, style tcell.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.SetContent(x, y, r, nil, style)
}

// Clear erases the screen buffer.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Clear()
}

// Show flushes pending screen updates.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Show()
}

// Beep rings the terminal bell.
func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()
	_ = t.screen.Beep() // best-effort; terminal may not support beep
}

// PollEvent blocks until the next input event. Returns nil after Fini.
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// PostEvent queues an event for PollEvent, waking a blocked loop.
func (t *Terminal) PostEvent(ev tcell.Event) {
	_ = t.screen.PostEvent(ev) // best-effort; event queue may be full
}
