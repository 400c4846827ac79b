// Package render draws a radial dial onto a cell grid. The renderer is
// backend-agnostic: anything with SetContent can be a Surface, which in
// practice is a term.Terminal or a test double.
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/dialware/radial"
	"github.com/dialware/radial/angle"
)

// Surface is the cell grid the renderer draws on.
type Surface interface {
	SetContent(x, y int, r rune, style tcell.Style)
}

// Rect is the screen region the dial occupies.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Theme holds the styles for each dial element.
type Theme struct {
	Ring    tcell.Style
	Tick    tcell.Style
	Axis    tcell.Style
	Pointer tcell.Style
	Text    tcell.Style
	Border  tcell.Style
}

// DefaultTheme returns the stock color scheme.
func DefaultTheme() Theme {
	return Theme{
		Ring:    tcell.StyleDefault.Foreground(tcell.ColorGray),
		Tick:    tcell.StyleDefault.Foreground(tcell.ColorSilver),
		Axis:    tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray),
		Pointer: tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true),
		Text:    tcell.StyleDefault.Foreground(tcell.ColorWhite),
		Border:  tcell.StyleDefault.Foreground(tcell.ColorTeal),
	}
}

const (
	runeRing      = '·'
	runeUnitTick  = '\''
	runeBlockTick = '+'
	runeAxisH     = '─'
	runeAxisV     = '│'
	runePointer   = '*'
	runeHeavy     = '█'
)

// arrowForAngle picks an arrowhead rune by octant.
func arrowForAngle(a float64) rune {
	arrows := []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}
	octant := int(math.Round(angle.Normalize(a)/(math.Pi/4))) % 8
	return arrows[octant]
}

// Renderer draws dials with a fixed theme.
type Renderer struct {
	theme Theme
}

// NewRenderer creates a renderer with the given theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Draw renders the dial into the rectangle. Rectangles smaller than
// 3x3 cells are skipped.
func (r *Renderer) Draw(s Surface, dial *radial.Slider, rect Rect) {
	if rect.Width < 3 || rect.Height < 3 {
		return
	}

	theme := r.theme
	if !dial.Enabled() {
		theme = dimTheme(theme)
	}

	if dial.Focused() {
		r.drawBorder(s, rect, theme.Border)
	}

	inner := rect
	inner.X++
	inner.Y++
	inner.Width -= 2
	inner.Height -= 2
	if inner.Width < 3 || inner.Height < 3 {
		return
	}

	cx := inner.X + inner.Width/2
	cy := inner.Y + inner.Height/2
	rx := float64(inner.Width-1) / 2
	ry := float64(inner.Height-1) / 2

	if dial.AxisVisible() {
		r.drawAxes(s, inner, cx, cy, theme.Axis)
	}

	r.drawRing(s, cx, cy, rx, ry, theme.Ring)
	r.drawTicks(s, dial, cx, cy, rx, ry, theme.Tick)
	r.drawPointer(s, dial, cx, cy, rx, ry, theme.Pointer)

	if dial.TextVisible() {
		r.drawText(s, dial.Text(), cx, cy, theme.Text)
	}
}

// plot converts a dial angle to a cell on the ellipse of radius scale.
// Screen y grows downward, so the y component is negated.
func plot(a float64, cx, cy int, rx, ry, scale float64) (int, int) {
	x := cx + int(math.Round(scale*rx*math.Cos(a)))
	y := cy - int(math.Round(scale*ry*math.Sin(a)))
	return x, y
}

func (r *Renderer) drawRing(s Surface, cx, cy int, rx, ry float64, style tcell.Style) {
	steps := int(8 * (rx + ry))
	if steps < 32 {
		steps = 32
	}
	for i := 0; i < steps; i++ {
		a := angle.Tau * float64(i) / float64(steps)
		x, y := plot(a, cx, cy, rx, ry, 1)
		s.SetContent(x, y, runeRing, style)
	}
}

func (r *Renderer) drawTicks(s Surface, dial *radial.Slider, cx, cy int, rx, ry float64, style tcell.Style) {
	ticks := dial.Ticks()

	if ticks.Has(radial.TickUnit) {
		r.drawTickSet(s, dial.UnitIncrement(), runeUnitTick, cx, cy, rx, ry, style)
	}
	if ticks.Has(radial.TickBlock) {
		r.drawTickSet(s, dial.BlockIncrement(), runeBlockTick, cx, cy, rx, ry, style)
	}
}

func (r *Renderer) drawTickSet(s Surface, stepDegrees int, tick rune, cx, cy int, rx, ry float64, style tcell.Style) {
	if stepDegrees <= 0 {
		return
	}
	step := angle.ToRadians(float64(stepDegrees))
	for a := 0.0; a < angle.Tau; a += step {
		x, y := plot(a, cx, cy, rx, ry, 1)
		s.SetContent(x, y, tick, style)
	}
}

func (r *Renderer) drawAxes(s Surface, inner Rect, cx, cy int, style tcell.Style) {
	for x := inner.X; x < inner.X+inner.Width; x++ {
		s.SetContent(x, cy, runeAxisH, style)
	}
	for y := inner.Y; y < inner.Y+inner.Height; y++ {
		s.SetContent(cx, y, runeAxisV, style)
	}
}

func (r *Renderer) drawPointer(s Surface, dial *radial.Slider, cx, cy int, rx, ry float64, style tcell.Style) {
	a := dial.Angle()

	body := runePointer
	if dial.LineWidth() >= 2 {
		body = runeHeavy
	}

	steps := int(math.Max(rx, ry)) * 2
	if steps < 4 {
		steps = 4
	}
	for i := 1; i < steps; i++ {
		scale := float64(i) / float64(steps)
		x, y := plot(a, cx, cy, rx, ry, scale)
		s.SetContent(x, y, body, style)
	}

	x, y := plot(a, cx, cy, rx, ry, 1)
	s.SetContent(x, y, arrowForAngle(a), style)
}

func (r *Renderer) drawText(s Surface, text string, cx, cy int, style tcell.Style) {
	runes := []rune(text)
	start := cx - len(runes)/2
	for i, ch := range runes {
		s.SetContent(start+i, cy, ch, style)
	}
}

func (r *Renderer) drawBorder(s Surface, rect Rect, style tcell.Style) {
	right := rect.X + rect.Width - 1
	bottom := rect.Y + rect.Height - 1

	for x := rect.X + 1; x < right; x++ {
		s.SetContent(x, rect.Y, '─', style)
		s.SetContent(x, bottom, '─', style)
	}
	for y := rect.Y + 1; y < bottom; y++ {
		s.SetContent(rect.X, y, '│', style)
		s.SetContent(right, y, '│', style)
	}
	s.SetContent(rect.X, rect.Y, '┌', style)
	s.SetContent(right, rect.Y, '┐', style)
	s.SetContent(rect.X, bottom, '└', style)
	s.SetContent(right, bottom, '┘', style)
}

func dimTheme(t Theme) Theme {
	t.Ring = t.Ring.Dim(true)
	t.Tick = t.Tick.Dim(true)
	t.Axis = t.Axis.Dim(true)
	t.Pointer = t.Pointer.Dim(true)
	t.Text = t.Text.Dim(true)
	t.Border = t.Border.Dim(true)
	return t
}
