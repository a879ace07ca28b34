package appstate

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/roughboard/internal/board"
	"github.com/example/roughboard/internal/shape"
	"github.com/example/roughboard/internal/theme"
)

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
// It delegates all interface methods to the wrapped Button while
// caching the result of Draw for each state.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

// selectable is implemented by buttons that show a persistent selection.
type selectable interface {
	Selected() bool
}

func buttonFill(t *theme.Theme, state ButtonState) color.RGBA {
	switch state {
	case StateHover:
		return t.ButtonBackgroundHover
	case StatePressed:
		return t.ButtonBackgroundPress
	}
	return t.ButtonBackground
}

func drawLabel(dst *image.RGBA, rect image.Rectangle, label string, col color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: basicfont.Face7x13,
		Dot: fixed.P(rect.Min.X+4, rect.Min.Y+16)}
	d.DrawString(label)
}

func labelWidth(label string) int {
	d := &font.Drawer{Face: basicfont.Face7x13}
	return d.MeasureString(label).Ceil() + 8
}

// ActionButton runs a command such as undo or export.
type ActionButton struct {
	label      string
	theme      *theme.Theme
	rect       image.Rectangle
	onActivate func()
}

func (ab *ActionButton) Draw(dst *image.RGBA, state ButtonState) {
	draw.Draw(dst, ab.rect, &image.Uniform{buttonFill(ab.theme, state)}, image.Point{}, draw.Src)
	drawRect(dst, ab.rect, ab.theme.ButtonBorder, 1)
	drawLabel(dst, ab.rect, ab.label, ab.theme.ButtonText)
}

func (ab *ActionButton) Rect() image.Rectangle     { return ab.rect }
func (ab *ActionButton) SetRect(r image.Rectangle) { ab.rect = r }
func (ab *ActionButton) Activate() {
	if ab.onActivate != nil {
		ab.onActivate()
	}
}

// ToolButton represents a toolbar button that selects a pointer tool.
type ToolButton struct {
	label    string
	tool     board.Tool
	theme    *theme.Theme
	rect     image.Rectangle
	selected func() board.Tool
	// onSelect is called when the button is activated.
	onSelect func(board.Tool)
}

func (tb *ToolButton) Draw(dst *image.RGBA, state ButtonState) {
	draw.Draw(dst, tb.rect, &image.Uniform{buttonFill(tb.theme, state)}, image.Point{}, draw.Src)
	text := tb.theme.ButtonText
	if state == StatePressed {
		text = tb.theme.ButtonTextPress
	}
	drawLabel(dst, tb.rect, tb.label, text)
}

func (tb *ToolButton) Rect() image.Rectangle     { return tb.rect }
func (tb *ToolButton) SetRect(r image.Rectangle) { tb.rect = r }
func (tb *ToolButton) Selected() bool            { return tb.selected != nil && tb.selected() == tb.tool }
func (tb *ToolButton) Activate() {
	if tb.onSelect != nil {
		tb.onSelect(tb.tool)
	}
}

// ColorButton is a palette swatch.
type ColorButton struct {
	color    shape.Color
	theme    *theme.Theme
	rect     image.Rectangle
	selected func() shape.Color
	onSelect func(shape.Color)
}

func (cb *ColorButton) Draw(dst *image.RGBA, state ButtonState) {
	draw.Draw(dst, cb.rect, &image.Uniform{cb.theme.ToolbarBackground}, image.Point{}, draw.Src)
	swatch := cb.rect.Inset(3)
	draw.Draw(dst, swatch, &image.Uniform{cb.color.RGBA()}, image.Point{}, draw.Src)
	switch state {
	case StatePressed:
		drawRect(dst, cb.rect, cb.theme.ButtonBorder, 2)
	case StateHover:
		drawRect(dst, cb.rect, cb.theme.ButtonBackgroundHover, 2)
	}
}

func (cb *ColorButton) Rect() image.Rectangle     { return cb.rect }
func (cb *ColorButton) SetRect(r image.Rectangle) { cb.rect = r }
func (cb *ColorButton) Selected() bool            { return cb.selected != nil && cb.selected() == cb.color }
func (cb *ColorButton) Activate() {
	if cb.onSelect != nil {
		cb.onSelect(cb.color)
	}
}

// ToggleButton is a labelled check box. The box is ticked when drawn in
// the pressed state.
type ToggleButton struct {
	label    string
	theme    *theme.Theme
	rect     image.Rectangle
	checked  func() bool
	onToggle func()
}

func (tb *ToggleButton) Draw(dst *image.RGBA, state ButtonState) {
	fill := state
	if fill == StatePressed {
		fill = StateDefault
	}
	draw.Draw(dst, tb.rect, &image.Uniform{buttonFill(tb.theme, fill)}, image.Point{}, draw.Src)
	box := image.Rect(tb.rect.Min.X+4, tb.rect.Min.Y+6, tb.rect.Min.X+16, tb.rect.Min.Y+18)
	drawRect(dst, box, tb.theme.ButtonBorder, 1)
	if state == StatePressed {
		draw.Draw(dst, box.Inset(3), &image.Uniform{tb.theme.ButtonText}, image.Point{}, draw.Src)
	}
	drawLabel(dst, tb.rect.Add(image.Pt(16, 0)), tb.label, tb.theme.ButtonText)
}

func (tb *ToggleButton) Rect() image.Rectangle     { return tb.rect }
func (tb *ToggleButton) SetRect(r image.Rectangle) { tb.rect = r }
func (tb *ToggleButton) Selected() bool            { return tb.checked != nil && tb.checked() }
func (tb *ToggleButton) Activate() {
	if tb.onToggle != nil {
		tb.onToggle()
	}
}

func drawRect(img *image.RGBA, rect image.Rectangle, col color.Color, thick int) {
	u := &image.Uniform{col}
	for i := 0; i < thick; i++ {
		r := rect.Inset(i)
		if r.Empty() {
			return
		}
		draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), u, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	}
}
