package appstate

import (
	"image"
	"strings"

	"golang.org/x/mobile/event/key"

	"github.com/example/roughboard/internal/board"
	"github.com/example/roughboard/internal/shape"
	"github.com/example/roughboard/internal/theme"
)

const (
	titleHeight  = 24
	footerHeight = 24
	buttonHeight = 24
	minToolbar   = 72
)

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []board.KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []board.KeyShortcut

func (s shortcutList) KeyboardShortcuts() []board.KeyShortcut { return []board.KeyShortcut(s) }

// Shortcut is a clickable hint in the footer.
type Shortcut struct {
	label  string
	action string
	rect   image.Rectangle
}

// layout places the window regions. The canvas is anchored below the title
// bar and right of the toolbar.
type layout struct {
	toolbarWidth int
	canvas       image.Rectangle
}

func newLayout(canvasW, canvasH int, labels []string) layout {
	tw := minToolbar
	for _, l := range labels {
		if w := labelWidth(l) + 16; w > tw {
			tw = w
		}
	}
	return layout{
		toolbarWidth: tw,
		canvas:       image.Rect(tw, titleHeight, tw+canvasW, titleHeight+canvasH),
	}
}

func (l layout) windowSize() image.Point {
	return image.Pt(l.canvas.Max.X, l.canvas.Max.Y+footerHeight)
}

// toCanvas converts window coordinates to surface coordinates.
func (l layout) toCanvas(x, y float32) (float64, float64) {
	return float64(x) - float64(l.canvas.Min.X), float64(y) - float64(l.canvas.Min.Y)
}

func (l layout) footer(height int) image.Rectangle {
	return image.Rect(0, height-footerHeight, l.canvas.Max.X, height)
}

// controls holds the toolbar, the footer and the keyboard map.
type controls struct {
	layout    layout
	buttons   []Button
	hover     int
	shortcuts []Shortcut
	hoverHint int
	actions   map[string]func()
	keys      map[board.KeyShortcut]string
	// actionY is where the next action button goes.
	actionY int
}

var toolLabels = map[board.Tool]string{
	board.ToolSelection: "V:Select",
	board.ToolLine:      "L:Line",
	board.ToolRectangle: "R:Rect",
	board.ToolBrush:     "B:Brush",
	board.ToolText:      "T:Text",
}

func newControls(t *theme.Theme, b *board.Board, canvas image.Point) *controls {
	c := &controls{
		hover:     -1,
		hoverHint: -1,
		actions:   map[string]func(){},
		keys:      map[board.KeyShortcut]string{},
	}
	labels := []string{"Roughboard", "Filled"}
	for _, l := range toolLabels {
		labels = append(labels, l)
	}
	c.layout = newLayout(canvas.X, canvas.Y, labels)
	tw := c.layout.toolbarWidth

	y := titleHeight
	for _, tool := range board.Tools() {
		c.add(&CacheButton{Button: &ToolButton{
			label: toolLabels[tool], tool: tool, theme: t,
			selected: b.Tool,
			onSelect: b.SetTool,
		}}, image.Rect(0, y, tw, y+buttonHeight))
		y += buttonHeight
	}
	y += 4
	for i, col := range shape.Colors() {
		x := (i % 2) * tw / 2
		c.add(&CacheButton{Button: &ColorButton{
			color: col, theme: t,
			selected: func() shape.Color { return b.Style().Color },
			onSelect: func(col shape.Color) {
				st := b.Style()
				st.Color = col
				b.SetStyle(st)
			},
		}}, image.Rect(x, y, x+tw/2, y+buttonHeight))
		if i%2 == 1 {
			y += buttonHeight
		}
	}
	c.add(&ToggleButton{
		label: "Filled", theme: t,
		checked:  func() bool { return b.Style().Filled },
		onToggle: func() { toggleFilled(b) },
	}, image.Rect(0, y, tw, y+buttonHeight))
	y += buttonHeight + 4
	c.actionY = y
	return c
}

func toggleFilled(b *board.Board) {
	st := b.Style()
	st.Filled = !st.Filled
	b.SetStyle(st)
}

func (c *controls) add(btn Button, r image.Rectangle) {
	btn.SetRect(r)
	c.buttons = append(c.buttons, btn)
}

// register binds an action name to fn and its keyboard shortcuts. Actions
// with a toolbar label also get a toolbar button.
func (c *controls) register(name, label string, t *theme.Theme, keys KeyboardShortcuts, fn func()) {
	c.actions[name] = fn
	if keys != nil {
		for _, sc := range keys.KeyboardShortcuts() {
			c.keys[sc] = name
		}
	}
	if label != "" {
		tw := c.layout.toolbarWidth
		c.add(&CacheButton{Button: &ActionButton{label: label, theme: t, onActivate: fn}},
			image.Rect(0, c.actionY, tw, c.actionY+buttonHeight))
		c.actionY += buttonHeight
	}
}

// run performs the named action.
func (c *controls) run(name string) bool {
	fn, ok := c.actions[name]
	if ok {
		fn()
	}
	return ok
}

// actionForKey looks up the action bound to a key press.
func (c *controls) actionForKey(e key.Event) (string, bool) {
	sc := board.ShortcutFromEvent(e)
	if name, ok := c.keys[sc]; ok {
		return name, true
	}
	// Bindings are made by rune, so drop the platform key code.
	sc.Code = key.CodeUnknown
	name, ok := c.keys[sc]
	return name, ok
}

// buttonAt returns the index of the toolbar button under p, or -1.
func (c *controls) buttonAt(p image.Point) int {
	for i, b := range c.buttons {
		if p.In(b.Rect()) {
			return i
		}
	}
	return -1
}

// hintAt returns the index of the footer shortcut under p, or -1.
func (c *controls) hintAt(p image.Point) int {
	for i, s := range c.shortcuts {
		if p.In(s.rect) {
			return i
		}
	}
	return -1
}

// buttonStates snapshots how every button should look.
func (c *controls) buttonStates() []ButtonState {
	out := make([]ButtonState, len(c.buttons))
	for i, b := range c.buttons {
		switch {
		case isSelected(b):
			out[i] = StatePressed
		case i == c.hover:
			out[i] = StateHover
		}
	}
	return out
}

func isSelected(b Button) bool {
	if cb, ok := b.(*CacheButton); ok {
		b = cb.Button
	}
	s, ok := b.(selectable)
	return ok && s.Selected()
}

// layoutHints places the footer shortcuts for the current mode.
func (c *controls) layoutHints(writing bool, height int) {
	var hints []Shortcut
	if writing {
		hints = []Shortcut{
			{label: "Enter:done", action: "textdone"},
			{label: "Esc:done", action: "textdone"},
		}
	} else {
		hints = []Shortcut{
			{label: "^Z:undo", action: "undo"},
			{label: "^Shift+Z:redo", action: "redo"},
			{label: "^S:export", action: "export"},
			{label: "^E:pdf", action: "pdf"},
			{label: "^C:copy", action: "copy"},
			{label: "F:fill", action: "fill"},
			{label: "Q:quit", action: "quit"},
		}
	}
	x := c.layout.toolbarWidth + 4
	y := height - footerHeight + 16
	for i := range hints {
		w := labelWidth(hints[i].label) - 4
		hints[i].rect = image.Rect(x-2, y-14, x+w+2, y+4)
		x = hints[i].rect.Max.X + 8
	}
	if len(hints) != len(c.shortcuts) {
		c.hoverHint = -1
	}
	c.shortcuts = hints
}

func (c *controls) hintLabels() []string {
	out := make([]string, len(c.shortcuts))
	for i, s := range c.shortcuts {
		out[i] = s.label
	}
	return out
}

func statusLine(b *board.Board, cursor string) string {
	parts := []string{"tool: " + b.Tool().String(), "color: " + b.Style().Color.String()}
	if b.Style().Filled {
		parts = append(parts, "filled")
	}
	if cursor != "" && cursor != "default" {
		parts = append(parts, "cursor: "+cursor)
	}
	return strings.Join(parts, "  ")
}
