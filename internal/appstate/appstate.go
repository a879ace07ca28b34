// Package appstate runs the interactive board window.
package appstate

import (
	"context"
	"image"
	"log"
	"sync"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/roughboard/internal/board"
	"github.com/example/roughboard/internal/config"
	"github.com/example/roughboard/internal/notify"
	"github.com/example/roughboard/internal/render"
	"github.com/example/roughboard/internal/shape"
	"github.com/example/roughboard/internal/theme"
)

// frameDropThreshold specifies how many consecutive frames can be canceled
// before a draw is allowed to complete to keep the UI responsive.
const frameDropThreshold = 10

// AppState holds application configuration for the UI.
type AppState struct {
	Board    *board.Board
	Theme    *theme.Theme
	Output   string
	Notifier *notify.Notifier
	Canvas   image.Point

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithBoard sets the board edited by the window.
func WithBoard(b *board.Board) Option { return func(a *AppState) { a.Board = b } }

// WithTheme sets the window palette.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithOutput sets the file path used when exporting.
func WithOutput(out string) Option { return func(a *AppState) { a.Output = out } }

// WithNotifier sets the notifier announcing exports and copies.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.Notifier = n } }

// WithCanvasSize sets the drawing surface size.
func WithCanvasSize(w, h int) Option { return func(a *AppState) { a.Canvas = image.Pt(w, h) } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		Output: render.DefaultExportName,
		Canvas: image.Pt(config.DefaultWidth, config.DefaultHeight),
	}
	for _, o := range opts {
		o(a)
	}
	if a.Board == nil {
		a.Board = board.New()
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	return a
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

// Main runs the window on s until it is closed.
func (a *AppState) Main(s screen.Screen) {
	defer a.notifyClose()

	r, err := render.New(a.Canvas.X, a.Canvas.Y, render.WithBackground(a.Theme.Canvas))
	if err != nil {
		log.Printf("renderer: %v", err)
		return
	}
	defer r.Close()
	sess := newSession(a.Board, r, a.Notifier, a.Output)
	b := a.Board
	ui := newControls(a.Theme, b, a.Canvas)

	win := ui.layout.windowSize()
	width, height := win.X, win.Y
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "Roughboard"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()

	quit := false
	registerActions(ui, sess, a.Theme, func() { quit = true })

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	var dropCount int
	paintCh := make(chan paintState, 1)
	go func() {
		for st := range paintCh {
			ctx, cancel := context.WithCancel(context.Background())
			paintMu.Lock()
			paintCancel = cancel
			paintMu.Unlock()
			drawFrame(ctx, s, w, st)
			paintMu.Lock()
			paintCancel = nil
			if ctx.Err() == nil {
				dropCount = 0
			}
			paintMu.Unlock()
			cancel()
		}
	}()
	defer close(paintCh)

	stopPaint := func() {
		paintMu.Lock()
		if paintCancel != nil {
			paintCancel()
		}
		paintMu.Unlock()
	}

	// fail ends the session on errors that mean the drawing can no longer
	// be trusted.
	fail := func(what string, err error) bool {
		if err == nil {
			return false
		}
		log.Printf("%s: %v", what, err)
		stopPaint()
		return true
	}

	for !quit {
		e := w.NextEvent()
		switch e := e.(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				stopPaint()
				return
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			paintMu.Lock()
			if paintCancel != nil {
				if dropCount < frameDropThreshold {
					paintCancel()
					dropCount++
				}
			}
			paintMu.Unlock()
			canvas, err := sess.frame()
			if fail("draw", err) {
				return
			}
			ui.layoutHints(b.State() == board.StateWriting, height)
			st := paintState{
				width:     width,
				height:    height,
				layout:    ui.layout,
				theme:     a.Theme,
				canvas:    canvas,
				buttons:   ui.buttons,
				states:    ui.buttonStates(),
				hints:     ui.shortcuts,
				hoverHint: ui.hoverHint,
				status:    statusLine(b, sess.cursor.String()),
				message:   sess.activeMessage(time.Now()),
				editing:   editingOverlay(b),
			}
			// Replace a frame the painter has not started yet.
			select {
			case paintCh <- st:
			default:
				select {
				case <-paintCh:
				default:
				}
				paintCh <- st
			}
		case mouse.Event:
			if e.Direction == mouse.DirPress && sess.dismissMessage() {
				w.Send(paint.Event{})
				continue
			}
			repaint, err := handleMouse(ui, sess, e, height)
			if fail("pointer", err) {
				return
			}
			if repaint {
				w.Send(paint.Event{})
			}
		case key.Event:
			repaint, err := handleKey(ui, sess, e)
			if fail("key", err) {
				return
			}
			if repaint {
				w.Send(paint.Event{})
			}
		}
	}
	stopPaint()
}

// registerActions binds the window commands to their toolbar buttons and
// keys.
func registerActions(ui *controls, sess *session, t *theme.Theme, quit func()) {
	b := sess.board
	ui.register("undo", "Undo", t, nil, func() { b.Undo() })
	ui.register("redo", "Redo", t, nil, func() { b.Redo() })
	ui.register("export", "Export", t, shortcutList{{Rune: 's', Modifiers: key.ModControl}}, sess.export)
	ui.register("pdf", "PDF", t, shortcutList{{Rune: 'e', Modifiers: key.ModControl}}, sess.exportPDF)
	ui.register("copy", "Copy", t, shortcutList{{Rune: 'c', Modifiers: key.ModControl}}, sess.copyImage)
	ui.register("copyurl", "", t, shortcutList{{Rune: 'c', Modifiers: key.ModControl | key.ModShift}}, sess.copyDataURL)
	ui.register("fill", "", t, shortcutList{{Rune: 'f'}}, func() { toggleFilled(b) })
	ui.register("textdone", "", t, nil, func() {
		if err := sess.commitText(); err != nil {
			log.Printf("commit text: %v", err)
		}
	})
	ui.register("quit", "", t, shortcutList{{Rune: 'q'}, {Rune: 'q', Modifiers: key.ModControl}}, quit)
	for _, tool := range board.Tools() {
		r := []rune(toolLabels[tool])[0] + ('a' - 'A')
		ui.register("tool:"+tool.String(), "", t, shortcutList{{Rune: r}}, func() { b.SetTool(tool) })
	}
	for i, col := range shape.Colors() {
		ui.register("color:"+col.String(), "", t, shortcutList{{Rune: '1' + rune(i)}}, func() {
			st := b.Style()
			st.Color = col
			b.SetStyle(st)
		})
	}
}

func editingOverlay(b *board.Board) *textOverlay {
	sel, ok := b.Selected()
	if !ok || b.State() != board.StateWriting {
		return nil
	}
	return &textOverlay{
		x:     sel.Shape.X1,
		y:     sel.Shape.Y1,
		text:  b.TextBuffer(),
		color: sel.Shape.Style.Color.RGBA(),
	}
}

// handleMouse routes a pointer event to the footer, the toolbar or the
// canvas. It reports whether the window needs repainting.
func handleMouse(ui *controls, sess *session, e mouse.Event, height int) (bool, error) {
	p := image.Pt(int(e.X), int(e.Y))
	press := e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress
	b := sess.board
	gesture := b.State() != board.StateNone && b.State() != board.StateWriting

	if !gesture {
		if p.In(ui.layout.footer(height)) {
			prev := ui.hoverHint
			ui.hoverHint = ui.hintAt(p)
			if press && ui.hoverHint >= 0 {
				ui.run(ui.shortcuts[ui.hoverHint].action)
				return true, nil
			}
			return prev != ui.hoverHint, nil
		}
		if p.X < ui.layout.toolbarWidth {
			prev := ui.hover
			ui.hover = ui.buttonAt(p)
			if press && ui.hover >= 0 {
				ui.buttons[ui.hover].Activate()
				return true, nil
			}
			return prev != ui.hover, nil
		}
		ui.hover, ui.hoverHint = -1, -1
	}

	x, y := ui.layout.toCanvas(e.X, e.Y)
	switch {
	case press:
		if !p.In(ui.layout.canvas) {
			return false, nil
		}
		if b.State() == board.StateWriting {
			// Clicking away from the text box finishes it.
			return true, sess.commitText()
		}
		return true, sess.pointerDown(x, y)
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
		return true, sess.pointerUp(x, y)
	case e.Direction == mouse.DirNone:
		prev := sess.cursor
		if err := sess.pointerMove(x, y); err != nil {
			return false, err
		}
		return gesture || prev != sess.cursor, nil
	}
	return false, nil
}

// handleKey routes a key event to the text box, the history shortcuts or
// the registered actions.
func handleKey(ui *controls, sess *session, e key.Event) (bool, error) {
	b := sess.board
	if b.State() == board.StateWriting {
		handled, err := b.HandleTextKey(e)
		if err != nil {
			return false, err
		}
		if b.State() != board.StateWriting {
			sess.invalidate()
		}
		return handled, nil
	}
	if e.Direction != key.DirPress {
		return false, nil
	}
	if b.HandleKey(board.ShortcutFromEvent(e)) {
		return true, nil
	}
	if name, ok := ui.actionForKey(e); ok {
		ui.run(name)
		return true, nil
	}
	return false, nil
}
