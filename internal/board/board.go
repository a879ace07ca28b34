// Package board implements the interaction state machine of the drawing
// surface. It turns pointer and keyboard input into shape edits recorded in a
// history store.
package board

import (
	"errors"
	"log"
	"slices"

	"github.com/google/uuid"

	"github.com/example/roughboard/internal/geom"
	"github.com/example/roughboard/internal/history"
	"github.com/example/roughboard/internal/hittest"
	"github.com/example/roughboard/internal/shape"
)

// Selection is the shape a gesture is working on, captured when the gesture
// started.
type Selection struct {
	Shape shape.Shape
	Part  hittest.Part
	// Picked is set when the shape was grabbed with the selection tool
	// rather than just created.
	Picked bool
	// Offset from the pointer to (X1, Y1) at pointer-down.
	Offset geom.Point
	// PointOffsets holds the offset from the pointer to every brush sample.
	PointOffsets []geom.Point
	// Down is the pointer-down position.
	Down geom.Point
}

// Board owns one drawing session.
type Board struct {
	ID string

	history *history.Store
	tool    Tool
	style   shape.Style
	state   State
	sel     *Selection
	text    []rune
	logger  *log.Logger
}

// Option modifies a Board during creation.
type Option func(*Board)

// WithTool sets the initially active tool.
func WithTool(t Tool) Option { return func(b *Board) { b.tool = t } }

// WithStyle sets the style given to new shapes.
func WithStyle(s shape.Style) Option { return func(b *Board) { b.style = s } }

// WithHistory uses h instead of an empty history.
func WithHistory(h *history.Store) Option { return func(b *Board) { b.history = h } }

// WithLogger enables gesture level debug logging.
func WithLogger(l *log.Logger) Option { return func(b *Board) { b.logger = l } }

// WithID overrides the generated session identifier.
func WithID(id string) Option { return func(b *Board) { b.ID = id } }

// New creates a Board with the provided options. The default tool draws
// rectangles in black.
func New(opts ...Option) *Board {
	b := &Board{
		ID:    uuid.NewString(),
		tool:  ToolRectangle,
		style: shape.Style{Color: shape.Black},
	}
	for _, o := range opts {
		o(b)
	}
	if b.history == nil {
		b.history = history.New(shape.Collection{})
	}
	return b
}

func (b *Board) debugf(format string, args ...any) {
	if b.logger != nil {
		b.logger.Printf("%.8s "+format, append([]any{b.ID}, args...)...)
	}
}

// History exposes the underlying store so observers can subscribe to it.
func (b *Board) History() *history.Store { return b.history }

// Shapes returns a copy of the visible shapes.
func (b *Board) Shapes() shape.Collection { return b.history.Current().Clone() }

// State returns the phase of the current gesture.
func (b *Board) State() State { return b.state }

// Tool returns the active tool.
func (b *Board) Tool() Tool { return b.tool }

// SetTool changes the active tool. It does not interrupt a gesture.
func (b *Board) SetTool(t Tool) { b.tool = t }

// Style returns the style given to new shapes.
func (b *Board) Style() shape.Style { return b.style }

// SetStyle changes the style given to new shapes.
func (b *Board) SetStyle(s shape.Style) { b.style = s }

// Selected returns a copy of the current selection, if any.
func (b *Board) Selected() (Selection, bool) {
	if b.sel == nil {
		return Selection{}, false
	}
	return *b.sel, true
}

// EditingID reports the shape open for text entry.
func (b *Board) EditingID() (int, bool) {
	if b.state != StateWriting || b.sel == nil {
		return 0, false
	}
	return b.sel.Shape.ID, true
}

// TextBuffer returns the text being typed.
func (b *Board) TextBuffer() string { return string(b.text) }

// PointerDown starts a gesture at (x, y). It is ignored while text is being
// entered.
func (b *Board) PointerDown(x, y float64) error {
	if b.state == StateWriting {
		return nil
	}
	cur := b.history.Current()
	if b.tool == ToolSelection {
		hit, ok, err := hittest.At(x, y, cur)
		if err != nil || !ok {
			return err
		}
		sel := &Selection{Shape: hit.Shape.Clone(), Part: hit.Part, Picked: true, Down: geom.Pt(x, y)}
		if hit.Shape.Kind == shape.Brush {
			sel.PointOffsets = make([]geom.Point, len(hit.Shape.Points))
			for i, p := range hit.Shape.Points {
				sel.PointOffsets[i] = geom.Pt(x-p.X, y-p.Y)
			}
		} else {
			sel.Offset = geom.Pt(x-hit.Shape.X1, y-hit.Shape.Y1)
		}
		b.sel = sel
		// The edit gets its own version so it can be undone on its own.
		b.history.Append(slices.Clone(cur))
		if hit.Part == hittest.Inside {
			b.state = StateMoving
		} else {
			b.state = StateResizing
		}
		b.debugf("picked %v %d part %q", hit.Shape.Kind, hit.Shape.ID, hit.Part)
		return nil
	}

	kind, _ := b.tool.Kind()
	id := len(cur)
	s, err := shape.Create(id, x, y, x, y, kind, b.style)
	if err != nil {
		return err
	}
	next := make(shape.Collection, len(cur), len(cur)+1)
	copy(next, cur)
	b.history.Append(append(next, s))
	b.sel = &Selection{Shape: s.Clone(), Down: geom.Pt(x, y)}
	if kind == shape.Text {
		b.state = StateWriting
		b.text = b.text[:0]
	} else {
		b.state = StateDrawing
	}
	b.debugf("created %v %d at (%v,%v)", kind, id, x, y)
	return nil
}

// PointerMove advances the gesture to (x, y) and returns the cursor to show.
// Hover feedback is only given for the selection tool.
func (b *Board) PointerMove(x, y float64) (hittest.Cursor, error) {
	cursor := hittest.CursorDefault
	cur := b.history.Current()
	if b.tool == ToolSelection {
		hit, ok, err := hittest.At(x, y, cur)
		if err != nil {
			return cursor, err
		}
		if ok {
			cursor = hittest.CursorFor(hit.Part)
		}
	}

	var (
		next shape.Collection
		err  error
	)
	switch b.state {
	case StateDrawing:
		var s shape.Shape
		if s, err = b.target(cur); err == nil {
			next, err = shape.Update(cur, s.ID, s.X1, s.Y1, x, y, s.Kind, s.Style, s.Text)
		}
	case StateMoving:
		next, err = b.moved(cur, x, y)
	case StateResizing:
		s := b.sel.Shape
		x1, y1, x2, y2 := resized(x, y, b.sel.Part, s)
		next, err = shape.Update(cur, s.ID, x1, y1, x2, y2, s.Kind, s.Style, s.Text)
	default:
		return cursor, nil
	}
	if errors.Is(err, shape.ErrNoShape) {
		b.abandon()
		return cursor, nil
	}
	if err != nil {
		return cursor, err
	}
	b.history.Overwrite(next)
	return cursor, nil
}

func (b *Board) moved(cur shape.Collection, x, y float64) (shape.Collection, error) {
	s := b.sel.Shape
	if s.Kind == shape.Brush {
		pts := make([]geom.Point, len(b.sel.PointOffsets))
		for i, off := range b.sel.PointOffsets {
			pts[i] = geom.Pt(x-off.X, y-off.Y)
		}
		return shape.Move(cur, s.ID, pts)
	}
	w, h := s.X2-s.X1, s.Y2-s.Y1
	nx, ny := x-b.sel.Offset.X, y-b.sel.Offset.Y
	return shape.Update(cur, s.ID, nx, ny, nx+w, ny+h, s.Kind, s.Style, s.Text)
}

// resized moves the corner named by part to (x, y), keeping the others.
func resized(x, y float64, part hittest.Part, s shape.Shape) (x1, y1, x2, y2 float64) {
	x1, y1, x2, y2 = s.X1, s.Y1, s.X2, s.Y2
	switch part {
	case hittest.TopLeft, hittest.Start:
		x1, y1 = x, y
	case hittest.TopRight:
		x2, y1 = x, y
	case hittest.BottomLeft:
		x1, y2 = x, y
	case hittest.BottomRight, hittest.End:
		x2, y2 = x, y
	}
	return
}

// target returns the live version of the selected shape.
func (b *Board) target(cur shape.Collection) (shape.Shape, error) {
	id := b.sel.Shape.ID
	if id < 0 || id >= len(cur) {
		return shape.Shape{}, shape.ErrNoShape
	}
	return cur[id], nil
}

// abandon ends a gesture whose shape was undone from under it.
func (b *Board) abandon() {
	b.debugf("gesture on shape %d abandoned", b.sel.Shape.ID)
	b.state = StateNone
	b.sel = nil
	b.text = b.text[:0]
}

// PointerUp finishes the gesture at (x, y). Releasing a picked text box
// without dragging it opens it for editing.
func (b *Board) PointerUp(x, y float64) error {
	if b.sel != nil {
		if b.sel.Picked && b.sel.Shape.Kind == shape.Text && b.sel.Down == geom.Pt(x, y) {
			cur := b.history.Current()
			s, err := b.target(cur)
			if err != nil {
				b.abandon()
				return nil
			}
			b.state = StateWriting
			b.text = append(b.text[:0], []rune(s.Text)...)
			b.debugf("editing text %d", s.ID)
			return nil
		}
		if (b.state == StateDrawing || b.state == StateResizing) && shape.NeedsNormalize(b.sel.Shape.Kind) {
			cur := b.history.Current()
			s, err := b.target(cur)
			if err == nil {
				x1, y1, x2, y2 := shape.Normalize(s)
				next, err := shape.Update(cur, s.ID, x1, y1, x2, y2, s.Kind, s.Style, s.Text)
				if err != nil {
					return err
				}
				b.history.Overwrite(next)
			}
		}
	}
	if b.state == StateWriting {
		return nil
	}
	b.state = StateNone
	b.sel = nil
	return nil
}

// TypeRune adds r to the text being entered.
func (b *Board) TypeRune(r rune) bool {
	if b.state != StateWriting {
		return false
	}
	b.text = append(b.text, r)
	return true
}

// Backspace removes the last rune of the text being entered.
func (b *Board) Backspace() bool {
	if b.state != StateWriting || len(b.text) == 0 {
		return false
	}
	b.text = b.text[:len(b.text)-1]
	return true
}

// CommitText stores the typed text into the shape being edited and ends the
// gesture. A freshly placed box is sized to fit its text. A box reopened
// with the selection tool keeps the bounds it had.
func (b *Board) CommitText() error {
	if b.state != StateWriting || b.sel == nil {
		return nil
	}
	cur := b.history.Current()
	id := b.sel.Shape.ID
	picked := b.sel.Picked
	text := string(b.text)
	b.state = StateNone
	b.sel = nil
	b.text = b.text[:0]
	next, err := commitText(cur, id, text, picked)
	if errors.Is(err, shape.ErrNoShape) {
		return nil
	}
	if err != nil {
		return err
	}
	b.history.Overwrite(next)
	b.debugf("committed text %d: %q", id, text)
	return nil
}

func commitText(c shape.Collection, id int, text string, picked bool) (shape.Collection, error) {
	if picked || id < 0 || id >= len(c) {
		return shape.SetText(c, id, text)
	}
	s := c[id]
	return shape.Update(c, id, s.X1, s.Y1, 0, 0, shape.Text, s.Style, text)
}

// Undo steps back one version. Nothing happens while text is being entered.
func (b *Board) Undo() bool {
	if b.state == StateWriting {
		return false
	}
	return b.history.Undo()
}

// Redo steps forward one version. Nothing happens while text is being entered.
func (b *Board) Redo() bool {
	if b.state == StateWriting {
		return false
	}
	return b.history.Redo()
}
