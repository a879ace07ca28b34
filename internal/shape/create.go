package shape

import (
	"fmt"
	"slices"

	"github.com/example/roughboard/internal/geom"
	"github.com/example/roughboard/internal/sketch"
)

func seedFor(id int) uint64 { return uint64(id) + 1 }

// Create builds a new shape of the given kind. Lines and rectangles get their
// sketched geometry up front. A brush starts as a single sample at (x1, y1)
// and a text box starts empty with (x2, y2) as a provisional corner.
func Create(id int, x1, y1, x2, y2 float64, kind Kind, style Style) (Shape, error) {
	s := Shape{ID: id, Kind: kind, X1: x1, Y1: y1, X2: x2, Y2: y2, Style: style}
	switch kind {
	case Line:
		s.Sketch = sketch.Line(x1, y1, x2, y2, seedFor(id))
	case Rectangle:
		s.Sketch = sketch.Rectangle(x1, y1, x2-x1, y2-y1, style.Filled, seedFor(id))
	case Brush:
		s.X2, s.Y2 = x1, y1
		s.Points = []geom.Point{{X: x1, Y: y1}}
	case Text:
	default:
		return Shape{}, fmt.Errorf("create shape %d: %w: %v", id, ErrUnknownKind, kind)
	}
	return s, nil
}

// Update returns a copy of c with shape id rebuilt from the given
// coordinates. Lines and rectangles are recreated. A brush grows by the
// sample (x2, y2). A text box is recreated holding text and sized to fit it.
// The input collection is never modified.
func Update(c Collection, id int, x1, y1, x2, y2 float64, kind Kind, style Style, text string) (Collection, error) {
	prev, err := c.lookup(id)
	if err != nil {
		return nil, err
	}
	var next Shape
	switch kind {
	case Line, Rectangle:
		next, err = Create(id, x1, y1, x2, y2, kind, style)
		if err != nil {
			return nil, err
		}
	case Brush:
		next = prev
		next.Points = append(slices.Clip(prev.Points), geom.Point{X: x2, Y: y2})
		next.X2, next.Y2 = x2, y2
	case Text:
		next, err = Create(id, x1, y1, x1+MeasureText(text), y1+LineHeight, kind, style)
		if err != nil {
			return nil, err
		}
		next.Text = text
	default:
		return nil, fmt.Errorf("update shape %d: %w: %v", id, ErrUnknownKind, kind)
	}
	out := slices.Clone(c)
	out[id] = next
	return out, nil
}

// SetText returns a copy of c with the text of shape id replaced. The box
// keeps its current bounds.
func SetText(c Collection, id int, text string) (Collection, error) {
	s, err := c.lookup(id)
	if err != nil {
		return nil, err
	}
	if s.Kind != Text {
		return nil, fmt.Errorf("set text on %v shape %d: %w", s.Kind, id, ErrWrongKind)
	}
	out := slices.Clone(c)
	s.Text = text
	out[id] = s
	return out, nil
}

// Move returns a copy of c with the samples of brush id replaced by points.
func Move(c Collection, id int, points []geom.Point) (Collection, error) {
	s, err := c.lookup(id)
	if err != nil {
		return nil, err
	}
	if s.Kind != Brush {
		return nil, fmt.Errorf("move samples of %v shape %d: %w", s.Kind, id, ErrWrongKind)
	}
	s.Points = slices.Clone(points)
	if n := len(points); n > 0 {
		s.X1, s.Y1 = points[0].X, points[0].Y
		s.X2, s.Y2 = points[n-1].X, points[n-1].Y
	}
	out := slices.Clone(c)
	out[id] = s
	return out, nil
}

// NeedsNormalize reports whether shapes of kind k are normalised once a
// gesture on them ends.
func NeedsNormalize(k Kind) bool { return k == Line || k == Rectangle }

// Normalize returns the coordinates of s in canonical order. Rectangles get
// top-left and bottom-right corners. Lines are ordered so (x1, y1) precedes
// (x2, y2) by x and then y. Other kinds are returned unchanged.
func Normalize(s Shape) (x1, y1, x2, y2 float64) {
	switch s.Kind {
	case Rectangle:
		return min(s.X1, s.X2), min(s.Y1, s.Y2), max(s.X1, s.X2), max(s.Y1, s.Y2)
	case Line:
		if s.X1 < s.X2 || (s.X1 == s.X2 && s.Y1 < s.Y2) {
			return s.X1, s.Y1, s.X2, s.Y2
		}
		return s.X2, s.Y2, s.X1, s.Y1
	}
	return s.X1, s.Y1, s.X2, s.Y2
}
