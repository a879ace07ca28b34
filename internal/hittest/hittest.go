// Package hittest resolves which shape, and which part of it, lies under the
// pointer.
package hittest

import (
	"fmt"

	"github.com/example/roughboard/internal/geom"
	"github.com/example/roughboard/internal/shape"
)

// Part names the region of a shape that was hit.
type Part string

const (
	None        Part = ""
	Start       Part = "start"
	End         Part = "end"
	TopLeft     Part = "tl"
	TopRight    Part = "tr"
	BottomLeft  Part = "bl"
	BottomRight Part = "br"
	Inside      Part = geom.Inside
)

// Handle reports whether p is a resize handle rather than the body.
func (p Part) Handle() bool { return p != None && p != Inside }

// Hit is a shape together with the part under the pointer.
type Hit struct {
	Shape shape.Shape
	Part  Part
}

// PartOf returns the part of s at (x, y), or None.
func PartOf(s shape.Shape, x, y float64) (Part, error) {
	switch s.Kind {
	case shape.Line:
		return first(
			geom.NearPoint(x, y, s.X1, s.Y1, string(Start)),
			geom.NearPoint(x, y, s.X2, s.Y2, string(End)),
			geom.OnLine(s.X1, s.Y1, s.X2, s.Y2, x, y, geom.LineTolerance),
		), nil
	case shape.Rectangle:
		return first(
			geom.NearPoint(x, y, s.X1, s.Y1, string(TopLeft)),
			geom.NearPoint(x, y, s.X2, s.Y1, string(TopRight)),
			geom.NearPoint(x, y, s.X1, s.Y2, string(BottomLeft)),
			geom.NearPoint(x, y, s.X2, s.Y2, string(BottomRight)),
			inBox(s, x, y),
		), nil
	case shape.Brush:
		for i := 0; i+1 < len(s.Points); i++ {
			a, b := s.Points[i], s.Points[i+1]
			if geom.OnLine(a.X, a.Y, b.X, b.Y, x, y, geom.BrushTolerance) != "" {
				return Inside, nil
			}
		}
		return None, nil
	case shape.Text:
		return Part(inBox(s, x, y)), nil
	default:
		return None, fmt.Errorf("hit test shape %d: %w: %v", s.ID, shape.ErrUnknownKind, s.Kind)
	}
}

// At returns the earliest shape in c with a part at (x, y). Overlapping
// shapes resolve to the one created first.
func At(x, y float64, c shape.Collection) (Hit, bool, error) {
	for _, s := range c {
		p, err := PartOf(s, x, y)
		if err != nil {
			return Hit{}, false, err
		}
		if p != None {
			return Hit{Shape: s, Part: p}, true, nil
		}
	}
	return Hit{}, false, nil
}

func inBox(s shape.Shape, x, y float64) string {
	if x >= s.X1 && x <= s.X2 && y >= s.Y1 && y <= s.Y2 {
		return string(Inside)
	}
	return ""
}

func first(labels ...string) Part {
	for _, l := range labels {
		if l != "" {
			return Part(l)
		}
	}
	return None
}
