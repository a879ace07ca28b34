package shape

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/jinzhu/copier"
	"golang.org/x/image/colornames"

	"github.com/example/roughboard/internal/geom"
	"github.com/example/roughboard/internal/sketch"
)

var (
	// ErrUnknownKind is returned whenever a component meets a Kind outside
	// the supported set. It signals a programming error, callers must not
	// swallow it.
	ErrUnknownKind = errors.New("unknown shape kind")
	// ErrNoShape is returned when an id does not address a shape.
	ErrNoShape = errors.New("no such shape")
	// ErrWrongKind is returned by operations that only apply to one kind.
	ErrWrongKind = errors.New("operation does not apply to shape kind")
)

// Kind tags the variant a Shape holds.
type Kind int

const (
	Line Kind = iota
	Rectangle
	Brush
	Text
)

var kindNames = [...]string{
	Line:      "line",
	Rectangle: "rectangle",
	Brush:     "brush",
	Text:      "text",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool { return k >= Line && k <= Text }

// ParseKind maps a kind name to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Color is one of the palette colours offered to the user.
type Color int

const (
	Black Color = iota
	Red
	Orange
	Green
)

var colorNames = [...]string{
	Black:  "black",
	Red:    "red",
	Orange: "orange",
	Green:  "green",
}

var colorValues = [...]color.RGBA{
	Black:  colornames.Black,
	Red:    colornames.Red,
	Orange: colornames.Orange,
	Green:  colornames.Green,
}

// Colors lists the palette in display order.
func Colors() []Color { return []Color{Red, Orange, Green, Black} }

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// RGBA returns the colour to paint with. Unknown values paint black.
func (c Color) RGBA() color.RGBA {
	if c < 0 || int(c) >= len(colorValues) {
		return colornames.Black
	}
	return colorValues[c]
}

// ParseColor maps a colour name to its Color.
func ParseColor(s string) (Color, error) {
	for c, name := range colorNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Color(c), nil
		}
	}
	return Black, fmt.Errorf("unknown color %q", s)
}

// Style holds the user selected appearance of a shape.
type Style struct {
	Color  Color
	Filled bool
}

// Shape is one drawable primitive. Which fields are meaningful depends on
// Kind: lines, rectangles and text use the coordinates, brushes use Points,
// text uses Text, and lines and rectangles carry their sketched geometry.
type Shape struct {
	ID     int
	Kind   Kind
	X1, Y1 float64
	X2, Y2 float64
	Points []geom.Point
	Text   string
	Style  Style
	Sketch sketch.Drawable
}

// Clone returns a deep copy of s.
func (s Shape) Clone() Shape {
	var out Shape
	if err := copier.CopyWithOption(&out, &s, copier.Option{DeepCopy: true}); err != nil {
		// Shape holds only plain data so copier cannot fail on it.
		panic(fmt.Sprintf("clone shape: %v", err))
	}
	return out
}

// Collection is the ordered list of shapes on the board. Every shape's ID
// equals its index.
type Collection []Shape

// Clone returns a deep copy of c that shares no memory with it.
func (c Collection) Clone() Collection {
	out := make(Collection, 0, len(c))
	if len(c) == 0 {
		return out
	}
	if err := copier.CopyWithOption(&out, &c, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprintf("clone collection: %v", err))
	}
	return out
}

func (c Collection) lookup(id int) (Shape, error) {
	if id < 0 || id >= len(c) {
		return Shape{}, fmt.Errorf("%w: id %d of %d", ErrNoShape, id, len(c))
	}
	return c[id], nil
}
