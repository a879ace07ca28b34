package hittest

// Cursor is the pointer shape to show while hovering.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorMove
	// CursorResizeNWSE is the diagonal resize arrow from top-left to bottom-right.
	CursorResizeNWSE
	// CursorResizeNESW is the diagonal resize arrow from top-right to bottom-left.
	CursorResizeNESW
)

func (c Cursor) String() string {
	switch c {
	case CursorMove:
		return "move"
	case CursorResizeNWSE:
		return "nwse-resize"
	case CursorResizeNESW:
		return "nesw-resize"
	default:
		return "default"
	}
}

// CursorFor maps the hovered part to a cursor.
func CursorFor(p Part) Cursor {
	switch p {
	case TopLeft, BottomRight, Start, End:
		return CursorResizeNWSE
	case TopRight, BottomLeft:
		return CursorResizeNESW
	default:
		return CursorMove
	}
}
