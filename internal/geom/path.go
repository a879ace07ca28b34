package geom

// Op is a path construction verb.
type Op int

const (
	OpMove Op = iota
	OpQuad
	OpClose
)

// Segment is one step of a Path. Ctrl is only meaningful for OpQuad.
type Segment struct {
	Op   Op
	Ctrl Point
	To   Point
}

// Path is a sequence of segments ready to be replayed on a drawing surface.
type Path []Segment

// OutlinePath traces a smooth closed path through an outline polygon. Each
// vertex becomes the control point of a quadratic segment ending at the
// midpoint between it and the next vertex, wrapping the last vertex back to
// the first.
func OutlinePath(outline []Point) Path {
	if len(outline) == 0 {
		return nil
	}
	n := len(outline)
	p := make(Path, 0, n+2)
	p = append(p, Segment{Op: OpMove, To: outline[0]})
	for i, v := range outline {
		p = append(p, Segment{Op: OpQuad, Ctrl: v, To: Mid(v, outline[(i+1)%n])})
	}
	return append(p, Segment{Op: OpClose})
}
