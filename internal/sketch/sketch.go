// Package sketch builds hand-drawn looking geometry for lines and rectangles.
// Every primitive is drawn twice with slightly different random offsets, and
// filled rectangles get diagonal hachure strokes. Randomness is seeded so the
// same shape always renders the same way.
package sketch

import (
	"math"
	"math/rand/v2"

	"github.com/example/roughboard/internal/geom"
)

// Curve is a cubic Bézier segment.
type Curve struct {
	From, C1, C2, To geom.Point
}

// Drawable is the renderer-ready geometry of a sketched primitive.
type Drawable struct {
	Strokes []Curve
	Hachure []Curve
}

// Options tune the hand-drawn look.
type Options struct {
	Roughness  float64
	Bowing     float64
	MaxOffset  float64
	HachureGap float64
	// HachureAngle in degrees.
	HachureAngle float64
}

// Default mirrors the look of the common rough sketching defaults.
var Default = Options{Roughness: 1, Bowing: 1, MaxOffset: 2, HachureGap: 4, HachureAngle: -41}

type sketcher struct {
	o   Options
	rnd *rand.Rand
}

func newSketcher(o Options, seed uint64) *sketcher {
	return &sketcher{o: o, rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// offset returns a random displacement in [lo, hi) scaled by roughness.
func (s *sketcher) offset(lo, hi float64) float64 {
	return s.o.Roughness * (s.rnd.Float64()*(hi-lo) + lo)
}

func (s *sketcher) offsetSym(x float64) float64 { return s.offset(-x, x) }

// line emits one jittered pass over the segment a-b.
func (s *sketcher) line(a, b geom.Point, overlay bool) Curve {
	lengthSq := (a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y)
	off := s.o.MaxOffset
	if off*off*100 > lengthSq {
		off = math.Sqrt(lengthSq) / 10
	}
	half := off / 2
	diverge := 0.2 + s.rnd.Float64()*0.2
	midX := s.o.Bowing * s.o.MaxOffset * (b.Y - a.Y) / 200
	midY := s.o.Bowing * s.o.MaxOffset * (a.X - b.X) / 200
	midX = s.offsetSym(midX)
	midY = s.offsetSym(midY)

	jit := off
	if overlay {
		jit = half
	}
	return Curve{
		From: geom.Pt(a.X+s.offsetSym(jit), a.Y+s.offsetSym(jit)),
		C1: geom.Pt(
			midX+a.X+(b.X-a.X)*diverge+s.offsetSym(jit),
			midY+a.Y+(b.Y-a.Y)*diverge+s.offsetSym(jit),
		),
		C2: geom.Pt(
			midX+a.X+2*(b.X-a.X)*diverge+s.offsetSym(jit),
			midY+a.Y+2*(b.Y-a.Y)*diverge+s.offsetSym(jit),
		),
		To: geom.Pt(b.X+s.offsetSym(jit), b.Y+s.offsetSym(jit)),
	}
}

func (s *sketcher) doubleLine(a, b geom.Point) []Curve {
	return []Curve{s.line(a, b, false), s.line(a, b, true)}
}

// Line sketches the segment (x1, y1)-(x2, y2).
func Line(x1, y1, x2, y2 float64, seed uint64) Drawable {
	return LineWith(Default, x1, y1, x2, y2, seed)
}

// LineWith is Line with explicit options.
func LineWith(o Options, x1, y1, x2, y2 float64, seed uint64) Drawable {
	s := newSketcher(o, seed)
	return Drawable{Strokes: s.doubleLine(geom.Pt(x1, y1), geom.Pt(x2, y2))}
}

// Rectangle sketches the box with corner (x, y) and extent (w, h). Negative
// extents are allowed while the box is still being dragged out.
func Rectangle(x, y, w, h float64, filled bool, seed uint64) Drawable {
	return RectangleWith(Default, x, y, w, h, filled, seed)
}

// RectangleWith is Rectangle with explicit options.
func RectangleWith(o Options, x, y, w, h float64, filled bool, seed uint64) Drawable {
	s := newSketcher(o, seed)
	tl, tr := geom.Pt(x, y), geom.Pt(x+w, y)
	br, bl := geom.Pt(x+w, y+h), geom.Pt(x, y+h)

	var d Drawable
	if filled {
		d.Hachure = s.hachure(min(x, x+w), min(y, y+h), max(x, x+w), max(y, y+h))
	}
	for _, edge := range [][2]geom.Point{{tl, tr}, {tr, br}, {br, bl}, {bl, tl}} {
		d.Strokes = append(d.Strokes, s.doubleLine(edge[0], edge[1])...)
	}
	return d
}

// maxHachureLines bounds the fill of a single box.
const maxHachureLines = 1 << 14

// hachure fills an axis aligned box with parallel sketched strokes.
func (s *sketcher) hachure(minX, minY, maxX, maxY float64) []Curve {
	gap := s.o.HachureGap
	if gap <= 0 || maxX-minX <= 0 || maxY-minY <= 0 {
		return nil
	}
	angle := s.o.HachureAngle * math.Pi / 180
	dir := geom.Pt(math.Cos(angle), math.Sin(angle))
	normal := geom.Pt(-dir.Y, dir.X)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, c := range []geom.Point{{X: minX, Y: minY}, {X: maxX, Y: minY}, {X: minX, Y: maxY}, {X: maxX, Y: maxY}} {
		proj := c.X*normal.X + c.Y*normal.Y
		lo, hi = min(lo, proj), max(hi, proj)
	}
	if !finite(lo) || !finite(hi) {
		return nil
	}
	count := math.Ceil((hi - lo - gap/2) / gap)
	if count > maxHachureLines {
		return nil
	}

	var out []Curve
	for i := 0; i < int(count); i++ {
		origin := normal.Mul(lo + gap/2 + float64(i)*gap)
		a, b, ok := clip(origin, dir, minX, minY, maxX, maxY)
		if !ok || geom.Distance(a, b) < 1 {
			continue
		}
		out = append(out, s.line(a, b, false))
	}
	return out
}

func finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

// clip intersects the infinite line origin + t*dir with the box.
func clip(origin, dir geom.Point, minX, minY, maxX, maxY float64) (geom.Point, geom.Point, bool) {
	t0, t1 := math.Inf(-1), math.Inf(1)
	for _, axis := range [2]struct{ o, d, lo, hi float64 }{
		{origin.X, dir.X, minX, maxX},
		{origin.Y, dir.Y, minY, maxY},
	} {
		if axis.d == 0 {
			if axis.o < axis.lo || axis.o > axis.hi {
				return geom.Point{}, geom.Point{}, false
			}
			continue
		}
		a := (axis.lo - axis.o) / axis.d
		b := (axis.hi - axis.o) / axis.d
		if a > b {
			a, b = b, a
		}
		t0, t1 = max(t0, a), min(t1, b)
	}
	if t0 >= t1 {
		return geom.Point{}, geom.Point{}, false
	}
	return origin.Add(dir.Mul(t0)), origin.Add(dir.Mul(t1)), true
}
