package geom

import "math"

// Handle tolerance used by NearPoint, in surface units.
const handleTolerance = 5

// Tolerances accepted by OnLine.
const (
	LineTolerance  = 1
	BrushTolerance = 5
)

// Inside is the label OnLine reports for a point on the segment.
const Inside = "inside"

// Point is a position on the drawing surface.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul scales p by k.
func (p Point) Mul(k float64) Point { return Point{p.X * k, p.Y * k} }

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Mid returns the midpoint of p and q.
func Mid(p, q Point) Point { return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2} }

// Distance is the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// NearPoint returns label when (x, y) lies strictly within a 5 unit square
// around (px, py), otherwise the empty string.
func NearPoint(x, y, px, py float64, label string) string {
	if math.Abs(x-px) < handleTolerance && math.Abs(y-py) < handleTolerance {
		return label
	}
	return ""
}

// OnLine reports Inside when (x, y) lies on the segment (x1, y1)-(x2, y2).
// The detour through the point may exceed the segment length by less than
// tolerance.
func OnLine(x1, y1, x2, y2, x, y, tolerance float64) string {
	a, b, c := Pt(x1, y1), Pt(x2, y2), Pt(x, y)
	offset := Distance(a, b) - (Distance(a, c) + Distance(b, c))
	if math.Abs(offset) < tolerance {
		return Inside
	}
	return ""
}
