package geom

import "math"

// OutlineOptions shapes the polygon produced by StrokeOutline.
type OutlineOptions struct {
	// Size is the nominal stroke diameter.
	Size float64
	// Thinning is how much faster movement narrows the stroke, 0..1.
	Thinning float64
	// Smoothing drops samples closer than Size*Smoothing to their predecessor.
	Smoothing float64
	// Streamline pulls each sample towards the previous one, 0..1.
	Streamline float64
}

// DefaultOutline matches the freehand brush used by the board.
var DefaultOutline = OutlineOptions{Size: 8, Thinning: 0.5, Smoothing: 0.5, Streamline: 0.5}

const capSteps = 8

// StrokeOutline converts freehand samples into a closed outline polygon. The
// left edge runs forwards, the right edge backwards, and both ends get round
// caps. A stroke without extent becomes a dot.
func StrokeOutline(points []Point, opts OutlineOptions) []Point {
	if len(points) == 0 {
		return nil
	}
	if opts.Size <= 0 {
		opts.Size = DefaultOutline.Size
	}
	radius := opts.Size / 2

	pts := streamline(points, opts)
	if len(pts) == 1 {
		return dot(pts[0], radius)
	}

	radii := make([]float64, len(pts))
	pressure := 0.5
	for i := range pts {
		if i > 0 {
			speed := math.Min(1, Distance(pts[i-1], pts[i])/opts.Size)
			pressure += ((1 - speed) - pressure) * 0.275
		}
		r := radius * (1 - opts.Thinning*(1-pressure))
		if r < 0.5 {
			r = 0.5
		}
		radii[i] = r
	}

	left := make([]Point, 0, len(pts))
	right := make([]Point, 0, len(pts))
	dir := Point{1, 0}
	for i, p := range pts {
		var d Point
		switch {
		case i == 0:
			d = pts[1].Sub(p)
		case i == len(pts)-1:
			d = p.Sub(pts[i-1])
		default:
			d = pts[i+1].Sub(pts[i-1])
		}
		if n := math.Hypot(d.X, d.Y); n > 0 {
			dir = d.Mul(1 / n)
		}
		normal := Point{-dir.Y, dir.X}
		left = append(left, p.Add(normal.Mul(radii[i])))
		right = append(right, p.Sub(normal.Mul(radii[i])))
	}

	out := make([]Point, 0, 2*len(pts)+2*capSteps)
	out = append(out, left...)
	last := len(pts) - 1
	out = append(out, arc(pts[last], left[last], radii[last])...)
	for i := last; i >= 0; i-- {
		out = append(out, right[i])
	}
	out = append(out, arc(pts[0], right[0], radii[0])...)
	return out
}

// streamline removes jitter and collapses samples that did not move far
// enough to contribute to the outline.
func streamline(points []Point, opts OutlineOptions) []Point {
	t := 0.15 + (1-opts.Streamline)*0.85
	minGap := opts.Size * opts.Smoothing / 4
	out := []Point{points[0]}
	prev := points[0]
	for _, p := range points[1:] {
		next := prev.Lerp(p, t)
		if Distance(out[len(out)-1], next) < minGap {
			continue
		}
		out = append(out, next)
		prev = next
	}
	if lastRaw := points[len(points)-1]; out[len(out)-1] != lastRaw {
		out = append(out, lastRaw)
	}
	return out
}

// arc walks half a circle around centre starting at from, turning clockwise
// in screen coordinates. The starting point itself is omitted.
func arc(centre, from Point, r float64) []Point {
	start := math.Atan2(from.Y-centre.Y, from.X-centre.X)
	out := make([]Point, 0, capSteps)
	for i := 1; i <= capSteps; i++ {
		a := start - math.Pi*float64(i)/float64(capSteps+1)
		out = append(out, Point{centre.X + r*math.Cos(a), centre.Y + r*math.Sin(a)})
	}
	return out
}

func dot(c Point, r float64) []Point {
	const steps = 13
	out := make([]Point, 0, steps)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		out = append(out, Point{c.X + r*math.Cos(a), c.Y + r*math.Sin(a)})
	}
	return out
}
