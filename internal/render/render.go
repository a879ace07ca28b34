// Package render paints shape collections onto a raster surface and exports
// the result.
package render

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/example/roughboard/internal/geom"
	"github.com/example/roughboard/internal/shape"
	"github.com/example/roughboard/internal/sketch"
)

// DefaultExportName is the file name used when exporting without a path.
const DefaultExportName = "drawing.png"

// ErrExport wraps every failure to encode or write an export.
var ErrExport = errors.New("export")

// StrokeWidth is the width of sketched lines.
const StrokeWidth = 1

var fontSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Face returns the label face at size.
func Face(size float64) (text.Face, error) {
	src, err := fontSource()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return src.Face(size), nil
}

// Renderer owns the drawing surface.
type Renderer struct {
	ctx        *gg.Context
	face       text.Face
	background color.Color
	outline    geom.OutlineOptions
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBackground sets the color the surface is cleared to.
func WithBackground(c color.Color) Option { return func(r *Renderer) { r.background = c } }

// WithOutline overrides how brush strokes are outlined.
func WithOutline(o geom.OutlineOptions) Option { return func(r *Renderer) { r.outline = o } }

// New allocates a width x height surface.
func New(width, height int, opts ...Option) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface size %dx%d", width, height)
	}
	face, err := Face(shape.FontSize)
	if err != nil {
		return nil, err
	}
	r := &Renderer{
		ctx:        gg.NewContext(width, height),
		face:       face,
		background: color.White,
		outline:    geom.DefaultOutline,
	}
	for _, o := range opts {
		o(r)
	}
	r.ctx.SetFont(face)
	r.ctx.SetLineWidth(StrokeWidth)
	r.ctx.SetLineCap(gg.LineCapRound)
	r.ctx.SetLineJoin(gg.LineJoinRound)
	return r, nil
}

// Size returns the surface dimensions.
func (r *Renderer) Size() (int, int) { return r.ctx.Width(), r.ctx.Height() }

// Close releases the surface.
func (r *Renderer) Close() error { return r.ctx.Close() }

// Draw clears the surface and paints c in order. The shape whose id is skip
// is left out; pass -1 to draw everything.
func (r *Renderer) Draw(c shape.Collection, skip int) error {
	r.ctx.ClearWithColor(gg.FromColor(r.background))
	for _, s := range c {
		if s.ID == skip {
			continue
		}
		if err := r.drawShape(s); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) drawShape(s shape.Shape) error {
	r.ctx.SetColor(s.Style.Color.RGBA())
	switch s.Kind {
	case shape.Line, shape.Rectangle:
		if err := r.strokeCurves(s.Sketch.Hachure); err != nil {
			return err
		}
		return r.strokeCurves(s.Sketch.Strokes)
	case shape.Brush:
		path := geom.OutlinePath(geom.StrokeOutline(s.Points, r.outline))
		if len(path) == 0 {
			return nil
		}
		for _, seg := range path {
			switch seg.Op {
			case geom.OpMove:
				r.ctx.MoveTo(seg.To.X, seg.To.Y)
			case geom.OpQuad:
				r.ctx.QuadraticTo(seg.Ctrl.X, seg.Ctrl.Y, seg.To.X, seg.To.Y)
			case geom.OpClose:
				r.ctx.ClosePath()
			}
		}
		return r.ctx.Fill()
	case shape.Text:
		if s.Text == "" {
			return nil
		}
		// Text hangs from (x1, y1).
		r.ctx.DrawString(s.Text, s.X1, s.Y1+r.face.Metrics().Ascent)
		return nil
	default:
		return fmt.Errorf("draw shape %d: %w: %v", s.ID, shape.ErrUnknownKind, s.Kind)
	}
}

func (r *Renderer) strokeCurves(curves []sketch.Curve) error {
	if len(curves) == 0 {
		return nil
	}
	for _, cv := range curves {
		r.ctx.MoveTo(cv.From.X, cv.From.Y)
		r.ctx.CubicTo(cv.C1.X, cv.C1.Y, cv.C2.X, cv.C2.Y, cv.To.X, cv.To.Y)
	}
	return r.ctx.Stroke()
}

// Image returns a copy of the surface.
func (r *Renderer) Image() image.Image { return r.ctx.Image() }

// EncodePNG writes the surface as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	if err := r.ctx.EncodePNG(w); err != nil {
		return fmt.Errorf("%w: encode png: %v", ErrExport, err)
	}
	return nil
}

// DataURL returns the surface as a data:image/png URL.
func (r *Renderer) DataURL() (string, error) {
	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Export writes the surface as a PNG file at path, or DefaultExportName when
// path is empty.
func (r *Renderer) Export(path string) (err error) {
	if path == "" {
		path = DefaultExportName
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrExport, cerr)
		}
	}()
	return r.EncodePNG(f)
}
