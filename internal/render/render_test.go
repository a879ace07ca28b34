package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/roughboard/internal/geom"
	"github.com/example/roughboard/internal/shape"
)

func mustShape(t *testing.T, id int, kind shape.Kind, x1, y1, x2, y2 float64, style shape.Style) shape.Shape {
	t.Helper()
	s, err := shape.Create(id, x1, y1, x2, y2, kind, style)
	require.NoError(t, err)
	return s
}

func newRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	r, err := New(120, 100, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func isBackground(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r>>8 > 0xF0 && g>>8 > 0xF0 && b>>8 > 0xF0
}

// inked counts non-background pixels inside rect.
func inked(img image.Image, rect image.Rectangle) int {
	n := 0
	rect = rect.Intersect(img.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if !isBackground(img.At(x, y)) {
				n++
			}
		}
	}
	return n
}

func TestNewRejectsEmptySurface(t *testing.T) {
	_, err := New(0, 10)
	require.Error(t, err)
}

func TestDrawEmptyIsBackground(t *testing.T) {
	r := newRenderer(t, WithBackground(color.RGBA{10, 20, 30, 255}))
	require.NoError(t, r.Draw(nil, -1))
	got := color.RGBAModel.Convert(r.Image().At(5, 5)).(color.RGBA)
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, got)
	w, h := r.Size()
	assert.Equal(t, [2]int{120, 100}, [2]int{w, h})
}

func TestDrawRectangleStaysNearOutline(t *testing.T) {
	r := newRenderer(t)
	c := shape.Collection{mustShape(t, 0, shape.Rectangle, 20, 20, 80, 60, shape.Style{Color: shape.Red, Filled: true})}
	require.NoError(t, r.Draw(c, -1))
	img := r.Image()

	assert.Positive(t, inked(img, image.Rect(15, 15, 85, 65)))
	assert.Positive(t, inked(img, image.Rect(30, 30, 70, 50)), "hachure fills the interior")
	assert.Zero(t, inked(img, image.Rect(0, 0, 120, 10)))
	assert.Zero(t, inked(img, image.Rect(0, 75, 120, 100)))
}

func TestDrawUnfilledRectangleLeavesInteriorClear(t *testing.T) {
	r := newRenderer(t)
	c := shape.Collection{mustShape(t, 0, shape.Rectangle, 20, 20, 80, 60, shape.Style{Color: shape.Black})}
	require.NoError(t, r.Draw(c, -1))
	assert.Zero(t, inked(r.Image(), image.Rect(35, 35, 65, 45)))
}

func TestDrawBrushFillsOutline(t *testing.T) {
	r := newRenderer(t)
	s := mustShape(t, 0, shape.Brush, 10, 50, 10, 50, shape.Style{Color: shape.Green})
	for x := 20.0; x <= 100; x += 10 {
		s.Points = append(s.Points, geom.Pt(x, 50))
	}
	require.NoError(t, r.Draw(shape.Collection{s}, -1))
	img := r.Image()
	assert.Positive(t, inked(img, image.Rect(20, 48, 60, 53)))
	assert.Zero(t, inked(img, image.Rect(0, 0, 120, 35)))
}

func TestDrawSingleSampleBrushIsDot(t *testing.T) {
	r := newRenderer(t)
	s := mustShape(t, 0, shape.Brush, 50, 50, 50, 50, shape.Style{Color: shape.Black})
	require.NoError(t, r.Draw(shape.Collection{s}, -1))
	assert.Positive(t, inked(r.Image(), image.Rect(46, 46, 55, 55)))
}

func TestDrawTextHangsFromTopLeft(t *testing.T) {
	r := newRenderer(t)
	c, err := shape.Update(shape.Collection{mustShape(t, 0, shape.Text, 10, 30, 10, 30, shape.Style{Color: shape.Black})},
		0, 10, 30, 10, 30, shape.Text, shape.Style{Color: shape.Black}, "Hb")
	require.NoError(t, err)
	require.NoError(t, r.Draw(c, -1))
	img := r.Image()
	assert.Positive(t, inked(img, image.Rect(10, 30, 60, 30+shape.LineHeight)))
	assert.Zero(t, inked(img, image.Rect(0, 0, 120, 29)), "nothing above the box top")
}

func TestDrawSkipsEditedShape(t *testing.T) {
	r := newRenderer(t)
	c := shape.Collection{mustShape(t, 0, shape.Line, 10, 10, 110, 90, shape.Style{Color: shape.Black})}
	require.NoError(t, r.Draw(c, 0))
	assert.Zero(t, inked(r.Image(), r.Image().Bounds()))
	require.NoError(t, r.Draw(c, -1))
	assert.Positive(t, inked(r.Image(), r.Image().Bounds()))
}

func TestDrawUnknownKindFails(t *testing.T) {
	r := newRenderer(t)
	err := r.Draw(shape.Collection{{ID: 3, Kind: shape.Kind(42)}}, -1)
	require.ErrorIs(t, err, shape.ErrUnknownKind)
	assert.Contains(t, err.Error(), "shape 3")
}

func TestDataURL(t *testing.T) {
	r := newRenderer(t)
	require.NoError(t, r.Draw(nil, -1))
	url, err := r.DataURL()
	require.NoError(t, err)
	payload, ok := strings.CutPrefix(url, "data:image/png;base64,")
	require.True(t, ok)
	raw, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 120, 100), img.Bounds())
}

func TestExport(t *testing.T) {
	r := newRenderer(t)
	require.NoError(t, r.Draw(shape.Collection{mustShape(t, 0, shape.Line, 0, 0, 50, 50, shape.Style{})}, -1))

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, r.Export(path))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	require.NoError(t, err)
}

func TestExportDefaultName(t *testing.T) {
	r := newRenderer(t)
	t.Chdir(t.TempDir())
	require.NoError(t, r.Export(""))
	_, err := os.Stat(DefaultExportName)
	require.NoError(t, err)
}

func TestExportFailureIsReported(t *testing.T) {
	r := newRenderer(t)
	err := r.Export(filepath.Join(t.TempDir(), "missing", "dir", "out.png"))
	require.ErrorIs(t, err, ErrExport)
}

func TestExportPDF(t *testing.T) {
	brush := mustShape(t, 2, shape.Brush, 10, 10, 10, 10, shape.Style{Color: shape.Orange})
	brush.Points = append(brush.Points, geom.Pt(30, 30))
	text, err := shape.Update(shape.Collection{mustShape(t, 0, shape.Text, 5, 5, 5, 5, shape.Style{})},
		0, 5, 5, 5, 5, shape.Text, shape.Style{}, "héllo")
	require.NoError(t, err)
	c := shape.Collection{
		text[0],
		mustShape(t, 1, shape.Rectangle, 10, 10, 60, 40, shape.Style{Color: shape.Red, Filled: true}),
		brush,
	}
	var buf bytes.Buffer
	require.NoError(t, ExportPDF(c, &buf, 690, 550))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestExportPDFUnknownKind(t *testing.T) {
	var buf bytes.Buffer
	err := ExportPDF(shape.Collection{{Kind: shape.Kind(-1)}}, &buf, 100, 100)
	require.ErrorIs(t, err, shape.ErrUnknownKind)
}
