package sketch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/roughboard/internal/geom"
)

func TestLineIsDeterministic(t *testing.T) {
	a := Line(10, 10, 200, 80, 7)
	b := Line(10, 10, 200, 80, 7)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, Line(10, 10, 200, 80, 8))
}

func TestLineStaysCloseToSegment(t *testing.T) {
	d := Line(0, 0, 100, 0, 1)
	require.Len(t, d.Strokes, 2)
	assert.Empty(t, d.Hachure)
	for _, c := range d.Strokes {
		assert.InDelta(t, 0, c.From.X, Default.MaxOffset*Default.Roughness)
		assert.InDelta(t, 100, c.To.X, Default.MaxOffset*Default.Roughness)
		assert.InDelta(t, 0, c.To.Y, Default.MaxOffset*Default.Roughness)
	}
}

func TestRectangleEdgesAndFill(t *testing.T) {
	outline := Rectangle(0, 0, 60, 40, false, 3)
	assert.Len(t, outline.Strokes, 8)
	assert.Empty(t, outline.Hachure)

	filled := Rectangle(0, 0, 60, 40, true, 3)
	assert.Len(t, filled.Strokes, 8)
	assert.NotEmpty(t, filled.Hachure)
}

func TestRectangleNegativeExtentStillFills(t *testing.T) {
	d := Rectangle(60, 40, -60, -40, true, 5)
	assert.NotEmpty(t, d.Hachure)
}

func TestRectangleNonFiniteExtentHasNoFill(t *testing.T) {
	for _, w := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		d := Rectangle(0, 0, w, 10, true, 1)
		assert.Empty(t, d.Hachure, "width %v", w)
	}
	assert.Empty(t, Rectangle(0, 0, 1e300, 10, true, 1).Hachure)
}

func TestClip(t *testing.T) {
	a, b, ok := clip(geom.Pt(0, 5), geom.Pt(1, 0), 0, 0, 10, 10)
	require.True(t, ok)
	assert.Equal(t, geom.Pt(0, 5), a)
	assert.Equal(t, geom.Pt(10, 5), b)

	_, _, ok = clip(geom.Pt(0, 20), geom.Pt(1, 0), 0, 0, 10, 10)
	assert.False(t, ok)
}
