package hittest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/roughboard/internal/geom"
	"github.com/example/roughboard/internal/shape"
)

func rect(id int, x1, y1, x2, y2 float64) shape.Shape {
	return shape.Shape{ID: id, Kind: shape.Rectangle, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func TestPartOfLine(t *testing.T) {
	l := shape.Shape{Kind: shape.Line, X1: 0, Y1: 0, X2: 100, Y2: 0}
	tests := []struct {
		x, y float64
		want Part
	}{
		{2, 1, Start},
		{98, -1, End},
		{50, 0, Inside},
		{50, 20, None},
	}
	for _, tt := range tests {
		got, err := PartOf(l, tt.x, tt.y)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "at (%v,%v)", tt.x, tt.y)
	}
}

func TestPartOfRectangle(t *testing.T) {
	r := rect(0, 10, 10, 60, 40)
	tests := []struct {
		x, y float64
		want Part
	}{
		{11, 11, TopLeft},
		{59, 12, TopRight},
		{12, 38, BottomLeft},
		{61, 41, BottomRight},
		{30, 25, Inside},
		{100, 100, None},
	}
	for _, tt := range tests {
		got, err := PartOf(r, tt.x, tt.y)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "at (%v,%v)", tt.x, tt.y)
	}
}

func TestPartOfBrush(t *testing.T) {
	b := shape.Shape{Kind: shape.Brush, Points: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}}
	p, err := PartOf(b, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, Inside, p)

	p, err = PartOf(b, 30, 30)
	require.NoError(t, err)
	assert.Equal(t, None, p)

	single := shape.Shape{Kind: shape.Brush, Points: []geom.Point{{X: 0, Y: 0}}}
	p, err = PartOf(single, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, None, p, "a lone sample has no segment to hit")
}

func TestPartOfText(t *testing.T) {
	tx := shape.Shape{Kind: shape.Text, X1: 0, Y1: 0, X2: 40, Y2: 24}
	p, err := PartOf(tx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, Inside, p, "text has no handles")
}

func TestPartOfUnknownKind(t *testing.T) {
	_, err := PartOf(shape.Shape{Kind: shape.Kind(9)}, 0, 0)
	require.ErrorIs(t, err, shape.ErrUnknownKind)

	_, _, err = At(0, 0, shape.Collection{{Kind: shape.Kind(9)}})
	require.ErrorIs(t, err, shape.ErrUnknownKind)
}

func TestAtFirstCreatedWins(t *testing.T) {
	c := shape.Collection{rect(0, 0, 0, 100, 100), rect(1, 10, 10, 50, 50)}
	hit, ok, err := At(20, 20, c)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0, hit.Shape.ID)
	assert.Equal(t, Inside, hit.Part)
}

func TestAtMiss(t *testing.T) {
	_, ok, err := At(500, 500, shape.Collection{rect(0, 0, 0, 10, 10)})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCursorFor(t *testing.T) {
	assert.Equal(t, CursorResizeNWSE, CursorFor(TopLeft))
	assert.Equal(t, CursorResizeNWSE, CursorFor(End))
	assert.Equal(t, CursorResizeNESW, CursorFor(TopRight))
	assert.Equal(t, CursorResizeNESW, CursorFor(BottomLeft))
	assert.Equal(t, CursorMove, CursorFor(Inside))
	assert.Equal(t, "nwse-resize", CursorFor(Start).String())
	assert.Equal(t, "default", CursorDefault.String())
}
