package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/event/key"

	"github.com/example/roughboard/internal/board"
	"github.com/example/roughboard/internal/geom"
	"github.com/example/roughboard/internal/shape"
)

func run(t *testing.T, src string) *board.Board {
	t.Helper()
	cmds, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	b := board.New()
	require.NoError(t, Run(b, cmds))
	return b
}

func TestParse(t *testing.T) {
	cmds, err := Parse(strings.NewReader("# heading\n\nTOOL line\n  type 'two words' \"and more\"\n"))
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Equal(t, Command{Line: 3, Name: "tool", Args: []string{"line"}}, cmds[0])
	assert.Equal(t, Command{Line: 4, Name: "type", Args: []string{"two words", "and more"}}, cmds[1])
	assert.Equal(t, `type "two words" "and more"`, cmds[1].String())
}

func TestParseUnterminatedQuote(t *testing.T) {
	_, err := Parse(strings.NewReader("tool line\ntype \"oops\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReplayRectangle(t *testing.T) {
	b := run(t, `
tool rectangle
color red
filled on
down 50 80
move 30 40
move 10 20
up 10 20
`)
	c := b.Shapes()
	require.Len(t, c, 1)
	assert.Equal(t, shape.Rectangle, c[0].Kind)
	assert.Equal(t, [4]float64{10, 20, 50, 80}, [4]float64{c[0].X1, c[0].Y1, c[0].X2, c[0].Y2})
	assert.Equal(t, shape.Style{Color: shape.Red, Filled: true}, c[0].Style)
}

func TestReplayBrushMoveUndo(t *testing.T) {
	b := run(t, `
tool brush
down 10 10
move 20 10
move 30 15
up 30 15
tool selection
down 15 10
move 25 17
up 25 17
`)
	assert.Equal(t, []geom.Point{{X: 20, Y: 17}, {X: 30, Y: 17}, {X: 40, Y: 22}}, b.Shapes()[0].Points)

	require.NoError(t, Run(b, []Command{{Name: "key", Args: []string{"ctrl+z"}}}))
	assert.Equal(t, []geom.Point{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 30, Y: 15}}, b.Shapes()[0].Points)
	require.NoError(t, Run(b, []Command{{Name: "redo"}}))
	assert.Equal(t, geom.Pt(20, 17), b.Shapes()[0].Points[0])
}

func TestReplayText(t *testing.T) {
	b := run(t, `
tool text
down 100 100
up 100 100
type "hi there"
key backspace
key enter
`)
	assert.Equal(t, board.StateNone, b.State())
	assert.Equal(t, "hi ther", b.Shapes()[0].Text)

	b = run(t, "tool text\ndown 5 5\ntype x\ncommit\n")
	assert.Equal(t, "x", b.Shapes()[0].Text)
}

func TestRunReportsLine(t *testing.T) {
	tests := []struct {
		src  string
		want error
	}{
		{"tool line\nerase 1 2\n", ErrUnknownCommand},
		{"tool line\ndown 1\n", ErrArgs},
		{"tool line\ndown a 2\n", ErrArgs},
		{"tool line\ndown NaN 0\n", ErrArgs},
		{"tool line\ndown 0 -inf\n", ErrArgs},
		{"tool line\nfilled maybe\n", ErrArgs},
		{"tool line\nkey hyper+z\n", ErrArgs},
	}
	for _, tt := range tests {
		cmds, err := Parse(strings.NewReader(tt.src))
		require.NoError(t, err)
		err = Run(board.New(), cmds)
		require.ErrorIs(t, err, tt.want, tt.src)
		assert.Contains(t, err.Error(), "line 2")
	}

	cmds, err := Parse(strings.NewReader("tool eraser\n"))
	require.NoError(t, err)
	require.Error(t, Run(board.New(), cmds))
	cmds, err = Parse(strings.NewReader("color purple\n"))
	require.NoError(t, err)
	require.Error(t, Run(board.New(), cmds))
}

func TestRunRejectsInfiniteExtent(t *testing.T) {
	cmds, err := Parse(strings.NewReader("tool rectangle\nfilled on\ndown 0 0\nmove Inf 10\n"))
	require.NoError(t, err)
	b := board.New()
	err = Run(b, cmds)
	require.ErrorIs(t, err, ErrArgs)
	assert.Contains(t, err.Error(), "line 4")
	require.Len(t, b.Shapes(), 1)
	assert.Equal(t, [2]float64{0, 0}, [2]float64{b.Shapes()[0].X2, b.Shapes()[0].Y2})
}

func TestParseKey(t *testing.T) {
	e, err := ParseKey("Ctrl+Shift+Z")
	require.NoError(t, err)
	assert.Equal(t, key.CodeZ, e.Code)
	assert.Equal(t, 'z', e.Rune)
	assert.Equal(t, key.ModControl|key.ModShift, e.Modifiers)

	e, err = ParseKey("esc")
	require.NoError(t, err)
	assert.Equal(t, key.CodeEscape, e.Code)

	_, err = ParseKey("f13")
	require.ErrorIs(t, err, ErrArgs)
}
