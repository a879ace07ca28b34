package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	th, err := Parse(strings.NewReader("Name: Test\n# comment\nCanvas: #102030\ncaret: #01020380\nUnknown: #FFFFFF\n"))
	require.NoError(t, err)
	assert.Equal(t, "Test", th.Name)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0xFF}, th.Canvas)
	assert.Equal(t, color.RGBA{1, 2, 3, 0x80}, th.Caret)
	assert.Equal(t, Default().Background, th.Background)
}

func TestParseRejectsBadColor(t *testing.T) {
	for _, in := range []string{"Canvas: red", "Canvas: #12345", "Canvas: #GGGGGG"} {
		_, err := Parse(strings.NewReader(in))
		require.ErrorIs(t, err, ErrColorFormat, in)
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range []color.RGBA{{1, 2, 3, 255}, {0xAA, 0xBB, 0xCC, 0x40}} {
		got, err := ParseColor(Hex(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestFieldsCoversEveryColor(t *testing.T) {
	fields := Fields(Default())
	require.NotEmpty(t, fields)
	assert.Equal(t, "Background", fields[0].Key)
	th := &Theme{}
	for _, f := range fields {
		require.NoError(t, SetField(th, f.Key, Hex(f.Color)))
	}
	th.Name = Default().Name
	assert.Equal(t, Default(), th)
}

func TestEmbeddedThemesLoad(t *testing.T) {
	names := Names()
	assert.ElementsMatch(t, []string{"chalk", "dark", "light"}, names)
	l := &Loader{}
	for _, n := range names {
		th, err := l.Load(n)
		require.NoError(t, err, n)
		assert.NotEmpty(t, th.Name)
	}
}

func TestLoaderOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mine.theme"), []byte("Name: Mine\n"), 0o644))
	file := filepath.Join(dir, "direct.theme")
	require.NoError(t, os.WriteFile(file, []byte("Name: Direct\n"), 0o644))

	l := &Loader{ConfigDir: dir, Extra: map[string]*Theme{"dark": {Name: "Inline"}}}

	th, err := l.Load("mine")
	require.NoError(t, err)
	assert.Equal(t, "Mine", th.Name)

	th, err = l.Load(file)
	require.NoError(t, err)
	assert.Equal(t, "Direct", th.Name)

	th, err = l.Load("dark")
	require.NoError(t, err)
	assert.Equal(t, "Inline", th.Name, "config themes shadow embedded ones")

	th, err = l.Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), th)

	_, err = l.Load("missing")
	require.Error(t, err)
}
