package history

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/roughboard/internal/shape"
)

func version(n int) shape.Collection {
	c := make(shape.Collection, n)
	for i := range c {
		c[i] = shape.Shape{ID: i, Kind: shape.Rectangle, X2: float64(n)}
	}
	return c
}

func TestNewStartsAtInitial(t *testing.T) {
	s := New(version(0))
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.CanUndo())
	assert.False(t, s.CanRedo())
}

func TestAppendUndoRedo(t *testing.T) {
	s := New(version(0))
	s.Append(version(1))
	s.Append(version(2))
	require.Len(t, s.Current(), 2)

	assert.True(t, s.Undo())
	assert.Len(t, s.Current(), 1)
	assert.True(t, s.Undo())
	assert.Len(t, s.Current(), 0)
	assert.False(t, s.Undo(), "undo at the oldest version is a no-op")
	assert.Equal(t, 0, s.Index())

	assert.True(t, s.Redo())
	assert.True(t, s.Redo())
	assert.False(t, s.Redo(), "redo at the newest version is a no-op")
	assert.Len(t, s.Current(), 2)
}

func TestAppendAfterUndoTruncates(t *testing.T) {
	s := New(version(0))
	s.Append(version(1))
	s.Append(version(2))
	s.Append(version(3))
	s.Undo()
	s.Undo()

	s.Append(version(7))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 2, s.Index())
	assert.Len(t, s.Current(), 7)
	assert.False(t, s.CanRedo())
}

func TestOverwriteKeepsIndexAndLength(t *testing.T) {
	s := New(version(0))
	s.Append(version(1))
	s.Overwrite(version(4))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.Index())
	assert.Len(t, s.Current(), 4)

	s.Undo()
	assert.Len(t, s.Current(), 0, "overwrite must not touch earlier versions")
}

func TestAppendDoesNotClobberUndoneVersions(t *testing.T) {
	s := New(version(0))
	s.Append(version(1))
	s.Append(version(2))
	s.Undo()
	kept := s.versions[:3]

	s.Append(version(5))
	assert.Len(t, kept[2], 2, "backing array of the old timeline must be left alone")
}

func TestOnChange(t *testing.T) {
	s := New(version(0))
	var seen []int
	s.OnChange(func(c shape.Collection) { seen = append(seen, len(c)) })

	s.Append(version(1))
	s.Overwrite(version(2))
	s.Undo()
	s.Undo()
	s.Redo()
	assert.Equal(t, []int{1, 2, 0, 2}, seen)
}

func TestIndexInvariantUnderRandomOperations(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	s := New(version(0))
	for i := 0; i < 2000; i++ {
		switch rnd.IntN(4) {
		case 0:
			s.Append(version(rnd.IntN(5)))
		case 1:
			before, length := s.Index(), s.Len()
			s.Overwrite(version(rnd.IntN(5)))
			require.Equal(t, before, s.Index())
			require.Equal(t, length, s.Len())
		case 2:
			s.Undo()
		case 3:
			s.Redo()
		}
		require.GreaterOrEqual(t, s.Index(), 0)
		require.Less(t, s.Index(), s.Len())
	}
}
