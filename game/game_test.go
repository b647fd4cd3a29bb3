package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askeland/minesolve/board"
)

func TestOpenStopsAtNumbers(t *testing.T) {
	// 1x3 board, mine at (0,0). Opening (2,0) flood-fills to (1,0), whose
	// count of 1 stops the cascade before the mine.
	g := New(NewSetup(layout(3, 1, board.V(0, 0))))

	opened, ok := g.Open(board.V(2, 0))

	require.True(t, ok)
	assert.ElementsMatch(t, []board.Vec{board.V(2, 0), board.V(1, 0)}, opened)
	assert.False(t, g.IsVisible(board.V(0, 0)))
	assert.True(t, g.IsWin())
}

func TestOpenMineFreeBoardRevealsEverything(t *testing.T) {
	g := New(NewSetup(layout(4, 3)))

	opened, ok := g.Open(board.V(1, 1))

	require.True(t, ok)
	assert.Len(t, opened, 12)
	for pos := range g.Positions() {
		assert.True(t, g.IsVisible(pos))
	}
	assert.True(t, g.IsWin())
}

func TestOpenIsIdempotentOnVisibleRegion(t *testing.T) {
	g := New(NewSetup(layout(4, 3)))

	_, ok := g.Open(board.V(0, 0))
	require.True(t, ok)

	opened, ok := g.Open(board.V(0, 0))
	require.True(t, ok)
	assert.Empty(t, opened)

	opened, ok = g.Open(board.V(3, 2))
	require.True(t, ok)
	assert.Empty(t, opened)
}

func TestOpenMineIsLossWithoutMutation(t *testing.T) {
	g := New(NewSetup(layout(3, 3, board.V(1, 1))))
	_, ok := g.Open(board.V(0, 0))
	require.True(t, ok)
	hiddenBefore := g.HiddenFields()

	opened, ok := g.Open(board.V(1, 1))

	assert.False(t, ok)
	assert.Empty(t, opened)
	assert.Equal(t, hiddenBefore, g.HiddenFields())
	assert.False(t, g.IsVisible(board.V(1, 1)))
}

func TestWinDetection(t *testing.T) {
	g := New(NewSetup(layout(2, 2, board.V(0, 0))))

	assert.False(t, g.IsWin())
	for _, pos := range []board.Vec{board.V(1, 0), board.V(0, 1), board.V(1, 1)} {
		_, ok := g.Open(pos)
		require.True(t, ok)
	}
	assert.True(t, g.IsWin())
	assert.Equal(t, g.Mines(), g.HiddenFields())
}

func TestViewHiddenField(t *testing.T) {
	g := New(NewSetup(layout(2, 1, board.V(0, 0))))

	_, visible := g.View(board.V(1, 0))
	assert.False(t, visible)

	_, ok := g.Open(board.V(1, 0))
	require.True(t, ok)

	field, visible := g.View(board.V(1, 0))
	assert.True(t, visible)
	assert.Equal(t, Field(1), field)
}

func TestGameCloneIsolation(t *testing.T) {
	g := New(NewSetup(layout(3, 1, board.V(0, 0))))
	clone := g.Clone()

	_, ok := clone.Open(board.V(2, 0))
	require.True(t, ok)

	assert.False(t, g.IsVisible(board.V(2, 0)))
	assert.True(t, clone.IsVisible(board.V(2, 0)))
	assert.Equal(t, 3, g.HiddenFields())
}

func TestGameString(t *testing.T) {
	g := New(NewSetup(layout(3, 1, board.V(0, 0))))

	assert.Equal(t, "###\n", g.String())

	_, ok := g.Open(board.V(2, 0))
	require.True(t, ok)
	assert.Equal(t, "#1 \n", g.String())
}
