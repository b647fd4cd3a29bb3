package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askeland/minesolve/board"
	"github.com/askeland/minesolve/game"
)

func TestActPicksHiddenCell(t *testing.T) {
	mines := board.New[bool](3, 3)
	mines.Set(board.V(0, 0), true)
	g := game.New(game.NewSetup(mines))

	director := &Director{}
	director.Init(g)

	moves := director.Act()
	require.Len(t, moves, 1)
	assert.False(t, g.IsVisible(moves[0]))
}

func TestActExhaustedBoard(t *testing.T) {
	g := game.New(game.NewSetup(board.New[bool](2, 2)))
	_, ok := g.Open(board.V(0, 0))
	require.True(t, ok)

	director := &Director{}
	director.Init(g)

	assert.Nil(t, director.Act())
}
