package random

import (
	"math/rand"
	"slices"

	"github.com/askeland/minesolve/board"
	"github.com/askeland/minesolve/game"
)

// Director opens hidden cells in a random order. It is the baseline player
// and the last resort of smarter directors.
type Director struct {
	game  *game.Game
	order []board.Vec
}

func (director *Director) Init(g *game.Game) {
	director.game = g
	director.order = slices.Collect(g.Positions())

	rand.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act() []board.Vec {
	for _, pos := range director.order {
		if !director.game.IsVisible(pos) {
			return []board.Vec{pos}
		}
	}
	return nil
}

func (director *Director) End() {}
