// Package solver derives, from the cells a minesweeper game has revealed,
// which hidden cells are provably safe, provably mined, or undecidable by
// pure logic. It propagates local adjacency constraints to a fixpoint and,
// when that proves nothing, tests hypothetical mine placements on cloned
// states to squeeze out forced conclusions.
package solver

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/askeland/minesolve/board"
	"github.com/askeland/minesolve/game"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
}

// Hint returns the safe moves the solver can prove for the current game,
// falling back to hypothesis testing when propagation alone proves nothing.
// An empty result means the player has to take a real risk.
func Hint(g *game.Game) []board.Vec {
	state := FromGame(g)

	suggestions := slices.Collect(state.Suggestions())
	if len(suggestions) == 0 {
		suggestions = state.DeepSuggestion()
	}
	return suggestions
}

// IsSolvable reports whether the game can be won from its current position
// by deduction alone, never guessing. It plays out a copy; the receiver
// game is left untouched.
func IsSolvable(g *game.Game) bool {
	g = g.Clone()
	state := FromGame(g)

	for {
		if g.IsWin() {
			return true
		}

		suggestions := slices.Collect(state.Suggestions())
		if len(suggestions) == 0 {
			suggestions = state.DeepSuggestion()
			if len(suggestions) == 0 {
				return false
			}
		}

		mutator := state.Mutator()
		for _, suggestion := range suggestions {
			opened, ok := g.Open(suggestion)
			if !ok {
				log.WithField("pos", suggestion).Panic("solver suggested a mine")
			}
			for _, pos := range opened {
				field, visible := g.View(pos)
				if !visible {
					log.WithField("pos", pos).Panic("opened cell is not visible")
				}
				mutator.MarkExplored(pos, field)
			}
		}
		state = mutator.MustFinish()
	}
}
