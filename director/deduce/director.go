package deduce

import (
	"github.com/sirupsen/logrus"

	"github.com/askeland/minesolve/board"
	"github.com/askeland/minesolve/director/random"
	"github.com/askeland/minesolve/game"
	"github.com/askeland/minesolve/solver"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
}

// Director plays by deduction. It keeps a solver state synchronized with the
// game and opens whatever that state proves safe; when plain propagation is
// exhausted it resorts to hypothesis testing, and when even that proves
// nothing it opens a random hidden cell and accepts the risk.
type Director struct {
	game   *game.Game
	state  *solver.State
	random random.Director
}

func (director *Director) Init(g *game.Game) {
	director.game = g
	director.state = solver.FromGame(g)
	director.random.Init(g)
}

func (director *Director) Act() []board.Vec {
	actors := []struct {
		name string
		act  func() []board.Vec
	}{
		{"deliberate", director.actDeliberate},
		{"deep", director.actDeep},
		{"random", director.random.Act},
	}

	for _, actor := range actors {
		if moves := actor.act(); len(moves) > 0 {
			log.WithFields(logrus.Fields{
				"actor": actor.name,
				"moves": len(moves),
			}).Debug("director acting")
			return moves
		}
	}
	return nil
}

// actDeliberate returns the cells propagation has already proven safe.
func (director *Director) actDeliberate() []board.Vec {
	var moves []board.Vec
	for pos := range director.state.Suggestions() {
		moves = append(moves, pos)
	}
	return moves
}

// actDeep tests hypothetical mine placements around the most constrained
// frontier cells.
func (director *Director) actDeep() []board.Vec {
	return director.state.DeepSuggestion()
}

// CellsOpened feeds cells the game newly revealed back into the solver
// state, propagating their constraints.
func (director *Director) CellsOpened(opened []board.Vec) {
	mutator := director.state.Mutator()
	for _, pos := range opened {
		field, visible := director.game.View(pos)
		if !visible {
			log.WithField("pos", pos).Panic("reported cell is not visible")
		}
		mutator.MarkExplored(pos, field)
	}
	director.state = mutator.MustFinish()
}

func (director *Director) End() {}
