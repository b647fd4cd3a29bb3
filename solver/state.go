package solver

import (
	"iter"
	"strings"

	"github.com/askeland/minesolve/board"
	"github.com/askeland/minesolve/game"
)

// State is a snapshot of everything the solver has deduced about a game: one
// belief per cell plus the number of mines not yet identified anywhere on
// the board. A State is immutable once published; every transition goes
// through a Mutator, which works on its own copy and publishes a new State.
type State struct {
	board     *board.Board[FieldKnowledge]
	minesLeft int
}

// NewState creates an all-Unknown state for a width×height board holding the
// given number of mines.
func NewState(width, height, mines int) *State {
	return &State{
		board:     board.New[FieldKnowledge](width, height),
		minesLeft: mines,
	}
}

// FromGame builds a state by replaying every currently visible cell of the
// game and propagating to a fixpoint. The game is the authority on its own
// board, so a contradiction here means it fed inconsistent data; FromGame
// panics in that case.
func FromGame(g *game.Game) *State {
	mutator := newMutator(NewState(g.Width(), g.Height(), g.Mines()))
	for pos := range g.Positions() {
		if field, ok := g.View(pos); ok {
			mutator.MarkExplored(pos, field)
		}
	}
	return mutator.MustFinish()
}

// KnowledgeAt returns the belief about pos and panics if pos is out of range.
func (s *State) KnowledgeAt(pos board.Vec) FieldKnowledge {
	return s.board.At(pos)
}

// MinesLeft returns the number of mines not yet identified on the board.
func (s *State) MinesLeft() int {
	return s.minesLeft
}

// Suggestions yields every position currently known to be safe but not yet
// revealed by the game. The sequence is lazy and can be ranged over any
// number of times.
func (s *State) Suggestions() iter.Seq[board.Vec] {
	return func(yield func(board.Vec) bool) {
		for pos, knowledge := range s.board.All() {
			if knowledge.Kind == NoMine && !yield(pos) {
				return
			}
		}
	}
}

// Mutator starts a batch of marks on a working copy of s. The receiver is
// left untouched no matter what the mutator does.
func (s *State) Mutator() *Mutator {
	return newMutator(s.Clone())
}

// Clone returns a deep copy sharing no storage with s.
func (s *State) Clone() *State {
	return &State{
		board:     s.board.Clone(),
		minesLeft: s.minesLeft,
	}
}

// Equal reports whether two states carry identical beliefs. Guess search
// uses this to detect hypotheses converging on the same propagated outcome.
func (s *State) Equal(other *State) bool {
	return s.minesLeft == other.minesLeft && board.Equal(s.board, other.board)
}

func (s *State) String() string {
	var out strings.Builder
	for pos, knowledge := range s.board.All() {
		switch knowledge.Kind {
		case Unknown:
			out.WriteRune('░')
		case Mine:
			out.WriteByte('X')
		case NoMine:
			out.WriteByte('.')
		case Explored:
			if knowledge.Explored.Mines == 0 {
				out.WriteByte(' ')
			} else {
				out.WriteByte(byte('0' + knowledge.Explored.MinesLeft))
			}
		}
		if pos.X == s.board.Width()-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
