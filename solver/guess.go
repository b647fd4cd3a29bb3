package solver

import (
	"cmp"
	"slices"

	"github.com/askeland/minesolve/board"
	"github.com/askeland/minesolve/util/collections"
)

// guessPos couples a frontier cell with its ranking score.
type guessPos struct {
	impact int
	pos    board.Vec
}

// findGuessPositions ranks the frontier: every explored cell with at least
// one unknown neighbour and a nonzero true mine count. Fewer open unknowns
// relative to the mines still owed means the cell is more constrained and a
// hypothesis there is more likely to force a conclusion. Ties break by
// ascending x, then ascending y.
func (s *State) findGuessPositions() []guessPos {
	var result []guessPos
	for pos, knowledge := range s.board.All() {
		if knowledge.Kind != Explored {
			continue
		}
		explored := knowledge.Explored
		if explored.Unknowns > 0 && explored.Mines > 0 {
			// At a fixpoint a frontier cell always owes at least one
			// mine, otherwise propagation would have cleared its
			// unknowns.
			impact := (8 - explored.Unknowns) * 1000 / explored.MinesLeft
			result = append(result, guessPos{impact: impact, pos: pos})
		}
	}

	slices.SortFunc(result, func(a, b guessPos) int {
		if c := cmp.Compare(b.impact, a.impact); c != 0 {
			return c
		}
		if c := cmp.Compare(a.pos.X, b.pos.X); c != 0 {
			return c
		}
		return cmp.Compare(a.pos.Y, b.pos.Y)
	})
	return result
}

// DeepSuggestion resolves positions that plain propagation cannot. For each
// frontier cell, in ranking order, every unknown neighbour is assumed to be
// a mine on a cloned state and propagated. A contradiction proves that
// neighbour safe. If every surviving hypothesis converges on one propagated
// state, its conclusions are forced: the result is the union of the
// contradicted neighbours and the converged state's suggestions. Two
// hypotheses propagating to different consistent states make the frontier
// cell inconclusive, and the search moves on. An empty result means no
// frontier cell forces anything, and a true probabilistic guess is up to
// the caller.
func (s *State) DeepSuggestion() []board.Vec {
guessLoop:
	for _, guess := range s.findGuessPositions() {
		var hypothesis *State
		noMines := make(collections.Set[board.Vec])

		for neighbour := range guess.pos.Neighbours() {
			if knowledge, ok := s.board.Get(neighbour); !ok || knowledge.Kind != Unknown {
				continue
			}

			mutator := s.Mutator()
			if err := mutator.markMine(neighbour); err != nil {
				noMines.Add(neighbour)
				continue
			}
			outcome, err := mutator.Finish()
			if err != nil {
				noMines.Add(neighbour)
				continue
			}

			if hypothesis == nil {
				hypothesis = outcome
			} else if !outcome.Equal(hypothesis) {
				continue guessLoop
			}
		}

		if hypothesis != nil {
			for pos := range hypothesis.Suggestions() {
				noMines.Add(pos)
			}
			result := make([]board.Vec, 0, len(noMines))
			for pos := range noMines {
				result = append(result, pos)
			}
			slices.SortFunc(result, func(a, b board.Vec) int {
				if c := cmp.Compare(a.X, b.X); c != 0 {
					return c
				}
				return cmp.Compare(a.Y, b.Y)
			})
			return result
		}
	}

	return nil
}
