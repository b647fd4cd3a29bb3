package solver

import (
	"fmt"

	"github.com/askeland/minesolve/board"
	"github.com/askeland/minesolve/game"
)

// Mutator applies a batch of reveals and deductions to a working copy of a
// State and propagates their consequences to a fixpoint. It is transient:
// create one, apply marks, then consume it with Finish or MustFinish.
//
// The queue holds positions whose constraint newly became potentially
// actionable. Termination of the fixpoint is guaranteed because every mark
// strictly reduces the number of Unknown cells.
type Mutator struct {
	state *State
	queue *board.Explorer
}

// newMutator takes ownership of state.
func newMutator(state *State) *Mutator {
	return &Mutator{
		state: state,
		queue: board.ExplorerFor(state.board),
	}
}

// MarkExplored records that the game revealed field at pos. A cell already
// believed to be a mine, a cell explored earlier, or a revealed mine field
// all mean the caller fed the solver dishonest data; those panic.
func (m *Mutator) MarkExplored(pos board.Vec, field game.Field) {
	knowledge := m.state.board.At(pos)
	switch knowledge.Kind {
	case Unknown, NoMine:
		if field.IsMine() {
			panic(fmt.Sprintf("solver: cannot mark mine field %v as explored", pos))
		}

		unknowns := 0
		minesLeft := field.AdjacentMines()
		for neighbour := range pos.Neighbours() {
			neighbourKnowledge, ok := m.state.board.Get(neighbour)
			if !ok {
				continue
			}
			switch neighbourKnowledge.Kind {
			case Explored:
				// A NoMine cell carried no unknown weight for its
				// neighbours, so only a previously Unknown pos is
				// removed from their candidate counts.
				if knowledge.Kind == Unknown {
					neighbourKnowledge.Explored.Unknowns--
					m.state.board.Set(neighbour, neighbourKnowledge)
					m.enqueue(neighbour, neighbourKnowledge.Explored)
				}
			case Mine:
				minesLeft--
			case Unknown:
				unknowns++
			case NoMine:
			}
		}

		explored := ExploredKnowledge{
			Mines:     field.AdjacentMines(),
			MinesLeft: minesLeft,
			Unknowns:  unknowns,
		}
		m.state.board.Set(pos, ExploredField(explored))
		m.enqueue(pos, explored)
	case Mine:
		panic(fmt.Sprintf("solver: cannot mark deduced mine %v as explored", pos))
	case Explored:
		panic(fmt.Sprintf("solver: %v is already explored", pos))
	}
}

// markMine records the deduction (or hypothesis) that pos holds a mine.
// Marking a cell the solver proved safe is a caller bug and panics; running
// out of mines, or breaking a neighbour's constraint, is a Contradiction.
func (m *Mutator) markMine(pos board.Vec) *Contradiction {
	switch m.state.board.At(pos).Kind {
	case Unknown:
		if m.state.minesLeft == 0 {
			return &Contradiction{Pos: pos}
		}
		m.state.minesLeft--
		m.state.board.Set(pos, FieldKnowledge{Kind: Mine})

		for neighbour := range pos.Neighbours() {
			neighbourKnowledge, ok := m.state.board.Get(neighbour)
			if !ok || neighbourKnowledge.Kind != Explored {
				continue
			}
			explored := neighbourKnowledge.Explored
			if explored.MinesLeft == 0 || explored.Unknowns < explored.MinesLeft {
				return &Contradiction{Pos: pos}
			}
			explored.MinesLeft--
			explored.Unknowns--
			m.state.board.Set(neighbour, ExploredField(explored))
			m.enqueue(neighbour, explored)
		}
	case Mine:
	case NoMine, Explored:
		panic(fmt.Sprintf("solver: %v was deduced to not be a mine", pos))
	}
	return nil
}

// markNoMine records the deduction that pos is safe. A neighbour that could
// no longer place its remaining mines is a Contradiction.
func (m *Mutator) markNoMine(pos board.Vec) *Contradiction {
	switch m.state.board.At(pos).Kind {
	case Unknown:
		m.state.board.Set(pos, FieldKnowledge{Kind: NoMine})

		for neighbour := range pos.Neighbours() {
			neighbourKnowledge, ok := m.state.board.Get(neighbour)
			if !ok || neighbourKnowledge.Kind != Explored {
				continue
			}
			explored := neighbourKnowledge.Explored
			if explored.Unknowns <= explored.MinesLeft {
				return &Contradiction{Pos: pos}
			}
			explored.Unknowns--
			m.state.board.Set(neighbour, ExploredField(explored))
			m.enqueue(neighbour, explored)
		}
	case NoMine:
	case Mine:
		panic(fmt.Sprintf("solver: %v was deduced to be a mine", pos))
	case Explored:
		panic(fmt.Sprintf("solver: %v is already explored", pos))
	}
	return nil
}

func (m *Mutator) enqueue(pos board.Vec, explored ExploredKnowledge) {
	if explored.Conclusion() != Unconclusive {
		m.queue.Enqueue(pos)
	}
}

// Finish drains the deduction queue to a fixpoint and publishes the
// resulting State. The queue runs re-enterable: a popped cell may requeue
// when later marks change its constraint again. A *Contradiction result
// names the position at which the constraints became unsatisfiable; the
// working state is discarded. The mutator must not be used afterwards.
func (m *Mutator) Finish() (*State, error) {
	m.queue.AllowRequeue(true)

	for {
		pos, ok := m.queue.Pop()
		if !ok {
			break
		}
		knowledge := m.state.board.At(pos)
		if knowledge.Kind != Explored {
			panic(fmt.Sprintf("solver: queued cell %v is not explored", pos))
		}

		switch knowledge.Explored.Conclusion() {
		case NeighboursAreNotMines:
			for neighbour := range pos.Neighbours() {
				if k, ok := m.state.board.Get(neighbour); ok && k.Kind == Unknown {
					if err := m.markNoMine(neighbour); err != nil {
						return nil, err
					}
				}
			}
		case NeighboursAreMines:
			for neighbour := range pos.Neighbours() {
				if k, ok := m.state.board.Get(neighbour); ok && k.Kind == Unknown {
					if err := m.markMine(neighbour); err != nil {
						return nil, err
					}
				}
			}
		case Unconclusive:
		}
	}

	return m.state, nil
}

// MustFinish is Finish for honest game data, where a contradiction would
// mean the solver and the board disagree and nothing sensible can recover.
func (m *Mutator) MustFinish() *State {
	state, err := m.Finish()
	if err != nil {
		panic(err)
	}
	return state
}
