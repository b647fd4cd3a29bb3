package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askeland/minesolve/board"
	"github.com/askeland/minesolve/game"
)

// mustFinish runs Finish and fails the test on a contradiction.
func mustFinish(t *testing.T, m *Mutator) *State {
	t.Helper()
	state, err := m.Finish()
	require.NoError(t, err)
	return state
}

// markAll replays explored cells into a fresh all-Unknown state.
func markAll(t *testing.T, width, height, mines int, marks []mark) *State {
	t.Helper()
	m := newMutator(NewState(width, height, mines))
	for _, mk := range marks {
		m.MarkExplored(mk.pos, mk.field)
	}
	return mustFinish(t, m)
}

type mark struct {
	pos   board.Vec
	field game.Field
}

// oneTwoOne is the classic pattern that stumps plain counting: mines at
// (0,0) and (2,0), the row below fully explored as 1-2-1.
var oneTwoOne = []mark{
	{board.V(0, 1), 1},
	{board.V(1, 1), 2},
	{board.V(2, 1), 1},
}

func TestMarkExploredBuildsConstraints(t *testing.T) {
	state := markAll(t, 3, 2, 2, oneTwoOne)

	assert.Equal(t,
		ExploredField(ExploredKnowledge{Mines: 1, MinesLeft: 1, Unknowns: 2}),
		state.KnowledgeAt(board.V(0, 1)))
	assert.Equal(t,
		ExploredField(ExploredKnowledge{Mines: 2, MinesLeft: 2, Unknowns: 3}),
		state.KnowledgeAt(board.V(1, 1)))
	assert.Equal(t,
		ExploredField(ExploredKnowledge{Mines: 1, MinesLeft: 1, Unknowns: 2}),
		state.KnowledgeAt(board.V(2, 1)))
	assert.Equal(t, 2, state.MinesLeft())
}

func TestPropagationIsConfluent(t *testing.T) {
	orders := [][]int{
		{0, 1, 2},
		{0, 2, 1},
		{1, 0, 2},
		{1, 2, 0},
		{2, 0, 1},
		{2, 1, 0},
	}

	reference := markAll(t, 3, 2, 2, oneTwoOne)
	for _, order := range orders {
		marks := make([]mark, len(order))
		for i, j := range order {
			marks[i] = oneTwoOne[j]
		}
		assert.True(t, reference.Equal(markAll(t, 3, 2, 2, marks)),
			"mark order %v diverged", order)
	}
}

func TestFinishDeducesMinesAndSafeCells(t *testing.T) {
	// 2x3 board, mine at (0,0); (1,0), (0,1) and (1,1) explored. The cell
	// (1,0) sees a single unknown, forcing the mine, which in turn proves
	// the bottom row safe.
	state := markAll(t, 2, 3, 1, []mark{
		{board.V(1, 0), 1},
		{board.V(0, 1), 1},
		{board.V(1, 1), 1},
	})

	assert.Equal(t, Mine, state.KnowledgeAt(board.V(0, 0)).Kind)
	assert.Equal(t, NoMine, state.KnowledgeAt(board.V(0, 2)).Kind)
	assert.Equal(t, NoMine, state.KnowledgeAt(board.V(1, 2)).Kind)
	assert.Equal(t, 0, state.MinesLeft())
}

func TestFinishPropagatesBlankNeighbourhood(t *testing.T) {
	// Exploring the center of a mine-free 3x3 board proves every
	// neighbour safe.
	state := markAll(t, 3, 3, 0, []mark{{board.V(1, 1), 0}})

	suggestions := 0
	for pos := range state.Suggestions() {
		suggestions++
		assert.NotEqual(t, board.V(1, 1), pos)
	}
	assert.Equal(t, 8, suggestions)
}

func TestMarkExploredOnNoMineKeepsNeighbourCounts(t *testing.T) {
	// (0,0) explored on a mine-free 2x1 board deduces (1,0) safe and drops
	// its own unknown count to zero. Exploring the NoMine cell afterwards
	// must not decrement it again.
	first := markAll(t, 2, 1, 0, []mark{{board.V(0, 0), 0}})
	require.Equal(t, NoMine, first.KnowledgeAt(board.V(1, 0)).Kind)

	m := first.Mutator()
	m.MarkExplored(board.V(1, 0), 0)
	second := mustFinish(t, m)

	assert.Equal(t,
		ExploredField(ExploredKnowledge{Mines: 0, MinesLeft: 0, Unknowns: 0}),
		second.KnowledgeAt(board.V(0, 0)))
	assert.Equal(t, Explored, second.KnowledgeAt(board.V(1, 0)).Kind)
}

func TestMarkMineWithNoMinesLeftIsContradiction(t *testing.T) {
	m := newMutator(NewState(3, 1, 0))

	err := m.markMine(board.V(1, 0))
	require.NotNil(t, err)
	assert.Equal(t, board.V(1, 0), err.Pos)
}

func TestMarkMineBreakingConstraintIsContradiction(t *testing.T) {
	// (0,0) explored with no mines around it; claiming its neighbour is a
	// mine contradicts that constraint.
	m := newMutator(NewState(3, 1, 1))
	m.MarkExplored(board.V(0, 0), 0)

	err := m.markMine(board.V(1, 0))
	require.NotNil(t, err)
	assert.Equal(t, board.V(1, 0), err.Pos)
}

func TestMarkNoMineBreakingConstraintIsContradiction(t *testing.T) {
	// (0,0) explored seeing one mine in a single candidate; claiming that
	// candidate safe leaves the mine nowhere to go.
	m := newMutator(NewState(2, 1, 1))
	m.MarkExplored(board.V(0, 0), 1)

	err := m.markNoMine(board.V(1, 0))
	require.NotNil(t, err)
	assert.Equal(t, board.V(1, 0), err.Pos)
}

func TestRemarkingIsNoOp(t *testing.T) {
	m := newMutator(NewState(3, 1, 1))
	require.Nil(t, m.markMine(board.V(0, 0)))
	require.Nil(t, m.markMine(board.V(0, 0)))
	require.Nil(t, m.markNoMine(board.V(2, 0)))
	require.Nil(t, m.markNoMine(board.V(2, 0)))

	state := mustFinish(t, m)
	assert.Equal(t, Mine, state.KnowledgeAt(board.V(0, 0)).Kind)
	assert.Equal(t, NoMine, state.KnowledgeAt(board.V(2, 0)).Kind)
	assert.Equal(t, 0, state.MinesLeft())
}

func TestMarkExploredPreconditions(t *testing.T) {
	assert.Panics(t, func() {
		m := newMutator(NewState(2, 1, 1))
		m.MarkExplored(board.V(0, 0), game.FieldMine)
	}, "revealed value is a mine")

	assert.Panics(t, func() {
		m := newMutator(NewState(2, 1, 1))
		m.MarkExplored(board.V(0, 0), 1)
		m.MarkExplored(board.V(0, 0), 1)
	}, "already explored")

	assert.Panics(t, func() {
		m := newMutator(NewState(2, 1, 1))
		require.Nil(t, m.markMine(board.V(0, 0)))
		m.MarkExplored(board.V(0, 0), 1)
	}, "already deduced to be a mine")
}

func TestMarkPreconditions(t *testing.T) {
	assert.Panics(t, func() {
		m := newMutator(NewState(2, 1, 1))
		require.Nil(t, m.markNoMine(board.V(0, 0)))
		_ = m.markMine(board.V(0, 0))
	}, "markMine on a cell proven safe")

	assert.Panics(t, func() {
		m := newMutator(NewState(2, 1, 1))
		require.Nil(t, m.markMine(board.V(0, 0)))
		_ = m.markNoMine(board.V(0, 0))
	}, "markNoMine on a cell proven mined")

	assert.Panics(t, func() {
		m := newMutator(NewState(2, 1, 1))
		m.MarkExplored(board.V(0, 0), 1)
		_ = m.markNoMine(board.V(0, 0))
	}, "markNoMine on an explored cell")
}

func TestReachableStatesSatisfyInvariants(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		builder := game.NewSetupBuilder(9, 9, seed)
		builder.ProtectAll(board.V(4, 4).WithNeighbours())
		require.True(t, builder.AddRandomMines(10))

		g := game.New(builder.Build())
		_, ok := g.Open(board.V(4, 4))
		require.True(t, ok)

		state := FromGame(g)
		for pos := range g.Positions() {
			knowledge := state.KnowledgeAt(pos)
			if knowledge.Kind != Explored {
				continue
			}
			explored := knowledge.Explored
			assert.LessOrEqual(t, explored.MinesLeft, explored.Mines, "at %v", pos)
			assert.LessOrEqual(t, explored.MinesLeft, explored.Unknowns, "at %v", pos)
			assert.LessOrEqual(t, explored.Unknowns, 8, "at %v", pos)
			assert.GreaterOrEqual(t, explored.MinesLeft, 0, "at %v", pos)
		}
	}
}
