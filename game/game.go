package game

import (
	"iter"
	"strings"

	"github.com/askeland/minesolve/board"
)

// Game pairs a Setup with a visibility mask and tracks how many cells remain
// hidden. The solver treats a Game as read-only; only Open mutates it.
type Game struct {
	setup        *Setup
	view         *board.Board[bool]
	hiddenFields int
}

// New starts a fresh game with every cell hidden.
func New(setup *Setup) *Game {
	return &Game{
		setup:        setup,
		view:         board.New[bool](setup.Width(), setup.Height()),
		hiddenFields: setup.Width() * setup.Height(),
	}
}

func (g *Game) Setup() *Setup {
	return g.setup
}

func (g *Game) Width() int {
	return g.setup.Width()
}

func (g *Game) Height() int {
	return g.setup.Height()
}

// Mines returns the total number of mines on the board.
func (g *Game) Mines() int {
	return g.setup.Mines()
}

// HiddenFields returns the number of still-hidden cells. It never drops
// below the mine count.
func (g *Game) HiddenFields() int {
	return g.hiddenFields
}

// IsWin reports whether every non-mine cell has been revealed.
func (g *Game) IsWin() bool {
	return g.hiddenFields == g.setup.Mines()
}

func (g *Game) IsVisible(pos board.Vec) bool {
	visible, _ := g.view.Get(pos)
	return visible
}

// View returns the field at pos if it has been revealed.
func (g *Game) View(pos board.Vec) (Field, bool) {
	if !g.IsVisible(pos) {
		return 0, false
	}
	return g.setup.Field(pos)
}

// Positions yields every position of the board, row by row.
func (g *Game) Positions() iter.Seq[board.Vec] {
	return g.setup.Positions()
}

// Open reveals the cell at pos. If pos holds a mine the game is lost: Open
// returns ok == false and leaves the board untouched. Otherwise it performs a
// one-shot flood fill, where blank cells flow the reveal to all their
// neighbours, and returns the cells newly made visible. Re-opening an already
// visible region yields an empty result.
func (g *Game) Open(pos board.Vec) (opened []board.Vec, ok bool) {
	if g.setup.FieldAt(pos).IsMine() {
		return nil, false
	}

	explorer := board.ExplorerFor(g.view)
	explorer.Enqueue(pos)

	for {
		pos, more := explorer.Pop()
		if !more {
			break
		}
		if g.IsVisible(pos) {
			continue
		}
		g.view.Set(pos, true)
		g.hiddenFields--
		opened = append(opened, pos)

		if g.setup.FieldAt(pos).IsBlank() {
			explorer.EnqueueAll(pos.Neighbours())
		}
	}

	return opened, true
}

// Clone returns an independent copy of the game. The immutable Setup is
// shared; the visibility mask is not.
func (g *Game) Clone() *Game {
	return &Game{
		setup:        g.setup,
		view:         g.view.Clone(),
		hiddenFields: g.hiddenFields,
	}
}

func (g *Game) String() string {
	var out strings.Builder
	for pos, visible := range g.view.All() {
		if visible {
			out.WriteString(g.setup.FieldAt(pos).String())
		} else {
			out.WriteByte('#')
		}
		if pos.X == g.Width()-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
