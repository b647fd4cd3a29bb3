package game

import (
	"fmt"
	"iter"
	"math/rand"
	"slices"
	"strings"

	"github.com/askeland/minesolve/board"
)

// Setup is a finished mine layout: every cell is either a mine or carries its
// adjacent-mine count. A Setup never changes after construction.
type Setup struct {
	board *board.Board[Field]
	mines int
}

// NewSetup derives a Setup from a boolean mine layout.
func NewSetup(mines *board.Board[bool]) *Setup {
	fields := board.New[Field](mines.Width(), mines.Height())
	count := 0

	for pos, isMine := range mines.All() {
		if !isMine {
			continue
		}
		count++
		fields.Set(pos, FieldMine)
		for neighbour := range pos.Neighbours() {
			if field, ok := fields.Get(neighbour); ok && !field.IsMine() {
				fields.Set(neighbour, field+1)
			}
		}
	}

	return &Setup{board: fields, mines: count}
}

func (s *Setup) Width() int {
	return s.board.Width()
}

func (s *Setup) Height() int {
	return s.board.Height()
}

// Mines returns the total number of mines on the board.
func (s *Setup) Mines() int {
	return s.mines
}

// FieldAt returns the cell at pos and panics if pos is out of range.
func (s *Setup) FieldAt(pos board.Vec) Field {
	return s.board.At(pos)
}

// Field returns the cell at pos, or ok == false outside the board.
func (s *Setup) Field(pos board.Vec) (Field, bool) {
	return s.board.Get(pos)
}

// Positions yields every position of the board, row by row.
func (s *Setup) Positions() iter.Seq[board.Vec] {
	return s.board.Positions()
}

func (s *Setup) String() string {
	var out strings.Builder
	for pos, field := range s.board.All() {
		out.WriteString(field.String())
		if pos.X == s.Width()-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// SetupBuilder assembles a mine layout honoring a set of protected cells
// that must stay mine-free, typically the neighbourhood of the first click.
type SetupBuilder struct {
	mines     *board.Board[bool]
	protected *board.Board[bool]
	rand      *rand.Rand
}

// NewSetupBuilder creates a builder for a width×height board whose random
// placement is driven by seed.
func NewSetupBuilder(width, height int, seed int64) *SetupBuilder {
	return &SetupBuilder{
		mines:     board.New[bool](width, height),
		protected: board.New[bool](width, height),
		rand:      rand.New(rand.NewSource(seed)),
	}
}

func (b *SetupBuilder) HasMine(pos board.Vec) bool {
	mine, _ := b.mines.Get(pos)
	return mine
}

func (b *SetupBuilder) IsProtected(pos board.Vec) bool {
	protected, _ := b.protected.Get(pos)
	return protected
}

// SetMine places a mine at pos; placing one on a protected cell is a caller
// bug and panics.
func (b *SetupBuilder) SetMine(pos board.Vec) {
	if b.IsProtected(pos) {
		panic(fmt.Sprintf("game: cannot place a mine on protected cell %v", pos))
	}
	b.mines.Set(pos, true)
}

// Protect marks pos as mine-free, removing any mine already placed there.
// Positions outside the board are ignored.
func (b *SetupBuilder) Protect(pos board.Vec) {
	if _, ok := b.mines.Get(pos); ok {
		b.mines.Set(pos, false)
		b.protected.Set(pos, true)
	}
}

// ProtectAll protects every position of the sequence.
func (b *SetupBuilder) ProtectAll(all iter.Seq[board.Vec]) {
	for pos := range all {
		b.Protect(pos)
	}
}

// AddRandomMines places n mines on distinct unprotected, unmined cells,
// chosen without replacement. It reports whether all n fit.
func (b *SetupBuilder) AddRandomMines(n int) bool {
	positions := slices.Collect(b.mines.Positions())
	b.rand.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	for _, pos := range positions {
		if n == 0 {
			break
		}
		if b.IsProtected(pos) || b.HasMine(pos) {
			continue
		}
		b.SetMine(pos)
		n--
	}

	return n == 0
}

// Build derives the Setup for the current mine layout.
func (b *SetupBuilder) Build() *Setup {
	return NewSetup(b.mines)
}
