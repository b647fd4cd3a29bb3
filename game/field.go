package game

import "strconv"

// Field is one cell of a finished board: either a mine, or the count of
// mines among its up-to-8 neighbours. Counts are fixed at setup time.
type Field int8

// FieldMine marks a mined cell. Every other Field value is an adjacent-mine
// count in [0, 8].
const FieldMine Field = -1

func (f Field) IsMine() bool {
	return f == FieldMine
}

// IsBlank reports whether the cell is empty with no adjacent mines; revealing
// a blank cell cascades to its neighbours.
func (f Field) IsBlank() bool {
	return f == 0
}

// AdjacentMines returns the neighbouring-mine count and panics for mines.
func (f Field) AdjacentMines() int {
	if f.IsMine() {
		panic("game: a mine has no adjacent-mine count")
	}
	return int(f)
}

func (f Field) String() string {
	switch {
	case f.IsMine():
		return "*"
	case f.IsBlank():
		return " "
	default:
		return strconv.Itoa(int(f))
	}
}
