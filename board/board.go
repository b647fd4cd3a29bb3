package board

import (
	"fmt"
	"iter"
	"slices"
)

// Board is a dense rectangular grid addressed by Vec. Cells are stored
// row-major, y before x, and owned exclusively by the board.
type Board[T any] struct {
	width, height int
	fields        []T
}

// New creates a width×height board with every cell set to the zero value.
func New[T any](width, height int) *Board[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("board: invalid dimensions %dx%d", width, height))
	}
	return &Board[T]{
		width:  width,
		height: height,
		fields: make([]T, width*height),
	}
}

func (b *Board[T]) Width() int {
	return b.width
}

func (b *Board[T]) Height() int {
	return b.height
}

func (b *Board[T]) index(pos Vec) (int, bool) {
	if pos.X < 0 || pos.Y < 0 || pos.X >= b.width || pos.Y >= b.height {
		return 0, false
	}
	return pos.Y*b.width + pos.X, true
}

// Get returns the cell at pos, or ok == false if pos lies outside the board.
func (b *Board[T]) Get(pos Vec) (T, bool) {
	i, ok := b.index(pos)
	if !ok {
		var zero T
		return zero, false
	}
	return b.fields[i], true
}

// At returns the cell at pos and panics if pos is out of range.
func (b *Board[T]) At(pos Vec) T {
	i, ok := b.index(pos)
	if !ok {
		panic(fmt.Sprintf("board: cannot access %v on a %dx%d board", pos, b.width, b.height))
	}
	return b.fields[i]
}

// Set overwrites the cell at pos and panics if pos is out of range.
func (b *Board[T]) Set(pos Vec, value T) {
	i, ok := b.index(pos)
	if !ok {
		panic(fmt.Sprintf("board: cannot access %v on a %dx%d board", pos, b.width, b.height))
	}
	b.fields[i] = value
}

// Positions yields every position on the board, row by row.
func (b *Board[T]) Positions() iter.Seq[Vec] {
	return func(yield func(Vec) bool) {
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; x++ {
				if !yield(Vec{x, y}) {
					return
				}
			}
		}
	}
}

// All yields every position together with its cell value, row by row.
func (b *Board[T]) All() iter.Seq2[Vec, T] {
	return func(yield func(Vec, T) bool) {
		for i, value := range b.fields {
			if !yield(Vec{i % b.width, i / b.width}, value) {
				return
			}
		}
	}
}

// Clone returns a deep copy sharing no storage with b.
func (b *Board[T]) Clone() *Board[T] {
	return &Board[T]{
		width:  b.width,
		height: b.height,
		fields: slices.Clone(b.fields),
	}
}

// Equal reports whether two boards have identical dimensions and cells.
func Equal[T comparable](a, b *Board[T]) bool {
	return a.width == b.width && a.height == b.height && slices.Equal(a.fields, b.fields)
}
