package board

import (
	"fmt"
	"iter"
)

// Vec is a 2D offset into a board. Arithmetic is componentwise; no bounds
// checking happens at this layer, boards decide what is inside.
type Vec struct {
	X, Y int
}

var (
	North     = Vec{0, -1}
	NorthEast = Vec{1, -1}
	East      = Vec{1, 0}
	SouthEast = Vec{1, 1}
	South     = Vec{0, 1}
	SouthWest = Vec{-1, 1}
	West      = Vec{-1, 0}
	NorthWest = Vec{-1, -1}
	Center    = Vec{0, 0}
)

// Directions holds the offsets of the 8-neighborhood.
var Directions = [8]Vec{NorthWest, North, NorthEast, West, East, SouthWest, South, SouthEast}

// CenterAndDirections additionally includes the zero offset.
var CenterAndDirections = [9]Vec{NorthWest, North, NorthEast, West, Center, East, SouthWest, South, SouthEast}

func V(x, y int) Vec {
	return Vec{x, y}
}

func (v Vec) Add(other Vec) Vec {
	return Vec{v.X + other.X, v.Y + other.Y}
}

func (v Vec) Sub(other Vec) Vec {
	return Vec{v.X - other.X, v.Y - other.Y}
}

func (v Vec) Neg() Vec {
	return Vec{-v.X, -v.Y}
}

// Neighbours yields the 8 positions around v, including any that lie outside
// a particular board.
func (v Vec) Neighbours() iter.Seq[Vec] {
	return func(yield func(Vec) bool) {
		for _, dir := range Directions {
			if !yield(v.Add(dir)) {
				return
			}
		}
	}
}

// WithNeighbours yields v itself followed by its 8 neighbours.
func (v Vec) WithNeighbours() iter.Seq[Vec] {
	return func(yield func(Vec) bool) {
		for _, dir := range CenterAndDirections {
			if !yield(v.Add(dir)) {
				return
			}
		}
	}
}

func (v Vec) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
