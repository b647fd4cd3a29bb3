package game

import "github.com/askeland/minesolve/board"

// Director plays a Game automatically, one step at a time.
type Director interface {
	/**
	 * Initialize the director for a game
	 */
	Init(*Game)

	/**
	 * Return the positions to open next; an empty result means the
	 * director is out of moves
	 */
	Act() []board.Vec

	/**
	 * Stop acting
	 */
	End()
}

// CellObserver is implemented by directors that want to learn which cells a
// step actually revealed, flood fill included.
type CellObserver interface {
	CellsOpened([]board.Vec)
}
