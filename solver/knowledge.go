package solver

// Conclusion is what a single explored cell's constraint proves about its
// still-unknown neighbours.
type Conclusion int

const (
	Unconclusive Conclusion = iota
	NeighboursAreMines
	NeighboursAreNotMines
)

// ExploredKnowledge is the adjacency constraint tracked for an explored cell.
// Mines is the cell's true adjacent-mine count, fixed at explore time.
// MinesLeft counts the mines among its neighbours not yet identified, and
// Unknowns the neighbours still unaccounted for. Every consistent state
// satisfies MinesLeft <= Mines, MinesLeft <= Unknowns and Unknowns <= 8;
// an assignment that would invert MinesLeft <= Unknowns is a contradiction.
type ExploredKnowledge struct {
	Mines     int
	MinesLeft int
	Unknowns  int
}

// Conclusion derives what the constraint currently proves. With no unknown
// neighbours left there is nothing to conclude; otherwise every remaining
// candidate is a mine when the counts coincide, and none is when no mines
// are owed.
func (e ExploredKnowledge) Conclusion() Conclusion {
	if e.Unknowns == 0 {
		return Unconclusive
	}
	switch {
	case e.Unknowns == e.MinesLeft:
		return NeighboursAreMines
	case e.MinesLeft == 0:
		return NeighboursAreNotMines
	default:
		return Unconclusive
	}
}

// Knowledge tags the variants of FieldKnowledge.
type Knowledge int

const (
	Unknown Knowledge = iota
	Mine
	NoMine
	Explored
)

func (k Knowledge) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case Mine:
		return "Mine"
	case NoMine:
		return "NoMine"
	case Explored:
		return "Explored"
	default:
		return "Invalid"
	}
}

// FieldKnowledge is the solver's belief about a single cell: a tagged union
// of Unknown, Mine, NoMine and Explored. The Explored payload is meaningful
// only for the Explored variant and zero otherwise, which keeps the whole
// struct comparable. The zero value is Unknown.
type FieldKnowledge struct {
	Kind     Knowledge
	Explored ExploredKnowledge
}

// ExploredField wraps a constraint in its Explored belief.
func ExploredField(e ExploredKnowledge) FieldKnowledge {
	return FieldKnowledge{Kind: Explored, Explored: e}
}
