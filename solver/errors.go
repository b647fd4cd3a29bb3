package solver

import (
	"fmt"

	"github.com/askeland/minesolve/board"
)

// Contradiction reports that a deduction made a constraint unsatisfiable.
// It names the position whose assignment triggered the inconsistency, so
// hypothesis testing can attribute the failure to a single cell.
//
// During hypothesis testing a Contradiction is an expected, informative
// outcome. Arising from real game data it means the solver's model and the
// board disagree, which the caller should treat as fatal.
type Contradiction struct {
	Pos board.Vec
}

func (c *Contradiction) Error() string {
	return fmt.Sprintf("solver: contradiction at %v", c.Pos)
}
