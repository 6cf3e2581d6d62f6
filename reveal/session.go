package reveal

import (
	"github.com/katalvlaran/knapviz/knapsack"
)

// Session transitions.
//
// Computing and revealing are deliberately separate: Solve/first-Step pay
// the O(n·m) table fill once, after which every further Step is a pure
// counter transition with no recomputation. Solve is idempotent and wins
// over any in-progress stepping.
//
// Both transitions expect an already-validated Problem (see
// knapsack.ParseProblem); validation failures must keep the previous
// State untouched, which the value semantics here give for free.

// Solve computes the table for p and reveals it fully, regardless of the
// prior phase. Any existing table and instance are replaced wholesale.
func (s State) Solve(p knapsack.Problem) State {
	return State{
		problem: p,
		table:   knapsack.Solve(p),
		phase:   Revealed,
	}
}

// Step advances the walkthrough by one cell:
//
//   - From NotStarted: compute the table for p and reveal exactly the
//     first scanned cell.
//   - From Stepping: reveal one more cell; past the last cell the phase
//     becomes Revealed. The table is never recomputed and p is ignored.
//   - From Revealed: restart the walk at one visible cell over the same
//     table; instance and table are untouched and p is ignored.
func (s State) Step(p knapsack.Problem) State {
	switch s.phase {
	case NotStarted:
		return State{
			problem: p,
			table:   knapsack.Solve(p),
			phase:   Stepping,
			count:   1,
		}
	case Stepping:
		next := s.count + 1
		if next > s.TotalCells() {
			s.phase = Revealed
			s.count = 0

			return s
		}
		s.count = next

		return s
	default: // Revealed
		s.phase = Stepping
		s.count = 1

		return s
	}
}

// Restart is an explicit alias for Step from Revealed: begin the cell
// walk again over the existing table. From any other phase it is a plain
// Step.
func (s State) Restart() State {
	return s.Step(s.problem)
}
