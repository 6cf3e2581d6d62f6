// Package reveal defines the phases, cell classes, and immutable session
// state for step-by-step walkthroughs of a knapsack DP table.
package reveal

import (
	"github.com/katalvlaran/knapviz/knapsack"
)

// Phase is the coarse walkthrough position.
//
//   - NotStarted — no table computed yet; nothing to show.
//   - Stepping   — a table exists and the first count data cells are
//     visible in row-major scan order.
//   - Revealed   — the whole table is visible.
//
// Phase only governs visibility: it never alters table contents.
type Phase int

const (
	// NotStarted is the initial phase: no instance, no table.
	NotStarted Phase = iota
	// Stepping exposes a prefix of the data cells, one more per Step.
	Stepping
	// Revealed exposes every cell; Step re-enters Stepping on the same table.
	Revealed
)

// String returns the phase name for logs and test diagnostics.
func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "NotStarted"
	case Stepping:
		return "Stepping"
	case Revealed:
		return "Revealed"
	default:
		return "Unknown"
	}
}

// Class is the render classification of one table cell. Exactly one class
// applies per cell; precedence (strongest first) is
// Hidden > Active > OnPath > Took > Normal, with Base reserved for the
// always-visible zero-items row.
type Class int

const (
	// Hidden marks a data cell not yet reached by the reveal walk.
	Hidden Class = iota
	// Base marks a row-0 cell: the zero-items baseline, always visible, value 0.
	Base
	// Active marks the single most recently revealed cell while Stepping.
	Active
	// OnPath marks a cell on the backtracked optimal-solution path.
	OnPath
	// Took marks a visible cell whose item strictly improved the optimum.
	Took
	// Normal marks any other visible data cell (the item was skipped).
	Normal
)

// String returns the class name for logs and test diagnostics.
func (c Class) String() string {
	switch c {
	case Hidden:
		return "Hidden"
	case Base:
		return "Base"
	case Active:
		return "Active"
	case OnPath:
		return "OnPath"
	case Took:
		return "Took"
	case Normal:
		return "Normal"
	default:
		return "Unknown"
	}
}

// CellView is the derived render state of one cell: its numeric value,
// whether it may be drawn, and its Class. Views are recomputed on demand
// and never cached.
type CellView struct {
	Value   int
	Visible bool
	Class   Class
}

// PathSet is a membership set of backtrack-path cells, as produced by
// NewPathSet from Table.Backtrack output.
type PathSet map[knapsack.Coord]struct{}

// NewPathSet builds a PathSet from backtrack path cells.
func NewPathSet(cells []knapsack.Coord) PathSet {
	set := make(PathSet, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}

	return set
}

// State is one immutable snapshot of a walkthrough session: the instance,
// its table, and the reveal position. Transitions (Step, Solve) return a
// new State and never mutate the receiver, so a State can be shared
// read-only by classifiers, progress reporting, and renderers.
type State struct {
	problem knapsack.Problem
	table   knapsack.Table
	phase   Phase
	count   int // revealed data cells while Stepping, in [1, TotalCells]
}

// Start returns the initial session state: NotStarted, no table.
func Start() State {
	return State{phase: NotStarted}
}

// Phase returns the current walkthrough phase.
func (s State) Phase() Phase { return s.phase }

// Problem returns the instance behind the current table. Zero value
// while NotStarted.
func (s State) Problem() knapsack.Problem { return s.problem }

// Table returns the current DP table, nil while NotStarted. The table is
// shared read-only; callers must not modify it.
func (s State) Table() knapsack.Table { return s.table }

// TotalCells returns the number of data cells subject to revealing:
// n_items × (capacity+1). Row 0 is always visible and excluded. Zero
// while NotStarted.
func (s State) TotalCells() int {
	if s.phase == NotStarted {
		return 0
	}

	return s.problem.N() * (s.problem.Capacity + 1)
}

// RevealCount returns how many data cells are visible: 0 while
// NotStarted, the step counter while Stepping, TotalCells once Revealed.
func (s State) RevealCount() int {
	switch s.phase {
	case Stepping:
		return s.count
	case Revealed:
		return s.TotalCells()
	default:
		return 0
	}
}
