package reveal

import (
	"github.com/katalvlaran/knapviz/knapsack"
)

// Cell classification.
//
// Scan order for revealing is row-major over data rows only: cell (i,c)
// with row i in 1..n and column c in 0..capacity has linear index
// (i-1)·(capacity+1) + c. Row 0 never takes part in the walk.
//
// Precedence (exactly one class per cell):
//  1. Hidden  — the walk has not reached the cell.
//  2. Active  — the single most recently revealed cell while Stepping.
//  3. OnPath  — the cell sits on the supplied backtrack path.
//  4. Took    — the item strictly improved the optimum at this cell.
//  5. Normal  — visible, item skipped.
//
// All of this is a pure projection of State: recomputed per read, safe to
// call arbitrarily often, nothing cached.

// Cell classifies cell (i,c) with no backtrack overlay. Row 0 cells are
// always Base with value 0; while NotStarted every cell reads as Hidden.
// Coordinates outside the table are programmer error and panic.
func (s State) Cell(i, c int) CellView {
	return s.CellOnPath(i, c, nil)
}

// CellOnPath classifies cell (i,c) honoring the backtrack overlay path.
// A nil path disables the overlay, making this identical to Cell.
func (s State) CellOnPath(i, c int, path PathSet) CellView {
	if s.phase == NotStarted {
		return CellView{Class: Hidden}
	}
	if i == 0 {
		return CellView{Value: 0, Visible: true, Class: Base}
	}

	linear := (i-1)*s.table.Cols() + c
	view := CellView{Value: s.table[i][c]}

	switch s.phase {
	case Revealed:
		view.Visible = true
	case Stepping:
		view.Visible = linear < s.count
		if view.Visible && linear == s.count-1 {
			view.Class = Active

			return view
		}
	}
	if !view.Visible {
		view.Value = 0

		return view
	}

	if _, ok := path[knapsack.Coord{Row: i, Col: c}]; ok {
		view.Class = OnPath
	} else if s.table.Took(s.problem, i, c) {
		view.Class = Took
	} else {
		view.Class = Normal
	}

	return view
}

// Grid materializes the whole table as CellViews, one row per table row,
// honoring the backtrack overlay when path is non-nil. Convenience for
// renderers; returns nil while NotStarted.
func (s State) Grid(path PathSet) [][]CellView {
	if s.phase == NotStarted {
		return nil
	}

	rows := make([][]CellView, s.table.Rows())
	for i := range rows {
		rows[i] = make([]CellView, s.table.Cols())
		for c := range rows[i] {
			rows[i][c] = s.CellOnPath(i, c, path)
		}
	}

	return rows
}

// Path backtracks the optimal-solution cells of the current table. It is
// never invoked implicitly by classification — callers opt in by passing
// the result to CellOnPath or Grid. Nil while NotStarted.
func (s State) Path() PathSet {
	if s.phase == NotStarted {
		return nil
	}

	return NewPathSet(s.table.Backtrack(s.problem))
}
