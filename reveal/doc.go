// Package reveal drives step-by-step walkthroughs of a computed knapsack
// DP table: which cells may be shown, which cell is the current step, and
// how each visible cell should be classified for rendering.
//
// 🚀 How does a walkthrough work?
//
//	The table is computed once (see package knapsack) and then disclosed
//	progressively in row-major scan order over the data rows. Row 0 — the
//	zero-items baseline — is always visible. Each Step shows one more
//	cell; Solve shows everything at once; stepping past the last cell
//	completes the walk, and one more Step restarts it over the same table.
//
// ✨ Key features:
//   - immutable State snapshots: every transition returns a new value,
//     so no reader ever observes a half-updated session
//   - compute/reveal split: Step never re-runs the O(n·m) solver
//   - per-cell classification with fixed precedence
//     (Hidden > Active > OnPath > Took > Normal; Base for row 0)
//   - opt-in backtrack overlay marking the optimal-solution path
//   - progress triple (done, total, label) for progress bars
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/knapviz/knapsack"
//	  "github.com/katalvlaran/knapviz/reveal"
//	)
//
//	p, _ := knapsack.ParseProblem("6", "2, 3, 4", "3, 4, 5")
//	s := reveal.Start().Step(p)     // table computed, first cell visible
//	s = s.Step(p)                   // one more cell
//	view := s.Cell(1, 0)            // {Value:0 Visible:true Class:Normal}
//	fmt.Println(s.Progress().Label) // "2 / 21 cells"
//
// Everything derived (classification, progress) is a cheap pure function
// of State — recompute on every read, no caching, no invalidation.
package reveal
