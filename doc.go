// Package knapviz is a teaching toolkit for the 0/1 knapsack
// dynamic-programming recurrence: compute the full DP table, then replay
// it cell by cell with per-cell classification and a backtracked
// solution path.
//
// 🚀 What is knapviz?
//
//	A small, deterministic library plus a terminal front end:
//		• DP engine: the classic bottom-up (n+1)×(m+1) table, kept whole
//		• Reveal sessions: immutable step/solve state machine over the table
//		• Cell classification: hidden, active, took, on-path, skipped
//		• Backtrack walk: which items the optimum actually selected
//		• knapviz: an interactive TUI that draws all of the above
//
// ✨ Why choose knapviz?
//
//   - Pure core – solver and session transitions are side-effect-free values
//   - Replayable – compute once, step arbitrarily often, restart for free
//   - Explainable – every cell knows whether its item paid off
//
// Everything is organized under two subpackages and one command:
//
//	knapsack/   — Problem/Table types, Solve, Backtrack, input parsing
//	reveal/     — walkthrough State, classification, progress reporting
//	cmd/knapviz — bubbletea terminal UI over both
//
// Quick ASCII example, capacity 6, items (w,b) = (2,3) (3,4) (4,5):
//
//	item \ w   0  1  2  3  4  5  6
//	— base     0  0  0  0  0  0  0
//	1 w=2 b=3  0  0  3  3  3  3  3
//	2 w=3 b=4  0  0  3  4  4  7  7
//	3 w=4 b=5  0  0  3  4  5  7  8   ← optimum 8, items 1 and 3
//
//	go get github.com/katalvlaran/knapviz
package knapviz
