// Package knapsack solves the 0/1 knapsack problem bottom-up and exposes
// the full DP table, so callers can inspect, replay, and explain every
// sub-decision — not just the final optimum.
//
// 🚀 What is 0/1 knapsack?
//
//	Given items with weights and benefits and a capacity budget, pick a
//	subset (each item taken whole or not at all) maximizing total benefit.
//	The DP table answers every sub-problem along the way:
//	  table[i][w] = best benefit using only the first i items under budget w.
//
// ✨ Key features:
//   - full-table mode: every sub-result retained for walkthroughs
//   - strict "took" test: an item counts as taken only when it strictly
//     improves on skipping it (ties are skips)
//   - backtrack walk: recover the chosen items from the finished table
//   - form-input parsing with sentinel errors for each failure mode
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/knapviz/knapsack"
//
//	p, err := knapsack.ParseProblem("6", "2, 3, 4", "3, 4, 5")
//	if err != nil {
//	  // handle ErrInvalidCapacity, ErrWeightToken, ...
//	}
//	t := knapsack.Solve(p)
//	fmt.Println("optimum:", t.Best())       // 8
//	fmt.Println("items:", t.Chosen(p))      // [1 3]
//
// Performance:
//
//   - Time:   O(n·m)
//   - Memory: O(n·m)
//
// The step-by-step reveal of a computed table lives in the sibling
// package reveal; this package is the pure computational core.
package knapsack
