package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/knapviz/knapsack"
)

// printSolved writes the fully solved table to w without any TUI: budget
// header, baseline row, one row per item, then the optimum and the
// backtracked choice. Useful for piping and for terminals without raw
// mode.
func printSolved(w io.Writer, p knapsack.Problem) {
	t := knapsack.Solve(p)

	fmt.Fprintf(w, "%-14s", "item \\ w")
	for c := 0; c <= p.Capacity; c++ {
		fmt.Fprintf(w, "%4d", c)
	}
	fmt.Fprintln(w)

	for i, row := range t {
		if i == 0 {
			fmt.Fprintf(w, "%-14s", "- base")
		} else {
			it := p.Items[i-1]
			fmt.Fprintf(w, "%-14s", fmt.Sprintf("%d w=%d b=%d", i, it.Weight, it.Benefit))
		}
		for _, v := range row {
			fmt.Fprintf(w, "%4d", v)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\noptimum: %d\n", t.Best())
	fmt.Fprintf(w, "chosen items: %v\n", t.Chosen(p))
}
