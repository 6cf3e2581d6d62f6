// Package knapsack defines core types, sentinel errors, and the input
// contract for the 0/1 knapsack DP engine of github.com/katalvlaran/knapviz.
package knapsack

import (
	"errors"
)

// Sentinel errors for raw-input parsing. All of them surface before any
// table is computed; the solver itself is total over validated input.
var (
	// ErrInvalidCapacity indicates the capacity field is not a positive integer.
	ErrInvalidCapacity = errors.New("knapsack: capacity must be a positive integer")
	// ErrWeightToken indicates a weights-list token that is not a non-negative integer.
	ErrWeightToken = errors.New("knapsack: invalid weight token")
	// ErrBenefitToken indicates a benefits-list token that is not a non-negative integer.
	ErrBenefitToken = errors.New("knapsack: invalid benefit token")
	// ErrEmptyWeights indicates the weights list contains no items.
	ErrEmptyWeights = errors.New("knapsack: at least one weight is required")
	// ErrLengthMismatch indicates weights and benefits lists differ in length.
	ErrLengthMismatch = errors.New("knapsack: weights and benefits must have equal length")
)

// Item is a single 0/1 knapsack item: either taken whole or left out.
// Weight and Benefit are non-negative; both are fixed once the Item is
// part of a Problem.
type Item struct {
	Weight  int // cost against the capacity budget
	Benefit int // value gained when the item is taken
}

// Problem is a validated 0/1 knapsack instance. Capacity is positive and
// Items keeps the user-given order. A Problem is never mutated in place;
// a fresh solve replaces it wholesale.
type Problem struct {
	Capacity int
	Items    []Item
}

// N returns the number of items in the instance.
func (p Problem) N() int { return len(p.Items) }

// Coord addresses one table cell: Row in 0..n (row 0 is the zero-items
// baseline), Col in 0..capacity.
type Coord struct {
	Row, Col int
}

// Table is the dense DP grid produced by Solve: (n+1) rows × (capacity+1)
// columns where Table[i][w] is the best benefit using only the first i
// items under budget w. Row 0 is all zeros and values never decrease down
// a column. A Table is immutable once returned; recomputation replaces it.
type Table [][]int

// Rows returns n+1, the item dimension of the table.
func (t Table) Rows() int { return len(t) }

// Cols returns capacity+1, the budget dimension of the table.
func (t Table) Cols() int {
	if len(t) == 0 {
		return 0
	}

	return len(t[0])
}

// Best returns the optimum of the full instance, Table[n][capacity].
// It panics on an empty table (programmer error: Solve never returns one).
func (t Table) Best() int {
	return t[t.Rows()-1][t.Cols()-1]
}

// Took reports whether the optimal decision at data cell (i,c), for the
// instance p that produced t, strictly includes item i (1-based row).
// Ties between taking and skipping count as a skip: "took" means the item
// strictly improved the optimum at that cell.
func (t Table) Took(p Problem, i, c int) bool {
	if i < 1 || i >= t.Rows() || c < 0 || c >= t.Cols() {
		return false
	}
	it := p.Items[i-1]
	if it.Weight > c {
		return false
	}

	return t[i][c] == t[i-1][c-it.Weight]+it.Benefit && t[i][c] > t[i-1][c]
}
