package knapsack

// Backtrack recovers the decision path behind Table.Best for the instance
// p that produced t.
//
// Starting at (n, capacity) it walks one row up per step: when Took holds
// the cell is marked on-path and the remaining budget shrinks by the
// item's weight; otherwise the value was inherited from the row above and
// the walk moves straight up unmarked. The walk stops at row 0. This is a
// plain backward loop — the path has no branches or cycles.
//
// The returned cells are ordered top-down (lowest row first) so callers
// can read chosen items in input order. An instance with no strictly
// improving cell on the walk yields an empty path.
//
// Complexity: O(n) time, O(n) memory.
func (t Table) Backtrack(p Problem) []Coord {
	path := make([]Coord, 0, p.N())

	c := p.Capacity
	for i := p.N(); i > 0; i-- {
		if t.Took(p, i, c) {
			path = append(path, Coord{Row: i, Col: c})
			c -= p.Items[i-1].Weight
		}
	}

	// walked bottom-up; present top-down
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// Chosen returns the 1-based indices of the items selected by the optimal
// solution, in input order. It is a convenience over Backtrack.
func (t Table) Chosen(p Problem) []int {
	path := t.Backtrack(p)
	items := make([]int, len(path))
	for k, cell := range path {
		items[k] = cell.Row
	}

	return items
}
