package knapsack

// Solve — 0/1 knapsack over a dense DP table.
//
// Description:
//
//	Solve fills the classic bottom-up table for the 0/1 knapsack problem:
//	each item is either taken whole or skipped, maximizing total benefit
//	under a weight budget.
//
// Algorithm Outline:
//  1. Let n = len(p.Items), m = p.Capacity. Allocate an (n+1)×(m+1) table.
//  2. Row 0 stays all zeros: with zero items no benefit is achievable.
//  3. For i = 1..n, w = 0..m:
//     table[i][w] = table[i-1][w]                               if weight[i] > w
//     table[i][w] = max(table[i-1][w],
//     table[i-1][w-weight[i]] + benefit[i])    otherwise
//  4. table[n][m] is the optimum for the full instance.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)
//
// Solve is pure and total over validated Problems: identical inputs yield
// identical tables, there is no hidden state, and it never fails. n = 0
// yields the single all-zero baseline row.
func Solve(p Problem) Table {
	n, m := p.N(), p.Capacity

	t := make(Table, n+1)
	for i := range t {
		t[i] = make([]int, m+1)
	}

	for i := 1; i <= n; i++ {
		w, b := p.Items[i-1].Weight, p.Items[i-1].Benefit
		for c := 0; c <= m; c++ {
			if w > c {
				t[i][c] = t[i-1][c]
				continue
			}
			skip := t[i-1][c]
			take := t[i-1][c-w] + b
			if take > skip {
				t[i][c] = take
			} else {
				t[i][c] = skip
			}
		}
	}

	return t
}
