package reveal_test

import (
	"testing"

	"github.com/katalvlaran/knapviz/knapsack"
	"github.com/katalvlaran/knapviz/reveal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// demoProblem is the classroom instance: capacity 6, items (2,3) (3,4)
// (4,5), optimum 8, 21 data cells.
func demoProblem() knapsack.Problem {
	return knapsack.Problem{
		Capacity: 6,
		Items: []knapsack.Item{
			{Weight: 2, Benefit: 3},
			{Weight: 3, Benefit: 4},
			{Weight: 4, Benefit: 5},
		},
	}
}

// TestStart verifies the initial state: NotStarted, nothing computed,
// nothing revealed.
func TestStart(t *testing.T) {
	s := reveal.Start()

	assert.Equal(t, reveal.NotStarted, s.Phase())
	assert.Nil(t, s.Table())
	assert.Zero(t, s.TotalCells())
	assert.Zero(t, s.RevealCount())
}

// TestSolve_RevealsEverything verifies Solve computes the table and lands
// in Revealed no matter the prior phase.
func TestSolve_RevealsEverything(t *testing.T) {
	p := demoProblem()

	from := map[string]reveal.State{
		"NotStarted": reveal.Start(),
		"Stepping":   reveal.Start().Step(p).Step(p),
		"Revealed":   reveal.Start().Solve(p),
	}
	for name, s := range from {
		got := s.Solve(p)
		assert.Equal(t, reveal.Revealed, got.Phase(), "Solve from %s must fully reveal", name)
		assert.Equal(t, 21, got.RevealCount(), "Solve from %s must count all cells", name)
		require.NotNil(t, got.Table(), "Solve from %s must compute a table", name)
		assert.Equal(t, 8, got.Table().Best())
	}
}

// TestStep_FirstComputesTable verifies Step from NotStarted computes the
// table and reveals exactly the first scanned cell.
func TestStep_FirstComputesTable(t *testing.T) {
	s := reveal.Start().Step(demoProblem())

	require.Equal(t, reveal.Stepping, s.Phase())
	assert.Equal(t, 1, s.RevealCount())
	assert.Equal(t, 21, s.TotalCells(), "3 items × 7 budgets")
	require.NotNil(t, s.Table())
}

// TestStep_Monotone verifies repeated Steps advance the reveal count by
// exactly one per call on an unchanged table, complete after the last
// cell, and wrap back to a single visible cell.
func TestStep_Monotone(t *testing.T) {
	p := demoProblem()
	s := reveal.Start().Step(p)
	table := s.Table()

	for want := 2; want <= 21; want++ {
		s = s.Step(p)
		require.Equal(t, reveal.Stepping, s.Phase(), "still stepping at %d", want)
		require.Equal(t, want, s.RevealCount())
	}

	s = s.Step(p)
	assert.Equal(t, reveal.Revealed, s.Phase(), "stepping past the last cell completes the walk")
	assert.Equal(t, 21, s.RevealCount())

	s = s.Step(p)
	assert.Equal(t, reveal.Stepping, s.Phase(), "one more Step restarts the walk")
	assert.Equal(t, 1, s.RevealCount())
	assert.Equal(t, table, s.Table(), "the restarted walk reuses the same table")
}

// TestStep_NeverRecomputes verifies mid-walk Steps keep the original
// instance even when handed a different one: only the counter moves.
func TestStep_NeverRecomputes(t *testing.T) {
	p := demoProblem()
	other := knapsack.Problem{Capacity: 2, Items: []knapsack.Item{{Weight: 1, Benefit: 9}}}

	s := reveal.Start().Step(p)
	s = s.Step(other)

	assert.Equal(t, p, s.Problem(), "mid-walk Step must not swap the instance")
	assert.Equal(t, 21, s.TotalCells())
	assert.Equal(t, 2, s.RevealCount())
}

// TestRestart verifies the explicit Restart alias from Revealed.
func TestRestart(t *testing.T) {
	s := reveal.Start().Solve(demoProblem()).Restart()

	assert.Equal(t, reveal.Stepping, s.Phase())
	assert.Equal(t, 1, s.RevealCount())
}

// TestTransitions_AreValueSemantics verifies the prior State is never
// mutated by a transition.
func TestTransitions_AreValueSemantics(t *testing.T) {
	p := demoProblem()
	before := reveal.Start().Step(p)

	_ = before.Step(p)
	_ = before.Solve(p)

	assert.Equal(t, 1, before.RevealCount(), "transitions must not mutate the receiver")
	assert.Equal(t, reveal.Stepping, before.Phase())
}
