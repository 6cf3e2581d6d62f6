package reveal_test

import (
	"testing"

	"github.com/katalvlaran/knapviz/reveal"
	"github.com/stretchr/testify/assert"
)

// TestProgress_NotStarted verifies the empty triple before any compute.
func TestProgress_NotStarted(t *testing.T) {
	got := reveal.Start().Progress()

	assert.Zero(t, got.Done)
	assert.Zero(t, got.Total)
	assert.Zero(t, got.Percent)
	assert.Empty(t, got.Label, "nothing to report with no table")
}

// TestProgress_Stepping verifies the count label and floored percentage
// mid-walk.
func TestProgress_Stepping(t *testing.T) {
	p := demoProblem() // 21 data cells

	s := reveal.Start().Step(p)
	got := s.Progress()
	assert.Equal(t, 1, got.Done)
	assert.Equal(t, 21, got.Total)
	assert.Equal(t, 4, got.Percent, "floor(100/21)")
	assert.Equal(t, "1 / 21 cells", got.Label)

	for i := 0; i < 9; i++ {
		s = s.Step(p)
	}
	got = s.Progress()
	assert.Equal(t, 10, got.Done)
	assert.Equal(t, 47, got.Percent, "floor(1000/21)")
	assert.Equal(t, "10 / 21 cells", got.Label)
}

// TestProgress_Complete verifies the completion sentinel once every cell
// is visible, for Solve and for a finished walk alike.
func TestProgress_Complete(t *testing.T) {
	p := demoProblem()

	solved := reveal.Start().Solve(p).Progress()
	assert.Equal(t, 21, solved.Done)
	assert.Equal(t, 100, solved.Percent)
	assert.Equal(t, "✓ Complete", solved.Label)

	s := reveal.Start().Step(p)
	for i := 0; i < 21; i++ {
		s = s.Step(p)
	}
	assert.Equal(t, reveal.Revealed, s.Phase())
	assert.Equal(t, solved, s.Progress(), "a finished walk reports like Solve")
}
