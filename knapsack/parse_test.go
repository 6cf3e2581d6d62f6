package knapsack_test

import (
	"testing"

	"github.com/katalvlaran/knapviz/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseProblem_Valid verifies whitespace-tolerant parsing of the
// three form fields into an ordered instance.
func TestParseProblem_Valid(t *testing.T) {
	p, err := knapsack.ParseProblem(" 6 ", "2, 3, 4", " 3,4 , 5")

	require.NoError(t, err)
	assert.Equal(t, 6, p.Capacity)
	assert.Equal(t, []knapsack.Item{
		{Weight: 2, Benefit: 3},
		{Weight: 3, Benefit: 4},
		{Weight: 4, Benefit: 5},
	}, p.Items)
}

// TestParseProblem_InvalidCapacity verifies zero, negative, and
// non-numeric capacities all error ErrInvalidCapacity.
func TestParseProblem_InvalidCapacity(t *testing.T) {
	for _, raw := range []string{"0", "-3", "", "six", "1.5"} {
		_, err := knapsack.ParseProblem(raw, "1", "1")
		assert.ErrorIs(t, err, knapsack.ErrInvalidCapacity, "capacity %q must be rejected", raw)
	}
}

// TestParseProblem_WeightToken verifies a bad weights token is reported
// verbatim.
func TestParseProblem_WeightToken(t *testing.T) {
	_, err := knapsack.ParseProblem("6", "2,x,4", "3,4,5")

	require.ErrorIs(t, err, knapsack.ErrWeightToken)
	assert.ErrorContains(t, err, `"x"`, "the offending token must be named")
}

// TestParseProblem_BenefitToken verifies bad benefits tokens, including
// negative values, are rejected with the token named.
func TestParseProblem_BenefitToken(t *testing.T) {
	_, err := knapsack.ParseProblem("6", "2,3", "4,-1")

	require.ErrorIs(t, err, knapsack.ErrBenefitToken)
	assert.ErrorContains(t, err, `"-1"`)
}

// TestParseProblem_EmptyWeights verifies a blank weights field errors
// ErrEmptyWeights rather than a token error.
func TestParseProblem_EmptyWeights(t *testing.T) {
	_, err := knapsack.ParseProblem("6", "   ", "1,2")

	assert.ErrorIs(t, err, knapsack.ErrEmptyWeights)
}

// TestParseProblem_LengthMismatch verifies differing list lengths are
// rejected with both counts named.
func TestParseProblem_LengthMismatch(t *testing.T) {
	_, err := knapsack.ParseProblem("6", "1,2", "1,2,3")

	require.ErrorIs(t, err, knapsack.ErrLengthMismatch)
	assert.ErrorContains(t, err, "2 weights vs 3 benefits")
}

// TestParseProblem_FailFast verifies nothing half-built leaks out: on any
// failure the returned Problem is the zero value.
func TestParseProblem_FailFast(t *testing.T) {
	p, err := knapsack.ParseProblem("6", "1,2", "1,oops")

	require.Error(t, err)
	assert.Zero(t, p, "a failed parse must not yield a partial instance")
}
