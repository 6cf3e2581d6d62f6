// Package knapsack - raw-input parsing shared by every front end.
//
// This file implements the validation contract between form-style input
// (three raw strings) and the solver:
//  1. Capacity: trimmed, parsed as an integer, must be > 0.
//  2. Weights/benefits: comma-separated, each token trimmed and parsed as
//     a non-negative integer; the first bad token is reported verbatim.
//  3. The weights list must be non-empty and both lists equally long.
//
// Design principles:
//   - Fail fast: no table is ever computed from partially-invalid input.
//   - Deterministic, side-effect free, no logging, no panics on user input.
//   - Only sentinel errors from types.go, wrapped with the offending
//     token or the mismatching lengths for display.
package knapsack

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseProblem validates the three raw form fields and assembles a
// Problem ready for Solve.
//
// Contract:
//   - capacityRaw must trim+parse to an integer > 0, else ErrInvalidCapacity.
//   - weightsRaw must contain at least one token, else ErrEmptyWeights.
//   - every weights/benefits token must trim+parse to a non-negative
//     integer, else ErrWeightToken / ErrBenefitToken naming that token.
//   - both lists must be equally long, else ErrLengthMismatch naming both
//     counts.
//
// Errors are matched with errors.Is; the wrapping message carries the
// human-readable context. On any failure the returned Problem is zero and
// callers must leave their previous state untouched.
func ParseProblem(capacityRaw, weightsRaw, benefitsRaw string) (Problem, error) {
	capacity, err := strconv.Atoi(strings.TrimSpace(capacityRaw))
	if err != nil || capacity <= 0 {
		return Problem{}, ErrInvalidCapacity
	}

	if strings.TrimSpace(weightsRaw) == "" {
		return Problem{}, ErrEmptyWeights
	}
	weights, err := parseList(weightsRaw, ErrWeightToken)
	if err != nil {
		return Problem{}, err
	}

	benefits, err := parseList(benefitsRaw, ErrBenefitToken)
	if err != nil {
		return Problem{}, err
	}

	if len(weights) != len(benefits) {
		return Problem{}, fmt.Errorf("%w: %d weights vs %d benefits",
			ErrLengthMismatch, len(weights), len(benefits))
	}

	items := make([]Item, len(weights))
	for i := range weights {
		items[i] = Item{Weight: weights[i], Benefit: benefits[i]}
	}

	return Problem{Capacity: capacity, Items: items}, nil
}

// parseList splits raw on commas and parses each trimmed token as a
// non-negative integer. The first failing token is wrapped into sentinel
// verbatim, so error messages name exactly what the user typed.
func parseList(raw string, sentinel error) ([]int, error) {
	tokens := strings.Split(raw, ",")
	out := make([]int, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		v, err := strconv.Atoi(tok)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: %q", sentinel, tok)
		}
		out[i] = v
	}

	return out, nil
}
