package main

import (
	"github.com/charmbracelet/huh"

	"github.com/katalvlaran/knapviz/knapsack"
)

// rawInput carries the three form fields exactly as typed; parsing and
// validation live in knapsack.ParseProblem.
type rawInput struct {
	Capacity string
	Weights  string
	Benefits string
}

// promptInput collects the instance interactively. Fields are
// pre-filled with the classic classroom example so a bare Enter walks a
// meaningful table. Per-field validation reuses the parser sentinels, so
// the form reports the same errors the flags would.
func promptInput() (rawInput, error) {
	raw := rawInput{
		Capacity: "6",
		Weights:  "2, 3, 4",
		Benefits: "3, 4, 5",
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Capacity m").
				Description("total weight budget, positive integer").
				Placeholder("e.g. 6").
				Validate(func(s string) error {
					_, err := knapsack.ParseProblem(s, "1", "1")
					return err
				}).
				Value(&raw.Capacity),
			huh.NewInput().
				Title("Weights w₁, w₂, …").
				Description("comma-separated non-negative integers").
				Placeholder("e.g. 2, 3, 4").
				Validate(func(s string) error {
					_, err := knapsack.ParseProblem("1", s, s)
					return err
				}).
				Value(&raw.Weights),
			huh.NewInput().
				Title("Benefits b₁, b₂, …").
				Description("one benefit per weight").
				Placeholder("e.g. 3, 4, 5").
				Validate(func(s string) error {
					// weights are already filled in by the time this
					// field blurs, so the length check works too
					_, err := knapsack.ParseProblem("1", raw.Weights, s)
					return err
				}).
				Value(&raw.Benefits),
		),
	)

	if err := form.Run(); err != nil {
		return rawInput{}, err
	}

	return raw, nil
}
