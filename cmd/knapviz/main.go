// Command knapviz is an interactive terminal walkthrough of the 0/1
// knapsack DP table: solve an instance in one shot or reveal the table
// cell by cell, with the optimal backtrack path as an overlay.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapviz/knapsack"
)

var (
	capacityFlag string
	weightsFlag  string
	benefitsFlag string
	plainFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "knapviz",
	Short: "Step-by-step 0/1 knapsack DP visualizer",
	Long: `knapviz fills the classic bottom-up 0/1 knapsack table and lets you
watch it happen: step through the cells in scan order, reveal the whole
table at once, and trace the backtrack path behind the optimum.

Run without flags for an interactive form, or pass the instance directly:

  knapviz --capacity 6 --weights 2,3,4 --benefits 3,4,5`,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&capacityFlag, "capacity", "c", "", "knapsack capacity m (positive integer)")
	rootCmd.Flags().StringVarP(&weightsFlag, "weights", "w", "", "comma-separated item weights")
	rootCmd.Flags().StringVarP(&benefitsFlag, "benefits", "b", "", "comma-separated item benefits")
	rootCmd.Flags().BoolVar(&plainFlag, "plain", false, "print the solved table and exit (no TUI)")
}

func run(cmd *cobra.Command, args []string) error {
	raw := rawInput{
		Capacity: capacityFlag,
		Weights:  weightsFlag,
		Benefits: benefitsFlag,
	}

	// No flags at all: collect the three fields interactively.
	if raw.Capacity == "" && raw.Weights == "" && raw.Benefits == "" && !plainFlag {
		var err error
		if raw, err = promptInput(); err != nil {
			return err
		}
	}

	p, err := knapsack.ParseProblem(raw.Capacity, raw.Weights, raw.Benefits)
	if err != nil {
		return err
	}

	if plainFlag {
		printSolved(cmd.OutOrStdout(), p)
		return nil
	}

	slog.Debug("starting walkthrough",
		slog.Int("capacity", p.Capacity), slog.Int("items", p.N()))

	_, err = tea.NewProgram(newModel(p), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("knapviz: %w", err)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
