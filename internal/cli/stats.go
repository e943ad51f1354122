package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/analysis"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var (
	statsLimit int
	statsMinN  int
	statsMaxN  int
	statsTopK  int
	statsJSON  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize recorded trainer attempts",
	Long: `Summarize the attempts recorded by 'cubesim play': solve rate, average move
count, how much of each attempt survives simplification, and the move
patterns repeated most often across attempts.

Examples:
  cubesim stats
  cubesim stats --min-n 3 --max-n 6 --top 5
  cubesim stats --json`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVar(&statsLimit, "limit", 500, "Number of recent attempts to include")
	statsCmd.Flags().IntVar(&statsMinN, "min-n", 4, "Shortest pattern length")
	statsCmd.Flags().IntVar(&statsMaxN, "max-n", 8, "Longest pattern length")
	statsCmd.Flags().IntVar(&statsTopK, "top", 3, "Patterns to show per length")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print JSON")
}

type statsReport struct {
	Summary analysis.Aggregate    `json:"summary"`
	NGrams  *analysis.NGramReport `json:"ngrams"`
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if statsMinN < 1 || statsMaxN < statsMinN {
		return fmt.Errorf("invalid pattern lengths: --min-n %d --max-n %d", statsMinN, statsMaxN)
	}

	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	attempts, err := storage.NewAttemptRepository(db).List(ctx, statsLimit)
	if err != nil {
		return err
	}

	summaries := make([]analysis.AttemptSummary, len(attempts))
	sources := make(map[string]string, len(attempts))
	for i, a := range attempts {
		summaries[i] = analysis.Summarize(a.Moves, a.Solved)
		sources[strconv.FormatInt(a.AttemptID, 10)] = a.Moves
	}

	report := statsReport{
		Summary: analysis.AggregateSummaries(summaries),
		NGrams:  analysis.MineNGrams(sources, statsMinN, statsMaxN, statsTopK),
	}

	if statsJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if report.Summary.Attempts == 0 {
		fmt.Fprintln(out, "No recorded attempts")
		return nil
	}

	s := report.Summary
	fmt.Fprintf(out, "Attempts:       %d\n", s.Attempts)
	fmt.Fprintf(out, "Solved:         %d (%.0f%%)\n", s.Solved, s.SolveRate*100)
	fmt.Fprintf(out, "Average moves:  %.1f\n", s.AvgMoves)
	fmt.Fprintf(out, "Efficiency:     %.0f%%\n", s.AvgEfficiency*100)
	if s.BestSolveMoves > 0 {
		fmt.Fprintf(out, "Best solve:     %d moves\n", s.BestSolveMoves)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Repeated patterns:")
	found := false
	for n := statsMinN; n <= statsMaxN; n++ {
		for _, ng := range report.NGrams.TopNGrams[n] {
			found = true
			fmt.Fprintf(out, "  %-12s %-24s x%d\n", ng.Sequence, cubesim.FormatNotation(ng.Sequence), ng.Count)
		}
	}
	if !found {
		fmt.Fprintln(out, "  (none)")
	}

	return nil
}
