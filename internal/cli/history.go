package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved scrambles",
	Long: `List scrambles saved with 'cubesim scramble --save' or 'cubesim play --save',
newest first.

Examples:
  cubesim history
  cubesim history --limit 50
  cubesim history show last
  cubesim history delete <scramble_id>`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <scramble_id|last>",
	Short: "Show a saved scramble and its attempts",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <scramble_id>",
	Short: "Delete a saved scramble and its attempts",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of scrambles to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewScrambleRepository(db)
	total, err := repo.Count(ctx)
	if err != nil {
		return err
	}

	scrambles, err := repo.List(ctx, historyLimit)
	if err != nil {
		return err
	}

	if len(scrambles) == 0 {
		fmt.Fprintln(out, "No saved scrambles")
		return nil
	}

	fmt.Fprintf(out, "Saved scrambles (%d of %d):\n\n", len(scrambles), total)
	for _, s := range scrambles {
		fmt.Fprintf(out, "%s  %s  %3d moves  %s\n",
			s.ScrambleID, s.CreatedAt.Local().Format(time.DateTime), s.Length, s.Sequence)
	}

	fmt.Fprintf(out, "\nDatabase: %s\n", db.Path())

	return nil
}

// findScramble resolves a scramble ID, accepting "last" for the newest one.
func findScramble(cmd *cobra.Command, repo *storage.ScrambleRepository, id string) (*storage.ScrambleRecord, error) {
	var rec *storage.ScrambleRecord
	var err error

	if id == "last" {
		rec, err = repo.GetLast(cmd.Context())
	} else {
		rec, err = repo.Get(cmd.Context(), id)
	}

	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("scramble not found: %s", id)
	}
	return rec, nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	rec, err := findScramble(cmd, storage.NewScrambleRepository(db), args[0])
	if err != nil {
		return err
	}

	c, err := rec.Cube()
	if err != nil {
		return fmt.Errorf("failed to decode stored state: %w", err)
	}

	fmt.Fprintf(out, "Scramble: %s\n", rec.ScrambleID)
	fmt.Fprintf(out, "Created:  %s\n", rec.CreatedAt.Local().Format(time.DateTime))
	fmt.Fprintf(out, "Length:   %d\n", rec.Length)
	if rec.Seed != nil {
		fmt.Fprintf(out, "Seed:     %d\n", *rec.Seed)
	}
	if rec.Notes != nil {
		fmt.Fprintf(out, "Notes:    %s\n", *rec.Notes)
	}
	fmt.Fprintf(out, "Sequence: %s\n", formatSequence(rec.Sequence, false))
	fmt.Fprintf(out, "Solution: %s\n", formatSequence(rec.Solution, false))
	fmt.Fprintln(out)
	fmt.Fprint(out, newRenderer(cmd).Render(c))

	attempts, err := storage.NewAttemptRepository(db).GetByScramble(ctx, rec.ScrambleID)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	if len(attempts) == 0 {
		fmt.Fprintln(out, "No attempts")
		return nil
	}

	fmt.Fprintf(out, "Attempts (%d):\n", len(attempts))
	for i, a := range attempts {
		fmt.Fprintf(out, "  %d. solved=%s moves=%d simplified=%s\n",
			i+1, yesNo(a.Solved), len(a.Moves), formatSequence(a.Simplified, false))
	}

	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewScrambleRepository(db)
	rec, err := findScramble(cmd, repo, args[0])
	if err != nil {
		return err
	}

	if err := repo.Delete(ctx, rec.ScrambleID); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted scramble %s\n", rec.ScrambleID)
	return nil
}
