package cli

import (
	"context"
	"database/sql"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/storage"
	"github.com/SeamusWaldron/cubesim/internal/tui"
)

var (
	playLength int
	playSeed   uint64
	playID     string
	playSave   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Practise undoing a scramble interactively",
	Long: `Open the interactive trainer on a scrambled cube. Type move letters to
turn the cube until it is solved again.

With --id the trainer replays a saved scramble ("last" picks the newest)
and records the attempt when you quit. With --save the fresh scramble and
the attempt are saved together when you quit.

Examples:
  cubesim play
  cubesim play -n 8 --seed 3
  cubesim play --id last`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVarP(&playLength, "length", "n", cubesim.DefaultScrambleLength, "Number of scramble moves")
	playCmd.Flags().Uint64Var(&playSeed, "seed", 0, "Seed for a reproducible scramble")
	playCmd.Flags().StringVar(&playID, "id", "", "Replay a saved scramble (or \"last\")")
	playCmd.Flags().BoolVar(&playSave, "save", false, "Save the scramble and record the attempt")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	scrambler, seed := newScrambler(cmd, playLength, playSeed)

	var db *storage.DB
	if playID != "" || playSave {
		var err error
		db, err = openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()
	}

	var s cubesim.Scramble
	var scrambleID string

	switch {
	case playID != "":
		rec, err := findScramble(cmd, storage.NewScrambleRepository(db), playID)
		if err != nil {
			return err
		}
		c, err := rec.Cube()
		if err != nil {
			return fmt.Errorf("failed to decode stored state: %w", err)
		}
		s = cubesim.Scramble{
			Start:    cubesim.NewCube(),
			Cube:     c,
			Sequence: rec.Sequence,
			Solution: rec.Solution,
		}
		scrambleID = rec.ScrambleID

	default:
		s = scrambler.Scramble(cubesim.NewCube())
	}

	model := tui.New(s, scrambler, newRenderer(cmd))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("trainer error: %w", err)
	}

	result, ok := final.(tui.Model)
	if !ok || (playID == "" && !playSave) {
		return nil
	}

	savedID, attemptID, err := savePlay(ctx, db, s, seed, scrambleID, result)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if scrambleID == "" {
		fmt.Fprintf(out, "Saved scramble %s\n", savedID)
	}
	if attemptID != 0 {
		fmt.Fprintf(out, "Recorded attempt %d for scramble %s (solved: %s)\n",
			attemptID, savedID, yesNo(result.Solved()))
	}
	return nil
}

// playResult is what the trainer reports when it exits.
type playResult interface {
	Scramble() string
	Moves() string
	Solved() bool
}

// savePlay stores the outcome of a trainer session. A new scramble (empty
// scrambleID) and its attempt are written in one transaction. The attempt is
// skipped when no moves were made or the player switched to another scramble.
func savePlay(ctx context.Context, db *storage.DB, s cubesim.Scramble, seed *uint64, scrambleID string, result playResult) (string, int64, error) {
	recordAttempt := result.Moves() != "" && result.Scramble() == s.Sequence
	if !recordAttempt {
		log.Debug().Msg("no attempt to record")
		if scrambleID != "" {
			return scrambleID, 0, nil
		}
	}

	var attemptID int64
	err := db.Transaction(ctx, func(tx *sql.Tx) error {
		if scrambleID == "" {
			id, err := storage.NewScrambleRepository(db).WithTx(tx).Create(ctx, s, seed, "")
			if err != nil {
				return err
			}
			scrambleID = id
		}

		if !recordAttempt {
			return nil
		}

		id, err := storage.NewAttemptRepository(db).WithTx(tx).Create(ctx, scrambleID, result.Moves(), result.Solved())
		if err != nil {
			return err
		}
		attemptID = id
		return nil
	})
	if err != nil {
		return "", 0, fmt.Errorf("failed to save session: %w", err)
	}

	return scrambleID, attemptID, nil
}
