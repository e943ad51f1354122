package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var (
	scrambleLength   int
	scrambleSeed     uint64
	scrambleSave     bool
	scrambleNotation bool
	scrambleNotes    string
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Scramble a solved cube",
	Long: `Scramble a solved cube with random moves drawn from all 18 tokens.

Prints the scramble, the sequence that undoes it, and the scrambled cube.
With --save the scramble is stored in the history database so it can be
replayed later with 'cubesim play --id'.

Examples:
  cubesim scramble
  cubesim scramble -n 25 --seed 7
  cubesim scramble --save --notes "warmup"`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", cubesim.DefaultScrambleLength, "Number of moves")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Seed for a reproducible scramble")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "Save the scramble to history")
	scrambleCmd.Flags().BoolVar(&scrambleNotation, "notation", false, "Print sequences in standard notation")
	scrambleCmd.Flags().StringVar(&scrambleNotes, "notes", "", "Notes stored with a saved scramble")
}

func runScramble(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	scrambler, seed := newScrambler(cmd, scrambleLength, scrambleSeed)
	s := scrambler.Scramble(cubesim.NewCube())

	log.Debug().Int("length", scrambler.Length()).Str("sequence", s.Sequence).Msg("scrambled")

	fmt.Fprintf(out, "Scramble: %s\n", formatSequence(s.Sequence, scrambleNotation))
	fmt.Fprintf(out, "Solution: %s\n", formatSequence(s.Solution, scrambleNotation))
	fmt.Fprintln(out)
	fmt.Fprint(out, newRenderer(cmd).Render(s.Cube))

	if !scrambleSave {
		return nil
	}

	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := storage.NewScrambleRepository(db).Create(ctx, s, seed, scrambleNotes)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Saved scramble %s\n", id)
	return nil
}
