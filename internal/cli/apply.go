package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var (
	applyFrom     string
	applyNotation bool
)

var applyCmd = &cobra.Command{
	Use:   "apply [SEQUENCE...]",
	Short: "Apply a move sequence to a cube",
	Long: `Apply a move sequence to a solved cube, or to the state given with --from,
and print the resulting cube and its sticker indices.

Unknown characters in a token sequence are ignored. With --notation the
arguments are read as standard notation (R U R' U2 x y').

Examples:
  cubesim apply FURurf
  cubesim apply --notation "R U R' U'"
  cubesim apply --from 210000220104111111133222222403333333040444444555555555 FRUruf`,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVar(&applyFrom, "from", "", "Starting state as 54 color digits (default: solved)")
	applyCmd.Flags().BoolVar(&applyNotation, "notation", false, "Read the sequence as standard notation")
}

func runApply(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	ops, err := sequenceArg(args, applyNotation)
	if err != nil {
		return err
	}

	c := cubesim.NewCube()
	if applyFrom != "" {
		c, err = storage.DecodeState(applyFrom)
		if err != nil {
			return fmt.Errorf("invalid --from state: %w", err)
		}
	}

	c = c.Do(ops)

	fmt.Fprint(out, newRenderer(cmd).Render(c))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Indices: %s\n", formatIndices(c.Indices()))
	fmt.Fprintf(out, "State:   %s\n", storage.EncodeState(c))
	fmt.Fprintf(out, "Stage:   %s\n", c.DetectStage().DisplayName())
	fmt.Fprintf(out, "Solved:  %s\n", yesNo(c.IsSolved()))
	return nil
}
