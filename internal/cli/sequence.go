package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
)

var sequenceNotation bool

var simplifyCmd = &cobra.Command{
	Use:   "simplify [SEQUENCE...]",
	Short: "Shorten a move sequence",
	Long: `Shorten a move sequence with a single pass of rewrite rules: three equal
quarter turns become one turn the other way, then adjacent inverse pairs
are removed. The pass is not repeated, so the result may still contain
reducible runs.

Example:
  cubesim simplify RRRUuF     # prints rF`,
	RunE: runSimplify,
}

var invertCmd = &cobra.Command{
	Use:   "invert [SEQUENCE...]",
	Short: "Print the sequence that undoes a move sequence",
	Long: `Print the inverse of a move sequence: the moves in reverse order, each
turned the other way.

Example:
  cubesim invert FURurf      # prints FRUruf`,
	RunE: runInvert,
}

func init() {
	rootCmd.AddCommand(simplifyCmd)
	rootCmd.AddCommand(invertCmd)
	for _, c := range []*cobra.Command{simplifyCmd, invertCmd} {
		c.Flags().BoolVar(&sequenceNotation, "notation", false, "Read and print standard notation")
	}
}

func runSimplify(cmd *cobra.Command, args []string) error {
	return transformSequence(cmd, args, cubesim.Simplify)
}

func runInvert(cmd *cobra.Command, args []string) error {
	return transformSequence(cmd, args, cubesim.Invert)
}

func transformSequence(cmd *cobra.Command, args []string, fn func(string) string) error {
	ops, err := sequenceArg(args, sequenceNotation)
	if err != nil {
		return err
	}

	result := fn(ops)
	if sequenceNotation {
		result = cubesim.FormatNotation(result)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
