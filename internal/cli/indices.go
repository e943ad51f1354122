package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
)

var (
	indicesFormat   string
	indicesOutput   string
	indicesNotation bool
)

var indicesCmd = &cobra.Command{
	Use:   "indices [SEQUENCE...]",
	Short: "Export the sticker state after a move sequence",
	Long: `Apply a move sequence to a solved cube and export the 54 sticker colors as
ordinals (white=0 red=1 blue=2 orange=3 green=4 yellow=5), face by face in
the order up, front, right, back, left, down.

Examples:
  cubesim indices FURurf
  cubesim indices FURurf --format json
  cubesim indices --notation "R U R' U'" --format txt -o state.txt`,
	RunE: runIndices,
}

func init() {
	rootCmd.AddCommand(indicesCmd)
	indicesCmd.Flags().StringVar(&indicesFormat, "format", "txt", "Export format (txt, json)")
	indicesCmd.Flags().StringVarP(&indicesOutput, "output", "o", "", "Output file (default: stdout)")
	indicesCmd.Flags().BoolVar(&indicesNotation, "notation", false, "Read the sequence as standard notation")
}

// indicesJSON is the JSON export layout.
type indicesJSON struct {
	Sequence string           `json:"sequence"`
	Indices  []int            `json:"indices"`
	Faces    map[string][]int `json:"faces"`
	Solved   bool             `json:"solved"`
}

func runIndices(cmd *cobra.Command, args []string) error {
	ops, err := sequenceArg(args, indicesNotation)
	if err != nil {
		return err
	}

	c := cubesim.NewCube().Do(ops)
	idx := c.Indices()

	var output string

	switch strings.ToLower(indicesFormat) {
	case "txt":
		parts := make([]string, len(idx))
		for i, v := range idx {
			parts[i] = fmt.Sprint(v)
		}
		output = strings.Join(parts, " ")

	case "json":
		export := indicesJSON{
			Sequence: ops,
			Indices:  idx[:],
			Faces:    make(map[string][]int, cubesim.NumSides),
			Solved:   c.IsSolved(),
		}
		for s := cubesim.SideUp; s < cubesim.NumSides; s++ {
			start := int(s) * 9
			export.Faces[s.String()] = idx[start : start+9]
		}

		data, err := json.MarshalIndent(export, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		output = string(data)

	default:
		return fmt.Errorf("unknown format: %s (use txt or json)", indicesFormat)
	}

	out := cmd.OutOrStdout()

	if indicesOutput == "" {
		fmt.Fprintln(out, output)
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(indicesOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(indicesOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(out, "Exported %d stickers to %s\n", len(idx), indicesOutput)
	return nil
}
