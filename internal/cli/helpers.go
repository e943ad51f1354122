package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/render"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

// openDB opens the configured database and brings its schema up to date.
func openDB(ctx context.Context) (*storage.DB, error) {
	var db *storage.DB
	var err error

	if cfg.DBPath == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(cfg.DBPath)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// newRenderer returns a renderer for the command's output stream.
func newRenderer(cmd *cobra.Command) *render.Renderer {
	if !cfg.Color {
		return render.NewPlain()
	}
	return render.New(cmd.OutOrStdout())
}

// newScrambler builds a scrambler from config, letting the command's
// --length and --seed flags win when given. The returned seed is nil when
// the scrambler is seeded by the runtime.
func newScrambler(cmd *cobra.Command, length int, seed uint64) (*cubesim.Scrambler, *uint64) {
	if !cmd.Flags().Changed("length") {
		length = cfg.ScrambleLength
	}

	var seedPtr *uint64
	if cmd.Flags().Changed("seed") {
		seedPtr = &seed
	} else if cfg.Seed != nil {
		seedPtr = cfg.Seed
	}

	opts := []cubesim.Option{cubesim.WithLength(length)}
	if seedPtr != nil {
		opts = append(opts, cubesim.WithSeed(*seedPtr))
	}
	return cubesim.NewScrambler(opts...), seedPtr
}

// sequenceArg joins command arguments into a token string. With notation set
// the arguments are read as standard notation instead.
func sequenceArg(args []string, notation bool) (string, error) {
	if notation {
		return cubesim.ParseNotation(strings.Join(args, " "))
	}
	return strings.Join(args, ""), nil
}

// formatSequence renders a token string for display.
func formatSequence(ops string, notation bool) string {
	if notation {
		ops = cubesim.FormatNotation(ops)
	}
	if ops == "" {
		return "(none)"
	}
	return ops
}

func formatIndices(idx [cubesim.NumStickers]int) string {
	var b strings.Builder
	for i, v := range idx {
		if i > 0 {
			if i%9 == 0 {
				b.WriteString(" | ")
			} else {
				b.WriteByte(' ')
			}
		}
		fmt.Fprintf(&b, "%d", v)
	}
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
