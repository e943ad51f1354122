// Package cli implements the command-line interface for cubesim.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/config"
	"github.com/SeamusWaldron/cubesim/internal/logging"
)

const version = "0.2.0"

var (
	// Global flags
	cfgPath string
	dbPath  string
	verbose bool
	noColor bool

	// cfg is loaded before every command runs, from configFile.
	cfg        config.Config
	configFile string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesim",
	Short: "Rubik's Cube simulator",
	Long: `cubesim - A command-line Rubik's Cube simulator.

Scramble a virtual 3x3x3 cube, apply move sequences, simplify and invert
them, export the sticker state, and practise undoing saved scrambles in an
interactive trainer.

Moves are written one letter per move: U F R B L D turn a face clockwise,
u f r b l d counterclockwise, and X Y Z / x y z rotate the whole cube.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file path (default: ~/.cubesim/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubesim/cubesim.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Print the cube as letters instead of colored stickers")
}

// loadConfig reads the config file and applies global flag overrides.
func loadConfig(cmd *cobra.Command, args []string) error {
	path := cfgPath
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded
	configFile = path

	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if noColor {
		cfg.Color = false
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logging.SetupWriter(cmd.ErrOrStderr(), level)

	log.Debug().Str("config", path).Str("command", cmd.CommandPath()).Msg("config loaded")
	return nil
}
