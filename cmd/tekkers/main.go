// tekkers is a 3D cube juggling game for the terminal.
//
// Usage:
//
//	tekkers                  - Play (same as tekkers play)
//	tekkers play             - Play in this terminal
//	tekkers scores           - Show the best runs
//	tekkers config           - Print the effective physics tuning
//	tekkers serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Frame rate (default: 60)
//	--seed <value>        - RNG seed for reproducible runs
//	--db <path>           - Database path (default: ~/.tekkers/tekkers.db)
//	--config <path>       - Tuning YAML
//	--difficulty <name>   - easy, normal or hard
//	--input <mode>        - pointer, scroll or touch
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tekkers/internal/config"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagInput      string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tekkers",
	Short: "Tekkers - keep the cube in the air",
	Long: `Tekkers is a 3D cube juggling game for the terminal.

A cube falls under gravity; move the paddle with the mouse to bounce it back
up. Every bounce scores a point. Let it fall past the floor and the run ends.

Available commands:
  play     - Play in this terminal (default)
  scores   - Show the best runs
  config   - Print the effective physics tuning
  serve    - Start SSH server for remote play

Examples:
  tekkers
  tekkers play --difficulty easy
  tekkers scores --tui
  tekkers serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tekkers/tekkers.db", "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a tuning YAML file")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagInput, "input", "", "Input mode: pointer, scroll, touch (overrides the config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadTuning resolves the tuning from the config search path and the
// difficulty and input flags.
func loadTuning() (config.Tuning, error) {
	tuning, err := config.Load(flagConfig)
	if err != nil {
		return config.Tuning{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Tuning{}, err
	}
	config.ApplyPreset(&tuning, preset)

	if flagInput != "" {
		tuning.Input.Mode = config.InputMode(flagInput)
	}
	if err := tuning.Validate(); err != nil {
		return config.Tuning{}, err
	}
	return tuning, nil
}

// newLogger creates a logger at the level given by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
