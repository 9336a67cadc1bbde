package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tekkers/internal/core"
	"github.com/vovakirdan/tekkers/internal/platform/tui"
	"github.com/vovakirdan/tekkers/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Mouse          - Move the paddle (left/right and depth)
  Click/Space    - Start, or retry after a game over
  Wheel          - Move the paddle in depth
  Arrows/WASD    - Nudge the paddle
  Ctrl+S         - Save a screenshot to ~/.tekkers/screenshots
  ?              - Show all keys
  Q/Esc/Ctrl+C   - Quit

Logs go to ~/.tekkers/tekkers.log.

Examples:
  tekkers play
  tekkers play --difficulty hard
  tekkers play --input scroll
  tekkers play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	tuning, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	}
	logOut := os.Stderr
	if logFile != nil {
		logOut = logFile
		defer logFile.Close()
	}
	logger, err := newLogger(logOut, "tekkers")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// The game still works without a database; only persistence is lost
	var store storage.Backend
	db, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, scores will not persist", "error", err)
		store = storage.NewMemory()
	} else {
		store = db
	}

	logger.Info("starting", "difficulty", flagDifficulty, "input", tuning.Input.Mode, "fps", cfg.TickRate)
	runErr := tui.Run(tuning, store, cfg, logger)

	// Close store before potential exit
	store.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogFile opens ~/.tekkers/tekkers.log for appending.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".tekkers")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "tekkers.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
